package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"habitquest/internal/config"
	"habitquest/internal/handlers"
	"habitquest/internal/metrics"
	mongorepo "habitquest/internal/repositories/mongo"
	redisrepo "habitquest/internal/repositories/redis"
	"habitquest/internal/routers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func registerRoutes(router *chi.Mux, authHandler *handlers.AuthHandler, userHandler *handlers.UserHandler, activityHandler *handlers.ActivityHandler, healthHandler *handlers.HealthHandler) {
	routers.HealthRoutes(router, healthHandler)
	routers.AuthRoutes(router, authHandler)
	routers.UserRoutes(router, userHandler)
	routers.ActivityRoutes(router, activityHandler)
}

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// credential store
	mongoClient, err := mongorepo.NewClient(context.Background(), cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Fatal("Failed to connect to mongo", zap.Error(err))
	}
	userRepo, err := mongorepo.NewUserRepo(mongoClient)
	if err != nil {
		logger.Fatal("Failed to initialise user repository", zap.Error(err))
	}

	// activity store for the presentation layer
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	activityStore := redisrepo.NewActivityStore(rdb)

	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret, cfg.IsProduction(), logger)
	userHandler := handlers.NewUserHandler(userRepo, cfg.JWTSecret, logger)
	activityHandler := handlers.NewActivityHandler(activityStore, cfg.JWTSecret, logger)
	healthHandler := handlers.NewHealthHandler(mongoClient)

	router := chi.NewRouter()

	// cors middleware
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer, middleware.Timeout(60*time.Second))
	router.Use(metrics.Middleware)

	registerRoutes(router, authHandler, userHandler, activityHandler, healthHandler)

	serverAddr := ":" + cfg.Port

	// http server with timeouts
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// starting server in a goroutine
	go func() {
		logger.Info("Habit service starting", zap.String("addr", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// wait for interrupt signal to gracefully shutdown the server
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("Habit service shutting down...")

	// graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	if err := mongoClient.Disconnect(ctx); err != nil {
		logger.Error("failed to disconnect mongo client", zap.Error(err))
	}
	if err := rdb.Close(); err != nil {
		logger.Error("failed to close redis client", zap.Error(err))
	}

	logger.Info("Habit service exited")
}
