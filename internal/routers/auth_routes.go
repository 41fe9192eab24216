package routers

import (
	"habitquest/internal/handlers"

	"github.com/go-chi/chi/v5"
)

func AuthRoutes(r *chi.Mux, authHandler *handlers.AuthHandler) {
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/signup", authHandler.SignupHandler) // Account creation
		r.Post("/login", authHandler.LoginHandler)   // User login
		r.Post("/logout", authHandler.LogoutHandler) // Clear auth cookie
		r.Get("/me", authHandler.MeHandler)          // Current user
	})
}
