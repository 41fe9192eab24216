package routers

import (
	"habitquest/internal/handlers"

	"github.com/go-chi/chi/v5"
)

func UserRoutes(r *chi.Mux, userHandler *handlers.UserHandler) {
	r.Route("/api/v1/user", func(r chi.Router) {
		r.Put("/update", userHandler.UpdateProgressHandler) // Merge progress fields
	})
}
