package routers

import (
	"habitquest/internal/handlers"

	"github.com/go-chi/chi/v5"
)

func ActivityRoutes(r *chi.Mux, activityHandler *handlers.ActivityHandler) {
	r.Route("/api/v1/activity", func(r chi.Router) {
		r.Get("/feed", activityHandler.FeedHandler)        // Newest-first activity feed
		r.Post("/feed", activityHandler.AppendFeedHandler) // Record an activity
		r.Get("/{key}", activityHandler.GetValueHandler)   // Read a stored blob
		r.Put("/{key}", activityHandler.SetValueHandler)   // Overwrite a stored blob
	})
}
