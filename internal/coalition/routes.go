package coalition

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nfmontgomery220/federal-budget-sub001/internal/middleware"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()
	sessionFetcher := SessionInfo{}

	r.Get("/", ListProfiles)
	r.Get("/{profile_id}", GetProfile)
	r.Post("/match", MatchHandler)
	r.Post("/assignments", AssignHandler)

	// Admin routes - profile management
	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(sessionFetcher))
		r.Use(middleware.AdminMiddleware(sessionFetcher))

		r.Post("/", CreateProfile)
		r.Put("/{profile_id}", UpdateProfile)
		r.Delete("/{profile_id}", DeleteProfile)
	})

	return r
}
