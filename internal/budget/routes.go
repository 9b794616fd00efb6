package budget

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()

	r.Post("/sessions", CreateSession)
	r.Get("/sessions/{session_id}", GetSession)
	r.Post("/sessions/{session_id}/adjustments", SubmitAdjustments)
	r.Get("/sessions/{session_id}/summary", GetSummary)
	r.Post("/sessions/{session_id}/analyze", Analyze)

	return r
}
