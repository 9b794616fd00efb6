package districts

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// helper: write JSON with a specific HTTP status code
func writeJSONStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ResolveHandler maps GET /resolve/{zip}?address=... onto the resolver.
// Provider failures and unparseable districts both surface as 404 so the
// frontend shows one "no representatives found" state; the log line says
// which one actually happened.
func ResolveHandler(resolver *Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		zip := chi.URLParam(r, "zip")
		address := r.URL.Query().Get("address")

		res, err := resolver.Resolve(r.Context(), zip, address)
		switch {
		case err == nil:
			writeJSON(w, res)
		case errors.Is(err, ErrInvalidInput):
			http.Error(w, "Missing or invalid zip parameter", http.StatusBadRequest)
		case errors.Is(err, ErrDistrictNotFound), errors.Is(err, ErrResolutionUnavailable):
			log.Printf("[ResolveHandler] zip=%s err=%v", zip, err)
			writeJSONStatus(w, http.StatusNotFound, map[string]string{"error": "no representatives found"})
		default:
			log.Printf("[ResolveHandler] zip=%s err=%v", zip, err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
	}
}

// RepresentativesHandler serves cached representative records for a
// (state, district) pair.
func RepresentativesHandler(w http.ResponseWriter, r *http.Request) {
	state := strings.ToUpper(chi.URLParam(r, "state"))
	district := chi.URLParam(r, "district")

	if len(state) != 2 || district == "" {
		http.Error(w, "Invalid state or district", http.StatusBadRequest)
		return
	}

	reps, err := GormReps{}.ListByDistrict(r.Context(), state, district)
	if err != nil {
		http.Error(w, "Failed to fetch representatives: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, reps)
}
