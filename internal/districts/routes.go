package districts

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/nfmontgomery220/federal-budget-sub001/internal/districts/civic"
)

// NewResolverFromEnv builds the production resolver. Without CIVIC_API_KEY
// the resolver still answers cache hits but misses fail as unavailable.
func NewResolverFromEnv() *Resolver {
	var lookup Lookup
	if key := os.Getenv("CIVIC_API_KEY"); key != "" {
		lookup = civic.NewClient(key, os.Getenv("CIVIC_API_URL"))
	} else {
		log.Println("[districts] CIVIC_API_KEY not set, serving cache-only")
	}
	return NewResolver(GormCache{}, lookup, GormReps{})
}

func SetupRoutes() http.Handler {
	r := chi.NewRouter()
	resolver := NewResolverFromEnv()

	r.Get("/resolve/{zip}", ResolveHandler(resolver))
	r.Get("/{state}/{district}/representatives", RepresentativesHandler)

	return r
}
