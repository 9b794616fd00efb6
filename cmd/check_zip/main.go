package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/nfmontgomery220/federal-budget-sub001/internal/db"
	"github.com/nfmontgomery220/federal-budget-sub001/internal/districts"
	"github.com/nfmontgomery220/federal-budget-sub001/internal/districts/civic"
)

// Resolves a ZIP end-to-end and dumps what the cache and representatives
// tables hold afterwards. Usage: go run ./cmd/check_zip 94102
func main() {
	godotenv.Load(".env.local")

	if len(os.Args) < 2 {
		log.Fatal("usage: check_zip <zip>")
	}
	zip := os.Args[1]

	db.Connect()
	districts.Init()

	// Fail fast on a bad or revoked key before burning a metered lookup.
	if key := os.Getenv("CIVIC_API_KEY"); key != "" {
		client := civic.NewClient(key, os.Getenv("CIVIC_API_URL"))
		if err := client.HealthCheck(context.Background()); err != nil {
			log.Fatalf("Provider health check failed: %v", err)
		}
		fmt.Println("Provider health check OK")
	}

	resolver := districts.NewResolverFromEnv()

	res, err := resolver.Resolve(context.Background(), zip, "")
	if err != nil {
		log.Fatalf("Resolve error: %v", err)
	}

	fmt.Printf("ZIP %s -> state=%s district=%s cached=%v\n", zip, res.State, res.District, res.Cached)

	entry, err := (districts.GormCache{}).Get(context.Background(), zip)
	if err != nil {
		log.Fatalf("Cache read error: %v", err)
	}
	if entry != nil {
		district := "<state-level>"
		if entry.District != nil {
			district = *entry.District
		}
		fmt.Printf("Cache entry: state=%s district=%s source=%s last_fetched=%s\n",
			entry.State, district, entry.Source, entry.LastFetched.Format("2006-01-02 15:04:05"))
	}

	reps, err := (districts.GormReps{}).ListByDistrict(context.Background(), res.State, res.District)
	if err != nil {
		log.Fatalf("Representative query error: %v", err)
	}

	fmt.Printf("\nRepresentatives for %s-%s: %d\n", res.State, res.District, len(reps))
	for _, rep := range reps {
		fmt.Printf("  - %s %s (%s) | emails=%d\n", rep.FirstName, rep.LastName, rep.Party, len(rep.EmailAddresses))
	}
}
