package districts

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"time"

	"github.com/nfmontgomery220/federal-budget-sub001/internal/districts/civic"
)

// Resolution is the answer to "which congressional district is this ZIP in".
type Resolution struct {
	State    string `json:"state"`
	District string `json:"district"`
	Cached   bool   `json:"cached"`
}

// Cache is the persistent ZIP → district store. Get returns (nil, nil)
// on a miss so callers can distinguish misses from storage failures.
type Cache interface {
	Get(ctx context.Context, zip string) (*ZipDistrict, error)
	Put(ctx context.Context, entry *ZipDistrict) error
}

// Lookup fetches lower-chamber officials for a location from the
// external provider.
type Lookup interface {
	FetchLowerHouse(ctx context.Context, zip, address string) ([]civic.Official, error)
}

// RepSink persists representative records discovered during resolution.
type RepSink interface {
	UpsertOfficials(ctx context.Context, officials []civic.Official, state, district string) error
}

// Resolver maps 5-digit ZIP codes to (state, district) pairs, consulting
// the cache before the metered external provider.
type Resolver struct {
	cache  Cache
	lookup Lookup
	reps   RepSink // optional
}

func NewResolver(cache Cache, lookup Lookup, reps RepSink) *Resolver {
	return &Resolver{cache: cache, lookup: lookup, reps: reps}
}

var zip5 = regexp.MustCompile(`^\d{5}$`)

func isZip5(s string) bool {
	return zip5.MatchString(s)
}

var digitRun = regexp.MustCompile(`\d+`)

// parseDistrictNumber extracts the first run of digits from a free-text
// district label and normalizes it to a zero-padded 2-digit string
// ("3" → "03"). Labels with no digits (e.g. "At-Large") do not parse.
func parseDistrictNumber(label string) (string, bool) {
	m := digitRun.FindString(label)
	if m == "" {
		return "", false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%02d", n), true
}

// Resolve maps a ZIP (optionally refined by a street address) to its
// state and congressional district. Cache hits never touch the external
// provider; misses resolve externally and persist the result.
func (r *Resolver) Resolve(ctx context.Context, zip, address string) (Resolution, error) {
	if !isZip5(zip) {
		return Resolution{}, fmt.Errorf("%w: %q", ErrInvalidInput, zip)
	}

	entry, err := r.cache.Get(ctx, zip)
	if err != nil {
		return Resolution{}, fmt.Errorf("%w: cache read: %v", ErrStorageUnavailable, err)
	}
	if entry != nil {
		district := ""
		if entry.District != nil {
			district = *entry.District
		}
		return Resolution{State: entry.State, District: district, Cached: true}, nil
	}

	if r.lookup == nil {
		return Resolution{}, fmt.Errorf("%w: no provider configured", ErrResolutionUnavailable)
	}

	officials, err := r.lookup.FetchLowerHouse(ctx, zip, address)
	if err != nil {
		log.Printf("[resolver] zip=%s provider error: %v", zip, err)
		return Resolution{}, fmt.Errorf("%w: %v", ErrResolutionUnavailable, err)
	}
	if len(officials) == 0 {
		log.Printf("[resolver] zip=%s no lower-chamber officials in result set", zip)
		return Resolution{}, ErrDistrictNotFound
	}

	off := officials[0]
	state := off.Office.District.State
	if state == "" {
		state = off.Office.RepresentingState
	}
	district, ok := parseDistrictNumber(off.Office.District.Label)
	if !ok || state == "" {
		log.Printf("[resolver] zip=%s unparseable district label %q (state=%q)",
			zip, off.Office.District.Label, state)
		return Resolution{}, ErrDistrictNotFound
	}

	now := time.Now()
	entry = &ZipDistrict{
		Zip:         zip,
		State:       state,
		District:    &district,
		Source:      SourceExternalAPI,
		LastFetched: now,
	}
	if err := r.cache.Put(ctx, entry); err != nil {
		// The resolution itself succeeded; a failed cache write only
		// costs a repeat provider call next time.
		log.Printf("[resolver] zip=%s cache write failed: %v", zip, err)
	}

	if r.reps != nil {
		if err := r.reps.UpsertOfficials(ctx, officials, state, district); err != nil {
			log.Printf("[resolver] zip=%s representative upsert failed: %v", zip, err)
		}
	}

	return Resolution{State: state, District: district, Cached: false}, nil
}
