package districts

import (
	"context"
	"errors"
	"testing"

	"github.com/nfmontgomery220/federal-budget-sub001/internal/districts/civic"
)

// memCache implements Cache in memory, recording writes.
type memCache struct {
	entries map[string]*ZipDistrict
	getErr  error
	putErr  error
	puts    int
}

func newMemCache() *memCache {
	return &memCache{entries: map[string]*ZipDistrict{}}
}

func (m *memCache) Get(ctx context.Context, zip string) (*ZipDistrict, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.entries[zip], nil
}

func (m *memCache) Put(ctx context.Context, entry *ZipDistrict) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.puts++
	m.entries[entry.Zip] = entry
	return nil
}

// mockLookup implements Lookup with canned responses.
type mockLookup struct {
	officials []civic.Official
	err       error
	calls     int
}

func (m *mockLookup) FetchLowerHouse(ctx context.Context, zip, address string) ([]civic.Official, error) {
	m.calls++
	return m.officials, m.err
}

func lowerHouseOfficial(state, label string) civic.Official {
	return civic.Official{
		OfficialID: 123,
		FirstName:  "Nancy",
		LastName:   "Pelosi",
		Party:      "Democrat",
		Office: civic.Office{
			Title:             "Representative",
			RepresentingState: state,
			District: civic.District{
				Type:  civic.NationalLower,
				Label: label,
				State: state,
			},
		},
	}
}

// TestResolve_InvalidZip verifies non-5-digit input fails fast without
// touching the cache or the provider.
func TestResolve_InvalidZip(t *testing.T) {
	cache := newMemCache()
	lookup := &mockLookup{}
	resolver := NewResolver(cache, lookup, nil)

	for _, zip := range []string{"", "1234", "123456", "9410a"} {
		_, err := resolver.Resolve(context.Background(), zip, "")
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("zip %q: expected ErrInvalidInput, got %v", zip, err)
		}
	}
	if lookup.calls != 0 {
		t.Errorf("expected no provider calls, got %d", lookup.calls)
	}
}

// TestResolve_MissThenHit verifies the external fallback populates the
// cache and that the second call is served from it: same result,
// cached=true, no second provider call.
func TestResolve_MissThenHit(t *testing.T) {
	cache := newMemCache()
	lookup := &mockLookup{officials: []civic.Official{lowerHouseOfficial("CA", "CA District 12")}}
	resolver := NewResolver(cache, lookup, nil)

	first, err := resolver.Resolve(context.Background(), "94102", "")
	if err != nil {
		t.Fatalf("first resolve failed: %v", err)
	}
	if first.State != "CA" || first.District != "12" || first.Cached {
		t.Errorf("unexpected first resolution: %+v", first)
	}

	entry := cache.entries["94102"]
	if entry == nil || entry.State != "CA" || entry.District == nil || *entry.District != "12" {
		t.Fatalf("cache entry not written correctly: %+v", entry)
	}
	if entry.Source != SourceExternalAPI {
		t.Errorf("expected source %q, got %q", SourceExternalAPI, entry.Source)
	}

	second, err := resolver.Resolve(context.Background(), "94102", "")
	if err != nil {
		t.Fatalf("second resolve failed: %v", err)
	}
	if second.State != first.State || second.District != first.District {
		t.Errorf("resolve not idempotent: first=%+v second=%+v", first, second)
	}
	if !second.Cached {
		t.Error("expected second call to report cached=true")
	}
	if lookup.calls != 1 {
		t.Errorf("expected 1 provider call, got %d", lookup.calls)
	}
}

// TestResolve_DistrictNumberNormalization verifies single-digit labels are
// zero-padded.
func TestResolve_DistrictNumberNormalization(t *testing.T) {
	cache := newMemCache()
	lookup := &mockLookup{officials: []civic.Official{lowerHouseOfficial("TX", "District 3")}}
	resolver := NewResolver(cache, lookup, nil)

	res, err := resolver.Resolve(context.Background(), "75001", "")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if res.District != "03" {
		t.Errorf("expected district 03, got %q", res.District)
	}
}

// TestResolve_ProviderError verifies transient provider failures surface
// as ErrResolutionUnavailable and nothing is cached.
func TestResolve_ProviderError(t *testing.T) {
	cache := newMemCache()
	lookup := &mockLookup{err: errors.New("connection refused")}
	resolver := NewResolver(cache, lookup, nil)

	_, err := resolver.Resolve(context.Background(), "94102", "")
	if !errors.Is(err, ErrResolutionUnavailable) {
		t.Errorf("expected ErrResolutionUnavailable, got %v", err)
	}
	if cache.puts != 0 {
		t.Errorf("expected no cache write, got %d", cache.puts)
	}
}

// TestResolve_NoOfficials verifies an empty result set is a not-found,
// not an availability error.
func TestResolve_NoOfficials(t *testing.T) {
	cache := newMemCache()
	lookup := &mockLookup{officials: nil}
	resolver := NewResolver(cache, lookup, nil)

	_, err := resolver.Resolve(context.Background(), "94102", "")
	if !errors.Is(err, ErrDistrictNotFound) {
		t.Errorf("expected ErrDistrictNotFound, got %v", err)
	}
}

// TestResolve_UnparseableLabel verifies a digit-free district label (e.g.
// an at-large seat) maps to ErrDistrictNotFound with no cache write.
func TestResolve_UnparseableLabel(t *testing.T) {
	cache := newMemCache()
	lookup := &mockLookup{officials: []civic.Official{lowerHouseOfficial("WY", "At-Large")}}
	resolver := NewResolver(cache, lookup, nil)

	_, err := resolver.Resolve(context.Background(), "82001", "")
	if !errors.Is(err, ErrDistrictNotFound) {
		t.Errorf("expected ErrDistrictNotFound, got %v", err)
	}
	if cache.puts != 0 {
		t.Errorf("expected no cache write, got %d", cache.puts)
	}
}

// TestResolve_CacheReadFailure verifies storage failures are surfaced as
// ErrStorageUnavailable rather than falling through to the provider.
func TestResolve_CacheReadFailure(t *testing.T) {
	cache := newMemCache()
	cache.getErr = errors.New("connection pool exhausted")
	lookup := &mockLookup{officials: []civic.Official{lowerHouseOfficial("CA", "CA District 12")}}
	resolver := NewResolver(cache, lookup, nil)

	_, err := resolver.Resolve(context.Background(), "94102", "")
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("expected ErrStorageUnavailable, got %v", err)
	}
	if lookup.calls != 0 {
		t.Errorf("expected no provider calls, got %d", lookup.calls)
	}
}

// TestResolve_NoProviderConfigured verifies misses fail as unavailable in
// cache-only mode while hits still work.
func TestResolve_NoProviderConfigured(t *testing.T) {
	cache := newMemCache()
	district := "05"
	cache.entries["30301"] = &ZipDistrict{Zip: "30301", State: "GA", District: &district}
	resolver := NewResolver(cache, nil, nil)

	hit, err := resolver.Resolve(context.Background(), "30301", "")
	if err != nil {
		t.Fatalf("cache hit failed: %v", err)
	}
	if hit.State != "GA" || hit.District != "05" || !hit.Cached {
		t.Errorf("unexpected hit: %+v", hit)
	}

	_, err = resolver.Resolve(context.Background(), "94102", "")
	if !errors.Is(err, ErrResolutionUnavailable) {
		t.Errorf("expected ErrResolutionUnavailable on miss, got %v", err)
	}
}

func TestParseDistrictNumber(t *testing.T) {
	cases := []struct {
		label string
		want  string
		ok    bool
	}{
		{"CA District 12", "12", true},
		{"District 3", "03", true},
		{"NY-14", "14", true},
		{"At-Large", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := parseDistrictNumber(tc.label)
		if ok != tc.ok || got != tc.want {
			t.Errorf("parseDistrictNumber(%q) = (%q, %v), expected (%q, %v)",
				tc.label, got, ok, tc.want, tc.ok)
		}
	}
}
