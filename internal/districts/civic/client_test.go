package civic

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const fixtureResponse = `{
  "response": {
    "results": {
      "candidates": [
        {
          "match_addr": "San Francisco, CA",
          "match_postal": "94102",
          "officials": [
            {
              "id": 321,
              "first_name": "Nancy",
              "last_name": "Pelosi",
              "party": "Democrat",
              "email_addresses": ["sf.nancy@mail.house.gov"],
              "office": {
                "title": "Representative",
                "representing_state": "CA",
                "district": {
                  "district_type": "NATIONAL_LOWER",
                  "district_id": "12",
                  "label": "CA District 12",
                  "state": "CA"
                }
              }
            }
          ]
        }
      ]
    }
  }
}`

// TestFetchLowerHouse_ParsesResponse verifies query construction and the
// flattening of candidates into a single officials slice.
func TestFetchLowerHouse_ParsesResponse(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(fixtureResponse))
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.URL)
	officials, err := client.FetchLowerHouse(context.Background(), "94102", "")
	if err != nil {
		t.Fatalf("FetchLowerHouse failed: %v", err)
	}

	if len(officials) != 1 {
		t.Fatalf("expected 1 official, got %d", len(officials))
	}
	off := officials[0]
	if off.LastName != "Pelosi" || off.Office.District.Label != "CA District 12" {
		t.Errorf("unexpected official: %+v", off)
	}

	if got := gotQuery["search_postal"]; len(got) != 1 || got[0] != "94102" {
		t.Errorf("expected search_postal=94102, got %v", got)
	}
	if got := gotQuery["key"]; len(got) != 1 || got[0] != "test-key" {
		t.Errorf("expected key=test-key, got %v", got)
	}
	if got := gotQuery["district_type"]; len(got) != 1 || got[0] != NationalLower {
		t.Errorf("expected district_type=%s, got %v", NationalLower, got)
	}
}

// TestFetchLowerHouse_AddressOverridesZip verifies a street address is
// sent as the search location instead of the postal code.
func TestFetchLowerHouse_AddressOverridesZip(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(fixtureResponse))
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.URL)
	_, err := client.FetchLowerHouse(context.Background(), "94102", "1 Dr Carlton B Goodlett Pl, San Francisco")
	if err != nil {
		t.Fatalf("FetchLowerHouse failed: %v", err)
	}

	if got := gotQuery["search_loc"]; len(got) != 1 {
		t.Fatalf("expected search_loc to be set, got %v", gotQuery)
	}
	if len(gotQuery["search_postal"]) != 0 {
		t.Errorf("expected no search_postal when address given, got %v", gotQuery["search_postal"])
	}
}

// TestFetchLowerHouse_ServerError verifies non-200 responses fail.
func TestFetchLowerHouse_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.URL)
	_, err := client.FetchLowerHouse(context.Background(), "94102", "")
	if err == nil {
		t.Fatal("expected error on 429 response")
	}
}

// TestFetchLowerHouse_MalformedPayload verifies decode failures fail.
func TestFetchLowerHouse_MalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response": [not json`))
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.URL)
	_, err := client.FetchLowerHouse(context.Background(), "94102", "")
	if err == nil {
		t.Fatal("expected error on malformed payload")
	}
}

// TestFetchLowerHouse_EmptyCandidates verifies an empty result set is not
// an error at the client layer; the resolver decides what it means.
func TestFetchLowerHouse_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response": {"results": {"candidates": []}}}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.URL)
	officials, err := client.FetchLowerHouse(context.Background(), "94102", "")
	if err != nil {
		t.Fatalf("FetchLowerHouse failed: %v", err)
	}
	if len(officials) != 0 {
		t.Errorf("expected no officials, got %d", len(officials))
	}
}

// TestHealthCheck_OK verifies a 200 response passes and the key travels in
// the minimal request.
func TestHealthCheck_OK(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"response": {"results": {"candidates": []}}}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.URL)
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Fatalf("HealthCheck failed: %v", err)
	}

	if got := gotQuery["key"]; len(got) != 1 || got[0] != "test-key" {
		t.Errorf("expected key=test-key, got %v", got)
	}
	if got := gotQuery["max"]; len(got) != 1 || got[0] != "1" {
		t.Errorf("expected max=1, got %v", got)
	}
}

// TestHealthCheck_BadKey verifies a non-200 response surfaces as an error.
func TestHealthCheck_BadKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient("bad-key", srv.URL)
	if err := client.HealthCheck(context.Background()); err == nil {
		t.Fatal("expected error on 401 response")
	}
}
