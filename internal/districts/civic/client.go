package civic

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the officials API endpoint.
	DefaultBaseURL = "https://app.cicerodata.com/v3.1/official"

	// NationalLower is the district type for the national lower chamber.
	NationalLower = "NATIONAL_LOWER"

	// ResultMax is the maximum number of results to request. A single
	// address sits in exactly one congressional district, so this is
	// plenty of headroom.
	ResultMax = 25
)

// Client is an HTTP client for the officials API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new officials API client. An empty baseURL selects
// the production endpoint. The API is metered per call, so requests are
// rate-limited client-side as well as cached upstream.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Every(500*time.Millisecond), 2),
	}
}

// FetchLowerHouse fetches national lower-chamber officials for a location.
// The free-text address takes precedence over the postal code as the
// search term when provided.
func (c *Client) FetchLowerHouse(ctx context.Context, zip, address string) ([]Official, error) {
	params := url.Values{}
	if address != "" {
		params.Set("search_loc", address)
	} else {
		params.Set("search_postal", zip)
	}
	params.Set("search_country", "US")
	params.Set("format", "json")
	params.Set("key", c.apiKey)
	params.Set("max", strconv.Itoa(ResultMax))
	params.Add("district_type", NationalLower)

	fullURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	start := time.Now()
	logRequest("civic", "GET", c.baseURL, map[string]interface{}{
		"zip":           zip,
		"district_type": NationalLower,
	})

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logError("civic", "fetch", err)
		return nil, fmt.Errorf("civic request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("civic status %d", resp.StatusCode)
		logError("civic", "fetch", err)
		return nil, err
	}

	var page APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		logError("civic", "decode", err)
		return nil, fmt.Errorf("decode civic: %w", err)
	}

	var all []Official
	for _, candidate := range page.Response.Results.Candidates {
		all = append(all, candidate.Officials...)
	}

	logResponse("civic", resp.StatusCode, time.Since(start), len(all))

	return all, nil
}

// HealthCheck verifies the API key is valid by making a minimal request.
func (c *Client) HealthCheck(ctx context.Context) error {
	params := url.Values{}
	params.Set("search_postal", "20001") // DC ZIP
	params.Set("search_country", "US")
	params.Set("format", "json")
	params.Set("key", c.apiKey)
	params.Set("max", "1")
	params.Add("district_type", NationalLower)

	fullURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", fullURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("health check request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed: status %d", resp.StatusCode)
	}

	return nil
}
