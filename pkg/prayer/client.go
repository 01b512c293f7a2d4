package prayer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultRequestTimeout = 10 * time.Second

// Client fetches daily timings from an Aladhan-compatible API.
type Client struct {
	baseURL    string
	method     int
	httpClient *http.Client
}

func NewClient(baseURL string, method int) *Client {
	return &Client{
		baseURL:    baseURL,
		method:     method,
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
	}
}

type timingsResponse struct {
	Code int `json:"code"`
	Data struct {
		Timings map[string]string `json:"timings"`
	} `json:"data"`
}

// Timings fetches the six daily timings for a city. Timings are never
// cached: schedules shift every day, so callers fetch fresh per request.
func (c *Client) Timings(ctx context.Context, city, country string) (Timings, error) {
	query := url.Values{}
	query.Set("city", city)
	query.Set("country", country)
	query.Set("method", strconv.Itoa(c.method))

	endpoint := c.baseURL + "/v1/timingsByCity?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("prayer times request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("prayer times request returned status %d", resp.StatusCode)
	}

	var body timingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode prayer times response: %w", err)
	}
	if body.Code != http.StatusOK {
		return nil, fmt.Errorf("prayer times API returned code %d", body.Code)
	}

	timings := make(Timings, len(All))
	for _, name := range All {
		value, ok := body.Data.Timings[string(name)]
		if !ok {
			return nil, fmt.Errorf("prayer times response is missing %s", name)
		}
		timings[name] = value
	}
	return timings, nil
}
