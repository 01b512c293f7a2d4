package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultRequestTimeout = 10 * time.Second

// Place is a point of interest resolved from the Overpass API.
type Place struct {
	Name    string
	Address string
	Lat     float64
	Lon     float64
}

// HasCoords reports whether the place carries usable coordinates.
func (p Place) HasCoords() bool {
	return p.Lat != 0 || p.Lon != 0
}

// Client queries an Overpass API endpoint for mosques in a named area.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient(endpoint string) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
	}
}

type overpassResponse struct {
	Elements []struct {
		Lat    float64 `json:"lat"`
		Lon    float64 `json:"lon"`
		Center struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"center"`
		Tags map[string]string `json:"tags"`
	} `json:"elements"`
}

// FindMosques resolves the city name to an Overpass area and returns
// muslim places of worship inside it. Ways carry centroid coordinates,
// nodes direct ones; missing tags are tolerated.
func (c *Client) FindMosques(ctx context.Context, city string) ([]Place, error) {
	query := fmt.Sprintf(`
[out:json];
area["name"=%q]->.city;
(
  node["amenity"="place_of_worship"]["religion"="muslim"](area.city);
  way["amenity"="place_of_worship"]["religion"="muslim"](area.city);
);
out center;
`, city)

	form := url.Values{}
	form.Set("data", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("overpass request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("overpass request returned status %d", resp.StatusCode)
	}

	var body overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode overpass response: %w", err)
	}

	places := make([]Place, 0, len(body.Elements))
	for _, element := range body.Elements {
		place := Place{
			Name:    element.Tags["name"],
			Address: element.Tags["addr:street"],
			Lat:     element.Lat,
			Lon:     element.Lon,
		}
		if place.Lat == 0 && place.Lon == 0 {
			place.Lat = element.Center.Lat
			place.Lon = element.Center.Lon
		}
		if place.Name == "" {
			place.Name = "Mosque"
		}
		places = append(places, place)
	}
	return places, nil
}
