// Package geo resolves free-text birth places to coordinates through the
// Nominatim (OpenStreetMap) search API. The core never depends on this;
// it is an edge collaborator that hands finished values back to callers.
package geo

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// DefaultBaseURL is the public Nominatim endpoint.
const DefaultBaseURL = "https://nominatim.openstreetmap.org"

const userAgent = "family-tree-v2/1.0"

// Coord is a latitude/longitude pair.
type Coord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Client is a Nominatim geocoding client.
type Client struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

// NewClient builds a geocoding client against baseURL (DefaultBaseURL
// when empty).
func NewClient(baseURL string, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(1 * time.Second).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json")

	return &Client{httpClient: client, logger: logger}
}

// Places may already be coordinate literals like "55.75, 37.61".
var coordRe = regexp.MustCompile(`^(-?\d+\.?\d*),\s*(-?\d+\.?\d*)$`)

// ParseCoord parses a "lat,lon" literal, reporting whether it matched.
func ParseCoord(place string) (Coord, bool) {
	m := coordRe.FindStringSubmatch(place)
	if m == nil {
		return Coord{}, false
	}
	lat, _ := strconv.ParseFloat(m[1], 64)
	lon, _ := strconv.ParseFloat(m[2], 64)
	return Coord{Lat: lat, Lon: lon}, true
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves a place string to coordinates. Coordinate literals are
// parsed locally without a network round trip; anything else goes to the
// search API, taking the first hit.
func (c *Client) Geocode(ctx context.Context, place string) (*Coord, error) {
	if place == "" {
		return nil, fmt.Errorf("empty place")
	}
	if coord, ok := ParseCoord(place); ok {
		return &coord, nil
	}

	var results []searchResult
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"format": "json",
			"q":      place,
			"limit":  "1",
		}).
		SetResult(&results).
		Get("/search")
	if err != nil {
		return nil, fmt.Errorf("geocode %q: %w", place, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("geocode %q: status %d", place, resp.StatusCode())
	}
	if len(results) == 0 {
		c.logger.Info("place not found", zap.String("place", place))
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode %q: bad latitude %q", place, results[0].Lat)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode %q: bad longitude %q", place, results[0].Lon)
	}

	c.logger.Debug("place resolved",
		zap.String("place", place),
		zap.Float64("lat", lat),
		zap.Float64("lon", lon),
	)
	return &Coord{Lat: lat, Lon: lon}, nil
}
