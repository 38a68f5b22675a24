package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoord(t *testing.T) {
	tests := []struct {
		in   string
		want Coord
		ok   bool
	}{
		{"55.75, 37.61", Coord{55.75, 37.61}, true},
		{"55.75,37.61", Coord{55.75, 37.61}, true},
		{"-33.86, 151.20", Coord{-33.86, 151.20}, true},
		{"60, 30", Coord{60, 30}, true},
		{"Moscow", Coord{}, false},
		{"55.75", Coord{}, false},
		{"", Coord{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseCoord(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, "input %q", tt.in)
		}
	}
}

func TestGeocodeLiteralSkipsNetwork(t *testing.T) {
	// A coordinate literal must resolve locally; the bogus base URL would
	// fail any request.
	c := NewClient("http://127.0.0.1:0", nil)
	coord, err := c.Geocode(context.Background(), "55.75, 37.61")
	require.NoError(t, err)
	require.NotNil(t, coord)
	assert.Equal(t, 55.75, coord.Lat)
	assert.Equal(t, 37.61, coord.Lon)
}

func TestGeocodeSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "Moscow", r.URL.Query().Get("q"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"55.7558","lon":"37.6173"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	coord, err := c.Geocode(context.Background(), "Moscow")
	require.NoError(t, err)
	require.NotNil(t, coord)
	assert.InDelta(t, 55.7558, coord.Lat, 1e-9)
	assert.InDelta(t, 37.6173, coord.Lon, 1e-9)
}

func TestGeocodeNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	coord, err := c.Geocode(context.Background(), "Nowhereville")
	require.NoError(t, err)
	assert.Nil(t, coord)
}

func TestGeocodeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, err := c.Geocode(context.Background(), "Moscow")
	assert.Error(t, err)
}

func TestGeocodeEmptyPlace(t *testing.T) {
	c := NewClient("", nil)
	_, err := c.Geocode(context.Background(), "")
	assert.Error(t, err)
}
