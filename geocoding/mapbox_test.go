package geocoding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForwardGeocode_DecodesFeatures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Paris.json", r.URL.Path)
		assert.Equal(t, "test-token", r.URL.Query().Get("access_token"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"features": [
				{
					"place_name": "Paris, France",
					"geometry": {"type": "Point", "coordinates": [2.3522, 48.8566]}
				}
			]
		}`))
	}))
	defer srv.Close()

	client := NewMapboxClientWithBaseURL("test-token", srv.URL)
	features, err := client.ForwardGeocode(context.Background(), "Paris", 1)

	require.NoError(t, err)
	require.Len(t, features, 1)
	assert.Equal(t, "Paris, France", features[0].PlaceName)
	assert.Equal(t, "Point", features[0].Geometry.Type)
	assert.Equal(t, []float64{2.3522, 48.8566}, features[0].Geometry.Coordinates)
}

func TestForwardGeocode_EmptyResultIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"features": []}`))
	}))
	defer srv.Close()

	client := NewMapboxClientWithBaseURL("test-token", srv.URL)
	features, err := client.ForwardGeocode(context.Background(), "Nowhereville", 1)

	require.NoError(t, err)
	assert.Empty(t, features)
}

func TestForwardGeocode_NonOKStatusIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewMapboxClientWithBaseURL("bad-token", srv.URL)
	_, err := client.ForwardGeocode(context.Background(), "Paris", 1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestForwardGeocode_EscapesQueryInPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte(`{"features": []}`))
	}))
	defer srv.Close()

	client := NewMapboxClientWithBaseURL("test-token", srv.URL)
	_, err := client.ForwardGeocode(context.Background(), "New York, USA", 1)

	require.NoError(t, err)
	assert.Equal(t, "/New%20York,%20USA.json", gotPath)
}
