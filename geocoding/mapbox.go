package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

const mapboxBaseURL = "https://api.mapbox.com/geocoding/v5/mapbox.places"

// MapboxClient is the production Geocoder over the Mapbox places endpoint.
type MapboxClient struct {
	token   string
	baseURL string
	client  *http.Client
}

func NewMapboxClient(token string) *MapboxClient {
	return &MapboxClient{
		token:   token,
		baseURL: mapboxBaseURL,
		client:  &http.Client{Timeout: 40 * time.Second},
	}
}

// NewMapboxClientWithBaseURL exists for tests pointing at a local server.
func NewMapboxClientWithBaseURL(token, baseURL string) *MapboxClient {
	c := NewMapboxClient(token)
	c.baseURL = baseURL
	return c
}

func (m *MapboxClient) ForwardGeocode(ctx context.Context, query string, limit int) ([]Feature, error) {
	endpoint := fmt.Sprintf("%s/%s.json", m.baseURL, url.PathEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building geocoding request")
	}

	q := req.URL.Query()
	q.Set("access_token", m.token)
	q.Set("limit", strconv.Itoa(limit))
	req.URL.RawQuery = q.Encode()

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "calling geocoding service")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("geocoding service returned status %d", resp.StatusCode)
	}

	var body struct {
		Features []Feature `json:"features"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "decoding geocoding response")
	}

	return body.Features, nil
}
