package geocoding

import (
	"context"

	"github.com/bhavanavimanjulkar2/Wanderlust/models"
)

// Feature is a single forward-geocoding match.
type Feature struct {
	PlaceName string          `json:"place_name"`
	Geometry  models.Geometry `json:"geometry"`
}

// Geocoder converts free-text location strings into geographic features. An
// empty result slice is a normal outcome, not an error.
type Geocoder interface {
	ForwardGeocode(ctx context.Context, query string, limit int) ([]Feature, error)
}
