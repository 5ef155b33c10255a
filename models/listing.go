package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LocationType is the fixed category tag a listing is filed under.
type LocationType string

const (
	LocationTypeArctic       LocationType = "arctic"
	LocationTypeFarms        LocationType = "farms"
	LocationTypeTrending     LocationType = "trending"
	LocationTypeRooms        LocationType = "rooms"
	LocationTypeIconicCities LocationType = "iconic cities"
	LocationTypeCastle       LocationType = "castle"
	LocationTypeAmazingPool  LocationType = "amazing pool"
	LocationTypeCamping      LocationType = "camping"
	LocationTypeBeach        LocationType = "beach"
	LocationTypeDesert       LocationType = "desert"
)

// LocationTypes lists every allowed category, in display order.
var LocationTypes = []LocationType{
	LocationTypeArctic,
	LocationTypeFarms,
	LocationTypeTrending,
	LocationTypeRooms,
	LocationTypeIconicCities,
	LocationTypeCastle,
	LocationTypeAmazingPool,
	LocationTypeCamping,
	LocationTypeBeach,
	LocationTypeDesert,
}

func (lt LocationType) Valid() bool {
	for _, v := range LocationTypes {
		if lt == v {
			return true
		}
	}
	return false
}

// ListingImage is the stored reference to an uploaded asset.
type ListingImage struct {
	URL      string `bson:"url" json:"url"`
	Filename string `bson:"filename" json:"filename"`
}

// Geometry is a GeoJSON point produced by geocoding the listing's location text.
type Geometry struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

type Listing struct {
	ID           primitive.ObjectID   `bson:"_id" json:"_id"`
	Title        string               `bson:"title" json:"title"`
	Description  string               `bson:"description" json:"description"`
	Price        float64              `bson:"price" json:"price"`
	Location     string               `bson:"location" json:"location"`
	LocationType LocationType         `bson:"location_type" json:"locationType"`
	Image        ListingImage         `bson:"image" json:"image"`
	Geometry     Geometry             `bson:"geometry" json:"geometry"`
	Owner        primitive.ObjectID   `bson:"owner" json:"owner"`
	Reviews      []primitive.ObjectID `bson:"reviews" json:"reviews"`
	Slug         string               `bson:"slug" json:"slug"`
	CreatedAt    time.Time            `bson:"created_at" json:"created_at"`
	ModifiedAt   time.Time            `bson:"modified_at" json:"modified_at"`
}

// ListingPayload is the client-supplied portion of a listing.
type ListingPayload struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Price        *float64 `json:"price" validate:"required,gte=0"`
	Location     string   `json:"location" validate:"required"`
	LocationType string   `json:"locationType" validate:"required"`
}

// ListingForm is the request body shape; the payload nests under "listing".
type ListingForm struct {
	Listing *ListingPayload `json:"listing" validate:"required"`
}

// ListingView is what show/index hand back to the caller: the listing with its
// owner and reviews resolved.
type ListingView struct {
	Listing `bson:",inline"`
	OwnerDoc   *User        `bson:"owner_doc,omitempty" json:"ownerDoc,omitempty"`
	ReviewDocs []ReviewView `bson:"review_docs,omitempty" json:"reviewDocs,omitempty"`
}
