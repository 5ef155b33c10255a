package services

import (
	"context"
	"log"
	"time"

	"github.com/gosimple/slug"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bhavanavimanjulkar2/Wanderlust/geocoding"
	"github.com/bhavanavimanjulkar2/Wanderlust/models"
	"github.com/bhavanavimanjulkar2/Wanderlust/repository"
)

// IndexResult carries the listings page data back to the caller. Filter echoes
// the active selection so the view can reflect it; NoResultsMessage is set only
// when nothing matched.
type IndexResult struct {
	Listings         []models.Listing
	Filter           string
	NoResultsMessage string
}

const noResultsMessage = "No listings found matching your search criteria."

// ListingService orchestrates listing CRUD over the persistence, geocoding,
// and media collaborators.
type ListingService interface {
	Index(ctx context.Context, filter, searchQuery string) (*IndexResult, error)
	Show(ctx context.Context, id primitive.ObjectID) (*models.ListingView, error)
	Create(ctx context.Context, owner primitive.ObjectID, payload models.ListingPayload, file *models.File) (*models.Listing, error)
	Update(ctx context.Context, id primitive.ObjectID, payload models.ListingPayload, file *models.File) (*models.Listing, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type ListingServiceImpl struct {
	listings repository.ListingRepository
	reviews  repository.ReviewRepository
	geocoder geocoding.Geocoder
	media    MediaService
}

func NewListingService(listings repository.ListingRepository, reviews repository.ReviewRepository, geocoder geocoding.Geocoder, media MediaService) *ListingServiceImpl {
	return &ListingServiceImpl{
		listings: listings,
		reviews:  reviews,
		geocoder: geocoder,
		media:    media,
	}
}

func (s *ListingServiceImpl) Index(ctx context.Context, filter, searchQuery string) (*IndexResult, error) {
	query := BuildListingQuery(filter, searchQuery)

	listings, err := s.listings.Find(ctx, query)
	if err != nil {
		return nil, err
	}

	result := &IndexResult{Listings: listings, Filter: filter}
	if len(listings) == 0 {
		result.NoResultsMessage = noResultsMessage
	}
	return result, nil
}

func (s *ListingServiceImpl) Show(ctx context.Context, id primitive.ObjectID) (*models.ListingView, error) {
	view, err := s.listings.FindByIDResolved(ctx, id)
	if err == repository.ErrNotFound {
		return nil, ErrListingNotFound
	}
	if err != nil {
		return nil, err
	}
	return view, nil
}

// Create geocodes the location before anything is persisted or uploaded: an
// unknown location aborts the whole operation, and a missing upload is a
// precondition violation rather than a blank image.
func (s *ListingServiceImpl) Create(ctx context.Context, owner primitive.ObjectID, payload models.ListingPayload, file *models.File) (*models.Listing, error) {
	features, err := s.geocoder.ForwardGeocode(ctx, payload.Location, 1)
	if err != nil {
		return nil, errors.Wrap(err, "geocoding listing location")
	}
	if len(features) == 0 {
		return nil, ErrLocationNotFound
	}

	if file == nil || file.File == nil {
		return nil, ErrMissingImage
	}

	image, err := s.media.FileUpload(ctx, *file)
	if err != nil {
		return nil, errors.Wrap(err, "uploading listing image")
	}

	now := time.Now()
	listing := &models.Listing{
		ID:           primitive.NewObjectID(),
		Title:        payload.Title,
		Description:  payload.Description,
		Price:        *payload.Price,
		Location:     payload.Location,
		LocationType: models.LocationType(payload.LocationType),
		Image:        image,
		Geometry:     features[0].Geometry,
		Owner:        owner,
		Reviews:      []primitive.ObjectID{},
		Slug:         slug.Make(payload.Title),
		CreatedAt:    now,
		ModifiedAt:   now,
	}

	if err := s.listings.Insert(ctx, listing); err != nil {
		if derr := s.media.DestroyMedia(ctx, image.Filename); derr != nil {
			log.Printf("failed to clean up uploaded image %s: %v", image.Filename, derr)
		}
		return nil, err
	}

	return listing, nil
}

// Update merges the provided fields into the stored listing; a new upload
// replaces the image as a second persisted step.
func (s *ListingServiceImpl) Update(ctx context.Context, id primitive.ObjectID, payload models.ListingPayload, file *models.File) (*models.Listing, error) {
	fields := bson.M{
		"title":         payload.Title,
		"description":   payload.Description,
		"price":         *payload.Price,
		"location":      payload.Location,
		"location_type": payload.LocationType,
		"modified_at":   time.Now(),
	}

	listing, err := s.listings.UpdateFields(ctx, id, fields)
	if err == repository.ErrNotFound {
		return nil, ErrListingNotFound
	}
	if err != nil {
		return nil, err
	}

	if file != nil && file.File != nil {
		image, err := s.media.FileUpload(ctx, *file)
		if err != nil {
			return nil, errors.Wrap(err, "uploading replacement image")
		}
		if err := s.listings.SetImage(ctx, id, image); err != nil {
			return nil, err
		}
		listing.Image = image
	}

	return listing, nil
}

// Delete removes the listing and its reviews. A zero deleted count is reported
// to the caller, not treated as a failure.
func (s *ListingServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	deleted, err := s.listings.DeleteByID(ctx, id)
	if err != nil {
		return 0, err
	}

	if deleted > 0 {
		if _, err := s.reviews.DeleteByListing(ctx, id); err != nil {
			log.Printf("failed to delete reviews for listing %s: %v", id.Hex(), err)
		}
	}

	return deleted, nil
}
