package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bhavanavimanjulkar2/Wanderlust/models"
)

// ErrNotFound is returned when a referenced document does not exist.
var ErrNotFound = errors.New("document not found")

// ListingRepository is the persistence collaborator for listings.
type ListingRepository interface {
	Find(ctx context.Context, query bson.M) ([]models.Listing, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Listing, error)
	// FindByIDResolved eagerly resolves the listing's owner, its reviews, and
	// each review's author.
	FindByIDResolved(ctx context.Context, id primitive.ObjectID) (*models.ListingView, error)
	Insert(ctx context.Context, listing *models.Listing) error
	// UpdateFields merges the given fields into the stored listing and returns
	// the updated document.
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Listing, error)
	SetImage(ctx context.Context, id primitive.ObjectID, image models.ListingImage) error
	// DeleteByID removes a listing and reports how many documents went away.
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
	PushReview(ctx context.Context, listingID, reviewID primitive.ObjectID) error
	PullReview(ctx context.Context, listingID, reviewID primitive.ObjectID) error

	// Bulk operations used by the seeder.
	InsertMany(ctx context.Context, listings []models.Listing) error
	DeleteMany(ctx context.Context, query bson.M) (int64, error)
}

// ReviewRepository is the persistence collaborator for reviews.
type ReviewRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error)
	Insert(ctx context.Context, review *models.Review) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
	DeleteByListing(ctx context.Context, listingID primitive.ObjectID) (int64, error)
}

// UserRepository is the persistence collaborator for users.
type UserRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
}
