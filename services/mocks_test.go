package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bhavanavimanjulkar2/Wanderlust/geocoding"
	"github.com/bhavanavimanjulkar2/Wanderlust/models"
)

type MockListingRepository struct{ mock.Mock }

func (m *MockListingRepository) Find(ctx context.Context, query bson.M) ([]models.Listing, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Listing), args.Error(1)
}

func (m *MockListingRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Listing), args.Error(1)
}

func (m *MockListingRepository) FindByIDResolved(ctx context.Context, id primitive.ObjectID) (*models.ListingView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ListingView), args.Error(1)
}

func (m *MockListingRepository) Insert(ctx context.Context, listing *models.Listing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}

func (m *MockListingRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Listing, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Listing), args.Error(1)
}

func (m *MockListingRepository) SetImage(ctx context.Context, id primitive.ObjectID, image models.ListingImage) error {
	args := m.Called(ctx, id, image)
	return args.Error(0)
}

func (m *MockListingRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockListingRepository) PushReview(ctx context.Context, listingID, reviewID primitive.ObjectID) error {
	args := m.Called(ctx, listingID, reviewID)
	return args.Error(0)
}

func (m *MockListingRepository) PullReview(ctx context.Context, listingID, reviewID primitive.ObjectID) error {
	args := m.Called(ctx, listingID, reviewID)
	return args.Error(0)
}

func (m *MockListingRepository) InsertMany(ctx context.Context, listings []models.Listing) error {
	args := m.Called(ctx, listings)
	return args.Error(0)
}

func (m *MockListingRepository) DeleteMany(ctx context.Context, query bson.M) (int64, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(int64), args.Error(1)
}

type MockReviewRepository struct{ mock.Mock }

func (m *MockReviewRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) Insert(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReviewRepository) DeleteByListing(ctx context.Context, listingID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, listingID)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Insert(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockGeocoder struct{ mock.Mock }

func (m *MockGeocoder) ForwardGeocode(ctx context.Context, query string, limit int) ([]geocoding.Feature, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]geocoding.Feature), args.Error(1)
}

type MockMediaService struct{ mock.Mock }

func (m *MockMediaService) FileUpload(ctx context.Context, file models.File) (models.ListingImage, error) {
	args := m.Called(ctx, file)
	return args.Get(0).(models.ListingImage), args.Error(1)
}

func (m *MockMediaService) DestroyMedia(ctx context.Context, filename string) error {
	args := m.Called(ctx, filename)
	return args.Error(0)
}
