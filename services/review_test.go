package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bhavanavimanjulkar2/Wanderlust/models"
	"github.com/bhavanavimanjulkar2/Wanderlust/repository"
)

func intPtr(i int) *int { return &i }

func TestReviewCreate_AttachesReviewToListing(t *testing.T) {
	listings := new(MockListingRepository)
	reviews := new(MockReviewRepository)

	author := primitive.NewObjectID()
	listingID := primitive.NewObjectID()

	listings.On("FindByID", mock.Anything, listingID).Return(&models.Listing{ID: listingID}, nil)
	reviews.On("Insert", mock.Anything, mock.Anything).Return(nil)
	listings.On("PushReview", mock.Anything, listingID, mock.Anything).Return(nil)

	svc := NewReviewService(reviews, listings)
	review, err := svc.Create(context.Background(), author, listingID, models.ReviewPayload{Content: "Lovely stay", Rating: intPtr(5)})

	require.NoError(t, err)
	assert.Equal(t, author, review.Author)
	assert.Equal(t, listingID, review.Listing)
	listings.AssertCalled(t, "PushReview", mock.Anything, listingID, review.ID)
}

func TestReviewCreate_MissingListingIsNotFound(t *testing.T) {
	listings := new(MockListingRepository)
	reviews := new(MockReviewRepository)

	listingID := primitive.NewObjectID()
	listings.On("FindByID", mock.Anything, listingID).Return(nil, repository.ErrNotFound)

	svc := NewReviewService(reviews, listings)
	_, err := svc.Create(context.Background(), primitive.NewObjectID(), listingID, models.ReviewPayload{Content: "x", Rating: intPtr(3)})

	require.ErrorIs(t, err, ErrListingNotFound)
	reviews.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestReviewDelete_RemovesAndDetaches(t *testing.T) {
	listings := new(MockListingRepository)
	reviews := new(MockReviewRepository)

	listingID := primitive.NewObjectID()
	reviewID := primitive.NewObjectID()

	listings.On("PullReview", mock.Anything, listingID, reviewID).Return(nil)
	reviews.On("DeleteByID", mock.Anything, reviewID).Return(int64(1), nil)

	svc := NewReviewService(reviews, listings)
	require.NoError(t, svc.Delete(context.Background(), listingID, reviewID))
}

func TestReviewDelete_MissingReviewIsNotFound(t *testing.T) {
	listings := new(MockListingRepository)
	reviews := new(MockReviewRepository)

	listingID := primitive.NewObjectID()
	reviewID := primitive.NewObjectID()

	listings.On("PullReview", mock.Anything, listingID, reviewID).Return(repository.ErrNotFound)
	reviews.On("DeleteByID", mock.Anything, reviewID).Return(int64(0), nil)

	svc := NewReviewService(reviews, listings)
	err := svc.Delete(context.Background(), listingID, reviewID)

	require.ErrorIs(t, err, ErrReviewNotFound)
}
