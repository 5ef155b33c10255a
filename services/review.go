package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bhavanavimanjulkar2/Wanderlust/models"
	"github.com/bhavanavimanjulkar2/Wanderlust/repository"
)

// ReviewService handles review creation and author-gated deletion.
type ReviewService interface {
	Create(ctx context.Context, author, listingID primitive.ObjectID, payload models.ReviewPayload) (*models.Review, error)
	Delete(ctx context.Context, listingID, reviewID primitive.ObjectID) error
}

type ReviewServiceImpl struct {
	reviews  repository.ReviewRepository
	listings repository.ListingRepository
}

func NewReviewService(reviews repository.ReviewRepository, listings repository.ListingRepository) *ReviewServiceImpl {
	return &ReviewServiceImpl{reviews: reviews, listings: listings}
}

func (s *ReviewServiceImpl) Create(ctx context.Context, author, listingID primitive.ObjectID, payload models.ReviewPayload) (*models.Review, error) {
	if _, err := s.listings.FindByID(ctx, listingID); err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrListingNotFound
		}
		return nil, err
	}

	review := &models.Review{
		ID:        primitive.NewObjectID(),
		Content:   payload.Content,
		Rating:    *payload.Rating,
		Author:    author,
		Listing:   listingID,
		CreatedAt: time.Now(),
	}

	if err := s.reviews.Insert(ctx, review); err != nil {
		return nil, err
	}

	if err := s.listings.PushReview(ctx, listingID, review.ID); err != nil {
		return nil, err
	}

	return review, nil
}

func (s *ReviewServiceImpl) Delete(ctx context.Context, listingID, reviewID primitive.ObjectID) error {
	if err := s.listings.PullReview(ctx, listingID, reviewID); err != nil && err != repository.ErrNotFound {
		return err
	}

	deleted, err := s.reviews.DeleteByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrReviewNotFound
	}
	return nil
}
