package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bhavanavimanjulkar2/Wanderlust/helper"
	"github.com/bhavanavimanjulkar2/Wanderlust/repository"
	"github.com/bhavanavimanjulkar2/Wanderlust/services"
)

const authorizeTimeout = 50 * time.Second

// CurrentUserObjectID reads the authenticated actor id placed by Auth.
func CurrentUserObjectID(c *gin.Context) (primitive.ObjectID, error) {
	raw, ok := c.Get(ContextUserID)
	if !ok {
		return primitive.NilObjectID, errors.New("no authenticated user on request")
	}
	id, ok := raw.(string)
	if !ok {
		return primitive.NilObjectID, errors.New("malformed user id on request")
	}
	return primitive.ObjectIDFromHex(id)
}

// IsOwner loads the listing and checks ownership before any mutation. A
// missing listing is not-found, never an authorization denial; both paths end
// the request with a flash and a redirect.
func IsOwner(listings repository.ListingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), authorizeTimeout)
		defer cancel()

		listingID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "invalid listing id was provided")
			c.Abort()
			return
		}

		actorID, err := CurrentUserObjectID(c)
		if err != nil {
			helper.HandleError(c, http.StatusUnauthorized, err, "unauthorized")
			c.Abort()
			return
		}

		listing, err := listings.FindByID(ctx, listingID)
		if err == repository.ErrNotFound {
			helper.FlashAndRedirect(c, helper.FlashError, "Listing you requested does not exist", "/listings")
			c.Abort()
			return
		}
		if err != nil {
			helper.HandleError(c, http.StatusInternalServerError, err, "error while retrieving listing")
			c.Abort()
			return
		}

		if !services.AuthorizeOwner(actorID, listing.Owner) {
			helper.FlashAndRedirect(c, helper.FlashError, "You don't have access to Edit or delete this listing.", "/listings/"+listingID.Hex())
			c.Abort()
			return
		}

		c.Set(ContextListing, listing)
		c.Next()
	}
}

// IsReviewAuthor loads the review and checks authorship before deletion, with
// the same not-found versus denied distinction as IsOwner.
func IsReviewAuthor(reviews repository.ReviewRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), authorizeTimeout)
		defer cancel()

		listingID := c.Param("id")

		reviewID, err := primitive.ObjectIDFromHex(c.Param("reviewId"))
		if err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "invalid review id was provided")
			c.Abort()
			return
		}

		actorID, err := CurrentUserObjectID(c)
		if err != nil {
			helper.HandleError(c, http.StatusUnauthorized, err, "unauthorized")
			c.Abort()
			return
		}

		review, err := reviews.FindByID(ctx, reviewID)
		if err == repository.ErrNotFound {
			helper.FlashAndRedirect(c, helper.FlashError, "Review you requested does not exist", "/listings/"+listingID)
			c.Abort()
			return
		}
		if err != nil {
			helper.HandleError(c, http.StatusInternalServerError, err, "error while retrieving review")
			c.Abort()
			return
		}

		if !services.AuthorizeReviewAuthor(actorID, review.Author) {
			helper.FlashAndRedirect(c, helper.FlashError, "You don't have access to delete this Review.", "/listings/"+listingID)
			c.Abort()
			return
		}

		c.Next()
	}
}
