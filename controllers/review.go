package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bhavanavimanjulkar2/Wanderlust/helper"
	"github.com/bhavanavimanjulkar2/Wanderlust/middleware"
	"github.com/bhavanavimanjulkar2/Wanderlust/models"
	"github.com/bhavanavimanjulkar2/Wanderlust/services"
)

type ReviewController struct {
	reviewService services.ReviewService
}

func InitReviewController(reviewService services.ReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// Create handles POST /listings/:id/reviews.
func (rc *ReviewController) Create() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		listingID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			helper.FlashAndRedirect(c, helper.FlashError, "Listing you requested does not exist", "/listings")
			return
		}

		actorID, err := middleware.CurrentUserObjectID(c)
		if err != nil {
			helper.HandleError(c, http.StatusUnauthorized, err, "unauthorized")
			return
		}

		form := c.MustGet(middleware.ContextReviewForm).(*models.ReviewForm)

		if _, err := rc.reviewService.Create(ctx, actorID, listingID, *form.Review); err != nil {
			if errors.Is(err, services.ErrListingNotFound) {
				helper.FlashAndRedirect(c, helper.FlashError, "Listing you requested does not exist", "/listings")
				return
			}
			log.Println(err)
			helper.FlashAndRedirect(c, helper.FlashError, "An error occurred while creating the review.", "/listings/"+listingID.Hex())
			return
		}

		helper.FlashAndRedirect(c, helper.FlashSuccess, "New Review Created..!", "/listings/"+listingID.Hex())
	}
}

// Delete handles DELETE /listings/:id/reviews/:reviewId. Authorship was
// checked by the IsReviewAuthor middleware.
func (rc *ReviewController) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		listingID := c.Param("id")

		reviewID, err := primitive.ObjectIDFromHex(c.Param("reviewId"))
		if err != nil {
			helper.FlashAndRedirect(c, helper.FlashError, "Review you requested does not exist", "/listings/"+listingID)
			return
		}

		listingObjectID, err := primitive.ObjectIDFromHex(listingID)
		if err != nil {
			helper.FlashAndRedirect(c, helper.FlashError, "Listing you requested does not exist", "/listings")
			return
		}

		if err := rc.reviewService.Delete(ctx, listingObjectID, reviewID); err != nil {
			if errors.Is(err, services.ErrReviewNotFound) {
				helper.FlashAndRedirect(c, helper.FlashError, "Review you requested does not exist", "/listings/"+listingID)
				return
			}
			log.Println(err)
			helper.FlashAndRedirect(c, helper.FlashError, "An error occurred while deleting the review.", "/listings/"+listingID)
			return
		}

		helper.FlashAndRedirect(c, helper.FlashSuccess, "Review Deleted..!", "/listings/"+listingID)
	}
}
