package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bhavanavimanjulkar2/Wanderlust/helper"
	"github.com/bhavanavimanjulkar2/Wanderlust/models"
	"github.com/bhavanavimanjulkar2/Wanderlust/repository"
	"github.com/bhavanavimanjulkar2/Wanderlust/services"
)

// Context keys for payloads parsed by validation middleware.
const (
	ContextListingForm      = "listingForm"
	ContextReviewForm       = "reviewForm"
	ContextFilteredListings = "filteredListings"
)

// ValidateListing parses the multipart "data" field into a listing form and
// runs the schema check. Validation failures end the request with a 400
// carrying the comma-joined field messages.
func ValidateListing() gin.HandlerFunc {
	return func(c *gin.Context) {
		var form models.ListingForm
		jsonData := c.PostForm("data")
		if err := json.Unmarshal([]byte(jsonData), &form); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "Invalid JSON data")
			c.Abort()
			return
		}

		if err := models.ValidateListingForm(&form); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, err.Error())
			c.Abort()
			return
		}

		c.Set(ContextListingForm, &form)
		c.Next()
	}
}

// ValidateReview binds and checks a review payload the same way.
func ValidateReview() gin.HandlerFunc {
	return func(c *gin.Context) {
		var form models.ReviewForm
		if err := c.ShouldBindJSON(&form); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "Invalid JSON data")
			c.Abort()
			return
		}

		if err := models.ValidateReviewForm(&form); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, err.Error())
			c.Abort()
			return
		}

		c.Set(ContextReviewForm, &form)
		c.Next()
	}
}

// FilterListings serves the category-strip path, which sends the filter under
// the bracketed key. The fetched listings ride the request context.
func FilterListings(listings repository.ListingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 50*time.Second)
		defer cancel()

		filter := c.Query("listing[locationType]")

		filtered, err := listings.Find(ctx, services.BuildFilterQuery(filter))
		if err != nil {
			helper.HandleError(c, http.StatusInternalServerError, err, "error while retrieving listings")
			c.Abort()
			return
		}

		c.Set(ContextFilteredListings, filtered)
		c.Next()
	}
}
