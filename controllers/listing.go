package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bhavanavimanjulkar2/Wanderlust/helper"
	"github.com/bhavanavimanjulkar2/Wanderlust/middleware"
	"github.com/bhavanavimanjulkar2/Wanderlust/models"
	"github.com/bhavanavimanjulkar2/Wanderlust/services"
)

type ListingController struct {
	listingService services.ListingService
}

func InitListingController(listingService services.ListingService) *ListingController {
	return &ListingController{listingService: listingService}
}

// Index handles GET /listings with optional filter and searchQuery params.
func (lc *ListingController) Index() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		filter := c.Query("filter")
		searchQuery := c.Query("searchQuery")

		result, err := lc.listingService.Index(ctx, filter, searchQuery)
		if err != nil {
			helper.HandleError(c, http.StatusInternalServerError, err, "error while retrieving listings")
			return
		}

		helper.HandleSuccess(c, http.StatusOK, "success", gin.H{
			"allListings":       result.Listings,
			"filter":            result.Filter,
			"noListingsMessage": result.NoResultsMessage,
			"flashes":           helper.TakeFlashes(c),
		})
	}
}

// New hands back the creation form's view model.
func (lc *ListingController) New() gin.HandlerFunc {
	return func(c *gin.Context) {
		helper.HandleSuccess(c, http.StatusOK, "success", gin.H{
			"locationTypes": models.LocationTypes,
			"flashes":       helper.TakeFlashes(c),
		})
	}
}

// Show handles GET /listings/:id with reviews and owner resolved.
func (lc *ListingController) Show() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		listingID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			helper.FlashAndRedirect(c, helper.FlashError, "Listing you requested does not exist", "/listings")
			return
		}

		listing, err := lc.listingService.Show(ctx, listingID)
		if err == services.ErrListingNotFound {
			helper.FlashAndRedirect(c, helper.FlashError, "Listing you requested does not exist", "/listings")
			return
		}
		if err != nil {
			helper.HandleError(c, http.StatusInternalServerError, err, "error while retrieving listing")
			return
		}

		helper.HandleSuccess(c, http.StatusOK, "success", gin.H{
			"listing": listing,
			"flashes": helper.TakeFlashes(c),
		})
	}
}

// Edit hands back the edit form's view model for an owned listing.
func (lc *ListingController) Edit() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := c.Get(middleware.ContextListing)
		if !ok {
			helper.FlashAndRedirect(c, helper.FlashError, "Listing you requested does not exist", "/listings")
			return
		}
		listing := raw.(*models.Listing)

		// Thumbnail variant for the form preview.
		originalImageUrl := strings.Replace(listing.Image.URL, "/upload", "/upload/,w_250", 1)

		helper.HandleSuccess(c, http.StatusOK, "success", gin.H{
			"listing":          listing,
			"originalImageUrl": originalImageUrl,
			"locationTypes":    models.LocationTypes,
			"flashes":          helper.TakeFlashes(c),
		})
	}
}

// Create handles POST /listings. Geocoding, upload, and persistence failures
// all send the user back to the form with a single message.
func (lc *ListingController) Create() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		form := c.MustGet(middleware.ContextListingForm).(*models.ListingForm)

		actorID, err := middleware.CurrentUserObjectID(c)
		if err != nil {
			helper.HandleError(c, http.StatusUnauthorized, err, "unauthorized")
			return
		}

		file := formFile(c, "image")

		listing, err := lc.listingService.Create(ctx, actorID, *form.Listing, file)
		switch {
		case errors.Is(err, services.ErrLocationNotFound):
			helper.FlashAndRedirect(c, helper.FlashError, "Location could not be found.", "/listings/new")
			return
		case errors.Is(err, services.ErrMissingImage):
			helper.FlashAndRedirect(c, helper.FlashError, "An image is required to create a listing.", "/listings/new")
			return
		case isPersistenceValidationFailure(err):
			helper.FlashAndRedirect(c, helper.FlashError, "There was a validation error. Please check your input.", "/listings/new")
			return
		case err != nil:
			log.Println(err)
			helper.FlashAndRedirect(c, helper.FlashError, "An error occurred while creating the listing.", "/listings/new")
			return
		}

		log.Printf("created listing %s", listing.ID.Hex())
		helper.FlashAndRedirect(c, helper.FlashSuccess, "New Listing Created..!", "/listings")
	}
}

// Update handles PUT /listings/:id. A new upload replaces the stored image.
func (lc *ListingController) Update() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		listingID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			helper.FlashAndRedirect(c, helper.FlashError, "Listing you requested does not exist", "/listings")
			return
		}

		form := c.MustGet(middleware.ContextListingForm).(*models.ListingForm)
		file := formFile(c, "image")

		if _, err := lc.listingService.Update(ctx, listingID, *form.Listing, file); err != nil {
			if errors.Is(err, services.ErrListingNotFound) {
				helper.FlashAndRedirect(c, helper.FlashError, "Listing you requested does not exist", "/listings")
				return
			}
			log.Println(err)
			helper.FlashAndRedirect(c, helper.FlashError, "An error occurred while updating the listing.", "/listings/"+listingID.Hex())
			return
		}

		helper.FlashAndRedirect(c, helper.FlashSuccess, "Listing Updated.!", "/listings/"+listingID.Hex())
	}
}

// Delete handles DELETE /listings/:id. Deleting an id that is already gone
// still redirects with the success message.
func (lc *ListingController) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		listingID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			helper.FlashAndRedirect(c, helper.FlashError, "Listing you requested does not exist", "/listings")
			return
		}

		deleted, err := lc.listingService.Delete(ctx, listingID)
		if err != nil {
			log.Println(err)
			helper.FlashAndRedirect(c, helper.FlashError, "An error occurred while deleting the listing.", "/listings")
			return
		}
		if deleted == 0 {
			log.Printf("delete of listing %s removed nothing", listingID.Hex())
		}

		helper.FlashAndRedirect(c, helper.FlashSuccess, "Listing Deleted.!", "/listings")
	}
}

// Filtered serves the category-strip path; the listings were fetched by the
// FilterListings middleware.
func (lc *ListingController) Filtered() gin.HandlerFunc {
	return func(c *gin.Context) {
		listings := c.MustGet(middleware.ContextFilteredListings).([]models.Listing)

		helper.HandleSuccess(c, http.StatusOK, "success", gin.H{
			"allListings": listings,
			"filter":      c.Query("listing[locationType]"),
			"flashes":     helper.TakeFlashes(c),
		})
	}
}

// formFile pulls an optional uploaded file off the multipart form.
func formFile(c *gin.Context, field string) *models.File {
	f, _, err := c.Request.FormFile(field)
	if err != nil {
		return nil
	}
	return &models.File{File: f}
}

func isPersistenceValidationFailure(err error) bool {
	if err == nil {
		return false
	}
	if mongo.IsDuplicateKeyError(err) {
		return true
	}
	var writeErr mongo.WriteException
	return errors.As(err, &writeErr)
}
