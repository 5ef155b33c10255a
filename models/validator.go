package models

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validate is the shared schema validator. Field names in error messages come
// from the json tags so they match what the client actually sent.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateListingForm checks a listing form against the schema: required text
// fields, a non-negative price, and a locationType from the fixed set. It is a
// pure check; on failure the returned error carries every field message joined
// by commas.
func ValidateListingForm(form *ListingForm) error {
	msgs := collectMessages(Validate.Struct(form))

	if form.Listing != nil && form.Listing.LocationType != "" {
		if !LocationType(form.Listing.LocationType).Valid() {
			msgs = append(msgs, fmt.Sprintf("locationType must be one of: %s", joinLocationTypes()))
		}
	}

	if len(msgs) > 0 {
		return errors.New(strings.Join(msgs, ","))
	}
	return nil
}

// ValidateReviewForm checks a review form: non-empty content and a 1-5 rating.
func ValidateReviewForm(form *ReviewForm) error {
	if msgs := collectMessages(Validate.Struct(form)); len(msgs) > 0 {
		return errors.New(strings.Join(msgs, ","))
	}
	return nil
}

func collectMessages(err error) []string {
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	var msgs []string
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return msgs
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", fe.Field())
	case "gte":
		return fmt.Sprintf("%q must be greater than or equal to %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%q must be less than or equal to %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%q must be at least %s characters long", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%q must be at most %s characters long", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%q must be a valid email address", fe.Field())
	default:
		return fmt.Sprintf("%q is invalid", fe.Field())
	}
}

func joinLocationTypes() string {
	names := make([]string, 0, len(LocationTypes))
	for _, lt := range LocationTypes {
		names = append(names, string(lt))
	}
	return strings.Join(names, ", ")
}
