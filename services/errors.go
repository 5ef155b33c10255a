package services

import "github.com/pkg/errors"

// Operation outcomes the controllers translate into a flash message and a
// redirect target. Anything else that bubbles up is a generic persistence
// failure.
var (
	ErrListingNotFound    = errors.New("listing does not exist")
	ErrReviewNotFound     = errors.New("review does not exist")
	ErrLocationNotFound   = errors.New("location could not be found")
	ErrMissingImage       = errors.New("listing image is required")
	ErrNotOwner           = errors.New("actor does not own this listing")
	ErrNotAuthor          = errors.New("actor is not the author of this review")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
