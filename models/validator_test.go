package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validListingPayload() *ListingPayload {
	price := 1200.0
	return &ListingPayload{
		Title:        "Mountain View Cabin",
		Description:  "A quiet cabin with a view of the peaks.",
		Price:        &price,
		Location:     "Aspen",
		LocationType: "camping",
	}
}

func TestValidateListingForm_AcceptsCompletePayload(t *testing.T) {
	require.NoError(t, ValidateListingForm(&ListingForm{Listing: validListingPayload()}))
}

func TestValidateListingForm_MissingListingObject(t *testing.T) {
	err := ValidateListingForm(&ListingForm{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"listing" is required`)
}

func TestValidateListingForm_MissingRequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ListingPayload)
		field  string
	}{
		{"title", func(p *ListingPayload) { p.Title = "" }, "title"},
		{"description", func(p *ListingPayload) { p.Description = "" }, "description"},
		{"price", func(p *ListingPayload) { p.Price = nil }, "price"},
		{"location", func(p *ListingPayload) { p.Location = "" }, "location"},
		{"locationType", func(p *ListingPayload) { p.LocationType = "" }, "locationType"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := validListingPayload()
			tc.mutate(payload)

			err := ValidateListingForm(&ListingForm{Listing: payload})

			require.Error(t, err)
			assert.Contains(t, err.Error(), `"`+tc.field+`" is required`)
		})
	}
}

func TestValidateListingForm_NegativePrice(t *testing.T) {
	payload := validListingPayload()
	price := -50.0
	payload.Price = &price

	err := ValidateListingForm(&ListingForm{Listing: payload})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"price" must be greater than or equal to 0`)
}

func TestValidateListingForm_ZeroPriceIsAccepted(t *testing.T) {
	payload := validListingPayload()
	price := 0.0
	payload.Price = &price

	require.NoError(t, ValidateListingForm(&ListingForm{Listing: payload}))
}

func TestValidateListingForm_UnknownLocationType(t *testing.T) {
	for _, bad := range []string{"volcano", "Beach", "beachfront"} {
		payload := validListingPayload()
		payload.LocationType = bad

		err := ValidateListingForm(&ListingForm{Listing: payload})

		require.Error(t, err, bad)
		assert.Contains(t, err.Error(), "locationType must be one of:")
	}
}

func TestValidateListingForm_EveryKnownLocationTypeIsAccepted(t *testing.T) {
	for _, lt := range LocationTypes {
		payload := validListingPayload()
		payload.LocationType = string(lt)

		require.NoError(t, ValidateListingForm(&ListingForm{Listing: payload}), string(lt))
	}
}

func TestValidateListingForm_JoinsMessagesWithCommas(t *testing.T) {
	err := ValidateListingForm(&ListingForm{Listing: &ListingPayload{}})

	require.Error(t, err)
	assert.GreaterOrEqual(t, strings.Count(err.Error(), ","), 3)
}

func TestValidateReviewForm(t *testing.T) {
	rating := func(r int) *int { return &r }

	t.Run("accepts valid review", func(t *testing.T) {
		require.NoError(t, ValidateReviewForm(&ReviewForm{
			Review: &ReviewPayload{Content: "Great place", Rating: rating(4)},
		}))
	})

	t.Run("rejects empty content", func(t *testing.T) {
		err := ValidateReviewForm(&ReviewForm{
			Review: &ReviewPayload{Rating: rating(4)},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"content" is required`)
	})

	t.Run("rejects out of range rating", func(t *testing.T) {
		err := ValidateReviewForm(&ReviewForm{
			Review: &ReviewPayload{Content: "ok", Rating: rating(6)},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"rating" must be less than or equal to 5`)
	})

	t.Run("rejects zero rating", func(t *testing.T) {
		err := ValidateReviewForm(&ReviewForm{
			Review: &ReviewPayload{Content: "ok", Rating: rating(0)},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"rating" must be greater than or equal to 1`)
	})
}
