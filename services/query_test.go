package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildListingQuery_FilterOnly(t *testing.T) {
	query := BuildListingQuery("beach", "")

	assert.Equal(t, bson.M{"location_type": "beach"}, query)
}

func TestBuildListingQuery_SearchOnly(t *testing.T) {
	query := BuildListingQuery("", "paris")

	assert.NotContains(t, query, "location_type")

	or, ok := query["$or"].(bson.A)
	assert.True(t, ok)
	assert.Len(t, or, 3)

	fields := map[string]bool{}
	for _, clause := range or {
		for field, cond := range clause.(bson.M) {
			fields[field] = true
			regex := cond.(bson.M)
			assert.Equal(t, "paris", regex["$regex"])
			assert.Equal(t, "i", regex["$options"])
		}
	}
	assert.Equal(t, map[string]bool{"title": true, "description": true, "location": true}, fields)
}

func TestBuildListingQuery_FilterAndSearchCombine(t *testing.T) {
	query := BuildListingQuery("castle", "edinburgh")

	assert.Equal(t, "castle", query["location_type"])
	assert.Len(t, query["$or"], 3)
}

func TestBuildListingQuery_EmptyMatchesEverything(t *testing.T) {
	assert.Equal(t, bson.M{}, BuildListingQuery("", ""))
}

func TestBuildFilterQuery_MatchesListingQuerySemantics(t *testing.T) {
	assert.Equal(t, BuildListingQuery("farms", ""), BuildFilterQuery("farms"))
	assert.Equal(t, bson.M{}, BuildFilterQuery(""))
}
