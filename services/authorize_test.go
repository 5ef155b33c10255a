package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAuthorizeOwner(t *testing.T) {
	owner := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	assert.True(t, AuthorizeOwner(owner, owner))
	assert.False(t, AuthorizeOwner(stranger, owner))
}

func TestAuthorizeReviewAuthor(t *testing.T) {
	author := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	assert.True(t, AuthorizeReviewAuthor(author, author))
	assert.False(t, AuthorizeReviewAuthor(stranger, author))
}
