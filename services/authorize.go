package services

import "go.mongodb.org/mongo-driver/bson/primitive"

// AuthorizeOwner reports whether the actor may mutate a listing. The caller
// must have established that the listing exists; a missing listing is a
// not-found condition, never an authorization decision.
func AuthorizeOwner(actorID, ownerID primitive.ObjectID) bool {
	return actorID == ownerID
}

// AuthorizeReviewAuthor reports whether the actor may delete a review.
func AuthorizeReviewAuthor(actorID, authorID primitive.ObjectID) bool {
	return actorID == authorID
}
