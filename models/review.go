package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	Content   string             `bson:"content" json:"content"`
	Rating    int                `bson:"rating" json:"rating"`
	Author    primitive.ObjectID `bson:"author" json:"author"`
	Listing   primitive.ObjectID `bson:"listing" json:"listing"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// ReviewView is a review with its author resolved, as embedded in a listing view.
type ReviewView struct {
	Review    `bson:",inline"`
	AuthorDoc *User `bson:"author_doc,omitempty" json:"authorDoc,omitempty"`
}

// ReviewPayload is the client-supplied portion of a review.
type ReviewPayload struct {
	Content string `json:"content" validate:"required"`
	Rating  *int   `json:"rating" validate:"required,gte=1,lte=5"`
}

// ReviewForm is the request body shape; the payload nests under "review".
type ReviewForm struct {
	Review *ReviewPayload `json:"review" validate:"required"`
}
