package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bhavanavimanjulkar2/Wanderlust/configs"
	"github.com/bhavanavimanjulkar2/Wanderlust/models"
)

type MongoReviewRepository struct {
	collection *mongo.Collection
}

func NewMongoReviewRepository(client *mongo.Client) *MongoReviewRepository {
	return &MongoReviewRepository{collection: configs.GetCollection(client, "Review")}
}

func (r *MongoReviewRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error) {
	var review models.Review
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&review)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "finding review")
	}
	return &review, nil
}

func (r *MongoReviewRepository) Insert(ctx context.Context, review *models.Review) error {
	if _, err := r.collection.InsertOne(ctx, review); err != nil {
		return errors.Wrap(err, "inserting review")
	}
	return nil
}

func (r *MongoReviewRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, errors.Wrap(err, "deleting review")
	}
	return result.DeletedCount, nil
}

func (r *MongoReviewRepository) DeleteByListing(ctx context.Context, listingID primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"listing": listingID})
	if err != nil {
		return 0, errors.Wrap(err, "deleting listing reviews")
	}
	return result.DeletedCount, nil
}
