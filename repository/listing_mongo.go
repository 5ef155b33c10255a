package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bhavanavimanjulkar2/Wanderlust/configs"
	"github.com/bhavanavimanjulkar2/Wanderlust/models"
)

type MongoListingRepository struct {
	collection *mongo.Collection
}

func NewMongoListingRepository(client *mongo.Client) *MongoListingRepository {
	return &MongoListingRepository{collection: configs.GetCollection(client, "Listing")}
}

func (r *MongoListingRepository) Find(ctx context.Context, query bson.M) ([]models.Listing, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, errors.Wrap(err, "finding listings")
	}
	defer cursor.Close(ctx)

	listings := []models.Listing{}
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, errors.Wrap(err, "decoding listings")
	}
	return listings, nil
}

func (r *MongoListingRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Listing, error) {
	var listing models.Listing
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&listing)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "finding listing")
	}
	return &listing, nil
}

// resolvedListing is the raw aggregation shape before review authors are
// stitched back onto their reviews.
type resolvedListing struct {
	models.Listing `bson:",inline"`
	OwnerDoc       []models.User   `bson:"owner_doc"`
	ReviewDocs     []models.Review `bson:"review_docs"`
	ReviewAuthors  []models.User   `bson:"review_authors"`
}

func (r *MongoListingRepository) FindByIDResolved(ctx context.Context, id primitive.ObjectID) (*models.ListingView, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"_id": id}},
		{
			"$lookup": bson.M{
				"from":         "User",
				"localField":   "owner",
				"foreignField": "_id",
				"as":           "owner_doc",
			},
		},
		{
			"$lookup": bson.M{
				"from":         "Review",
				"localField":   "_id",
				"foreignField": "listing",
				"as":           "review_docs",
			},
		},
		{
			"$lookup": bson.M{
				"from":         "User",
				"localField":   "review_docs.author",
				"foreignField": "_id",
				"as":           "review_authors",
			},
		},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "resolving listing")
	}
	defer cursor.Close(ctx)

	var raw resolvedListing
	if !cursor.Next(ctx) {
		return nil, ErrNotFound
	}
	if err := cursor.Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "decoding resolved listing")
	}

	view := models.ListingView{Listing: raw.Listing}
	if len(raw.OwnerDoc) > 0 {
		view.OwnerDoc = &raw.OwnerDoc[0]
	}

	authors := make(map[primitive.ObjectID]*models.User, len(raw.ReviewAuthors))
	for i := range raw.ReviewAuthors {
		authors[raw.ReviewAuthors[i].ID] = &raw.ReviewAuthors[i]
	}
	for _, review := range raw.ReviewDocs {
		view.ReviewDocs = append(view.ReviewDocs, models.ReviewView{
			Review:    review,
			AuthorDoc: authors[review.Author],
		})
	}

	return &view, nil
}

func (r *MongoListingRepository) Insert(ctx context.Context, listing *models.Listing) error {
	if _, err := r.collection.InsertOne(ctx, listing); err != nil {
		return errors.Wrap(err, "inserting listing")
	}
	return nil
}

func (r *MongoListingRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Listing, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Listing
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "updating listing")
	}
	return &updated, nil
}

func (r *MongoListingRepository) SetImage(ctx context.Context, id primitive.ObjectID, image models.ListingImage) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"image": image}})
	if err != nil {
		return errors.Wrap(err, "replacing listing image")
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoListingRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, errors.Wrap(err, "deleting listing")
	}
	return result.DeletedCount, nil
}

func (r *MongoListingRepository) PushReview(ctx context.Context, listingID, reviewID primitive.ObjectID) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": listingID}, bson.M{"$push": bson.M{"reviews": reviewID}})
	if err != nil {
		return errors.Wrap(err, "attaching review to listing")
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoListingRepository) PullReview(ctx context.Context, listingID, reviewID primitive.ObjectID) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": listingID}, bson.M{"$pull": bson.M{"reviews": reviewID}})
	if err != nil {
		return errors.Wrap(err, "detaching review from listing")
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoListingRepository) InsertMany(ctx context.Context, listings []models.Listing) error {
	docs := make([]interface{}, 0, len(listings))
	for _, l := range listings {
		docs = append(docs, l)
	}
	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return errors.Wrap(err, "bulk inserting listings")
	}
	return nil
}

func (r *MongoListingRepository) DeleteMany(ctx context.Context, query bson.M) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, query)
	if err != nil {
		return 0, errors.Wrap(err, "bulk deleting listings")
	}
	return result.DeletedCount, nil
}
