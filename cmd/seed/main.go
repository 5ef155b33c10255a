package main

import (
	"context"
	"log"
	"time"

	"github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bhavanavimanjulkar2/Wanderlust/configs"
	"github.com/bhavanavimanjulkar2/Wanderlust/models"
	"github.com/bhavanavimanjulkar2/Wanderlust/repository"
)

// seedOwner is the account every sample listing belongs to.
const seedOwner = "66ec171d57cf5c5f4ace77d4"

type seedListing struct {
	title        string
	description  string
	price        float64
	location     string
	locationType models.LocationType
	imageURL     string
	lng, lat     float64
}

var sampleListings = []seedListing{
	{
		title:        "Cozy Beachfront Cottage",
		description:  "Escape to this charming beachfront cottage for a relaxing getaway. Enjoy stunning ocean views and easy access to the beach.",
		price:        1500,
		location:     "Malibu",
		locationType: models.LocationTypeBeach,
		imageURL:     "https://images.unsplash.com/photo-1552733407-5d5c46c3bb3b",
		lng:          -118.7798, lat: 34.0259,
	},
	{
		title:        "Modern Loft in Downtown",
		description:  "Stay in the heart of the city in this stylish loft apartment. Perfect for urban explorers!",
		price:        1200,
		location:     "New York City",
		locationType: models.LocationTypeIconicCities,
		imageURL:     "https://images.unsplash.com/photo-1501785888041-af3ef285b470",
		lng:          -74.0060, lat: 40.7128,
	},
	{
		title:        "Mountain Retreat",
		description:  "Unplug and unwind in this peaceful mountain cabin surrounded by forest trails.",
		price:        1000,
		location:     "Aspen",
		locationType: models.LocationTypeCamping,
		imageURL:     "https://images.unsplash.com/photo-1571896349842-33c89424de2d",
		lng:          -106.8175, lat: 39.1911,
	},
	{
		title:        "Historic Castle Stay",
		description:  "Live like royalty in this restored castle with sweeping views of the countryside.",
		price:        4000,
		location:     "Edinburgh",
		locationType: models.LocationTypeCastle,
		imageURL:     "https://images.unsplash.com/photo-1585543805890-6051f7829f98",
		lng:          -3.1883, lat: 55.9533,
	},
	{
		title:        "Desert Oasis Villa",
		description:  "A private villa with an amazing pool in the middle of the desert. Stargazing included.",
		price:        2200,
		location:     "Dubai",
		locationType: models.LocationTypeDesert,
		imageURL:     "https://images.unsplash.com/photo-1518684079-3c830dcef090",
		lng:          55.2708, lat: 25.2048,
	},
	{
		title:        "Lakeside Farm Stay",
		description:  "Wake up to roosters and fresh eggs on this working farm beside a quiet lake.",
		price:        800,
		location:     "Vermont",
		locationType: models.LocationTypeFarms,
		imageURL:     "https://images.unsplash.com/photo-1500382017468-9049fed747ef",
		lng:          -72.5778, lat: 44.5588,
	},
	{
		title:        "Arctic Glass Igloo",
		description:  "Watch the northern lights from bed in this heated glass igloo above the Arctic Circle.",
		price:        3100,
		location:     "Rovaniemi",
		locationType: models.LocationTypeArctic,
		imageURL:     "https://images.unsplash.com/photo-1517784377154-8e55d8d40f4e",
		lng:          25.7294, lat: 66.5039,
	},
}

func main() {
	ctx := context.Background()

	client, err := configs.ConnectDB(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Println(err)
		}
	}()

	owner, err := primitive.ObjectIDFromHex(seedOwner)
	if err != nil {
		log.Fatal(err)
	}

	listings := make([]models.Listing, 0, len(sampleListings))
	now := time.Now()
	for _, s := range sampleListings {
		listings = append(listings, models.Listing{
			ID:           primitive.NewObjectID(),
			Title:        s.title,
			Description:  s.description,
			Price:        s.price,
			Location:     s.location,
			LocationType: s.locationType,
			Image:        models.ListingImage{URL: s.imageURL, Filename: "listingimage"},
			Geometry:     models.Geometry{Type: "Point", Coordinates: []float64{s.lng, s.lat}},
			Owner:        owner,
			Reviews:      []primitive.ObjectID{},
			Slug:         slug.Make(s.title),
			CreatedAt:    now,
			ModifiedAt:   now,
		})
	}

	repo := repository.NewMongoListingRepository(client)

	if _, err := repo.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatal(err)
	}
	if err := repo.InsertMany(ctx, listings); err != nil {
		log.Fatal(err)
	}

	log.Println("Data was initialized..")
}
