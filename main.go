package main

import (
	"context"
	"log"

	"github.com/bhavanavimanjulkar2/Wanderlust/configs"
	"github.com/bhavanavimanjulkar2/Wanderlust/controllers"
	"github.com/bhavanavimanjulkar2/Wanderlust/geocoding"
	"github.com/bhavanavimanjulkar2/Wanderlust/repository"
	"github.com/bhavanavimanjulkar2/Wanderlust/routes"
	"github.com/bhavanavimanjulkar2/Wanderlust/services"
)

func main() {
	client, err := configs.ConnectDB(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Println(err)
		}
	}()

	rdb, err := configs.ConnectRedis()
	if err != nil {
		log.Fatal(err)
	}

	mediaService, err := services.NewCloudinaryMediaService()
	if err != nil {
		log.Fatal(err)
	}

	listingRepo := repository.NewMongoListingRepository(client)
	reviewRepo := repository.NewMongoReviewRepository(client)
	userRepo := repository.NewMongoUserRepository(client)

	geocoder := geocoding.NewMapboxClient(configs.LoadEnvFor("MAP_TOKEN"))

	listingService := services.NewListingService(listingRepo, reviewRepo, geocoder, mediaService)
	reviewService := services.NewReviewService(reviewRepo, listingRepo)
	userService := services.NewUserService(userRepo)

	router := routes.InitRoute(routes.Deps{
		Listings:    controllers.InitListingController(listingService),
		Reviews:     controllers.InitReviewController(reviewService),
		Users:       controllers.InitUserController(userService, rdb),
		ListingRepo: listingRepo,
		ReviewRepo:  reviewRepo,
		Redis:       rdb,
	})

	if err := router.Run("localhost:8080"); err != nil {
		log.Fatal(err)
	}
}
