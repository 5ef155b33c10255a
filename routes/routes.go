package routes

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/bhavanavimanjulkar2/Wanderlust/configs"
	"github.com/bhavanavimanjulkar2/Wanderlust/controllers"
	"github.com/bhavanavimanjulkar2/Wanderlust/middleware"
	"github.com/bhavanavimanjulkar2/Wanderlust/repository"
)

// Deps is everything the route table needs wired in from main.
type Deps struct {
	Listings *controllers.ListingController
	Reviews  *controllers.ReviewController
	Users    *controllers.UserController

	ListingRepo repository.ListingRepository
	ReviewRepo  repository.ReviewRepository

	Redis *redis.Client
}

func InitRoute(deps Deps) *gin.Engine {
	router := gin.Default()

	store := cookie.NewStore([]byte(configs.LoadEnvFor("SESSION_SECRET")))
	router.Use(sessions.Sessions("wanderlust_session", store))
	router.Use(middleware.CorsMiddleware())

	api := router.Group("/", middleware.RateLimiter(deps.Redis))
	{
		api.POST("/signup", deps.Users.Signup())
		api.POST("/login", deps.Users.Login())
		api.POST("/logout", deps.Users.Logout())

		listings := api.Group("/listings")
		{
			listings.GET("", deps.Listings.Index())
			listings.GET("/new", middleware.Auth(deps.Redis), deps.Listings.New())
			listings.GET("/filter", middleware.FilterListings(deps.ListingRepo), deps.Listings.Filtered())
			listings.GET("/:id", deps.Listings.Show())
			listings.POST("", middleware.Auth(deps.Redis), middleware.ValidateListing(), deps.Listings.Create())
			listings.GET("/:id/edit", middleware.Auth(deps.Redis), middleware.IsOwner(deps.ListingRepo), deps.Listings.Edit())
			listings.PUT("/:id", middleware.Auth(deps.Redis), middleware.IsOwner(deps.ListingRepo), middleware.ValidateListing(), deps.Listings.Update())
			listings.DELETE("/:id", middleware.Auth(deps.Redis), middleware.IsOwner(deps.ListingRepo), deps.Listings.Delete())

			listings.POST("/:id/reviews", middleware.Auth(deps.Redis), middleware.ValidateReview(), deps.Reviews.Create())
			listings.DELETE("/:id/reviews/:reviewId", middleware.Auth(deps.Redis), middleware.IsReviewAuthor(deps.ReviewRepo), deps.Reviews.Delete())
		}
	}

	return router
}
