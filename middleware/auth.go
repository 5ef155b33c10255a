package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/bhavanavimanjulkar2/Wanderlust/configs"
	"github.com/bhavanavimanjulkar2/Wanderlust/helper"
)

// Context keys set by the middleware chain for downstream handlers.
const (
	ContextUserID  = "currentUserId"
	ContextListing = "listing"
)

// Auth gates every mutating route. Unauthenticated requests get the flash
// treatment and a redirect to the login page, never a bare fault.
func Auth(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := configs.ExtractToken(c)
		if tokenString == "" {
			helper.FlashAndRedirect(c, helper.FlashError, "You must be logged in to create listing", "/login")
			c.Abort()
			return
		}

		claims, err := configs.ValidateToken(tokenString)
		if err != nil {
			helper.FlashAndRedirect(c, helper.FlashError, "You must be logged in to create listing", "/login")
			c.Abort()
			return
		}

		if !helper.IsTokenValid(rdb, tokenString) {
			helper.FlashAndRedirect(c, helper.FlashError, "Your session has expired, please login again", "/login")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.Id)
		c.Next()
	}
}
