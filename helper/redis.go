package helper

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

func InvalidateToken(db *redis.Client, tokenString string) error {
	// Denylist the token for as long as it could still be alive.
	_, err := db.Set(context.Background(), tokenString, true, 24*time.Hour).Result()
	if err != nil {
		return err
	}

	return nil
}

func IsTokenValid(db *redis.Client, tokenString string) bool {
	_, err := db.Get(context.Background(), tokenString).Result()
	if err == redis.Nil {
		// Token is not in the denylist, so it's valid
		return true
	}
	if err != nil {
		log.Printf("Error while checking denylist: %s", err)
		return false
	}

	return false
}
