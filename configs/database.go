package configs

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const DatabaseName = "wanderlust"

// ConnectDB dials MongoDB once at process start. The returned client is passed
// explicitly to whoever needs a collection; there is no package-level connection.
func ConnectDB(ctx context.Context) (*mongo.Client, error) {
	client, err := mongo.NewClient(options.Client().ApplyURI(LoadEnvFor("DATABASE_URL")))
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err = client.Connect(ctx); err != nil {
		return nil, err
	}

	// try to ping the database
	if err = client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	log.Println("Connected to MongoDB")
	return client, nil
}

// GetCollection Get collection from Db
func GetCollection(client *mongo.Client, name string) *mongo.Collection {
	return client.Database(DatabaseName).Collection(name)
}

func ConnectRedis() (*redis.Client, error) {
	addr, err := redis.ParseURL(LoadEnvFor("REDIS_URL"))
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(addr)

	log.Println("Connected to Redis")
	return client, nil
}
