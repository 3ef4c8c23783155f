package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/Gautam3767/Website_Onboarding_Backend/logger"
)

const connectTimeout = 10 * time.Second

var mongoClient *mongo.Client
var mongoDB *mongo.Database

// Connect initializes the MongoDB connection. It must run before the router
// starts accepting requests.
func Connect(ctx context.Context, uri, dbName string) error {
	if uri == "" || dbName == "" {
		return errors.New("mongo uri and database name are required")
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return fmt.Errorf("create mongo client: %w", err)
	}

	// Ping the primary so a bad URI fails at startup instead of on the first request.
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return fmt.Errorf("ping mongo: %w", err)
	}

	logger.L().Info("connected to MongoDB", zap.String("database", dbName))

	mongoClient = client
	mongoDB = client.Database(dbName)
	return nil
}

// GetCollection returns a handle to the named collection of the connected database.
func GetCollection(name string) *mongo.Collection {
	if mongoDB == nil {
		return nil
	}
	return mongoDB.Collection(name)
}

// EnsureIndexes creates the secondary indexes used by operators to look up
// submissions. It runs in the background and only logs failures.
func EnsureIndexes(coll *mongo.Collection) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()

		models := []mongo.IndexModel{
			{Keys: bson.D{{Key: "email", Value: 1}}},
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		}
		if _, err := coll.Indexes().CreateMany(ctx, models); err != nil {
			logger.L().Warn("could not create submission indexes", logger.Err(err))
			return
		}
		logger.L().Debug("submission indexes ensured")
	}()
}

// Disconnect closes the MongoDB connection on shutdown.
func Disconnect(ctx context.Context) error {
	if mongoClient == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := mongoClient.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect mongo: %w", err)
	}
	mongoClient = nil
	mongoDB = nil
	logger.L().Info("MongoDB connection closed")
	return nil
}
