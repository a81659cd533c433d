// Package database manages the MongoDB connection for luxehub-properties.
package database

import (
	"context"
	"fmt"
	"time"

	"luxehub-properties/pkg/config"
	"luxehub-properties/pkg/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var MongoClient *mongo.Client
var DB *mongo.Database

func InitDB(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.Database.URI).
		SetConnectTimeout(10 * time.Second).
		SetMaxPoolSize(100)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %v", err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		client.Disconnect(ctx)
		return fmt.Errorf("failed to ping MongoDB: %v", err)
	}

	MongoClient = client
	DB = client.Database(cfg.Database.DBName)

	if err := CreateIndexes(DB); err != nil {
		logger.GlobalLogger.Errorf("Failed to create indexes: %v", err)
	}

	logger.GlobalLogger.Println("MongoDB connected successfully")
	return nil
}

func CloseDB() {
	if MongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := MongoClient.Disconnect(ctx); err != nil {
			logger.GlobalLogger.Errorf("Error closing MongoDB: %v", err)
		} else {
			logger.GlobalLogger.Println("MongoDB connection closed")
		}
	}
}
