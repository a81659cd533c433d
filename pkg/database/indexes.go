package database

import (
	"context"
	"time"

	"luxehub-properties/pkg/logger"
	"luxehub-properties/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIndexes creates the indexes backing list filters, the enrichment
// joins and the unique internal-code constraint.
func CreateIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	properties := db.Collection("properties")
	start := time.Now()
	_, err := properties.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "createdAt", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "idOwner", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "price", Value: 1}, {Key: "createdAt", Value: -1}},
		},
		{
			Keys:    bson.D{{Key: "codeInternal", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	metrics.MongoOperationDuration.WithLabelValues("create_indexes", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("create_indexes", "properties").Inc()
		return err
	}

	images := db.Collection("propertyImages")
	start = time.Now()
	_, err = images.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "idProperty", Value: 1}, {Key: "enabled", Value: 1}},
		},
	})
	metrics.MongoOperationDuration.WithLabelValues("create_indexes", "propertyImages").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("create_indexes", "propertyImages").Inc()
		return err
	}

	traces := db.Collection("propertyTraces")
	start = time.Now()
	_, err = traces.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "idProperty", Value: 1}, {Key: "dateSale", Value: -1}},
		},
	})
	metrics.MongoOperationDuration.WithLabelValues("create_indexes", "propertyTraces").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("create_indexes", "propertyTraces").Inc()
		return err
	}

	logger.GlobalLogger.Println("MongoDB indexes created successfully")
	return nil
}
