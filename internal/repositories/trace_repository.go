package repositories

import (
	"context"
	"time"

	"luxehub-properties/internal/models"
	"luxehub-properties/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type traceRepository struct {
	collection *mongo.Collection
}

func NewPropertyTraceRepository(db *mongo.Database) PropertyTraceRepository {
	return &traceRepository{
		collection: db.Collection("propertyTraces"),
	}
}

func (r *traceRepository) FindByID(ctx context.Context, id string) (*models.PropertyTrace, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	start := time.Now()
	var trace models.PropertyTrace
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&trace)
	metrics.MongoOperationDuration.WithLabelValues("find_one", "propertyTraces").Observe(time.Since(start).Seconds())
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		metrics.MongoErrorsTotal.WithLabelValues("find_one", "propertyTraces").Inc()
		return nil, err
	}
	return &trace, nil
}

// FindByProperty returns every sale trace of a property, newest sale first.
func (r *traceRepository) FindByProperty(ctx context.Context, propertyID string) ([]models.PropertyTrace, error) {
	oid, err := primitive.ObjectIDFromHex(propertyID)
	if err != nil {
		return []models.PropertyTrace{}, nil
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "dateSale", Value: -1}})
	start := time.Now()
	cursor, err := r.collection.Find(ctx, bson.M{"idProperty": oid}, findOptions)
	metrics.MongoOperationDuration.WithLabelValues("find", "propertyTraces").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", "propertyTraces").Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	traces := []models.PropertyTrace{}
	start = time.Now()
	err = cursor.All(ctx, &traces)
	metrics.MongoOperationDuration.WithLabelValues("cursor_all", "propertyTraces").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", "propertyTraces").Inc()
		return nil, err
	}
	return traces, nil
}

func (r *traceRepository) Create(ctx context.Context, trace *models.PropertyTrace) error {
	trace.ID = primitive.NewObjectID()
	start := time.Now()
	_, err := r.collection.InsertOne(ctx, trace)
	metrics.MongoOperationDuration.WithLabelValues("insert", "propertyTraces").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("insert", "propertyTraces").Inc()
		return err
	}
	return nil
}
