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

type imageRepository struct {
	collection *mongo.Collection
}

func NewPropertyImageRepository(db *mongo.Database) PropertyImageRepository {
	return &imageRepository{
		collection: db.Collection("propertyImages"),
	}
}

func (r *imageRepository) FindByID(ctx context.Context, id string) (*models.PropertyImage, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	start := time.Now()
	var image models.PropertyImage
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&image)
	metrics.MongoOperationDuration.WithLabelValues("find_one", "propertyImages").Observe(time.Since(start).Seconds())
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		metrics.MongoErrorsTotal.WithLabelValues("find_one", "propertyImages").Inc()
		return nil, err
	}
	return &image, nil
}

// FindEnabledByProperty returns the enabled images of a property ordered by
// image id, the same tie-break the list pipeline uses for the main image.
func (r *imageRepository) FindEnabledByProperty(ctx context.Context, propertyID string) ([]models.PropertyImage, error) {
	oid, err := primitive.ObjectIDFromHex(propertyID)
	if err != nil {
		return []models.PropertyImage{}, nil
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	start := time.Now()
	cursor, err := r.collection.Find(ctx, bson.M{"idProperty": oid, "enabled": true}, findOptions)
	metrics.MongoOperationDuration.WithLabelValues("find", "propertyImages").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", "propertyImages").Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	images := []models.PropertyImage{}
	start = time.Now()
	err = cursor.All(ctx, &images)
	metrics.MongoOperationDuration.WithLabelValues("cursor_all", "propertyImages").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", "propertyImages").Inc()
		return nil, err
	}
	return images, nil
}

func (r *imageRepository) FindWithPagination(ctx context.Context, propertyID string, skip, take int) ([]models.PropertyImage, int64, error) {
	filter := bson.M{}
	if propertyID != "" {
		oid, err := primitive.ObjectIDFromHex(propertyID)
		if err != nil {
			return []models.PropertyImage{}, 0, nil
		}
		filter["idProperty"] = oid
	}

	start := time.Now()
	total, err := r.collection.CountDocuments(ctx, filter)
	metrics.MongoOperationDuration.WithLabelValues("count_documents", "propertyImages").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("count_documents", "propertyImages").Inc()
		return nil, 0, err
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(take))

	start = time.Now()
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	metrics.MongoOperationDuration.WithLabelValues("find", "propertyImages").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", "propertyImages").Inc()
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	images := []models.PropertyImage{}
	start = time.Now()
	err = cursor.All(ctx, &images)
	metrics.MongoOperationDuration.WithLabelValues("cursor_all", "propertyImages").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", "propertyImages").Inc()
		return nil, 0, err
	}
	return images, total, nil
}

func (r *imageRepository) Create(ctx context.Context, image *models.PropertyImage) error {
	image.ID = primitive.NewObjectID()
	start := time.Now()
	_, err := r.collection.InsertOne(ctx, image)
	metrics.MongoOperationDuration.WithLabelValues("insert", "propertyImages").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("insert", "propertyImages").Inc()
		return err
	}
	return nil
}
