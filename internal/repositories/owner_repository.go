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

type ownerRepository struct {
	collection *mongo.Collection
}

func NewOwnerRepository(db *mongo.Database) OwnerRepository {
	return &ownerRepository{
		collection: db.Collection("owners"),
	}
}

func (r *ownerRepository) FindByID(ctx context.Context, id string) (*models.Owner, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	start := time.Now()
	var owner models.Owner
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&owner)
	metrics.MongoOperationDuration.WithLabelValues("find_one", "owners").Observe(time.Since(start).Seconds())
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		metrics.MongoErrorsTotal.WithLabelValues("find_one", "owners").Inc()
		return nil, err
	}
	return &owner, nil
}

func (r *ownerRepository) FindWithPagination(ctx context.Context, skip, take int) ([]models.Owner, int64, error) {
	start := time.Now()
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	metrics.MongoOperationDuration.WithLabelValues("count_documents", "owners").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("count_documents", "owners").Inc()
		return nil, 0, err
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(take))

	start = time.Now()
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	metrics.MongoOperationDuration.WithLabelValues("find", "owners").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", "owners").Inc()
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	owners := []models.Owner{}
	start = time.Now()
	err = cursor.All(ctx, &owners)
	metrics.MongoOperationDuration.WithLabelValues("cursor_all", "owners").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", "owners").Inc()
		return nil, 0, err
	}
	return owners, total, nil
}

func (r *ownerRepository) Exists(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	start := time.Now()
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": oid}, options.Count().SetLimit(1))
	metrics.MongoOperationDuration.WithLabelValues("count_documents", "owners").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("count_documents", "owners").Inc()
		return false, err
	}
	return count > 0, nil
}

func (r *ownerRepository) Create(ctx context.Context, owner *models.Owner) error {
	owner.ID = primitive.NewObjectID()
	start := time.Now()
	_, err := r.collection.InsertOne(ctx, owner)
	metrics.MongoOperationDuration.WithLabelValues("insert", "owners").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("insert", "owners").Inc()
		return err
	}
	return nil
}
