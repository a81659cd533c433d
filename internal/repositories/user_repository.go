package repositories

import (
	"context"
	"time"

	"luxehub-properties/internal/models"
	"luxehub-properties/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type userRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{
		collection: db.Collection("users"),
	}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	start := time.Now()
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	metrics.MongoOperationDuration.WithLabelValues("find_one", "users").Observe(time.Since(start).Seconds())
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find_one", "users").Inc()
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	start := time.Now()
	_, err := r.collection.InsertOne(ctx, user)
	metrics.MongoOperationDuration.WithLabelValues("insert", "users").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("insert", "users").Inc()
		return err
	}
	return nil
}
