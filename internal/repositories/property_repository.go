package repositories

import (
	"context"
	"time"

	apperrors "luxehub-properties/internal/errors"
	"luxehub-properties/internal/models"
	"luxehub-properties/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type propertyRepository struct {
	collection *mongo.Collection
	owners     *mongo.Collection
}

func NewPropertyRepository(db *mongo.Database) PropertyRepository {
	return &propertyRepository{
		collection: db.Collection("properties"),
		owners:     db.Collection("owners"),
	}
}

// FindWithFilters runs the list pipeline: filter, sort by creation time
// descending, page, then left-join the owner and the first enabled image.
// The image tie-break is the lowest image id, stable for a fixed snapshot.
func (r *propertyRepository) FindWithFilters(ctx context.Context, criteria models.PropertyCriteria, skip, take int) ([]models.Property, error) {
	pipeline := []bson.D{
		{{Key: "$match", Value: BuildPropertyFilter(criteria)}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$skip", Value: skip}},
		{{Key: "$limit", Value: take}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "owners",
			"localField":   "idOwner",
			"foreignField": "_id",
			"as":           "owner",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$owner",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from": "propertyImages",
			"let":  bson.M{"pid": "$_id"},
			"pipeline": bson.A{
				bson.M{"$match": bson.M{"$expr": bson.M{"$and": bson.A{
					bson.M{"$eq": bson.A{"$idProperty", "$$pid"}},
					bson.M{"$eq": bson.A{"$enabled", true}},
				}}}},
				bson.M{"$sort": bson.M{"_id": 1}},
				bson.M{"$limit": 1},
			},
			"as": "enabledImages",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"mainImage": bson.M{"$ifNull": bson.A{
				bson.M{"$arrayElemAt": bson.A{"$enabledImages.file", 0}},
				nil,
			}},
		}}},
		{{Key: "$project", Value: bson.M{"enabledImages": 0}}},
	}

	start := time.Now()
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	metrics.MongoOperationDuration.WithLabelValues("aggregate", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("aggregate", "properties").Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	properties := []models.Property{}
	start = time.Now()
	err = cursor.All(ctx, &properties)
	metrics.MongoOperationDuration.WithLabelValues("cursor_all", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", "properties").Inc()
		return nil, err
	}
	return properties, nil
}

func (r *propertyRepository) CountWithFilters(ctx context.Context, criteria models.PropertyCriteria) (int64, error) {
	start := time.Now()
	total, err := r.collection.CountDocuments(ctx, BuildPropertyFilter(criteria))
	metrics.MongoOperationDuration.WithLabelValues("count_documents", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("count_documents", "properties").Inc()
		return 0, err
	}
	return total, nil
}

// FindByIDWithOwner fetches one property and attaches its owner. A missing
// property yields (nil, nil); a missing owner leaves the field empty.
func (r *propertyRepository) FindByIDWithOwner(ctx context.Context, id string) (*models.Property, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	start := time.Now()
	var property models.Property
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&property)
	metrics.MongoOperationDuration.WithLabelValues("find_one", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		metrics.MongoErrorsTotal.WithLabelValues("find_one", "properties").Inc()
		return nil, err
	}

	start = time.Now()
	var owner models.Owner
	err = r.owners.FindOne(ctx, bson.M{"_id": property.IDOwner}).Decode(&owner)
	metrics.MongoOperationDuration.WithLabelValues("find_one", "owners").Observe(time.Since(start).Seconds())
	if err == nil {
		property.Owner = &owner
	} else if err != mongo.ErrNoDocuments {
		metrics.MongoErrorsTotal.WithLabelValues("find_one", "owners").Inc()
		return nil, err
	}
	return &property, nil
}

func (r *propertyRepository) Exists(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	start := time.Now()
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": oid}, options.Count().SetLimit(1))
	metrics.MongoOperationDuration.WithLabelValues("count_documents", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("count_documents", "properties").Inc()
		return false, err
	}
	return count > 0, nil
}

func (r *propertyRepository) CodeInternalExists(ctx context.Context, code string) (bool, error) {
	start := time.Now()
	count, err := r.collection.CountDocuments(ctx, bson.M{"codeInternal": code}, options.Count().SetLimit(1))
	metrics.MongoOperationDuration.WithLabelValues("count_documents", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("count_documents", "properties").Inc()
		return false, err
	}
	return count > 0, nil
}

func (r *propertyRepository) Create(ctx context.Context, property *models.Property) error {
	property.ID = primitive.NewObjectID()
	start := time.Now()
	_, err := r.collection.InsertOne(ctx, property)
	metrics.MongoOperationDuration.WithLabelValues("insert", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("insert", "properties").Inc()
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.NewConflict("property with internal code %q already exists", property.CodeInternal)
		}
		return err
	}
	return nil
}
