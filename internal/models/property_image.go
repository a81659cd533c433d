package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PropertyImage is a stored image reference. Only enabled images are
// eligible as a property's main image or returned in image listings.
type PropertyImage struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	IDProperty primitive.ObjectID `json:"idProperty" bson:"idProperty"`
	File       string             `json:"file" bson:"file"`
	Enabled    bool               `json:"enabled" bson:"enabled"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}
