package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Owner struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Address   string             `json:"address" bson:"address"`
	Photo     string             `json:"photo" bson:"photo"`
	Birthday  time.Time          `json:"birthday" bson:"birthday"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
