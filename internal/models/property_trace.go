package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PropertyTrace records a historical sale of a property. Listings are
// ordered by sale date descending.
type PropertyTrace struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	DateSale   time.Time          `json:"dateSale" bson:"dateSale"`
	Name       string             `json:"name" bson:"name"`
	Value      Decimal            `json:"value" bson:"value"`
	Tax        Decimal            `json:"tax" bson:"tax"`
	IDProperty primitive.ObjectID `json:"idProperty" bson:"idProperty"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}
