package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Property struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Address      string             `json:"address" bson:"address"`
	Price        Decimal            `json:"price" bson:"price"`
	CodeInternal string             `json:"codeInternal" bson:"codeInternal"`
	Year         int                `json:"year" bson:"year"`
	IDOwner      primitive.ObjectID `json:"idOwner" bson:"idOwner"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`

	// Populated by the enrichment join, never persisted on the property
	// document itself.
	Owner     *Owner  `json:"owner,omitempty" bson:"owner,omitempty"`
	MainImage *string `json:"mainImage,omitempty" bson:"mainImage,omitempty"`
}

// PropertyCriteria carries the optional list filters. Name and address
// match as case-insensitive substrings; price bounds are inclusive.
type PropertyCriteria struct {
	Name     string
	Address  string
	MinPrice *Decimal
	MaxPrice *Decimal
}
