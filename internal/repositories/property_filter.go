package repositories

import (
	"regexp"

	"luxehub-properties/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BuildPropertyFilter translates optional criteria into a store filter.
// Name and address match as case-insensitive literal substrings; when both
// are present a document must match both (AND semantics). Price bounds are
// inclusive. Empty criteria yield an empty filter that matches everything.
// MinPrice <= MaxPrice is guaranteed upstream and not re-checked here.
func BuildPropertyFilter(criteria models.PropertyCriteria) bson.M {
	filter := bson.M{}

	if criteria.Name != "" {
		filter["name"] = substringMatch(criteria.Name)
	}
	if criteria.Address != "" {
		filter["address"] = substringMatch(criteria.Address)
	}

	if criteria.MinPrice != nil || criteria.MaxPrice != nil {
		price := bson.M{}
		if criteria.MinPrice != nil {
			price["$gte"] = *criteria.MinPrice
		}
		if criteria.MaxPrice != nil {
			price["$lte"] = *criteria.MaxPrice
		}
		filter["price"] = price
	}

	return filter
}

// substringMatch builds a case-insensitive substring condition. The input
// is quoted so user text is never interpreted as a regex.
func substringMatch(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}
