package cache

import (
	"fmt"
	"net/url"
	"strings"
)

// AbsentField is the placeholder encoded into list keys for criteria fields
// that were not supplied, so logically identical queries always map to the
// same key.
const AbsentField = "-"

// PropertyListPrefix is the prefix shared by every cached list-query
// variant; writes invalidate the whole prefix.
const PropertyListPrefix = "properties:"

// PropertyKey returns the cache key for a single property.
func PropertyKey(id string) string {
	return fmt.Sprintf("property:%s", id)
}

// PropertyListKey returns the cache key for a filtered, paginated property
// listing. Name and address are lowercased because matching is
// case-insensitive; two queries that differ only in case hit the same entry.
func PropertyListKey(name, address, minPrice, maxPrice string, pageNumber, pageSize int) string {
	return fmt.Sprintf("%s%s:%s:%s:%s:%d:%d",
		PropertyListPrefix,
		keySegment(strings.ToLower(name)),
		keySegment(strings.ToLower(address)),
		keySegment(minPrice),
		keySegment(maxPrice),
		pageNumber,
		pageSize,
	)
}

// keySegment escapes a criteria value so the colon-separated key stays
// collision-free across distinct criteria tuples.
func keySegment(s string) string {
	if s == "" {
		return AbsentField
	}
	return url.QueryEscape(s)
}
