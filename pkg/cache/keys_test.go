package cache

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropertyKey(t *testing.T) {
	assert.Equal(t, "property:abc123", PropertyKey("abc123"))
}

func TestPropertyListKeyDeterministic(t *testing.T) {
	a := PropertyListKey("Villa", "Ocean Drive", "100000", "500000", 1, 10)
	b := PropertyListKey("Villa", "Ocean Drive", "100000", "500000", 1, 10)
	assert.Equal(t, a, b)
}

func TestPropertyListKeyAbsentFieldsUsePlaceholder(t *testing.T) {
	key := PropertyListKey("", "", "", "", 1, 10)
	assert.Equal(t, "properties:-:-:-:-:1:10", key)
}

func TestPropertyListKeyCaseInsensitive(t *testing.T) {
	a := PropertyListKey("VILLA", "Ocean DRIVE", "", "", 1, 10)
	b := PropertyListKey("villa", "ocean drive", "", "", 1, 10)
	assert.Equal(t, a, b)
}

func TestPropertyListKeyDistinguishesCriteria(t *testing.T) {
	keys := map[string]bool{
		PropertyListKey("villa", "", "", "", 1, 10):       true,
		PropertyListKey("", "villa", "", "", 1, 10):       true,
		PropertyListKey("villa", "", "", "", 2, 10):       true,
		PropertyListKey("villa", "", "", "", 1, 20):       true,
		PropertyListKey("villa", "", "100", "", 1, 10):    true,
		PropertyListKey("villa", "", "", "100", 1, 10):    true,
		PropertyListKey("villa", "", "100", "200", 1, 10): true,
	}
	assert.Len(t, keys, 7)
}

func TestPropertyListKeyEscapesSeparator(t *testing.T) {
	// A value containing the separator must not collide with a shifted
	// criteria tuple.
	a := PropertyListKey("a:b", "c", "", "", 1, 10)
	b := PropertyListKey("a", "b:c", "", "", 1, 10)
	assert.NotEqual(t, a, b)
}

func TestPropertyListKeySharesInvalidationPrefix(t *testing.T) {
	key := PropertyListKey("villa", "ocean", "1", "2", 3, 4)
	assert.True(t, strings.HasPrefix(key, PropertyListPrefix))
}
