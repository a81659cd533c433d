package models

import (
	"fmt"
	"math/big"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Decimal is an exact decimal amount stored as BSON Decimal128. Prices
// round-trip through JSON and BSON without floating-point drift; JSON
// carries the value as a string.
type Decimal struct {
	dec primitive.Decimal128
}

// NewDecimal wraps a Decimal128 value.
func NewDecimal(d primitive.Decimal128) Decimal {
	return Decimal{dec: d}
}

// ParseDecimal parses a decimal string such as "250000" or "1999.99".
func ParseDecimal(s string) (Decimal, error) {
	d, err := primitive.ParseDecimal128(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("invalid decimal %q: %v", s, err)
	}
	return Decimal{dec: d}, nil
}

// Decimal128 returns the underlying BSON representation.
func (d Decimal) Decimal128() primitive.Decimal128 {
	return d.dec
}

func (d Decimal) String() string {
	return d.dec.String()
}

// Cmp compares d with other exactly, returning -1, 0 or +1.
func (d Decimal) Cmp(other Decimal) int {
	a, aok := new(big.Rat).SetString(d.dec.String())
	b, bok := new(big.Rat).SetString(other.dec.String())
	if !aok || !bok {
		return 0
	}
	return a.Cmp(b)
}

// IsNegative reports whether the value is below zero.
func (d Decimal) IsNegative() bool {
	zero, _ := ParseDecimal("0")
	return d.Cmp(zero) < 0
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.dec.String() + `"`), nil
}

func (d *Decimal) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	parsed, err := ParseDecimal(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Decimal) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(d.dec)
}

func (d *Decimal) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	return raw.Unmarshal(&d.dec)
}
