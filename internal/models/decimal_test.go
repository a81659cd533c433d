package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal(t *testing.T) {
	d, err := ParseDecimal("1999.99")
	require.NoError(t, err)
	assert.Equal(t, "1999.99", d.String())

	_, err = ParseDecimal("not-a-number")
	assert.Error(t, err)
}

func TestDecimalJSONRoundTrip(t *testing.T) {
	d, err := ParseDecimal("250000.50")
	require.NoError(t, err)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"250000.50"`, string(data))

	var back Decimal
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, 0, d.Cmp(back))
}

func TestDecimalUnmarshalAcceptsBareNumber(t *testing.T) {
	var d Decimal
	require.NoError(t, json.Unmarshal([]byte(`199.99`), &d))
	assert.Equal(t, "199.99", d.String())
}

func TestDecimalPreservesExactRepresentation(t *testing.T) {
	// 0.1 is not representable in binary floating point; the decimal
	// type must carry it exactly.
	d, err := ParseDecimal("0.1")
	require.NoError(t, err)
	assert.Equal(t, "0.1", d.String())

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"0.1"`, string(data))
}

func TestDecimalCmp(t *testing.T) {
	small, _ := ParseDecimal("100")
	big, _ := ParseDecimal("200.5")
	alsoSmall, _ := ParseDecimal("100.00")

	assert.Equal(t, -1, small.Cmp(big))
	assert.Equal(t, 1, big.Cmp(small))
	assert.Equal(t, 0, small.Cmp(alsoSmall))
}

func TestDecimalIsNegative(t *testing.T) {
	neg, _ := ParseDecimal("-0.01")
	zero, _ := ParseDecimal("0")
	pos, _ := ParseDecimal("5")

	assert.True(t, neg.IsNegative())
	assert.False(t, zero.IsNegative())
	assert.False(t, pos.IsNegative())
}
