package validators

import (
	"strings"
	"testing"

	apperrors "luxehub-properties/internal/errors"
	"luxehub-properties/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestValidateListAcceptsEmptyCriteria(t *testing.T) {
	v := NewPropertyValidator()
	assert.NoError(t, v.ValidateList(models.PropertyCriteria{}, 1, 10))
}

func TestValidateListPageTuple(t *testing.T) {
	v := NewPropertyValidator()

	assert.Error(t, v.ValidateList(models.PropertyCriteria{}, 0, 10))
	assert.Error(t, v.ValidateList(models.PropertyCriteria{}, -1, 10))
	assert.Error(t, v.ValidateList(models.PropertyCriteria{}, 1, 0))
	assert.Error(t, v.ValidateList(models.PropertyCriteria{}, 1, 101))
	assert.NoError(t, v.ValidateList(models.PropertyCriteria{}, 1, 100))
}

func TestValidateListPriceRange(t *testing.T) {
	v := NewPropertyValidator()

	neg, err := models.ParseDecimal("-1")
	require.NoError(t, err)
	assert.Error(t, v.ValidateList(models.PropertyCriteria{MinPrice: &neg}, 1, 10))
	assert.Error(t, v.ValidateList(models.PropertyCriteria{MaxPrice: &neg}, 1, 10))

	min, _ := models.ParseDecimal("200")
	max, _ := models.ParseDecimal("100")
	err = v.ValidateList(models.PropertyCriteria{MinPrice: &min, MaxPrice: &max}, 1, 10)
	assert.True(t, apperrors.IsValidation(err))

	equal, _ := models.ParseDecimal("100")
	assert.NoError(t, v.ValidateList(models.PropertyCriteria{MinPrice: &max, MaxPrice: &equal}, 1, 10))
}

func TestValidateListCriteriaLengths(t *testing.T) {
	v := NewPropertyValidator()

	assert.Error(t, v.ValidateList(models.PropertyCriteria{Name: strings.Repeat("x", 101)}, 1, 10))
	assert.Error(t, v.ValidateList(models.PropertyCriteria{Address: strings.Repeat("x", 201)}, 1, 10))
	assert.NoError(t, v.ValidateList(models.PropertyCriteria{Name: strings.Repeat("x", 100)}, 1, 10))
}

func TestValidateCreate(t *testing.T) {
	v := NewPropertyValidator()
	price, _ := models.ParseDecimal("250000")

	valid := models.CreatePropertyRequest{
		Name:         "Casa Loma",
		Address:      "12 Ocean Drive",
		Price:        price,
		CodeInternal: "CL-001",
		Year:         2015,
		IDOwner:      primitive.NewObjectID().Hex(),
	}
	assert.NoError(t, v.ValidateCreate(&valid))

	t.Run("negative price", func(t *testing.T) {
		req := valid
		req.Price, _ = models.ParseDecimal("-100")
		assert.Error(t, v.ValidateCreate(&req))
	})

	t.Run("year out of range", func(t *testing.T) {
		req := valid
		req.Year = 1800
		assert.Error(t, v.ValidateCreate(&req))
		req.Year = 2200
		assert.Error(t, v.ValidateCreate(&req))
	})

	t.Run("malformed owner id", func(t *testing.T) {
		req := valid
		req.IDOwner = "not-an-object-id"
		err := v.ValidateCreate(&req)
		assert.True(t, apperrors.IsValidation(err))
	})
}
