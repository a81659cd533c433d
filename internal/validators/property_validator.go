package validators

import (
	apperrors "luxehub-properties/internal/errors"
	"luxehub-properties/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	maxNameLength    = 100
	maxAddressLength = 200
	maxCodeLength    = 50
	minYear          = 1900
	maxYear          = 2100
	maxPageSize      = 100
)

type propertyValidator struct{}

func NewPropertyValidator() PropertyValidator {
	return &propertyValidator{}
}

// ValidateList checks the pagination tuple and the optional criteria.
// Filter construction downstream relies on min <= max holding here.
func (v *propertyValidator) ValidateList(criteria models.PropertyCriteria, pageNumber, pageSize int) error {
	if err := validatePageTuple(pageNumber, pageSize); err != nil {
		return err
	}
	if len(criteria.Name) > maxNameLength {
		return apperrors.NewValidation("name must not exceed %d characters", maxNameLength)
	}
	if len(criteria.Address) > maxAddressLength {
		return apperrors.NewValidation("address must not exceed %d characters", maxAddressLength)
	}
	if criteria.MinPrice != nil && criteria.MinPrice.IsNegative() {
		return apperrors.NewValidation("minimum price must be greater than or equal to 0")
	}
	if criteria.MaxPrice != nil && criteria.MaxPrice.IsNegative() {
		return apperrors.NewValidation("maximum price must be greater than or equal to 0")
	}
	if criteria.MinPrice != nil && criteria.MaxPrice != nil && criteria.MinPrice.Cmp(*criteria.MaxPrice) > 0 {
		return apperrors.NewValidation("minimum price must be less than or equal to maximum price")
	}
	return nil
}

func (v *propertyValidator) ValidateCreate(req *models.CreatePropertyRequest) error {
	if req.Name == "" {
		return apperrors.NewValidation("name is required")
	}
	if len(req.Name) > maxNameLength {
		return apperrors.NewValidation("name must not exceed %d characters", maxNameLength)
	}
	if req.Address == "" {
		return apperrors.NewValidation("address is required")
	}
	if len(req.Address) > maxAddressLength {
		return apperrors.NewValidation("address must not exceed %d characters", maxAddressLength)
	}
	if req.Price.IsNegative() {
		return apperrors.NewValidation("price must be greater than or equal to 0")
	}
	if req.CodeInternal == "" {
		return apperrors.NewValidation("code internal is required")
	}
	if len(req.CodeInternal) > maxCodeLength {
		return apperrors.NewValidation("code internal must not exceed %d characters", maxCodeLength)
	}
	if req.Year < minYear || req.Year > maxYear {
		return apperrors.NewValidation("year must be between %d and %d", minYear, maxYear)
	}
	if req.IDOwner == "" {
		return apperrors.NewValidation("owner ID is required")
	}
	if _, err := primitive.ObjectIDFromHex(req.IDOwner); err != nil {
		return apperrors.NewValidation("owner ID is not a valid identifier")
	}
	return nil
}

func validatePageTuple(pageNumber, pageSize int) error {
	if pageNumber < 1 {
		return apperrors.NewValidation("page number must be greater than 0")
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return apperrors.NewValidation("page size must be between 1 and %d", maxPageSize)
	}
	return nil
}
