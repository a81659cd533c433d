package validators

import (
	apperrors "luxehub-properties/internal/errors"
	"luxehub-properties/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ownerValidator struct{}

func NewOwnerValidator() OwnerValidator {
	return &ownerValidator{}
}

func (v *ownerValidator) ValidateCreate(req *models.CreateOwnerRequest) error {
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
	return nil
}

func (v *ownerValidator) ValidateList(pageNumber, pageSize int) error {
	return validatePageTuple(pageNumber, pageSize)
}

type imageValidator struct{}

func NewPropertyImageValidator() PropertyImageValidator {
	return &imageValidator{}
}

func (v *imageValidator) ValidateCreate(req *models.CreatePropertyImageRequest) error {
	if req.IDProperty == "" {
		return apperrors.NewValidation("property ID is required")
	}
	if _, err := primitive.ObjectIDFromHex(req.IDProperty); err != nil {
		return apperrors.NewValidation("property ID is not a valid identifier")
	}
	if req.File == "" {
		return apperrors.NewValidation("file is required")
	}
	return nil
}

func (v *imageValidator) ValidateList(pageNumber, pageSize int) error {
	return validatePageTuple(pageNumber, pageSize)
}

type traceValidator struct{}

func NewPropertyTraceValidator() PropertyTraceValidator {
	return &traceValidator{}
}

func (v *traceValidator) ValidateCreate(req *models.CreatePropertyTraceRequest) error {
	if req.IDProperty == "" {
		return apperrors.NewValidation("property ID is required")
	}
	if _, err := primitive.ObjectIDFromHex(req.IDProperty); err != nil {
		return apperrors.NewValidation("property ID is not a valid identifier")
	}
	if req.Name == "" {
		return apperrors.NewValidation("name is required")
	}
	if req.DateSale.IsZero() {
		return apperrors.NewValidation("sale date is required")
	}
	if req.Value.IsNegative() {
		return apperrors.NewValidation("value must be greater than or equal to 0")
	}
	if req.Tax.IsNegative() {
		return apperrors.NewValidation("tax must be greater than or equal to 0")
	}
	return nil
}
