package validators

import (
	"strings"

	apperrors "luxehub-properties/internal/errors"
	"luxehub-properties/internal/models"
)

type userValidator struct{}

func NewUserValidator() UserValidator {
	return &userValidator{}
}

func (v *userValidator) ValidateRegister(req *models.RegisterRequest) error {
	if req.FullName == "" {
		return apperrors.NewValidation("full name is required")
	}
	if !strings.Contains(req.Email, "@") {
		return apperrors.NewValidation("a valid email is required")
	}
	if len(req.Password) < 8 {
		return apperrors.NewValidation("password must be at least 8 characters")
	}
	return nil
}

func (v *userValidator) ValidateLogin(email, password string) error {
	if email == "" || password == "" {
		return apperrors.NewValidation("email and password are required")
	}
	return nil
}
