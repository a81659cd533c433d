package validators

import (
	"luxehub-properties/internal/models"
)

type PropertyValidator interface {
	ValidateList(criteria models.PropertyCriteria, pageNumber, pageSize int) error
	ValidateCreate(req *models.CreatePropertyRequest) error
}

type OwnerValidator interface {
	ValidateCreate(req *models.CreateOwnerRequest) error
	ValidateList(pageNumber, pageSize int) error
}

type PropertyImageValidator interface {
	ValidateCreate(req *models.CreatePropertyImageRequest) error
	ValidateList(pageNumber, pageSize int) error
}

type PropertyTraceValidator interface {
	ValidateCreate(req *models.CreatePropertyTraceRequest) error
}

type UserValidator interface {
	ValidateRegister(req *models.RegisterRequest) error
	ValidateLogin(email, password string) error
}
