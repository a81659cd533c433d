package services

import (
	"context"
	"time"

	apperrors "luxehub-properties/internal/errors"
	"luxehub-properties/internal/models"
	"luxehub-properties/internal/repositories"
	"luxehub-properties/internal/validators"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PropertyTraceService struct {
	repo         repositories.PropertyTraceRepository
	propertyRepo repositories.PropertyRepository
	validator    validators.PropertyTraceValidator
}

func NewPropertyTraceService(
	repo repositories.PropertyTraceRepository,
	propertyRepo repositories.PropertyRepository,
	validator validators.PropertyTraceValidator,
) *PropertyTraceService {
	return &PropertyTraceService{
		repo:         repo,
		propertyRepo: propertyRepo,
		validator:    validator,
	}
}

func (s *PropertyTraceService) CreateTrace(ctx context.Context, req *models.CreatePropertyTraceRequest) (*models.PropertyTrace, error) {
	if err := s.validator.ValidateCreate(req); err != nil {
		return nil, err
	}

	exists, err := s.propertyRepo.Exists(ctx, req.IDProperty)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewNotFound("Property", req.IDProperty)
	}

	propertyID, _ := primitive.ObjectIDFromHex(req.IDProperty)
	trace := &models.PropertyTrace{
		DateSale:   req.DateSale,
		Name:       req.Name,
		Value:      req.Value,
		Tax:        req.Tax,
		IDProperty: propertyID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, trace); err != nil {
		return nil, err
	}
	return trace, nil
}

func (s *PropertyTraceService) GetTraceByID(ctx context.Context, id string) (*models.PropertyTrace, error) {
	trace, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if trace == nil {
		return nil, apperrors.NewNotFound("PropertyTrace", id)
	}
	return trace, nil
}
