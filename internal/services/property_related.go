package services

import (
	"context"

	apperrors "luxehub-properties/internal/errors"
	"luxehub-properties/internal/models"
)

// ListEnabledImages returns the enabled images of a property, oldest first.
func (s *PropertyService) ListEnabledImages(ctx context.Context, propertyID string) ([]models.PropertyImage, error) {
	exists, err := s.repo.Exists(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewNotFound("Property", propertyID)
	}
	return s.imageRepo.FindEnabledByProperty(ctx, propertyID)
}

// ListTraces returns the sale history of a property, most recent sale first.
func (s *PropertyService) ListTraces(ctx context.Context, propertyID string) ([]models.PropertyTrace, error) {
	exists, err := s.repo.Exists(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewNotFound("Property", propertyID)
	}
	return s.traceRepo.FindByProperty(ctx, propertyID)
}
