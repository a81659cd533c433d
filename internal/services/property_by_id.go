package services

import (
	"context"

	apperrors "luxehub-properties/internal/errors"
	"luxehub-properties/internal/models"
	"luxehub-properties/pkg/cache"
	"luxehub-properties/pkg/logger"
)

// GetPropertyByID returns one property enriched with its owner, served
// from the cache when possible. A malformed or unknown identifier maps to
// a not-found error rather than a transport failure.
func (s *PropertyService) GetPropertyByID(ctx context.Context, id string) (*models.Property, error) {
	key := cache.PropertyKey(id)

	cached, err := s.cache.GetProperty(ctx, key)
	if err != nil {
		logger.GlobalLogger.Errorf("Cache read failed for %s: %v", key, err)
	}
	if cached != nil {
		return cached, nil
	}

	property, err := s.repo.FindByIDWithOwner(ctx, id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, apperrors.NewNotFound("Property", id)
	}

	if err := s.cache.SetProperty(ctx, key, property, s.propertyTTL); err != nil {
		logger.GlobalLogger.Errorf("Cache write failed for %s: %v", key, err)
	}
	return property, nil
}
