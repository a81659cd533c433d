package services

import (
	"context"
	"time"

	apperrors "luxehub-properties/internal/errors"
	"luxehub-properties/internal/models"
	"luxehub-properties/internal/pagination"
	"luxehub-properties/internal/repositories"
	"luxehub-properties/internal/validators"
	"luxehub-properties/pkg/cache"
	"luxehub-properties/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PropertyImageService struct {
	repo         repositories.PropertyImageRepository
	propertyRepo repositories.PropertyRepository
	cache        repositories.PropertyCache
	validator    validators.PropertyImageValidator
}

func NewPropertyImageService(
	repo repositories.PropertyImageRepository,
	propertyRepo repositories.PropertyRepository,
	propertyCache repositories.PropertyCache,
	validator validators.PropertyImageValidator,
) *PropertyImageService {
	return &PropertyImageService{
		repo:         repo,
		propertyRepo: propertyRepo,
		cache:        propertyCache,
		validator:    validator,
	}
}

func (s *PropertyImageService) CreateImage(ctx context.Context, req *models.CreatePropertyImageRequest) (*models.PropertyImage, error) {
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
	image := &models.PropertyImage{
		IDProperty: propertyID,
		File:       req.File,
		Enabled:    req.Enabled,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, image); err != nil {
		return nil, err
	}

	// Cached list pages embed the main image, so a new enabled image can
	// change what they should show.
	if image.Enabled {
		if err := s.cache.DeleteByPrefix(ctx, cache.PropertyListPrefix); err != nil {
			logger.GlobalLogger.Errorf("Failed to invalidate property lists: %v", err)
		}
	}
	return image, nil
}

// ListImages returns a page of images, optionally restricted to one
// property. A malformed propertyID matches nothing rather than erroring.
func (s *PropertyImageService) ListImages(ctx context.Context, propertyID string, pageNumber, pageSize int) (*models.PaginatedResult[models.PropertyImage], error) {
	if err := s.validator.ValidateList(pageNumber, pageSize); err != nil {
		return nil, err
	}

	skip := (pageNumber - 1) * pageSize
	images, totalCount, err := s.repo.FindWithPagination(ctx, propertyID, skip, pageSize)
	if err != nil {
		return nil, err
	}

	page := pagination.Paginate(pageNumber, pageSize, totalCount)
	return &models.PaginatedResult[models.PropertyImage]{
		Items:           images,
		TotalCount:      totalCount,
		PageNumber:      pageNumber,
		PageSize:        pageSize,
		TotalPages:      page.TotalPages,
		HasPreviousPage: page.HasPrevious,
		HasNextPage:     page.HasNext,
	}, nil
}

func (s *PropertyImageService) GetImageByID(ctx context.Context, id string) (*models.PropertyImage, error) {
	image, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if image == nil {
		return nil, apperrors.NewNotFound("PropertyImage", id)
	}
	return image, nil
}
