package services

import (
	"context"
	"time"

	apperrors "luxehub-properties/internal/errors"
	"luxehub-properties/internal/models"
	"luxehub-properties/internal/repositories"
	"luxehub-properties/internal/validators"
	"luxehub-properties/pkg/cache"
	"luxehub-properties/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PropertyService orchestrates property reads and writes. Reads go through
// the cache first and fall back to the store; writes invalidate the single
// entry and every cached list variant.
type PropertyService struct {
	repo        repositories.PropertyRepository
	ownerRepo   repositories.OwnerRepository
	imageRepo   repositories.PropertyImageRepository
	traceRepo   repositories.PropertyTraceRepository
	cache       repositories.PropertyCache
	validator   validators.PropertyValidator
	listTTL     time.Duration
	propertyTTL time.Duration
}

func NewPropertyService(
	repo repositories.PropertyRepository,
	ownerRepo repositories.OwnerRepository,
	imageRepo repositories.PropertyImageRepository,
	traceRepo repositories.PropertyTraceRepository,
	propertyCache repositories.PropertyCache,
	validator validators.PropertyValidator,
	listTTL, propertyTTL time.Duration,
) *PropertyService {
	return &PropertyService{
		repo:        repo,
		ownerRepo:   ownerRepo,
		imageRepo:   imageRepo,
		traceRepo:   traceRepo,
		cache:       propertyCache,
		validator:   validator,
		listTTL:     listTTL,
		propertyTTL: propertyTTL,
	}
}

func (s *PropertyService) CreateProperty(ctx context.Context, req *models.CreatePropertyRequest) (*models.Property, error) {
	if err := s.validator.ValidateCreate(req); err != nil {
		return nil, err
	}

	ownerExists, err := s.ownerRepo.Exists(ctx, req.IDOwner)
	if err != nil {
		return nil, err
	}
	if !ownerExists {
		return nil, apperrors.NewNotFound("Owner", req.IDOwner)
	}

	codeTaken, err := s.repo.CodeInternalExists(ctx, req.CodeInternal)
	if err != nil {
		return nil, err
	}
	if codeTaken {
		return nil, apperrors.NewConflict("a property with code internal %q already exists", req.CodeInternal)
	}

	ownerID, _ := primitive.ObjectIDFromHex(req.IDOwner)
	now := time.Now().UTC()
	property := &models.Property{
		Name:         req.Name,
		Address:      req.Address,
		Price:        req.Price,
		CodeInternal: req.CodeInternal,
		Year:         req.Year,
		IDOwner:      ownerID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, property); err != nil {
		return nil, err
	}

	s.invalidateProperty(ctx, property.ID.Hex())
	return property, nil
}

// invalidateProperty drops the single-entry key and every cached list
// variant. Cache failures are logged and swallowed so a degraded Redis
// never turns a successful write into an error.
func (s *PropertyService) invalidateProperty(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, cache.PropertyKey(id)); err != nil {
		logger.GlobalLogger.Errorf("Failed to invalidate property %s: %v", id, err)
	}
	if err := s.cache.DeleteByPrefix(ctx, cache.PropertyListPrefix); err != nil {
		logger.GlobalLogger.Errorf("Failed to invalidate property lists: %v", err)
	}
}
