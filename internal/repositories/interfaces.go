package repositories

import (
	"context"
	"time"

	"luxehub-properties/internal/models"
)

type PropertyRepository interface {
	FindWithFilters(ctx context.Context, criteria models.PropertyCriteria, skip, take int) ([]models.Property, error)
	CountWithFilters(ctx context.Context, criteria models.PropertyCriteria) (int64, error)
	FindByIDWithOwner(ctx context.Context, id string) (*models.Property, error)
	Exists(ctx context.Context, id string) (bool, error)
	CodeInternalExists(ctx context.Context, code string) (bool, error)
	Create(ctx context.Context, property *models.Property) error
}

// PropertyCache is the cache-aside store for property reads. A miss is
// reported as (nil, nil); operational failures surface as errors that
// callers downgrade to misses or no-ops.
type PropertyCache interface {
	GetProperty(ctx context.Context, key string) (*models.Property, error)
	SetProperty(ctx context.Context, key string, property *models.Property, expiration time.Duration) error
	GetPropertyList(ctx context.Context, key string) (*models.PaginatedResult[models.Property], error)
	SetPropertyList(ctx context.Context, key string, result *models.PaginatedResult[models.Property], expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPrefix(ctx context.Context, prefix string) error
}

type OwnerRepository interface {
	FindByID(ctx context.Context, id string) (*models.Owner, error)
	FindWithPagination(ctx context.Context, skip, take int) ([]models.Owner, int64, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, owner *models.Owner) error
}

type PropertyImageRepository interface {
	FindByID(ctx context.Context, id string) (*models.PropertyImage, error)
	FindEnabledByProperty(ctx context.Context, propertyID string) ([]models.PropertyImage, error)
	FindWithPagination(ctx context.Context, propertyID string, skip, take int) ([]models.PropertyImage, int64, error)
	Create(ctx context.Context, image *models.PropertyImage) error
}

type PropertyTraceRepository interface {
	FindByID(ctx context.Context, id string) (*models.PropertyTrace, error)
	FindByProperty(ctx context.Context, propertyID string) ([]models.PropertyTrace, error)
	Create(ctx context.Context, trace *models.PropertyTrace) error
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}
