package services

import (
	"context"
	"sync"
	"testing"
	"time"

	apperrors "luxehub-properties/internal/errors"
	"luxehub-properties/internal/models"
	"luxehub-properties/internal/validators"
	"luxehub-properties/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakePropertyRepo struct {
	mu             sync.Mutex
	properties     []models.Property
	findCalls      int
	countCalls     int
	createdCodes   map[string]bool
	failNextCreate error
}

func newFakePropertyRepo(properties []models.Property) *fakePropertyRepo {
	codes := make(map[string]bool)
	for _, p := range properties {
		codes[p.CodeInternal] = true
	}
	return &fakePropertyRepo{properties: properties, createdCodes: codes}
}

func (r *fakePropertyRepo) FindWithFilters(ctx context.Context, criteria models.PropertyCriteria, skip, take int) ([]models.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.findCalls++
	if skip >= len(r.properties) {
		return []models.Property{}, nil
	}
	end := skip + take
	if end > len(r.properties) {
		end = len(r.properties)
	}
	return r.properties[skip:end], nil
}

func (r *fakePropertyRepo) CountWithFilters(ctx context.Context, criteria models.PropertyCriteria) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.countCalls++
	return int64(len(r.properties)), nil
}

func (r *fakePropertyRepo) FindByIDWithOwner(ctx context.Context, id string) (*models.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.findCalls++
	for i := range r.properties {
		if r.properties[i].ID.Hex() == id {
			p := r.properties[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *fakePropertyRepo) Exists(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.properties {
		if r.properties[i].ID.Hex() == id {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePropertyRepo) CodeInternalExists(ctx context.Context, code string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.createdCodes[code], nil
}

func (r *fakePropertyRepo) Create(ctx context.Context, property *models.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failNextCreate != nil {
		err := r.failNextCreate
		r.failNextCreate = nil
		return err
	}
	property.ID = primitive.NewObjectID()
	r.properties = append(r.properties, *property)
	r.createdCodes[property.CodeInternal] = true
	return nil
}

type fakeOwnerRepo struct {
	owners map[string]*models.Owner
}

func (r *fakeOwnerRepo) FindByID(ctx context.Context, id string) (*models.Owner, error) {
	return r.owners[id], nil
}

func (r *fakeOwnerRepo) FindWithPagination(ctx context.Context, skip, take int) ([]models.Owner, int64, error) {
	return nil, int64(len(r.owners)), nil
}

func (r *fakeOwnerRepo) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := r.owners[id]
	return ok, nil
}

func (r *fakeOwnerRepo) Create(ctx context.Context, owner *models.Owner) error {
	owner.ID = primitive.NewObjectID()
	r.owners[owner.ID.Hex()] = owner
	return nil
}

type fakeImageRepo struct {
	images map[string][]models.PropertyImage
}

func (r *fakeImageRepo) FindByID(ctx context.Context, id string) (*models.PropertyImage, error) {
	return nil, nil
}

func (r *fakeImageRepo) FindEnabledByProperty(ctx context.Context, propertyID string) ([]models.PropertyImage, error) {
	return r.images[propertyID], nil
}

func (r *fakeImageRepo) FindWithPagination(ctx context.Context, propertyID string, skip, take int) ([]models.PropertyImage, int64, error) {
	return nil, 0, nil
}

func (r *fakeImageRepo) Create(ctx context.Context, image *models.PropertyImage) error {
	image.ID = primitive.NewObjectID()
	key := image.IDProperty.Hex()
	r.images[key] = append(r.images[key], *image)
	return nil
}

type fakeTraceRepo struct {
	traces map[string][]models.PropertyTrace
}

func (r *fakeTraceRepo) FindByID(ctx context.Context, id string) (*models.PropertyTrace, error) {
	return nil, nil
}

func (r *fakeTraceRepo) FindByProperty(ctx context.Context, propertyID string) ([]models.PropertyTrace, error) {
	return r.traces[propertyID], nil
}

func (r *fakeTraceRepo) Create(ctx context.Context, trace *models.PropertyTrace) error {
	trace.ID = primitive.NewObjectID()
	key := trace.IDProperty.Hex()
	r.traces[key] = append(r.traces[key], *trace)
	return nil
}

// fakeCache is an in-memory stand-in for the Redis layer. Misses come back
// as (nil, nil) just like the real adapter.
type fakeCache struct {
	mu          sync.Mutex
	properties  map[string]*models.Property
	lists       map[string]*models.PaginatedResult[models.Property]
	prefixDrops int
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		properties: make(map[string]*models.Property),
		lists:      make(map[string]*models.PaginatedResult[models.Property]),
	}
}

func (c *fakeCache) GetProperty(ctx context.Context, key string) (*models.Property, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.properties[key], nil
}

func (c *fakeCache) SetProperty(ctx context.Context, key string, property *models.Property, expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.properties[key] = property
	return nil
}

func (c *fakeCache) GetPropertyList(ctx context.Context, key string) (*models.PaginatedResult[models.Property], error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lists[key], nil
}

func (c *fakeCache) SetPropertyList(ctx context.Context, key string, result *models.PaginatedResult[models.Property], expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lists[key] = result
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.properties, key)
	return nil
}

func (c *fakeCache) DeleteByPrefix(ctx context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prefixDrops++
	c.lists = make(map[string]*models.PaginatedResult[models.Property])
	return nil
}

func seedProperties(n int) []models.Property {
	price, _ := models.ParseDecimal("250000")
	properties := make([]models.Property, n)
	for i := range properties {
		properties[i] = models.Property{
			ID:           primitive.NewObjectID(),
			Name:         "Casa Loma",
			Address:      "12 Ocean Drive",
			Price:        price,
			CodeInternal: "CODE-" + primitive.NewObjectID().Hex(),
			Year:         2015,
		}
	}
	return properties
}

func newTestService(repo *fakePropertyRepo, ownerRepo *fakeOwnerRepo, c *fakeCache) *PropertyService {
	return NewPropertyService(
		repo,
		ownerRepo,
		&fakeImageRepo{images: map[string][]models.PropertyImage{}},
		&fakeTraceRepo{traces: map[string][]models.PropertyTrace{}},
		c,
		validators.NewPropertyValidator(),
		5*time.Minute,
		10*time.Minute,
	)
}

func TestListPropertiesPaginatesAndCaches(t *testing.T) {
	repo := newFakePropertyRepo(seedProperties(25))
	cacheFake := newFakeCache()
	svc := newTestService(repo, &fakeOwnerRepo{owners: map[string]*models.Owner{}}, cacheFake)

	result, err := svc.ListProperties(context.Background(), models.PropertyCriteria{}, 1, 10)
	require.NoError(t, err)

	assert.Len(t, result.Items, 10)
	assert.Equal(t, int64(25), result.TotalCount)
	assert.Equal(t, 3, result.TotalPages)
	assert.False(t, result.HasPreviousPage)
	assert.True(t, result.HasNextPage)
	assert.Equal(t, 1, repo.findCalls)
	assert.Equal(t, 1, repo.countCalls)

	// The page is cached under the deterministic key for this query.
	warmed, err := cacheFake.GetPropertyList(context.Background(), cache.PropertyListKey("", "", "", "", 1, 10))
	require.NoError(t, err)
	assert.Equal(t, result, warmed)

	// Second identical query is served from the cache.
	again, err := svc.ListProperties(context.Background(), models.PropertyCriteria{}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, result, again)
	assert.Equal(t, 1, repo.findCalls)
	assert.Equal(t, 1, repo.countCalls)
}

func TestListPropertiesConcurrentColdCache(t *testing.T) {
	repo := newFakePropertyRepo(seedProperties(25))
	svc := newTestService(repo, &fakeOwnerRepo{owners: map[string]*models.Owner{}}, newFakeCache())

	var wg sync.WaitGroup
	results := make([]*models.PaginatedResult[models.Property], 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			result, err := svc.ListProperties(context.Background(), models.PropertyCriteria{}, 1, 10)
			assert.NoError(t, err)
			results[i] = result
		}(i)
	}
	wg.Wait()

	// Each racing request resolves against the store at most once; both
	// see the same page.
	assert.LessOrEqual(t, repo.countCalls, 2)
	assert.LessOrEqual(t, repo.findCalls, 2)
	assert.Equal(t, results[0], results[1])
}

func TestListPropertiesLastPage(t *testing.T) {
	repo := newFakePropertyRepo(seedProperties(25))
	svc := newTestService(repo, &fakeOwnerRepo{owners: map[string]*models.Owner{}}, newFakeCache())

	result, err := svc.ListProperties(context.Background(), models.PropertyCriteria{}, 3, 10)
	require.NoError(t, err)

	assert.Len(t, result.Items, 5)
	assert.True(t, result.HasPreviousPage)
	assert.False(t, result.HasNextPage)
}

func TestListPropertiesEmptyResult(t *testing.T) {
	repo := newFakePropertyRepo(nil)
	svc := newTestService(repo, &fakeOwnerRepo{owners: map[string]*models.Owner{}}, newFakeCache())

	result, err := svc.ListProperties(context.Background(), models.PropertyCriteria{Name: "nothing"}, 1, 10)
	require.NoError(t, err)

	assert.Empty(t, result.Items)
	assert.Equal(t, int64(0), result.TotalCount)
	assert.Equal(t, 0, result.TotalPages)
	assert.False(t, result.HasNextPage)
	// No page fetch is issued when the count is zero.
	assert.Equal(t, 0, repo.findCalls)
}

func TestListPropertiesRejectsInvalidPageTuple(t *testing.T) {
	svc := newTestService(newFakePropertyRepo(nil), &fakeOwnerRepo{owners: map[string]*models.Owner{}}, newFakeCache())

	_, err := svc.ListProperties(context.Background(), models.PropertyCriteria{}, 0, 10)
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.ListProperties(context.Background(), models.PropertyCriteria{}, 1, 101)
	assert.True(t, apperrors.IsValidation(err))
}

func TestListPropertiesRejectsInvertedPriceRange(t *testing.T) {
	svc := newTestService(newFakePropertyRepo(nil), &fakeOwnerRepo{owners: map[string]*models.Owner{}}, newFakeCache())

	min, _ := models.ParseDecimal("500")
	max, _ := models.ParseDecimal("100")
	_, err := svc.ListProperties(context.Background(), models.PropertyCriteria{MinPrice: &min, MaxPrice: &max}, 1, 10)
	assert.True(t, apperrors.IsValidation(err))
}

func TestGetPropertyByIDCacheAside(t *testing.T) {
	properties := seedProperties(1)
	repo := newFakePropertyRepo(properties)
	cacheFake := newFakeCache()
	svc := newTestService(repo, &fakeOwnerRepo{owners: map[string]*models.Owner{}}, cacheFake)

	id := properties[0].ID.Hex()

	got, err := svc.GetPropertyByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID.Hex())
	assert.Equal(t, 1, repo.findCalls)

	// Second read comes from the cache.
	_, err = svc.GetPropertyByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.findCalls)
}

func TestGetPropertyByIDNotFound(t *testing.T) {
	svc := newTestService(newFakePropertyRepo(nil), &fakeOwnerRepo{owners: map[string]*models.Owner{}}, newFakeCache())

	_, err := svc.GetPropertyByID(context.Background(), primitive.NewObjectID().Hex())
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCreatePropertyInvalidatesCaches(t *testing.T) {
	repo := newFakePropertyRepo(seedProperties(3))
	cacheFake := newFakeCache()
	owner := &models.Owner{ID: primitive.NewObjectID(), Name: "Ana"}
	ownerRepo := &fakeOwnerRepo{owners: map[string]*models.Owner{owner.ID.Hex(): owner}}
	svc := newTestService(repo, ownerRepo, cacheFake)

	// Warm the list cache.
	_, err := svc.ListProperties(context.Background(), models.PropertyCriteria{}, 1, 10)
	require.NoError(t, err)
	require.NotEmpty(t, cacheFake.lists)

	price, _ := models.ParseDecimal("300000")
	created, err := svc.CreateProperty(context.Background(), &models.CreatePropertyRequest{
		Name:         "New Villa",
		Address:      "1 Hill Road",
		Price:        price,
		CodeInternal: "NV-001",
		Year:         2020,
		IDOwner:      owner.ID.Hex(),
	})
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())

	// Every cached list variant is dropped so the next read sees the
	// new property.
	assert.Empty(t, cacheFake.lists)
	assert.Equal(t, 1, cacheFake.prefixDrops)

	result, err := svc.ListProperties(context.Background(), models.PropertyCriteria{}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(4), result.TotalCount)
}

func TestCreatePropertyUnknownOwner(t *testing.T) {
	repo := newFakePropertyRepo(nil)
	svc := newTestService(repo, &fakeOwnerRepo{owners: map[string]*models.Owner{}}, newFakeCache())

	price, _ := models.ParseDecimal("300000")
	_, err := svc.CreateProperty(context.Background(), &models.CreatePropertyRequest{
		Name:         "Orphan",
		Address:      "2 Side Street",
		Price:        price,
		CodeInternal: "OR-001",
		Year:         2020,
		IDOwner:      primitive.NewObjectID().Hex(),
	})
	assert.True(t, apperrors.IsNotFound(err))
	assert.Empty(t, repo.createdCodes)
}

func TestCreatePropertyDuplicateCode(t *testing.T) {
	existing := seedProperties(1)
	repo := newFakePropertyRepo(existing)
	owner := &models.Owner{ID: primitive.NewObjectID(), Name: "Ana"}
	ownerRepo := &fakeOwnerRepo{owners: map[string]*models.Owner{owner.ID.Hex(): owner}}
	svc := newTestService(repo, ownerRepo, newFakeCache())

	price, _ := models.ParseDecimal("300000")
	_, err := svc.CreateProperty(context.Background(), &models.CreatePropertyRequest{
		Name:         "Twin",
		Address:      "3 Same Road",
		Price:        price,
		CodeInternal: existing[0].CodeInternal,
		Year:         2020,
		IDOwner:      owner.ID.Hex(),
	})
	assert.True(t, apperrors.IsConflict(err))
}

func TestCreatePropertyValidation(t *testing.T) {
	svc := newTestService(newFakePropertyRepo(nil), &fakeOwnerRepo{owners: map[string]*models.Owner{}}, newFakeCache())

	price, _ := models.ParseDecimal("100")
	tests := []struct {
		name string
		req  models.CreatePropertyRequest
	}{
		{"missing name", models.CreatePropertyRequest{Address: "a", Price: price, CodeInternal: "c", Year: 2000, IDOwner: primitive.NewObjectID().Hex()}},
		{"missing address", models.CreatePropertyRequest{Name: "n", Price: price, CodeInternal: "c", Year: 2000, IDOwner: primitive.NewObjectID().Hex()}},
		{"missing code", models.CreatePropertyRequest{Name: "n", Address: "a", Price: price, Year: 2000, IDOwner: primitive.NewObjectID().Hex()}},
		{"year too small", models.CreatePropertyRequest{Name: "n", Address: "a", Price: price, CodeInternal: "c", Year: 1200, IDOwner: primitive.NewObjectID().Hex()}},
		{"bad owner id", models.CreatePropertyRequest{Name: "n", Address: "a", Price: price, CodeInternal: "c", Year: 2000, IDOwner: "nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			_, err := svc.CreateProperty(context.Background(), &req)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

func TestListEnabledImagesUnknownProperty(t *testing.T) {
	svc := newTestService(newFakePropertyRepo(nil), &fakeOwnerRepo{owners: map[string]*models.Owner{}}, newFakeCache())

	_, err := svc.ListEnabledImages(context.Background(), primitive.NewObjectID().Hex())
	assert.True(t, apperrors.IsNotFound(err))
}

func TestListTracesUnknownProperty(t *testing.T) {
	svc := newTestService(newFakePropertyRepo(nil), &fakeOwnerRepo{owners: map[string]*models.Owner{}}, newFakeCache())

	_, err := svc.ListTraces(context.Background(), primitive.NewObjectID().Hex())
	assert.True(t, apperrors.IsNotFound(err))
}
