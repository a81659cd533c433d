package services

import (
	"context"

	"luxehub-properties/internal/models"
	"luxehub-properties/internal/pagination"
	"luxehub-properties/pkg/cache"
	"luxehub-properties/pkg/logger"
)

// ListProperties returns one page of properties matching the criteria,
// each enriched with its owner and main image. The filtered page is served
// from the cache when a logically identical query was answered recently.
func (s *PropertyService) ListProperties(ctx context.Context, criteria models.PropertyCriteria, pageNumber, pageSize int) (*models.PaginatedResult[models.Property], error) {
	if err := s.validator.ValidateList(criteria, pageNumber, pageSize); err != nil {
		return nil, err
	}

	key := cache.PropertyListKey(
		criteria.Name,
		criteria.Address,
		decimalSegment(criteria.MinPrice),
		decimalSegment(criteria.MaxPrice),
		pageNumber,
		pageSize,
	)

	cached, err := s.cache.GetPropertyList(ctx, key)
	if err != nil {
		logger.GlobalLogger.Errorf("Cache read failed for %s: %v", key, err)
	}
	if cached != nil {
		return cached, nil
	}

	totalCount, err := s.repo.CountWithFilters(ctx, criteria)
	if err != nil {
		return nil, err
	}

	page := pagination.Paginate(pageNumber, pageSize, totalCount)
	items := []models.Property{}
	if totalCount > 0 {
		items, err = s.repo.FindWithFilters(ctx, criteria, page.Skip, page.Take)
		if err != nil {
			return nil, err
		}
	}

	result := &models.PaginatedResult[models.Property]{
		Items:           items,
		TotalCount:      totalCount,
		PageNumber:      pageNumber,
		PageSize:        pageSize,
		TotalPages:      page.TotalPages,
		HasPreviousPage: page.HasPrevious,
		HasNextPage:     page.HasNext,
	}

	if err := s.cache.SetPropertyList(ctx, key, result, s.listTTL); err != nil {
		logger.GlobalLogger.Errorf("Cache write failed for %s: %v", key, err)
	}
	return result, nil
}

func decimalSegment(d *models.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}
