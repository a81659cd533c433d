package services

import (
	"context"
	"time"

	apperrors "luxehub-properties/internal/errors"
	"luxehub-properties/internal/models"
	"luxehub-properties/internal/pagination"
	"luxehub-properties/internal/repositories"
	"luxehub-properties/internal/validators"
)

type OwnerService struct {
	repo      repositories.OwnerRepository
	validator validators.OwnerValidator
}

func NewOwnerService(repo repositories.OwnerRepository, validator validators.OwnerValidator) *OwnerService {
	return &OwnerService{repo: repo, validator: validator}
}

func (s *OwnerService) CreateOwner(ctx context.Context, req *models.CreateOwnerRequest) (*models.Owner, error) {
	if err := s.validator.ValidateCreate(req); err != nil {
		return nil, err
	}

	owner := &models.Owner{
		Name:      req.Name,
		Address:   req.Address,
		Photo:     req.Photo,
		Birthday:  req.Birthday,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, owner); err != nil {
		return nil, err
	}
	return owner, nil
}

func (s *OwnerService) GetOwnerByID(ctx context.Context, id string) (*models.Owner, error) {
	owner, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, apperrors.NewNotFound("Owner", id)
	}
	return owner, nil
}

func (s *OwnerService) ListOwners(ctx context.Context, pageNumber, pageSize int) (*models.PaginatedResult[models.Owner], error) {
	if err := s.validator.ValidateList(pageNumber, pageSize); err != nil {
		return nil, err
	}

	skip := (pageNumber - 1) * pageSize
	owners, totalCount, err := s.repo.FindWithPagination(ctx, skip, pageSize)
	if err != nil {
		return nil, err
	}

	page := pagination.Paginate(pageNumber, pageSize, totalCount)
	return &models.PaginatedResult[models.Owner]{
		Items:           owners,
		TotalCount:      totalCount,
		PageNumber:      pageNumber,
		PageSize:        pageSize,
		TotalPages:      page.TotalPages,
		HasPreviousPage: page.HasPrevious,
		HasNextPage:     page.HasNext,
	}, nil
}
