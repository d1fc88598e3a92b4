package services

import (
	"context"

	"github.com/google/uuid"
	"shopcore/domain/dto"
	"shopcore/domain/models"
)

type CategoryService interface {
	Create(ctx context.Context, req *dto.CreateCategoryRequest) (*models.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.Category, error)
	GetProductCounts(ctx context.Context) (map[uuid.UUID]int64, error)
}
