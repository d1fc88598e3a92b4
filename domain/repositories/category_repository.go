package repositories

import (
	"context"

	"github.com/google/uuid"
	"shopcore/domain/models"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	GetByName(ctx context.Context, name string) (*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.Category, error)
	// GetProductCounts คืน map ของ category_id -> จำนวนสินค้า active
	GetProductCounts(ctx context.Context) (map[uuid.UUID]int64, error)
}
