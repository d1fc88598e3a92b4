package repositories

import (
	"context"

	"github.com/google/uuid"
	"shopcore/domain/models"
)

type FavoriteRepository interface {
	Create(ctx context.Context, favorite *models.Favorite) error
	GetByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*models.Favorite, error)
	Delete(ctx context.Context, userID, productID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Favorite, error)
}
