package serviceimpl

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shopcore/domain/models"
	"shopcore/domain/repositories"
	"shopcore/domain/services"
	"shopcore/pkg/logger"
)

type FavoriteServiceImpl struct {
	favoriteRepo repositories.FavoriteRepository
	productRepo  repositories.ProductRepository
}

func NewFavoriteService(
	favoriteRepo repositories.FavoriteRepository,
	productRepo repositories.ProductRepository,
) services.FavoriteService {
	return &FavoriteServiceImpl{
		favoriteRepo: favoriteRepo,
		productRepo:  productRepo,
	}
}

// Add idempotent: กดซ้ำได้ผลเหมือนกดครั้งเดียว
func (s *FavoriteServiceImpl) Add(ctx context.Context, userID, productID uuid.UUID) (*models.Favorite, error) {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return nil, fmt.Errorf("%w: product", services.ErrNotFound)
	}

	existing, err := s.favoriteRepo.GetByUserAndProduct(ctx, userID, productID)
	if err == nil {
		return existing, nil
	}

	favorite := &models.Favorite{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
	}

	if err := s.favoriteRepo.Create(ctx, favorite); err != nil {
		// แพ้ race กับ request ซ้ำของ user เดียวกัน แถวมีอยู่แล้วถือว่าสำเร็จ
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.favoriteRepo.GetByUserAndProduct(ctx, userID, productID)
		}
		logger.ErrorContext(ctx, "Failed to create favorite", "user_id", userID, "product_id", productID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Favorite added", "user_id", userID, "product_id", productID)
	return favorite, nil
}

func (s *FavoriteServiceImpl) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	if _, err := s.favoriteRepo.GetByUserAndProduct(ctx, userID, productID); err != nil {
		return services.ErrNotFound
	}
	return s.favoriteRepo.Delete(ctx, userID, productID)
}

func (s *FavoriteServiceImpl) List(ctx context.Context, userID uuid.UUID) ([]*models.Favorite, error) {
	return s.favoriteRepo.ListByUser(ctx, userID)
}
