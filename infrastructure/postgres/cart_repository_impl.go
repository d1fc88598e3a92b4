package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shopcore/domain/models"
	"shopcore/domain/repositories"
)

type CartRepositoryImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) repositories.CartRepository {
	return &CartRepositoryImpl{db: db}
}

func (r *CartRepositoryImpl) GetByUserAndSize(ctx context.Context, userID, sizeID uuid.UUID) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_size_id = ?", userID, sizeID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.WithContext(ctx).
		Preload("ProductSize").
		Where("id = ?", id).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepositoryImpl) Create(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *CartRepositoryImpl) Update(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).Omit("ProductSize", "User").Save(item).Error
}

func (r *CartRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.CartItem{}).Error
}

func (r *CartRepositoryImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.CartItem, error) {
	var items []*models.CartItem
	err := r.db.WithContext(ctx).
		Preload("ProductSize").
		Preload("ProductSize.Color").
		Preload("ProductSize.Color.Product").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *CartRepositoryImpl) ClearByUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
