package repositories

import (
	"context"

	"github.com/google/uuid"
	"shopcore/domain/models"
)

type CartRepository interface {
	// GetByUserAndSize คืน gorm.ErrRecordNotFound ถ้ายังไม่มีแถว
	GetByUserAndSize(ctx context.Context, userID, sizeID uuid.UUID) (*models.CartItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.CartItem, error)
	Create(ctx context.Context, item *models.CartItem) error
	Update(ctx context.Context, item *models.CartItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ListByUser โหลดพร้อม ProductSize.Color.Product สำหรับสรุปตะกร้า
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.CartItem, error)
	ClearByUser(ctx context.Context, userID uuid.UUID) error
}
