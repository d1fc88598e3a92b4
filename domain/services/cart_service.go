package services

import (
	"context"

	"github.com/google/uuid"
	"shopcore/domain/models"
)

// StockPolicy พฤติกรรมตอนขอเกิน stock
type StockPolicy string

const (
	// StockPolicyClamp ลด quantity ลงเหลือเท่า stock แบบเงียบ (พฤติกรรม default)
	StockPolicyClamp StockPolicy = "clamp"
	// StockPolicyReject คืน ErrStockExceeded แทนการ clamp
	StockPolicyReject StockPolicy = "reject"
)

type CartService interface {
	// AddToCart รวมเข้าแถวเดิมถ้ามี (user, size) อยู่แล้ว ไม่สร้างแถวซ้ำ
	AddToCart(ctx context.Context, userID, sizeID uuid.UUID, quantity int) (*models.CartItem, error)
	// SetQuantity quantity <= 0 คือลบแถวทิ้ง เกิน stock จะ clamp เสมอ
	SetQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*models.CartItem, error)
	Remove(ctx context.Context, userID, itemID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID) ([]*models.CartItem, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}
