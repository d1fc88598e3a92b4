package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"shopcore/domain/models"
)

type CouponRepository interface {
	Create(ctx context.Context, coupon *models.Coupon) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Coupon, error)
	GetByCode(ctx context.Context, code string) (*models.Coupon, error)
	Update(ctx context.Context, coupon *models.Coupon) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, page, limit int) ([]*models.Coupon, int64, error)

	// IncrementUsage conditional update: used_count < max_uses ต้องเป็นจริงตอน UPDATE
	// คืน false ถ้าโควต้าหมดแล้ว (แข่งกันใช้พร้อมกันจะมีแค่คนเดียวที่ผ่าน)
	IncrementUsage(ctx context.Context, id uuid.UUID) (bool, error)

	// DeactivateExpired ปิดคูปองที่ valid_to ผ่านไปแล้ว คืนจำนวนแถวที่แก้
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}
