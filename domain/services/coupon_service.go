package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"shopcore/domain/dto"
	"shopcore/domain/models"
)

type CouponService interface {
	Create(ctx context.Context, req *dto.CreateCouponRequest) (*models.Coupon, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCouponRequest) (*models.Coupon, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, page, limit int) ([]*models.Coupon, int64, error)
	GetByCode(ctx context.Context, code string) (*models.Coupon, error)

	// Validate pure check + คำนวณส่วนลดจากยอดรวม ไม่แตะ used_count
	Validate(ctx context.Context, code string, total decimal.Decimal) (*models.Coupon, decimal.Decimal, error)
	// Redeem ตรวจ validity แล้วเพิ่ม used_count ด้วย conditional update
	// สองคน redeem พร้อมกันตอนเหลือโควต้าเดียว จะสำเร็จแค่คนเดียว
	Redeem(ctx context.Context, code string) (*models.Coupon, error)
}
