package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shopcore/domain/models"
	"shopcore/domain/repositories"
)

type CouponRepositoryImpl struct {
	db *gorm.DB
}

func NewCouponRepository(db *gorm.DB) repositories.CouponRepository {
	return &CouponRepositoryImpl{db: db}
}

func (r *CouponRepositoryImpl) Create(ctx context.Context, coupon *models.Coupon) error {
	return r.db.WithContext(ctx).Create(coupon).Error
}

func (r *CouponRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&coupon).Error
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *CouponRepositoryImpl) GetByCode(ctx context.Context, code string) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&coupon).Error
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *CouponRepositoryImpl) Update(ctx context.Context, coupon *models.Coupon) error {
	return r.db.WithContext(ctx).Save(coupon).Error
}

func (r *CouponRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Coupon{}).Error
}

func (r *CouponRepositoryImpl) List(ctx context.Context, page, limit int) ([]*models.Coupon, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Coupon{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var coupons []*models.Coupon
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&coupons).Error
	return coupons, total, err
}

// IncrementUsage เพิ่ม used_count แบบ conditional: ผ่านเฉพาะตอนที่โควต้ายังเหลือ
// สอง request แข่งกันตอนเหลือ 1 สิทธิ์ จะมีแค่แถวเดียวที่ RowsAffected = 1
func (r *CouponRepositoryImpl) IncrementUsage(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Coupon{}).
		Where("id = ? AND used_count < max_uses", id).
		UpdateColumn("used_count", gorm.Expr("used_count + 1"))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *CouponRepositoryImpl) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Coupon{}).
		Where("is_active = ? AND valid_to IS NOT NULL AND valid_to < ?", true, now).
		UpdateColumn("is_active", false)
	return result.RowsAffected, result.Error
}
