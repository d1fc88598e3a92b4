package serviceimpl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"shopcore/domain/dto"
	"shopcore/domain/models"
	"shopcore/domain/repositories"
	"shopcore/domain/services"
	"shopcore/pkg/logger"
)

type CouponServiceImpl struct {
	couponRepo repositories.CouponRepository

	// now injectable สำหรับ test
	now func() time.Time
}

func NewCouponService(couponRepo repositories.CouponRepository) services.CouponService {
	return &CouponServiceImpl{
		couponRepo: couponRepo,
		now:        time.Now,
	}
}

func (s *CouponServiceImpl) Create(ctx context.Context, req *dto.CreateCouponRequest) (*models.Coupon, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))

	existing, _ := s.couponRepo.GetByCode(ctx, code)
	if existing != nil {
		logger.WarnContext(ctx, "Coupon code already exists", "code", code)
		return nil, fmt.Errorf("%w: coupon code %q", services.ErrAlreadyExists, code)
	}

	if req.ValidFrom != nil && req.ValidTo != nil && req.ValidTo.Before(*req.ValidFrom) {
		return nil, fmt.Errorf("%w: validTo before validFrom", services.ErrInvalidInput)
	}

	coupon := &models.Coupon{
		ID:              uuid.New(),
		Code:            code,
		DiscountPercent: req.DiscountPercent,
		ValidFrom:       req.ValidFrom,
		ValidTo:         req.ValidTo,
		MaxUses:         req.MaxUses,
		IsActive:        true,
	}
	if req.MaxDiscountAmount != nil {
		amount, err := decimal.NewFromString(*req.MaxDiscountAmount)
		if err != nil || amount.IsNegative() {
			return nil, fmt.Errorf("%w: maxDiscountAmount", services.ErrInvalidInput)
		}
		coupon.MaxDiscountAmount = &amount
	}
	if req.IsActive != nil {
		coupon.IsActive = *req.IsActive
	}

	if err := s.couponRepo.Create(ctx, coupon); err != nil {
		logger.ErrorContext(ctx, "Failed to create coupon", "code", code, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Coupon created", "coupon_id", coupon.ID, "code", code)
	return coupon, nil
}

func (s *CouponServiceImpl) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCouponRequest) (*models.Coupon, error) {
	coupon, err := s.couponRepo.GetByID(ctx, id)
	if err != nil {
		return nil, services.ErrNotFound
	}

	if req.DiscountPercent != nil {
		coupon.DiscountPercent = *req.DiscountPercent
	}
	if req.MaxDiscountAmount != nil {
		amount, err := decimal.NewFromString(*req.MaxDiscountAmount)
		if err != nil || amount.IsNegative() {
			return nil, fmt.Errorf("%w: maxDiscountAmount", services.ErrInvalidInput)
		}
		coupon.MaxDiscountAmount = &amount
	}
	if req.ValidFrom != nil {
		coupon.ValidFrom = req.ValidFrom
	}
	if req.ValidTo != nil {
		coupon.ValidTo = req.ValidTo
	}
	if coupon.ValidFrom != nil && coupon.ValidTo != nil && coupon.ValidTo.Before(*coupon.ValidFrom) {
		return nil, fmt.Errorf("%w: validTo before validFrom", services.ErrInvalidInput)
	}
	if req.MaxUses != nil {
		coupon.MaxUses = *req.MaxUses
	}
	if req.IsActive != nil {
		coupon.IsActive = *req.IsActive
	}

	if err := s.couponRepo.Update(ctx, coupon); err != nil {
		logger.ErrorContext(ctx, "Failed to update coupon", "coupon_id", id, "error", err)
		return nil, err
	}

	return coupon, nil
}

func (s *CouponServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.couponRepo.GetByID(ctx, id); err != nil {
		return services.ErrNotFound
	}
	return s.couponRepo.Delete(ctx, id)
}

func (s *CouponServiceImpl) List(ctx context.Context, page, limit int) ([]*models.Coupon, int64, error) {
	return s.couponRepo.List(ctx, page, limit)
}

func (s *CouponServiceImpl) GetByCode(ctx context.Context, code string) (*models.Coupon, error) {
	coupon, err := s.couponRepo.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return nil, services.ErrNotFound
	}
	return coupon, nil
}

// Validate ตรวจอย่างเดียว ไม่กิน quota
func (s *CouponServiceImpl) Validate(ctx context.Context, code string, total decimal.Decimal) (*models.Coupon, decimal.Decimal, error) {
	coupon, err := s.couponRepo.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return nil, decimal.Zero, services.ErrCouponInvalid
	}

	if !coupon.IsValid(s.now()) {
		logger.InfoContext(ctx, "Coupon validation failed", "code", coupon.Code)
		return nil, decimal.Zero, services.ErrCouponInvalid
	}

	return coupon, coupon.Discount(total), nil
}

// Redeem กิน quota หนึ่งสิทธิ์ด้วย conditional update
// เหลือสิทธิ์เดียวแล้วสอง request ชนกัน จะผ่านแค่ request เดียว
func (s *CouponServiceImpl) Redeem(ctx context.Context, code string) (*models.Coupon, error) {
	coupon, err := s.couponRepo.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return nil, services.ErrCouponInvalid
	}

	if !coupon.IsValid(s.now()) {
		return nil, services.ErrCouponInvalid
	}

	ok, err := s.couponRepo.IncrementUsage(ctx, coupon.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to increment coupon usage", "coupon_id", coupon.ID, "error", err)
		return nil, err
	}
	if !ok {
		logger.WarnContext(ctx, "Coupon exhausted during redeem", "code", coupon.Code)
		return nil, services.ErrCouponExhausted
	}

	coupon.UsedCount++
	logger.InfoContext(ctx, "Coupon redeemed", "code", coupon.Code, "used_count", coupon.UsedCount)
	return coupon, nil
}
