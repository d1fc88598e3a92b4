package serviceimpl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"shopcore/domain/dto"
	"shopcore/domain/models"
	"shopcore/domain/services"
)

type fakeCouponRepo struct {
	coupons map[uuid.UUID]*models.Coupon
}

func newFakeCouponRepo() *fakeCouponRepo {
	return &fakeCouponRepo{coupons: make(map[uuid.UUID]*models.Coupon)}
}

func (f *fakeCouponRepo) Create(ctx context.Context, coupon *models.Coupon) error {
	copy := *coupon
	f.coupons[coupon.ID] = &copy
	return nil
}

func (f *fakeCouponRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Coupon, error) {
	coupon, ok := f.coupons[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *coupon
	return &copy, nil
}

func (f *fakeCouponRepo) GetByCode(ctx context.Context, code string) (*models.Coupon, error) {
	for _, coupon := range f.coupons {
		if coupon.Code == code {
			copy := *coupon
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCouponRepo) Update(ctx context.Context, coupon *models.Coupon) error {
	copy := *coupon
	f.coupons[coupon.ID] = &copy
	return nil
}

func (f *fakeCouponRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.coupons, id)
	return nil
}

func (f *fakeCouponRepo) List(ctx context.Context, page, limit int) ([]*models.Coupon, int64, error) {
	var result []*models.Coupon
	for _, coupon := range f.coupons {
		copy := *coupon
		result = append(result, &copy)
	}
	return result, int64(len(result)), nil
}

// IncrementUsage เลียนแบบ conditional update ของ DB จริง
func (f *fakeCouponRepo) IncrementUsage(ctx context.Context, id uuid.UUID) (bool, error) {
	coupon, ok := f.coupons[id]
	if !ok || coupon.UsedCount >= coupon.MaxUses {
		return false, nil
	}
	coupon.UsedCount++
	return true, nil
}

func (f *fakeCouponRepo) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	var updated int64
	for _, coupon := range f.coupons {
		if coupon.IsActive && coupon.ValidTo != nil && coupon.ValidTo.Before(now) {
			coupon.IsActive = false
			updated++
		}
	}
	return updated, nil
}

func newCouponFixture(now time.Time) (*CouponServiceImpl, *fakeCouponRepo) {
	repo := newFakeCouponRepo()
	svc := &CouponServiceImpl{
		couponRepo: repo,
		now:        func() time.Time { return now },
	}
	return svc, repo
}

func seedCoupon(repo *fakeCouponRepo, now time.Time, maxUses, usedCount int) *models.Coupon {
	from := now.Add(-time.Hour)
	to := now.Add(time.Hour)
	coupon := &models.Coupon{
		ID:              uuid.New(),
		Code:            "SUMMER10",
		DiscountPercent: 10,
		ValidFrom:       &from,
		ValidTo:         &to,
		MaxUses:         maxUses,
		UsedCount:       usedCount,
		IsActive:        true,
	}
	repo.coupons[coupon.ID] = coupon
	return coupon
}

func TestCouponValidateComputesDiscount(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	svc, repo := newCouponFixture(now)
	seedCoupon(repo, now, 10, 0)
	ctx := context.Background()

	coupon, discount, err := svc.Validate(ctx, "summer10", decimal.NewFromInt(200))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if coupon.Code != "SUMMER10" {
		t.Errorf("code = %s, want SUMMER10 (lookup is case-insensitive)", coupon.Code)
	}
	if discount.StringFixed(2) != "20.00" {
		t.Errorf("discount = %s, want 20.00", discount.StringFixed(2))
	}

	// validate ไม่กิน quota
	if repo.coupons[coupon.ID].UsedCount != 0 {
		t.Error("Validate must not consume usage")
	}
}

func TestCouponValidateRejectsMissingWindow(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	svc, repo := newCouponFixture(now)
	coupon := seedCoupon(repo, now, 10, 0)

	// คูปองไม่มีช่วงเวลาใช้ไม่ได้เสมอ
	repo.coupons[coupon.ID].ValidFrom = nil

	if _, _, err := svc.Validate(context.Background(), "SUMMER10", decimal.NewFromInt(100)); !errors.Is(err, services.ErrCouponInvalid) {
		t.Errorf("err = %v, want ErrCouponInvalid", err)
	}
}

func TestCouponRedeemConsumesQuota(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	svc, repo := newCouponFixture(now)
	seeded := seedCoupon(repo, now, 2, 0)
	ctx := context.Background()

	if _, err := svc.Redeem(ctx, "SUMMER10"); err != nil {
		t.Fatalf("first redeem: %v", err)
	}
	if _, err := svc.Redeem(ctx, "SUMMER10"); err != nil {
		t.Fatalf("second redeem: %v", err)
	}

	// quota หมดแล้ว IsValid เป็น false ทาง Redeem รายงาน invalid
	if _, err := svc.Redeem(ctx, "SUMMER10"); !errors.Is(err, services.ErrCouponInvalid) {
		t.Errorf("third redeem: err = %v, want ErrCouponInvalid", err)
	}

	if repo.coupons[seeded.ID].UsedCount != 2 {
		t.Errorf("used_count = %d, want 2", repo.coupons[seeded.ID].UsedCount)
	}
}

func TestCouponRedeemLosingRace(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	svc, repo := newCouponFixture(now)
	coupon := seedCoupon(repo, now, 1, 0)
	ctx := context.Background()

	// จำลองอีก request กิน quota ไประหว่างอ่านกับ update
	original := svc.couponRepo
	svc.couponRepo = &racingCouponRepo{fakeCouponRepo: repo, winnerID: coupon.ID}

	if _, err := svc.Redeem(ctx, "SUMMER10"); !errors.Is(err, services.ErrCouponExhausted) {
		t.Errorf("err = %v, want ErrCouponExhausted", err)
	}
	svc.couponRepo = original
}

// racingCouponRepo กิน quota ให้หมดก่อน IncrementUsage ของ request นี้จะทำงาน
type racingCouponRepo struct {
	*fakeCouponRepo
	winnerID uuid.UUID
}

func (r *racingCouponRepo) IncrementUsage(ctx context.Context, id uuid.UUID) (bool, error) {
	if coupon, ok := r.coupons[r.winnerID]; ok {
		coupon.UsedCount = coupon.MaxUses
	}
	return r.fakeCouponRepo.IncrementUsage(ctx, id)
}

func TestCouponCreateNormalizesCode(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	svc, _ := newCouponFixture(now)
	ctx := context.Background()

	from := now.Add(-time.Hour)
	to := now.Add(time.Hour)
	req := &dto.CreateCouponRequest{
		Code:            " welcome5 ",
		DiscountPercent: 5,
		MaxUses:         100,
		ValidFrom:       &from,
		ValidTo:         &to,
	}

	created, err := svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Code != "WELCOME5" {
		t.Errorf("code = %s, want WELCOME5", created.Code)
	}

	// code ซ้ำสร้างไม่ได้
	req.Code = "WELCOME5"
	if _, err := svc.Create(ctx, req); !errors.Is(err, services.ErrAlreadyExists) {
		t.Errorf("duplicate: err = %v, want ErrAlreadyExists", err)
	}
}

func TestDeactivateExpiredCoupons(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	repo := newFakeCouponRepo()
	expired := seedCoupon(repo, now.Add(-3*time.Hour), 10, 0)

	maintenance := &MaintenanceService{
		couponRepo: repo,
		now:        func() time.Time { return now },
	}
	maintenance.DeactivateExpiredCoupons(context.Background())

	if repo.coupons[expired.ID].IsActive {
		t.Error("expired coupon should be deactivated")
	}
}
