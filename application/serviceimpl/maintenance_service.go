package serviceimpl

import (
	"context"
	"time"

	"shopcore/domain/models"
	"shopcore/domain/repositories"
	"shopcore/pkg/logger"
)

// MaintenanceService งานกวาดล้างที่รันเป็นรอบผ่าน scheduler
type MaintenanceService struct {
	verificationRepo repositories.VerificationRepository
	couponRepo       repositories.CouponRepository

	now func() time.Time
}

func NewMaintenanceService(
	verificationRepo repositories.VerificationRepository,
	couponRepo repositories.CouponRepository,
) *MaintenanceService {
	return &MaintenanceService{
		verificationRepo: verificationRepo,
		couponRepo:       couponRepo,
		now:              time.Now,
	}
}

// PurgeExpiredCodes ลบ verification code ที่หมดอายุแล้ว
// code หมดอายุใช้ไม่ได้อยู่แล้ว job นี้แค่เก็บกวาด table
func (s *MaintenanceService) PurgeExpiredCodes(ctx context.Context) {
	cutoff := s.now().Add(-models.VerificationCodeTTL)

	deleted, err := s.verificationRepo.PurgeExpired(ctx, cutoff)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to purge expired codes", "error", err)
		return
	}
	if deleted > 0 {
		logger.InfoContext(ctx, "Expired verification codes purged", "deleted", deleted)
	}
}

// DeactivateExpiredCoupons ปิดคูปองที่ valid_to ผ่านไปแล้ว
func (s *MaintenanceService) DeactivateExpiredCoupons(ctx context.Context) {
	updated, err := s.couponRepo.DeactivateExpired(ctx, s.now())
	if err != nil {
		logger.ErrorContext(ctx, "Failed to deactivate expired coupons", "error", err)
		return
	}
	if updated > 0 {
		logger.InfoContext(ctx, "Expired coupons deactivated", "updated", updated)
	}
}
