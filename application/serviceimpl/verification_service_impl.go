package serviceimpl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shopcore/domain/models"
	"shopcore/domain/ports"
	"shopcore/domain/repositories"
	"shopcore/domain/services"
	"shopcore/pkg/logger"
	"shopcore/pkg/utils"
)

type VerificationServiceImpl struct {
	verificationRepo repositories.VerificationRepository
	mailer           ports.MailerPort

	// now injectable สำหรับ test expiry
	now func() time.Time
}

func NewVerificationService(
	verificationRepo repositories.VerificationRepository,
	mailer ports.MailerPort,
) services.VerificationService {
	return &VerificationServiceImpl{
		verificationRepo: verificationRepo,
		mailer:           mailer,
		now:              time.Now,
	}
}

func (s *VerificationServiceImpl) RequestCode(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	code := utils.GenerateNumericCode(6)

	record := &models.EmailVerificationCode{
		Email:     email,
		Code:      code,
		IsUsed:    false,
		CreatedAt: s.now(),
	}

	// ทับ record เดิมของ email นี้ ขอใหม่แล้ว code เก่าใช้ไม่ได้อีก
	if err := s.verificationRepo.Upsert(ctx, record); err != nil {
		logger.ErrorContext(ctx, "Failed to store verification code", "email", email, "error", err)
		return err
	}

	body := fmt.Sprintf("Your verification code is %s. It expires in %d minutes.",
		code, int(models.VerificationCodeTTL.Minutes()))

	// mailer ล้มเหลว error ไหลกลับไปหา caller ตรง ๆ
	// code ที่เก็บไว้แล้วยังใช้ได้ถ้า user ขอซ้ำสำเร็จรอบหน้า
	if err := s.mailer.Send(ctx, email, "Email verification code", body); err != nil {
		logger.ErrorContext(ctx, "Failed to send verification code", "email", email, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Verification code sent", "email", email)
	return nil
}

func (s *VerificationServiceImpl) VerifyCode(ctx context.Context, email, code string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	record, err := s.verificationRepo.GetByEmail(ctx, email)
	if err != nil {
		logger.WarnContext(ctx, "Verification code not found", "email", email)
		return services.ErrNotFound
	}

	if record.IsExpired(s.now()) {
		logger.WarnContext(ctx, "Verification code expired", "email", email)
		return services.ErrCodeExpired
	}

	if record.Code != code {
		logger.WarnContext(ctx, "Verification code mismatch", "email", email)
		return services.ErrCodeMismatch
	}

	if err := s.verificationRepo.MarkUsed(ctx, email); err != nil {
		logger.ErrorContext(ctx, "Failed to mark code used", "email", email, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Email verified", "email", email)
	return nil
}
