package repositories

import (
	"context"
	"time"

	"shopcore/domain/models"
)

type VerificationRepository interface {
	// Upsert ทับ record เดิมของ email นั้นถ้ามี
	Upsert(ctx context.Context, code *models.EmailVerificationCode) error
	GetByEmail(ctx context.Context, email string) (*models.EmailVerificationCode, error)
	MarkUsed(ctx context.Context, email string) error
	Delete(ctx context.Context, email string) error
	// PurgeExpired ลบ record ที่หมดอายุก่อน cutoff คืนจำนวนแถวที่ลบ
	PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error)
}
