package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shopcore/domain/models"
	"shopcore/domain/repositories"
)

type VerificationRepositoryImpl struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) repositories.VerificationRepository {
	return &VerificationRepositoryImpl{db: db}
}

// Upsert ขอ code ใหม่ทับ record เดิมของ email นั้นทั้งแถว (code, is_used, created_at)
func (r *VerificationRepositoryImpl) Upsert(ctx context.Context, code *models.EmailVerificationCode) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"code", "is_used", "created_at"}),
		}).
		Create(code).Error
}

func (r *VerificationRepositoryImpl) GetByEmail(ctx context.Context, email string) (*models.EmailVerificationCode, error) {
	var record models.EmailVerificationCode
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *VerificationRepositoryImpl) MarkUsed(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).
		Model(&models.EmailVerificationCode{}).
		Where("email = ?", email).
		UpdateColumn("is_used", true).Error
}

func (r *VerificationRepositoryImpl) Delete(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).
		Where("email = ?", email).
		Delete(&models.EmailVerificationCode{}).Error
}

func (r *VerificationRepositoryImpl) PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&models.EmailVerificationCode{})
	return result.RowsAffected, result.Error
}
