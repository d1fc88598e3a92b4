package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shopcore/domain/models"
	"shopcore/domain/repositories"
)

type ReviewRepositoryImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) repositories.ReviewRepository {
	return &ReviewRepositoryImpl{db: db}
}

func (r *ReviewRepositoryImpl) Create(ctx context.Context, review *models.ProductReview) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *ReviewRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.ProductReview, error) {
	var review models.ProductReview
	err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) GetByProductAndUser(ctx context.Context, productID, userID uuid.UUID) (*models.ProductReview, error) {
	var review models.ProductReview
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND user_id = ?", productID, userID).
		First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) Update(ctx context.Context, review *models.ProductReview) error {
	return r.db.WithContext(ctx).Omit("User", "Product").Save(review).Error
}

func (r *ReviewRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ProductReview{}).Error
}

func (r *ReviewRepositoryImpl) ListByProduct(ctx context.Context, productID uuid.UUID, page, limit int) ([]*models.ProductReview, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.ProductReview{}).
		Where("product_id = ? AND is_approved = ?", productID, true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []*models.ProductReview
	err := query.
		Preload("User").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&reviews).Error
	return reviews, total, err
}

func (r *ReviewRepositoryImpl) ListPending(ctx context.Context, page, limit int) ([]*models.ProductReview, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.ProductReview{}).
		Where("is_approved = ?", false)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []*models.ProductReview
	err := query.
		Preload("User").
		Order("created_at ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&reviews).Error
	return reviews, total, err
}

func (r *ReviewRepositoryImpl) SetApproval(ctx context.Context, id uuid.UUID, approved bool) error {
	return r.db.WithContext(ctx).
		Model(&models.ProductReview{}).
		Where("id = ?", id).
		UpdateColumn("is_approved", approved).Error
}

func (r *ReviewRepositoryImpl) IncrementHelpful(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.ProductReview{}).
		Where("id = ?", id).
		UpdateColumn("helpful", gorm.Expr("helpful + 1")).Error
}
