package repositories

import (
	"context"

	"github.com/google/uuid"
	"shopcore/domain/models"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.ProductReview) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ProductReview, error)
	GetByProductAndUser(ctx context.Context, productID, userID uuid.UUID) (*models.ProductReview, error)
	Update(ctx context.Context, review *models.ProductReview) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ListByProduct คืนเฉพาะรีวิวที่ approve แล้ว (สำหรับหน้า public)
	ListByProduct(ctx context.Context, productID uuid.UUID, page, limit int) ([]*models.ProductReview, int64, error)
	// ListPending สำหรับ admin moderation
	ListPending(ctx context.Context, page, limit int) ([]*models.ProductReview, int64, error)
	SetApproval(ctx context.Context, id uuid.UUID, approved bool) error
	IncrementHelpful(ctx context.Context, id uuid.UUID) error
}
