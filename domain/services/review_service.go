package services

import (
	"context"

	"github.com/google/uuid"
	"shopcore/domain/dto"
	"shopcore/domain/models"
)

type ReviewService interface {
	Create(ctx context.Context, userID, productID uuid.UUID, req *dto.CreateReviewRequest) (*models.ProductReview, error)
	Update(ctx context.Context, userID, reviewID uuid.UUID, req *dto.UpdateReviewRequest) (*models.ProductReview, error)
	Delete(ctx context.Context, userID, reviewID uuid.UUID, isAdmin bool) error
	ListByProduct(ctx context.Context, productID uuid.UUID, page, limit int) ([]*models.ProductReview, int64, error)
	ListPending(ctx context.Context, page, limit int) ([]*models.ProductReview, int64, error)
	SetApproval(ctx context.Context, reviewID uuid.UUID, approved bool) error
	MarkHelpful(ctx context.Context, reviewID uuid.UUID) error
}

type FavoriteService interface {
	// Add idempotent: favorite ซ้ำไม่ถือเป็น error
	Add(ctx context.Context, userID, productID uuid.UUID) (*models.Favorite, error)
	Remove(ctx context.Context, userID, productID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID) ([]*models.Favorite, error)
}
