package serviceimpl

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"shopcore/domain/dto"
	"shopcore/domain/models"
	"shopcore/domain/ports"
	"shopcore/domain/repositories"
	"shopcore/domain/services"
	"shopcore/pkg/logger"
)

type ReviewServiceImpl struct {
	reviewRepo  repositories.ReviewRepository
	productRepo repositories.ProductRepository

	// cache ใช้ invalidate aggregate ของ product ตอนรีวิวเปลี่ยน nil ได้
	cache ports.CachePort
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	productRepo repositories.ProductRepository,
	cache ports.CachePort,
) services.ReviewService {
	return &ReviewServiceImpl{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		cache:       cache,
	}
}

func (s *ReviewServiceImpl) invalidateProduct(ctx context.Context, productID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, aggregateCacheKey(productID)); err != nil {
		logger.WarnContext(ctx, "Failed to invalidate aggregate cache", "product_id", productID, "error", err)
	}
}

func (s *ReviewServiceImpl) Create(ctx context.Context, userID, productID uuid.UUID, req *dto.CreateReviewRequest) (*models.ProductReview, error) {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return nil, fmt.Errorf("%w: product", services.ErrNotFound)
	}

	// หนึ่งรีวิวต่อ (product, user)
	existing, _ := s.reviewRepo.GetByProductAndUser(ctx, productID, userID)
	if existing != nil {
		logger.WarnContext(ctx, "User already reviewed product", "user_id", userID, "product_id", productID)
		return nil, fmt.Errorf("%w: review", services.ErrAlreadyExists)
	}

	review := &models.ProductReview{
		ID:        uuid.New(),
		ProductID: productID,
		UserID:    userID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		logger.ErrorContext(ctx, "Failed to create review", "product_id", productID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Review created", "review_id", review.ID, "product_id", productID, "rating", req.Rating)
	return review, nil
}

func (s *ReviewServiceImpl) Update(ctx context.Context, userID, reviewID uuid.UUID, req *dto.UpdateReviewRequest) (*models.ProductReview, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil || review.UserID != userID {
		return nil, services.ErrNotFound
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}

	// แก้รีวิวแล้วต้องรอ approve ใหม่
	review.IsApproved = false

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		logger.ErrorContext(ctx, "Failed to update review", "review_id", reviewID, "error", err)
		return nil, err
	}

	s.invalidateProduct(ctx, review.ProductID)
	return review, nil
}

func (s *ReviewServiceImpl) Delete(ctx context.Context, userID, reviewID uuid.UUID, isAdmin bool) error {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return services.ErrNotFound
	}
	if review.UserID != userID && !isAdmin {
		return services.ErrNotFound
	}

	if err := s.reviewRepo.Delete(ctx, reviewID); err != nil {
		logger.ErrorContext(ctx, "Failed to delete review", "review_id", reviewID, "error", err)
		return err
	}

	s.invalidateProduct(ctx, review.ProductID)
	logger.InfoContext(ctx, "Review deleted", "review_id", reviewID)
	return nil
}

func (s *ReviewServiceImpl) ListByProduct(ctx context.Context, productID uuid.UUID, page, limit int) ([]*models.ProductReview, int64, error) {
	return s.reviewRepo.ListByProduct(ctx, productID, page, limit)
}

func (s *ReviewServiceImpl) ListPending(ctx context.Context, page, limit int) ([]*models.ProductReview, int64, error) {
	return s.reviewRepo.ListPending(ctx, page, limit)
}

func (s *ReviewServiceImpl) SetApproval(ctx context.Context, reviewID uuid.UUID, approved bool) error {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return services.ErrNotFound
	}

	if err := s.reviewRepo.SetApproval(ctx, reviewID, approved); err != nil {
		logger.ErrorContext(ctx, "Failed to set review approval", "review_id", reviewID, "error", err)
		return err
	}

	s.invalidateProduct(ctx, review.ProductID)
	logger.InfoContext(ctx, "Review approval set", "review_id", reviewID, "approved", approved)
	return nil
}

func (s *ReviewServiceImpl) MarkHelpful(ctx context.Context, reviewID uuid.UUID) error {
	if _, err := s.reviewRepo.GetByID(ctx, reviewID); err != nil {
		return services.ErrNotFound
	}
	return s.reviewRepo.IncrementHelpful(ctx, reviewID)
}
