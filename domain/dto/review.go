package dto

import (
	"time"

	"github.com/google/uuid"
	"shopcore/domain/models"
)

// === Requests ===

type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"omitempty,max=5000"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" validate:"omitempty,max=5000"`
}

type SetApprovalRequest struct {
	Approved bool `json:"approved"`
}

// === Responses ===

type ReviewResponse struct {
	ID         uuid.UUID `json:"id"`
	ProductID  uuid.UUID `json:"productId"`
	UserID     uuid.UUID `json:"userId"`
	Username   string    `json:"username,omitempty"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	IsApproved bool      `json:"isApproved"`
	Helpful    int       `json:"helpful"`
	CreatedAt  time.Time `json:"createdAt"`
}

type FavoriteResponse struct {
	ID        uuid.UUID        `json:"id"`
	ProductID uuid.UUID        `json:"productId"`
	Product   *ProductResponse `json:"product,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}

// === Mappers ===

func ReviewToReviewResponse(review *models.ProductReview) ReviewResponse {
	resp := ReviewResponse{
		ID:         review.ID,
		ProductID:  review.ProductID,
		UserID:     review.UserID,
		Rating:     review.Rating,
		Comment:    review.Comment,
		IsApproved: review.IsApproved,
		Helpful:    review.Helpful,
		CreatedAt:  review.CreatedAt,
	}
	if review.User != nil {
		resp.Username = review.User.Username
	}
	return resp
}

func ReviewsToReviewResponses(reviews []*models.ProductReview) []ReviewResponse {
	responses := make([]ReviewResponse, len(reviews))
	for i, review := range reviews {
		responses[i] = ReviewToReviewResponse(review)
	}
	return responses
}

func FavoriteToFavoriteResponse(favorite *models.Favorite, imageURL func(*models.ProductImage) string) FavoriteResponse {
	resp := FavoriteResponse{
		ID:        favorite.ID,
		ProductID: favorite.ProductID,
		CreatedAt: favorite.CreatedAt,
	}
	if favorite.Product != nil {
		resp.Product = ProductToProductResponse(favorite.Product, imageURL)
	}
	return resp
}
