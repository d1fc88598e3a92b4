package repositories

import (
	"context"

	"github.com/google/uuid"
	"shopcore/domain/models"
)

// ProductFilter เงื่อนไขสำหรับ list products
type ProductFilter struct {
	CategoryID *uuid.UUID
	Active     *bool
	Featured   *bool
	Search     string
	Page       int
	Limit      int
}

// ReviewStats aggregate จากรีวิวที่ approve แล้วเท่านั้น
type ReviewStats struct {
	AverageRating float64
	ReviewsCount  int64
}

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	// GetByID โหลดพร้อม Colors.Sizes และ Images สำหรับคำนวณ aggregate
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter ProductFilter) ([]*models.Product, int64, error)
	IncrementViews(ctx context.Context, id uuid.UUID) error

	// GetReviewStats คำนวณ average rating (ปัดทศนิยม 1 ตำแหน่ง) และจำนวนรีวิว
	// นับเฉพาะรีวิวที่ approve แล้ว
	GetReviewStats(ctx context.Context, productID uuid.UUID) (*ReviewStats, error)
	GetReviewStatsBatch(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]*ReviewStats, error)

	// Colors / Sizes
	CreateColor(ctx context.Context, color *models.ProductColor) error
	GetColorByID(ctx context.Context, id uuid.UUID) (*models.ProductColor, error)
	UpdateColor(ctx context.Context, color *models.ProductColor) error
	DeleteColor(ctx context.Context, id uuid.UUID) error
	CreateSize(ctx context.Context, size *models.ProductSize) error
	GetSizeByID(ctx context.Context, id uuid.UUID) (*models.ProductSize, error)
	UpdateSize(ctx context.Context, size *models.ProductSize) error
	DeleteSize(ctx context.Context, id uuid.UUID) error

	// Images
	CreateImage(ctx context.Context, image *models.ProductImage) error
	GetImageByID(ctx context.Context, id uuid.UUID) (*models.ProductImage, error)
	DeleteImage(ctx context.Context, id uuid.UUID) error
}
