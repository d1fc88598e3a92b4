package services

import (
	"context"
	"io"

	"github.com/google/uuid"
	"shopcore/domain/dto"
	"shopcore/domain/models"
	"shopcore/domain/repositories"
)

// ProductAggregates ค่าที่คำนวณจาก variant tree + รีวิว ไม่ได้เก็บเป็น column
type ProductAggregates struct {
	MinPrice      string  `json:"minPrice"`
	MaxPrice      string  `json:"maxPrice"`
	TotalStock    int     `json:"totalStock"`
	InStock       bool    `json:"inStock"`
	AverageRating float64 `json:"averageRating"`
	ReviewsCount  int64   `json:"reviewsCount"`
}

type ProductService interface {
	Create(ctx context.Context, req *dto.CreateProductRequest) (*models.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	// GetBySlug สำหรับหน้า detail เพิ่ม view counter ด้วย
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateProductRequest) (*models.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter repositories.ProductFilter) ([]*models.Product, int64, error)

	// Aggregates อ่านสดทุกครั้ง หรือผ่าน cache ถ้าเปิดใช้ (invalidate ตอนแก้ size/review)
	GetAggregates(ctx context.Context, product *models.Product) (*ProductAggregates, error)
	GetAggregatesBatch(ctx context.Context, products []*models.Product) (map[uuid.UUID]*ProductAggregates, error)

	// Variants
	AddColor(ctx context.Context, productID uuid.UUID, req *dto.CreateColorRequest) (*models.ProductColor, error)
	UpdateColor(ctx context.Context, colorID uuid.UUID, req *dto.UpdateColorRequest) (*models.ProductColor, error)
	DeleteColor(ctx context.Context, colorID uuid.UUID) error
	AddSize(ctx context.Context, colorID uuid.UUID, req *dto.CreateSizeRequest) (*models.ProductSize, error)
	UpdateSize(ctx context.Context, sizeID uuid.UUID, req *dto.UpdateSizeRequest) (*models.ProductSize, error)
	DeleteSize(ctx context.Context, sizeID uuid.UUID) error

	// Images
	UploadImage(ctx context.Context, productID uuid.UUID, filename, contentType string, reader io.Reader, size int64) (*models.ProductImage, error)
	DeleteImage(ctx context.Context, imageID uuid.UUID) error
	ImageURL(image *models.ProductImage) string
}
