package dto

import (
	"time"

	"github.com/google/uuid"
	"shopcore/domain/models"
)

// === Requests ===

type CreateProductRequest struct {
	CategoryID  uuid.UUID `json:"categoryId" validate:"required"`
	Name        string    `json:"name" validate:"required,min=1,max=255"`
	Slug        string    `json:"slug" validate:"omitempty,min=1,max=255"`
	Description string    `json:"description" validate:"omitempty,max=10000"`
	BasePrice   string    `json:"basePrice" validate:"required"` // decimal string เช่น "199.00"
	IsActive    *bool     `json:"isActive"`
	IsFeatured  *bool     `json:"isFeatured"`
}

type UpdateProductRequest struct {
	CategoryID  *uuid.UUID `json:"categoryId"`
	Name        *string    `json:"name" validate:"omitempty,min=1,max=255"`
	Slug        *string    `json:"slug" validate:"omitempty,min=1,max=255"`
	Description *string    `json:"description" validate:"omitempty,max=10000"`
	BasePrice   *string    `json:"basePrice"`
	IsActive    *bool      `json:"isActive"`
	IsFeatured  *bool      `json:"isFeatured"`
}

type CreateColorRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=50"`
	HexCode   string `json:"hexCode" validate:"omitempty,hexcolor"`
	SortOrder int    `json:"sortOrder"`
}

type UpdateColorRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=50"`
	HexCode   *string `json:"hexCode" validate:"omitempty,hexcolor"`
	SortOrder *int    `json:"sortOrder"`
}

type CreateSizeRequest struct {
	Size  string  `json:"size" validate:"required,min=1,max=20"`
	Price string  `json:"price" validate:"required"`
	Stock int     `json:"stock" validate:"gte=0"`
	SKU   *string `json:"sku" validate:"omitempty,max=64"`
}

type UpdateSizeRequest struct {
	Size  *string `json:"size" validate:"omitempty,min=1,max=20"`
	Price *string `json:"price"`
	Stock *int    `json:"stock" validate:"omitempty,gte=0"`
	SKU   *string `json:"sku" validate:"omitempty,max=64"`
}

type ProductListQuery struct {
	PaginationQuery
	CategoryID *uuid.UUID `query:"categoryId"`
	Featured   *bool      `query:"featured"`
	Search     string     `query:"search"`
}

// === Responses ===

type SizeResponse struct {
	ID    uuid.UUID `json:"id"`
	Size  string    `json:"size"`
	Price string    `json:"price"`
	Stock int       `json:"stock"`
	SKU   *string   `json:"sku,omitempty"`
}

type ColorResponse struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	HexCode   string         `json:"hexCode"`
	SortOrder int            `json:"sortOrder"`
	Sizes     []SizeResponse `json:"sizes"`
}

type ImageResponse struct {
	ID        uuid.UUID `json:"id"`
	URL       string    `json:"url"`
	AltText   string    `json:"altText"`
	IsPrimary bool      `json:"isPrimary"`
	SortOrder int       `json:"sortOrder"`
}

type ProductResponse struct {
	ID          uuid.UUID         `json:"id"`
	CategoryID  uuid.UUID         `json:"categoryId"`
	Category    *CategoryResponse `json:"category,omitempty"`
	Name        string            `json:"name"`
	Slug        string            `json:"slug"`
	Description string            `json:"description"`
	BasePrice   string            `json:"basePrice"`
	IsActive    bool              `json:"isActive"`
	IsFeatured  bool              `json:"isFeatured"`
	Views       int64             `json:"views"`
	Sold        int64             `json:"sold"`
	CreatedAt   time.Time         `json:"createdAt"`

	// Aggregate fields คำนวณตอนอ่าน ไม่ได้เก็บเป็น column
	MinPrice      string  `json:"minPrice"`
	MaxPrice      string  `json:"maxPrice"`
	TotalStock    int     `json:"totalStock"`
	InStock       bool    `json:"inStock"`
	AverageRating float64 `json:"averageRating"`
	ReviewsCount  int64   `json:"reviewsCount"`

	Colors []ColorResponse `json:"colors,omitempty"`
	Images []ImageResponse `json:"images,omitempty"`
}

// ApplyAggregates เติมค่า aggregate ที่ service คำนวณมา
func (r *ProductResponse) ApplyAggregates(minPrice, maxPrice string, totalStock int, inStock bool, averageRating float64, reviewsCount int64) {
	r.MinPrice = minPrice
	r.MaxPrice = maxPrice
	r.TotalStock = totalStock
	r.InStock = inStock
	r.AverageRating = averageRating
	r.ReviewsCount = reviewsCount
}

// === Mappers ===

func SizeToSizeResponse(size *models.ProductSize) SizeResponse {
	return SizeResponse{
		ID:    size.ID,
		Size:  size.Size,
		Price: size.Price.StringFixed(2),
		Stock: size.Stock,
		SKU:   size.SKU,
	}
}

func ColorToColorResponse(color *models.ProductColor) ColorResponse {
	sizes := make([]SizeResponse, len(color.Sizes))
	for i := range color.Sizes {
		sizes[i] = SizeToSizeResponse(&color.Sizes[i])
	}
	return ColorResponse{
		ID:        color.ID,
		Name:      color.Name,
		HexCode:   color.HexCode,
		SortOrder: color.SortOrder,
		Sizes:     sizes,
	}
}

// ProductToProductResponse แปลงตัว entity อย่างเดียว aggregate fields
// เติมทีหลังด้วย ApplyAggregates
func ProductToProductResponse(product *models.Product, imageURL func(*models.ProductImage) string) *ProductResponse {
	if product == nil {
		return nil
	}
	resp := &ProductResponse{
		ID:          product.ID,
		CategoryID:  product.CategoryID,
		Category:    CategoryToCategoryResponse(product.Category),
		Name:        product.Name,
		Slug:        product.Slug,
		Description: product.Description,
		BasePrice:   product.BasePrice.StringFixed(2),
		IsActive:    product.IsActive,
		IsFeatured:  product.IsFeatured,
		Views:       product.Views,
		Sold:        product.Sold,
		CreatedAt:   product.CreatedAt,
	}
	for i := range product.Colors {
		resp.Colors = append(resp.Colors, ColorToColorResponse(&product.Colors[i]))
	}
	for i := range product.Images {
		img := &product.Images[i]
		url := img.Path
		if imageURL != nil {
			url = imageURL(img)
		}
		resp.Images = append(resp.Images, ImageResponse{
			ID:        img.ID,
			URL:       url,
			AltText:   img.AltText,
			IsPrimary: img.IsPrimary,
			SortOrder: img.SortOrder,
		})
	}
	return resp
}
