package serviceimpl

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"

	"shopcore/domain/dto"
	"shopcore/domain/models"
	"shopcore/domain/ports"
	"shopcore/domain/repositories"
	"shopcore/domain/services"
	"shopcore/pkg/logger"
)

// จำนวนครั้งสูงสุดที่ลองต่อท้าย slug ด้วยเลขรันก่อนยอมแพ้
const maxSlugRetries = 20

type ProductServiceImpl struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	storage      ports.StoragePort

	// cache เป็น nil ได้ ถ้าไม่ได้เปิดใช้ aggregate cache
	cache    ports.CachePort
	cacheTTL time.Duration
}

func NewProductService(
	productRepo repositories.ProductRepository,
	categoryRepo repositories.CategoryRepository,
	storage ports.StoragePort,
	cache ports.CachePort,
	cacheTTL time.Duration,
) services.ProductService {
	return &ProductServiceImpl{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		storage:      storage,
		cache:        cache,
		cacheTTL:     cacheTTL,
	}
}

func (s *ProductServiceImpl) Create(ctx context.Context, req *dto.CreateProductRequest) (*models.Product, error) {
	if _, err := s.categoryRepo.GetByID(ctx, req.CategoryID); err != nil {
		logger.WarnContext(ctx, "Category not found for product", "category_id", req.CategoryID)
		return nil, fmt.Errorf("%w: category", services.ErrNotFound)
	}

	basePrice, err := decimal.NewFromString(req.BasePrice)
	if err != nil || basePrice.IsNegative() {
		return nil, fmt.Errorf("%w: basePrice", services.ErrInvalidInput)
	}

	slugStr := req.Slug
	if slugStr == "" {
		slugStr = req.Name
	}
	uniqueSlug, err := s.uniqueSlug(ctx, slug.Make(slugStr), uuid.Nil)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		ID:          uuid.New(),
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Slug:        uniqueSlug,
		Description: req.Description,
		BasePrice:   basePrice,
		IsActive:    true,
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		product.IsFeatured = *req.IsFeatured
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		logger.ErrorContext(ctx, "Failed to create product", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Product created", "product_id", product.ID, "slug", product.Slug)
	return product, nil
}

// uniqueSlug ต่อท้ายด้วย -2, -3, ... จนกว่าจะไม่ชนกับ slug เดิม
func (s *ProductServiceImpl) uniqueSlug(ctx context.Context, base string, selfID uuid.UUID) (string, error) {
	candidate := base
	for i := 2; i <= maxSlugRetries+1; i++ {
		existing, _ := s.productRepo.GetBySlug(ctx, candidate)
		if existing == nil || existing.ID == selfID {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return "", fmt.Errorf("%w: could not find unique slug for %q", services.ErrAlreadyExists, base)
}

func (s *ProductServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Product not found", "product_id", id)
		return nil, services.ErrNotFound
	}
	return product, nil
}

func (s *ProductServiceImpl) GetBySlug(ctx context.Context, slugStr string) (*models.Product, error) {
	product, err := s.productRepo.GetBySlug(ctx, slugStr)
	if err != nil {
		logger.WarnContext(ctx, "Product not found", "slug", slugStr)
		return nil, services.ErrNotFound
	}

	// view counter นับทุกครั้งที่เปิดหน้า detail นับพลาดไม่ถือเป็น error
	if err := s.productRepo.IncrementViews(ctx, product.ID); err != nil {
		logger.WarnContext(ctx, "Failed to increment views", "product_id", product.ID, "error", err)
	}

	return product, nil
}

func (s *ProductServiceImpl) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateProductRequest) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, services.ErrNotFound
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *req.CategoryID); err != nil {
			return nil, fmt.Errorf("%w: category", services.ErrNotFound)
		}
		product.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Slug != nil {
		uniqueSlug, err := s.uniqueSlug(ctx, slug.Make(*req.Slug), id)
		if err != nil {
			return nil, err
		}
		product.Slug = uniqueSlug
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.BasePrice != nil {
		basePrice, err := decimal.NewFromString(*req.BasePrice)
		if err != nil || basePrice.IsNegative() {
			return nil, fmt.Errorf("%w: basePrice", services.ErrInvalidInput)
		}
		product.BasePrice = basePrice
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		product.IsFeatured = *req.IsFeatured
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		logger.ErrorContext(ctx, "Failed to update product", "product_id", id, "error", err)
		return nil, err
	}

	s.invalidateAggregates(ctx, id)
	logger.InfoContext(ctx, "Product updated", "product_id", id)
	return product, nil
}

func (s *ProductServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productRepo.GetByID(ctx, id); err != nil {
		return services.ErrNotFound
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete product", "product_id", id, "error", err)
		return err
	}

	s.invalidateAggregates(ctx, id)
	logger.InfoContext(ctx, "Product deleted", "product_id", id)
	return nil
}

func (s *ProductServiceImpl) List(ctx context.Context, filter repositories.ProductFilter) ([]*models.Product, int64, error) {
	return s.productRepo.List(ctx, filter)
}

// ========== Aggregates ==========

func aggregateCacheKey(productID uuid.UUID) string {
	return "agg:product:" + productID.String()
}

func (s *ProductServiceImpl) invalidateAggregates(ctx context.Context, productID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, aggregateCacheKey(productID)); err != nil {
		logger.WarnContext(ctx, "Failed to invalidate aggregate cache", "product_id", productID, "error", err)
	}
}

func (s *ProductServiceImpl) GetAggregates(ctx context.Context, product *models.Product) (*services.ProductAggregates, error) {
	if s.cache != nil {
		var cached services.ProductAggregates
		if err := s.cache.GetJSON(ctx, aggregateCacheKey(product.ID), &cached); err == nil {
			return &cached, nil
		}
		// cache miss หรือ cache ล่ม คำนวณสดต่อ
	}

	stats, err := s.productRepo.GetReviewStats(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	agg := buildAggregates(product, stats)

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, aggregateCacheKey(product.ID), agg, s.cacheTTL); err != nil {
			logger.WarnContext(ctx, "Failed to write aggregate cache", "product_id", product.ID, "error", err)
		}
	}

	return agg, nil
}

func (s *ProductServiceImpl) GetAggregatesBatch(ctx context.Context, products []*models.Product) (map[uuid.UUID]*services.ProductAggregates, error) {
	ids := make([]uuid.UUID, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}

	statsByID, err := s.productRepo.GetReviewStatsBatch(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make(map[uuid.UUID]*services.ProductAggregates, len(products))
	for _, p := range products {
		result[p.ID] = buildAggregates(p, statsByID[p.ID])
	}
	return result, nil
}

func buildAggregates(product *models.Product, stats *repositories.ReviewStats) *services.ProductAggregates {
	agg := &services.ProductAggregates{
		MinPrice:   product.MinPrice().StringFixed(2),
		MaxPrice:   product.MaxPrice().StringFixed(2),
		TotalStock: product.TotalStock(),
		InStock:    product.InStock(),
	}
	if stats != nil {
		agg.AverageRating = stats.AverageRating
		agg.ReviewsCount = stats.ReviewsCount
	}
	return agg
}

// ========== Colors / Sizes ==========

func (s *ProductServiceImpl) AddColor(ctx context.Context, productID uuid.UUID, req *dto.CreateColorRequest) (*models.ProductColor, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, services.ErrNotFound
	}

	// ชื่อสีซ้ำใน product เดียวกันไม่ได้
	for _, c := range product.Colors {
		if c.Name == req.Name {
			return nil, fmt.Errorf("%w: color %q", services.ErrAlreadyExists, req.Name)
		}
	}

	color := &models.ProductColor{
		ID:        uuid.New(),
		ProductID: productID,
		Name:      req.Name,
		HexCode:   req.HexCode,
		SortOrder: req.SortOrder,
	}

	if err := s.productRepo.CreateColor(ctx, color); err != nil {
		logger.ErrorContext(ctx, "Failed to create color", "product_id", productID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Color added", "product_id", productID, "color", req.Name)
	return color, nil
}

func (s *ProductServiceImpl) UpdateColor(ctx context.Context, colorID uuid.UUID, req *dto.UpdateColorRequest) (*models.ProductColor, error) {
	color, err := s.productRepo.GetColorByID(ctx, colorID)
	if err != nil {
		return nil, services.ErrNotFound
	}

	if req.Name != nil {
		color.Name = *req.Name
	}
	if req.HexCode != nil {
		color.HexCode = *req.HexCode
	}
	if req.SortOrder != nil {
		color.SortOrder = *req.SortOrder
	}

	if err := s.productRepo.UpdateColor(ctx, color); err != nil {
		logger.ErrorContext(ctx, "Failed to update color", "color_id", colorID, "error", err)
		return nil, err
	}
	return color, nil
}

func (s *ProductServiceImpl) DeleteColor(ctx context.Context, colorID uuid.UUID) error {
	color, err := s.productRepo.GetColorByID(ctx, colorID)
	if err != nil {
		return services.ErrNotFound
	}

	if err := s.productRepo.DeleteColor(ctx, colorID); err != nil {
		logger.ErrorContext(ctx, "Failed to delete color", "color_id", colorID, "error", err)
		return err
	}

	s.invalidateAggregates(ctx, color.ProductID)
	return nil
}

func (s *ProductServiceImpl) AddSize(ctx context.Context, colorID uuid.UUID, req *dto.CreateSizeRequest) (*models.ProductSize, error) {
	color, err := s.productRepo.GetColorByID(ctx, colorID)
	if err != nil {
		return nil, services.ErrNotFound
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		return nil, fmt.Errorf("%w: price", services.ErrInvalidInput)
	}

	for _, size := range color.Sizes {
		if size.Size == req.Size {
			return nil, fmt.Errorf("%w: size %q", services.ErrAlreadyExists, req.Size)
		}
	}

	size := &models.ProductSize{
		ID:      uuid.New(),
		ColorID: colorID,
		Size:    req.Size,
		Price:   price,
		Stock:   req.Stock,
		SKU:     req.SKU,
	}

	if err := s.productRepo.CreateSize(ctx, size); err != nil {
		logger.ErrorContext(ctx, "Failed to create size", "color_id", colorID, "error", err)
		return nil, err
	}

	s.invalidateAggregates(ctx, color.ProductID)
	logger.InfoContext(ctx, "Size added", "color_id", colorID, "size", req.Size)
	return size, nil
}

func (s *ProductServiceImpl) UpdateSize(ctx context.Context, sizeID uuid.UUID, req *dto.UpdateSizeRequest) (*models.ProductSize, error) {
	size, err := s.productRepo.GetSizeByID(ctx, sizeID)
	if err != nil {
		return nil, services.ErrNotFound
	}

	if req.Size != nil {
		size.Size = *req.Size
	}
	if req.Price != nil {
		price, err := decimal.NewFromString(*req.Price)
		if err != nil || price.IsNegative() {
			return nil, fmt.Errorf("%w: price", services.ErrInvalidInput)
		}
		size.Price = price
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, fmt.Errorf("%w: stock", services.ErrInvalidInput)
		}
		size.Stock = *req.Stock
	}
	if req.SKU != nil {
		size.SKU = req.SKU
	}

	if err := s.productRepo.UpdateSize(ctx, size); err != nil {
		logger.ErrorContext(ctx, "Failed to update size", "size_id", sizeID, "error", err)
		return nil, err
	}

	if size.Color != nil {
		s.invalidateAggregates(ctx, size.Color.ProductID)
	}
	return size, nil
}

func (s *ProductServiceImpl) DeleteSize(ctx context.Context, sizeID uuid.UUID) error {
	size, err := s.productRepo.GetSizeByID(ctx, sizeID)
	if err != nil {
		return services.ErrNotFound
	}

	if err := s.productRepo.DeleteSize(ctx, sizeID); err != nil {
		logger.ErrorContext(ctx, "Failed to delete size", "size_id", sizeID, "error", err)
		return err
	}

	if size.Color != nil {
		s.invalidateAggregates(ctx, size.Color.ProductID)
	}
	return nil
}

// ========== Images ==========

func (s *ProductServiceImpl) UploadImage(ctx context.Context, productID uuid.UUID, filename, contentType string, reader io.Reader, size int64) (*models.ProductImage, error) {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return nil, services.ErrNotFound
	}

	ext := filepath.Ext(filename)
	path := fmt.Sprintf("products/%s/%s%s", productID, uuid.New(), ext)

	if err := s.storage.Upload(ctx, path, reader, size, contentType); err != nil {
		logger.ErrorContext(ctx, "Failed to upload image", "product_id", productID, "error", err)
		return nil, err
	}

	image := &models.ProductImage{
		ID:        uuid.New(),
		ProductID: productID,
		Path:      path,
		AltText:   filename,
	}

	if err := s.productRepo.CreateImage(ctx, image); err != nil {
		// ลบไฟล์ที่อัปโหลดไปแล้ว record สร้างไม่สำเร็จ
		if delErr := s.storage.Delete(ctx, path); delErr != nil {
			logger.WarnContext(ctx, "Failed to cleanup orphan image file", "path", path, "error", delErr)
		}
		return nil, err
	}

	logger.InfoContext(ctx, "Image uploaded", "product_id", productID, "path", path)
	return image, nil
}

func (s *ProductServiceImpl) DeleteImage(ctx context.Context, imageID uuid.UUID) error {
	image, err := s.productRepo.GetImageByID(ctx, imageID)
	if err != nil {
		return services.ErrNotFound
	}

	if err := s.productRepo.DeleteImage(ctx, imageID); err != nil {
		logger.ErrorContext(ctx, "Failed to delete image record", "image_id", imageID, "error", err)
		return err
	}

	if err := s.storage.Delete(ctx, image.Path); err != nil {
		logger.WarnContext(ctx, "Failed to delete image file", "path", image.Path, "error", err)
	}

	return nil
}

func (s *ProductServiceImpl) ImageURL(image *models.ProductImage) string {
	if image == nil {
		return ""
	}
	return s.storage.URL(image.Path)
}
