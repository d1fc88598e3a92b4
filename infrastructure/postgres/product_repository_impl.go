package postgres

import (
	"context"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shopcore/domain/models"
	"shopcore/domain/repositories"
)

type ProductRepositoryImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repositories.ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

// preloadTree โหลด variant tree เรียงตาม sort order สำหรับคำนวณ aggregate
func (r *ProductRepositoryImpl) preloadTree(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Category").
		Preload("Colors", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, name ASC")
		}).
		Preload("Colors.Sizes", func(db *gorm.DB) *gorm.DB {
			return db.Order("size ASC")
		}).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		})
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *ProductRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.preloadTree(r.db.WithContext(ctx)).Where("id = ?", id).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := r.preloadTree(r.db.WithContext(ctx)).Where("slug = ?", slug).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepositoryImpl) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (r *ProductRepositoryImpl) Update(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Omit("Colors", "Images", "Category").Save(product).Error
}

func (r *ProductRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	// cascade ลง colors/sizes/images/reviews/favorites/cart items ผ่าน FK constraint
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{}).Error
}

func (r *ProductRepositoryImpl) List(ctx context.Context, filter repositories.ProductFilter) ([]*models.Product, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Product{})

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Active != nil {
		query = query.Where("is_active = ?", *filter.Active)
	}
	if filter.Featured != nil {
		query = query.Where("is_featured = ?", *filter.Featured)
	}
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}

	var products []*models.Product
	err := r.preloadTree(query).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&products).Error
	return products, total, err
}

func (r *ProductRepositoryImpl) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

// GetReviewStats นับเฉพาะรีวิวที่ approve แล้ว ปัด average เป็นทศนิยม 1 ตำแหน่ง
func (r *ProductRepositoryImpl) GetReviewStats(ctx context.Context, productID uuid.UUID) (*repositories.ReviewStats, error) {
	type row struct {
		Avg   float64
		Count int64
	}
	var result row
	err := r.db.WithContext(ctx).
		Model(&models.ProductReview{}).
		Select("COALESCE(AVG(rating), 0) as avg, COUNT(*) as count").
		Where("product_id = ? AND is_approved = ?", productID, true).
		Scan(&result).Error
	if err != nil {
		return nil, err
	}
	return &repositories.ReviewStats{
		AverageRating: math.Round(result.Avg*10) / 10,
		ReviewsCount:  result.Count,
	}, nil
}

func (r *ProductRepositoryImpl) GetReviewStatsBatch(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]*repositories.ReviewStats, error) {
	stats := make(map[uuid.UUID]*repositories.ReviewStats, len(productIDs))
	if len(productIDs) == 0 {
		return stats, nil
	}

	type row struct {
		ProductID uuid.UUID
		Avg       float64
		Count     int64
	}
	var results []row
	err := r.db.WithContext(ctx).
		Model(&models.ProductReview{}).
		Select("product_id, COALESCE(AVG(rating), 0) as avg, COUNT(*) as count").
		Where("product_id IN ? AND is_approved = ?", productIDs, true).
		Group("product_id").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	for _, result := range results {
		stats[result.ProductID] = &repositories.ReviewStats{
			AverageRating: math.Round(result.Avg*10) / 10,
			ReviewsCount:  result.Count,
		}
	}
	return stats, nil
}

// === Colors ===

func (r *ProductRepositoryImpl) CreateColor(ctx context.Context, color *models.ProductColor) error {
	return r.db.WithContext(ctx).Create(color).Error
}

func (r *ProductRepositoryImpl) GetColorByID(ctx context.Context, id uuid.UUID) (*models.ProductColor, error) {
	var color models.ProductColor
	err := r.db.WithContext(ctx).
		Preload("Sizes").
		Where("id = ?", id).First(&color).Error
	if err != nil {
		return nil, err
	}
	return &color, nil
}

func (r *ProductRepositoryImpl) UpdateColor(ctx context.Context, color *models.ProductColor) error {
	return r.db.WithContext(ctx).Omit("Sizes", "Product").Save(color).Error
}

func (r *ProductRepositoryImpl) DeleteColor(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ProductColor{}).Error
}

// === Sizes ===

func (r *ProductRepositoryImpl) CreateSize(ctx context.Context, size *models.ProductSize) error {
	return r.db.WithContext(ctx).Create(size).Error
}

func (r *ProductRepositoryImpl) GetSizeByID(ctx context.Context, id uuid.UUID) (*models.ProductSize, error) {
	var size models.ProductSize
	err := r.db.WithContext(ctx).
		Preload("Color").
		Preload("Color.Product").
		Where("id = ?", id).First(&size).Error
	if err != nil {
		return nil, err
	}
	return &size, nil
}

func (r *ProductRepositoryImpl) UpdateSize(ctx context.Context, size *models.ProductSize) error {
	return r.db.WithContext(ctx).Omit("Color").Save(size).Error
}

func (r *ProductRepositoryImpl) DeleteSize(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ProductSize{}).Error
}

// === Images ===

func (r *ProductRepositoryImpl) CreateImage(ctx context.Context, image *models.ProductImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *ProductRepositoryImpl) GetImageByID(ctx context.Context, id uuid.UUID) (*models.ProductImage, error) {
	var image models.ProductImage
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&image).Error
	if err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *ProductRepositoryImpl) DeleteImage(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ProductImage{}).Error
}
