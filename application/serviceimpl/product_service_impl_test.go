package serviceimpl

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shopcore/domain/dto"
	"shopcore/domain/models"
	"shopcore/domain/repositories"
	"shopcore/domain/services"
)

// fakeProductRepo เก็บ products ใน map ใช้ทดสอบ slug derivation กับ view counter
// method อื่นของ ProductRepository ไม่ถูกแตะใน test เหล่านี้
type fakeProductRepo struct {
	repositories.ProductRepository
	products map[uuid.UUID]*models.Product
	views    map[uuid.UUID]int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products: make(map[uuid.UUID]*models.Product),
		views:    make(map[uuid.UUID]int),
	}
}

func (f *fakeProductRepo) Create(ctx context.Context, product *models.Product) error {
	copy := *product
	f.products[product.ID] = &copy
	return nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *product
	return &copy, nil
}

func (f *fakeProductRepo) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	for _, product := range f.products {
		if product.Slug == slug {
			copy := *product
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProductRepo) IncrementViews(ctx context.Context, id uuid.UUID) error {
	f.views[id]++
	return nil
}

// fakeCategoryRepo มีเฉพาะ GetByID ที่ product service เรียกตอน create/update
type fakeCategoryRepo struct {
	repositories.CategoryRepository
	categories map[uuid.UUID]*models.Category
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *category
	return &copy, nil
}

func newProductFixture() (services.ProductService, *fakeProductRepo, uuid.UUID) {
	categoryID := uuid.New()
	categoryRepo := &fakeCategoryRepo{
		categories: map[uuid.UUID]*models.Category{
			categoryID: {ID: categoryID, Name: "Shirts", Slug: "shirts"},
		},
	}
	productRepo := newFakeProductRepo()
	svc := NewProductService(productRepo, categoryRepo, nil, nil, 0)
	return svc, productRepo, categoryID
}

func TestCreateProductDerivesSlugFromName(t *testing.T) {
	svc, _, categoryID := newProductFixture()
	ctx := context.Background()

	product, err := svc.Create(ctx, &dto.CreateProductRequest{
		CategoryID: categoryID,
		Name:       "Summer Shirt 2026",
		BasePrice:  "199.00",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if product.Slug != "summer-shirt-2026" {
		t.Errorf("slug = %q, want %q", product.Slug, "summer-shirt-2026")
	}
	if !product.IsActive {
		t.Error("new product should default to active")
	}
}

func TestCreateProductSlugCollisionGetsSuffix(t *testing.T) {
	svc, _, categoryID := newProductFixture()
	ctx := context.Background()

	first, err := svc.Create(ctx, &dto.CreateProductRequest{
		CategoryID: categoryID,
		Name:       "Basic Tee",
		BasePrice:  "99.00",
	})
	if err != nil {
		t.Fatalf("first create: %v", err)
	}

	second, err := svc.Create(ctx, &dto.CreateProductRequest{
		CategoryID: categoryID,
		Name:       "Basic Tee",
		BasePrice:  "99.00",
	})
	if err != nil {
		t.Fatalf("second create: %v", err)
	}

	if first.Slug != "basic-tee" {
		t.Errorf("first slug = %q, want %q", first.Slug, "basic-tee")
	}
	if second.Slug != "basic-tee-2" {
		t.Errorf("second slug = %q, want %q", second.Slug, "basic-tee-2")
	}
}

func TestCreateProductValidatesInput(t *testing.T) {
	svc, _, categoryID := newProductFixture()
	ctx := context.Background()

	tests := []struct {
		name string
		req  *dto.CreateProductRequest
		want error
	}{
		{
			name: "unknown category",
			req:  &dto.CreateProductRequest{CategoryID: uuid.New(), Name: "X", BasePrice: "10.00"},
			want: services.ErrNotFound,
		},
		{
			name: "malformed price",
			req:  &dto.CreateProductRequest{CategoryID: categoryID, Name: "X", BasePrice: "abc"},
			want: services.ErrInvalidInput,
		},
		{
			name: "negative price",
			req:  &dto.CreateProductRequest{CategoryID: categoryID, Name: "X", BasePrice: "-5.00"},
			want: services.ErrInvalidInput,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, tc.req); !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestGetBySlugCountsView(t *testing.T) {
	svc, repo, categoryID := newProductFixture()
	ctx := context.Background()

	product, err := svc.Create(ctx, &dto.CreateProductRequest{
		CategoryID: categoryID,
		Name:       "Hoodie",
		BasePrice:  "499.00",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.GetBySlug(ctx, "hoodie"); err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if _, err := svc.GetBySlug(ctx, "hoodie"); err != nil {
		t.Fatalf("get by slug again: %v", err)
	}

	if repo.views[product.ID] != 2 {
		t.Errorf("views = %d, want 2", repo.views[product.ID])
	}

	if _, err := svc.GetBySlug(ctx, "no-such-slug"); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("unknown slug: err = %v, want ErrNotFound", err)
	}
}
