package serviceimpl

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"shopcore/domain/models"
	"shopcore/domain/repositories"
	"shopcore/domain/services"
)

// fakeCartRepo เก็บ cart items ใน map และคุม unique (user, size) เหมือน DB จริง
// sizes ใช้เลียนแบบ preload ของ ProductSize ตอน GetByID
type fakeCartRepo struct {
	items map[uuid.UUID]*models.CartItem
	sizes map[uuid.UUID]*models.ProductSize
}

func newFakeCartRepo(sizes map[uuid.UUID]*models.ProductSize) *fakeCartRepo {
	return &fakeCartRepo{
		items: make(map[uuid.UUID]*models.CartItem),
		sizes: sizes,
	}
}

func (f *fakeCartRepo) GetByUserAndSize(ctx context.Context, userID, sizeID uuid.UUID) (*models.CartItem, error) {
	for _, item := range f.items {
		if item.UserID == userID && item.ProductSizeID == sizeID {
			copy := *item
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCartRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.CartItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *item
	if size, ok := f.sizes[copy.ProductSizeID]; ok {
		sizeCopy := *size
		copy.ProductSize = &sizeCopy
	}
	return &copy, nil
}

func (f *fakeCartRepo) Create(ctx context.Context, item *models.CartItem) error {
	for _, existing := range f.items {
		if existing.UserID == item.UserID && existing.ProductSizeID == item.ProductSizeID {
			return gorm.ErrDuplicatedKey
		}
	}
	copy := *item
	f.items[item.ID] = &copy
	return nil
}

func (f *fakeCartRepo) Update(ctx context.Context, item *models.CartItem) error {
	if _, ok := f.items[item.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copy := *item
	f.items[item.ID] = &copy
	return nil
}

func (f *fakeCartRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.items, id)
	return nil
}

func (f *fakeCartRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.CartItem, error) {
	var result []*models.CartItem
	for _, item := range f.items {
		if item.UserID == userID {
			copy := *item
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (f *fakeCartRepo) ClearByUser(ctx context.Context, userID uuid.UUID) error {
	for id, item := range f.items {
		if item.UserID == userID {
			delete(f.items, id)
		}
	}
	return nil
}

// fakeSizeRepo มีเฉพาะ GetSizeByID ที่ cart service เรียกใช้
// method อื่นของ ProductRepository ไม่ถูกแตะใน test เหล่านี้
type fakeSizeRepo struct {
	repositories.ProductRepository
	sizes map[uuid.UUID]*models.ProductSize
}

func (f *fakeSizeRepo) GetSizeByID(ctx context.Context, id uuid.UUID) (*models.ProductSize, error) {
	size, ok := f.sizes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *size
	return &copy, nil
}

func newCartFixture(stock int, policy services.StockPolicy) (services.CartService, *fakeCartRepo, uuid.UUID) {
	sizeID := uuid.New()
	sizes := map[uuid.UUID]*models.ProductSize{
		sizeID: {
			ID:    sizeID,
			Size:  "M",
			Price: decimal.NewFromInt(100),
			Stock: stock,
		},
	}
	sizeRepo := &fakeSizeRepo{sizes: sizes}
	cartRepo := newFakeCartRepo(sizes)
	svc := NewCartService(cartRepo, sizeRepo, policy)
	return svc, cartRepo, sizeID
}

func TestAddToCartConsolidatesRows(t *testing.T) {
	svc, repo, sizeID := newCartFixture(20, services.StockPolicyClamp)
	userID := uuid.New()
	ctx := context.Background()

	first, err := svc.AddToCart(ctx, userID, sizeID, 4)
	if err != nil {
		t.Fatalf("first add: %v", err)
	}

	second, err := svc.AddToCart(ctx, userID, sizeID, 4)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	if second.ID != first.ID {
		t.Error("second add should merge into the existing row")
	}
	if second.Quantity != 8 {
		t.Errorf("quantity = %d, want 8", second.Quantity)
	}
	if len(repo.items) != 1 {
		t.Errorf("rows = %d, want 1", len(repo.items))
	}
}

func TestAddToCartClampPolicy(t *testing.T) {
	svc, _, sizeID := newCartFixture(5, services.StockPolicyClamp)
	userID := uuid.New()
	ctx := context.Background()

	item, err := svc.AddToCart(ctx, userID, sizeID, 3)
	if err != nil {
		t.Fatalf("add 3: %v", err)
	}
	if item.Quantity != 3 {
		t.Errorf("quantity = %d, want 3", item.Quantity)
	}

	// 3 + 10 > stock 5 ถูก clamp
	item, err = svc.AddToCart(ctx, userID, sizeID, 10)
	if err != nil {
		t.Fatalf("add 10: %v", err)
	}
	if item.Quantity != 5 {
		t.Errorf("quantity after clamp = %d, want 5", item.Quantity)
	}
}

func TestAddToCartRejectPolicy(t *testing.T) {
	svc, _, sizeID := newCartFixture(5, services.StockPolicyReject)
	userID := uuid.New()
	ctx := context.Background()

	if _, err := svc.AddToCart(ctx, userID, sizeID, 10); !errors.Is(err, services.ErrStockExceeded) {
		t.Errorf("err = %v, want ErrStockExceeded", err)
	}

	// ภายใน stock ยังเพิ่มได้ตามปกติ
	item, err := svc.AddToCart(ctx, userID, sizeID, 5)
	if err != nil {
		t.Fatalf("add 5: %v", err)
	}
	if item.Quantity != 5 {
		t.Errorf("quantity = %d, want 5", item.Quantity)
	}

	if _, err := svc.AddToCart(ctx, userID, sizeID, 1); !errors.Is(err, services.ErrStockExceeded) {
		t.Errorf("merge past stock: err = %v, want ErrStockExceeded", err)
	}
}

func TestAddToCartValidation(t *testing.T) {
	svc, _, sizeID := newCartFixture(5, services.StockPolicyClamp)
	ctx := context.Background()

	if _, err := svc.AddToCart(ctx, uuid.New(), sizeID, 0); !errors.Is(err, services.ErrInvalidInput) {
		t.Errorf("zero quantity: err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.AddToCart(ctx, uuid.New(), sizeID, -1); !errors.Is(err, services.ErrInvalidInput) {
		t.Errorf("negative quantity: err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.AddToCart(ctx, uuid.New(), uuid.New(), 1); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("unknown size: err = %v, want ErrNotFound", err)
	}
}

func TestSetQuantityZeroRemovesRow(t *testing.T) {
	svc, repo, sizeID := newCartFixture(10, services.StockPolicyClamp)
	userID := uuid.New()
	ctx := context.Background()

	item, err := svc.AddToCart(ctx, userID, sizeID, 2)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	result, err := svc.SetQuantity(ctx, userID, item.ID, 0)
	if err != nil {
		t.Fatalf("set quantity 0: %v", err)
	}
	if result != nil {
		t.Error("removed item should return nil")
	}
	if len(repo.items) != 0 {
		t.Errorf("rows = %d, want 0", len(repo.items))
	}
}

func TestSetQuantityClampsToStock(t *testing.T) {
	svc, _, sizeID := newCartFixture(5, services.StockPolicyReject)
	userID := uuid.New()
	ctx := context.Background()

	item, err := svc.AddToCart(ctx, userID, sizeID, 2)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	// SetQuantity clamp เสมอ แม้ policy เป็น reject
	updated, err := svc.SetQuantity(ctx, userID, item.ID, 50)
	if err != nil {
		t.Fatalf("set quantity: %v", err)
	}
	if updated.Quantity != 5 {
		t.Errorf("quantity = %d, want 5", updated.Quantity)
	}
}

func TestSetQuantityWrongUser(t *testing.T) {
	svc, _, sizeID := newCartFixture(5, services.StockPolicyClamp)
	ctx := context.Background()

	item, err := svc.AddToCart(ctx, uuid.New(), sizeID, 2)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if _, err := svc.SetQuantity(ctx, uuid.New(), item.ID, 3); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if err := svc.Remove(ctx, uuid.New(), item.ID); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("remove: err = %v, want ErrNotFound", err)
	}
}
