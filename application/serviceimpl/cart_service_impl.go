package serviceimpl

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shopcore/domain/models"
	"shopcore/domain/repositories"
	"shopcore/domain/services"
	"shopcore/pkg/logger"
)

type CartServiceImpl struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
	policy      services.StockPolicy
}

func NewCartService(
	cartRepo repositories.CartRepository,
	productRepo repositories.ProductRepository,
	policy services.StockPolicy,
) services.CartService {
	if policy != services.StockPolicyReject {
		policy = services.StockPolicyClamp
	}
	return &CartServiceImpl{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		policy:      policy,
	}
}

// applyPolicy ตัด quantity ตาม stock ที่เหลือ
// clamp: ลดเหลือเท่า stock, reject: คืน ErrStockExceeded
func (s *CartServiceImpl) applyPolicy(requested, stock int) (int, error) {
	if requested <= stock {
		return requested, nil
	}
	if s.policy == services.StockPolicyReject {
		return 0, fmt.Errorf("%w: requested %d, stock %d", services.ErrStockExceeded, requested, stock)
	}
	return stock, nil
}

func (s *CartServiceImpl) AddToCart(ctx context.Context, userID, sizeID uuid.UUID, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", services.ErrInvalidInput)
	}

	size, err := s.productRepo.GetSizeByID(ctx, sizeID)
	if err != nil {
		logger.WarnContext(ctx, "Product size not found", "size_id", sizeID)
		return nil, fmt.Errorf("%w: product size", services.ErrNotFound)
	}

	if size.Stock == 0 {
		return nil, fmt.Errorf("%w: out of stock", services.ErrStockExceeded)
	}

	existing, err := s.cartRepo.GetByUserAndSize(ctx, userID, sizeID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if existing != nil {
		return s.mergeIntoExisting(ctx, existing, quantity, size.Stock)
	}

	qty, err := s.applyPolicy(quantity, size.Stock)
	if err != nil {
		return nil, err
	}

	item := &models.CartItem{
		ID:            uuid.New(),
		UserID:        userID,
		ProductSizeID: sizeID,
		Quantity:      qty,
	}

	if err := s.cartRepo.Create(ctx, item); err != nil {
		// แพ้ race กับ request อื่นของ user เดียวกันที่สร้างแถวนี้ก่อน
		// unique index (user_id, product_size_id) กันแถวซ้ำไว้ สลับไป increment แทน
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			existing, getErr := s.cartRepo.GetByUserAndSize(ctx, userID, sizeID)
			if getErr != nil {
				return nil, getErr
			}
			return s.mergeIntoExisting(ctx, existing, quantity, size.Stock)
		}
		logger.ErrorContext(ctx, "Failed to create cart item", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Cart item added", "user_id", userID, "size_id", sizeID, "quantity", qty)
	return s.cartRepo.GetByID(ctx, item.ID)
}

func (s *CartServiceImpl) mergeIntoExisting(ctx context.Context, existing *models.CartItem, addQty, stock int) (*models.CartItem, error) {
	qty, err := s.applyPolicy(existing.Quantity+addQty, stock)
	if err != nil {
		return nil, err
	}

	existing.Quantity = qty
	if err := s.cartRepo.Update(ctx, existing); err != nil {
		logger.ErrorContext(ctx, "Failed to merge cart item", "item_id", existing.ID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Cart item merged", "item_id", existing.ID, "quantity", qty)
	return s.cartRepo.GetByID(ctx, existing.ID)
}

func (s *CartServiceImpl) SetQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*models.CartItem, error) {
	item, err := s.cartRepo.GetByID(ctx, itemID)
	if err != nil || item.UserID != userID {
		return nil, services.ErrNotFound
	}

	// quantity <= 0 ตีความว่าเอาออกจากตะกร้า
	if quantity <= 0 {
		if err := s.cartRepo.Delete(ctx, itemID); err != nil {
			return nil, err
		}
		logger.InfoContext(ctx, "Cart item removed via zero quantity", "item_id", itemID)
		return nil, nil
	}

	stock := 0
	if item.ProductSize != nil {
		stock = item.ProductSize.Stock
	}

	// SetQuantity clamp เสมอ ไม่ว่า policy จะเป็นอะไร
	// user กำลังแก้ของที่อยู่ในตะกร้าแล้ว ไม่ควรเด้ง error กลับ
	if quantity > stock {
		quantity = stock
	}
	if quantity == 0 {
		if err := s.cartRepo.Delete(ctx, itemID); err != nil {
			return nil, err
		}
		return nil, nil
	}

	item.Quantity = quantity
	if err := s.cartRepo.Update(ctx, item); err != nil {
		logger.ErrorContext(ctx, "Failed to set cart quantity", "item_id", itemID, "error", err)
		return nil, err
	}

	return s.cartRepo.GetByID(ctx, itemID)
}

func (s *CartServiceImpl) Remove(ctx context.Context, userID, itemID uuid.UUID) error {
	item, err := s.cartRepo.GetByID(ctx, itemID)
	if err != nil || item.UserID != userID {
		return services.ErrNotFound
	}
	return s.cartRepo.Delete(ctx, itemID)
}

func (s *CartServiceImpl) List(ctx context.Context, userID uuid.UUID) ([]*models.CartItem, error) {
	return s.cartRepo.ListByUser(ctx, userID)
}

func (s *CartServiceImpl) Clear(ctx context.Context, userID uuid.UUID) error {
	return s.cartRepo.ClearByUser(ctx, userID)
}
