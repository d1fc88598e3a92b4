package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"shopcore/domain/models"
)

// === Requests ===

type AddToCartRequest struct {
	ProductSizeID uuid.UUID `json:"productSizeId" validate:"required"`
	Quantity      int       `json:"quantity" validate:"required,gt=0"`
}

type SetQuantityRequest struct {
	// quantity <= 0 คือลบรายการออกจากตะกร้า
	Quantity int `json:"quantity"`
}

// === Responses ===

type CartItemResponse struct {
	ID            uuid.UUID `json:"id"`
	ProductSizeID uuid.UUID `json:"productSizeId"`
	ProductID     uuid.UUID `json:"productId"`
	ProductName   string    `json:"productName"`
	ProductSlug   string    `json:"productSlug"`
	ColorName     string    `json:"colorName"`
	Size          string    `json:"size"`
	UnitPrice     string    `json:"unitPrice"`
	Quantity      int       `json:"quantity"`
	Stock         int       `json:"stock"`
	TotalPrice    string    `json:"totalPrice"`
}

type CartSummaryResponse struct {
	Items      []CartItemResponse `json:"items"`
	ItemsCount int                `json:"itemsCount"`
	Subtotal   string             `json:"subtotal"`
}

// === Mappers ===

func CartItemToCartItemResponse(item *models.CartItem) CartItemResponse {
	resp := CartItemResponse{
		ID:            item.ID,
		ProductSizeID: item.ProductSizeID,
		Quantity:      item.Quantity,
		TotalPrice:    item.TotalPrice().StringFixed(2),
	}
	if size := item.ProductSize; size != nil {
		resp.Size = size.Size
		resp.UnitPrice = size.Price.StringFixed(2)
		resp.Stock = size.Stock
		if color := size.Color; color != nil {
			resp.ColorName = color.Name
			if product := color.Product; product != nil {
				resp.ProductID = product.ID
				resp.ProductName = product.Name
				resp.ProductSlug = product.Slug
			}
		}
	}
	return resp
}

func CartItemsToSummaryResponse(items []*models.CartItem) CartSummaryResponse {
	summary := CartSummaryResponse{
		Items:      make([]CartItemResponse, len(items)),
		ItemsCount: len(items),
	}
	subtotal := decimal.Zero
	for i, item := range items {
		summary.Items[i] = CartItemToCartItemResponse(item)
		subtotal = subtotal.Add(item.TotalPrice())
	}
	summary.Subtotal = subtotal.StringFixed(2)
	return summary
}
