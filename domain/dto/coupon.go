package dto

import (
	"time"

	"github.com/google/uuid"
	"shopcore/domain/models"
)

// === Requests ===

type CreateCouponRequest struct {
	Code              string     `json:"code" validate:"required,min=3,max=50,alphanum"`
	DiscountPercent   int        `json:"discountPercent" validate:"required,min=1,max=100"`
	MaxDiscountAmount *string    `json:"maxDiscountAmount"`
	ValidFrom         *time.Time `json:"validFrom"`
	ValidTo           *time.Time `json:"validTo"`
	MaxUses           int        `json:"maxUses" validate:"required,gt=0"`
	IsActive          *bool      `json:"isActive"`
}

type UpdateCouponRequest struct {
	DiscountPercent   *int       `json:"discountPercent" validate:"omitempty,min=1,max=100"`
	MaxDiscountAmount *string    `json:"maxDiscountAmount"`
	ValidFrom         *time.Time `json:"validFrom"`
	ValidTo           *time.Time `json:"validTo"`
	MaxUses           *int       `json:"maxUses" validate:"omitempty,gt=0"`
	IsActive          *bool      `json:"isActive"`
}

type ValidateCouponRequest struct {
	Code  string `json:"code" validate:"required"`
	Total string `json:"total" validate:"required"` // ยอดรวมตะกร้าเป็น decimal string
}

// === Responses ===

type CouponResponse struct {
	ID                uuid.UUID  `json:"id"`
	Code              string     `json:"code"`
	DiscountPercent   int        `json:"discountPercent"`
	MaxDiscountAmount *string    `json:"maxDiscountAmount,omitempty"`
	ValidFrom         *time.Time `json:"validFrom"`
	ValidTo           *time.Time `json:"validTo"`
	UsedCount         int        `json:"usedCount"`
	MaxUses           int        `json:"maxUses"`
	IsActive          bool       `json:"isActive"`
	CreatedAt         time.Time  `json:"createdAt"`
}

type CouponValidationResponse struct {
	Valid    bool   `json:"valid"`
	Code     string `json:"code"`
	Discount string `json:"discount"`
	Total    string `json:"total"`
	Payable  string `json:"payable"`
}

// === Mappers ===

func CouponToCouponResponse(coupon *models.Coupon) CouponResponse {
	resp := CouponResponse{
		ID:              coupon.ID,
		Code:            coupon.Code,
		DiscountPercent: coupon.DiscountPercent,
		ValidFrom:       coupon.ValidFrom,
		ValidTo:         coupon.ValidTo,
		UsedCount:       coupon.UsedCount,
		MaxUses:         coupon.MaxUses,
		IsActive:        coupon.IsActive,
		CreatedAt:       coupon.CreatedAt,
	}
	if coupon.MaxDiscountAmount != nil {
		amount := coupon.MaxDiscountAmount.StringFixed(2)
		resp.MaxDiscountAmount = &amount
	}
	return resp
}

func CouponsToCouponResponses(coupons []*models.Coupon) []CouponResponse {
	responses := make([]CouponResponse, len(coupons))
	for i, coupon := range coupons {
		responses[i] = CouponToCouponResponse(coupon)
	}
	return responses
}
