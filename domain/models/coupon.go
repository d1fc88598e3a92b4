package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Coupon struct {
	ID                uuid.UUID        `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Code              string           `gorm:"size:50;uniqueIndex;not null"`
	DiscountPercent   int              `gorm:"not null;check:discount_percent >= 1 AND discount_percent <= 100"`
	MaxDiscountAmount *decimal.Decimal `gorm:"type:decimal(12,2)"` // nullable = ไม่จำกัดเพดานส่วนลด
	ValidFrom         *time.Time
	ValidTo           *time.Time
	UsedCount         int  `gorm:"default:0"`
	MaxUses           int  `gorm:"not null"`
	IsActive          bool `gorm:"default:true"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (Coupon) TableName() string {
	return "coupons"
}

// IsValid pure predicate ไม่มี side effect
// คูปองที่ไม่ได้กำหนดช่วงเวลา (valid_from หรือ valid_to เป็น nil) ถือว่าใช้ไม่ได้เสมอ
func (c *Coupon) IsValid(now time.Time) bool {
	if c.ValidFrom == nil || c.ValidTo == nil {
		return false
	}
	if now.Before(*c.ValidFrom) || now.After(*c.ValidTo) {
		return false
	}
	if c.UsedCount >= c.MaxUses {
		return false
	}
	return c.IsActive
}

// Discount คำนวณส่วนลดจากยอดรวม โดย cap ที่ MaxDiscountAmount ถ้ากำหนดไว้
func (c *Coupon) Discount(total decimal.Decimal) decimal.Decimal {
	discount := total.Mul(decimal.NewFromInt(int64(c.DiscountPercent))).Div(decimal.NewFromInt(100))
	if c.MaxDiscountAmount != nil && discount.GreaterThan(*c.MaxDiscountAmount) {
		discount = *c.MaxDiscountAmount
	}
	return discount
}
