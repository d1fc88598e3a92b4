package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem หนึ่งแถวต่อ (user, product size) เสมอ
// การ add ซ้ำจะถูกรวมเข้าแถวเดิมที่ service layer
type CartItem struct {
	ID            uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_size"`
	ProductSizeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_size"`
	Quantity      int       `gorm:"not null;check:quantity > 0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Relations
	User        *User        `gorm:"foreignKey:UserID"`
	ProductSize *ProductSize `gorm:"foreignKey:ProductSizeID;constraint:OnDelete:CASCADE"`
}

func (CartItem) TableName() string {
	return "cart_items"
}

// TotalPrice ราคา size × quantity (ไม่รวมภาษี/ค่าส่ง)
func (ci *CartItem) TotalPrice() decimal.Decimal {
	if ci.ProductSize == nil {
		return decimal.Zero
	}
	return ci.ProductSize.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}
