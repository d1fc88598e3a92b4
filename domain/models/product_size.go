package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductSize คือหน่วยที่ซื้อขายจริง (variant สี+ไซส์)
type ProductSize struct {
	ID        uuid.UUID       `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ColorID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_color_size"`
	Size      string          `gorm:"size:20;not null;uniqueIndex:idx_color_size"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Stock     int             `gorm:"not null;default:0;check:stock >= 0"`
	SKU       *string         `gorm:"size:64;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Relations
	Color *ProductColor `gorm:"foreignKey:ColorID"`
}

func (ProductSize) TableName() string {
	return "product_sizes"
}

// Available ตรวจสอบว่ายังมี stock เหลือ
func (s *ProductSize) Available() bool {
	return s.Stock > 0
}
