package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uuid.UUID       `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"size:255;not null"`
	Slug        string          `gorm:"size:255;uniqueIndex;not null"`
	Description string          `gorm:"type:text"`
	BasePrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	IsActive    bool            `gorm:"default:true"`
	IsFeatured  bool            `gorm:"default:false"`
	Views       int64           `gorm:"default:0"`
	Sold        int64           `gorm:"default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relations
	Category *Category      `gorm:"foreignKey:CategoryID"`
	Colors   []ProductColor `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Images   []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (Product) TableName() string {
	return "products"
}

// MinPrice ราคาต่ำสุดจาก size ทุกตัวใต้ product นี้
// ถ้าไม่มี size เลย (รวมกรณีมีสีแต่ไม่มี size) ใช้ BasePrice แทน
func (p *Product) MinPrice() decimal.Decimal {
	min := decimal.Zero
	found := false
	for _, color := range p.Colors {
		for _, size := range color.Sizes {
			if !found || size.Price.LessThan(min) {
				min = size.Price
				found = true
			}
		}
	}
	if !found {
		return p.BasePrice
	}
	return min
}

// MaxPrice ราคาสูงสุดจาก size ทุกตัว fallback เป็น BasePrice เหมือน MinPrice
func (p *Product) MaxPrice() decimal.Decimal {
	max := decimal.Zero
	found := false
	for _, color := range p.Colors {
		for _, size := range color.Sizes {
			if !found || size.Price.GreaterThan(max) {
				max = size.Price
				found = true
			}
		}
	}
	if !found {
		return p.BasePrice
	}
	return max
}

// TotalStock ผลรวม stock ของทุก size ใต้ product นี้
func (p *Product) TotalStock() int {
	total := 0
	for _, color := range p.Colors {
		for _, size := range color.Sizes {
			total += size.Stock
		}
	}
	return total
}

// InStock ตรวจสอบว่ามีของอย่างน้อย 1 ชิ้นหรือไม่
func (p *Product) InStock() bool {
	return p.TotalStock() > 0
}
