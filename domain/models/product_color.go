package models

import (
	"time"

	"github.com/google/uuid"
)

type ProductColor struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_product_color_name"`
	Name      string    `gorm:"size:50;not null;uniqueIndex:idx_product_color_name"`
	HexCode   string    `gorm:"size:7"`
	SortOrder int       `gorm:"default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Relations
	Product *Product      `gorm:"foreignKey:ProductID"`
	Sizes   []ProductSize `gorm:"foreignKey:ColorID;constraint:OnDelete:CASCADE"`
}

func (ProductColor) TableName() string {
	return "product_colors"
}

// TotalStock ผลรวม stock ของทุก size ในสีนี้
func (c *ProductColor) TotalStock() int {
	total := 0
	for _, size := range c.Sizes {
		total += size.Stock
	}
	return total
}
