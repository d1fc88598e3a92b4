package models

import (
	"time"

	"github.com/google/uuid"
)

type ProductImage struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Path      string    `gorm:"type:text;not null"` // path ใน storage (local หรือ S3 key)
	AltText   string    `gorm:"size:255"`
	IsPrimary bool      `gorm:"default:false"`
	SortOrder int       `gorm:"default:0"`
	CreatedAt time.Time

	// Relations
	Product *Product `gorm:"foreignKey:ProductID"`
}

func (ProductImage) TableName() string {
	return "product_images"
}
