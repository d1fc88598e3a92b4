package models

import (
	"time"

	"github.com/google/uuid"
)

// ProductReview หนึ่งรีวิวต่อ (product, user)
// รีวิวที่ยังไม่ approve จะไม่ถูกนับใน average rating
type ProductReview struct {
	ID         uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_product_user_review"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_product_user_review"`
	Rating     int       `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment    string    `gorm:"type:text"`
	IsApproved bool      `gorm:"default:false"`
	Helpful    int       `gorm:"default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Relations
	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	User    *User    `gorm:"foreignKey:UserID"`
}

func (ProductReview) TableName() string {
	return "product_reviews"
}
