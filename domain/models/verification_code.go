package models

import (
	"time"
)

// อายุของ verification code นับจากเวลาที่ออก
const VerificationCodeTTL = 10 * time.Minute

// EmailVerificationCode หนึ่ง record ต่อ email
// ขอ code ใหม่จะทับ record เดิมเสมอ
type EmailVerificationCode struct {
	Email     string `gorm:"primaryKey;size:255"`
	Code      string `gorm:"size:6;not null"`
	IsUsed    bool   `gorm:"default:false"`
	CreatedAt time.Time
}

func (EmailVerificationCode) TableName() string {
	return "email_verification_codes"
}

// IsExpired ตรวจสอบว่าเกิน 10 นาทีนับจากออก code หรือยัง
func (v *EmailVerificationCode) IsExpired(now time.Time) bool {
	return now.Sub(v.CreatedAt) > VerificationCodeTTL
}
