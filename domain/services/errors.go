package services

import "errors"

// Sentinel errors ที่ handler ใช้ map เป็น response code
var (
	ErrNotFound      = errors.New("resource not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrAlreadyExists = errors.New("resource already exists")

	// Email verification gate
	ErrCodeExpired     = errors.New("verification code has expired")
	ErrCodeMismatch    = errors.New("verification code does not match")
	ErrCodeNotVerified = errors.New("email has not been verified")

	// Cart
	ErrStockExceeded = errors.New("requested quantity exceeds available stock")

	// Coupon
	ErrCouponInvalid   = errors.New("coupon is not valid")
	ErrCouponExhausted = errors.New("coupon usage limit reached")

	// Auth
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
)
