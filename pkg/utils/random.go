package utils

import (
	"crypto/rand"
	"math/big"
)

const (
	// ตัวอักษรที่ใช้สำหรับ random string (ไม่มีตัวที่สับสน เช่น 0, O, l, 1)
	alphanumeric = "abcdefghjkmnpqrstuvwxyz23456789"
	digits       = "0123456789"
)

// GenerateRandomString สร้าง random string ความยาว n ตัวอักษร
func GenerateRandomString(n int) string {
	result := make([]byte, n)
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphanumeric))))
		if err != nil {
			// fallback ถ้า crypto/rand ใช้ไม่ได้
			result[i] = alphanumeric[i%len(alphanumeric)]
			continue
		}
		result[i] = alphanumeric[num.Int64()]
	}
	return string(result)
}

// GenerateNumericCode สร้างรหัสตัวเลขความยาว n หลัก สำหรับ email verification
func GenerateNumericCode(n int) string {
	result := make([]byte, n)
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			result[i] = digits[i%len(digits)]
			continue
		}
		result[i] = digits[num.Int64()]
	}
	return string(result)
}
