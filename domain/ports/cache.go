package ports

import (
	"context"
	"time"
)

// CachePort cache แบบ JSON key/value (Redis)
// อ่านไม่เจอหรือ cache ล่ม ให้ caller คำนวณสดแทน
type CachePort interface {
	GetJSON(ctx context.Context, key string, target interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
