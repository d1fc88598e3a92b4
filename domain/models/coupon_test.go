package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestCouponIsValid(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	tests := []struct {
		name   string
		coupon Coupon
		want   bool
	}{
		{
			name: "active within window",
			coupon: Coupon{
				ValidFrom: timePtr(past),
				ValidTo:   timePtr(future),
				UsedCount: 0,
				MaxUses:   10,
				IsActive:  true,
			},
			want: true,
		},
		{
			name: "nil valid_from never valid",
			coupon: Coupon{
				ValidTo:  timePtr(future),
				MaxUses:  10,
				IsActive: true,
			},
			want: false,
		},
		{
			name: "nil valid_to never valid",
			coupon: Coupon{
				ValidFrom: timePtr(past),
				MaxUses:   10,
				IsActive:  true,
			},
			want: false,
		},
		{
			name: "before window",
			coupon: Coupon{
				ValidFrom: timePtr(future),
				ValidTo:   timePtr(future.Add(24 * time.Hour)),
				MaxUses:   10,
				IsActive:  true,
			},
			want: false,
		},
		{
			name: "after window",
			coupon: Coupon{
				ValidFrom: timePtr(past.Add(-24 * time.Hour)),
				ValidTo:   timePtr(past),
				MaxUses:   10,
				IsActive:  true,
			},
			want: false,
		},
		{
			name: "quota exhausted",
			coupon: Coupon{
				ValidFrom: timePtr(past),
				ValidTo:   timePtr(future),
				UsedCount: 10,
				MaxUses:   10,
				IsActive:  true,
			},
			want: false,
		},
		{
			name: "inactive",
			coupon: Coupon{
				ValidFrom: timePtr(past),
				ValidTo:   timePtr(future),
				MaxUses:   10,
				IsActive:  false,
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.coupon.IsValid(now); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCouponDiscount(t *testing.T) {
	maxAmount := dec("50.00")

	tests := []struct {
		name   string
		coupon Coupon
		total  decimal.Decimal
		want   string
	}{
		{
			name:   "ten percent",
			coupon: Coupon{DiscountPercent: 10},
			total:  dec("200.00"),
			want:   "20.00",
		},
		{
			name:   "capped at max discount",
			coupon: Coupon{DiscountPercent: 50, MaxDiscountAmount: &maxAmount},
			total:  dec("1000.00"),
			want:   "50.00",
		},
		{
			name:   "under cap not clamped",
			coupon: Coupon{DiscountPercent: 10, MaxDiscountAmount: &maxAmount},
			total:  dec("100.00"),
			want:   "10.00",
		},
		{
			name:   "full discount",
			coupon: Coupon{DiscountPercent: 100},
			total:  dec("75.25"),
			want:   "75.25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.coupon.Discount(tt.total).StringFixed(2); got != tt.want {
				t.Errorf("Discount() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestVerificationCodeExpiry(t *testing.T) {
	issued := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	record := EmailVerificationCode{
		Email:     "user@example.com",
		Code:      "123456",
		CreatedAt: issued,
	}

	if record.IsExpired(issued.Add(9 * time.Minute)) {
		t.Error("code should still be valid at 9 minutes")
	}
	if record.IsExpired(issued.Add(10 * time.Minute)) {
		t.Error("code should still be valid at exactly 10 minutes")
	}
	if !record.IsExpired(issued.Add(11 * time.Minute)) {
		t.Error("code should be expired at 11 minutes")
	}
}
