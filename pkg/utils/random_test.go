package utils

import "testing"

func TestGenerateNumericCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := GenerateNumericCode(6)
		if len(code) != 6 {
			t.Fatalf("code length = %d, want 6", len(code))
		}
		for _, ch := range code {
			if ch < '0' || ch > '9' {
				t.Fatalf("code %q contains non-digit", code)
			}
		}
		seen[code] = true
	}

	// 100 รอบได้ค่าเดียวกันหมดแปลว่า source พัง
	if len(seen) < 2 {
		t.Error("codes are not random")
	}
}

func TestGenerateRandomString(t *testing.T) {
	s := GenerateRandomString(8)
	if len(s) != 8 {
		t.Errorf("length = %d, want 8", len(s))
	}
	for _, ch := range s {
		switch {
		case ch >= 'a' && ch <= 'z':
		case ch >= '2' && ch <= '9':
		default:
			t.Errorf("string %q contains unexpected character %q", s, ch)
		}
	}
}
