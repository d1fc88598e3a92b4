package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func shirtFixture() *Product {
	return &Product{
		Name:      "Shirt",
		BasePrice: dec("90.00"),
		Colors: []ProductColor{
			{
				Name: "Red",
				Sizes: []ProductSize{
					{Size: "S", Price: dec("100.00"), Stock: 2},
					{Size: "M", Price: dec("120.00"), Stock: 0},
				},
			},
			{
				Name: "Blue",
				Sizes: []ProductSize{
					{Size: "S", Price: dec("110.00"), Stock: 5},
				},
			},
		},
	}
}

func TestProductAggregates(t *testing.T) {
	tests := []struct {
		name          string
		product       *Product
		wantMin       string
		wantMax       string
		wantStock     int
		wantInStock   bool
	}{
		{
			name:        "variant tree with mixed stock",
			product:     shirtFixture(),
			wantMin:     "100.00",
			wantMax:     "120.00",
			wantStock:   7,
			wantInStock: true,
		},
		{
			name: "no colors falls back to base price",
			product: &Product{
				BasePrice: dec("199.00"),
			},
			wantMin:     "199.00",
			wantMax:     "199.00",
			wantStock:   0,
			wantInStock: false,
		},
		{
			name: "colors without sizes falls back to base price",
			product: &Product{
				BasePrice: dec("59.50"),
				Colors: []ProductColor{
					{Name: "Green"},
					{Name: "Black"},
				},
			},
			wantMin:     "59.50",
			wantMax:     "59.50",
			wantStock:   0,
			wantInStock: false,
		},
		{
			name: "all sizes out of stock",
			product: &Product{
				BasePrice: dec("10.00"),
				Colors: []ProductColor{
					{
						Name: "White",
						Sizes: []ProductSize{
							{Size: "S", Price: dec("15.00"), Stock: 0},
							{Size: "M", Price: dec("15.00"), Stock: 0},
						},
					},
				},
			},
			wantMin:     "15.00",
			wantMax:     "15.00",
			wantStock:   0,
			wantInStock: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.product.MinPrice().StringFixed(2); got != tt.wantMin {
				t.Errorf("MinPrice() = %s, want %s", got, tt.wantMin)
			}
			if got := tt.product.MaxPrice().StringFixed(2); got != tt.wantMax {
				t.Errorf("MaxPrice() = %s, want %s", got, tt.wantMax)
			}
			if got := tt.product.TotalStock(); got != tt.wantStock {
				t.Errorf("TotalStock() = %d, want %d", got, tt.wantStock)
			}
			if got := tt.product.InStock(); got != tt.wantInStock {
				t.Errorf("InStock() = %v, want %v", got, tt.wantInStock)
			}
		})
	}
}

func TestColorTotalStock(t *testing.T) {
	product := shirtFixture()
	if got := product.Colors[0].TotalStock(); got != 2 {
		t.Errorf("Red TotalStock() = %d, want 2", got)
	}
	if got := product.Colors[1].TotalStock(); got != 5 {
		t.Errorf("Blue TotalStock() = %d, want 5", got)
	}
}
