package main

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"shopcore/domain/models"
	"shopcore/infrastructure/postgres"
	"shopcore/pkg/config"
)

// seed ข้อมูลเริ่มต้นสำหรับ development: admin user + catalog ตัวอย่าง
// รันซ้ำได้ ข้ามของที่มีอยู่แล้ว
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := postgres.NewDatabase(postgres.DatabaseConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := postgres.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	seedAdmin(db)
	seedCatalog(db)

	fmt.Println("Seed complete")
}

func seedAdmin(db *gorm.DB) {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@shopcore.local"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin1234"
	}

	var count int64
	db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		fmt.Printf("Admin %s already exists, skipping\n", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := &models.User{
		ID:       uuid.New(),
		Email:    email,
		Username: "admin",
		Password: string(hash),
		Role:     "admin",
		IsActive: true,
	}
	if err := db.Create(admin).Error; err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}
	fmt.Printf("Admin created: %s\n", email)
}

func seedCatalog(db *gorm.DB) {
	var count int64
	db.Model(&models.Category{}).Count(&count)
	if count > 0 {
		fmt.Println("Catalog already seeded, skipping")
		return
	}

	category := &models.Category{
		ID:          uuid.New(),
		Name:        "Shirts",
		Slug:        slug.Make("Shirts"),
		Description: "เสื้อเชิ้ตและเสื้อยืด",
	}
	if err := db.Create(category).Error; err != nil {
		log.Fatalf("Failed to create category: %v", err)
	}

	product := &models.Product{
		ID:         uuid.New(),
		CategoryID: category.ID,
		Name:       "Classic Shirt",
		Slug:       slug.Make("Classic Shirt"),
		BasePrice:  decimal.RequireFromString("90.00"),
		IsActive:   true,
		IsFeatured: true,
	}
	if err := db.Create(product).Error; err != nil {
		log.Fatalf("Failed to create product: %v", err)
	}

	colors := []struct {
		name  string
		hex   string
		sizes []struct {
			label string
			price string
			stock int
		}
	}{
		{
			name: "Red", hex: "#d4263a",
			sizes: []struct {
				label string
				price string
				stock int
			}{
				{"S", "100.00", 2},
				{"M", "120.00", 0},
			},
		},
		{
			name: "Blue", hex: "#2641d4",
			sizes: []struct {
				label string
				price string
				stock int
			}{
				{"S", "110.00", 5},
			},
		},
	}

	for i, c := range colors {
		color := &models.ProductColor{
			ID:        uuid.New(),
			ProductID: product.ID,
			Name:      c.name,
			HexCode:   c.hex,
			SortOrder: i,
		}
		if err := db.Create(color).Error; err != nil {
			log.Fatalf("Failed to create color %s: %v", c.name, err)
		}
		for _, s := range c.sizes {
			size := &models.ProductSize{
				ID:      uuid.New(),
				ColorID: color.ID,
				Size:    s.label,
				Price:   decimal.RequireFromString(s.price),
				Stock:   s.stock,
			}
			if err := db.Create(size).Error; err != nil {
				log.Fatalf("Failed to create size %s/%s: %v", c.name, s.label, err)
			}
		}
	}

	fmt.Printf("Catalog seeded: category %s, product %s\n", category.Slug, product.Slug)
}
