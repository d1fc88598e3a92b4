package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Log      LogConfig
	Mail     MailConfig
	Storage  StorageConfig
	Cart     CartConfig
	Cache    CacheConfig
}

type AppConfig struct {
	Name string
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig สำหรับ cache ค่า aggregate ของสินค้า (optional)
type RedisConfig struct {
	URL      string // redis://localhost:6379
	Password string
	DB       int
}

// NATSConfig ใช้ตอน MAIL_TRANSPORT=nats
type NATSConfig struct {
	URL string // nats://localhost:4222
}

type JWTConfig struct {
	Secret string
}

type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, file, both
	FilePath   string // logs/app.log
	MaxSize    int    // MB
	MaxBackups int    // จำนวน backup files
	MaxAge     int    // วัน
	Compress   bool   // บีบอัด backup
}

// MailConfig ช่องทางส่งอีเมล verification code
type MailConfig struct {
	Transport string // smtp, nats, noop
	From      string
	SMTPHost  string
	SMTPPort  string
	SMTPUser  string
	SMTPPass  string
	// NATS subject สำหรับ queue mailer (worker ส่งจริงอยู่นอก process)
	Subject string
}

type StorageConfig struct {
	Type     string // local, s3
	BasePath string // สำหรับ local: ./uploads
	BaseURL  string // URL สำหรับเข้าถึงไฟล์ local

	// S3-Compatible Storage (MinIO / R2)
	S3 S3Config
}

type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	Region    string
	PublicURL string
}

// CartConfig พฤติกรรมตะกร้า
type CartConfig struct {
	// StockPolicy: clamp (default, ลด quantity ลงเงียบ ๆ) หรือ reject
	StockPolicy string
}

// CacheConfig สำหรับ product aggregate cache
type CacheConfig struct {
	AggregatesEnabled bool
	AggregatesTTL     int // วินาที
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		// ไม่ error ถ้าไม่มี .env file (ใช้ environment variables แทน)
	}

	logMaxSize, _ := strconv.Atoi(getEnv("LOG_MAX_SIZE", "100"))
	logMaxBackups, _ := strconv.Atoi(getEnv("LOG_MAX_BACKUPS", "5"))
	logMaxAge, _ := strconv.Atoi(getEnv("LOG_MAX_AGE", "30"))
	logCompress := getEnv("LOG_COMPRESS", "true") == "true"

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	s3UseSSL := getEnv("S3_USE_SSL", "false") == "true"

	cacheEnabled := getEnv("CACHE_AGGREGATES", "false") == "true"
	cacheTTL, _ := strconv.Atoi(getEnv("CACHE_AGGREGATES_TTL", "300"))

	config := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "Shopcore API"),
			Port: getEnv("APP_PORT", "8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "shopcore"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		NATS: NATSConfig{
			URL: getEnv("NATS_URL", "nats://localhost:4222"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-secret-key"),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "both"),
			FilePath:   getEnv("LOG_FILE", "logs/app.log"),
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAge,
			Compress:   logCompress,
		},
		Mail: MailConfig{
			Transport: getEnv("MAIL_TRANSPORT", "noop"),
			From:      getEnv("MAIL_FROM", "no-reply@shopcore.local"),
			SMTPHost:  getEnv("SMTP_HOST", "localhost"),
			SMTPPort:  getEnv("SMTP_PORT", "1025"),
			SMTPUser:  getEnv("SMTP_USER", ""),
			SMTPPass:  getEnv("SMTP_PASS", ""),
			Subject:   getEnv("MAIL_NATS_SUBJECT", "mail.send"),
		},
		Storage: StorageConfig{
			Type:     getEnv("STORAGE_TYPE", "local"),
			BasePath: getEnv("STORAGE_BASE_PATH", "./uploads"),
			BaseURL:  getEnv("STORAGE_BASE_URL", "http://localhost:8080/files"),
			S3: S3Config{
				Endpoint:  getEnv("S3_ENDPOINT", "localhost:9000"),
				AccessKey: getEnv("S3_ACCESS_KEY", "minioadmin"),
				SecretKey: getEnv("S3_SECRET_KEY", "minioadmin"),
				Bucket:    getEnv("S3_BUCKET", "product-images"),
				UseSSL:    s3UseSSL,
				Region:    getEnv("S3_REGION", "auto"),
				PublicURL: getEnv("S3_PUBLIC_URL", ""),
			},
		},
		Cart: CartConfig{
			StockPolicy: getEnv("CART_STOCK_POLICY", "clamp"),
		},
		Cache: CacheConfig{
			AggregatesEnabled: cacheEnabled,
			AggregatesTTL:     cacheTTL,
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// IsDevelopment ตรวจสอบว่าเป็น development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction ตรวจสอบว่าเป็น production mode
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
