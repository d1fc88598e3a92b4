package di

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"shopcore/application/serviceimpl"
	"shopcore/domain/ports"
	"shopcore/domain/repositories"
	"shopcore/domain/services"
	"shopcore/infrastructure/mail"
	natspkg "shopcore/infrastructure/nats"
	"shopcore/infrastructure/postgres"
	redispkg "shopcore/infrastructure/redis"
	"shopcore/infrastructure/storage"
	"shopcore/interfaces/api/handlers"
	"shopcore/pkg/config"
	"shopcore/pkg/logger"
	"shopcore/pkg/scheduler"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB             *gorm.DB
	RedisClient    *redispkg.Client  // Redis client สำหรับ aggregate cache (optional)
	NATSClient     *natspkg.Client   // NATS connection + JetStream (optional)
	Mailer         ports.MailerPort  // ช่องทางส่ง verification code
	Storage        ports.StoragePort // Port/Adapter pattern
	EventScheduler scheduler.EventScheduler

	// Repositories
	UserRepository         repositories.UserRepository
	VerificationRepository repositories.VerificationRepository
	CategoryRepository     repositories.CategoryRepository
	ProductRepository      repositories.ProductRepository
	CartRepository         repositories.CartRepository
	ReviewRepository       repositories.ReviewRepository
	FavoriteRepository     repositories.FavoriteRepository
	CouponRepository       repositories.CouponRepository

	// Services
	UserService         services.UserService
	VerificationService services.VerificationService
	CategoryService     services.CategoryService
	ProductService      services.ProductService
	CartService         services.CartService
	ReviewService       services.ReviewService
	FavoriteService     services.FavoriteService
	CouponService       services.CouponService

	// Maintenance jobs (purge verification codes, expire coupons)
	MaintenanceService *serviceimpl.MaintenanceService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	if err := c.initRepositories(); err != nil {
		return err
	}

	if err := c.initServices(); err != nil {
		return err
	}

	if err := c.initScheduler(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Info("Configuration loaded")
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	// Initialize Database
	dbConfig := postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	}

	db, err := postgres.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	// Run migrations
	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	// Initialize Redis Client (optional - graceful degradation)
	if c.Config.Cache.AggregatesEnabled && c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis client initialization failed (aggregate cache disabled)", "error", err)
		} else {
			c.RedisClient = redisClient
			logger.Info("Redis client initialized", "url", c.Config.Redis.URL)
		}
	}

	// Initialize Mailer ตาม MAIL_TRANSPORT
	if err := c.initMailer(); err != nil {
		return err
	}

	// Initialize Storage (Port/Adapter pattern)
	if err := c.initStorage(); err != nil {
		return err
	}

	return nil
}

// initMailer เลือก mail adapter ตาม config
func (c *Container) initMailer() error {
	switch c.Config.Mail.Transport {
	case "smtp":
		c.Mailer = mail.NewSMTPMailer(&c.Config.Mail)
		logger.Info("SMTP mailer initialized", "host", c.Config.Mail.SMTPHost, "port", c.Config.Mail.SMTPPort)

	case "nats":
		natsConfig := natspkg.ClientConfig{
			URL: c.Config.NATS.URL,
		}
		natsClient, err := natspkg.NewClient(natsConfig)
		if err != nil {
			// mailer จำเป็นต่อ registration flow จึงถือเป็น fatal
			return fmt.Errorf("failed to initialize NATS client for mail transport: %w", err)
		}
		c.NATSClient = natsClient
		c.Mailer = mail.NewNATSMailer(natsClient)
		logger.Info("NATS mailer initialized", "url", c.Config.NATS.URL)

	default:
		c.Mailer = mail.NewNoopMailer()
		logger.Warn("Noop mailer in use (verification codes are only logged)")
	}

	return nil
}

// initStorage สร้าง storage adapter ตาม config
func (c *Container) initStorage() error {
	switch c.Config.Storage.Type {
	case "s3":
		// S3-Compatible Storage (MinIO / Cloudflare R2)
		s3Config := storage.S3StorageConfig{
			Endpoint:  c.Config.Storage.S3.Endpoint,
			AccessKey: c.Config.Storage.S3.AccessKey,
			SecretKey: c.Config.Storage.S3.SecretKey,
			Bucket:    c.Config.Storage.S3.Bucket,
			UseSSL:    c.Config.Storage.S3.UseSSL,
			Region:    c.Config.Storage.S3.Region,
			PublicURL: c.Config.Storage.S3.PublicURL,
		}
		s3Storage, err := storage.NewS3Storage(s3Config)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 storage: %w", err)
		}
		c.Storage = s3Storage
		logger.Info("S3 Storage initialized",
			"endpoint", c.Config.Storage.S3.Endpoint,
			"bucket", c.Config.Storage.S3.Bucket,
		)

	default:
		localConfig := storage.LocalStorageConfig{
			BasePath: c.Config.Storage.BasePath,
			BaseURL:  c.Config.Storage.BaseURL,
		}
		localStorage, err := storage.NewLocalStorage(localConfig)
		if err != nil {
			return fmt.Errorf("failed to initialize local storage: %w", err)
		}
		c.Storage = localStorage
		logger.Info("Local Storage initialized", "path", c.Config.Storage.BasePath)
	}

	return nil
}

func (c *Container) initRepositories() error {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.VerificationRepository = postgres.NewVerificationRepository(c.DB)
	c.CategoryRepository = postgres.NewCategoryRepository(c.DB)
	c.ProductRepository = postgres.NewProductRepository(c.DB)
	c.CartRepository = postgres.NewCartRepository(c.DB)
	c.ReviewRepository = postgres.NewReviewRepository(c.DB)
	c.FavoriteRepository = postgres.NewFavoriteRepository(c.DB)
	c.CouponRepository = postgres.NewCouponRepository(c.DB)
	logger.Info("Repositories initialized")
	return nil
}

func (c *Container) initServices() error {
	c.UserService = serviceimpl.NewUserService(
		c.UserRepository,
		c.VerificationRepository,
		c.Config.JWT.Secret,
	)
	c.VerificationService = serviceimpl.NewVerificationService(c.VerificationRepository, c.Mailer)
	c.CategoryService = serviceimpl.NewCategoryService(c.CategoryRepository)

	// Product Service (with optional Redis aggregate cache)
	// ports.CachePort ต้องเป็น nil จริง ๆ ตอน cache ปิด ไม่ใช่ typed-nil จาก *redispkg.Client
	var cache ports.CachePort
	if c.RedisClient != nil {
		cache = c.RedisClient
	}
	cacheTTL := time.Duration(c.Config.Cache.AggregatesTTL) * time.Second

	c.ProductService = serviceimpl.NewProductService(
		c.ProductRepository,
		c.CategoryRepository,
		c.Storage,
		cache,
		cacheTTL,
	)
	if cache != nil {
		logger.Info("Product service initialized with Redis aggregate cache", "ttl", cacheTTL)
	} else {
		logger.Info("Product service initialized without cache")
	}

	c.CartService = serviceimpl.NewCartService(
		c.CartRepository,
		c.ProductRepository,
		services.StockPolicy(c.Config.Cart.StockPolicy),
	)
	c.ReviewService = serviceimpl.NewReviewService(c.ReviewRepository, c.ProductRepository, cache)
	c.FavoriteService = serviceimpl.NewFavoriteService(c.FavoriteRepository, c.ProductRepository)
	c.CouponService = serviceimpl.NewCouponService(c.CouponRepository)

	c.MaintenanceService = serviceimpl.NewMaintenanceService(c.VerificationRepository, c.CouponRepository)

	logger.Info("Services initialized")
	return nil
}

func (c *Container) initScheduler() error {
	c.EventScheduler = scheduler.NewEventScheduler()
	c.EventScheduler.Start()
	logger.Info("Event scheduler started")

	ctx := context.Background()

	// ลบ verification code ที่หมดอายุทุก 10 นาที
	err := c.EventScheduler.AddJob("purge-expired-codes", "*/10 * * * *", func() {
		c.MaintenanceService.PurgeExpiredCodes(ctx)
	})
	if err != nil {
		logger.Warn("Failed to schedule verification code purge job", "error", err)
	}

	// ปิด coupon ที่พ้นช่วงใช้งานทุกต้นชั่วโมง
	err = c.EventScheduler.AddJob("deactivate-expired-coupons", "0 * * * *", func() {
		c.MaintenanceService.DeactivateExpiredCoupons(ctx)
	})
	if err != nil {
		logger.Warn("Failed to schedule coupon deactivation job", "error", err)
	}

	logger.Info("Maintenance jobs registered")
	return nil
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	// Stop scheduler
	if c.EventScheduler != nil {
		if c.EventScheduler.IsRunning() {
			c.EventScheduler.Stop()
			logger.Info("Event scheduler stopped")
		}
	}

	// Close NATS connection
	if c.NATSClient != nil {
		c.NATSClient.Close()
		logger.Info("NATS connection closed")
	}

	// Close Redis connection
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", "error", err)
		} else {
			logger.Info("Redis connection closed")
		}
	}

	// Close database connection
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Warn("Failed to close database connection", "error", err)
			} else {
				logger.Info("Database connection closed")
			}
		}
	}

	logger.Info("Cleanup completed")
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService:         c.UserService,
		VerificationService: c.VerificationService,
		CategoryService:     c.CategoryService,
		ProductService:      c.ProductService,
		CartService:         c.CartService,
		ReviewService:       c.ReviewService,
		FavoriteService:     c.FavoriteService,
		CouponService:       c.CouponService,
		JWTSecret:           c.Config.JWT.Secret,
	}
}
