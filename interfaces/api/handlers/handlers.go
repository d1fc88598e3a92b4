package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"shopcore/domain/services"
	"shopcore/pkg/utils"
)

// Services contains all the services needed for handlers
type Services struct {
	UserService         services.UserService
	VerificationService services.VerificationService
	CategoryService     services.CategoryService
	ProductService      services.ProductService
	CartService         services.CartService
	ReviewService       services.ReviewService
	FavoriteService     services.FavoriteService
	CouponService       services.CouponService
	JWTSecret           string
}

// Handlers contains all HTTP handlers
type Handlers struct {
	AuthHandler     *AuthHandler
	UserHandler     *UserHandler
	CategoryHandler *CategoryHandler
	ProductHandler  *ProductHandler
	CartHandler     *CartHandler
	ReviewHandler   *ReviewHandler
	FavoriteHandler *FavoriteHandler
	CouponHandler   *CouponHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		AuthHandler:     NewAuthHandler(services.UserService, services.VerificationService),
		UserHandler:     NewUserHandler(services.UserService),
		CategoryHandler: NewCategoryHandler(services.CategoryService),
		ProductHandler:  NewProductHandler(services.ProductService),
		CartHandler:     NewCartHandler(services.CartService),
		ReviewHandler:   NewReviewHandler(services.ReviewService),
		FavoriteHandler: NewFavoriteHandler(services.FavoriteService, services.ProductService),
		CouponHandler:   NewCouponHandler(services.CouponService),
	}
}

// respondServiceError map sentinel error จาก service layer เป็น HTTP response
func respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, services.ErrAlreadyExists):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, services.ErrInvalidInput):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, services.ErrCodeExpired):
		return utils.ExpiredResponse(c, "Verification code has expired")
	case errors.Is(err, services.ErrCodeMismatch):
		return utils.BadRequestResponse(c, "Verification code does not match")
	case errors.Is(err, services.ErrCodeNotVerified):
		return utils.ForbiddenResponse(c, "Email has not been verified")
	case errors.Is(err, services.ErrStockExceeded):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, services.ErrCouponInvalid):
		return utils.BadRequestResponse(c, "Coupon is not valid")
	case errors.Is(err, services.ErrCouponExhausted):
		return utils.ConflictResponse(c, "Coupon usage limit reached")
	case errors.Is(err, services.ErrInvalidCredentials):
		return utils.UnauthorizedResponse(c, "Invalid email or password")
	case errors.Is(err, services.ErrAccountDisabled):
		return utils.ForbiddenResponse(c, "Account is disabled")
	default:
		return utils.InternalServerErrorResponse(c)
	}
}
