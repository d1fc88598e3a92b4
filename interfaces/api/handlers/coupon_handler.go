package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"shopcore/domain/dto"
	"shopcore/domain/services"
	"shopcore/pkg/utils"
)

type CouponHandler struct {
	couponService services.CouponService
}

func NewCouponHandler(couponService services.CouponService) *CouponHandler {
	return &CouponHandler{couponService: couponService}
}

// Validate ตรวจคูปองกับยอดตะกร้า ไม่กิน quota
func (h *CouponHandler) Validate(c *fiber.Ctx) error {
	var req dto.ValidateCouponRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	total, err := decimal.NewFromString(req.Total)
	if err != nil || total.IsNegative() {
		return utils.BadRequestResponse(c, "Invalid total amount")
	}

	coupon, discount, err := h.couponService.Validate(c.UserContext(), req.Code, total)
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.CouponValidationResponse{
		Valid:    true,
		Code:     coupon.Code,
		Discount: discount.StringFixed(2),
		Total:    total.StringFixed(2),
		Payable:  total.Sub(discount).StringFixed(2),
	})
}

// Redeem กิน quota หนึ่งสิทธิ์
func (h *CouponHandler) Redeem(c *fiber.Ctx) error {
	var req dto.ValidateCouponRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	total, err := decimal.NewFromString(req.Total)
	if err != nil || total.IsNegative() {
		return utils.BadRequestResponse(c, "Invalid total amount")
	}

	coupon, err := h.couponService.Redeem(c.UserContext(), req.Code)
	if err != nil {
		return respondServiceError(c, err)
	}

	discount := coupon.Discount(total)
	return utils.SuccessResponse(c, dto.CouponValidationResponse{
		Valid:    true,
		Code:     coupon.Code,
		Discount: discount.StringFixed(2),
		Total:    total.StringFixed(2),
		Payable:  total.Sub(discount).StringFixed(2),
	})
}

// ========== Admin CRUD ==========

func (h *CouponHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCouponRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	coupon, err := h.couponService.Create(c.UserContext(), &req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.CreatedResponse(c, dto.CouponToCouponResponse(coupon))
}

func (h *CouponHandler) List(c *fiber.Ctx) error {
	var query dto.PaginationQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}
	query.Normalize()

	coupons, total, err := h.couponService.List(c.UserContext(), query.Page, query.Limit)
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.PaginatedSuccessResponse(c, dto.CouponsToCouponResponses(coupons), total, query.Page, query.Limit)
}

func (h *CouponHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid coupon ID")
	}

	var req dto.UpdateCouponRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	coupon, err := h.couponService.Update(c.UserContext(), id, &req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.CouponToCouponResponse(coupon))
}

func (h *CouponHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid coupon ID")
	}

	if err := h.couponService.Delete(c.UserContext(), id); err != nil {
		return respondServiceError(c, err)
	}

	return utils.NoContentResponse(c)
}
