package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"shopcore/domain/dto"
	"shopcore/domain/services"
	"shopcore/pkg/utils"
)

type ReviewHandler struct {
	reviewService services.ReviewService
}

func NewReviewHandler(reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// ListByProduct รีวิวที่ approve แล้วของสินค้า
func (h *ReviewHandler) ListByProduct(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid product ID")
	}

	var query dto.PaginationQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}
	query.Normalize()

	reviews, total, err := h.reviewService.ListByProduct(c.UserContext(), productID, query.Page, query.Limit)
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.PaginatedSuccessResponse(c, dto.ReviewsToReviewResponses(reviews), total, query.Page, query.Limit)
}

// Create เขียนรีวิว หนึ่งรีวิวต่อ (product, user)
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid product ID")
	}

	var req dto.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	review, err := h.reviewService.Create(c.UserContext(), user.ID, productID, &req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.CreatedResponse(c, dto.ReviewToReviewResponse(review))
}

// Update แก้รีวิวของตัวเอง ต้องรอ approve ใหม่
func (h *ReviewHandler) Update(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	reviewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid review ID")
	}

	var req dto.UpdateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	review, err := h.reviewService.Update(c.UserContext(), user.ID, reviewID, &req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.ReviewToReviewResponse(review))
}

// Delete ลบรีวิวของตัวเอง (admin ลบของใครก็ได้)
func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	reviewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid review ID")
	}

	if err := h.reviewService.Delete(c.UserContext(), user.ID, reviewID, user.Role == "admin"); err != nil {
		return respondServiceError(c, err)
	}

	return utils.NoContentResponse(c)
}

// MarkHelpful กดว่ารีวิวนี้มีประโยชน์
func (h *ReviewHandler) MarkHelpful(c *fiber.Ctx) error {
	reviewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid review ID")
	}

	if err := h.reviewService.MarkHelpful(c.UserContext(), reviewID); err != nil {
		return respondServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.MessageResponse{Message: "Marked as helpful"})
}

// ListPending รีวิวที่รอ approve (admin)
func (h *ReviewHandler) ListPending(c *fiber.Ctx) error {
	var query dto.PaginationQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}
	query.Normalize()

	reviews, total, err := h.reviewService.ListPending(c.UserContext(), query.Page, query.Limit)
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.PaginatedSuccessResponse(c, dto.ReviewsToReviewResponses(reviews), total, query.Page, query.Limit)
}

// SetApproval อนุมัติหรือปัดตกรีวิว (admin)
func (h *ReviewHandler) SetApproval(c *fiber.Ctx) error {
	reviewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid review ID")
	}

	var req dto.SetApprovalRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := h.reviewService.SetApproval(c.UserContext(), reviewID, req.Approved); err != nil {
		return respondServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.MessageResponse{Message: "Approval updated"})
}
