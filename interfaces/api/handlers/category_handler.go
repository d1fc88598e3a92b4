package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"shopcore/domain/dto"
	"shopcore/domain/services"
	"shopcore/pkg/logger"
	"shopcore/pkg/utils"
)

type CategoryHandler struct {
	categoryService services.CategoryService
}

func NewCategoryHandler(categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// Create สร้าง category ใหม่ (admin)
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	category, err := h.categoryService.Create(ctx, &req)
	if err != nil {
		logger.WarnContext(ctx, "Category creation failed", "error", err)
		return respondServiceError(c, err)
	}

	return utils.CreatedResponse(c, dto.CategoryToCategoryResponse(category))
}

// List ดึง category ทั้งหมดพร้อมจำนวนสินค้า
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	categories, err := h.categoryService.List(ctx)
	if err != nil {
		return respondServiceError(c, err)
	}

	counts, err := h.categoryService.GetProductCounts(ctx)
	if err != nil {
		logger.WarnContext(ctx, "Failed to load product counts", "error", err)
		counts = map[uuid.UUID]int64{}
	}

	responses := dto.CategoriesToCategoryResponses(categories)
	for i := range responses {
		responses[i].ProductCount = counts[responses[i].ID]
	}

	return utils.SuccessResponse(c, dto.CategoryListResponse{Categories: responses})
}

// GetBySlug ดึง category ตาม slug
func (h *CategoryHandler) GetBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return utils.BadRequestResponse(c, "Category slug is required")
	}

	category, err := h.categoryService.GetBySlug(c.UserContext(), slug)
	if err != nil {
		return utils.NotFoundResponse(c, "Category not found")
	}

	return utils.SuccessResponse(c, dto.CategoryToCategoryResponse(category))
}

// Update แก้ category (admin)
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid category ID")
	}

	var req dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	category, err := h.categoryService.Update(c.UserContext(), id, &req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.CategoryToCategoryResponse(category))
}

// Delete ลบ category (admin) สินค้าใต้ category หายไปด้วย
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid category ID")
	}

	if err := h.categoryService.Delete(c.UserContext(), id); err != nil {
		return respondServiceError(c, err)
	}

	return utils.NoContentResponse(c)
}
