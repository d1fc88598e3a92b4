package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"shopcore/domain/dto"
	"shopcore/domain/models"
	"shopcore/domain/repositories"
	"shopcore/domain/services"
	"shopcore/pkg/logger"
	"shopcore/pkg/utils"
)

type ProductHandler struct {
	productService services.ProductService
}

func NewProductHandler(productService services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

func (h *ProductHandler) toResponse(product *models.Product, agg *services.ProductAggregates) *dto.ProductResponse {
	resp := dto.ProductToProductResponse(product, h.productService.ImageURL)
	if agg != nil {
		resp.ApplyAggregates(agg.MinPrice, agg.MaxPrice, agg.TotalStock, agg.InStock, agg.AverageRating, agg.ReviewsCount)
	}
	return resp
}

// List รายการสินค้าพร้อม aggregate (ราคา/สต็อก/เรตติ้ง)
func (h *ProductHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var query dto.ProductListQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}
	query.Normalize()

	active := true
	filter := repositories.ProductFilter{
		CategoryID: query.CategoryID,
		Active:     &active,
		Featured:   query.Featured,
		Search:     query.Search,
		Page:       query.Page,
		Limit:      query.Limit,
	}

	products, total, err := h.productService.List(ctx, filter)
	if err != nil {
		return respondServiceError(c, err)
	}

	aggs, err := h.productService.GetAggregatesBatch(ctx, products)
	if err != nil {
		logger.WarnContext(ctx, "Failed to compute aggregates", "error", err)
		aggs = map[uuid.UUID]*services.ProductAggregates{}
	}

	responses := make([]*dto.ProductResponse, len(products))
	for i, product := range products {
		responses[i] = h.toResponse(product, aggs[product.ID])
	}

	return utils.PaginatedSuccessResponse(c, responses, total, query.Page, query.Limit)
}

// GetBySlug หน้า detail นับ view ด้วย
func (h *ProductHandler) GetBySlug(c *fiber.Ctx) error {
	ctx := c.UserContext()

	slug := c.Params("slug")
	if slug == "" {
		return utils.BadRequestResponse(c, "Product slug is required")
	}

	product, err := h.productService.GetBySlug(ctx, slug)
	if err != nil {
		return utils.NotFoundResponse(c, "Product not found")
	}

	agg, err := h.productService.GetAggregates(ctx, product)
	if err != nil {
		logger.WarnContext(ctx, "Failed to compute aggregates", "product_id", product.ID, "error", err)
	}

	return utils.SuccessResponse(c, h.toResponse(product, agg))
}

// GetByID สำหรับหน้า admin ไม่นับ view
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid product ID")
	}

	product, err := h.productService.GetByID(ctx, id)
	if err != nil {
		return utils.NotFoundResponse(c, "Product not found")
	}

	agg, err := h.productService.GetAggregates(ctx, product)
	if err != nil {
		logger.WarnContext(ctx, "Failed to compute aggregates", "product_id", product.ID, "error", err)
	}

	return utils.SuccessResponse(c, h.toResponse(product, agg))
}

// Create สร้างสินค้าใหม่ (admin)
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	product, err := h.productService.Create(c.UserContext(), &req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.CreatedResponse(c, h.toResponse(product, nil))
}

// Update แก้สินค้า (admin)
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid product ID")
	}

	var req dto.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	product, err := h.productService.Update(c.UserContext(), id, &req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.SuccessResponse(c, h.toResponse(product, nil))
}

// Delete ลบสินค้า (admin)
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid product ID")
	}

	if err := h.productService.Delete(c.UserContext(), id); err != nil {
		return respondServiceError(c, err)
	}

	return utils.NoContentResponse(c)
}

// ========== Colors ==========

func (h *ProductHandler) AddColor(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid product ID")
	}

	var req dto.CreateColorRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	color, err := h.productService.AddColor(c.UserContext(), productID, &req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.CreatedResponse(c, dto.ColorToColorResponse(color))
}

func (h *ProductHandler) UpdateColor(c *fiber.Ctx) error {
	colorID, err := uuid.Parse(c.Params("colorId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid color ID")
	}

	var req dto.UpdateColorRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	color, err := h.productService.UpdateColor(c.UserContext(), colorID, &req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.ColorToColorResponse(color))
}

func (h *ProductHandler) DeleteColor(c *fiber.Ctx) error {
	colorID, err := uuid.Parse(c.Params("colorId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid color ID")
	}

	if err := h.productService.DeleteColor(c.UserContext(), colorID); err != nil {
		return respondServiceError(c, err)
	}

	return utils.NoContentResponse(c)
}

// ========== Sizes ==========

func (h *ProductHandler) AddSize(c *fiber.Ctx) error {
	colorID, err := uuid.Parse(c.Params("colorId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid color ID")
	}

	var req dto.CreateSizeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	size, err := h.productService.AddSize(c.UserContext(), colorID, &req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.CreatedResponse(c, dto.SizeToSizeResponse(size))
}

func (h *ProductHandler) UpdateSize(c *fiber.Ctx) error {
	sizeID, err := uuid.Parse(c.Params("sizeId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid size ID")
	}

	var req dto.UpdateSizeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	size, err := h.productService.UpdateSize(c.UserContext(), sizeID, &req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.SizeToSizeResponse(size))
}

func (h *ProductHandler) DeleteSize(c *fiber.Ctx) error {
	sizeID, err := uuid.Parse(c.Params("sizeId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid size ID")
	}

	if err := h.productService.DeleteSize(c.UserContext(), sizeID); err != nil {
		return respondServiceError(c, err)
	}

	return utils.NoContentResponse(c)
}

// ========== Images ==========

// UploadImage รับไฟล์ multipart field "image"
func (h *ProductHandler) UploadImage(c *fiber.Ctx) error {
	ctx := c.UserContext()

	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid product ID")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return utils.BadRequestResponse(c, "Image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.ErrorContext(ctx, "Failed to open uploaded file", "error", err)
		return utils.BadRequestResponse(c, "Could not read uploaded file")
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	image, err := h.productService.UploadImage(ctx, productID, fileHeader.Filename, contentType, file, fileHeader.Size)
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.CreatedResponse(c, dto.ImageResponse{
		ID:        image.ID,
		URL:       h.productService.ImageURL(image),
		AltText:   image.AltText,
		IsPrimary: image.IsPrimary,
		SortOrder: image.SortOrder,
	})
}

func (h *ProductHandler) DeleteImage(c *fiber.Ctx) error {
	imageID, err := uuid.Parse(c.Params("imageId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid image ID")
	}

	if err := h.productService.DeleteImage(c.UserContext(), imageID); err != nil {
		return respondServiceError(c, err)
	}

	return utils.NoContentResponse(c)
}
