package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"shopcore/domain/dto"
	"shopcore/domain/services"
	"shopcore/pkg/utils"
)

type FavoriteHandler struct {
	favoriteService services.FavoriteService
	productService  services.ProductService
}

func NewFavoriteHandler(favoriteService services.FavoriteService, productService services.ProductService) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
		productService:  productService,
	}
}

// List สินค้าที่ user กดถูกใจไว้
func (h *FavoriteHandler) List(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	favorites, err := h.favoriteService.List(c.UserContext(), user.ID)
	if err != nil {
		return respondServiceError(c, err)
	}

	responses := make([]dto.FavoriteResponse, len(favorites))
	for i, favorite := range favorites {
		responses[i] = dto.FavoriteToFavoriteResponse(favorite, h.productService.ImageURL)
	}

	return utils.SuccessResponse(c, responses)
}

// Add กดถูกใจ idempotent กดซ้ำไม่ error
func (h *FavoriteHandler) Add(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid product ID")
	}

	favorite, err := h.favoriteService.Add(c.UserContext(), user.ID, productID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.FavoriteToFavoriteResponse(favorite, h.productService.ImageURL))
}

// Remove เลิกถูกใจ
func (h *FavoriteHandler) Remove(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid product ID")
	}

	if err := h.favoriteService.Remove(c.UserContext(), user.ID, productID); err != nil {
		return respondServiceError(c, err)
	}

	return utils.NoContentResponse(c)
}
