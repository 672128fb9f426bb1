package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/fastfood-service/internal/api/dto"
	"github.com/spec-kit/fastfood-service/internal/auth"
	"github.com/spec-kit/fastfood-service/internal/service"
	apperrors "github.com/spec-kit/fastfood-service/pkg/util"
)

// MenuHandler exposes menu endpoints.
type MenuHandler struct {
	menu *service.MenuService
}

// NewMenuHandler constructs handler.
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menu: menuService}
}

// List handles GET /api/v1/menu.
func (h *MenuHandler) List(c *fiber.Ctx) error {
	items, err := h.menu.List(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	if len(items) == 0 {
		return c.JSON(fiber.Map{
			"status":  "successful",
			"message": "No menu items currently",
		})
	}
	return c.JSON(fiber.Map{
		"status": "successful",
		"data":   dto.NewMenuItemResponses(items),
	})
}

// Add handles POST /api/v1/menu (admin only).
func (h *MenuHandler) Add(c *fiber.Ctx) error {
	var req dto.AddMenuItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.FoodItem) == "" || req.Price == 0 {
		return apperrors.NewValidationError("some of these fields have empty/no values", nil)
	}

	admin, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized(auth.MsgBearerMalformed)
	}

	item, err := h.menu.AddItem(c.Context(), req.FoodItem, req.Price, admin.ID)
	if err != nil {
		return apperrors.MapError(err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": "Successfully Added a new food item",
		"data":    dto.NewMenuItemResponse(item),
	})
}

// Delete handles DELETE /api/v1/menu/:item_id (admin only).
func (h *MenuHandler) Delete(c *fiber.Ctx) error {
	itemID, err := strconv.ParseInt(c.Params("item_id"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("item id must be a number", nil)
	}

	if err := h.menu.DeleteItem(c.Context(), itemID); err != nil {
		return apperrors.MapError(err)
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Menu item " + strconv.FormatInt(itemID, 10) + " has been deleted.",
		"data":    true,
	})
}
