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

// OrdersHandler exposes order endpoints.
type OrdersHandler struct {
	orders *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orderService *service.OrderService) *OrdersHandler {
	return &OrdersHandler{orders: orderService}
}

// Place handles POST /api/v1/orders.
func (h *OrdersHandler) Place(c *fiber.Ctx) error {
	var req dto.PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.OrderItem) == "" {
		return apperrors.NewValidationError("some of these fields have empty/no values", nil)
	}

	user, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized(auth.MsgBearerMalformed)
	}

	order, err := h.orders.Place(c.Context(), user.ID, req.OrderItem, req.SpecialNotes)
	if err != nil {
		return apperrors.MapError(err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": "Successfully posted an order",
		"data":    dto.NewOrderResponse(order),
	})
}

// ListAll handles GET /api/v1/orders (admin only).
func (h *OrdersHandler) ListAll(c *fiber.Ctx) error {
	orders, err := h.orders.ListAll(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	if len(orders) == 0 {
		return c.JSON(fiber.Map{
			"status":  "successful",
			"message": "No order items currently",
		})
	}
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   dto.NewOrderResponses(orders),
	})
}

// Get handles GET /api/v1/orders/:order_id (admin only).
func (h *OrdersHandler) Get(c *fiber.Ctx) error {
	orderID, err := strconv.ParseInt(c.Params("order_id"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("order id must be a number", nil)
	}

	order, err := h.orders.Get(c.Context(), orderID)
	if err != nil {
		return apperrors.MapError(err)
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   dto.NewOrderResponse(order),
	})
}

// UpdateStatus handles PUT /api/v1/orders/:order_id (admin only).
func (h *OrdersHandler) UpdateStatus(c *fiber.Ctx) error {
	orderID, err := strconv.ParseInt(c.Params("order_id"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("order id must be a number", nil)
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.OrderStatus) == "" {
		return apperrors.NewValidationError("These fields are missing", map[string]any{"fields": []string{"order_status"}})
	}

	order, err := h.orders.UpdateStatus(c.Context(), orderID, req.OrderStatus)
	if err != nil {
		return apperrors.MapError(err)
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Order status updated",
		"data":    dto.NewOrderResponse(order),
	})
}

// History handles GET /api/v1/users/orders.
func (h *OrdersHandler) History(c *fiber.Ctx) error {
	user, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized(auth.MsgBearerMalformed)
	}

	orders, err := h.orders.History(c.Context(), user.ID)
	if err != nil {
		return apperrors.MapError(err)
	}
	if len(orders) == 0 {
		return c.JSON(fiber.Map{
			"status":  "successful",
			"message": "No order items currently",
		})
	}
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   dto.NewOrderResponses(orders),
	})
}
