package dto

import (
	"time"

	"github.com/spec-kit/fastfood-service/internal/domain"
)

// PlaceOrderRequest payload for placing an order.
type PlaceOrderRequest struct {
	OrderItem    string `json:"order_item"`
	SpecialNotes string `json:"special_notes"`
}

// UpdateOrderStatusRequest payload for status updates.
type UpdateOrderStatusRequest struct {
	OrderStatus string `json:"order_status"`
}

// OrderResponse is the wire shape of an order.
type OrderResponse struct {
	ID           int64  `json:"order_id"`
	UserID       int64  `json:"user_id"`
	ItemID       int64  `json:"item_id"`
	OrderItem    string `json:"order_item"`
	SpecialNotes string `json:"special_notes"`
	Status       string `json:"order_status"`
	OrderedAt    string `json:"order_date"`
}

// NewOrderResponse maps the domain model to the wire shape.
func NewOrderResponse(order *domain.Order) OrderResponse {
	return OrderResponse{
		ID:           order.ID,
		UserID:       order.UserID,
		ItemID:       order.ItemID,
		OrderItem:    order.ItemName,
		SpecialNotes: order.SpecialNotes,
		Status:       string(order.Status),
		OrderedAt:    order.OrderedAt.Format(time.RFC3339),
	}
}

// NewOrderResponses maps a slice of orders.
func NewOrderResponses(orders []domain.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, NewOrderResponse(&orders[i]))
	}
	return out
}
