package dto

import (
	"time"

	"github.com/spec-kit/fastfood-service/internal/domain"
)

// AddMenuItemRequest payload for creating menu items.
type AddMenuItemRequest struct {
	FoodItem string `json:"food_item"`
	Price    int    `json:"price"`
}

// MenuItemResponse is the wire shape of a menu item.
type MenuItemResponse struct {
	ID        int64  `json:"item_id"`
	Name      string `json:"item_name"`
	Price     int    `json:"price"`
	Status    string `json:"item_status"`
	CreatedAt string `json:"created_at"`
}

// NewMenuItemResponse maps the domain model to the wire shape.
func NewMenuItemResponse(item *domain.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		Price:     item.Price,
		Status:    string(item.Status),
		CreatedAt: item.CreatedAt.Format(time.RFC3339),
	}
}

// NewMenuItemResponses maps a slice of items.
func NewMenuItemResponses(items []domain.MenuItem) []MenuItemResponse {
	out := make([]MenuItemResponse, 0, len(items))
	for i := range items {
		out = append(out, NewMenuItemResponse(&items[i]))
	}
	return out
}
