package domain

import "time"

// MenuItemStatus tracks availability of a menu item.
type MenuItemStatus string

const (
	MenuItemAvailable   MenuItemStatus = "available"
	MenuItemUnavailable MenuItemStatus = "unavailable"
)

// MenuItem is a food item offered on the menu.
type MenuItem struct {
	ID        int64
	Name      string
	Price     int
	Status    MenuItemStatus
	CreatedBy int64
	CreatedAt time.Time
}
