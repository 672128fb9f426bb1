package domain

import "time"

// OrderStatus enumerates the order lifecycle.
type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusCompleted  OrderStatus = "completed"
)

// Valid reports whether the status is one of the known values.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusNew, OrderStatusProcessing, OrderStatusCancelled, OrderStatusCompleted:
		return true
	}
	return false
}

// Order is a placed order for a single menu item.
type Order struct {
	ID           int64
	UserID       int64
	ItemID       int64
	ItemName     string
	SpecialNotes string
	Status       OrderStatus
	OrderedAt    time.Time
	UpdatedAt    time.Time
}
