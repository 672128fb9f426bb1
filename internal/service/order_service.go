package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/fastfood-service/internal/domain"
	"github.com/spec-kit/fastfood-service/internal/repository"
	apperrors "github.com/spec-kit/fastfood-service/pkg/util"
)

const defaultSpecialNotes = "No special notes attached"

// OrderService handles order placement and tracking.
type OrderService struct {
	orders repository.OrderRepository
	menu   repository.MenuRepository
}

// NewOrderService builds the service.
func NewOrderService(orders repository.OrderRepository, menu repository.MenuRepository) *OrderService {
	return &OrderService{orders: orders, menu: menu}
}

// Place creates a new order for a menu item referenced by name.
func (s *OrderService) Place(ctx context.Context, userID int64, itemName, specialNotes string) (*domain.Order, error) {
	itemName = strings.ToLower(strings.TrimSpace(itemName))
	if itemName == "" {
		return nil, apperrors.NewValidationError("some of these fields have empty/no values", nil)
	}

	specialNotes = strings.TrimSpace(specialNotes)
	if specialNotes == "" {
		specialNotes = defaultSpecialNotes
	}

	item, err := s.menu.GetByName(ctx, itemName)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound(fmt.Sprintf("Sorry, Order item %s not on the menu", itemName), nil)
		}
		return nil, err
	}

	order := &domain.Order{
		UserID:       userID,
		ItemID:       item.ID,
		ItemName:     item.Name,
		SpecialNotes: specialNotes,
		Status:       domain.OrderStatusNew,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// ListAll returns every order, newest first.
func (s *OrderService) ListAll(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

// Get returns a single order by ID.
func (s *OrderService) Get(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("Order not found", nil)
		}
		return nil, err
	}
	return order, nil
}

// History returns the calling user's own orders.
func (s *OrderService) History(ctx context.Context, userID int64) ([]domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

// UpdateStatus moves an order to a new lifecycle status.
func (s *OrderService) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Order, error) {
	next := domain.OrderStatus(strings.ToLower(strings.TrimSpace(status)))
	if !next.Valid() {
		return nil, apperrors.NewNotFound(fmt.Sprintf("Order status %s not found", status), nil)
	}

	if _, err := s.orders.GetByID(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("Order not found", nil)
		}
		return nil, err
	}

	if err := s.orders.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	return s.orders.GetByID(ctx, id)
}
