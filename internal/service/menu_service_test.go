package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/fastfood-service/internal/domain"
	apperrors "github.com/spec-kit/fastfood-service/pkg/util"
)

func newTestMenuService(menu *mockMenuRepo) *MenuService {
	// nil cache client disables the cache path
	return NewMenuService(menu, nil, time.Minute, zap.NewNop())
}

func TestMenuService_AddItemNormalizesName(t *testing.T) {
	menu := new(mockMenuRepo)
	svc := newTestMenuService(menu)

	menu.On("GetByName", mock.Anything, "chicken wings").Return(nil, pgx.ErrNoRows)
	menu.On("Create", mock.Anything, mock.MatchedBy(func(item *domain.MenuItem) bool {
		return item.Name == "chicken wings" &&
			item.Price == 15000 &&
			item.Status == domain.MenuItemAvailable &&
			item.CreatedBy == 2
	})).Return(nil)

	item, err := svc.AddItem(context.Background(), "  Chicken Wings ", 15000, 2)
	require.NoError(t, err)
	assert.Equal(t, "chicken wings", item.Name)
	menu.AssertExpectations(t)
}

func TestMenuService_AddItemDuplicate(t *testing.T) {
	menu := new(mockMenuRepo)
	svc := newTestMenuService(menu)

	menu.On("GetByName", mock.Anything, "chips").Return(&domain.MenuItem{ID: 1, Name: "chips"}, nil)

	_, err := svc.AddItem(context.Background(), "chips", 5000, 2)
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, 409, domainErr.HTTPStatus)
	assert.Equal(t, "Item already exists", domainErr.Message)
	menu.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMenuService_AddItemRejectsBadNameAndPrice(t *testing.T) {
	menu := new(mockMenuRepo)
	svc := newTestMenuService(menu)

	_, err := svc.AddItem(context.Background(), "ch1ps!", 5000, 2)
	assert.Error(t, err)

	_, err = svc.AddItem(context.Background(), "chips", 0, 2)
	assert.Error(t, err)

	menu.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
}

func TestMenuService_DeleteMissingItem(t *testing.T) {
	menu := new(mockMenuRepo)
	svc := newTestMenuService(menu)

	menu.On("GetByID", mock.Anything, int64(44)).Return(nil, pgx.ErrNoRows)

	err := svc.DeleteItem(context.Background(), 44)
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, 404, domainErr.HTTPStatus)
	assert.Equal(t, "menu item 44 not found", domainErr.Message)
}

func TestMenuService_ListWithoutCache(t *testing.T) {
	menu := new(mockMenuRepo)
	svc := newTestMenuService(menu)

	items := []domain.MenuItem{{ID: 1, Name: "chips"}, {ID: 2, Name: "burger"}}
	menu.On("List", mock.Anything).Return(items, nil)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, items, got)
}
