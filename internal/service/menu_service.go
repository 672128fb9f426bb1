package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/fastfood-service/internal/domain"
	"github.com/spec-kit/fastfood-service/internal/repository"
	apperrors "github.com/spec-kit/fastfood-service/pkg/util"
)

const menuCacheKey = "menu:items"

// MenuService manages the menu with a Redis read-through cache on the
// listing path. Cache failures degrade to the database, never to an
// error; the database stays the source of truth.
type MenuService struct {
	menu     repository.MenuRepository
	cache    *redis.Client
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewMenuService builds the service. A nil cache client disables caching.
func NewMenuService(menu repository.MenuRepository, cache *redis.Client, cacheTTL time.Duration, logger *zap.Logger) *MenuService {
	return &MenuService{menu: menu, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// List returns all menu items, served from cache when possible.
func (s *MenuService) List(ctx context.Context) ([]domain.MenuItem, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, menuCacheKey).Bytes()
		if err == nil {
			var items []domain.MenuItem
			if err := json.Unmarshal(cached, &items); err == nil {
				return items, nil
			}
			// stale or corrupt entry; fall through to the database
			s.invalidateCache(ctx)
		}
	}

	items, err := s.menu.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && len(items) > 0 {
		if encoded, err := json.Marshal(items); err == nil {
			if err := s.cache.Set(ctx, menuCacheKey, encoded, s.cacheTTL).Err(); err != nil {
				s.logger.Warn("menu cache write failed", zap.Error(err))
			}
		}
	}
	return items, nil
}

// AddItem creates a new menu item. Names are normalized to lower case
// and must be unique.
func (s *MenuService) AddItem(ctx context.Context, name string, price int, createdBy int64) (*domain.MenuItem, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !namePattern.MatchString(name) {
		return nil, apperrors.NewValidationError("A name should consist of only alphabetic characters", nil)
	}
	if price <= 0 {
		return nil, apperrors.NewValidationError("price must be a positive number", nil)
	}

	if _, err := s.menu.GetByName(ctx, name); err == nil {
		return nil, apperrors.NewConflict("Item already exists", nil)
	} else if err != pgx.ErrNoRows {
		return nil, err
	}

	item := &domain.MenuItem{
		Name:      name,
		Price:     price,
		Status:    domain.MenuItemAvailable,
		CreatedBy: createdBy,
	}
	if err := s.menu.Create(ctx, item); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return item, nil
}

// FindItemByName looks up a menu item by its normalized name.
func (s *MenuService) FindItemByName(ctx context.Context, name string) (*domain.MenuItem, error) {
	return s.menu.GetByName(ctx, strings.ToLower(strings.TrimSpace(name)))
}

// DeleteItem removes a menu item by ID.
func (s *MenuService) DeleteItem(ctx context.Context, id int64) error {
	if _, err := s.menu.GetByID(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound(fmt.Sprintf("menu item %d not found", id), nil)
		}
		return err
	}
	if err := s.menu.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *MenuService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, menuCacheKey).Err(); err != nil {
		s.logger.Warn("menu cache invalidation failed", zap.Error(err))
	}
}
