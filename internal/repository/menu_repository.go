package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/fastfood-service/internal/domain"
)

// MenuRepository defines persistence access for menu items.
type MenuRepository interface {
	Create(ctx context.Context, item *domain.MenuItem) error
	List(ctx context.Context) ([]domain.MenuItem, error)
	GetByID(ctx context.Context, id int64) (*domain.MenuItem, error)
	GetByName(ctx context.Context, name string) (*domain.MenuItem, error)
	Delete(ctx context.Context, id int64) error
}

type menuRepository struct {
	pool *pgxpool.Pool
}

// NewMenuRepository returns a Postgres-backed implementation.
func NewMenuRepository(pool *pgxpool.Pool) MenuRepository {
	return &menuRepository{pool: pool}
}

func (r *menuRepository) Create(ctx context.Context, item *domain.MenuItem) error {
	const query = `
        INSERT INTO menu_items (item_name, price, item_status, created_by)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		item.Name,
		item.Price,
		item.Status,
		item.CreatedBy,
	).Scan(&item.ID, &item.CreatedAt)
}

func (r *menuRepository) List(ctx context.Context) ([]domain.MenuItem, error) {
	const query = `
        SELECT id, item_name, price, item_status, created_by, created_at
        FROM menu_items ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Price,
			&item.Status,
			&item.CreatedBy,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *menuRepository) GetByID(ctx context.Context, id int64) (*domain.MenuItem, error) {
	const query = `
        SELECT id, item_name, price, item_status, created_by, created_at
        FROM menu_items WHERE id=$1`

	var item domain.MenuItem
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.Name,
		&item.Price,
		&item.Status,
		&item.CreatedBy,
		&item.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) GetByName(ctx context.Context, name string) (*domain.MenuItem, error) {
	const query = `
        SELECT id, item_name, price, item_status, created_by, created_at
        FROM menu_items WHERE item_name=$1`

	var item domain.MenuItem
	if err := r.pool.QueryRow(ctx, query, name).Scan(
		&item.ID,
		&item.Name,
		&item.Price,
		&item.Status,
		&item.CreatedBy,
		&item.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM menu_items WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
