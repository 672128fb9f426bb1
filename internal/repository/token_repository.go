package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/fastfood-service/internal/domain"
)

// TokenRepository persists revoked tokens. Revoking the same token
// twice simply writes another row; IsBlacklisted is an existence check,
// so duplicates change nothing observable.
type TokenRepository interface {
	Blacklist(ctx context.Context, token string) (*domain.BlacklistedToken, error)
	IsBlacklisted(ctx context.Context, token string) (bool, error)
}

type tokenRepository struct {
	pool *pgxpool.Pool
}

// NewTokenRepository returns a Postgres-backed implementation.
func NewTokenRepository(pool *pgxpool.Pool) TokenRepository {
	return &tokenRepository{pool: pool}
}

func (r *tokenRepository) Blacklist(ctx context.Context, token string) (*domain.BlacklistedToken, error) {
	const query = `
        INSERT INTO blacklist_tokens (token)
        VALUES ($1)
        RETURNING id, blacklisted_on`

	entry := &domain.BlacklistedToken{Token: token}
	if err := r.pool.QueryRow(ctx, query, token).Scan(&entry.ID, &entry.BlacklistedOn); err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *tokenRepository) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM blacklist_tokens WHERE token=$1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, token).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
