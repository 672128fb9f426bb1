package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/fastfood-service/internal/domain"
	"github.com/spec-kit/fastfood-service/internal/repository"
	apperrors "github.com/spec-kit/fastfood-service/pkg/util"
)

const (
	principalKey = "auth_principal"
	rawTokenKey  = "auth_raw_token"
)

// TokenValidator resolves a bearer token to a user ID or one of the
// token error outcomes (invalid, expired, blacklisted).
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (int64, error)
}

// Middleware validates bearer tokens and loads the caller's account.
type Middleware struct {
	validator TokenValidator
	users     repository.UserRepository
}

// NewMiddleware constructs the auth middleware.
func NewMiddleware(validator TokenValidator, users repository.UserRepository) *Middleware {
	return &Middleware{validator: validator, users: users}
}

// ExtractBearer splits an Authorization header into its token part.
// Missing scheme, wrong scheme, or an empty token all fail.
func ExtractBearer(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// Handle enforces authentication for protected routes. A malformed
// bearer header is its own 401 outcome, distinct from the token errors
// returned once a well-formed token reaches validation.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	token, ok := ExtractBearer(c.Get("Authorization"))
	if !ok {
		return apperrors.NewUnauthorized(MsgBearerMalformed)
	}

	userID, err := m.validator.ValidateToken(c.Context(), token)
	if err != nil {
		switch err {
		case ErrTokenInvalid, ErrTokenExpired, ErrTokenBlacklisted:
			return apperrors.NewUnauthorized(err.Error())
		}
		return apperrors.MapError(err)
	}

	user, err := m.users.GetByID(c.Context(), userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewUnauthorized(ErrTokenInvalid.Error())
		}
		return apperrors.MapError(err)
	}

	c.Locals(principalKey, user)
	c.Locals(rawTokenKey, token)
	return c.Next()
}

// RequireAdmin gates admin-only routes. The role was re-read from
// storage when the principal was loaded, so a stale role in an old
// token can never grant access.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized(MsgBearerMalformed)
		}
		if user.Role != domain.RoleAdmin {
			return apperrors.NewForbidden(MsgPermissionDenied)
		}
		return c.Next()
	}
}

// PrincipalFromContext retrieves the authenticated user.
func PrincipalFromContext(c *fiber.Ctx) (*domain.User, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	user, ok := val.(*domain.User)
	return user, ok
}

// RawTokenFromContext retrieves the bearer token that authenticated the
// request, used by logout to blacklist it.
func RawTokenFromContext(c *fiber.Ctx) (string, bool) {
	val := c.Locals(rawTokenKey)
	if val == nil {
		return "", false
	}
	token, ok := val.(string)
	return token, ok
}
