package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/fastfood-service/internal/auth"
	"github.com/spec-kit/fastfood-service/internal/config"
	"github.com/spec-kit/fastfood-service/internal/domain"
	"github.com/spec-kit/fastfood-service/internal/repository"
)

// ErrInvalidCredentials is returned for both an unknown username and a
// wrong password, so a caller cannot tell which one failed.
var ErrInvalidCredentials = errors.New("User does not exist.")

// AuthService composes the token manager, password hashing and the
// blacklist store into the token lifecycle operations every other
// endpoint depends on.
type AuthService struct {
	users      repository.UserRepository
	tokens     repository.TokenRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	UserRepo  repository.UserRepository
	TokenRepo repository.TokenRepository
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		tokens:     deps.TokenRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL()),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// IssueToken signs a fresh token for the user. Issuing has no side
// effects; a token only touches storage once it is revoked.
func (s *AuthService) IssueToken(userID int64) (string, time.Time, error) {
	return s.tokenMgr.Generate(userID)
}

// ValidateToken resolves a bearer token to the subject user ID.
// Signature and expiry are checked before the blacklist is consulted,
// so an expired-and-revoked token reports expiry and a storage outage
// cannot turn a tampered token into any other outcome.
func (s *AuthService) ValidateToken(ctx context.Context, token string) (int64, error) {
	claims, err := s.tokenMgr.Parse(token)
	if err != nil {
		return 0, err
	}

	blacklisted, err := s.tokens.IsBlacklisted(ctx, token)
	if err != nil {
		return 0, err
	}
	if blacklisted {
		return 0, auth.ErrTokenBlacklisted
	}

	userID, err := claims.UserID()
	if err != nil {
		return 0, auth.ErrTokenInvalid
	}
	return userID, nil
}

// RevokeToken blacklists a token. A repeat revocation writes another
// row but changes nothing observable.
func (s *AuthService) RevokeToken(ctx context.Context, token string) (*domain.BlacklistedToken, error) {
	return s.tokens.Blacklist(ctx, token)
}

// Logout validates the presented token and then blacklists it. An
// already-blacklisted or expired token is rejected with the matching
// token error instead of being written again.
func (s *AuthService) Logout(ctx context.Context, token string) (*domain.BlacklistedToken, error) {
	if _, err := s.ValidateToken(ctx, token); err != nil {
		return nil, err
	}
	return s.RevokeToken(ctx, token)
}

// CheckAdmin reports whether the user currently holds the admin role.
// The role is re-read from storage on every call; a role embedded in an
// old token is never trusted. A missing user is simply not an admin.
func (s *AuthService) CheckAdmin(ctx context.Context, userID int64) (bool, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return user.Role == domain.RoleAdmin, nil
}

// RegisterInput carries the signup fields.
type RegisterInput struct {
	UserName string
	Email    string
	Contact  string
	Password string
	Role     domain.UserRole
}

// Register validates the signup fields, hashes the password and creates
// the account. The plaintext password never reaches the repository.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	if err := s.validateRegistration(ctx, in); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		UserName:     in.UserName,
		Email:        in.Email,
		Contact:      in.Contact,
		PasswordHash: hash,
		Role:         in.Role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates by username and password and issues a token.
func (s *AuthService) Login(ctx context.Context, userName, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByUserName(ctx, userName)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", time.Time{}, ErrInvalidCredentials
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, exp, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
