package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/fastfood-service/internal/api/dto"
	"github.com/spec-kit/fastfood-service/internal/auth"
	"github.com/spec-kit/fastfood-service/internal/domain"
	"github.com/spec-kit/fastfood-service/internal/service"
	apperrors "github.com/spec-kit/fastfood-service/pkg/util"
)

// AuthHandler exposes signup, login and logout endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Signup handles POST /api/v1/auth/signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	req.UserName = strings.TrimSpace(req.UserName)
	req.Email = strings.TrimSpace(req.Email)
	req.Contact = strings.TrimSpace(req.Contact)
	req.Password = strings.TrimSpace(req.Password)
	req.UserType = strings.ToLower(strings.TrimSpace(req.UserType))

	if req.UserName == "" || req.Email == "" || req.Contact == "" || req.Password == "" || req.UserType == "" {
		return apperrors.NewValidationError("some of these fields have empty/no values", nil)
	}

	user, err := h.auth.Register(c.Context(), service.RegisterInput{
		UserName: req.UserName,
		Email:    req.Email,
		Contact:  req.Contact,
		Password: req.Password,
		Role:     domain.UserRole(req.UserType),
	})
	if err != nil {
		if errors.Is(err, auth.ErrPasswordEncoding) {
			return apperrors.NewValidationError(err.Error(), nil)
		}
		return apperrors.MapError(err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": "Successfully registered",
		"data":    userResponse(user),
	})
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	req.UserName = strings.TrimSpace(req.UserName)
	req.Password = strings.TrimSpace(req.Password)
	if req.UserName == "" || req.Password == "" {
		return apperrors.NewValidationError("some of these fields have empty/no values", nil)
	}

	user, token, exp, err := h.auth.Login(c.Context(), req.UserName, req.Password)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			return apperrors.NewUnauthorized(err.Error())
		}
		return apperrors.MapError(err)
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Welcome, You are now logged in",
		"data": dto.AuthResponse{
			Token:      token,
			ExpiresAt:  exp,
			LoggedInAs: string(user.Role),
		},
	})
}

// Logout handles POST /api/v1/auth/logout. The auth middleware has
// already validated the token; revocation makes it unusable from now on.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token, ok := auth.RawTokenFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized(auth.MsgBearerMalformed)
	}

	entry, err := h.auth.RevokeToken(c.Context(), token)
	if err != nil {
		return apperrors.MapError(err)
	}

	return c.JSON(fiber.Map{
		"status":            "success",
		"message":           "Successfully logged out",
		"token_blacklisted": entry.Token,
	})
}

func userResponse(user *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       user.ID,
		UserName: user.UserName,
		Email:    user.Email,
		Contact:  user.Contact,
		UserType: string(user.Role),
	}
}
