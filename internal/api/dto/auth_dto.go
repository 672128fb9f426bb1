package dto

import "time"

// SignupRequest payload for new accounts.
type SignupRequest struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Contact  string `json:"contact"`
	Password string `json:"password"`
	UserType string `json:"user_type"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	UserName string `json:"user_name"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token      string    `json:"auth_token"`
	ExpiresAt  time.Time `json:"expires_at"`
	LoggedInAs string    `json:"logged_in_as"`
}

// UserResponse is the externally visible account shape. The password
// hash never leaves the service.
type UserResponse struct {
	ID       int64  `json:"user_id"`
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Contact  string `json:"contact"`
	UserType string `json:"user_type"`
}
