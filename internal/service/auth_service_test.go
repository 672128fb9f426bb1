package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/fastfood-service/internal/auth"
	"github.com/spec-kit/fastfood-service/internal/config"
	"github.com/spec-kit/fastfood-service/internal/domain"
)

const testSecret = "test-secret"

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       testSecret,
			TokenTTLMinutes: 60,
			BcryptCost:      bcrypt.MinCost,
		},
	}
}

func newTestAuthService(users *mockUserRepo, tokens *mockTokenRepo) *AuthService {
	return NewAuthService(testConfig(), AuthDependencies{UserRepo: users, TokenRepo: tokens})
}

func TestAuthService_IssueValidateRoundTrip(t *testing.T) {
	users := new(mockUserRepo)
	tokens := new(mockTokenRepo)
	svc := newTestAuthService(users, tokens)

	token, exp, err := svc.IssueToken(42)
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	tokens.On("IsBlacklisted", mock.Anything, token).Return(false, nil)

	userID, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestAuthService_ValidateBlacklisted(t *testing.T) {
	users := new(mockUserRepo)
	tokens := new(mockTokenRepo)
	svc := newTestAuthService(users, tokens)

	token, _, err := svc.IssueToken(7)
	require.NoError(t, err)

	tokens.On("IsBlacklisted", mock.Anything, token).Return(true, nil)

	_, err = svc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, auth.ErrTokenBlacklisted)
}

func TestAuthService_ExpiredWinsOverBlacklist(t *testing.T) {
	users := new(mockUserRepo)
	tokens := new(mockTokenRepo)
	svc := newTestAuthService(users, tokens)

	// expired token signed with the same secret
	expiredIssuer := auth.NewTokenManager(testSecret, time.Millisecond)
	token, _, err := expiredIssuer.Generate(42)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	_, err = svc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, auth.ErrTokenExpired)

	// the blacklist must not even be consulted for an expired token
	tokens.AssertNotCalled(t, "IsBlacklisted", mock.Anything, mock.Anything)
}

func TestAuthService_ValidateTamperedToken(t *testing.T) {
	users := new(mockUserRepo)
	tokens := new(mockTokenRepo)
	svc := newTestAuthService(users, tokens)

	foreign := auth.NewTokenManager("other-secret", time.Minute)
	token, _, err := foreign.Generate(42)
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
	tokens.AssertNotCalled(t, "IsBlacklisted", mock.Anything, mock.Anything)
}

func TestAuthService_RevocationIdempotent(t *testing.T) {
	users := new(mockUserRepo)
	tokens := new(mockTokenRepo)
	svc := newTestAuthService(users, tokens)

	token, _, err := svc.IssueToken(7)
	require.NoError(t, err)

	entry := &domain.BlacklistedToken{ID: 1, Token: token, BlacklistedOn: time.Now()}
	tokens.On("Blacklist", mock.Anything, token).Return(entry, nil).Twice()
	tokens.On("IsBlacklisted", mock.Anything, token).Return(true, nil)

	_, err = svc.RevokeToken(context.Background(), token)
	require.NoError(t, err)
	_, err = svc.RevokeToken(context.Background(), token)
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, auth.ErrTokenBlacklisted)
}

func TestAuthService_LogoutRevokesValidToken(t *testing.T) {
	users := new(mockUserRepo)
	tokens := new(mockTokenRepo)
	svc := newTestAuthService(users, tokens)

	token, _, err := svc.IssueToken(7)
	require.NoError(t, err)

	tokens.On("IsBlacklisted", mock.Anything, token).Return(false, nil)
	entry := &domain.BlacklistedToken{ID: 1, Token: token, BlacklistedOn: time.Now()}
	tokens.On("Blacklist", mock.Anything, token).Return(entry, nil)

	got, err := svc.Logout(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, token, got.Token)
	tokens.AssertExpectations(t)
}

func TestAuthService_LogoutRejectsBlacklistedToken(t *testing.T) {
	users := new(mockUserRepo)
	tokens := new(mockTokenRepo)
	svc := newTestAuthService(users, tokens)

	token, _, err := svc.IssueToken(7)
	require.NoError(t, err)

	tokens.On("IsBlacklisted", mock.Anything, token).Return(true, nil)

	_, err = svc.Logout(context.Background(), token)
	assert.ErrorIs(t, err, auth.ErrTokenBlacklisted)
	tokens.AssertNotCalled(t, "Blacklist", mock.Anything, mock.Anything)
}

func TestAuthService_CheckAdmin(t *testing.T) {
	users := new(mockUserRepo)
	tokens := new(mockTokenRepo)
	svc := newTestAuthService(users, tokens)

	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1, Role: domain.RoleAdmin}, nil)
	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2, Role: domain.RoleClient}, nil)
	users.On("GetByID", mock.Anything, int64(3)).Return(nil, pgx.ErrNoRows)

	isAdmin, err := svc.CheckAdmin(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, isAdmin)

	isAdmin, err = svc.CheckAdmin(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, isAdmin)

	isAdmin, err = svc.CheckAdmin(context.Background(), 3)
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestAuthService_LoginUnknownUserAndWrongPasswordIndistinguishable(t *testing.T) {
	users := new(mockUserRepo)
	tokens := new(mockTokenRepo)
	svc := newTestAuthService(users, tokens)

	hash, err := auth.HashPassword("password1", bcrypt.MinCost)
	require.NoError(t, err)

	users.On("GetByUserName", mock.Anything, "ghost").Return(nil, pgx.ErrNoRows)
	users.On("GetByUserName", mock.Anything, "alice").Return(&domain.User{
		ID: 1, UserName: "alice", PasswordHash: hash, Role: domain.RoleClient,
	}, nil)

	_, _, _, err = svc.Login(context.Background(), "ghost", "whatever")
	unknownErr := err
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, _, err = svc.Login(context.Background(), "alice", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), err.Error())
}

func TestAuthService_LoginSuccess(t *testing.T) {
	users := new(mockUserRepo)
	tokens := new(mockTokenRepo)
	svc := newTestAuthService(users, tokens)

	hash, err := auth.HashPassword("password1", bcrypt.MinCost)
	require.NoError(t, err)

	users.On("GetByUserName", mock.Anything, "alice").Return(&domain.User{
		ID: 9, UserName: "alice", PasswordHash: hash, Role: domain.RoleAdmin,
	}, nil)

	user, token, exp, err := svc.Login(context.Background(), "alice", "password1")
	require.NoError(t, err)
	assert.Equal(t, int64(9), user.ID)
	assert.NotEmpty(t, token)
	assert.True(t, exp.After(time.Now()))

	tokens.On("IsBlacklisted", mock.Anything, token).Return(false, nil)
	userID, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, int64(9), userID)
}

func TestAuthService_RegisterHashesPassword(t *testing.T) {
	users := new(mockUserRepo)
	tokens := new(mockTokenRepo)
	svc := newTestAuthService(users, tokens)

	users.On("ExistsByEmail", mock.Anything, "bob@mail.com").Return(false, nil)
	users.On("ExistsByUserName", mock.Anything, "bob marley").Return(false, nil)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.PasswordHash != "" && u.PasswordHash != "password1"
	})).Return(nil)

	user, err := svc.Register(context.Background(), RegisterInput{
		UserName: "bob marley",
		Email:    "bob@mail.com",
		Contact:  "0700000000",
		Password: "password1",
		Role:     domain.RoleClient,
	})
	require.NoError(t, err)
	assert.NoError(t, auth.ComparePassword(user.PasswordHash, "password1"))
	users.AssertExpectations(t)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	cases := []struct {
		name string
		in   RegisterInput
	}{
		{"short password", RegisterInput{UserName: "bob marley", Email: "bob@mail.com", Contact: "0700000000", Password: "abc", Role: domain.RoleClient}},
		{"non alphanumeric password", RegisterInput{UserName: "bob marley", Email: "bob@mail.com", Contact: "0700000000", Password: "pass word!", Role: domain.RoleClient}},
		{"bad email", RegisterInput{UserName: "bob marley", Email: "bob-at-mail", Contact: "0700000000", Password: "password1", Role: domain.RoleClient}},
		{"bad contact", RegisterInput{UserName: "bob marley", Email: "bob@mail.com", Contact: "123", Password: "password1", Role: domain.RoleClient}},
		{"numeric name", RegisterInput{UserName: "b0b", Email: "bob@mail.com", Contact: "0700000000", Password: "password1", Role: domain.RoleClient}},
		{"unknown role", RegisterInput{UserName: "bob marley", Email: "bob@mail.com", Contact: "0700000000", Password: "password1", Role: "superuser"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			users := new(mockUserRepo)
			tokens := new(mockTokenRepo)
			svc := newTestAuthService(users, tokens)

			users.On("ExistsByEmail", mock.Anything, mock.Anything).Return(false, nil).Maybe()
			users.On("ExistsByUserName", mock.Anything, mock.Anything).Return(false, nil).Maybe()

			_, err := svc.Register(context.Background(), tc.in)
			require.Error(t, err)
			users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}
