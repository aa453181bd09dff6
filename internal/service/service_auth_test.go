// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"testing"
	"time"

	"github.com/dinehall/dinehall/internal/config"
	"github.com/dinehall/dinehall/internal/logger"
	"github.com/dinehall/dinehall/internal/store"
	"github.com/dinehall/dinehall/internal/utils"
	"github.com/dinehall/dinehall/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(users *mockUserRepository, throttle *mockThrottleRepository) *authService {
	return &authService{
		userRepository:     users,
		throttleRepository: throttle,
		tokenSignKey:       "test-secret",
		tokenIssuer:        "dinehall",
		tokenDuration:      time.Hour,
		clock:              realClock{},
		logger:             logger.NewLogger("test", false),
	}
}

func TestRegister_Success(t *testing.T) {
	users := &mockUserRepository{}
	svc := newTestAuthService(users, &mockThrottleRepository{})

	user, err := svc.Register(context.Background(), models.RegisterRequest{
		Login:    "john@example.com",
		Name:     "John",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, "john@example.com", user.Login)
	assert.Equal(t, models.RoleCustomer, user.Role)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.True(t, utils.CheckPassword(user.PasswordHash, "secret123"))
}

func TestRegister_EmptyCredentials(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{}, &mockThrottleRepository{})

	_, err := svc.Register(context.Background(), models.RegisterRequest{Login: "john@example.com"})
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Register(context.Background(), models.RegisterRequest{Password: "secret123"})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestLogin_Success(t *testing.T) {
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	users := &mockUserRepository{
		findByLoginFn: func(ctx context.Context, login string) (models.User, error) {
			return models.User{UserID: 7, Login: login, PasswordHash: hash, Role: models.RoleCustomer}, nil
		},
	}
	throttle := &mockThrottleRepository{}
	svc := newTestAuthService(users, throttle)

	user, err := svc.Login(context.Background(), models.LoginRequest{Login: "john@example.com", Password: "secret123"})
	require.NoError(t, err)

	assert.Equal(t, int64(7), user.UserID)
	assert.Equal(t, 1, throttle.resets, "successful login should reset the throttle")
}

func TestLogin_WrongPasswordRecordsFailure(t *testing.T) {
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	users := &mockUserRepository{
		findByLoginFn: func(ctx context.Context, login string) (models.User, error) {
			return models.User{UserID: 7, Login: login, PasswordHash: hash}, nil
		},
	}
	throttle := &mockThrottleRepository{}
	svc := newTestAuthService(users, throttle)

	_, err = svc.Login(context.Background(), models.LoginRequest{Login: "john@example.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrWrongPassword)
	assert.Equal(t, 1, throttle.recorded, "failed login should record a throttle failure")
}

func TestLogin_ThrottledDuringCooldown(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	throttle := &mockThrottleRepository{
		getFn: func(ctx context.Context, login string) (models.LoginThrottle, error) {
			// 5th consecutive failure one second ago → 16s cooldown still running.
			return models.LoginThrottle{Login: login, FailCount: 5, LastFailedAt: now.Add(-time.Second)}, nil
		},
	}
	svc := newTestAuthService(&mockUserRepository{}, throttle)
	svc.clock = fixedClock{now: now}

	_, err := svc.Login(context.Background(), models.LoginRequest{Login: "john@example.com", Password: "secret123"})
	require.ErrorIs(t, err, ErrTooManyLoginAttempts)
}

func TestLogin_CooldownElapsedAllowsAttempt(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	users := &mockUserRepository{
		findByLoginFn: func(ctx context.Context, login string) (models.User, error) {
			return models.User{UserID: 7, Login: login, PasswordHash: hash}, nil
		},
	}
	throttle := &mockThrottleRepository{
		getFn: func(ctx context.Context, login string) (models.LoginThrottle, error) {
			return models.LoginThrottle{Login: login, FailCount: 2, LastFailedAt: now.Add(-time.Minute)}, nil
		},
	}
	svc := newTestAuthService(users, throttle)
	svc.clock = fixedClock{now: now}

	_, err = svc.Login(context.Background(), models.LoginRequest{Login: "john@example.com", Password: "secret123"})
	require.NoError(t, err)
}

func TestCooldownRemaining_CapsAtMax(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	svc := newTestAuthService(&mockUserRepository{}, &mockThrottleRepository{})
	svc.clock = fixedClock{now: now}

	// 20 failures would be ~6 days uncapped; the cap keeps it at 30s.
	remaining := svc.cooldownRemaining(models.LoginThrottle{
		FailCount:    20,
		LastFailedAt: now,
	})
	assert.Equal(t, maxLoginCooldown, remaining)
}

func TestCreateAndParseToken_RoundTrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{}, &mockThrottleRepository{})

	token, err := svc.CreateToken(context.Background(), models.User{UserID: 7, Role: models.RoleStaff})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(7), parsed.UserID)
	assert.Equal(t, models.RoleStaff, parsed.Role)
}

func TestParseToken_WrongIssuerRejected(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{}, &mockThrottleRepository{})

	other := NewAuthService(&mockUserRepository{}, &mockThrottleRepository{}, config.App{
		SecretKey:     "test-secret",
		TokenIssuer:   "someone-else",
		TokenDuration: time.Hour,
	}, logger.NewLogger("test", false))

	token, err := other.CreateToken(context.Background(), models.User{UserID: 7, Role: models.RoleCustomer})
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), token.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestProfile_ReturnsAccountRecord(t *testing.T) {
	users := &mockUserRepository{
		findByIDFn: func(_ context.Context, userID int64) (models.User, error) {
			require.Equal(t, int64(5), userID)
			return models.User{UserID: 5, Login: "ada", Name: "Ada", Role: models.RoleCustomer}, nil
		},
	}
	svc := newTestAuthService(users, &mockThrottleRepository{})

	user, err := svc.Profile(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, "ada", user.Login)
	assert.Equal(t, models.RoleCustomer, user.Role)
}

func TestProfile_UnknownUser(t *testing.T) {
	users := &mockUserRepository{
		findByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(users, &mockThrottleRepository{})

	_, err := svc.Profile(context.Background(), 404)

	require.ErrorIs(t, err, store.ErrNoUserWasFound)
}
