package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dinehall/dinehall/internal/config"
	"github.com/dinehall/dinehall/internal/logger"
	"github.com/dinehall/dinehall/internal/store"
	"github.com/dinehall/dinehall/internal/utils"
	"github.com/dinehall/dinehall/models"
)

// maxLoginCooldown caps the exponential cooldown imposed after repeated
// failed login attempts.
const maxLoginCooldown = 30 * time.Second

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification with per-login
// throttling, and JWT token lifecycle, using bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// throttleRepository tracks consecutive failed login attempts per login.
	throttleRepository store.ThrottleRepository

	// tokenSignKey is the secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	clock Clock

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, throttleRepository store.ThrottleRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:     userRepository,
		throttleRepository: throttleRepository,
		tokenSignKey:       cfg.SecretKey,
		tokenIssuer:        cfg.TokenIssuer,
		tokenDuration:      cfg.TokenDuration,
		clock:              realClock{},
		logger:             logger,
	}
}

// Register creates a new customer account.
//
// It validates that login and password are non-empty, hashes the password
// with bcrypt, and delegates persistence to the UserRepository. Registration
// always produces a customer account; staff and manager roles are granted
// out of band.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if login or password is empty.
//   - A wrapped storage error if the repository call fails (e.g. login already
//     taken — see store.ErrLoginAlreadyExists).
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Login == "" || req.Password == "" {
		log.Error().Str("login", req.Login).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Login:        req.Login,
		Name:         req.Name,
		Phone:        req.Phone,
		PasswordHash: hash,
		Role:         models.RoleCustomer,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("login", req.Login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing account.
//
// Before checking credentials it consults the login throttle: each
// consecutive failure doubles the cooldown (1s, 2s, 4s, ...) up to
// maxLoginCooldown, and attempts inside the cooldown window are rejected
// without touching the password. A successful login resets the counter.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if login or password is empty.
//   - ErrTooManyLoginAttempts while the cooldown has not elapsed.
//   - A wrapped storage error if the repository lookup fails (e.g. user not
//     found — see store.ErrNoUserWasFound).
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Login == "" || req.Password == "" {
		log.Error().Str("login", req.Login).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	throttle, err := a.throttleRepository.GetThrottle(ctx, req.Login)
	if err != nil {
		log.Err(err).Str("login", req.Login).Msg("throttle lookup failed")
		return models.User{}, fmt.Errorf("throttle lookup failed: %w", err)
	}
	if remaining := a.cooldownRemaining(throttle); remaining > 0 {
		log.Warn().
			Str("login", req.Login).
			Int("fail_count", throttle.FailCount).
			Dur("remaining", remaining).
			Msg("login throttled")
		return models.User{}, ErrTooManyLoginAttempts
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, req.Login)
	if err != nil {
		log.Err(err).Str("login", req.Login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if !utils.CheckPassword(foundUser.PasswordHash, req.Password) {
		if _, recordErr := a.throttleRepository.RecordFailure(ctx, req.Login); recordErr != nil {
			log.Err(recordErr).Str("login", req.Login).Msg("recording login failure failed")
		}
		log.Error().
			Int64("id", foundUser.UserID).
			Str("login", foundUser.Login).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	if err := a.throttleRepository.ResetThrottle(ctx, req.Login); err != nil {
		log.Err(err).Str("login", req.Login).Msg("resetting login throttle failed")
	}

	return foundUser, nil
}

// Profile returns the account record for userID.
//
// Returns a wrapped storage error if the lookup fails (e.g. no such user —
// see store.ErrNoUserWasFound).
func (a *authService) Profile(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim plus the account role as a custom claim, and
// expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// cooldownRemaining returns how long the login must still wait, zero when the
// attempt may proceed. The cooldown doubles per consecutive failure and is
// capped at maxLoginCooldown.
func (a *authService) cooldownRemaining(throttle models.LoginThrottle) time.Duration {
	if throttle.FailCount == 0 {
		return 0
	}

	cooldown := time.Second << (throttle.FailCount - 1)
	if cooldown > maxLoginCooldown || cooldown <= 0 {
		cooldown = maxLoginCooldown
	}

	deadline := throttle.LastFailedAt.Add(cooldown)
	if remaining := deadline.Sub(a.clock.Now()); remaining > 0 {
		return remaining
	}
	return 0
}
