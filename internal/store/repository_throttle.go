package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dinehall/dinehall/internal/logger"
	"github.com/dinehall/dinehall/models"
)

// throttleRepository tracks consecutive failed login attempts in the
// "login_throttle" table. One row per login; successful logins delete the row.
type throttleRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewThrottleRepository constructs a [ThrottleRepository] backed by the
// provided database connection and logger.
func NewThrottleRepository(db *DB, logger *logger.Logger) ThrottleRepository {
	logger.Debug().Msg("creating login throttle repository")
	return &throttleRepository{
		db:     db,
		logger: logger,
	}
}

// GetThrottle returns the current failure counter for a login. A login with
// no failures yields a zero-value [models.LoginThrottle], not an error.
func (r *throttleRepository) GetThrottle(ctx context.Context, login string) (models.LoginThrottle, error) {
	log := logger.FromContext(ctx)

	var throttle models.LoginThrottle
	row := r.db.QueryRowContext(ctx, getThrottle, login)
	if err := row.Scan(&throttle.Login, &throttle.FailCount, &throttle.LastFailedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.LoginThrottle{Login: login}, nil
		}
		log.Err(err).Str("func", "*throttleRepository.GetThrottle").Msg("error: scanning error")
		return models.LoginThrottle{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return throttle, nil
}

// RecordFailure increments the failure counter for a login, creating the row
// on first failure, and returns the updated counter.
func (r *throttleRepository) RecordFailure(ctx context.Context, login string) (models.LoginThrottle, error) {
	log := logger.FromContext(ctx)

	var throttle models.LoginThrottle
	row := r.db.QueryRowContext(ctx, recordThrottleFailure, login)
	if err := row.Scan(&throttle.Login, &throttle.FailCount, &throttle.LastFailedAt); err != nil {
		log.Err(err).Str("func", "*throttleRepository.RecordFailure").Msg("error: scanning error")
		return models.LoginThrottle{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return throttle, nil
}

// ResetThrottle clears the failure counter after a successful login.
func (r *throttleRepository) ResetThrottle(ctx context.Context, login string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, resetThrottle, login); err != nil {
		log.Err(err).Str("func", "*throttleRepository.ResetThrottle").Msg("error executing delete")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
