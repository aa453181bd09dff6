package workers

import (
	"context"
	"time"

	"github.com/dinehall/dinehall/internal/logger"
)

const defaultMealPassExpiryInterval = time.Hour

// mealPassExpirer is the slice of the meal pass repository this worker
// needs: flip active subscriptions past their end date to expired.
type mealPassExpirer interface {
	ExpireSubscriptions(ctx context.Context, now time.Time) (int64, error)
}

// mealPassExpiryWorker periodically expires subscriptions whose end date has
// passed so the one-active-subscription rule frees up without waiting for
// the user's next purchase attempt.
type mealPassExpiryWorker struct {
	repository mealPassExpirer
	interval   time.Duration
	clock      Clock
	logger     *logger.Logger
}

func newMealPassExpiryWorker(repository mealPassExpirer, interval time.Duration, logger *logger.Logger) *mealPassExpiryWorker {
	if interval <= 0 {
		interval = defaultMealPassExpiryInterval
	}
	return &mealPassExpiryWorker{
		repository: repository,
		interval:   interval,
		clock:      realClock{},
		logger:     logger,
	}
}

func (w *mealPassExpiryWorker) Run(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.interval).Msg("meal pass expiry worker started")

		for {
			select {
			case <-ctx.Done():
				w.logger.Info().Msg("meal pass expiry worker stopped")
				return
			case <-ticker.C:
				w.sweep(ctx)
			}
		}
	}()
}

func (w *mealPassExpiryWorker) sweep(ctx context.Context) {
	expired, err := w.repository.ExpireSubscriptions(ctx, w.clock.Now())
	if err != nil {
		w.logger.Err(err).Msg("meal pass expiry sweep failed")
		return
	}
	if expired > 0 {
		w.logger.Info().Int64("expired", expired).Msg("meal pass subscriptions expired")
	}
}
