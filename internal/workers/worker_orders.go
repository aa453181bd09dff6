package workers

import (
	"context"
	"time"

	"github.com/dinehall/dinehall/internal/logger"
)

const (
	defaultStaleOrderInterval = 15 * time.Minute
	defaultStaleOrderAge      = 2 * time.Hour
)

// staleOrderCanceller is the slice of the order repository this worker
// needs: cancel pending orders older than the cutoff.
type staleOrderCanceller interface {
	CancelStaleOrders(ctx context.Context, cutoff time.Time) (int64, error)
}

// staleOrderWorker cancels pending orders nobody confirmed within the
// configured age, keeping abandoned checkouts off the kitchen board.
type staleOrderWorker struct {
	repository staleOrderCanceller
	interval   time.Duration
	age        time.Duration
	clock      Clock
	logger     *logger.Logger
}

func newStaleOrderWorker(repository staleOrderCanceller, interval, age time.Duration, logger *logger.Logger) *staleOrderWorker {
	if interval <= 0 {
		interval = defaultStaleOrderInterval
	}
	if age <= 0 {
		age = defaultStaleOrderAge
	}
	return &staleOrderWorker{
		repository: repository,
		interval:   interval,
		age:        age,
		clock:      realClock{},
		logger:     logger,
	}
}

func (w *staleOrderWorker) Run(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.interval).Dur("age", w.age).Msg("stale order worker started")

		for {
			select {
			case <-ctx.Done():
				w.logger.Info().Msg("stale order worker stopped")
				return
			case <-ticker.C:
				w.sweep(ctx)
			}
		}
	}()
}

func (w *staleOrderWorker) sweep(ctx context.Context) {
	cancelled, err := w.repository.CancelStaleOrders(ctx, w.clock.Now().Add(-w.age))
	if err != nil {
		w.logger.Err(err).Msg("stale order sweep failed")
		return
	}
	if cancelled > 0 {
		w.logger.Info().Int64("cancelled", cancelled).Msg("stale pending orders cancelled")
	}
}
