package workers

import (
	"context"

	"github.com/dinehall/dinehall/internal/config"
	"github.com/dinehall/dinehall/internal/logger"
	"github.com/dinehall/dinehall/internal/store"
)

// Workers aggregates all background jobs so the entrypoint starts them with
// a single call.
type Workers struct {
	workers []Worker
}

// NewWorkers wires the maintenance jobs over the repositories in storages.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newMealPassExpiryWorker(storages.MealPassRepository, cfg.MealPassExpiryInterval, logger),
			newStaleOrderWorker(storages.OrderRepository, cfg.StaleOrderInterval, cfg.StaleOrderAge, logger),
		},
	}
}

// Run starts every worker. The workers stop when ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
