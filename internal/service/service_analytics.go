package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dinehall/dinehall/internal/logger"
	"github.com/dinehall/dinehall/internal/store"
	"github.com/dinehall/dinehall/models"
)

// defaultTopItemsLimit bounds the top-sellers report when the caller does
// not ask for a specific size.
const defaultTopItemsLimit = 10

// analyticsService validates date parameters and delegates the aggregation
// to SQL in the AnalyticsRepository.
type analyticsService struct {
	analyticsRepository store.AnalyticsRepository
	logger              *logger.Logger
}

// NewAnalyticsService constructs an AnalyticsService over the given
// repository.
func NewAnalyticsService(analyticsRepository store.AnalyticsRepository, logger *logger.Logger) AnalyticsService {
	return &analyticsService{
		analyticsRepository: analyticsRepository,
		logger:              logger,
	}
}

func (a *analyticsService) DailyStats(ctx context.Context, date string) (models.DailyStats, error) {
	if err := validateDate(date); err != nil {
		return models.DailyStats{}, err
	}

	stats, err := a.analyticsRepository.DailyStats(ctx, date)
	if err != nil {
		return models.DailyStats{}, fmt.Errorf("daily stats query failed: %w", err)
	}
	return stats, nil
}

func (a *analyticsService) TopItems(ctx context.Context, fromDate, toDate string, limit uint64) ([]models.TopMenuItem, error) {
	if err := validateDateRange(fromDate, toDate); err != nil {
		return nil, err
	}
	if limit == 0 {
		limit = defaultTopItemsLimit
	}

	items, err := a.analyticsRepository.TopItems(ctx, fromDate, toDate, limit)
	if err != nil {
		return nil, fmt.Errorf("top items query failed: %w", err)
	}
	return items, nil
}

func (a *analyticsService) StatusBreakdown(ctx context.Context, fromDate, toDate string) ([]models.StatusBreakdown, error) {
	if err := validateDateRange(fromDate, toDate); err != nil {
		return nil, err
	}

	breakdown, err := a.analyticsRepository.StatusBreakdown(ctx, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("status breakdown query failed: %w", err)
	}
	return breakdown, nil
}

func validateDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return ErrInvalidDataProvided
	}
	return nil
}

func validateDateRange(fromDate, toDate string) error {
	if err := validateDate(fromDate); err != nil {
		return err
	}
	if err := validateDate(toDate); err != nil {
		return err
	}
	if fromDate > toDate {
		return ErrInvalidDataProvided
	}
	return nil
}
