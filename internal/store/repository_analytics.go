package store

import (
	"context"
	"fmt"

	"github.com/dinehall/dinehall/internal/logger"
	"github.com/dinehall/dinehall/models"
)

// analyticsRepository serves read-only reporting aggregates computed directly
// in SQL. It never writes.
type analyticsRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAnalyticsRepository constructs an [AnalyticsRepository] backed by the
// provided database connection and logger.
func NewAnalyticsRepository(db *DB, logger *logger.Logger) AnalyticsRepository {
	logger.Debug().Msg("creating analytics repository")
	return &analyticsRepository{
		db:     db,
		logger: logger,
	}
}

// DailyStats aggregates completed business for a single calendar day across
// orders, meal pass redemptions, and reservations.
func (r *analyticsRepository) DailyStats(ctx context.Context, date string) (models.DailyStats, error) {
	log := logger.FromContext(ctx)

	stats := models.DailyStats{Date: date}

	row := r.db.QueryRowContext(ctx, dailyOrderStats, date)
	if err := row.Scan(&stats.OrdersCount, &stats.RevenueCents, &stats.CancelledCount); err != nil {
		log.Err(err).Str("func", "*analyticsRepository.DailyStats").Msg("error scanning order stats")
		return models.DailyStats{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	if stats.OrdersCount > 0 {
		stats.AvgOrderCents = stats.RevenueCents / int64(stats.OrdersCount)
	}

	row = r.db.QueryRowContext(ctx, dailyMealPassSavings, date)
	if err := row.Scan(&stats.MealPassSavings); err != nil {
		log.Err(err).Str("func", "*analyticsRepository.DailyStats").Msg("error scanning meal pass savings")
		return models.DailyStats{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	row = r.db.QueryRowContext(ctx, dailyReservationsCount, date)
	if err := row.Scan(&stats.ReservationsCount); err != nil {
		log.Err(err).Str("func", "*analyticsRepository.DailyStats").Msg("error scanning reservations count")
		return models.DailyStats{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return stats, nil
}

// TopItems returns the best-selling menu items over a date range, by units
// sold among completed orders.
func (r *analyticsRepository) TopItems(ctx context.Context, fromDate, toDate string, limit uint64) ([]models.TopMenuItem, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, topItems, fromDate, toDate, limit)
	if err != nil {
		log.Err(err).Str("func", "*analyticsRepository.TopItems").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []models.TopMenuItem
	for rows.Next() {
		var item models.TopMenuItem
		if err := rows.Scan(&item.MenuItemID, &item.Name, &item.QuantitySold, &item.RevenueCents); err != nil {
			log.Err(err).Str("func", "*analyticsRepository.TopItems").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// StatusBreakdown counts orders per lifecycle state over a date range.
func (r *analyticsRepository) StatusBreakdown(ctx context.Context, fromDate, toDate string) ([]models.StatusBreakdown, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, statusBreakdown, fromDate, toDate)
	if err != nil {
		log.Err(err).Str("func", "*analyticsRepository.StatusBreakdown").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var breakdown []models.StatusBreakdown
	for rows.Next() {
		var b models.StatusBreakdown
		if err := rows.Scan(&b.Status, &b.Count); err != nil {
			log.Err(err).Str("func", "*analyticsRepository.StatusBreakdown").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		breakdown = append(breakdown, b)
	}

	return breakdown, rows.Err()
}
