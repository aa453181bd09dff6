package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dinehall/dinehall/internal/logger"
	"github.com/dinehall/dinehall/models"
)

func newTestAnalyticsRepo(t *testing.T) (*analyticsRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test", false)
	repo := &analyticsRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestDailyStats_AggregatesAllSources(t *testing.T) {
	repo, mock, db := newTestAnalyticsRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM orders").
		WithArgs("2026-08-24").
		WillReturnRows(sqlmock.
			NewRows([]string{"completed", "revenue", "cancelled"}).
			AddRow(10, 50000, 2))
	mock.ExpectQuery("SELECT (.+) FROM meal_pass_usage").
		WithArgs("2026-08-24").
		WillReturnRows(sqlmock.NewRows([]string{"savings"}).AddRow(1200))
	mock.ExpectQuery("SELECT (.+) FROM table_reservations").
		WithArgs("2026-08-24").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	stats, err := repo.DailyStats(context.Background(), "2026-08-24")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.OrdersCount != 10 {
		t.Errorf("expected 10 completed orders, got %d", stats.OrdersCount)
	}
	if stats.AvgOrderCents != 5000 {
		t.Errorf("expected avg order 5000, got %d", stats.AvgOrderCents)
	}
	if stats.MealPassSavings != 1200 {
		t.Errorf("expected 1200 savings, got %d", stats.MealPassSavings)
	}
	if stats.ReservationsCount != 7 {
		t.Errorf("expected 7 reservations, got %d", stats.ReservationsCount)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDailyStats_NoOrdersNoDivisionByZero(t *testing.T) {
	repo, mock, db := newTestAnalyticsRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM orders").
		WillReturnRows(sqlmock.NewRows([]string{"completed", "revenue", "cancelled"}).AddRow(0, 0, 0))
	mock.ExpectQuery("SELECT (.+) FROM meal_pass_usage").
		WillReturnRows(sqlmock.NewRows([]string{"savings"}).AddRow(0))
	mock.ExpectQuery("SELECT (.+) FROM table_reservations").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	stats, err := repo.DailyStats(context.Background(), "2026-08-24")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.AvgOrderCents != 0 {
		t.Errorf("expected zero average on an empty day, got %d", stats.AvgOrderCents)
	}
}

func TestTopItems_ReturnsBestSellers(t *testing.T) {
	repo, mock, db := newTestAnalyticsRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM order_items").
		WithArgs("2026-08-18", "2026-08-24", uint64(5)).
		WillReturnRows(sqlmock.
			NewRows([]string{"menu_item_id", "name", "qty", "revenue"}).
			AddRow(3, "Pad Thai", 42, 52500).
			AddRow(7, "Green Curry", 30, 39000))

	items, err := repo.TopItems(context.Background(), "2026-08-18", "2026-08-24", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Name != "Pad Thai" || items[0].QuantitySold != 42 {
		t.Errorf("unexpected top item: %+v", items[0])
	}
}

func TestStatusBreakdown_CountsPerStatus(t *testing.T) {
	repo, mock, db := newTestAnalyticsRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM orders").
		WithArgs("2026-08-18", "2026-08-24").
		WillReturnRows(sqlmock.
			NewRows([]string{"status", "count"}).
			AddRow(models.OrderStatusCancelled, 2).
			AddRow(models.OrderStatusCompleted, 15))

	breakdown, err := repo.StatusBreakdown(context.Background(), "2026-08-18", "2026-08-24")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(breakdown) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(breakdown))
	}
	if breakdown[1].Status != models.OrderStatusCompleted || breakdown[1].Count != 15 {
		t.Errorf("unexpected breakdown row: %+v", breakdown[1])
	}
}

func TestStatusBreakdown_QueryError(t *testing.T) {
	repo, mock, db := newTestAnalyticsRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM orders").
		WillReturnError(errors.New("db network error"))

	_, err := repo.StatusBreakdown(context.Background(), "2026-08-18", "2026-08-24")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
