package store

import "github.com/dinehall/dinehall/internal/logger"

// Storages aggregates every repository behind one value so the service layer
// receives a single dependency.
type Storages struct {
	UserRepository        UserRepository
	ThrottleRepository    ThrottleRepository
	MenuRepository        MenuRepository
	CartRepository        CartRepository
	OrderRepository       OrderRepository
	MealPassRepository    MealPassRepository
	ReservationRepository ReservationRepository
	ScheduleRepository    ScheduleRepository
	AnalyticsRepository   AnalyticsRepository
}

// NewStorages wires all PostgreSQL-backed repositories over the shared
// connection pool.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:        NewUserRepository(db, log),
		ThrottleRepository:    NewThrottleRepository(db, log),
		MenuRepository:        NewMenuRepository(db, log),
		CartRepository:        NewCartRepository(db, log),
		OrderRepository:       NewOrderRepository(db, log),
		MealPassRepository:    NewMealPassRepository(db, log),
		ReservationRepository: NewReservationRepository(db, log),
		ScheduleRepository:    NewScheduleRepository(db, log),
		AnalyticsRepository:   NewAnalyticsRepository(db, log),
	}
}
