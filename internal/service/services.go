package service

import (
	"github.com/dinehall/dinehall/internal/config"
	"github.com/dinehall/dinehall/internal/logger"
	"github.com/dinehall/dinehall/internal/store"
)

// Services aggregates every domain service behind one value so the handler
// layer receives a single dependency.
type Services struct {
	AuthService        AuthService
	MenuService        MenuService
	CartService        CartService
	OrderService       OrderService
	KitchenService     KitchenService
	MealPassService    MealPassService
	ReservationService ReservationService
	ScheduleService    ScheduleService
	AnalyticsService   AnalyticsService
}

// NewServices wires all domain services over the repositories in storages.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:        NewAuthService(storages.UserRepository, storages.ThrottleRepository, cfg.App, logger),
		MenuService:        NewMenuService(storages.MenuRepository, logger),
		CartService:        NewCartService(storages.CartRepository, storages.MenuRepository, logger),
		OrderService:       NewOrderService(storages.OrderRepository, storages.CartRepository, storages.MenuRepository, logger),
		KitchenService:     NewKitchenService(storages.OrderRepository, logger),
		MealPassService:    NewMealPassService(storages.MealPassRepository, storages.OrderRepository, storages.UserRepository, logger),
		ReservationService: NewReservationService(storages.ReservationRepository, logger),
		ScheduleService:    NewScheduleService(storages.ScheduleRepository, logger),
		AnalyticsService:   NewAnalyticsService(storages.AnalyticsRepository, logger),
	}
}
