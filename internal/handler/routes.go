package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dinehall/dinehall/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.checkAllowedHosts)
	router.Use(withGZip)

	// platform health check; must answer on the bare root
	router.Get("/", h.health)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)

		r.Get("/api/menu", h.listMenu)
		r.Get("/api/menu/categories", h.listCategories)
		r.Get("/api/menu/{itemID}", h.getMenuItem)

		r.Get("/api/mealpass/plans", h.listMealPassPlans)

		// order tracking by receipt number works without an account
		r.Get("/api/orders/number/{orderNumber}", h.getOrderByNumber)

		r.Get("/api/reservations/availability", h.reservationAvailability)
		// confirmation-code lookup works without an account
		r.Get("/api/reservations/{code}", h.getReservationByCode)
	})

	// routes for any authenticated account
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user/profile", h.profile)

		r.Get("/api/cart", h.getCart)
		r.Post("/api/cart/items", h.addCartItem)
		r.Put("/api/cart/items", h.setCartItem)
		r.Delete("/api/cart/items/{itemID}", h.removeCartItem)
		r.Delete("/api/cart", h.clearCart)

		r.Post("/api/orders/checkout", h.checkout)
		r.Get("/api/orders", h.listOwnOrders)
		r.Get("/api/orders/{orderID}", h.getOrder)
		r.Post("/api/orders/{orderID}/cancel", h.cancelOrder)

		r.Post("/api/reservations", h.createReservation)
		r.Delete("/api/reservations/{code}", h.cancelReservation)

		r.Post("/api/mealpass/purchase", h.purchaseMealPass)
		r.Get("/api/mealpass/dashboard", h.mealPassDashboard)
		r.Get("/api/mealpass/subscriptions", h.listMealPassSubscriptions)
		r.Post("/api/mealpass/redeem", h.redeemMealPass)
	})

	// routes for staff and managers
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.requireRole(models.RoleStaff, models.RoleManager))

		r.Get("/api/kitchen/tickets", h.kitchenTickets)
		r.Get("/api/kitchen/summary", h.kitchenSummary)

		r.Get("/api/staff/orders", h.listOrders)
		r.Patch("/api/orders/{orderID}/status", h.updateOrderStatus)
		r.Get("/api/orders/{orderID}/history", h.orderStatusHistory)

		r.Get("/api/staff/shifts", h.listOwnShifts)

		r.Get("/api/staff/reservations", h.listReservationsForDate)
		r.Patch("/api/reservations/{code}/status", h.updateReservationStatus)
	})

	// routes for managers only
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.requireRole(models.RoleManager))

		r.Post("/api/menu/categories", h.createCategory)
		r.Put("/api/menu/categories/{categoryID}", h.updateCategory)
		r.Delete("/api/menu/categories/{categoryID}", h.deleteCategory)
		r.Post("/api/menu", h.createMenuItem)
		r.Put("/api/menu/{itemID}", h.updateMenuItem)
		r.Delete("/api/menu/{itemID}", h.deleteMenuItem)

		r.Post("/api/schedule/profiles", h.createStaffProfile)
		r.Get("/api/schedule/profiles", h.listStaffProfiles)
		r.Post("/api/schedule/templates", h.createShiftTemplate)
		r.Get("/api/schedule/templates", h.listShiftTemplates)
		r.Post("/api/schedule/shifts", h.createShift)
		r.Get("/api/schedule/shifts", h.listShifts)
		r.Patch("/api/schedule/shifts/{shiftID}/status", h.updateShiftStatus)
		r.Post("/api/schedule/shifts/publish", h.publishDay)
		r.Get("/api/schedule/labor-cost", h.laborCost)

		r.Get("/api/analytics/daily", h.analyticsDaily)
		r.Get("/api/analytics/top-items", h.analyticsTopItems)
		r.Get("/api/analytics/status-breakdown", h.analyticsStatusBreakdown)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
