// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"context"

	"github.com/dinehall/dinehall/models"
)

// Hand-rolled service mocks with overridable behaviour per test. A nil func
// field means "succeed with the zero value".

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn    func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn       func(ctx context.Context, req models.LoginRequest) (models.User, error)
	profileFn     func(ctx context.Context, userID int64) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, req)
	}
	return models.User{Login: req.Login, Name: req.Name, Role: models.RoleCustomer}, nil
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, req)
	}
	return models.User{Login: req.Login, Role: models.RoleCustomer}, nil
}

func (m *mockAuthService) Profile(ctx context.Context, userID int64) (models.User, error) {
	if m.profileFn != nil {
		return m.profileFn(ctx, userID)
	}
	return models.User{UserID: userID, Role: models.RoleCustomer}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "signed-token", UserID: user.UserID, Role: user.Role}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{SignedString: tokenString, UserID: 1, Role: models.RoleCustomer}, nil
}

// ─────────────────────────────────────────────
// Mock: service.MenuService
// ─────────────────────────────────────────────

type mockMenuService struct {
	listCategoriesFn func(ctx context.Context) ([]models.Category, error)
	createCategoryFn func(ctx context.Context, category models.Category) (models.Category, error)
	updateCategoryFn func(ctx context.Context, category models.Category) (models.Category, error)
	deleteCategoryFn func(ctx context.Context, categoryID int64) error
	listMenuFn       func(ctx context.Context, filter models.MenuFilter) ([]models.MenuItem, error)
	getItemFn        func(ctx context.Context, menuItemID int64) (models.MenuItem, error)
	createItemFn     func(ctx context.Context, item models.MenuItem) (models.MenuItem, error)
	updateItemFn     func(ctx context.Context, item models.MenuItem) (models.MenuItem, error)
	deleteItemFn     func(ctx context.Context, menuItemID int64) error
}

func (m *mockMenuService) ListCategories(ctx context.Context) ([]models.Category, error) {
	if m.listCategoriesFn != nil {
		return m.listCategoriesFn(ctx)
	}
	return nil, nil
}

func (m *mockMenuService) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	if m.createCategoryFn != nil {
		return m.createCategoryFn(ctx, category)
	}
	return category, nil
}

func (m *mockMenuService) UpdateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	if m.updateCategoryFn != nil {
		return m.updateCategoryFn(ctx, category)
	}
	return category, nil
}

func (m *mockMenuService) DeleteCategory(ctx context.Context, categoryID int64) error {
	if m.deleteCategoryFn != nil {
		return m.deleteCategoryFn(ctx, categoryID)
	}
	return nil
}

func (m *mockMenuService) ListMenu(ctx context.Context, filter models.MenuFilter) ([]models.MenuItem, error) {
	if m.listMenuFn != nil {
		return m.listMenuFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockMenuService) GetMenuItem(ctx context.Context, menuItemID int64) (models.MenuItem, error) {
	if m.getItemFn != nil {
		return m.getItemFn(ctx, menuItemID)
	}
	return models.MenuItem{MenuItemID: menuItemID}, nil
}

func (m *mockMenuService) CreateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	if m.createItemFn != nil {
		return m.createItemFn(ctx, item)
	}
	return item, nil
}

func (m *mockMenuService) UpdateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	if m.updateItemFn != nil {
		return m.updateItemFn(ctx, item)
	}
	return item, nil
}

func (m *mockMenuService) DeleteMenuItem(ctx context.Context, menuItemID int64) error {
	if m.deleteItemFn != nil {
		return m.deleteItemFn(ctx, menuItemID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: service.CartService
// ─────────────────────────────────────────────

type mockCartService struct {
	getCartFn   func(ctx context.Context, userID int64) (models.Cart, error)
	addItemFn   func(ctx context.Context, userID int64, req models.AddCartItemRequest) (models.Cart, error)
	setItemFn   func(ctx context.Context, userID int64, req models.SetCartItemRequest) (models.Cart, error)
	clearCartFn func(ctx context.Context, userID int64) error
}

func (m *mockCartService) GetCart(ctx context.Context, userID int64) (models.Cart, error) {
	if m.getCartFn != nil {
		return m.getCartFn(ctx, userID)
	}
	return models.Cart{UserID: userID}, nil
}

func (m *mockCartService) AddItem(ctx context.Context, userID int64, req models.AddCartItemRequest) (models.Cart, error) {
	if m.addItemFn != nil {
		return m.addItemFn(ctx, userID, req)
	}
	return models.Cart{UserID: userID}, nil
}

func (m *mockCartService) SetItem(ctx context.Context, userID int64, req models.SetCartItemRequest) (models.Cart, error) {
	if m.setItemFn != nil {
		return m.setItemFn(ctx, userID, req)
	}
	return models.Cart{UserID: userID}, nil
}

func (m *mockCartService) ClearCart(ctx context.Context, userID int64) error {
	if m.clearCartFn != nil {
		return m.clearCartFn(ctx, userID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: service.OrderService
// ─────────────────────────────────────────────

type mockOrderService struct {
	checkoutFn      func(ctx context.Context, userID int64, req models.CheckoutRequest) (models.Order, error)
	getOrderFn      func(ctx context.Context, orderID int64) (models.Order, error)
	getByNumberFn   func(ctx context.Context, orderNumber string) (models.Order, error)
	listOrdersFn    func(ctx context.Context, filter models.OrderFilter) ([]models.Order, error)
	updateStatusFn  func(ctx context.Context, orderID int64, next models.OrderStatus, updatedBy int64, notes string) (models.Order, error)
	statusHistoryFn func(ctx context.Context, orderID int64) ([]models.OrderStatusUpdate, error)
}

func (m *mockOrderService) Checkout(ctx context.Context, userID int64, req models.CheckoutRequest) (models.Order, error) {
	if m.checkoutFn != nil {
		return m.checkoutFn(ctx, userID, req)
	}
	return models.Order{UserID: userID}, nil
}

func (m *mockOrderService) GetOrder(ctx context.Context, orderID int64) (models.Order, error) {
	if m.getOrderFn != nil {
		return m.getOrderFn(ctx, orderID)
	}
	return models.Order{OrderID: orderID}, nil
}

func (m *mockOrderService) GetOrderByNumber(ctx context.Context, orderNumber string) (models.Order, error) {
	if m.getByNumberFn != nil {
		return m.getByNumberFn(ctx, orderNumber)
	}
	return models.Order{OrderNumber: orderNumber}, nil
}

func (m *mockOrderService) ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	if m.listOrdersFn != nil {
		return m.listOrdersFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockOrderService) UpdateStatus(ctx context.Context, orderID int64, next models.OrderStatus, updatedBy int64, notes string) (models.Order, error) {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, orderID, next, updatedBy, notes)
	}
	return models.Order{OrderID: orderID, Status: next}, nil
}

func (m *mockOrderService) StatusHistory(ctx context.Context, orderID int64) ([]models.OrderStatusUpdate, error) {
	if m.statusHistoryFn != nil {
		return m.statusHistoryFn(ctx, orderID)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: service.KitchenService
// ─────────────────────────────────────────────

type mockKitchenService struct {
	ticketsFn func(ctx context.Context) ([]models.KitchenTicket, error)
	summaryFn func(ctx context.Context) (models.KitchenSummary, error)
}

func (m *mockKitchenService) Tickets(ctx context.Context) ([]models.KitchenTicket, error) {
	if m.ticketsFn != nil {
		return m.ticketsFn(ctx)
	}
	return nil, nil
}

func (m *mockKitchenService) Summary(ctx context.Context) (models.KitchenSummary, error) {
	if m.summaryFn != nil {
		return m.summaryFn(ctx)
	}
	return models.KitchenSummary{}, nil
}

// ─────────────────────────────────────────────
// Mock: service.MealPassService
// ─────────────────────────────────────────────

type mockMealPassService struct {
	listPlansFn func(ctx context.Context) ([]models.MealPass, error)
	purchaseFn  func(ctx context.Context, userID int64, passID string, payment models.PaymentMethod) (models.MealPassSubscription, error)
	dashboardFn func(ctx context.Context, userID int64) (models.MealPassSubscription, []models.MealPassUsage, error)
	listSubsFn  func(ctx context.Context, userID int64) ([]models.MealPassSubscription, error)
	redeemFn    func(ctx context.Context, userID int64, orderID int64) (models.RedeemMealPassResponse, error)
}

func (m *mockMealPassService) ListPlans(ctx context.Context) ([]models.MealPass, error) {
	if m.listPlansFn != nil {
		return m.listPlansFn(ctx)
	}
	return nil, nil
}

func (m *mockMealPassService) Purchase(ctx context.Context, userID int64, passID string, payment models.PaymentMethod) (models.MealPassSubscription, error) {
	if m.purchaseFn != nil {
		return m.purchaseFn(ctx, userID, passID, payment)
	}
	return models.MealPassSubscription{UserID: userID, PassID: passID}, nil
}

func (m *mockMealPassService) Dashboard(ctx context.Context, userID int64) (models.MealPassSubscription, []models.MealPassUsage, error) {
	if m.dashboardFn != nil {
		return m.dashboardFn(ctx, userID)
	}
	return models.MealPassSubscription{UserID: userID}, nil, nil
}

func (m *mockMealPassService) ListSubscriptions(ctx context.Context, userID int64) ([]models.MealPassSubscription, error) {
	if m.listSubsFn != nil {
		return m.listSubsFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockMealPassService) Redeem(ctx context.Context, userID int64, orderID int64) (models.RedeemMealPassResponse, error) {
	if m.redeemFn != nil {
		return m.redeemFn(ctx, userID, orderID)
	}
	return models.RedeemMealPassResponse{}, nil
}

// ─────────────────────────────────────────────
// Mock: service.ReservationService
// ─────────────────────────────────────────────

type mockReservationService struct {
	listTablesFn   func(ctx context.Context) ([]models.Table, error)
	availabilityFn func(ctx context.Context, date, timeSlot string, partySize int) ([]models.Table, error)
	createFn       func(ctx context.Context, userID int64, req models.CreateReservationRequest) (models.TableReservation, error)
	getByCodeFn    func(ctx context.Context, confirmationCode string) (models.TableReservation, error)
	listForDateFn  func(ctx context.Context, date string) ([]models.TableReservation, error)
	updateStatusFn func(ctx context.Context, confirmationCode string, next models.ReservationStatus) (models.TableReservation, error)
}

func (m *mockReservationService) ListTables(ctx context.Context) ([]models.Table, error) {
	if m.listTablesFn != nil {
		return m.listTablesFn(ctx)
	}
	return nil, nil
}

func (m *mockReservationService) Availability(ctx context.Context, date, timeSlot string, partySize int) ([]models.Table, error) {
	if m.availabilityFn != nil {
		return m.availabilityFn(ctx, date, timeSlot, partySize)
	}
	return nil, nil
}

func (m *mockReservationService) CreateReservation(ctx context.Context, userID int64, req models.CreateReservationRequest) (models.TableReservation, error) {
	if m.createFn != nil {
		return m.createFn(ctx, userID, req)
	}
	return models.TableReservation{UserID: userID, TableID: req.TableID}, nil
}

func (m *mockReservationService) GetByCode(ctx context.Context, confirmationCode string) (models.TableReservation, error) {
	if m.getByCodeFn != nil {
		return m.getByCodeFn(ctx, confirmationCode)
	}
	return models.TableReservation{ConfirmationCode: confirmationCode}, nil
}

func (m *mockReservationService) ListForDate(ctx context.Context, date string) ([]models.TableReservation, error) {
	if m.listForDateFn != nil {
		return m.listForDateFn(ctx, date)
	}
	return nil, nil
}

func (m *mockReservationService) UpdateStatus(ctx context.Context, confirmationCode string, next models.ReservationStatus) (models.TableReservation, error) {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, confirmationCode, next)
	}
	return models.TableReservation{ConfirmationCode: confirmationCode, Status: next}, nil
}

// ─────────────────────────────────────────────
// Mock: service.ScheduleService
// ─────────────────────────────────────────────

type mockScheduleService struct {
	createProfileFn     func(ctx context.Context, profile models.StaffProfile) (models.StaffProfile, error)
	listProfilesFn      func(ctx context.Context, activeOnly bool) ([]models.StaffProfile, error)
	createTemplateFn    func(ctx context.Context, template models.ShiftTemplate) (models.ShiftTemplate, error)
	listTemplatesFn     func(ctx context.Context, activeOnly bool) ([]models.ShiftTemplate, error)
	createShiftFn       func(ctx context.Context, shift models.Shift) (models.Shift, error)
	listShiftsFn        func(ctx context.Context, profileID int64, fromDate, toDate string) ([]models.Shift, error)
	listShiftsForUserFn func(ctx context.Context, userID int64, fromDate, toDate string) ([]models.Shift, error)
	updateStatusFn      func(ctx context.Context, shiftID string, status models.ShiftStatus) error
	publishDayFn        func(ctx context.Context, date string) (int64, error)
	laborCostFn         func(ctx context.Context, fromDate, toDate string) (int64, error)
}

func (m *mockScheduleService) CreateProfile(ctx context.Context, profile models.StaffProfile) (models.StaffProfile, error) {
	if m.createProfileFn != nil {
		return m.createProfileFn(ctx, profile)
	}
	return profile, nil
}

func (m *mockScheduleService) ListProfiles(ctx context.Context, activeOnly bool) ([]models.StaffProfile, error) {
	if m.listProfilesFn != nil {
		return m.listProfilesFn(ctx, activeOnly)
	}
	return nil, nil
}

func (m *mockScheduleService) CreateTemplate(ctx context.Context, template models.ShiftTemplate) (models.ShiftTemplate, error) {
	if m.createTemplateFn != nil {
		return m.createTemplateFn(ctx, template)
	}
	return template, nil
}

func (m *mockScheduleService) ListTemplates(ctx context.Context, activeOnly bool) ([]models.ShiftTemplate, error) {
	if m.listTemplatesFn != nil {
		return m.listTemplatesFn(ctx, activeOnly)
	}
	return nil, nil
}

func (m *mockScheduleService) CreateShift(ctx context.Context, shift models.Shift) (models.Shift, error) {
	if m.createShiftFn != nil {
		return m.createShiftFn(ctx, shift)
	}
	return shift, nil
}

func (m *mockScheduleService) ListShifts(ctx context.Context, profileID int64, fromDate, toDate string) ([]models.Shift, error) {
	if m.listShiftsFn != nil {
		return m.listShiftsFn(ctx, profileID, fromDate, toDate)
	}
	return nil, nil
}

func (m *mockScheduleService) ListShiftsForUser(ctx context.Context, userID int64, fromDate, toDate string) ([]models.Shift, error) {
	if m.listShiftsForUserFn != nil {
		return m.listShiftsForUserFn(ctx, userID, fromDate, toDate)
	}
	return nil, nil
}

func (m *mockScheduleService) UpdateShiftStatus(ctx context.Context, shiftID string, status models.ShiftStatus) error {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, shiftID, status)
	}
	return nil
}

func (m *mockScheduleService) PublishDay(ctx context.Context, date string) (int64, error) {
	if m.publishDayFn != nil {
		return m.publishDayFn(ctx, date)
	}
	return 0, nil
}

func (m *mockScheduleService) LaborCost(ctx context.Context, fromDate, toDate string) (int64, error) {
	if m.laborCostFn != nil {
		return m.laborCostFn(ctx, fromDate, toDate)
	}
	return 0, nil
}

// ─────────────────────────────────────────────
// Mock: service.AnalyticsService
// ─────────────────────────────────────────────

type mockAnalyticsService struct {
	dailyStatsFn      func(ctx context.Context, date string) (models.DailyStats, error)
	topItemsFn        func(ctx context.Context, fromDate, toDate string, limit uint64) ([]models.TopMenuItem, error)
	statusBreakdownFn func(ctx context.Context, fromDate, toDate string) ([]models.StatusBreakdown, error)
}

func (m *mockAnalyticsService) DailyStats(ctx context.Context, date string) (models.DailyStats, error) {
	if m.dailyStatsFn != nil {
		return m.dailyStatsFn(ctx, date)
	}
	return models.DailyStats{Date: date}, nil
}

func (m *mockAnalyticsService) TopItems(ctx context.Context, fromDate, toDate string, limit uint64) ([]models.TopMenuItem, error) {
	if m.topItemsFn != nil {
		return m.topItemsFn(ctx, fromDate, toDate, limit)
	}
	return nil, nil
}

func (m *mockAnalyticsService) StatusBreakdown(ctx context.Context, fromDate, toDate string) ([]models.StatusBreakdown, error) {
	if m.statusBreakdownFn != nil {
		return m.statusBreakdownFn(ctx, fromDate, toDate)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: database pinger
// ─────────────────────────────────────────────

type mockPinger struct {
	err error
}

func (m *mockPinger) PingContext(ctx context.Context) error { return m.err }
