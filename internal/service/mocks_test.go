// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"time"

	"github.com/dinehall/dinehall/models"
)

// Hand-rolled repository mocks with overridable behaviour per test.
// A nil func field means "succeed with the zero value".

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn      func(ctx context.Context, user models.User) (models.User, error)
	findByLoginFn func(ctx context.Context, login string) (models.User, error)
	findByIDFn    func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	if m.findByLoginFn != nil {
		return m.findByLoginFn(ctx, login)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, userID)
	}
	return models.User{}, nil
}

// ─────────────────────────────────────────────
// Mock: store.ThrottleRepository
// ─────────────────────────────────────────────

type mockThrottleRepository struct {
	getFn    func(ctx context.Context, login string) (models.LoginThrottle, error)
	recordFn func(ctx context.Context, login string) (models.LoginThrottle, error)
	resetFn  func(ctx context.Context, login string) error

	recorded int
	resets   int
}

func (m *mockThrottleRepository) GetThrottle(ctx context.Context, login string) (models.LoginThrottle, error) {
	if m.getFn != nil {
		return m.getFn(ctx, login)
	}
	return models.LoginThrottle{Login: login}, nil
}

func (m *mockThrottleRepository) RecordFailure(ctx context.Context, login string) (models.LoginThrottle, error) {
	m.recorded++
	if m.recordFn != nil {
		return m.recordFn(ctx, login)
	}
	return models.LoginThrottle{Login: login, FailCount: m.recorded}, nil
}

func (m *mockThrottleRepository) ResetThrottle(ctx context.Context, login string) error {
	m.resets++
	if m.resetFn != nil {
		return m.resetFn(ctx, login)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.MenuRepository
// ─────────────────────────────────────────────

type mockMenuRepository struct {
	listCategoriesFn func(ctx context.Context) ([]models.Category, error)
	createCategoryFn func(ctx context.Context, category models.Category) (models.Category, error)
	updateCategoryFn func(ctx context.Context, category models.Category) (models.Category, error)
	deleteCategoryFn func(ctx context.Context, categoryID int64) error
	listItemsFn      func(ctx context.Context, filter models.MenuFilter) ([]models.MenuItem, error)
	getItemFn        func(ctx context.Context, menuItemID int64) (models.MenuItem, error)
	createItemFn     func(ctx context.Context, item models.MenuItem) (models.MenuItem, error)
	updateItemFn     func(ctx context.Context, item models.MenuItem) (models.MenuItem, error)
	deleteItemFn     func(ctx context.Context, menuItemID int64) error
}

func (m *mockMenuRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	if m.listCategoriesFn != nil {
		return m.listCategoriesFn(ctx)
	}
	return nil, nil
}

func (m *mockMenuRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	if m.createCategoryFn != nil {
		return m.createCategoryFn(ctx, category)
	}
	return category, nil
}

func (m *mockMenuRepository) UpdateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	if m.updateCategoryFn != nil {
		return m.updateCategoryFn(ctx, category)
	}
	return category, nil
}

func (m *mockMenuRepository) DeleteCategory(ctx context.Context, categoryID int64) error {
	if m.deleteCategoryFn != nil {
		return m.deleteCategoryFn(ctx, categoryID)
	}
	return nil
}

func (m *mockMenuRepository) ListMenuItems(ctx context.Context, filter models.MenuFilter) ([]models.MenuItem, error) {
	if m.listItemsFn != nil {
		return m.listItemsFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockMenuRepository) GetMenuItem(ctx context.Context, menuItemID int64) (models.MenuItem, error) {
	if m.getItemFn != nil {
		return m.getItemFn(ctx, menuItemID)
	}
	return models.MenuItem{}, nil
}

func (m *mockMenuRepository) CreateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	if m.createItemFn != nil {
		return m.createItemFn(ctx, item)
	}
	return item, nil
}

func (m *mockMenuRepository) UpdateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	if m.updateItemFn != nil {
		return m.updateItemFn(ctx, item)
	}
	return item, nil
}

func (m *mockMenuRepository) DeleteMenuItem(ctx context.Context, menuItemID int64) error {
	if m.deleteItemFn != nil {
		return m.deleteItemFn(ctx, menuItemID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.CartRepository
// ─────────────────────────────────────────────

type mockCartRepository struct {
	getFn   func(ctx context.Context, userID int64) (models.Cart, error)
	saveFn  func(ctx context.Context, cart models.Cart) error
	clearFn func(ctx context.Context, userID int64) error

	saved *models.Cart
}

func (m *mockCartRepository) GetCart(ctx context.Context, userID int64) (models.Cart, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID)
	}
	return models.Cart{UserID: userID}, nil
}

func (m *mockCartRepository) SaveCart(ctx context.Context, cart models.Cart) error {
	m.saved = &cart
	if m.saveFn != nil {
		return m.saveFn(ctx, cart)
	}
	return nil
}

func (m *mockCartRepository) ClearCart(ctx context.Context, userID int64) error {
	if m.clearFn != nil {
		return m.clearFn(ctx, userID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.OrderRepository
// ─────────────────────────────────────────────

type mockOrderRepository struct {
	createFn       func(ctx context.Context, order models.Order) (models.Order, error)
	getByIDFn      func(ctx context.Context, orderID int64) (models.Order, error)
	getByNumberFn  func(ctx context.Context, orderNumber string) (models.Order, error)
	listFn         func(ctx context.Context, filter models.OrderFilter) ([]models.Order, error)
	updateStatusFn func(ctx context.Context, orderID int64, from, to models.OrderStatus, updatedBy int64, notes string) error
	listHistoryFn  func(ctx context.Context, orderID int64) ([]models.OrderStatusUpdate, error)
	updateTotalFn  func(ctx context.Context, orderID int64, totalCents int64) error
	cancelStaleFn  func(ctx context.Context, cutoff time.Time) (int64, error)
}

func (m *mockOrderRepository) CreateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	if m.createFn != nil {
		return m.createFn(ctx, order)
	}
	return order, nil
}

func (m *mockOrderRepository) GetOrderByID(ctx context.Context, orderID int64) (models.Order, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, orderID)
	}
	return models.Order{}, nil
}

func (m *mockOrderRepository) GetOrderByNumber(ctx context.Context, orderNumber string) (models.Order, error) {
	if m.getByNumberFn != nil {
		return m.getByNumberFn(ctx, orderNumber)
	}
	return models.Order{}, nil
}

func (m *mockOrderRepository) ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockOrderRepository) UpdateOrderStatus(ctx context.Context, orderID int64, from, to models.OrderStatus, updatedBy int64, notes string) error {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, orderID, from, to, updatedBy, notes)
	}
	return nil
}

func (m *mockOrderRepository) ListStatusHistory(ctx context.Context, orderID int64) ([]models.OrderStatusUpdate, error) {
	if m.listHistoryFn != nil {
		return m.listHistoryFn(ctx, orderID)
	}
	return nil, nil
}

func (m *mockOrderRepository) UpdateOrderTotal(ctx context.Context, orderID int64, totalCents int64) error {
	if m.updateTotalFn != nil {
		return m.updateTotalFn(ctx, orderID, totalCents)
	}
	return nil
}

func (m *mockOrderRepository) CancelStaleOrders(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.cancelStaleFn != nil {
		return m.cancelStaleFn(ctx, cutoff)
	}
	return 0, nil
}

// ─────────────────────────────────────────────
// Mock: store.MealPassRepository
// ─────────────────────────────────────────────

type mockMealPassRepository struct {
	listPlansFn    func(ctx context.Context, activeOnly bool) ([]models.MealPass, error)
	getPlanFn      func(ctx context.Context, passID string) (models.MealPass, error)
	createSubFn    func(ctx context.Context, sub models.MealPassSubscription) (models.MealPassSubscription, error)
	getActiveSubFn func(ctx context.Context, userID int64) (models.MealPassSubscription, error)
	listSubsFn     func(ctx context.Context, userID int64) ([]models.MealPassSubscription, error)
	redeemFn       func(ctx context.Context, usage models.MealPassUsage) error
	listUsageFn    func(ctx context.Context, subscriptionID string) ([]models.MealPassUsage, error)
	expireFn       func(ctx context.Context, now time.Time) (int64, error)
}

func (m *mockMealPassRepository) ListPlans(ctx context.Context, activeOnly bool) ([]models.MealPass, error) {
	if m.listPlansFn != nil {
		return m.listPlansFn(ctx, activeOnly)
	}
	return nil, nil
}

func (m *mockMealPassRepository) GetPlan(ctx context.Context, passID string) (models.MealPass, error) {
	if m.getPlanFn != nil {
		return m.getPlanFn(ctx, passID)
	}
	return models.MealPass{}, nil
}

func (m *mockMealPassRepository) CreateSubscription(ctx context.Context, sub models.MealPassSubscription) (models.MealPassSubscription, error) {
	if m.createSubFn != nil {
		return m.createSubFn(ctx, sub)
	}
	return sub, nil
}

func (m *mockMealPassRepository) GetActiveSubscription(ctx context.Context, userID int64) (models.MealPassSubscription, error) {
	if m.getActiveSubFn != nil {
		return m.getActiveSubFn(ctx, userID)
	}
	return models.MealPassSubscription{}, nil
}

func (m *mockMealPassRepository) ListSubscriptions(ctx context.Context, userID int64) ([]models.MealPassSubscription, error) {
	if m.listSubsFn != nil {
		return m.listSubsFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockMealPassRepository) RedeemSubscription(ctx context.Context, usage models.MealPassUsage) error {
	if m.redeemFn != nil {
		return m.redeemFn(ctx, usage)
	}
	return nil
}

func (m *mockMealPassRepository) ListUsage(ctx context.Context, subscriptionID string) ([]models.MealPassUsage, error) {
	if m.listUsageFn != nil {
		return m.listUsageFn(ctx, subscriptionID)
	}
	return nil, nil
}

func (m *mockMealPassRepository) ExpireSubscriptions(ctx context.Context, now time.Time) (int64, error) {
	if m.expireFn != nil {
		return m.expireFn(ctx, now)
	}
	return 0, nil
}

// ─────────────────────────────────────────────
// Mock: store.ReservationRepository
// ─────────────────────────────────────────────

type mockReservationRepository struct {
	listTablesFn   func(ctx context.Context) ([]models.Table, error)
	getTableFn     func(ctx context.Context, tableID int64) (models.Table, error)
	createFn       func(ctx context.Context, reservation models.TableReservation) (models.TableReservation, error)
	getByCodeFn    func(ctx context.Context, confirmationCode string) (models.TableReservation, error)
	listActiveFn   func(ctx context.Context, date, timeSlot string) ([]models.TableReservation, error)
	listForDateFn  func(ctx context.Context, date string) ([]models.TableReservation, error)
	updateStatusFn func(ctx context.Context, reservationID string, from, to models.ReservationStatus) error
}

func (m *mockReservationRepository) ListTables(ctx context.Context) ([]models.Table, error) {
	if m.listTablesFn != nil {
		return m.listTablesFn(ctx)
	}
	return nil, nil
}

func (m *mockReservationRepository) GetTable(ctx context.Context, tableID int64) (models.Table, error) {
	if m.getTableFn != nil {
		return m.getTableFn(ctx, tableID)
	}
	return models.Table{}, nil
}

func (m *mockReservationRepository) CreateReservation(ctx context.Context, reservation models.TableReservation) (models.TableReservation, error) {
	if m.createFn != nil {
		return m.createFn(ctx, reservation)
	}
	return reservation, nil
}

func (m *mockReservationRepository) GetReservationByCode(ctx context.Context, confirmationCode string) (models.TableReservation, error) {
	if m.getByCodeFn != nil {
		return m.getByCodeFn(ctx, confirmationCode)
	}
	return models.TableReservation{}, nil
}

func (m *mockReservationRepository) ListActiveReservations(ctx context.Context, date, timeSlot string) ([]models.TableReservation, error) {
	if m.listActiveFn != nil {
		return m.listActiveFn(ctx, date, timeSlot)
	}
	return nil, nil
}

func (m *mockReservationRepository) ListReservationsForDate(ctx context.Context, date string) ([]models.TableReservation, error) {
	if m.listForDateFn != nil {
		return m.listForDateFn(ctx, date)
	}
	return nil, nil
}

func (m *mockReservationRepository) UpdateReservationStatus(ctx context.Context, reservationID string, from, to models.ReservationStatus) error {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, reservationID, from, to)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.ScheduleRepository
// ─────────────────────────────────────────────

type mockScheduleRepository struct {
	createProfileFn  func(ctx context.Context, profile models.StaffProfile) (models.StaffProfile, error)
	listProfilesFn   func(ctx context.Context, activeOnly bool) ([]models.StaffProfile, error)
	getProfileFn     func(ctx context.Context, userID int64) (models.StaffProfile, error)
	createTemplateFn func(ctx context.Context, template models.ShiftTemplate) (models.ShiftTemplate, error)
	listTemplatesFn  func(ctx context.Context, activeOnly bool) ([]models.ShiftTemplate, error)
	createShiftFn    func(ctx context.Context, shift models.Shift) (models.Shift, error)
	getShiftFn       func(ctx context.Context, shiftID string) (models.Shift, error)
	listShiftsFn     func(ctx context.Context, profileID int64, fromDate, toDate string) ([]models.Shift, error)
	updateStatusFn   func(ctx context.Context, shiftID string, from, to models.ShiftStatus) error
	publishFn        func(ctx context.Context, date string) (int64, error)
}

func (m *mockScheduleRepository) CreateProfile(ctx context.Context, profile models.StaffProfile) (models.StaffProfile, error) {
	if m.createProfileFn != nil {
		return m.createProfileFn(ctx, profile)
	}
	return profile, nil
}

func (m *mockScheduleRepository) ListProfiles(ctx context.Context, activeOnly bool) ([]models.StaffProfile, error) {
	if m.listProfilesFn != nil {
		return m.listProfilesFn(ctx, activeOnly)
	}
	return nil, nil
}

func (m *mockScheduleRepository) GetProfileByUserID(ctx context.Context, userID int64) (models.StaffProfile, error) {
	if m.getProfileFn != nil {
		return m.getProfileFn(ctx, userID)
	}
	return models.StaffProfile{}, nil
}

func (m *mockScheduleRepository) CreateTemplate(ctx context.Context, template models.ShiftTemplate) (models.ShiftTemplate, error) {
	if m.createTemplateFn != nil {
		return m.createTemplateFn(ctx, template)
	}
	return template, nil
}

func (m *mockScheduleRepository) ListTemplates(ctx context.Context, activeOnly bool) ([]models.ShiftTemplate, error) {
	if m.listTemplatesFn != nil {
		return m.listTemplatesFn(ctx, activeOnly)
	}
	return nil, nil
}

func (m *mockScheduleRepository) CreateShift(ctx context.Context, shift models.Shift) (models.Shift, error) {
	if m.createShiftFn != nil {
		return m.createShiftFn(ctx, shift)
	}
	return shift, nil
}

func (m *mockScheduleRepository) GetShift(ctx context.Context, shiftID string) (models.Shift, error) {
	if m.getShiftFn != nil {
		return m.getShiftFn(ctx, shiftID)
	}
	return models.Shift{}, nil
}

func (m *mockScheduleRepository) ListShifts(ctx context.Context, profileID int64, fromDate, toDate string) ([]models.Shift, error) {
	if m.listShiftsFn != nil {
		return m.listShiftsFn(ctx, profileID, fromDate, toDate)
	}
	return nil, nil
}

func (m *mockScheduleRepository) UpdateShiftStatus(ctx context.Context, shiftID string, from, to models.ShiftStatus) error {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, shiftID, from, to)
	}
	return nil
}

func (m *mockScheduleRepository) PublishShiftsForDate(ctx context.Context, date string) (int64, error) {
	if m.publishFn != nil {
		return m.publishFn(ctx, date)
	}
	return 0, nil
}

// ─────────────────────────────────────────────
// Fixed clock
// ─────────────────────────────────────────────

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }
