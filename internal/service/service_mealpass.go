package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dinehall/dinehall/internal/logger"
	"github.com/dinehall/dinehall/internal/store"
	"github.com/dinehall/dinehall/internal/utils"
	"github.com/dinehall/dinehall/models"
)

// mealPassService is the concrete implementation of MealPassService.
type mealPassService struct {
	mealPassRepository store.MealPassRepository
	orderRepository    store.OrderRepository
	userRepository     store.UserRepository
	uuid               *utils.UUIDGenerator
	clock              Clock
	logger             *logger.Logger
}

// NewMealPassService constructs a MealPassService over the given
// repositories.
func NewMealPassService(mealPassRepository store.MealPassRepository, orderRepository store.OrderRepository, userRepository store.UserRepository, logger *logger.Logger) MealPassService {
	return &mealPassService{
		mealPassRepository: mealPassRepository,
		orderRepository:    orderRepository,
		userRepository:     userRepository,
		uuid:               utils.NewUUIDGenerator(),
		clock:              realClock{},
		logger:             logger,
	}
}

// ListPlans returns the purchasable plans. Retired plans are hidden.
func (m *mealPassService) ListPlans(ctx context.Context) ([]models.MealPass, error) {
	plans, err := m.mealPassRepository.ListPlans(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("listing meal pass plans failed: %w", err)
	}
	return plans, nil
}

// Purchase buys a plan for the user.
//
// Rules enforced here:
//   - Only cash payment is accepted.
//   - The account must have a contact phone on file.
//   - A user may hold at most one active subscription at a time.
//
// The payment reference is generated as "MP_<unix>_<userID>" since there is
// no payment gateway; cash is settled at the counter.
func (m *mealPassService) Purchase(ctx context.Context, userID int64, passID string, payment models.PaymentMethod) (models.MealPassSubscription, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 || passID == "" {
		return models.MealPassSubscription{}, ErrInvalidDataProvided
	}
	if payment != models.PaymentCash {
		return models.MealPassSubscription{}, ErrPaymentNotSupported
	}

	user, err := m.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.MealPassSubscription{}, fmt.Errorf("user lookup failed: %w", err)
	}
	if user.Phone == "" {
		log.Error().Int64("user_id", userID).Msg("meal pass purchase without a contact phone")
		return models.MealPassSubscription{}, ErrPhoneRequired
	}

	plan, err := m.mealPassRepository.GetPlan(ctx, passID)
	if err != nil {
		return models.MealPassSubscription{}, fmt.Errorf("meal pass plan lookup failed: %w", err)
	}
	if !plan.Active {
		return models.MealPassSubscription{}, ErrInvalidDataProvided
	}

	now := m.clock.Now()

	existing, err := m.mealPassRepository.GetActiveSubscription(ctx, userID)
	if err != nil && !errors.Is(err, store.ErrSubscriptionNotFound) {
		return models.MealPassSubscription{}, fmt.Errorf("active subscription lookup failed: %w", err)
	}
	if err == nil && existing.Usable(now) {
		log.Error().Int64("user_id", userID).Str("subscription_id", existing.SubscriptionID).Msg("active subscription already exists")
		return models.MealPassSubscription{}, ErrActiveSubscriptionExists
	}

	sub := models.MealPassSubscription{
		SubscriptionID: m.uuid.Generate(),
		UserID:         userID,
		PassID:         plan.PassID,
		StartDate:      now,
		EndDate:        now.Add(time.Duration(plan.DurationDays) * 24 * time.Hour),
		Status:         models.SubscriptionActive,
		MealsRemaining: plan.MealsPerPeriod,
		TotalMeals:     plan.MealsPerPeriod,
		PaymentMethod:  payment,
		PaymentID:      fmt.Sprintf("MP_%d_%d", now.Unix(), userID),
	}

	created, err := m.mealPassRepository.CreateSubscription(ctx, sub)
	if err != nil {
		if errors.Is(err, store.ErrActiveSubscriptionExists) {
			log.Error().Int64("user_id", userID).Msg("concurrent purchase lost to an existing active subscription")
			return models.MealPassSubscription{}, ErrActiveSubscriptionExists
		}
		return models.MealPassSubscription{}, fmt.Errorf("subscription creation failed: %w", err)
	}
	created.Pass = &plan

	log.Info().
		Int64("user_id", userID).
		Str("pass_id", plan.PassID).
		Str("subscription_id", created.SubscriptionID).
		Msg("meal pass purchased")

	return created, nil
}

// Dashboard returns the caller's active subscription with its plan and usage
// history attached. store.ErrSubscriptionNotFound passes through when the
// user has no active pass.
func (m *mealPassService) Dashboard(ctx context.Context, userID int64) (models.MealPassSubscription, []models.MealPassUsage, error) {
	sub, err := m.mealPassRepository.GetActiveSubscription(ctx, userID)
	if err != nil {
		return models.MealPassSubscription{}, nil, fmt.Errorf("active subscription lookup failed: %w", err)
	}

	plan, err := m.mealPassRepository.GetPlan(ctx, sub.PassID)
	if err == nil {
		sub.Pass = &plan
	}

	usage, err := m.mealPassRepository.ListUsage(ctx, sub.SubscriptionID)
	if err != nil {
		return models.MealPassSubscription{}, nil, fmt.Errorf("listing usage failed: %w", err)
	}

	return sub, usage, nil
}

func (m *mealPassService) ListSubscriptions(ctx context.Context, userID int64) ([]models.MealPassSubscription, error) {
	subs, err := m.mealPassRepository.ListSubscriptions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing subscriptions failed: %w", err)
	}
	return subs, nil
}

// Redeem applies the caller's active meal pass to one of their orders.
//
// The discount is the plan's percentage of the order's current total. The
// repository decrements meals_remaining and records the usage atomically;
// the order total is then rewritten. Redeeming someone else's order is
// rejected.
func (m *mealPassService) Redeem(ctx context.Context, userID int64, orderID int64) (models.RedeemMealPassResponse, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 || orderID <= 0 {
		return models.RedeemMealPassResponse{}, ErrInvalidDataProvided
	}

	sub, err := m.mealPassRepository.GetActiveSubscription(ctx, userID)
	if err != nil {
		return models.RedeemMealPassResponse{}, fmt.Errorf("active subscription lookup failed: %w", err)
	}

	now := m.clock.Now()
	if !sub.Usable(now) {
		return models.RedeemMealPassResponse{}, ErrSubscriptionNotUsable
	}

	plan, err := m.mealPassRepository.GetPlan(ctx, sub.PassID)
	if err != nil {
		return models.RedeemMealPassResponse{}, fmt.Errorf("meal pass plan lookup failed: %w", err)
	}

	order, err := m.orderRepository.GetOrderByID(ctx, orderID)
	if err != nil {
		return models.RedeemMealPassResponse{}, fmt.Errorf("order lookup failed: %w", err)
	}
	if order.UserID != userID {
		log.Error().Int64("user_id", userID).Int64("order_id", orderID).Msg("redeem attempted on another user's order")
		return models.RedeemMealPassResponse{}, ErrInvalidDataProvided
	}

	saved := order.TotalCents * int64(plan.DiscountPercent) / 100
	newTotal := order.TotalCents - saved

	usage := models.MealPassUsage{
		UsageID:          m.uuid.Generate(),
		SubscriptionID:   sub.SubscriptionID,
		UserID:           userID,
		OrderID:          orderID,
		AmountSavedCents: saved,
	}
	if err := m.mealPassRepository.RedeemSubscription(ctx, usage); err != nil {
		return models.RedeemMealPassResponse{}, fmt.Errorf("redeeming subscription failed: %w", err)
	}

	if err := m.orderRepository.UpdateOrderTotal(ctx, orderID, newTotal); err != nil {
		return models.RedeemMealPassResponse{}, fmt.Errorf("updating order total failed: %w", err)
	}

	log.Info().
		Str("subscription_id", sub.SubscriptionID).
		Int64("order_id", orderID).
		Int64("saved_cents", saved).
		Msg("meal pass redeemed")

	return models.RedeemMealPassResponse{
		AmountSavedCents: saved,
		NewTotalCents:    newTotal,
		MealsRemaining:   sub.MealsRemaining - 1,
	}, nil
}
