package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dinehall/dinehall/internal/logger"
	"github.com/dinehall/dinehall/models"
	"github.com/jackc/pgerrcode"
)

// mealPassRepository is the PostgreSQL-backed implementation of
// [MealPassRepository]. Plans live in "meal_passes", purchased instances in
// "meal_pass_subscriptions", and redemptions in "meal_pass_usage".
type mealPassRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMealPassRepository constructs a [MealPassRepository] backed by the
// provided database connection and logger.
func NewMealPassRepository(db *DB, logger *logger.Logger) MealPassRepository {
	logger.Debug().Msg("creating meal pass repository")
	return &mealPassRepository{
		db:     db,
		logger: logger,
	}
}

func (r *mealPassRepository) ListPlans(ctx context.Context, activeOnly bool) ([]models.MealPass, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPlansQuery(activeOnly)
	if err != nil {
		log.Err(err).Str("func", "*mealPassRepository.ListPlans").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*mealPassRepository.ListPlans").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var plans []models.MealPass
	for rows.Next() {
		var plan models.MealPass
		if err := rows.Scan(&plan.PassID, &plan.Name, &plan.Tier, &plan.Description,
			&plan.PriceCents, &plan.DurationDays, &plan.MealsPerPeriod,
			&plan.DiscountPercent, &plan.Active, &plan.CreatedAt); err != nil {
			log.Err(err).Str("func", "*mealPassRepository.ListPlans").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		plans = append(plans, plan)
	}

	return plans, rows.Err()
}

func (r *mealPassRepository) GetPlan(ctx context.Context, passID string) (models.MealPass, error) {
	log := logger.FromContext(ctx)

	var plan models.MealPass
	row := r.db.QueryRowContext(ctx, getMealPassPlan, passID)
	if err := row.Scan(&plan.PassID, &plan.Name, &plan.Tier, &plan.Description,
		&plan.PriceCents, &plan.DurationDays, &plan.MealsPerPeriod,
		&plan.DiscountPercent, &plan.Active, &plan.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MealPass{}, ErrMealPassNotFound
		}
		log.Err(err).Str("func", "*mealPassRepository.GetPlan").Msg("error: scanning error")
		return models.MealPass{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return plan, nil
}

// CreateSubscription inserts the purchased subscription. The partial unique
// index on (user_id) WHERE status = 'active' closes the race between two
// concurrent purchases by the same user.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrActiveSubscriptionExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *mealPassRepository) CreateSubscription(ctx context.Context, sub models.MealPassSubscription) (models.MealPassSubscription, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createSubscription,
		sub.SubscriptionID, sub.UserID, sub.PassID, sub.StartDate, sub.EndDate,
		sub.Status, sub.MealsRemaining, sub.TotalMeals, sub.PaymentMethod, sub.PaymentID)
	if err := row.Scan(&sub.CreatedAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.MealPassSubscription{}, ErrActiveSubscriptionExists
		}
		log.Err(err).Str("func", "*mealPassRepository.CreateSubscription").Msg("error inserting subscription")
		return models.MealPassSubscription{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return sub, nil
}

// GetActiveSubscription returns the user's most recent active subscription.
func (r *mealPassRepository) GetActiveSubscription(ctx context.Context, userID int64) (models.MealPassSubscription, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getActiveSubscription, userID)
	sub, err := scanSubscription(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MealPassSubscription{}, ErrSubscriptionNotFound
		}
		log.Err(err).Str("func", "*mealPassRepository.GetActiveSubscription").Msg("error: scanning error")
		return models.MealPassSubscription{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return sub, nil
}

func (r *mealPassRepository) ListSubscriptions(ctx context.Context, userID int64) ([]models.MealPassSubscription, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listSubscriptions, userID)
	if err != nil {
		log.Err(err).Str("func", "*mealPassRepository.ListSubscriptions").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var subs []models.MealPassSubscription
	for rows.Next() {
		sub, err := scanSubscription(rows.Scan)
		if err != nil {
			log.Err(err).Str("func", "*mealPassRepository.ListSubscriptions").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		subs = append(subs, sub)
	}

	return subs, rows.Err()
}

// RedeemSubscription decrements meals_remaining and records the usage row in
// one transaction. The decrement is conditional on the subscription still
// being active with meals left, so two concurrent redemptions of the last
// meal cannot both succeed. Transient failures get one retry of the whole
// transaction.
func (r *mealPassRepository) RedeemSubscription(ctx context.Context, usage models.MealPassUsage) error {
	return r.db.withRetry(ctx, func() error {
		return r.redeemSubscriptionOnce(ctx, usage)
	})
}

func (r *mealPassRepository) redeemSubscriptionOnce(ctx context.Context, usage models.MealPassUsage) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*mealPassRepository.RedeemSubscription").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, redeemSubscription, usage.SubscriptionID)
	if err != nil {
		log.Err(err).Str("func", "*mealPassRepository.RedeemSubscription").Msg("error executing decrement")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrSubscriptionExhausted
	}

	if _, err := tx.ExecContext(ctx, recordUsage,
		usage.UsageID, usage.SubscriptionID, usage.UserID, usage.OrderID, usage.AmountSavedCents); err != nil {
		log.Err(err).Str("func", "*mealPassRepository.RedeemSubscription").Msg("error inserting usage row")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*mealPassRepository.RedeemSubscription").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *mealPassRepository) ListUsage(ctx context.Context, subscriptionID string) ([]models.MealPassUsage, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listUsage, subscriptionID)
	if err != nil {
		log.Err(err).Str("func", "*mealPassRepository.ListUsage").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var usages []models.MealPassUsage
	for rows.Next() {
		var usage models.MealPassUsage
		if err := rows.Scan(&usage.UsageID, &usage.SubscriptionID, &usage.UserID,
			&usage.OrderID, &usage.AmountSavedCents, &usage.UsedAt); err != nil {
			log.Err(err).Str("func", "*mealPassRepository.ListUsage").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		usages = append(usages, usage)
	}

	return usages, rows.Err()
}

// ExpireSubscriptions marks active subscriptions past their end date as
// expired and returns how many were affected. Called by the expiry worker.
func (r *mealPassRepository) ExpireSubscriptions(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, expireSubscriptions, now)
	if err != nil {
		log.Err(err).Str("func", "*mealPassRepository.ExpireSubscriptions").Msg("error executing update")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return affected, nil
}

func scanSubscription(scan func(dest ...any) error) (models.MealPassSubscription, error) {
	var sub models.MealPassSubscription
	err := scan(&sub.SubscriptionID, &sub.UserID, &sub.PassID, &sub.StartDate, &sub.EndDate,
		&sub.Status, &sub.MealsRemaining, &sub.TotalMeals, &sub.PaymentMethod,
		&sub.PaymentID, &sub.CreatedAt)
	if err != nil {
		return models.MealPassSubscription{}, err
	}
	return sub, nil
}
