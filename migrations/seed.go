package migrations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Demo dataset loaded when SEED_DEMO_DATA is enabled. Every statement is an
// upsert keyed on a unique column, so re-running the seed on restart is safe.
var seedStatements = []string{
	`INSERT INTO categories (name, description, sort_order) VALUES
        ('Appetizers', 'Small plates to start', 1),
        ('Mains', 'Signature dishes', 2),
        ('Desserts', 'Sweet endings', 3),
        ('Drinks', 'Hot and cold beverages', 4)
    ON CONFLICT (name) DO NOTHING;`,

	`INSERT INTO menu_items (category_id, name, description, price_cents, available, prep_minutes, dietary_tags) VALUES
        ((SELECT category_id FROM categories WHERE name = 'Appetizers'), 'Spring Rolls', 'Crispy vegetable rolls with sweet chili dip', 650, TRUE, 10, '["vegetarian"]'),
        ((SELECT category_id FROM categories WHERE name = 'Appetizers'), 'Tom Yum Soup', 'Hot and sour shrimp soup', 850, TRUE, 12, '["gluten-free"]'),
        ((SELECT category_id FROM categories WHERE name = 'Mains'), 'Pad Thai', 'Rice noodles with tamarind, peanuts and lime', 1250, TRUE, 15, '[]'),
        ((SELECT category_id FROM categories WHERE name = 'Mains'), 'Green Curry', 'Coconut green curry with jasmine rice', 1450, TRUE, 20, '["gluten-free"]'),
        ((SELECT category_id FROM categories WHERE name = 'Mains'), 'Grilled Salmon', 'Salmon fillet with seasonal vegetables', 1850, TRUE, 25, '["gluten-free"]'),
        ((SELECT category_id FROM categories WHERE name = 'Desserts'), 'Mango Sticky Rice', 'Sweet coconut rice with fresh mango', 750, TRUE, 8, '["vegetarian","gluten-free"]'),
        ((SELECT category_id FROM categories WHERE name = 'Drinks'), 'Thai Iced Tea', 'Sweet spiced tea with condensed milk', 450, TRUE, 5, '["vegetarian"]')
    ON CONFLICT (name) DO NOTHING;`,

	`INSERT INTO meal_passes (pass_id, name, tier, description, price_cents, duration_days, meals_per_period, discount_percent) VALUES
        ('weekly-lunch', 'Weekly Lunch Pass', 'weekly', '5 lunches per week', 4999, 7, 5, 10),
        ('monthly-standard', 'Monthly Standard', 'monthly', '20 meals per month', 17999, 30, 20, 15),
        ('super-special', 'Super Special', 'super_special', '60 meals, best value', 44999, 30, 60, 25)
    ON CONFLICT (pass_id) DO NOTHING;`,

	`INSERT INTO tables (table_number, capacity, type, location, min_party_size, max_party_size) VALUES
        ('T1', 2, 'standard', 'Window', 1, 2),
        ('T2', 2, 'standard', 'Window', 1, 2),
        ('T3', 4, 'standard', 'Main hall', 2, 4),
        ('T4', 4, 'booth', 'Main hall', 2, 4),
        ('T5', 6, 'booth', 'Main hall', 3, 6),
        ('T6', 8, 'private', 'Back room', 4, 8),
        ('T7', 4, 'outdoor', 'Terrace', 1, 4),
        ('T8', 2, 'bar', 'Bar', 1, 2)
    ON CONFLICT (table_number) DO NOTHING;`,

	`INSERT INTO shift_templates (name, start_time, end_time, break_minutes) VALUES
        ('Morning', '08:00', '16:00', 30),
        ('Evening', '16:00', '00:00', 30),
        ('Split Lunch', '11:00', '15:00', 0)
    ON CONFLICT DO NOTHING;`,
}

// Seed loads the demo dataset inside one transaction.
func Seed(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("seed error: db is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed error beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range seedStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("seed error: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed error committing transaction: %w", err)
	}

	return nil
}
