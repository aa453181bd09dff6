package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dinehall/dinehall/internal/logger"
	"github.com/dinehall/dinehall/models"
)

// menuRepository is the PostgreSQL-backed implementation of [MenuRepository].
// Dietary tags are stored as a JSONB array on the menu_items row.
type menuRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMenuRepository constructs a [MenuRepository] backed by the provided
// database connection and logger.
func NewMenuRepository(db *DB, logger *logger.Logger) MenuRepository {
	logger.Debug().Msg("creating menu repository")
	return &menuRepository{
		db:     db,
		logger: logger,
	}
}

func (r *menuRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listCategories)
	if err != nil {
		log.Err(err).Str("func", "*menuRepository.ListCategories").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.CategoryID, &c.Name, &c.Description, &c.SortOrder); err != nil {
			log.Err(err).Str("func", "*menuRepository.ListCategories").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (r *menuRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createCategory, category.Name, category.Description, category.SortOrder)
	if err := row.Scan(&category.CategoryID, &category.Name, &category.Description, &category.SortOrder); err != nil {
		log.Err(err).Str("func", "*menuRepository.CreateCategory").Msg("error scanning row")
		return models.Category{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return category, nil
}

func (r *menuRepository) UpdateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateCategory, category.CategoryID, category.Name, category.Description, category.SortOrder)
	if err := row.Scan(&category.CategoryID, &category.Name, &category.Description, &category.SortOrder); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Category{}, ErrCategoryNotFound
		}
		log.Err(err).Str("func", "*menuRepository.UpdateCategory").Msg("error scanning row")
		return models.Category{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return category, nil
}

func (r *menuRepository) DeleteCategory(ctx context.Context, categoryID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteCategory, categoryID)
	if err != nil {
		log.Err(err).Str("func", "*menuRepository.DeleteCategory").Msg("error executing delete")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

// ListMenuItems returns items matching the filter, ordered by category and
// name. The query is built dynamically because every filter field is
// optional.
func (r *menuRepository) ListMenuItems(ctx context.Context, filter models.MenuFilter) ([]models.MenuItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListMenuItemsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*menuRepository.ListMenuItems").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*menuRepository.ListMenuItems").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows.Scan)
		if err != nil {
			log.Err(err).Str("func", "*menuRepository.ListMenuItems").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *menuRepository) GetMenuItem(ctx context.Context, menuItemID int64) (models.MenuItem, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getMenuItem, menuItemID)
	item, err := scanMenuItem(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MenuItem{}, ErrMenuItemNotFound
		}
		log.Err(err).Str("func", "*menuRepository.GetMenuItem").Msg("error scanning row")
		return models.MenuItem{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return item, nil
}

func (r *menuRepository) CreateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	log := logger.FromContext(ctx)

	tags, err := json.Marshal(item.DietaryTags)
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("error encoding dietary tags: %w", err)
	}

	row := r.db.QueryRowContext(ctx, createMenuItem, item.CategoryID, item.Name, item.Description, item.PriceCents, item.Available, item.PrepMinutes, tags)
	created, err := scanMenuItem(row.Scan)
	if err != nil {
		log.Err(err).Str("func", "*menuRepository.CreateMenuItem").Msg("error scanning row")
		return models.MenuItem{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *menuRepository) UpdateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	log := logger.FromContext(ctx)

	tags, err := json.Marshal(item.DietaryTags)
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("error encoding dietary tags: %w", err)
	}

	row := r.db.QueryRowContext(ctx, updateMenuItem, item.MenuItemID, item.CategoryID, item.Name, item.Description, item.PriceCents, item.Available, item.PrepMinutes, tags)
	updated, err := scanMenuItem(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MenuItem{}, ErrMenuItemNotFound
		}
		log.Err(err).Str("func", "*menuRepository.UpdateMenuItem").Msg("error scanning row")
		return models.MenuItem{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

func (r *menuRepository) DeleteMenuItem(ctx context.Context, menuItemID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteMenuItem, menuItemID)
	if err != nil {
		log.Err(err).Str("func", "*menuRepository.DeleteMenuItem").Msg("error executing delete")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrMenuItemNotFound
	}

	return nil
}

// scanMenuItem reads one menu_items row; works for both sql.Row and sql.Rows
// through the scan func.
func scanMenuItem(scan func(dest ...any) error) (models.MenuItem, error) {
	var item models.MenuItem
	var tags []byte

	err := scan(&item.MenuItemID, &item.CategoryID, &item.Name, &item.Description,
		&item.PriceCents, &item.Available, &item.PrepMinutes, &tags,
		&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return models.MenuItem{}, err
	}

	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &item.DietaryTags); err != nil {
			return models.MenuItem{}, fmt.Errorf("error decoding dietary tags: %w", err)
		}
	}

	return item, nil
}
