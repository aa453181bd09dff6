package service

import (
	"context"
	"fmt"

	"github.com/dinehall/dinehall/internal/logger"
	"github.com/dinehall/dinehall/internal/store"
	"github.com/dinehall/dinehall/models"
)

// menuService is the concrete implementation of MenuService. It validates
// input and delegates persistence to the MenuRepository.
type menuService struct {
	menuRepository store.MenuRepository
	logger         *logger.Logger
}

// NewMenuService constructs a MenuService over the given repository.
func NewMenuService(menuRepository store.MenuRepository, logger *logger.Logger) MenuService {
	return &menuService{
		menuRepository: menuRepository,
		logger:         logger,
	}
}

func (m *menuService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := m.menuRepository.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing categories failed: %w", err)
	}
	return categories, nil
}

func (m *menuService) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	if category.Name == "" {
		log.Error().Msg("category name is required")
		return models.Category{}, ErrInvalidDataProvided
	}

	created, err := m.menuRepository.CreateCategory(ctx, category)
	if err != nil {
		return models.Category{}, fmt.Errorf("category creation failed: %w", err)
	}
	return created, nil
}

func (m *menuService) UpdateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	if category.CategoryID <= 0 || category.Name == "" {
		log.Error().Int64("category_id", category.CategoryID).Msg("invalid category data provided")
		return models.Category{}, ErrInvalidDataProvided
	}

	updated, err := m.menuRepository.UpdateCategory(ctx, category)
	if err != nil {
		return models.Category{}, fmt.Errorf("category update failed: %w", err)
	}
	return updated, nil
}

func (m *menuService) DeleteCategory(ctx context.Context, categoryID int64) error {
	if categoryID <= 0 {
		return ErrInvalidDataProvided
	}
	if err := m.menuRepository.DeleteCategory(ctx, categoryID); err != nil {
		return fmt.Errorf("category deletion failed: %w", err)
	}
	return nil
}

func (m *menuService) ListMenu(ctx context.Context, filter models.MenuFilter) ([]models.MenuItem, error) {
	items, err := m.menuRepository.ListMenuItems(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing menu items failed: %w", err)
	}
	return items, nil
}

func (m *menuService) GetMenuItem(ctx context.Context, menuItemID int64) (models.MenuItem, error) {
	if menuItemID <= 0 {
		return models.MenuItem{}, ErrInvalidDataProvided
	}
	item, err := m.menuRepository.GetMenuItem(ctx, menuItemID)
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("menu item lookup failed: %w", err)
	}
	return item, nil
}

func (m *menuService) CreateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	if err := validateMenuItem(ctx, item); err != nil {
		return models.MenuItem{}, err
	}

	created, err := m.menuRepository.CreateMenuItem(ctx, item)
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("menu item creation failed: %w", err)
	}
	return created, nil
}

func (m *menuService) UpdateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	if item.MenuItemID <= 0 {
		return models.MenuItem{}, ErrInvalidDataProvided
	}
	if err := validateMenuItem(ctx, item); err != nil {
		return models.MenuItem{}, err
	}

	updated, err := m.menuRepository.UpdateMenuItem(ctx, item)
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("menu item update failed: %w", err)
	}
	return updated, nil
}

func (m *menuService) DeleteMenuItem(ctx context.Context, menuItemID int64) error {
	if menuItemID <= 0 {
		return ErrInvalidDataProvided
	}
	if err := m.menuRepository.DeleteMenuItem(ctx, menuItemID); err != nil {
		return fmt.Errorf("menu item deletion failed: %w", err)
	}
	return nil
}

func validateMenuItem(ctx context.Context, item models.MenuItem) error {
	log := logger.FromContext(ctx)

	if item.Name == "" || item.CategoryID <= 0 || item.PriceCents <= 0 {
		log.Error().
			Str("name", item.Name).
			Int64("category_id", item.CategoryID).
			Int64("price_cents", item.PriceCents).
			Msg("invalid menu item data provided")
		return ErrInvalidDataProvided
	}
	return nil
}
