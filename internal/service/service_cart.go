package service

import (
	"context"
	"fmt"

	"github.com/dinehall/dinehall/internal/logger"
	"github.com/dinehall/dinehall/internal/store"
	"github.com/dinehall/dinehall/models"
)

// cartService is the concrete implementation of CartService. Adding a line
// snapshots the item's name and price from the live menu so the cart stays
// stable if the menu changes; checkout re-validates everything.
type cartService struct {
	cartRepository store.CartRepository
	menuRepository store.MenuRepository
	logger         *logger.Logger
}

// NewCartService constructs a CartService over the given repositories.
func NewCartService(cartRepository store.CartRepository, menuRepository store.MenuRepository, logger *logger.Logger) CartService {
	return &cartService{
		cartRepository: cartRepository,
		menuRepository: menuRepository,
		logger:         logger,
	}
}

func (c *cartService) GetCart(ctx context.Context, userID int64) (models.Cart, error) {
	cart, err := c.cartRepository.GetCart(ctx, userID)
	if err != nil {
		return models.Cart{}, fmt.Errorf("cart lookup failed: %w", err)
	}
	return cart, nil
}

// AddItem puts a menu item into the cart, merging quantities when the line
// already exists. The item must exist and be currently available.
func (c *cartService) AddItem(ctx context.Context, userID int64, req models.AddCartItemRequest) (models.Cart, error) {
	log := logger.FromContext(ctx)

	if req.MenuItemID <= 0 || req.Quantity <= 0 {
		log.Error().Int64("menu_item_id", req.MenuItemID).Int("qty", req.Quantity).Msg("invalid cart item data provided")
		return models.Cart{}, ErrInvalidDataProvided
	}

	item, err := c.menuRepository.GetMenuItem(ctx, req.MenuItemID)
	if err != nil {
		log.Err(err).Int64("menu_item_id", req.MenuItemID).Msg("menu item lookup failed")
		return models.Cart{}, ErrItemUnavailable
	}
	if !item.Available {
		return models.Cart{}, ErrItemUnavailable
	}

	cart, err := c.cartRepository.GetCart(ctx, userID)
	if err != nil {
		return models.Cart{}, fmt.Errorf("cart lookup failed: %w", err)
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].MenuItemID == req.MenuItemID {
			cart.Items[i].Quantity += req.Quantity
			if req.Notes != "" {
				cart.Items[i].Notes = req.Notes
			}
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, models.CartItem{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			PriceCents: item.PriceCents,
			Quantity:   req.Quantity,
			Notes:      req.Notes,
		})
	}

	return c.save(ctx, cart)
}

// SetItem sets the quantity of an existing cart line; zero removes it.
func (c *cartService) SetItem(ctx context.Context, userID int64, req models.SetCartItemRequest) (models.Cart, error) {
	log := logger.FromContext(ctx)

	if req.MenuItemID <= 0 || req.Quantity < 0 {
		log.Error().Int64("menu_item_id", req.MenuItemID).Int("qty", req.Quantity).Msg("invalid cart item data provided")
		return models.Cart{}, ErrInvalidDataProvided
	}

	cart, err := c.cartRepository.GetCart(ctx, userID)
	if err != nil {
		return models.Cart{}, fmt.Errorf("cart lookup failed: %w", err)
	}

	found := false
	lines := cart.Items[:0]
	for _, line := range cart.Items {
		if line.MenuItemID == req.MenuItemID {
			found = true
			if req.Quantity == 0 {
				continue
			}
			line.Quantity = req.Quantity
		}
		lines = append(lines, line)
	}
	if !found {
		log.Error().Int64("menu_item_id", req.MenuItemID).Msg("cart line not found")
		return models.Cart{}, ErrCartItemNotFound
	}
	cart.Items = lines

	return c.save(ctx, cart)
}

func (c *cartService) ClearCart(ctx context.Context, userID int64) error {
	if err := c.cartRepository.ClearCart(ctx, userID); err != nil {
		return fmt.Errorf("clearing cart failed: %w", err)
	}
	return nil
}

func (c *cartService) save(ctx context.Context, cart models.Cart) (models.Cart, error) {
	cart.ItemsTotalCents = cart.Total()
	if err := c.cartRepository.SaveCart(ctx, cart); err != nil {
		return models.Cart{}, fmt.Errorf("saving cart failed: %w", err)
	}
	return cart, nil
}
