package services

import (
	"context"

	"pos_terminal/internal/cart"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartService owns the cart of each open order. A cart lives from Create
// until checkout succeeds or the cart is discarded.
type CartService interface {
	Create(ctx context.Context) (string, *cart.Cart, error)
	Get(ctx context.Context, cartID string) (*cart.Cart, error)
	AddItem(ctx context.Context, cartID string, itemID uint, price decimal.Decimal, qty int) (*cart.Cart, error)
	RemoveOne(ctx context.Context, cartID string, itemID uint) (*cart.Cart, error)
	RemoveAll(ctx context.Context, cartID string, itemID uint) (*cart.Cart, error)
	Clear(ctx context.Context, cartID string) (*cart.Cart, error)
	Discard(ctx context.Context, cartID string) error
}

type cartService struct {
	store          CartStore
	catalogService CatalogService
}

func NewCartService(store CartStore, catalogService CatalogService) CartService {
	return &cartService{store: store, catalogService: catalogService}
}

func (s *cartService) Create(ctx context.Context) (string, *cart.Cart, error) {
	cartID := uuid.NewString()
	c := cart.New()
	if err := s.store.Save(ctx, cartID, c); err != nil {
		return "", nil, err
	}
	return cartID, c, nil
}

func (s *cartService) Get(ctx context.Context, cartID string) (*cart.Cart, error) {
	return s.store.Load(ctx, cartID)
}

// update loads the cart, applies fn and saves the result.
func (s *cartService) update(ctx context.Context, cartID string, fn func(*cart.Cart) error) (*cart.Cart, error) {
	c, err := s.store.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if err := fn(c); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, cartID, c); err != nil {
		return nil, err
	}
	return c, nil
}

// AddItem snapshots the item's name and catalog labels at the moment it is added.
func (s *cartService) AddItem(ctx context.Context, cartID string, itemID uint, price decimal.Decimal, qty int) (*cart.Cart, error) {
	if qty <= 0 {
		return nil, ErrInvalidQuantity
	}
	if !validAmount(price) {
		return nil, ErrInvalidPrice
	}

	if _, err := s.store.Load(ctx, cartID); err != nil {
		return nil, err
	}

	item, err := s.catalogService.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	product := cart.Product{
		ItemID: item.ID,
		Name:   item.Name,
		Price:  price,
		Labels: cart.Labels{
			Category:    deref(item.CategoryName),
			Subcategory: deref(item.SubcategoryName),
		},
	}

	return s.update(ctx, cartID, func(c *cart.Cart) error {
		return c.AddItem(product, qty)
	})
}

func (s *cartService) RemoveOne(ctx context.Context, cartID string, itemID uint) (*cart.Cart, error) {
	return s.update(ctx, cartID, func(c *cart.Cart) error {
		c.RemoveOne(itemID)
		return nil
	})
}

func (s *cartService) RemoveAll(ctx context.Context, cartID string, itemID uint) (*cart.Cart, error) {
	return s.update(ctx, cartID, func(c *cart.Cart) error {
		c.RemoveAll(itemID)
		return nil
	})
}

func (s *cartService) Clear(ctx context.Context, cartID string) (*cart.Cart, error) {
	return s.update(ctx, cartID, func(c *cart.Cart) error {
		c.Clear()
		return nil
	})
}

func (s *cartService) Discard(ctx context.Context, cartID string) error {
	found, err := s.store.Delete(ctx, cartID)
	if err != nil {
		return err
	}
	if !found {
		return ErrCartNotFound
	}
	return nil
}

// validAmount reports whether d is a non-negative whole number of cents.
func validAmount(d decimal.Decimal) bool {
	return !d.IsNegative() && d.Equal(d.Round(2))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
