package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Cheertaboi/storefront-checkout/internal/cart"
	"github.com/Cheertaboi/storefront-checkout/internal/catalog"
	"github.com/Cheertaboi/storefront-checkout/internal/models"
	"github.com/Cheertaboi/storefront-checkout/internal/store"
	logx "github.com/Cheertaboi/storefront-checkout/pkg/logger"
)

type CartService struct {
	carts store.Store[models.Cart]
	locks stripedLock
}

func NewCartService(carts store.Store[models.Cart]) *CartService {
	return &CartService{carts: carts}
}

func (s *CartService) Create(ctx context.Context) (models.Cart, error) {
	c := cart.New(uuid.NewString())
	if err := s.carts.Put(ctx, c.ID(), c.Model()); err != nil {
		return models.Cart{}, fmt.Errorf("store cart: %w", err)
	}
	logx.Debug().Str("cartID", c.ID()).Msg("cart created")
	return c.Model(), nil
}

func (s *CartService) Get(ctx context.Context, id string) (models.Cart, error) {
	c, err := s.load(ctx, id)
	if err != nil {
		return models.Cart{}, err
	}
	return c.Model(), nil
}

func (s *CartService) Snapshot(ctx context.Context, id string) (models.CartSnapshot, error) {
	c, err := s.load(ctx, id)
	if err != nil {
		return models.CartSnapshot{}, err
	}
	return c.Snapshot(), nil
}

func (s *CartService) AddItem(ctx context.Context, id string, productID int) (models.Cart, error) {
	p, ok := catalog.Get(productID)
	if !ok {
		return models.Cart{}, ErrProductNotFound
	}
	return s.update(ctx, id, func(c *cart.Cart) error {
		c.Add(p)
		return nil
	})
}

func (s *CartService) UpdateQuantity(ctx context.Context, id string, productID, qty int) (models.Cart, error) {
	return s.update(ctx, id, func(c *cart.Cart) error {
		if !c.UpdateQuantity(productID, qty) {
			return ErrItemNotInCart
		}
		return nil
	})
}

func (s *CartService) RemoveItem(ctx context.Context, id string, productID int) (models.Cart, error) {
	return s.update(ctx, id, func(c *cart.Cart) error {
		if !c.Remove(productID) {
			return ErrItemNotInCart
		}
		return nil
	})
}

func (s *CartService) Clear(ctx context.Context, id string) (models.Cart, error) {
	return s.update(ctx, id, func(c *cart.Cart) error {
		c.Clear()
		return nil
	})
}

func (s *CartService) load(ctx context.Context, id string) (*cart.Cart, error) {
	m, err := s.carts.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return cart.From(m), nil
}

func (s *CartService) update(ctx context.Context, id string, fn func(*cart.Cart) error) (models.Cart, error) {
	defer s.locks.lock(id)()

	c, err := s.load(ctx, id)
	if err != nil {
		return models.Cart{}, err
	}
	if err := fn(c); err != nil {
		return models.Cart{}, err
	}
	if err := s.carts.Put(ctx, id, c.Model()); err != nil {
		return models.Cart{}, fmt.Errorf("store cart: %w", err)
	}
	return c.Model(), nil
}
