package service

import (
	"context"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

// CartService manages per-user carts. Carts are created on first access and
// user ids are never checked against the user collection.
type CartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
	tx       repository.TxManager
}

func NewCartService(carts repository.CartRepository, products repository.ProductRepository, tx repository.TxManager) *CartService {
	return &CartService{carts: carts, products: products, tx: tx}
}

func (s *CartService) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	return s.carts.Get(ctx, userID)
}

// AddItem merges by product id: an existing line gets its quantity increased,
// otherwise a new line is appended. An unknown product yields repository.ErrNotFound
// and leaves the cart untouched.
func (s *CartService) AddItem(ctx context.Context, userID, productID string, quantity int64) (*domain.Cart, error) {
	if productID == "" || quantity == 0 {
		return nil, ErrInvalidInput
	}
	var updated *domain.Cart
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.products.GetByID(ctx, productID); err != nil {
			return err
		}
		c, err := s.carts.Get(ctx, userID)
		if err != nil {
			return err
		}
		c.Items = mergeItem(c.Items, domain.LineItem{ProductID: productID, Quantity: quantity})
		if err := s.carts.Save(ctx, c); err != nil {
			return err
		}
		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// RemoveItem drops the line for productID. A missing line is not an error.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) (*domain.Cart, error) {
	return s.mutate(ctx, userID, func(items []domain.LineItem) []domain.LineItem {
		out := make([]domain.LineItem, 0, len(items))
		for _, it := range items {
			if it.ProductID != productID {
				out = append(out, it)
			}
		}
		return out
	})
}

// ClearCart empties the items; the cart itself and its creation time remain.
func (s *CartService) ClearCart(ctx context.Context, userID string) (*domain.Cart, error) {
	return s.mutate(ctx, userID, func([]domain.LineItem) []domain.LineItem {
		return []domain.LineItem{}
	})
}

func (s *CartService) mutate(ctx context.Context, userID string, fn func([]domain.LineItem) []domain.LineItem) (*domain.Cart, error) {
	var updated *domain.Cart
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		c, err := s.carts.Get(ctx, userID)
		if err != nil {
			return err
		}
		c.Items = fn(c.Items)
		if err := s.carts.Save(ctx, c); err != nil {
			return err
		}
		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func mergeItem(items []domain.LineItem, add domain.LineItem) []domain.LineItem {
	for i := range items {
		if items[i].ProductID == add.ProductID {
			items[i].Quantity += add.Quantity
			return items
		}
	}
	return append(items, add)
}
