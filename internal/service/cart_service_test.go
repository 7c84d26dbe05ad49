package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

func TestCart_LazyCreate(t *testing.T) {
	s := setup(t)
	c, err := s.carts.GetCart(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", c.UserID)
	assert.NotNil(t, c.Items)
	assert.Empty(t, c.Items)
	assert.False(t, c.CreatedAt.IsZero())
}

func TestCart_MergeLaw(t *testing.T) {
	ctx := context.Background()
	s := setup(t)
	p, _ := s.products.Create(ctx, domain.Product{Name: "A", Price: 1, Stock: 10})

	_, err := s.carts.AddItem(ctx, "u1", p.ID, 1)
	require.NoError(t, err)
	c, err := s.carts.AddItem(ctx, "u1", p.ID, 2)
	require.NoError(t, err)

	require.Len(t, c.Items, 1)
	assert.Equal(t, domain.LineItem{ProductID: p.ID, Quantity: 3}, c.Items[0])
}

func TestCart_AddKeepsOrder(t *testing.T) {
	ctx := context.Background()
	s := setup(t)
	p1, _ := s.products.Create(ctx, domain.Product{Name: "A", Price: 1, Stock: 10})
	p2, _ := s.products.Create(ctx, domain.Product{Name: "B", Price: 1, Stock: 10})

	_, _ = s.carts.AddItem(ctx, "u1", p1.ID, 1)
	_, _ = s.carts.AddItem(ctx, "u1", p2.ID, 1)
	c, _ := s.carts.AddItem(ctx, "u1", p1.ID, 4)

	require.Len(t, c.Items, 2)
	assert.Equal(t, p1.ID, c.Items[0].ProductID)
	assert.Equal(t, int64(5), c.Items[0].Quantity)
	assert.Equal(t, p2.ID, c.Items[1].ProductID)
}

func TestCart_AddUnknownProduct(t *testing.T) {
	ctx := context.Background()
	s := setup(t)
	_, err := s.carts.AddItem(ctx, "u1", "missing", 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	c, _ := s.carts.GetCart(ctx, "u1")
	assert.Empty(t, c.Items)
}

func TestCart_RemoveItem(t *testing.T) {
	ctx := context.Background()
	s := setup(t)
	p, _ := s.products.Create(ctx, domain.Product{Name: "A", Price: 1, Stock: 10})
	_, _ = s.carts.AddItem(ctx, "u1", p.ID, 1)

	c, err := s.carts.RemoveItem(ctx, "u1", "not-in-cart")
	require.NoError(t, err)
	assert.Len(t, c.Items, 1)

	c, err = s.carts.RemoveItem(ctx, "u1", p.ID)
	require.NoError(t, err)
	assert.NotNil(t, c.Items)
	assert.Empty(t, c.Items)
}

func TestCart_ClearIdempotent(t *testing.T) {
	ctx := context.Background()
	s := setup(t)
	p, _ := s.products.Create(ctx, domain.Product{Name: "A", Price: 1, Stock: 10})
	first, _ := s.carts.AddItem(ctx, "u1", p.ID, 1)

	for i := 0; i < 2; i++ {
		c, err := s.carts.ClearCart(ctx, "u1")
		require.NoError(t, err)
		assert.NotNil(t, c.Items)
		assert.Empty(t, c.Items)
		assert.True(t, c.CreatedAt.Equal(first.CreatedAt))
	}

	fresh, err := s.carts.ClearCart(ctx, "never-seen")
	require.NoError(t, err)
	assert.Equal(t, "never-seen", fresh.UserID)
	assert.Empty(t, fresh.Items)
}
