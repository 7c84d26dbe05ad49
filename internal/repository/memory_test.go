package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
)

func TestMemoryStore_ProductCRUD(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	p := domain.Product{Name: "A", Price: 10, Stock: 5}
	if err := store.Create(ctx, &p); err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == "" || p.CreatedAt.IsZero() {
		t.Fatalf("no id or timestamp")
	}

	got, err := store.GetByID(ctx, p.ID)
	if err != nil || got.ID != p.ID {
		t.Fatalf("get: %v", err)
	}

	p.Price = 12
	if err := store.Update(ctx, &p); err != nil {
		t.Fatalf("update: %v", err)
	}

	removed, err := store.Delete(ctx, p.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if removed.Price != 12 {
		t.Fatalf("delete returned stale record: %v", removed.Price)
	}
	if _, err := store.GetByID(ctx, p.ID); err != ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := store.Delete(ctx, p.ID); err != ErrNotFound {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	p := domain.Product{Name: "A", Price: 10, Stock: 5}
	require.NoError(t, store.Create(ctx, &p))

	got, err := store.GetByID(ctx, p.ID)
	require.NoError(t, err)
	got.Stock = 0

	again, err := store.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), again.Stock)
}

func TestList_InsertionOrderAndFiltering(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	add := func(n, cat string, price float64) {
		p := domain.Product{Name: n, Category: cat, Price: price, Stock: 1}
		require.NoError(t, store.Create(ctx, &p))
	}
	add("Aspirin", "Health", 100)
	add("Paracetamol", "Health", 50)
	add("Ibuprofen", "Pain", 150)

	list, err := store.List(ctx, ProductFilter{})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"Aspirin", "Paracetamol", "Ibuprofen"}, []string{list[0].Name, list[1].Name, list[2].Name})

	list, _ = store.List(ctx, ProductFilter{NameSubstring: "in"})
	assert.Len(t, list, 1)

	list, _ = store.List(ctx, ProductFilter{Category: "health"})
	assert.Len(t, list, 2)

	min := 100.0
	list, _ = store.List(ctx, ProductFilter{MinPrice: &min})
	for _, p := range list {
		assert.GreaterOrEqual(t, p.Price, min)
	}

	max := 100.0
	list, _ = store.List(ctx, ProductFilter{MaxPrice: &max})
	for _, p := range list {
		assert.LessOrEqual(t, p.Price, max)
	}
}

func TestMemoryOrders_ListByUser(t *testing.T) {
	ctx := context.Background()
	orders := NewMemoryOrders(NewMemoryStore())

	for _, uid := range []string{"u1", "u2", "u1"} {
		o := domain.Order{UserID: uid, Status: domain.OrderStatusPending}
		require.NoError(t, orders.Create(ctx, &o))
	}

	mine, err := orders.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	none, err := orders.ListByUser(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	all, _ := orders.List(ctx)
	assert.Len(t, all, 3)
}

func TestMemoryOrders_UpdateKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	orders := NewMemoryOrders(NewMemoryStore())
	o := domain.Order{UserID: "u1", Status: domain.OrderStatusPending}
	require.NoError(t, orders.Create(ctx, &o))
	created := o.CreatedAt

	o.Status = domain.OrderStatusShipped
	o.CreatedAt = created.Add(-1)
	require.NoError(t, orders.Update(ctx, &o))

	got, err := orders.GetByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusShipped, got.Status)
	assert.True(t, got.CreatedAt.Equal(created))

	missing := domain.Order{ID: "nope"}
	assert.ErrorIs(t, orders.Update(ctx, &missing), ErrNotFound)
}

func TestMemoryUsers_GetByEmail(t *testing.T) {
	ctx := context.Background()
	users := NewMemoryUsers(NewMemoryStore())
	u := domain.User{Email: "a@example.com", Name: "A"}
	require.NoError(t, users.Create(ctx, &u))

	got, err := users.GetByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = users.GetByEmail(ctx, "b@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCarts_LazyCreate(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	carts := NewMemoryCarts(store)

	c, err := carts.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", c.UserID)
	assert.NotNil(t, c.Items)
	assert.Empty(t, c.Items)
	created := c.CreatedAt

	c.Items = append(c.Items, domain.LineItem{ProductID: "p1", Quantity: 1})
	require.NoError(t, carts.Save(ctx, c))

	again, err := carts.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, again.Items, 1)
	assert.True(t, again.CreatedAt.Equal(created))
	assert.Equal(t, 1, store.Counts(ctx).Carts)
}

func TestMemoryTx_Nested(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	tx := NewMemoryTx(store)

	err := tx.WithTransaction(ctx, func(ctx context.Context) error {
		p := domain.Product{Name: "A", Price: 1, Stock: 1}
		if err := store.Create(ctx, &p); err != nil {
			return err
		}
		return tx.WithTransaction(ctx, func(ctx context.Context) error {
			_, err := store.GetByID(ctx, p.ID)
			return err
		})
	})
	require.NoError(t, err)
	assert.Equal(t, 1, store.Counts(ctx).Products)
}

func TestMemoryStore_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p := domain.Product{Name: "P", Price: 1, Stock: 1}
			_ = store.Create(ctx, &p)
		}()
	}
	wg.Wait()

	list, err := store.List(ctx, ProductFilter{})
	require.NoError(t, err)
	seen := make(map[string]bool)
	for _, p := range list {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
	assert.Len(t, list, 50)
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, Seed(ctx, store))

	counts := store.Counts(ctx)
	assert.Equal(t, Counts{Products: 3, Orders: 1, Users: 2}, counts)

	u, err := NewMemoryUsers(store).GetByEmail(ctx, "john@example.com")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", u.Name)
}
