package repository

import (
	"context"

	"github.com/google/uuid"

	"storefront/internal/domain"
)

// Seed fills an empty store with a small demo catalogue, two users and one
// empty order for an unknown user.
func Seed(ctx context.Context, store *MemoryStore) error {
	products := []domain.Product{
		{Name: "Laptop", Description: "High-performance laptop", Price: 999.99, Stock: 50, Category: "Electronics"},
		{Name: "Smartphone", Description: "Latest smartphone", Price: 699.99, Stock: 100, Category: "Electronics"},
		{Name: "Headphones", Description: "Wireless headphones", Price: 149.99, Stock: 200, Category: "Audio"},
	}
	users := []domain.User{
		{Email: "john@example.com", Name: "John Doe", Address: "123 Main St"},
		{Email: "jane@example.com", Name: "Jane Smith", Address: "456 Oak Ave"},
	}

	return NewMemoryTx(store).WithTransaction(ctx, func(ctx context.Context) error {
		for i := range products {
			if err := store.Create(ctx, &products[i]); err != nil {
				return err
			}
		}
		userRepo := NewMemoryUsers(store)
		for i := range users {
			if err := userRepo.Create(ctx, &users[i]); err != nil {
				return err
			}
		}
		o := domain.Order{UserID: uuid.NewString(), Status: domain.OrderStatusPending}
		return NewMemoryOrders(store).Create(ctx, &o)
	})
}
