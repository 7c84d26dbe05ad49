package repository

import (
	"context"
	"errors"
	"strings"

	"storefront/internal/domain"
)

// ErrNotFound is returned when an entity does not exist
var ErrNotFound = errors.New("not found")

// ProductFilter narrows a product listing. The zero value matches everything.
type ProductFilter struct {
	NameSubstring string
	Category      string
	MinPrice      *float64
	MaxPrice      *float64
}

func (f ProductFilter) match(p domain.Product) bool {
	if !containsIgnoreCase(p.Name, f.NameSubstring) {
		return false
	}
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	return true
}

type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, f ProductFilter) ([]domain.Product, error)
}

type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	Update(ctx context.Context, o *domain.Order) error
	List(ctx context.Context) ([]domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	List(ctx context.Context) ([]domain.User, error)
}

// CartRepository stores carts keyed by user id. Get creates the cart on first access.
type CartRepository interface {
	Get(ctx context.Context, userID string) (*domain.Cart, error)
	Save(ctx context.Context, c *domain.Cart) error
}

// TxManager runs fn so that every repository call inside it sees one consistent state.
// For the in-memory store that is the global write lock.
type TxManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Counts is a snapshot of collection sizes
type Counts struct {
	Products int
	Orders   int
	Users    int
	Carts    int
}

// helper: case-insensitive contains
func containsIgnoreCase(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
