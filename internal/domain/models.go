package domain

import "time"

// Product is a catalogue entry
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Stock       int64     `json:"stock"`
	Category    string    `json:"category,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ProductPatch lists the product fields an update may touch. Nil means "keep".
type ProductPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int64   `json:"stock"`
	Category    *string  `json:"category"`
}

// Apply merges the patch into p.
func (pp ProductPatch) Apply(p *Product) {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.Description != nil {
		p.Description = *pp.Description
	}
	if pp.Price != nil {
		p.Price = *pp.Price
	}
	if pp.Stock != nil {
		p.Stock = *pp.Stock
	}
	if pp.Category != nil {
		p.Category = *pp.Category
	}
}

// User is a customer account
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserPatch lists the user fields an update may touch.
type UserPatch struct {
	Email   *string `json:"email"`
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

func (up UserPatch) Apply(u *User) {
	if up.Email != nil {
		u.Email = *up.Email
	}
	if up.Name != nil {
		u.Name = *up.Name
	}
	if up.Address != nil {
		u.Address = *up.Address
	}
}

// OrderStatus is an open set: any string written by a caller is kept as is
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
)

// LineItem is a product reference with a quantity, shared by orders and carts
type LineItem struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

// Order is a placed order. TotalAmount is supplied by the caller and never recomputed.
type Order struct {
	ID          string      `json:"id"`
	UserID      string      `json:"userId"`
	Items       []LineItem  `json:"items"`
	Status      OrderStatus `json:"status"`
	TotalAmount float64     `json:"totalAmount"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// Cart holds the pending items of one user
type Cart struct {
	UserID    string     `json:"userId"`
	Items     []LineItem `json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
}

// CloneItems copies a line item slice, never returning nil.
func CloneItems(items []LineItem) []LineItem {
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}
