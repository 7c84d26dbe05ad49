package service

import (
	"context"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

// OrderService records orders and their status. Neither the user nor the
// products an order refers to are checked.
type OrderService struct {
	orders repository.OrderRepository
	tx     repository.TxManager
}

func NewOrderService(orders repository.OrderRepository, tx repository.TxManager) *OrderService {
	return &OrderService{orders: orders, tx: tx}
}

// CreateOrder stores items and total verbatim; the status always starts as pending.
func (s *OrderService) CreateOrder(ctx context.Context, userID string, items []domain.LineItem, totalAmount float64) (*domain.Order, error) {
	if userID == "" || items == nil {
		return nil, ErrInvalidInput
	}
	o := domain.Order{
		UserID:      userID,
		Items:       items,
		Status:      domain.OrderStatusPending,
		TotalAmount: totalAmount,
	}
	if err := s.orders.Create(ctx, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.orders.GetByID(ctx, id)
}

func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

// ListUserOrders returns an empty slice when the user has no orders.
func (s *OrderService) ListUserOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

// UpdateStatus sets any non-empty status; transitions are not checked.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	if status == "" {
		return nil, ErrInvalidInput
	}
	var updated *domain.Order
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		o, err := s.orders.GetByID(ctx, id)
		if err != nil {
			return err
		}
		o.Status = status
		if err := s.orders.Update(ctx, o); err != nil {
			return err
		}
		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
