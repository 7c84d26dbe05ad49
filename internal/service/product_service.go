package service

import (
	"context"
	"errors"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

// ProductService wraps the product catalogue
type ProductService struct {
	repo repository.ProductRepository
	tx   repository.TxManager
}

func NewProductService(repo repository.ProductRepository, tx repository.TxManager) *ProductService {
	return &ProductService{repo: repo, tx: tx}
}

var ErrInvalidInput = errors.New("invalid input")

// Create only checks that a name is present; price and stock are stored as given.
func (s *ProductService) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if p.Name == "" {
		return nil, ErrInvalidInput
	}
	cp := p
	if err := s.repo.Create(ctx, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Update merges the allow-listed patch fields into the stored product.
func (s *ProductService) Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	var out *domain.Product
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		p, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		patch.Apply(p)
		if err := s.repo.Update(ctx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the product and returns the removed record.
func (s *ProductService) Delete(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.Delete(ctx, id)
}

func (s *ProductService) List(ctx context.Context, f repository.ProductFilter) ([]domain.Product, error) {
	return s.repo.List(ctx, f)
}
