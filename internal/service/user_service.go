package service

import (
	"context"
	"errors"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

// ErrEmailTaken is returned when a user with the same email already exists
var ErrEmailTaken = errors.New("user with this email already exists")

type UserService struct {
	users repository.UserRepository
	tx    repository.TxManager
}

func NewUserService(users repository.UserRepository, tx repository.TxManager) *UserService {
	return &UserService{users: users, tx: tx}
}

// Create rejects a duplicate email. The lookup and the insert share one transaction.
func (s *UserService) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	if u.Email == "" || u.Name == "" {
		return nil, ErrInvalidInput
	}
	cp := u
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		_, err := s.users.GetByEmail(ctx, cp.Email)
		switch {
		case err == nil:
			return ErrEmailTaken
		case !errors.Is(err, repository.ErrNotFound):
			return err
		}
		return s.users.Create(ctx, &cp)
	})
	if err != nil {
		return nil, err
	}
	return &cp, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.users.GetByEmail(ctx, email)
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// Update applies the patch without re-checking email uniqueness.
func (s *UserService) Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	var updated *domain.User
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		u, err := s.users.GetByID(ctx, id)
		if err != nil {
			return err
		}
		patch.Apply(u)
		if err := s.users.Update(ctx, u); err != nil {
			return err
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
