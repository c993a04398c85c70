package application

import (
	"context"
	"fmt"

	"github.com/bnema/foodorder-cli/internal/domain"
	"github.com/bnema/foodorder-cli/internal/ports"
)

type CartService struct {
	repo ports.CartRepository
}

func NewCartService(repo ports.CartRepository) *CartService {
	return &CartService{repo: repo}
}

func (s *CartService) Add(ctx context.Context, item domain.CartItem) (domain.Cart, error) {
	if err := item.Validate(); err != nil {
		return domain.Cart{}, err
	}

	cart, err := s.repo.Load(ctx)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("load cart: %w", err)
	}
	cart.Add(item)

	if err := s.repo.Save(ctx, cart); err != nil {
		return domain.Cart{}, fmt.Errorf("save cart: %w", err)
	}

	return cart, nil
}

func (s *CartService) Remove(ctx context.Context, id domain.DishID) (domain.Cart, error) {
	cart, err := s.repo.Load(ctx)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("load cart: %w", err)
	}
	if !cart.Remove(id) {
		return domain.Cart{}, fmt.Errorf("%w: %q", domain.ErrDishNotInCart, id)
	}

	if err := s.repo.Save(ctx, cart); err != nil {
		return domain.Cart{}, fmt.Errorf("save cart: %w", err)
	}

	return cart, nil
}

func (s *CartService) List(ctx context.Context) (domain.Cart, error) {
	cart, err := s.repo.Load(ctx)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("load cart: %w", err)
	}
	return cart, nil
}

func (s *CartService) Clear(ctx context.Context) error {
	if err := s.repo.Save(ctx, domain.NewCart()); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
