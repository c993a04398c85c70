package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/foodorder-cli/internal/domain"
	"github.com/bnema/foodorder-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartServiceAddMergesQuantities(t *testing.T) {
	repo := newMemoryCart()
	service := NewCartService(repo)

	_, err := service.Add(context.Background(), pho)
	require.NoError(t, err)
	cart, err := service.Add(context.Background(), domain.CartItem{DishID: "pho-bo", Quantity: 1, Note: "không hành"})
	require.NoError(t, err)

	item := cart.Items["pho-bo"]
	assert.Equal(t, 3, item.Quantity)
	assert.Equal(t, "Phở bò", item.Name)
	assert.Equal(t, "không hành", item.Note)

	stored, saves := repo.snapshot()
	assert.Equal(t, cart, stored)
	assert.Equal(t, 2, saves)
}

func TestCartServiceAddRejectsInvalidItem(t *testing.T) {
	repo := mocks.NewMockCartRepository(t)
	service := NewCartService(repo)

	_, err := service.Add(context.Background(), domain.CartItem{DishID: "pho-bo", Quantity: 0})
	require.ErrorIs(t, err, domain.ErrInvalidCartItem)
}

func TestCartServiceRemove(t *testing.T) {
	repo := newMemoryCart(pho, domain.CartItem{DishID: "tra-da", Name: "Trà đá", Quantity: 1})
	service := NewCartService(repo)

	cart, err := service.Remove(context.Background(), "pho-bo")
	require.NoError(t, err)
	assert.Equal(t, 1, cart.TotalQuantity())

	_, err = service.Remove(context.Background(), "pho-bo")
	require.ErrorIs(t, err, domain.ErrDishNotInCart)
}

func TestCartServiceLoadFailure(t *testing.T) {
	repo := mocks.NewMockCartRepository(t)
	service := NewCartService(repo)

	repo.EXPECT().Load(mockAnyContext()).Return(domain.Cart{}, errors.New("cart.toml: permission denied")).Once()

	_, err := service.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load cart")
}

func TestCartServiceClear(t *testing.T) {
	repo := newMemoryCart(pho)
	service := NewCartService(repo)

	require.NoError(t, service.Clear(context.Background()))

	cart, err := service.List(context.Background())
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}
