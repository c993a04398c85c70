package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/foodorder-cli/internal/domain"
	"github.com/bnema/foodorder-cli/internal/ports"
)

// AppContext holds the process-wide session and gives reconcilers a single
// place to mutate session and cart state.
type AppContext struct {
	mu      sync.RWMutex
	session domain.Session
	cart    ports.CartRepository
}

func NewAppContext(cart ports.CartRepository) *AppContext {
	return &AppContext{cart: cart}
}

func (a *AppContext) Session() domain.Session {
	a.mu.RLock()
	defer a.mu.RUnlock()

	snapshot := a.session
	if a.session.User != nil {
		user := *a.session.User
		snapshot.User = &user
	}
	return snapshot
}

func (a *AppContext) SetToken(token string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.session.Token = token
}

func (a *AppContext) SetUser(user domain.Identity) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.session.User = &user
}

func (a *AppContext) SetAuthLoading(loading bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.session.AuthLoading = loading
}

func (a *AppContext) ClearSession() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.session = domain.Session{}
}

func (a *AppContext) Cart(ctx context.Context) (domain.Cart, error) {
	cart, err := a.cart.Load(ctx)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("load cart: %w", err)
	}
	return cart, nil
}

func (a *AppContext) ClearCart(ctx context.Context) error {
	if err := a.cart.Save(ctx, domain.NewCart()); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
