package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/foodorder-cli/internal/domain"
	"github.com/bnema/foodorder-cli/internal/ports"
	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)

func mockAnyContext() interface{} {
	return mock.Anything
}

type fixedClock struct{}

func (fixedClock) Now() time.Time { return fixedNow }

type memoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: map[string]string{}}
}

func (s *memoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.values[key]
	if !ok {
		return "", fmt.Errorf("memory key %q: %w", key, domain.ErrKeyNotFound)
	}
	return value, nil
}

func (s *memoryStore) Put(_ context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

func (s *memoryStore) lookup(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.values[key]
	return value, ok
}

// slowDeleteStore widens the window between reading and deleting a key.
type slowDeleteStore struct {
	ports.KeyValueStore
	delay time.Duration
}

func (s *slowDeleteStore) Delete(ctx context.Context, key string) error {
	time.Sleep(s.delay)
	return s.KeyValueStore.Delete(ctx, key)
}

type memoryCart struct {
	mu    sync.Mutex
	cart  domain.Cart
	saves int
}

func newMemoryCart(items ...domain.CartItem) *memoryCart {
	cart := domain.NewCart()
	for _, item := range items {
		cart.Add(item)
	}
	return &memoryCart{cart: cart}
}

func (c *memoryCart) Load(context.Context) (domain.Cart, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	copied := domain.NewCart()
	for id, item := range c.cart.Items {
		copied.Items[id] = item
	}
	return copied, nil
}

func (c *memoryCart) Save(_ context.Context, cart domain.Cart) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cart = cart
	c.saves++
	return nil
}

func (c *memoryCart) snapshot() (domain.Cart, int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cart, c.saves
}

type recordingNotifier struct {
	mu     sync.Mutex
	alerts []ports.Alert
}

func (n *recordingNotifier) Alert(_ context.Context, alert ports.Alert) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.alerts = append(n.alerts, alert)
}

func (n *recordingNotifier) recorded() []ports.Alert {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]ports.Alert(nil), n.alerts...)
}

type recordingPresenter struct {
	mu       sync.Mutex
	outcomes []domain.PaymentOutcome
	panics   int
}

func (p *recordingPresenter) PresentPaymentOutcome(_ context.Context, outcome domain.PaymentOutcome) {
	p.mu.Lock()
	if p.panics > 0 {
		p.panics--
		p.mu.Unlock()
		panic("presenter exploded")
	}
	defer p.mu.Unlock()

	p.outcomes = append(p.outcomes, outcome)
}

func (p *recordingPresenter) recorded() []domain.PaymentOutcome {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]domain.PaymentOutcome(nil), p.outcomes...)
}

type fakeLinkSource struct {
	mu         sync.Mutex
	initialURL string
	handler    func(string)
	removed    bool
}

func (s *fakeLinkSource) InitialURL(context.Context) (string, error) {
	return s.initialURL, nil
}

func (s *fakeLinkSource) SubscribeURLs(handler func(string)) (ports.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.handler = handler
	return ports.SubscriptionFunc(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.removed = true
		s.handler = nil
	}), nil
}

func (s *fakeLinkSource) deliver(rawURL string) {
	s.mu.Lock()
	handler := s.handler
	s.mu.Unlock()

	if handler != nil {
		handler(rawURL)
	}
}

func (s *fakeLinkSource) subscribed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.handler != nil
}

func (s *fakeLinkSource) wasRemoved() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.removed
}

type fakeLifecycle struct {
	mu      sync.Mutex
	handler func(domain.AppState)
	removed bool
}

func (l *fakeLifecycle) SubscribeAppState(handler func(domain.AppState)) (ports.Subscription, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.handler = handler
	return ports.SubscriptionFunc(func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.removed = true
		l.handler = nil
	}), nil
}

func (l *fakeLifecycle) transition(state domain.AppState) {
	l.mu.Lock()
	handler := l.handler
	l.mu.Unlock()

	if handler != nil {
		handler(state)
	}
}

func (l *fakeLifecycle) subscribed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.handler != nil
}

func (l *fakeLifecycle) wasRemoved() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.removed
}
