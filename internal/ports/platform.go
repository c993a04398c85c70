package ports

import (
	"context"

	"github.com/bnema/foodorder-cli/internal/domain"
)

type Subscription interface {
	Remove()
}

type SubscriptionFunc func()

func (f SubscriptionFunc) Remove() {
	if f != nil {
		f()
	}
}

// LinkSource delivers deep links from the execution environment.
type LinkSource interface {
	// InitialURL returns the URL that launched the process, or "" when there is none.
	InitialURL(ctx context.Context) (string, error)
	SubscribeURLs(handler func(rawURL string)) (Subscription, error)
}

type Lifecycle interface {
	SubscribeAppState(handler func(state domain.AppState)) (Subscription, error)
}
