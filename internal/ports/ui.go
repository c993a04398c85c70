package ports

import (
	"context"

	"github.com/bnema/foodorder-cli/internal/domain"
)

type AlertLevel string

const (
	AlertInfo  AlertLevel = "info"
	AlertError AlertLevel = "error"
)

type Alert struct {
	Level   AlertLevel
	Title   string
	Message string
}

// Notifier shows user-facing alerts.
type Notifier interface {
	Alert(ctx context.Context, alert Alert)
}

// OutcomePresenter is the navigation target that renders a payment outcome.
type OutcomePresenter interface {
	PresentPaymentOutcome(ctx context.Context, outcome domain.PaymentOutcome)
}
