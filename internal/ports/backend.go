package ports

import (
	"context"

	"github.com/bnema/foodorder-cli/internal/domain"
)

type BackendClient interface {
	CurrentIdentity(ctx context.Context, token string) (domain.Identity, error)
	ConfirmVNPayPayment(ctx context.Context, params map[string]string) error
	ConfirmMoMoPayment(ctx context.Context, params map[string]string) error
}
