package ports

import (
	"context"

	"github.com/bnema/foodorder-cli/internal/domain"
)

type CartRepository interface {
	Load(ctx context.Context) (domain.Cart, error)
	Save(ctx context.Context, cart domain.Cart) error
}
