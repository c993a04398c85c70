package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/foodorder-cli/internal/adapters/store/file"
	passstore "github.com/bnema/foodorder-cli/internal/adapters/store/pass"
	"github.com/bnema/foodorder-cli/internal/domain"
	"github.com/bnema/foodorder-cli/internal/ports"
)

// Store writes to the primary store and falls back to the secondary one when
// the primary is unusable. Reads consult both; deletes clear both.
type Store struct {
	primary  ports.KeyValueStore
	fallback ports.KeyValueStore
}

var _ ports.KeyValueStore = (*Store)(nil)

var (
	errNilPrimary  = errors.New("primary store is nil")
	errNilFallback = errors.New("fallback store is nil")
)

func NewStore(primary ports.KeyValueStore, fallback ports.KeyValueStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimary
	}
	if fallback == nil {
		return nil, errNilFallback
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

// NewTokenStore prefers pass(1) and falls back to private files below fileRoot.
func NewTokenStore(passPrefix string, fileRoot string) (*Store, error) {
	return NewStore(passstore.NewStore(passPrefix), filestore.NewStore(fileRoot))
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	err := s.primary.Put(ctx, key, value)
	if err == nil {
		return nil
	}
	if isContextError(err) {
		return err
	}

	if fallbackErr := s.fallback.Put(ctx, key, value); fallbackErr != nil {
		return fmt.Errorf("primary store put: %w; fallback store put: %w", err, fallbackErr)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if isContextError(err) {
		return "", err
	}

	value, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr == nil {
		return value, nil
	}

	if errors.Is(err, domain.ErrKeyNotFound) && errors.Is(fallbackErr, domain.ErrKeyNotFound) {
		return "", fmt.Errorf("key %q: %w", key, domain.ErrKeyNotFound)
	}

	return "", fmt.Errorf("primary store get: %w; fallback store get: %w", err, fallbackErr)
}

// Delete clears the key from both stores so a value written to the fallback
// while the primary was unavailable cannot resurface.
func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.primary.Delete(ctx, key)
	if err != nil && isContextError(err) {
		return err
	}

	fallbackErr := s.fallback.Delete(ctx, key)
	switch {
	case err == nil && fallbackErr == nil:
		return nil
	case err == nil:
		return fmt.Errorf("fallback store delete: %w", fallbackErr)
	case fallbackErr == nil:
		if errors.Is(err, passstore.ErrUnavailable) {
			return nil
		}
		return fmt.Errorf("primary store delete: %w", err)
	default:
		return fmt.Errorf("primary store delete: %w; fallback store delete: %w", err, fallbackErr)
	}
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
