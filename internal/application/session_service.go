package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/foodorder-cli/internal/domain"
	"github.com/bnema/foodorder-cli/internal/ports"
	"go.uber.org/zap"
)

type SessionService struct {
	app     *AppContext
	store   ports.KeyValueStore
	backend ports.BackendClient
	log     *zap.Logger
}

func NewSessionService(app *AppContext, store ports.KeyValueStore, backend ports.BackendClient, log *zap.Logger) *SessionService {
	if log == nil {
		log = zap.NewNop()
	}

	return &SessionService{app: app, store: store, backend: backend, log: log}
}

// Restore re-resolves the identity of the persisted token on process start.
// A token the backend rejects is destroyed; transport failures keep it for the next start.
func (s *SessionService) Restore(ctx context.Context) (domain.Session, error) {
	token, err := s.store.Get(ctx, TokenKey)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			s.app.ClearSession()
			return s.app.Session(), nil
		}
		return domain.Session{}, fmt.Errorf("read session token: %w", err)
	}
	if token == "" {
		return s.app.Session(), nil
	}

	s.app.SetToken(token)

	s.app.SetAuthLoading(true)
	identity, err := s.backend.CurrentIdentity(ctx, token)
	s.app.SetAuthLoading(false)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrMalformedIdentity) {
			s.log.Info("stored session token rejected, signing out", zap.Error(err))
			if logoutErr := s.Logout(ctx); logoutErr != nil {
				return domain.Session{}, errors.Join(err, logoutErr)
			}
			return s.app.Session(), nil
		}
		return s.app.Session(), fmt.Errorf("resolve identity: %w", err)
	}
	s.app.SetUser(identity)

	return s.app.Session(), nil
}

func (s *SessionService) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, TokenKey); err != nil {
		return fmt.Errorf("delete session token: %w", err)
	}
	s.app.ClearSession()

	return nil
}
