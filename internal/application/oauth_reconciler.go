package application

import (
	"context"

	"github.com/bnema/foodorder-cli/internal/ports"
	"go.uber.org/zap"
)

type OAuthReconciler struct {
	app      *AppContext
	store    ports.KeyValueStore
	backend  ports.BackendClient
	notifier ports.Notifier
	messages *Messages
	log      *zap.Logger
}

func NewOAuthReconciler(app *AppContext, store ports.KeyValueStore, backend ports.BackendClient, notifier ports.Notifier, messages *Messages, log *zap.Logger) *OAuthReconciler {
	if log == nil {
		log = zap.NewNop()
	}

	return &OAuthReconciler{
		app:      app,
		store:    store,
		backend:  backend,
		notifier: notifier,
		messages: messages,
		log:      log,
	}
}

// Handle persists the callback token, publishes it and resolves the identity behind it.
// It reports true only when both token and identity are in the session.
// A failed identity lookup keeps the persisted token so it can be resolved on the next start.
// Handle is not re-entrant for the same token.
func (r *OAuthReconciler) Handle(ctx context.Context, rawURL string) bool {
	token := ParseParams(rawURL).Get("token")
	if token == "" {
		r.log.Warn("oauth callback without token")
		r.alertFailure(ctx, msgLoginMissingToken)
		return false
	}

	r.app.SetAuthLoading(true)
	defer r.app.SetAuthLoading(false)

	if err := r.store.Put(ctx, TokenKey, token); err != nil {
		r.log.Error("persist session token", zap.Error(err))
		r.alertFailure(ctx, msgLoginStoreFailed)
		return false
	}
	r.app.SetToken(token)

	identity, err := r.backend.CurrentIdentity(ctx, token)
	if err != nil {
		r.log.Error("resolve identity for oauth token", zap.Error(err))
		r.alertFailure(ctx, msgLoginIdentityFailed)
		return false
	}
	r.app.SetUser(identity)

	r.log.Info("oauth session established", zap.String("user_id", identity.ID), zap.String("role", string(identity.Role)))
	r.notifier.Alert(ctx, ports.Alert{
		Level:   ports.AlertInfo,
		Title:   r.messages.Text(msgLoginSucceededTitle),
		Message: r.messages.Text(msgLoginWelcome, identity.Name),
	})

	return true
}

func (r *OAuthReconciler) alertFailure(ctx context.Context, key string) {
	r.notifier.Alert(ctx, ports.Alert{
		Level:   ports.AlertError,
		Title:   r.messages.Text(msgLoginFailedTitle),
		Message: r.messages.Text(key),
	})
}
