package cmd

import (
	"fmt"
	"io"

	"github.com/bnema/foodorder-cli/internal/adapters/backend"
	"github.com/bnema/foodorder-cli/internal/adapters/notify"
	"github.com/bnema/foodorder-cli/internal/adapters/render/outcome"
	tomlrepo "github.com/bnema/foodorder-cli/internal/adapters/repo/toml"
	boltstore "github.com/bnema/foodorder-cli/internal/adapters/store/bolt"
	chainstore "github.com/bnema/foodorder-cli/internal/adapters/store/chain"
	filestore "github.com/bnema/foodorder-cli/internal/adapters/store/file"
	passstore "github.com/bnema/foodorder-cli/internal/adapters/store/pass"
	"github.com/bnema/foodorder-cli/internal/application"
	"github.com/bnema/foodorder-cli/internal/config"
	"github.com/bnema/foodorder-cli/internal/logger"
	"github.com/bnema/foodorder-cli/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	cfg      config.Config
	log      *zap.Logger
	messages *application.Messages
	state    *application.AppContext
	tokens   ports.KeyValueStore
	links    ports.KeyValueStore
	backend  *backend.Client
	cart     *application.CartService
	session  *application.SessionService
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New(), "")
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Log.Level, nil)

	tokens, err := newTokenStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire token store: %w", err)
	}

	backendClient, err := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	if err != nil {
		return nil, fmt.Errorf("wire backend client: %w", err)
	}

	cartRepo, err := tomlrepo.NewCartRepository(cfg.Cart.Path, ports.SystemClock{})
	if err != nil {
		return nil, fmt.Errorf("wire cart repository: %w", err)
	}

	state := application.NewAppContext(cartRepo)

	return &app{
		cfg:      cfg,
		log:      log,
		messages: application.NewMessages(cfg.Locale),
		state:    state,
		tokens:   tokens,
		links:    boltstore.NewStore(cfg.LinksDBPath()),
		backend:  backendClient,
		cart:     application.NewCartService(cartRepo),
		session:  application.NewSessionService(state, tokens, backendClient, log.Named("session")),
	}, nil
}

func newTokenStore(cfg config.Config) (ports.KeyValueStore, error) {
	switch cfg.Store.TokenBackend {
	case "file":
		return filestore.NewStore(cfg.TokenDir()), nil
	case "pass":
		return passstore.NewStore(cfg.Store.PassPrefix), nil
	default:
		store, err := chainstore.NewTokenStore(cfg.Store.PassPrefix, cfg.TokenDir())
		if err != nil {
			return nil, err
		}
		return store, nil
	}
}

// newDispatcher assembles the reconcilers around one output stream. links and
// lifecycle may be nil when the dispatch loop is not run.
func (a *app) newDispatcher(out io.Writer, links ports.LinkSource, lifecycle ports.Lifecycle) (*application.Dispatcher, *outcome.Presenter) {
	presenter := outcome.NewPresenter(out, a.messages.PaymentTitle, a.log.Named("presenter"))
	notifier := notify.NewTerminal(out)

	oauth := application.NewOAuthReconciler(a.state, a.tokens, a.backend, notifier, a.messages, a.log.Named("oauth"))
	payment := application.NewPaymentReconciler(a.state, a.backend, presenter, a.messages, ports.SystemClock{}, a.log.Named("payment"),
		application.WithConfirmTimeout(a.cfg.Payment.ConfirmTimeout))

	return application.NewDispatcher(oauth, payment, links, lifecycle, a.links, a.log.Named("dispatch")), presenter
}
