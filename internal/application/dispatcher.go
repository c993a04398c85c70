package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/foodorder-cli/internal/domain"
	"github.com/bnema/foodorder-cli/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const eventBuffer = 16

type DispatchResult struct {
	Kind    domain.LinkKind
	Handled bool
	Outcome *domain.PaymentOutcome
}

type Dispatcher struct {
	oauth     *OAuthReconciler
	payment   *PaymentReconciler
	links     ports.LinkSource
	lifecycle ports.Lifecycle
	pending   ports.KeyValueStore
	log       *zap.Logger

	flight   singleflight.Group
	wg       sync.WaitGroup
	mu       sync.Mutex
	appState domain.AppState

	// consumeMu spans read, dispatch and delete of the pending link.
	consumeMu sync.Mutex
}

func NewDispatcher(oauth *OAuthReconciler, payment *PaymentReconciler, links ports.LinkSource, lifecycle ports.Lifecycle, pending ports.KeyValueStore, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}

	return &Dispatcher{
		oauth:     oauth,
		payment:   payment,
		links:     links,
		lifecycle: lifecycle,
		pending:   pending,
		log:       log,
		appState:  domain.AppStateActive,
	}
}

type loopEvent struct {
	rawURL   string
	state    domain.AppState
	isChange bool
}

// Run drives the three deep-link entry points until ctx is done: live URLs,
// the launch URL, and the pending link consumed on return to the foreground.
// Subscriptions are released and in-flight dispatches awaited before Run returns.
func (d *Dispatcher) Run(ctx context.Context) error {
	if d.links == nil || d.lifecycle == nil {
		return errors.New("dispatcher requires a link source and a lifecycle")
	}

	events := make(chan loopEvent, eventBuffer)
	done := make(chan struct{})
	defer close(done)

	emit := func(ev loopEvent) {
		select {
		case events <- ev:
		case <-done:
		case <-ctx.Done():
		}
	}

	linkSub, err := d.links.SubscribeURLs(func(rawURL string) {
		emit(loopEvent{rawURL: rawURL})
	})
	if err != nil {
		return fmt.Errorf("subscribe to incoming links: %w", err)
	}
	defer linkSub.Remove()

	stateSub, err := d.lifecycle.SubscribeAppState(func(state domain.AppState) {
		emit(loopEvent{state: state, isChange: true})
	})
	if err != nil {
		return fmt.Errorf("subscribe to app state: %w", err)
	}
	defer stateSub.Remove()

	defer d.wg.Wait()

	initialURL, err := d.links.InitialURL(ctx)
	if err != nil {
		d.log.Warn("read launch url", zap.Error(err))
	} else if initialURL != "" {
		d.spawn(ctx, initialURL, domain.EntryColdStart)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if ev.isChange {
				d.onAppState(ctx, ev.state)
				continue
			}
			d.onLiveURL(ctx, ev.rawURL)
		}
	}
}

func (d *Dispatcher) AppState() domain.AppState {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.appState
}

func (d *Dispatcher) onLiveURL(ctx context.Context, rawURL string) {
	if d.AppState().IsActive() {
		d.spawn(ctx, rawURL, domain.EntryLive)
		return
	}

	d.log.Info("app not active, deferring deep link")
	if err := d.Stash(ctx, rawURL); err != nil {
		d.log.Error("stash deferred deep link", zap.Error(err))
	}
}

func (d *Dispatcher) onAppState(ctx context.Context, next domain.AppState) {
	d.mu.Lock()
	previous := d.appState
	d.appState = next
	d.mu.Unlock()

	d.log.Debug("app state changed", zap.String("from", string(previous)), zap.String("to", string(next)))
	if previous.IsActive() || !next.IsActive() {
		return
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer d.recoverDispatch()

		if _, err := d.ConsumePending(ctx); err != nil {
			d.log.Error("consume pending deep link", zap.Error(err))
		}
	}()
}

// ConsumePending dispatches the pending deep link, if any, and deletes it afterwards.
// It reports whether a pending link was found. Concurrent calls are serialized,
// so a link is dispatched at most once.
func (d *Dispatcher) ConsumePending(ctx context.Context) (bool, error) {
	d.consumeMu.Lock()
	defer d.consumeMu.Unlock()

	rawURL, err := d.pending.Get(ctx, PendingLinkKey)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("read pending deep link: %w", err)
	}
	if rawURL == "" {
		return false, nil
	}

	d.Dispatch(ctx, rawURL, domain.EntryResume)

	if err := d.pending.Delete(ctx, PendingLinkKey); err != nil {
		return true, fmt.Errorf("delete pending deep link: %w", err)
	}

	return true, nil
}

// Stash stores rawURL as the pending deep link, replacing any previous one.
func (d *Dispatcher) Stash(ctx context.Context, rawURL string) error {
	if err := d.pending.Put(ctx, PendingLinkKey, rawURL); err != nil {
		return fmt.Errorf("store pending deep link: %w", err)
	}
	return nil
}

func (d *Dispatcher) spawn(ctx context.Context, rawURL string, entry domain.EntryPoint) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer d.recoverDispatch()

		d.Dispatch(ctx, rawURL, entry)
	}()
}

func (d *Dispatcher) recoverDispatch() {
	if recovered := recover(); recovered != nil {
		d.log.Error("deep link dispatch panicked", zap.Any("panic", recovered))
	}
}

// Dispatch routes one deep link to its reconciler. OAuth callbacks take precedence;
// everything else is offered to the payment reconciler, which ignores non-payment links.
// Concurrent dispatches of the same URL share one execution.
func (d *Dispatcher) Dispatch(ctx context.Context, rawURL string, entry domain.EntryPoint) DispatchResult {
	classification := Classify(rawURL)
	key := string(classification.Kind) + "|" + rawURL

	value, _, shared := d.flight.Do(key, func() (any, error) {
		log := d.log.With(
			zap.String("dispatch_id", uuid.NewString()),
			zap.String("entry", string(entry)),
			zap.String("link_kind", string(classification.Kind)),
		)
		log.Debug("dispatching deep link")

		if classification.Kind == domain.LinkOAuthCallback {
			return DispatchResult{Kind: classification.Kind, Handled: d.oauth.Handle(ctx, rawURL)}, nil
		}

		outcome, handled := d.payment.Handle(ctx, rawURL)
		if !handled {
			log.Debug("ignoring unrecognized deep link")
			return DispatchResult{Kind: domain.LinkUnknown}, nil
		}
		return DispatchResult{Kind: domain.LinkPaymentCallback, Handled: true, Outcome: &outcome}, nil
	})
	if shared {
		d.log.Debug("deep link dispatch coalesced", zap.String("entry", string(entry)))
	}

	result, _ := value.(DispatchResult)
	return result
}
