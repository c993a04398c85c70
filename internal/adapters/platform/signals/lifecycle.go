package signals

import (
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/bnema/foodorder-cli/internal/domain"
	"github.com/bnema/foodorder-cli/internal/ports"
)

const (
	BackgroundSignal = syscall.SIGUSR1
	ActiveSignal     = syscall.SIGUSR2
)

// Lifecycle maps POSIX signals to app state changes: SIGUSR1 sends the app to
// the background and SIGUSR2 brings it back to the foreground.
type Lifecycle struct {
	notify func(c chan<- os.Signal, sig ...os.Signal)
	stop   func(c chan<- os.Signal)
}

var _ ports.Lifecycle = (*Lifecycle)(nil)

func NewLifecycle() *Lifecycle {
	return &Lifecycle{notify: signal.Notify, stop: signal.Stop}
}

func (l *Lifecycle) SubscribeAppState(handler func(domain.AppState)) (ports.Subscription, error) {
	if handler == nil {
		return nil, errors.New("app state handler is nil")
	}

	sigCh := make(chan os.Signal, 4)
	done := make(chan struct{})
	l.notify(sigCh, BackgroundSignal, ActiveSignal)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			case sig := <-sigCh:
				if state, ok := stateFor(sig); ok {
					handler(state)
				}
			}
		}
	}()

	var once sync.Once
	return ports.SubscriptionFunc(func() {
		once.Do(func() {
			l.stop(sigCh)
			close(done)
			wg.Wait()
		})
	}), nil
}

func stateFor(sig os.Signal) (domain.AppState, bool) {
	switch sig {
	case BackgroundSignal:
		return domain.AppStateBackground, true
	case ActiveSignal:
		return domain.AppStateActive, true
	default:
		return "", false
	}
}
