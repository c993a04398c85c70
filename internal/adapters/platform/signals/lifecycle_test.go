package signals

import (
	"os"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/bnema/foodorder-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSignals struct {
	mu      sync.Mutex
	ch      chan<- os.Signal
	watched []os.Signal
	stopped bool
}

func (f *fakeSignals) notify(c chan<- os.Signal, sig ...os.Signal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ch = c
	f.watched = sig
}

func (f *fakeSignals) stop(chan<- os.Signal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
}

func (f *fakeSignals) send(sig os.Signal) {
	f.mu.Lock()
	ch := f.ch
	f.mu.Unlock()
	ch <- sig
}

func TestLifecycleMapsSignalsToStates(t *testing.T) {
	t.Parallel()

	fake := &fakeSignals{}
	lifecycle := &Lifecycle{notify: fake.notify, stop: fake.stop}

	var mu sync.Mutex
	var states []domain.AppState
	sub, err := lifecycle.SubscribeAppState(func(state domain.AppState) {
		mu.Lock()
		defer mu.Unlock()
		states = append(states, state)
	})
	require.NoError(t, err)
	assert.Equal(t, []os.Signal{syscall.SIGUSR1, syscall.SIGUSR2}, fake.watched)

	fake.send(syscall.SIGUSR1)
	fake.send(syscall.SIGHUP)
	fake.send(syscall.SIGUSR2)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(states) == 2
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	assert.Equal(t, []domain.AppState{domain.AppStateBackground, domain.AppStateActive}, states)
	mu.Unlock()

	sub.Remove()
	sub.Remove()
	assert.True(t, fake.stopped)
}

func TestLifecycleRejectsNilHandler(t *testing.T) {
	t.Parallel()

	_, err := NewLifecycle().SubscribeAppState(nil)
	require.Error(t, err)
}
