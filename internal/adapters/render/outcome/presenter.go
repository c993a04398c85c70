package outcome

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/bnema/foodorder-cli/internal/domain"
	"github.com/bnema/foodorder-cli/internal/ports"
	"go.uber.org/zap"
)

// Presenter renders payment outcomes to a terminal and remembers the last one.
type Presenter struct {
	out   io.Writer
	title func(success bool) string
	log   *zap.Logger

	mu   sync.Mutex
	last *domain.PaymentOutcome
}

var _ ports.OutcomePresenter = (*Presenter)(nil)

func NewPresenter(out io.Writer, title func(success bool) string, log *zap.Logger) *Presenter {
	if title == nil {
		title = defaultTitle
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Presenter{out: out, title: title, log: log}
}

func (p *Presenter) PresentPaymentOutcome(_ context.Context, outcome domain.PaymentOutcome) {
	rendered, err := Render(outcome, RenderOptions{Title: p.title(outcome.Success)})
	if err != nil {
		p.log.Warn("render payment outcome, falling back to plain text", zap.Error(err))
		rendered = outcome.Message
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	stored := outcome
	p.last = &stored
	if _, err := fmt.Fprintln(p.out, rendered); err != nil {
		p.log.Warn("write payment outcome", zap.Error(err))
	}
}

// Last returns the most recently presented outcome.
func (p *Presenter) Last() (domain.PaymentOutcome, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.last == nil {
		return domain.PaymentOutcome{}, false
	}
	return *p.last, true
}
