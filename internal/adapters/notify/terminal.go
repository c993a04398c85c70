package notify

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/bnema/foodorder-cli/internal/ports"
	"github.com/charmbracelet/lipgloss"
)

// Terminal prints alerts as a single styled line.
type Terminal struct {
	out  io.Writer
	mu   sync.Mutex
	info lipgloss.Style
	err  lipgloss.Style
	body lipgloss.Style
}

var _ ports.Notifier = (*Terminal)(nil)

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{
		out:  out,
		info: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		err:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		body: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

func (t *Terminal) Alert(_ context.Context, alert ports.Alert) {
	title := t.info.Render("● " + alert.Title)
	if alert.Level == ports.AlertError {
		title = t.err.Render("✗ " + alert.Title)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if alert.Message == "" {
		_, _ = fmt.Fprintln(t.out, title)
		return
	}
	_, _ = fmt.Fprintf(t.out, "%s  %s\n", title, t.body.Render(alert.Message))
}
