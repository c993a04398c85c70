package outcome

import (
	"errors"
	"io"

	"github.com/bnema/foodorder-cli/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	outcome domain.PaymentOutcome
	opts    RenderOptions
	styles  styles
	output  string
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(renderReadyMsg); ok {
		m.output = renderView(m.outcome, m.opts, m.styles)
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	return m.output
}

// Render draws the payment outcome screen.
func Render(outcome domain.PaymentOutcome, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		model{outcome: outcome, opts: opts, styles: newStyles(outcome.Success)},
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
