package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/foodorder-cli/internal/application"
	"github.com/bnema/foodorder-cli/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var dispatchLabels = map[domain.LinkKind]string{
	domain.LinkOAuthCallback:   "Signing in...",
	domain.LinkPaymentCallback: "Confirming payment...",
}

type dispatchDoneMsg struct {
	result application.DispatchResult
}

type dispatchSpinnerModel struct {
	spinner  spinner.Model
	label    string
	dispatch tea.Cmd
	result   application.DispatchResult
	done     bool
}

func newDispatchSpinnerModel(kind domain.LinkKind, dispatch tea.Cmd) dispatchSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("214"))),
	)

	return dispatchSpinnerModel{spinner: s, label: dispatchLabel(kind), dispatch: dispatch}
}

func dispatchLabel(kind domain.LinkKind) string {
	if label, ok := dispatchLabels[kind]; ok {
		return label
	}
	return "Processing link..."
}

func (m dispatchSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.dispatch)
}

func (m dispatchSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case dispatchDoneMsg:
		m.done = true
		m.result = msg.result
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m dispatchSpinnerModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

// dispatchWithSpinner classifies rawURL, then dispatches it while a spinner
// labelled for that kind of link is drawn on output.
func dispatchWithSpinner(ctx context.Context, output io.Writer, dispatcher *application.Dispatcher, rawURL string, entry domain.EntryPoint) (application.DispatchResult, error) {
	dispatchCmd := func() tea.Msg {
		return dispatchDoneMsg{result: dispatcher.Dispatch(ctx, rawURL, entry)}
	}

	p := tea.NewProgram(
		newDispatchSpinnerModel(application.Classify(rawURL).Kind, dispatchCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return application.DispatchResult{}, err
	}

	result, ok := finalModel.(dispatchSpinnerModel)
	if !ok {
		return application.DispatchResult{}, fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}
	if !result.done {
		return application.DispatchResult{}, ctx.Err()
	}

	return result.result, nil
}
