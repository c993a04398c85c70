package outcome

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/foodorder-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Title    string
	Location *time.Location
}

var gatewayLabels = map[domain.Gateway]string{
	domain.GatewayVNPay: "VNPay",
	domain.GatewayMoMo:  "MoMo",
}

func renderView(outcome domain.PaymentOutcome, opts RenderOptions, s styles) string {
	mark, heading := "✗", s.failure
	if outcome.Success {
		mark, heading = "✓", s.success
	}

	title := opts.Title
	if title == "" {
		title = defaultTitle(outcome.Success)
	}

	lines := []string{
		heading.Render(mark + " " + title),
		s.message.Render(outcome.Message),
		"",
	}
	if outcome.OrderID != "" {
		lines = append(lines, detail(s, "order", "#"+outcome.OrderID))
	}
	lines = append(lines, detail(s, "gateway", gatewayLabel(outcome.Gateway)))
	if !outcome.At.IsZero() {
		at := outcome.At
		if opts.Location != nil {
			at = at.In(opts.Location)
		}
		lines = append(lines, s.faint.Render(at.Format("2006-01-02 15:04:05")))
	}

	return s.frame.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func detail(s styles, label string, value string) string {
	return s.label.Render(fmt.Sprintf("%-8s", label+":")) + " " + s.value.Render(value)
}

func gatewayLabel(gateway domain.Gateway) string {
	if label, ok := gatewayLabels[gateway]; ok {
		return label
	}
	if gateway == "" {
		return "unknown"
	}
	return strings.ToUpper(string(gateway))
}

func defaultTitle(success bool) string {
	if success {
		return "Payment successful"
	}
	return "Payment failed"
}
