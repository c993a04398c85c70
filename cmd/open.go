package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bnema/foodorder-cli/internal/domain"
	"github.com/spf13/cobra"
)

type openResultJSON struct {
	Kind    domain.LinkKind        `json:"kind"`
	Handled bool                   `json:"handled"`
	Outcome *domain.PaymentOutcome `json:"outcome,omitempty"`
	Session *sessionJSON           `json:"session,omitempty"`
}

func newOpenCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "open <url>",
		Short: "Deliver one deep link as if the app was launched with it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOpen(cmd, app, strings.TrimSpace(args[0]), asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func runOpen(cmd *cobra.Command, app *app, rawURL string, asJSON bool) error {
	// Screens are buffered until the spinner is gone.
	var screen bytes.Buffer
	dispatcher, _ := app.newDispatcher(&screen, nil, nil)

	result, err := dispatchWithSpinner(cmd.Context(), cmd.ErrOrStderr(), dispatcher, rawURL, domain.EntryColdStart)
	if err != nil {
		return err
	}

	if asJSON {
		payload := openResultJSON{Kind: result.Kind, Handled: result.Handled, Outcome: result.Outcome}
		if result.Kind == domain.LinkOAuthCallback {
			session := toSessionJSON(app.state.Session())
			payload.Session = &session
		}
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	}

	if result.Kind == domain.LinkUnknown {
		_, err := fmt.Fprintln(cmd.ErrOrStderr(), "Ignored: not an OAuth or payment callback link.")
		return err
	}

	_, err = cmd.OutOrStdout().Write(screen.Bytes())
	return err
}
