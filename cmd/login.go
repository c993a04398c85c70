package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/foodorder-cli/internal/adapters/platform/httplink"
	"github.com/bnema/foodorder-cli/internal/application"
	"github.com/bnema/foodorder-cli/internal/domain"
	"github.com/spf13/cobra"
)

var (
	errLoginTimeout = errors.New("timed out waiting for the login callback")
	errLoginFailed  = errors.New("login failed")
)

func newLoginCmd(app *app) *cobra.Command {
	var provider string
	var addr string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in through the backend OAuth flow",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if provider == "" {
				provider = app.cfg.Login.Provider
			}
			if addr == "" {
				addr = app.cfg.Listen.Addr
			}
			if timeout <= 0 {
				timeout = app.cfg.Login.Timeout
			}
			return runLogin(cmd, app, provider, addr, timeout)
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "", "OAuth provider (default from login.provider)")
	cmd.Flags().StringVar(&addr, "addr", "", "Callback listen address (default from listen.addr)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "How long to wait for the callback (default from login.timeout)")

	return cmd
}

func runLogin(cmd *cobra.Command, app *app, provider string, addr string, timeout time.Duration) error {
	server, err := httplink.Start(addr, httplink.WithScheme(app.cfg.Listen.Scheme))
	if err != nil {
		return err
	}
	defer server.Close()

	callbacks := make(chan string, 1)
	sub, err := server.SubscribeURLs(func(rawURL string) {
		if application.Classify(rawURL).Kind != domain.LinkOAuthCallback {
			return
		}
		select {
		case callbacks <- rawURL:
		default:
		}
	})
	if err != nil {
		return err
	}
	defer sub.Remove()

	authURL := authorizationURL(app.cfg.Backend.BaseURL, provider, server.BaseURL()+"/oauth2/callback")
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Open this URL in your browser to sign in:\n\n  %s\n\n", authURL)

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	var rawURL string
	select {
	case rawURL = <-callbacks:
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return errLoginTimeout
		}
		return ctx.Err()
	}

	dispatcher, _ := app.newDispatcher(cmd.OutOrStdout(), nil, nil)
	result := dispatcher.Dispatch(cmd.Context(), rawURL, domain.EntryLive)
	if !result.Handled {
		return errLoginFailed
	}

	return nil
}

func authorizationURL(baseURL string, provider string, redirectURI string) string {
	query := url.Values{}
	query.Set("redirect_uri", redirectURI)
	return fmt.Sprintf("%s/oauth2/authorization/%s?%s",
		strings.TrimRight(baseURL, "/"), url.PathEscape(provider), query.Encode())
}
