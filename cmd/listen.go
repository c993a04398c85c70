package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/foodorder-cli/internal/adapters/platform/httplink"
	"github.com/bnema/foodorder-cli/internal/adapters/platform/signals"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newListenCmd(app *app) *cobra.Command {
	var launchURL string
	var addr string

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Run the deep-link dispatch loop",
		Long: "listen accepts deep links on a local HTTP port until interrupted.\n" +
			"GET http://<addr>/<host>/<path>?<query> delivers <scheme>://<host>/<path>?<query>;\n" +
			"GET http://<addr>/open?url=<link> delivers <link> as is.\n" +
			"Send SIGUSR1 to move the app to the background and SIGUSR2 to bring it back;\n" +
			"links received in the background are processed on return.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = app.cfg.Listen.Addr
			}
			return runListen(cmd, app, addr, launchURL)
		},
	}

	cmd.Flags().StringVar(&launchURL, "launch-url", "", "Deep link the app is launched with")
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from listen.addr)")

	return cmd
}

func runListen(cmd *cobra.Command, app *app, addr string, launchURL string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session, err := app.session.Restore(ctx)
	if err != nil {
		app.log.Warn("restore session", zap.Error(err))
	}
	if session.Authenticated() {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Signed in as %s\n", displayName(*session.User))
	}

	server, err := httplink.Start(addr, httplink.WithScheme(app.cfg.Listen.Scheme), httplink.WithLaunchURL(launchURL))
	if err != nil {
		return err
	}
	defer server.Close()

	dispatcher, _ := app.newDispatcher(cmd.OutOrStdout(), server, signals.NewLifecycle())

	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Listening for deep links on %s (pid %d)\n", server.BaseURL(), os.Getpid())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return dispatcher.Run(gctx)
	})
	g.Go(func() error {
		select {
		case <-gctx.Done():
			return nil
		case err, ok := <-server.Errors():
			if !ok {
				return nil
			}
			return fmt.Errorf("deep link listener: %w", err)
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
