package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/foodorder-cli/internal/application"
	"github.com/bnema/foodorder-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newLinkCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Manage the pending deep link",
	}

	cmd.AddCommand(
		newLinkStashCmd(app),
		newLinkPendingCmd(app),
		newLinkResumeCmd(app),
		newLinkClearCmd(app),
	)

	return cmd
}

func newLinkStashCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stash <url>",
		Short: "Store a deep link to be processed when the app becomes active",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dispatcher, _ := app.newDispatcher(cmd.OutOrStdout(), nil, nil)
			if err := dispatcher.Stash(cmd.Context(), strings.TrimSpace(args[0])); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Pending link stored.")
			return err
		},
	}
}

func newLinkPendingCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "Show the pending deep link",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rawURL, err := app.links.Get(cmd.Context(), application.PendingLinkKey)
			if errors.Is(err, domain.ErrKeyNotFound) {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "No pending link.")
				return err
			}
			if err != nil {
				return err
			}

			kind := application.Classify(rawURL).Kind
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", rawURL, kind)
			return err
		},
	}
}

func newLinkResumeCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Process the pending deep link as on return to the foreground",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dispatcher, _ := app.newDispatcher(cmd.OutOrStdout(), nil, nil)
			found, err := dispatcher.ConsumePending(cmd.Context())
			if err != nil {
				return err
			}
			if !found {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "No pending link.")
			}
			return err
		},
	}
}

func newLinkClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Discard the pending deep link",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.links.Delete(cmd.Context(), application.PendingLinkKey); err != nil {
				return fmt.Errorf("clear pending link: %w", err)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Pending link cleared.")
			return err
		},
	}
}
