package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/foodorder-cli/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type sessionJSON struct {
	Authenticated bool             `json:"authenticated"`
	HasToken      bool             `json:"has_token"`
	User          *domain.Identity `json:"user,omitempty"`
}

func toSessionJSON(session domain.Session) sessionJSON {
	return sessionJSON{
		Authenticated: session.Authenticated(),
		HasToken:      session.Token != "",
		User:          session.User,
	}
}

func newSessionCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect or end the signed-in session",
	}

	cmd.AddCommand(newSessionShowCmd(app), newSessionLogoutCmd(app))

	return cmd
}

func newSessionShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Resolve the stored session against the backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.session.Restore(cmd.Context())
			if err != nil && session.Token == "" {
				return err
			}
			if err != nil {
				app.log.Warn("resolve stored session", zap.Error(err))
			}

			if asJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(toSessionJSON(session))
			}

			out := cmd.OutOrStdout()
			switch {
			case session.Authenticated():
				user := *session.User
				_, err = fmt.Fprintf(out, "Signed in as %s\nrole: %s\n", displayName(user), user.Role)
				if err == nil && user.Email != "" {
					_, err = fmt.Fprintf(out, "email: %s\n", user.Email)
				}
			case session.Token != "":
				_, err = fmt.Fprintln(out, "Signed in, but the profile could not be loaded. Try again later.")
			default:
				_, err = fmt.Fprintln(out, "Not signed in. Run `fo login` to sign in.")
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newSessionLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.session.Logout(cmd.Context()); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return err
		},
	}
}

func displayName(user domain.Identity) string {
	if user.Name != "" && user.ID != "" && user.Name != user.ID {
		return fmt.Sprintf("%s (%s)", user.Name, user.ID)
	}
	if user.Name != "" {
		return user.Name
	}
	return user.ID
}
