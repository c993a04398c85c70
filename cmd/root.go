package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fo",
		Short:         "Food ordering CLI (fo): sessions, cart and deep-link callbacks",
		Long:          "fo is a terminal client for the food ordering backend. It signs you in through the OAuth callback, keeps a local cart, and reconciles payment gateway returns (VNPay, MoMo) delivered as deep links.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newOpenCmd(app),
		newListenCmd(app),
		newLinkCmd(app),
		newLoginCmd(app),
		newSessionCmd(app),
		newCartCmd(app),
	)

	return rootCmd
}
