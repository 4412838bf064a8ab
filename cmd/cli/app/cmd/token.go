package cmd

import (
	"kindev/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	tokenCmd.AddCommand(tokenSetCmd)
	tokenCmd.AddCommand(tokenShowCmd)
	tokenCmd.AddCommand(tokenDeleteCmd)
	rootCmd.AddCommand(tokenCmd)
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage the GitHub access token",
	Long: `Manage the GitHub access token in the system keyring. A token stored here
is picked up automatically when neither the environment nor the .env file
provides one.`,
}

var tokenSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store a GitHub access token",
	Long:  `Store a GitHub access token in the system keyring. The value is prompted securely and never shown.`,
	Example: `  # Store a token (value is prompted securely)
  kindev token set

  # Pipe a token in from a secret manager
  pass github/token | kindev token set`,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectTokenCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleSet()
	},
}

var tokenShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show whether a token is stored",
	Long:  `Show a masked version of the stored token, enough to recognize which one it is.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectTokenCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleShow()
	},
}

var tokenDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Remove the stored token",
	Long:  `Remove the GitHub access token from the system keyring.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectTokenCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleDelete()
	},
}
