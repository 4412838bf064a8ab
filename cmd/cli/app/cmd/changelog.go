package cmd

import (
	"kindev/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(changelogCmd)
}

var changelogCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Generate a changelog from merged pull requests",
	Long: `Generate a changelog since the last release from the repository's merged
pull requests. Needs a GitHub access token; the generation itself is not
built yet.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectChangelogCommandHandler()
		if err != nil {
			return err
		}

		return handler.Handle()
	},
}
