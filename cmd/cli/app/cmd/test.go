package cmd

import (
	"kindev/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(testCmd)
}

var testCmd = &cobra.Command{
	Use:   "test [-- pytest args...]",
	Short: "Run the acceptance tests against the cluster",
	Long: `Run pytest with the kubeconfig pointed at the development cluster. All
arguments after -- go to pytest unchanged. A failing run gathers cluster
diagnostics before reporting, so the pod state behind a red test is already
on your screen.`,
	Example: `  # Run the whole suite
  kindev test

  # Select tests and stop on the first failure
  kindev test -- -k test_hub -x`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectTestCommandHandler()
		if err != nil {
			return err
		}

		return handler.Handle(args)
	},
}
