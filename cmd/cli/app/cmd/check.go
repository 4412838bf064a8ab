package cmd

import (
	"kindev/cmd/cli/app"

	"github.com/spf13/cobra"
)

var (
	checkTemplatesChart  string
	checkPythonCodeApply bool
)

func init() {
	checkCmd.AddCommand(checkTemplatesCmd)
	checkCmd.AddCommand(checkPythonCodeCmd)
	checkTemplatesCmd.Flags().StringVar(&checkTemplatesChart, "chart", ".", "path to the chart directory")
	checkPythonCodeCmd.Flags().BoolVar(&checkPythonCodeApply, "apply", false, "rewrite files instead of only reporting drift")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the repository checks",
	Long:  `Static checks that run without a cluster: rendered chart templates and Python code style.`,
}

var checkTemplatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Lint and validate the rendered chart templates",
	Long: `Render the chart with helm template, lint the result with yamllint, and
validate it with kubeval against every version in VALIDATE_KUBE_VERSIONS.`,
	Example: `  # Check the chart in the current directory
  kindev check templates

  # Check a chart somewhere else
  kindev check templates --chart ./jupyterhub`,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectCheckCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleTemplates(checkTemplatesChart)
	},
}

var checkPythonCodeCmd = &cobra.Command{
	Use:   "python-code",
	Short: "Check Python formatting and lint",
	Long:  `Run black in check mode and flake8 over the repository. With --apply, black rewrites the files instead.`,
	Example: `  # Report formatting drift and lint findings
  kindev check python-code

  # Fix the formatting in place
  kindev check python-code --apply`,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectCheckCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandlePythonCode(checkPythonCodeApply)
	},
}
