package cmd

import (
	"kindev/cmd/cli/app"

	"github.com/spf13/cobra"
)

var (
	chartUpgradeChart   string
	chartUpgradeRelease string
	chartUpgradeVersion string
	chartUpgradeValues  []string
	chartUpgradeSet     []string
)

func init() {
	chartUpgradeCmd.Flags().StringVar(&chartUpgradeChart, "chart", "", "path to the chart directory")
	chartUpgradeCmd.Flags().StringVar(&chartUpgradeRelease, "release", "", "release name, defaults to the chart directory name")
	chartUpgradeCmd.Flags().StringVar(&chartUpgradeVersion, "version", "", "chart version to pass to helm")
	chartUpgradeCmd.Flags().StringArrayVar(&chartUpgradeValues, "values", nil, "values file, repeatable")
	chartUpgradeCmd.Flags().StringArrayVar(&chartUpgradeSet, "set", nil, "value override as key=value, repeatable")
	chartUpgradeCmd.MarkFlagRequired("chart")
	rootCmd.AddCommand(chartUpgradeCmd)
}

var chartUpgradeCmd = &cobra.Command{
	Use:   "chart-upgrade",
	Short: "Install or upgrade the chart release",
	Long: `Install or upgrade the chart in the development cluster.

When a chartpress.yaml sits next to the chart directory, chartpress runs
first to build the images and point the chart at the fresh tags.`,
	Example: `  # Upgrade the release from a local chart checkout
  kindev chart-upgrade --chart ./jupyterhub

  # Pin a version and layer development values on top
  kindev chart-upgrade --chart ./jupyterhub --version 0.9.0 --values dev-values.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectChartUpgradeCommandHandler()
		if err != nil {
			return err
		}

		return handler.Handle(chartUpgradeChart, chartUpgradeRelease, chartUpgradeVersion, chartUpgradeValues, chartUpgradeSet)
	},
}
