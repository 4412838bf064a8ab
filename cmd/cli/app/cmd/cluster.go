package cmd

import (
	"kindev/cmd/cli/app"

	"github.com/spf13/cobra"
)

var clusterRecreate bool

func init() {
	clusterCmd.AddCommand(clusterCreateCmd)
	clusterCmd.AddCommand(clusterDeleteCmd)
	clusterCreateCmd.Flags().BoolVar(&clusterRecreate, "recreate", false, "delete any existing cluster first")
	rootCmd.AddCommand(clusterCmd)
}

var clusterCmd = &cobra.Command{
	Use:   "cluster",
	Short: "Manage the local development cluster",
	Long:  `Manage the kind cluster the other commands deploy into.`,
}

var clusterCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create or start the development cluster",
	Long: `Create the kind cluster, its namespace, Calico networking, and tiller.

A cluster that still exists but whose control-plane container is stopped,
which is what a host reboot leaves behind, is started instead of recreated.
Running this against a healthy cluster does nothing.`,
	Example: `  # Bring the cluster up, reusing whatever already exists
  kindev cluster create

  # Throw the current cluster away and start over
  kindev cluster create --recreate`,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectClusterCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleCreate(clusterRecreate)
	},
}

var clusterDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the development cluster",
	Long:  `Delete the kind cluster and everything in it. Deleting a cluster that does not exist is not an error.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectClusterCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleDelete()
	},
}
