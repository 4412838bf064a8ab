package cmd

import (
	"kindev/cmd/cli/app"

	"github.com/spf13/cobra"
)

var (
	portForwardService    string
	portForwardRemotePort int
)

func init() {
	portForwardCmd.Flags().StringVar(&portForwardService, "service", "proxy-public", "service to forward to")
	portForwardCmd.Flags().IntVar(&portForwardRemotePort, "remote-port", 80, "service port to forward to")
	rootCmd.AddCommand(portForwardCmd)
}

var portForwardCmd = &cobra.Command{
	Use:   "port-forward",
	Short: "Forward a local port to a service in the cluster",
	Long: `Forward the configured local port to a service in the work namespace and
probe it once so you immediately know whether anything answers. The tunnel
stays up until interrupted, whatever the probe finds.`,
	Example: `  # Reach the hub at http://127.0.0.1:8080
  kindev port-forward

  # Forward to a different service and port
  kindev port-forward --service hub --remote-port 8081`,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectPortForwardCommandHandler()
		if err != nil {
			return err
		}

		return handler.Handle(portForwardService, portForwardRemotePort)
	},
}
