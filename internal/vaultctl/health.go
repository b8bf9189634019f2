package vaultctl

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/vaultshare/pkg/vaultsdk"
)

func (c *CLI) healthCommand() *cobra.Command {
	var server string

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check the readiness of a running server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client := vaultsdk.NewSDKClient(server)

			health, err := client.GetReadiness(cmd.Context())
			if health == nil {
				return fmt.Errorf("checking %s: %w", server, err)
			}

			if c.jsonOutput {
				if werr := writeJSON(out(cmd), health); werr != nil {
					return werr
				}
			} else {
				fmt.Fprintf(out(cmd), "status:   %s\nversion:  %s\nuptime:   %s\n", health.Status, health.Version, health.Uptime)
				if health.Checks != nil {
					fmt.Fprintf(out(cmd), "database: %s\n", health.Checks.Database)
				}
			}

			return err
		},
	}

	cmd.Flags().StringVar(&server, "server", "http://localhost:8080", "Server base URL")
	return cmd
}
