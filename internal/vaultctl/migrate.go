package vaultctl

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/vaultshare/internal/vault/store"
)

func (c *CLI) migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations for the configured driver",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withStore(cmd, func(ctx context.Context, st store.Store) error {
				if err := st.ApplyMigrations(ctx); err != nil {
					return fmt.Errorf("applying migrations: %w", err)
				}
				fmt.Fprintf(out(cmd), "Migrations applied (%s).\n", c.cfg.DBDriver)
				return nil
			})
		},
	}
}
