package vaultctl

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/vaultshare/internal/vault/service"
	"github.com/aussiebroadwan/vaultshare/internal/vault/store"
	"github.com/aussiebroadwan/vaultshare/pkg/idx"
)

// restoreCommand builds "<group> restore ID" for a soft-deletable entity.
func (c *CLI) restoreCommand(group, noun string) *cobra.Command {
	parent := &cobra.Command{
		Use:   group,
		Short: fmt.Sprintf("Manage stored %s", group),
	}

	parent.AddCommand(&cobra.Command{
		Use:   "restore ID",
		Short: fmt.Sprintf("Undo the soft delete of a %s", noun),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idx.Parse(args[0])
			if err != nil {
				return fmt.Errorf("%q is not a %s id: %w", args[0], noun, err)
			}

			return c.withStore(cmd, func(ctx context.Context, st store.Store) error {
				var err error
				switch group {
				case "accounts":
					err = (&service.AccountService{Store: st}).Restore(ctx, id.String())
				default:
					err = (&service.WorkspaceService{Store: st}).Restore(ctx, id.String())
				}
				if err != nil {
					return fmt.Errorf("restoring %s %s: %w", noun, id, err)
				}

				fmt.Fprintf(out(cmd), "Restored %s %s.\n", noun, id)
				return nil
			})
		},
	})

	return parent
}
