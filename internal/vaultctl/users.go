package vaultctl

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/vaultshare/internal/vault/service"
	"github.com/aussiebroadwan/vaultshare/internal/vault/store"
)

func (c *CLI) usersCommand() *cobra.Command {
	users := &cobra.Command{
		Use:   "users",
		Short: "Inspect registered users",
	}

	var page, limit int

	list := &cobra.Command{
		Use:   "list",
		Short: "List regular users with their stored account counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withStore(cmd, func(ctx context.Context, st store.Store) error {
				admin := &service.AdminService{Store: st}
				p, err := admin.ListUsers(ctx, page, limit)
				if err != nil {
					return fmt.Errorf("listing users: %w", err)
				}

				if c.jsonOutput {
					return writeJSON(out(cmd), p)
				}
				userTable(out(cmd), p)
				return nil
			})
		},
	}

	list.Flags().IntVar(&page, "page", 1, "Page number")
	list.Flags().IntVar(&limit, "limit", service.DefaultPageLimit, "Users per page")

	users.AddCommand(list)
	return users
}

func (c *CLI) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show registrations per month and stored accounts per domain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withStore(cmd, func(ctx context.Context, st store.Store) error {
				admin := &service.AdminService{Store: st}

				regs, err := admin.UserRegistrations(ctx)
				if err != nil {
					return fmt.Errorf("loading registrations: %w", err)
				}
				domains, err := admin.AccountsByDomain(ctx)
				if err != nil {
					return fmt.Errorf("loading domain counts: %w", err)
				}

				if c.jsonOutput {
					return writeJSON(out(cmd), struct {
						Registrations service.RegistrationStats `json:"registrations"`
						Domains       []service.DomainBucket    `json:"domains"`
					}{regs, domains})
				}
				statsTable(out(cmd), regs, domains)
				return nil
			})
		},
	}
}
