// Package vaultctl implements the operator command line for the vault
// service. Commands talk to the database directly using the same
// configuration as the server, except health which goes over HTTP.
package vaultctl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/vaultshare/internal/vault/app"
	"github.com/aussiebroadwan/vaultshare/internal/vault/store"
	"github.com/aussiebroadwan/vaultshare/pkg/slogx"
)

// CLI carries the state shared by every command.
type CLI struct {
	// LoadConfig reads the service configuration. Defaults to app.LoadConfig.
	LoadConfig func() (app.Config, error)

	// ReadPassword reads a password without echo from the terminal.
	ReadPassword func(fd int) ([]byte, error)

	jsonOutput bool
	cfg        app.Config
	logger     *slog.Logger
}

// NewRootCommand builds the vaultctl command tree.
func NewRootCommand(c *CLI) *cobra.Command {
	if c.LoadConfig == nil {
		c.LoadConfig = app.LoadConfig
	}
	if c.ReadPassword == nil {
		c.ReadPassword = readTerminalPassword
	}

	root := &cobra.Command{
		Use:   "vaultctl",
		Short: "Operate a vaultshare deployment",
		Long: `vaultctl runs maintenance tasks against the vault database.

It reads the same VAULT_* environment as the server:
  vaultctl migrate                      Apply database migrations
  vaultctl create-admin --email X       Create an administrator
  vaultctl users list                   List registered users
  vaultctl health --server URL          Check a running server`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVar(&c.jsonOutput, "json", false, "Output as JSON")

	root.AddCommand(
		c.migrateCommand(),
		c.createAdminCommand(),
		c.usersCommand(),
		c.statsCommand(),
		c.restoreCommand("accounts", "account"),
		c.restoreCommand("workspaces", "workspace"),
		c.healthCommand(),
	)

	return root
}

// Execute runs vaultctl with the process arguments.
func Execute() error {
	root := NewRootCommand(&CLI{})
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// setup loads the configuration and the command logger. Logs go to stderr
// so that stdout stays parseable.
func (c *CLI) setup(cmd *cobra.Command) (context.Context, error) {
	cfg, err := c.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	c.cfg = cfg

	c.logger = slogx.New(slogx.Config{
		Service: "vaultctl",
		Version: app.BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  "text",
		Output:  cmd.ErrOrStderr(),
	})

	return slogx.WithContext(cmd.Context(), c.logger), nil
}

// withStore opens the configured store, runs fn and closes the store.
func (c *CLI) withStore(cmd *cobra.Command, fn func(ctx context.Context, st store.Store) error) error {
	ctx, err := c.setup(cmd)
	if err != nil {
		return err
	}

	st, err := app.OpenStore(ctx, c.cfg)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			c.logger.Error("error closing database", "error", err)
		}
	}()

	return fn(ctx, st)
}

func out(cmd *cobra.Command) io.Writer { return cmd.OutOrStdout() }
