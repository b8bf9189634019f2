package vaultctl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aussiebroadwan/vaultshare/internal/vault/service"
	"github.com/aussiebroadwan/vaultshare/internal/vault/store"
	"github.com/aussiebroadwan/vaultshare/pkg/cryptox"
)

func readTerminalPassword(fd int) ([]byte, error) {
	return term.ReadPassword(fd)
}

func (c *CLI) createAdminCommand() *cobra.Command {
	var (
		email    string
		name     string
		password string
		generate bool
	)

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		Long: `Create an administrator account. The account is active immediately.

  vaultctl create-admin --email root@example.com            Prompt for the password
  vaultctl create-admin --email root@example.com --generate Print a random password`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if email == "" {
				return errors.New("--email is required")
			}

			switch {
			case generate && password != "":
				return errors.New("--password and --generate are mutually exclusive")
			case generate:
				pw, err := cryptox.GeneratePassword()
				if err != nil {
					return err
				}
				password = pw
			case password == "":
				pw, err := c.promptPassword(cmd)
				if err != nil {
					return err
				}
				password = pw
			}

			return c.withStore(cmd, func(ctx context.Context, st store.Store) error {
				bootstrap := &service.BootstrapService{Store: st}
				u, err := bootstrap.CreateAdmin(ctx, name, email, password)
				if err != nil {
					return fmt.Errorf("creating admin: %w", err)
				}

				fmt.Fprintf(out(cmd), "Created administrator %s (%s).\n", u.Email, u.ID)
				if generate {
					fmt.Fprintf(out(cmd), "Password: %s\n", password)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Administrator email (required)")
	cmd.Flags().StringVar(&name, "name", service.DefaultAdminName, "Display name")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")
	cmd.Flags().BoolVar(&generate, "generate", false, "Generate a random password")

	return cmd
}

// promptPassword reads the password without echo when stdin is a terminal,
// otherwise it reads one line from the command input.
func (c *CLI) promptPassword(cmd *cobra.Command) (string, error) {
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		pw, err := c.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		if len(pw) == 0 {
			return "", errors.New("password must not be empty")
		}
		return string(pw), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return "", errors.New("password must not be empty")
	}
	return line, nil
}
