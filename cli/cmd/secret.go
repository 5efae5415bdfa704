package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/world-monitor/desktop/cli/render"
	"github.com/world-monitor/desktop/vault"
)

// SecretResponse is the response for secret get.
type SecretResponse struct {
	Key     string `json:"key"`
	Present bool   `json:"present"`
	Value   string `json:"value,omitempty"`
}

// SecretKeyRow is one row of secret list output.
type SecretKeyRow struct {
	Key string `json:"key"`
}

// SecretCommand returns the secret command with subcommands. Secrets live
// in the OS keychain under the fixed allowlist; the CLI is the same surface
// the settings UI uses.
func SecretCommand() *cli.Command {
	return &cli.Command{
		Name:  "secret",
		Usage: "Manage keychain credentials (fixed allowlist)",
		Subcommands: []*cli.Command{
			secretListCommand(),
			secretGetCommand(),
			secretSetCommand(),
			secretDeleteCommand(),
		},
	}
}

func secretListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List the supported secret keys",
		Flags: ReadOnlyFlags(),
		Action: func(c *cli.Context) error {
			r, err := render.NewRenderer(c)
			if err != nil {
				return err
			}
			keys := vault.SupportedKeys()
			rows := make([]SecretKeyRow, len(keys))
			for i, key := range keys {
				rows[i] = SecretKeyRow{Key: key}
			}
			return r.Render(rows)
		},
	}
}

func secretGetCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Read a credential from the keychain",
		ArgsUsage: "<key>",
		Flags:     ReadOnlyFlags(),
		Action: func(c *cli.Context) error {
			key, err := secretKeyArg(c)
			if err != nil {
				return err
			}
			r, err := render.NewRenderer(c)
			if err != nil {
				return err
			}
			value, present, err := vault.New().Get(key)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			return r.Render(SecretResponse{Key: key, Present: present, Value: value})
		},
	}
}

func secretSetCommand() *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     "Store a credential in the keychain",
		ArgsUsage: "<key> <value>",
		Action: func(c *cli.Context) error {
			key, err := secretKeyArg(c)
			if err != nil {
				return err
			}
			if c.NArg() < 2 {
				return cli.Exit("value required", 1)
			}
			if err := vault.New().Set(key, c.Args().Get(1)); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			fmt.Fprintf(c.App.Writer, "stored %s\n", key)
			return nil
		},
	}
}

func secretDeleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Remove a credential from the keychain",
		ArgsUsage: "<key>",
		Action: func(c *cli.Context) error {
			key, err := secretKeyArg(c)
			if err != nil {
				return err
			}
			if err := vault.New().Delete(key); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			fmt.Fprintf(c.App.Writer, "deleted %s\n", key)
			return nil
		},
	}
}

func secretKeyArg(c *cli.Context) (string, error) {
	if c.NArg() < 1 {
		return "", cli.Exit("secret key required", 1)
	}
	key := c.Args().First()
	if !vault.Supported(key) {
		return "", cli.Exit(fmt.Sprintf("unsupported secret key: %s (see worldmon secret list)", key), 1)
	}
	return key, nil
}
