// Package cmd provides CLI commands for the worldmon binary.
package cmd

import "github.com/urfave/cli/v2"

// Shared flags.
var (
	// FormatFlag selects output format: json, table, yaml.
	FormatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "Output format: json, table, yaml",
	}

	// TUIFlag enables Bubble Tea interactive mode.
	// Only valid for logs tail.
	TUIFlag = &cli.BoolFlag{
		Name:  "tui",
		Usage: "Enable interactive TUI mode (logs tail only)",
	}

	// ConfigFlag points at an optional worldmon.yaml file.
	ConfigFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to worldmon.yaml config file",
	}
)

// ReadOnlyFlags returns the shared flags for read-only commands.
func ReadOnlyFlags() []cli.Flag {
	return []cli.Flag{
		FormatFlag,
		ConfigFlag,
	}
}

// LayoutFlags returns the flags selecting the filesystem layout. They
// override the corresponding config file values.
func LayoutFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "dev",
			Usage: "Use the development checkout layout",
		},
		&cli.StringFlag{
			Name:  "source-dir",
			Usage: "Launcher source directory (dev mode)",
		},
		&cli.StringFlag{
			Name:  "resource-dir",
			Usage: "Installed bundle resource directory",
		},
		&cli.StringFlag{
			Name:  "log-dir",
			Usage: "Log directory override",
		},
		&cli.StringFlag{
			Name:  "data-dir",
			Usage: "Data directory override",
		},
		&cli.StringFlag{
			Name:  "node-bin",
			Usage: "Explicit Node.js binary (LOCAL_API_NODE_BIN still wins)",
		},
	}
}
