package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/world-monitor/desktop/cli/render"
	"github.com/world-monitor/desktop/cli/tui"
	"github.com/world-monitor/desktop/platform"
)

// LogPathsResponse reports where the launcher writes its log files.
type LogPathsResponse struct {
	LogDir     string `json:"log_dir"`
	DesktopLog string `json:"desktop_log"`
	SidecarLog string `json:"sidecar_log"`
}

// apiFlag selects the sidecar log instead of the launcher log.
var apiFlag = &cli.BoolFlag{
	Name:  "api",
	Usage: "Target the local API sidecar log instead of the launcher log",
}

// LogsCommand returns the logs command with subcommands.
func LogsCommand() *cli.Command {
	return &cli.Command{
		Name:  "logs",
		Usage: "Locate, open, and follow the launcher log files",
		Subcommands: []*cli.Command{
			logsPathCommand(),
			logsOpenCommand(),
			logsOpenAPICommand(),
			logsTailCommand(),
		},
	}
}

func logsPathCommand() *cli.Command {
	return &cli.Command{
		Name:  "path",
		Usage: "Print the log file locations",
		Flags: append(ReadOnlyFlags(), LayoutFlags()...),
		Action: func(c *cli.Context) error {
			r, err := render.NewRenderer(c)
			if err != nil {
				return err
			}
			s, err := resolveSettings(c)
			if err != nil {
				return err
			}
			return r.Render(LogPathsResponse{
				LogDir:     s.LogDir,
				DesktopLog: s.DesktopLogPath(),
				SidecarLog: s.SidecarLogPath(),
			})
		},
	}
}

func logsOpenCommand() *cli.Command {
	return &cli.Command{
		Name:  "open",
		Usage: "Open the log folder in the file manager",
		Flags: append([]cli.Flag{ConfigFlag}, LayoutFlags()...),
		Action: func(c *cli.Context) error {
			s, err := resolveSettings(c)
			if err != nil {
				return err
			}
			if err := platform.Reveal(platform.Detect(), s.LogDir); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			fmt.Fprintln(c.App.Writer, s.LogDir)
			return nil
		},
	}
}

func logsOpenAPICommand() *cli.Command {
	return &cli.Command{
		Name:  "open-api",
		Usage: "Open the local API sidecar log with the OS default handler",
		Flags: append([]cli.Flag{ConfigFlag}, LayoutFlags()...),
		Action: func(c *cli.Context) error {
			s, err := resolveSettings(c)
			if err != nil {
				return err
			}
			path := s.SidecarLogPath()
			// Create an empty file rather than handing the viewer a
			// missing path, mirroring what first launch produces.
			if _, err := os.Stat(path); os.IsNotExist(err) {
				f, cerr := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if cerr != nil {
					return cli.Exit(cerr.Error(), 1)
				}
				f.Close()
			}
			if err := platform.Reveal(platform.Detect(), path); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			fmt.Fprintln(c.App.Writer, path)
			return nil
		},
	}
}

func logsTailCommand() *cli.Command {
	return &cli.Command{
		Name:  "tail",
		Usage: "Print the end of a log file, or follow it with --tui",
		Flags: append([]cli.Flag{
			ConfigFlag,
			apiFlag,
			TUIFlag,
			&cli.IntFlag{
				Name:  "lines",
				Usage: "Number of trailing lines to print",
				Value: 50,
			},
		}, LayoutFlags()...),
		Action: func(c *cli.Context) error {
			s, err := resolveSettings(c)
			if err != nil {
				return err
			}
			path := s.DesktopLogPath()
			if c.Bool("api") {
				path = s.SidecarLogPath()
			}
			if c.Bool("tui") {
				return tui.Run(path)
			}
			return printTail(c, path, c.Int("lines"))
		},
	}
}

// printTail writes the last n lines of the file to the command writer. A
// missing log file reads as empty.
func printTail(c *cli.Context, path string, n int) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil
	}
	if n > 0 && len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	for _, line := range lines {
		fmt.Fprintln(c.App.Writer, line)
	}
	return nil
}
