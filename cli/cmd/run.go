package cmd

import (
	"context"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/world-monitor/desktop/log"
	"github.com/world-monitor/desktop/metrics"
	"github.com/world-monitor/desktop/sidecar"
	"github.com/world-monitor/desktop/types"
)

// RunCommand returns the run command: the application lifecycle glue.
//
// run starts the local API sidecar, then blocks until the process receives
// SIGINT or SIGTERM and stops the sidecar exactly once before exiting. A
// sidecar start failure is logged but does not abort the launcher: the rest
// of the application keeps running without the local service, exactly as the
// desktop shell behaves when the sidecar is unavailable.
func RunCommand() *cli.Command {
	return &cli.Command{
		Name:   "run",
		Usage:  "Run the launcher: supervise the local API sidecar until exit",
		Flags:  append([]cli.Flag{ConfigFlag}, LayoutFlags()...),
		Action: runAction,
	}
}

func runAction(c *cli.Context) error {
	s, err := resolveSettings(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	collector := metrics.NewCollector()
	sup := sidecar.New(sidecar.Config{
		Mode:        s.Mode,
		SourceDir:   s.SourceDir,
		ResourceDir: s.ResourceDir,
		LogDir:      s.LogDir,
		NodeBin:     s.NodeBin,
		Events:      log.NewEventLog(filepath.Join(s.LogDir, types.DesktopLogFile)),
		Collector:   collector,
	})
	console := log.NewLogger(sup.LaunchID()).Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start failures are already written to desktop.log and the console by
	// the supervisor; the launcher keeps running regardless.
	if err := sup.Start(ctx); err == nil {
		if pid, ok := sup.Pid(); ok {
			console.Infof("local API sidecar running pid=%d port=%s", pid, types.LocalAPIPort)
		}
	}
	console.Infof("launcher running, press Ctrl+C to exit")

	<-ctx.Done()

	sup.Stop()
	snap := collector.Snapshot()
	console.Infof("launcher shut down starts=%d start_failures=%d stops=%d",
		snap.Starts, snap.StartFailures, snap.Stops)
	return nil
}
