package sidecar

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/world-monitor/desktop/iox"
	"github.com/world-monitor/desktop/log"
	"github.com/world-monitor/desktop/metrics"
	"github.com/world-monitor/desktop/platform"
	"github.com/world-monitor/desktop/types"
)

// Config configures a Supervisor.
type Config struct {
	// Mode selects the dev or packaged filesystem layout.
	Mode types.BuildMode
	// SourceDir is the launcher source directory (dev mode only).
	SourceDir string
	// ResourceDir is the installed bundle's resource directory.
	ResourceDir string
	// LogDir is the directory holding local-api.log.
	LogDir string
	// NodeBin is a configured runtime override. The LOCAL_API_NODE_BIN
	// environment variable still takes precedence over it.
	NodeBin string
	// Platform is the OS strategy. Defaults to platform.Detect().
	Platform platform.Platform
	// Events is the append-only launcher event log (nil-safe).
	Events *log.EventLog
	// Logger is the developer console logger. Defaults to a new stderr
	// logger tagged with this supervisor's launch ID.
	Logger *log.Logger
	// Collector receives lifecycle counters (nil disables metrics).
	Collector *metrics.Collector
	// Locator overrides runtime discovery (for testing).
	// If nil, uses Locate with the configured platform and override.
	Locator func() (string, bool)
}

// Supervisor owns at most one live sidecar process.
//
// The single child slot is the only shared state and is fully serialized
// behind one mutex. Start is idempotent while the slot is occupied; Stop
// unconditionally kills and clears. There is no post-spawn supervision: if
// the child exits on its own the slot still reads as occupied until Stop,
// and whatever the child said on the way down is in the sidecar log.
type Supervisor struct {
	cfg      Config
	launchID string

	mu  sync.Mutex
	cmd *exec.Cmd
}

// New creates a Supervisor. The child slot starts empty.
func New(cfg Config) *Supervisor {
	if cfg.Platform == nil {
		cfg.Platform = platform.Detect()
	}
	launchID := uuid.NewString()
	if cfg.Logger == nil {
		cfg.Logger = log.NewLogger(launchID)
	}
	return &Supervisor{cfg: cfg, launchID: launchID}
}

// LaunchID identifies this supervisor instance in console log entries.
func (s *Supervisor) LaunchID() string {
	return s.launchID
}

// SidecarLogPath returns the file receiving the child's merged output.
func (s *Supervisor) SidecarLogPath() string {
	return filepath.Join(s.cfg.LogDir, types.SidecarLogFile)
}

// Running reports whether the supervisor currently owns a child.
func (s *Supervisor) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cmd != nil
}

// Pid returns the owned child's process ID, if any.
func (s *Supervisor) Pid() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cmd == nil {
		return 0, false
	}
	return s.cmd.Process.Pid, true
}

// Start launches the sidecar if it is not already running.
//
// Repeated calls while a child is owned return nil without spawning a
// duplicate. On any failure the slot is left empty and a descriptive
// *LaunchError is returned; nothing is retried.
func (s *Supervisor) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cmd != nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.cfg.Collector.IncStartAttempt()

	if err := s.start(); err != nil {
		s.cfg.Collector.IncStartFailure(failureKind(err))
		s.cfg.Events.Errorf("local API sidecar failed to start: %v", err)
		s.cfg.Logger.Error("sidecar start failed", map[string]any{"error": err.Error()})
		return err
	}
	s.cfg.Collector.IncStarted()
	return nil
}

// start performs one launch attempt. Caller holds the lock with an empty slot.
func (s *Supervisor) start() error {
	paths := ResolvePaths(s.cfg.Mode, s.cfg.SourceDir, s.cfg.ResourceDir)
	if !fileExists(paths.Script) {
		return newLaunchError(ErrScriptMissing, "resolve", paths.Script, nil)
	}

	nodeBin, ok := s.locateRuntime()
	if !ok {
		return newLaunchError(ErrRuntimeNotFound, "locate", "",
			fmt.Errorf("install Node.js 18+ or set %s", types.EnvNodeBin))
	}

	logPath := s.SidecarLogPath()
	// Two independent append handles so stdout and stderr interleave into
	// the same file without sharing an offset with the parent.
	stdout, err := openSidecarLog(logPath)
	if err != nil {
		return newLaunchError(ErrLogOpenFailed, "open-log", logPath, err)
	}
	defer iox.DiscardClose(stdout)
	stderr, err := openSidecarLog(logPath)
	if err != nil {
		return newLaunchError(ErrLogOpenFailed, "open-log", logPath, err)
	}
	defer iox.DiscardClose(stderr)

	s.cfg.Events.Infof("starting local API sidecar script=%s resource_root=%s log=%s",
		paths.Script, paths.ResourceRoot, logPath)
	s.cfg.Events.Infof("resolved node binary=%s", nodeBin)

	cmd := exec.Command(nodeBin, paths.Script)
	cmd.Env = deduplicateEnv(append(os.Environ(),
		types.EnvPort+"="+types.LocalAPIPort,
		types.EnvResourceDir+"="+paths.ResourceRoot,
		types.EnvMode+"="+types.SidecarModeValue,
	))
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		return newLaunchError(ErrSpawnFailed, "spawn", nodeBin, err)
	}

	s.cmd = cmd
	s.cfg.Events.Infof("local API sidecar started pid=%d", cmd.Process.Pid)
	s.cfg.Logger.Info("sidecar started", map[string]any{
		"pid":           cmd.Process.Pid,
		"script":        paths.Script,
		"resource_root": paths.ResourceRoot,
		"node":          nodeBin,
	})
	return nil
}

// Stop terminates the owned child, if any. The kill is unconditional: no
// shutdown signal, no drain period. Safe no-op on an empty slot.
func (s *Supervisor) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cmd == nil {
		return
	}
	_ = s.cmd.Process.Kill()
	_ = s.cmd.Wait() // reap; exit state is irrelevant after a hard kill
	s.cmd = nil

	s.cfg.Collector.IncStopped()
	s.cfg.Events.Infof("local API sidecar stopped")
	s.cfg.Logger.Info("sidecar stopped", nil)
}

func (s *Supervisor) locateRuntime() (string, bool) {
	if s.cfg.Locator != nil {
		return s.cfg.Locator()
	}
	override := OverrideFromEnv()
	if override == "" {
		override = s.cfg.NodeBin
	}
	return Locate(s.cfg.Platform, override)
}

func openSidecarLog(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

// deduplicateEnv keeps the last occurrence of each env var key, so the
// injected sidecar variables win over inherited duplicates from os.Environ().
func deduplicateEnv(env []string) []string {
	seen := make(map[string]int, len(env))
	for i, entry := range env {
		key, _, _ := strings.Cut(entry, "=")
		seen[key] = i
	}
	result := make([]string, 0, len(seen))
	for i, entry := range env {
		key, _, _ := strings.Cut(entry, "=")
		if seen[key] == i {
			result = append(result, entry)
		}
	}
	return result
}
