package cmd

import (
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/world-monitor/desktop/appdir"
	"github.com/world-monitor/desktop/cli/config"
	"github.com/world-monitor/desktop/types"
)

// settings is the merged view of config file values, CLI flags and
// platform defaults. Precedence: flags > config file > defaults.
type settings struct {
	Mode        types.BuildMode
	SourceDir   string
	ResourceDir string
	LogDir      string
	DataDir     string
	NodeBin     string
}

// resolveSettings builds the effective launcher settings for a command
// invocation.
//
// Defaults when neither flag nor config file provides a value:
//   - source dir: the current working directory
//   - resource dir: <executable dir>/resources
//   - log and data dirs: the platform app directories (created on demand)
func resolveSettings(c *cli.Context) (*settings, error) {
	cfg := &config.Config{}
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	s := &settings{
		Mode:        cfg.BuildMode(),
		SourceDir:   cfg.SourceDir,
		ResourceDir: cfg.ResourceDir,
		LogDir:      cfg.LogDir,
		DataDir:     cfg.DataDir,
		NodeBin:     cfg.NodeBin,
	}

	if c.Bool("dev") {
		s.Mode = types.BuildDev
	}
	if v := c.String("source-dir"); v != "" {
		s.SourceDir = v
	}
	if v := c.String("resource-dir"); v != "" {
		s.ResourceDir = v
	}
	if v := c.String("log-dir"); v != "" {
		s.LogDir = v
	}
	if v := c.String("data-dir"); v != "" {
		s.DataDir = v
	}
	if v := c.String("node-bin"); v != "" {
		s.NodeBin = v
	}

	if s.SourceDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		s.SourceDir = wd
	}
	if s.ResourceDir == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil, err
		}
		s.ResourceDir = filepath.Join(filepath.Dir(exe), "resources")
	}
	if s.LogDir == "" {
		dir, err := appdir.Logs()
		if err != nil {
			return nil, err
		}
		s.LogDir = dir
	}
	if s.DataDir == "" {
		dir, err := appdir.Data()
		if err != nil {
			return nil, err
		}
		s.DataDir = dir
	}

	return s, nil
}

// DesktopLogPath returns the launcher event log location.
func (s *settings) DesktopLogPath() string {
	return filepath.Join(s.LogDir, types.DesktopLogFile)
}

// SidecarLogPath returns the sidecar output log location.
func (s *settings) SidecarLogPath() string {
	return filepath.Join(s.LogDir, types.SidecarLogFile)
}

// CacheFilePath returns the persistent cache location.
func (s *settings) CacheFilePath() string {
	return filepath.Join(s.DataDir, types.CacheStoreFile)
}
