package config

import "github.com/world-monitor/desktop/types"

// Config represents a worldmon.yaml configuration file.
// All values are optional and act as defaults for worldmon run flags.
// CLI flags always override config values, and the LOCAL_API_NODE_BIN
// environment variable always overrides NodeBin.
type Config struct {
	// Dev switches to the development checkout layout.
	Dev bool `yaml:"dev"`
	// SourceDir is the launcher source directory (dev mode).
	SourceDir string `yaml:"source_dir"`
	// ResourceDir is the installed bundle's resource directory.
	ResourceDir string `yaml:"resource_dir"`
	// LogDir overrides the platform log directory.
	LogDir string `yaml:"log_dir"`
	// DataDir overrides the platform data directory (persistent cache).
	DataDir string `yaml:"data_dir"`
	// NodeBin names an explicit Node.js binary to run the sidecar with.
	NodeBin string `yaml:"node_bin"`
}

// BuildMode returns the build mode the config selects.
func (c *Config) BuildMode() types.BuildMode {
	if c.Dev {
		return types.BuildDev
	}
	return types.BuildPackaged
}
