// Package types holds shared constants and small value types for the
// world-monitor desktop launcher.
package types

// LocalAPIPort is the fixed local port the sidecar service listens on.
// It is handed to the sidecar via the LOCAL_API_PORT environment variable;
// the launcher never negotiates or probes it.
const LocalAPIPort = "46123"

// Sidecar entry script location, relative to the source or resource root.
const (
	SidecarDir        = "sidecar"
	SidecarScriptName = "local-api-server.mjs"
)

// Environment variables injected into the spawned sidecar process.
const (
	EnvPort        = "LOCAL_API_PORT"
	EnvResourceDir = "LOCAL_API_RESOURCE_DIR"
	EnvMode        = "LOCAL_API_MODE"
)

// EnvNodeBin is the operator override naming an explicit Node.js binary.
// It is consumed by the launcher, never injected into the child.
const EnvNodeBin = "LOCAL_API_NODE_BIN"

// SidecarModeValue is the LOCAL_API_MODE value identifying managed-sidecar
// execution, so the service adjusts its own path assumptions.
const SidecarModeValue = "desktop-sidecar"

// Log file names inside the launcher's log directory.
const (
	DesktopLogFile = "desktop.log"
	SidecarLogFile = "local-api.log"
	CacheStoreFile = "persistent-cache.json"
)

// BuildMode selects which filesystem layout rules apply when resolving
// the sidecar script and resource root.
type BuildMode string

const (
	// BuildDev runs against the development checkout layout.
	BuildDev BuildMode = "dev"
	// BuildPackaged runs against the installed bundle layout.
	BuildPackaged BuildMode = "packaged"
)
