package sidecar

import (
	"path/filepath"

	"github.com/world-monitor/desktop/types"
)

// Paths locates the sidecar entry script and the resource tree handed to it.
// Computed once per launch attempt and never persisted.
type Paths struct {
	// Script is the absolute path of the sidecar entry script.
	Script string
	// ResourceRoot is the directory the sidecar should treat as its
	// bundled-resource root (exported as LOCAL_API_RESOURCE_DIR).
	ResourceRoot string
}

// ResolvePaths computes the sidecar paths for the given build mode.
//
// Dev mode uses the checkout layout: the script lives under
// <sourceDir>/sidecar/ and the resource root is the checkout root (the
// parent of sourceDir).
//
// Packaged mode probes the installed bundle: some packagers place resources
// directly under the resource dir, others lift them one level into _up_/.
// The probe checks for the bundled api/ tree in both spots and falls back to
// the resource dir unchanged when neither exists.
//
// ResolvePaths only checks for existence; it never creates directories and
// never fails. A missing script is the caller's problem to detect.
func ResolvePaths(mode types.BuildMode, sourceDir, resourceDir string) Paths {
	if mode == types.BuildDev {
		return Paths{
			Script:       filepath.Join(sourceDir, types.SidecarDir, types.SidecarScriptName),
			ResourceRoot: filepath.Dir(sourceDir),
		}
	}

	root := resourceDir
	if !fileExists(filepath.Join(resourceDir, "api")) {
		if lifted := filepath.Join(resourceDir, "_up_"); fileExists(filepath.Join(lifted, "api")) {
			root = lifted
		}
	}

	return Paths{
		Script:       filepath.Join(resourceDir, types.SidecarDir, types.SidecarScriptName),
		ResourceRoot: root,
	}
}
