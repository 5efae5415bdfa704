package sidecar

import (
	"os"
	"path/filepath"

	"github.com/world-monitor/desktop/platform"
	"github.com/world-monitor/desktop/types"
)

// Locate discovers a Node.js runtime binary able to execute the sidecar
// script. Search order, first match wins:
//
//  1. The explicit override path, accepted only if it exists on disk.
//     A dangling override is ignored, not an error.
//  2. Every directory in PATH, in order, for the platform's binary name.
//  3. The platform's fixed list of common install locations.
//
// Discovery runs fresh on every start attempt; nothing is cached. Absence
// is reported as false, never as an error: the caller turns it into a
// user-facing message naming the override variable.
func Locate(plat platform.Platform, override string) (string, bool) {
	if override != "" && fileExists(override) {
		return override, true
	}

	name := plat.RuntimeBinaryName()
	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		if fileExists(candidate) {
			return candidate, true
		}
	}

	for _, candidate := range plat.CommonRuntimePaths() {
		if fileExists(candidate) {
			return candidate, true
		}
	}

	return "", false
}

// OverrideFromEnv returns the operator-supplied runtime override, if any.
func OverrideFromEnv() string {
	return os.Getenv(types.EnvNodeBin)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
