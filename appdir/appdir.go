// Package appdir resolves the launcher's per-user directories via the
// platform base-directory conventions (XDG on Linux, Library on macOS,
// AppData on Windows).
package appdir

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/world-monitor/desktop/types"
)

// AppName is the directory name used under the platform base directories.
const AppName = "world-monitor"

// Data returns the application data directory, creating it if needed.
// The persistent cache lives here.
func Data() (string, error) {
	return ensure(filepath.Join(xdg.DataHome, AppName))
}

// Logs returns the application log directory, creating it if needed.
// Both desktop.log and local-api.log live here.
func Logs() (string, error) {
	return ensure(filepath.Join(xdg.StateHome, AppName, "logs"))
}

// CacheFile returns the persistent cache path inside the data directory.
func CacheFile() (string, error) {
	dir, err := Data()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, types.CacheStoreFile), nil
}

// DesktopLog returns the launcher event log path inside the log directory.
func DesktopLog() (string, error) {
	dir, err := Logs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, types.DesktopLogFile), nil
}

// SidecarLog returns the sidecar output log path inside the log directory.
func SidecarLog() (string, error) {
	dir, err := Logs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, types.SidecarLogFile), nil
}

func ensure(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create app directory %s: %w", dir, err)
	}
	return dir, nil
}
