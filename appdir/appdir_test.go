package appdir

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
)

// redirectBaseDirs points the XDG base directories into a temp tree for the
// duration of the test.
func redirectBaseDirs(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(base, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(base, "state"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return base
}

func TestData_CreatesDirectory(t *testing.T) {
	redirectBaseDirs(t)

	dir, err := Data()
	if err != nil {
		t.Fatalf("Data: %v", err)
	}
	if !strings.HasSuffix(dir, AppName) {
		t.Errorf("data dir %q not under app name", dir)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("data dir not created: %v", err)
	}
}

func TestLogs_CreatesDirectory(t *testing.T) {
	redirectBaseDirs(t)

	dir, err := Logs()
	if err != nil {
		t.Fatalf("Logs: %v", err)
	}
	if !strings.HasSuffix(dir, filepath.Join(AppName, "logs")) {
		t.Errorf("log dir %q has unexpected shape", dir)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("log dir not created: %v", err)
	}
}

func TestFilePaths(t *testing.T) {
	redirectBaseDirs(t)

	cacheFile, err := CacheFile()
	if err != nil || filepath.Base(cacheFile) != "persistent-cache.json" {
		t.Errorf("CacheFile = %q, %v", cacheFile, err)
	}

	desktopLog, err := DesktopLog()
	if err != nil || filepath.Base(desktopLog) != "desktop.log" {
		t.Errorf("DesktopLog = %q, %v", desktopLog, err)
	}

	sidecarLog, err := SidecarLog()
	if err != nil || filepath.Base(sidecarLog) != "local-api.log" {
		t.Errorf("SidecarLog = %q, %v", sidecarLog, err)
	}
	if filepath.Dir(sidecarLog) != filepath.Dir(desktopLog) {
		t.Error("both log files should share the log directory")
	}
}
