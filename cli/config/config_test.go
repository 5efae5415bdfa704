package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/world-monitor/desktop/types"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "worldmon.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	yaml := `dev: true
source_dir: /work/world-monitor/desktop
resource_dir: /opt/world-monitor/resources
log_dir: /var/log/world-monitor
data_dir: /var/lib/world-monitor
node_bin: /opt/homebrew/bin/node
`
	cfg, err := Load(writeTemp(t, yaml))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !cfg.Dev {
		t.Error("dev not parsed")
	}
	if cfg.SourceDir != "/work/world-monitor/desktop" {
		t.Errorf("source_dir = %q", cfg.SourceDir)
	}
	if cfg.ResourceDir != "/opt/world-monitor/resources" {
		t.Errorf("resource_dir = %q", cfg.ResourceDir)
	}
	if cfg.LogDir != "/var/log/world-monitor" {
		t.Errorf("log_dir = %q", cfg.LogDir)
	}
	if cfg.DataDir != "/var/lib/world-monitor" {
		t.Errorf("data_dir = %q", cfg.DataDir)
	}
	if cfg.NodeBin != "/opt/homebrew/bin/node" {
		t.Errorf("node_bin = %q", cfg.NodeBin)
	}
}

func TestLoad_EmptyConfigIsPackaged(t *testing.T) {
	cfg, err := Load(writeTemp(t, ""))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BuildMode() != types.BuildPackaged {
		t.Errorf("BuildMode = %q, want packaged default", cfg.BuildMode())
	}
}

func TestLoad_DevSelectsDevMode(t *testing.T) {
	cfg, err := Load(writeTemp(t, "dev: true\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BuildMode() != types.BuildDev {
		t.Errorf("BuildMode = %q, want dev", cfg.BuildMode())
	}
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("WM_TEST_NODE", "/custom/bin/node")

	cfg, err := Load(writeTemp(t, "node_bin: ${WM_TEST_NODE}\nlog_dir: ${WM_TEST_UNSET:-/tmp/logs}\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.NodeBin != "/custom/bin/node" {
		t.Errorf("node_bin = %q, env not expanded", cfg.NodeBin)
	}
	if cfg.LogDir != "/tmp/logs" {
		t.Errorf("log_dir = %q, default not applied", cfg.LogDir)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("err = %v, want not-found", err)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeTemp(t, "dev: [unclosed"))
	if err == nil || !strings.Contains(err.Error(), "invalid YAML") {
		t.Errorf("err = %v, want invalid YAML", err)
	}
}
