package sidecar

import (
	"os"
	"path/filepath"
	"testing"
)

// fakePlatform is a hermetic platform strategy: its common locations are
// fully controlled by the test, so host-installed runtimes cannot leak in.
type fakePlatform struct {
	binary string
	common []string
}

func (f fakePlatform) Name() string                 { return "test" }
func (f fakePlatform) RuntimeBinaryName() string    { return f.binary }
func (f fakePlatform) CommonRuntimePaths() []string { return f.common }

func (f fakePlatform) RevealCommand(string) (string, []string) { return "", nil }

func touch(t *testing.T, path string) string {
	t.Helper()
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("touch %s: %v", path, err)
	}
	return path
}

func TestLocate_OverrideWins(t *testing.T) {
	t.Setenv("PATH", "")
	override := touch(t, filepath.Join(t.TempDir(), "custom-node"))

	got, ok := Locate(fakePlatform{binary: "node"}, override)
	if !ok || got != override {
		t.Errorf("Locate = %q, %v; want override %q", got, ok, override)
	}
}

func TestLocate_DanglingOverrideFallsThrough(t *testing.T) {
	pathDir := t.TempDir()
	want := touch(t, filepath.Join(pathDir, "node"))
	t.Setenv("PATH", pathDir)

	got, ok := Locate(fakePlatform{binary: "node"}, filepath.Join(t.TempDir(), "no-such-node"))
	if !ok || got != want {
		t.Errorf("Locate = %q, %v; want PATH hit %q", got, ok, want)
	}
}

func TestLocate_PathScanOrder(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	want := touch(t, filepath.Join(second, "node"))
	t.Setenv("PATH", first+string(os.PathListSeparator)+second)

	got, ok := Locate(fakePlatform{binary: "node"}, "")
	if !ok || got != want {
		t.Errorf("Locate = %q, %v; want second PATH dir's %q", got, ok, want)
	}
}

func TestLocate_CommonLocations(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	missing := filepath.Join(t.TempDir(), "node")
	present := touch(t, filepath.Join(t.TempDir(), "node"))

	got, ok := Locate(fakePlatform{binary: "node", common: []string{missing, present}}, "")
	if !ok || got != present {
		t.Errorf("Locate = %q, %v; want common location %q", got, ok, present)
	}
}

func TestLocate_NothingFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	got, ok := Locate(fakePlatform{binary: "node"}, "")
	if ok {
		t.Errorf("Locate = %q, true; want absence", got)
	}
}
