// Package platform isolates the OS-specific knowledge the launcher needs:
// what the Node.js runtime binary is called, where package managers commonly
// install it, and how to reveal a path in the desktop file manager.
//
// The strategy is selected once at startup from the running OS tag rather
// than branching inline at each call site. Two families exist: POSIX-like
// (parameterized by the reveal tool) and Windows.
package platform

import "runtime"

// Platform is the OS strategy consumed by the sidecar locator and the
// log-reveal actions.
type Platform interface {
	// Name returns the OS tag this strategy was selected for.
	Name() string
	// RuntimeBinaryName returns the Node.js executable file name.
	RuntimeBinaryName() string
	// CommonRuntimePaths returns absolute candidate paths for the runtime
	// binary in fixed priority order, checked after the PATH scan.
	CommonRuntimePaths() []string
	// RevealCommand returns the program and arguments that open the given
	// path in the platform's file manager or default handler.
	RevealCommand(path string) (string, []string)
}

// Detect returns the strategy for the running OS.
func Detect() Platform {
	return ForOS(runtime.GOOS)
}

// ForOS returns the strategy for an explicit OS tag. Unrecognized tags get
// the generic POSIX strategy.
func ForOS(goos string) Platform {
	switch goos {
	case "windows":
		return windowsPlatform{}
	case "darwin":
		return posixPlatform{goos: goos, revealTool: "open"}
	default:
		return posixPlatform{goos: goos, revealTool: "xdg-open"}
	}
}

// posixPlatform covers macOS, Linux and the BSDs. The candidate install
// prefixes are shared across the family: Homebrew's Apple-silicon prefix and
// MacPorts are harmless no-ops on non-mac systems.
type posixPlatform struct {
	goos       string
	revealTool string
}

func (p posixPlatform) Name() string              { return p.goos }
func (p posixPlatform) RuntimeBinaryName() string { return "node" }

func (p posixPlatform) CommonRuntimePaths() []string {
	return []string{
		"/opt/homebrew/bin/node",
		"/usr/local/bin/node",
		"/usr/bin/node",
		"/opt/local/bin/node",
	}
}

func (p posixPlatform) RevealCommand(path string) (string, []string) {
	return p.revealTool, []string{path}
}

type windowsPlatform struct{}

func (windowsPlatform) Name() string              { return "windows" }
func (windowsPlatform) RuntimeBinaryName() string { return "node.exe" }

func (windowsPlatform) CommonRuntimePaths() []string {
	return []string{
		`C:\Program Files\nodejs\node.exe`,
		`C:\Program Files (x86)\nodejs\node.exe`,
	}
}

func (windowsPlatform) RevealCommand(path string) (string, []string) {
	return "explorer", []string{path}
}
