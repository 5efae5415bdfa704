// Package sidecar owns the lifecycle of the local API sidecar process:
// resolving where its entry script lives, discovering a Node.js runtime able
// to execute it, and supervising exactly one child process instance.
package sidecar

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying launch failures.
// Use errors.Is(err, ErrXxx) for typed assertions.
var (
	// ErrScriptMissing indicates the resolved entry script does not exist.
	// Fatal to Start, harmless to the rest of the application.
	ErrScriptMissing = errors.New("sidecar script missing")

	// ErrRuntimeNotFound indicates no Node.js runtime was discovered.
	// Recoverable by operator action: install Node or set the override.
	ErrRuntimeNotFound = errors.New("node runtime not found")

	// ErrLogOpenFailed indicates the sidecar output log could not be opened
	// for redirection.
	ErrLogOpenFailed = errors.New("sidecar log open failed")

	// ErrSpawnFailed indicates the OS rejected process creation.
	ErrSpawnFailed = errors.New("sidecar spawn failed")
)

// LaunchError wraps an underlying error with launch-failure classification.
// It preserves the original error in the chain for errors.As inspection.
type LaunchError struct {
	// Kind is the sentinel for classification (e.g. ErrScriptMissing).
	Kind error
	// Op is the launch step that failed (resolve, locate, open-log, spawn).
	Op string
	// Path is the filesystem path involved, if any.
	Path string
	// Err is the underlying error, if any.
	Err error
}

func (e *LaunchError) Error() string {
	switch {
	case e.Path != "" && e.Err != nil:
		return fmt.Sprintf("%s %s: %v: %v", e.Op, e.Path, e.Kind, e.Err)
	case e.Path != "":
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Kind)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
}

// Unwrap returns the underlying error for errors.Is/As chain traversal.
func (e *LaunchError) Unwrap() error {
	return e.Err
}

// Is reports whether the error matches the target sentinel.
func (e *LaunchError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

func newLaunchError(kind error, op, path string, err error) *LaunchError {
	return &LaunchError{Kind: kind, Op: op, Path: path, Err: err}
}

// failureKind maps a launch error to its metrics label.
func failureKind(err error) string {
	switch {
	case errors.Is(err, ErrScriptMissing):
		return "script_missing"
	case errors.Is(err, ErrRuntimeNotFound):
		return "runtime_not_found"
	case errors.Is(err, ErrLogOpenFailed):
		return "log_open_failed"
	case errors.Is(err, ErrSpawnFailed):
		return "spawn_failed"
	default:
		return "other"
	}
}
