package log

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// EventLog appends timestamped lines to a single log file.
//
// The contract is strictly best-effort: Append never blocks on anything but
// the write itself and never reports failure to the caller. Logging must not
// be able to take the host application down. Every call performs its own
// open/write/close so entries survive a crash of the launcher; there is no
// in-memory buffering and the file is never rotated or truncated here.
//
// Line format: [<unix-seconds>][<LEVEL>] <message>
type EventLog struct {
	path string
}

// NewEventLog returns an event log writing to path.
// The file is created on first append, not here.
func NewEventLog(path string) *EventLog {
	return &EventLog{path: path}
}

// Path returns the log file path.
func (e *EventLog) Path() string {
	if e == nil {
		return ""
	}
	return e.path
}

// Append writes one event line. Nil receivers and I/O failures are
// silently ignored.
func (e *EventLog) Append(level, message string) {
	if e == nil || e.path == "" {
		return
	}
	f, err := os.OpenFile(e.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	fmt.Fprintf(f, "[%d][%s] %s\n", time.Now().Unix(), strings.ToUpper(level), message)
	_ = f.Close()
}

// Infof appends a formatted INFO event.
func (e *EventLog) Infof(format string, args ...any) {
	e.Append("INFO", fmt.Sprintf(format, args...))
}

// Errorf appends a formatted ERROR event.
func (e *EventLog) Errorf(format string, args ...any) {
	e.Append("ERROR", fmt.Sprintf(format, args...))
}
