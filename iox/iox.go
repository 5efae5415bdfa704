// Package iox provides small I/O cleanup helpers.
package iox

import "io"

// DiscardClose closes c and discards the error. For defer statements where
// a close failure is unactionable, like the parent's copies of the sidecar
// log handles after spawn:
//
//	defer iox.DiscardClose(f)
func DiscardClose(c io.Closer) { _ = c.Close() }
