// SPDX-License-Identifier: MIT
// Missing-data diagnostics. The emitter is gated by a package-level flag
// and routes through a pluggable handler so host applications can feed the
// message into their own logging; the library itself stays logger-free.

package numutil

import (
	"fmt"
	"log"
	"os"
)

// WarnOnMissing gates MissingWarning. Set it once at startup; the package
// performs no synchronization around it.
var WarnOnMissing = true

// WarningHandler receives diagnostic messages emitted by this package.
type WarningHandler func(msg string)

// stderrLog is the default sink: one unadorned line on stderr.
var stderrLog = log.New(os.Stderr, "", 0)

var warningHandler WarningHandler = func(msg string) { stderrLog.Print(msg) }

// SetWarningHandler replaces the warning sink and returns the previous one
// (handy for scoped capture in tests). A nil handler restores the default
// stderr sink.
func SetWarningHandler(h WarningHandler) WarningHandler {
	prev := warningHandler
	if h == nil {
		h = func(msg string) { stderrLog.Print(msg) }
	}
	warningHandler = h

	return prev
}

// MissingWarning counts the observations flagged missing and, when the
// count is positive and WarnOnMissing is set, emits a single warning
// through the handler. It always returns the count.
func MissingWarning(missing []bool) int {
	n := 0
	for _, miss := range missing {
		if miss {
			n++
		}
	}
	if n == 0 || !WarnOnMissing {
		return n
	}
	warningHandler(fmt.Sprintf(
		"numutil: inputs contain %d missing observations; rows with missing values are dropped", n))

	return n
}
