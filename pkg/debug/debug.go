// Package debug provides conditional debug logging for folio.
//
// Debug logging is enabled by setting the FOLIO_DEBUG environment variable:
//
//	FOLIO_DEBUG=1 folio 2>debug.log
//
// When enabled, messages are written to stderr with timestamps. When
// disabled (default), every function is a no-op. The TUI owns the terminal,
// so redirect stderr when debugging an interactive session.
package debug

import (
	"io"
	"log"
	"os"
	"time"
)

const prefix = "[FOLIO_DEBUG] "

var (
	// enabled is true when FOLIO_DEBUG is set
	enabled bool
	logger  *log.Logger
)

func init() {
	if os.Getenv("FOLIO_DEBUG") != "" {
		SetEnabled(true)
	}
}

// Enabled returns whether debug logging is enabled.
func Enabled() bool {
	return enabled
}

// SetEnabled allows programmatic control of debug logging.
func SetEnabled(e bool) {
	enabled = e
	if e && logger == nil {
		logger = log.New(os.Stderr, prefix, log.Ltime|log.Lmicroseconds)
	}
}

// SetOutput redirects debug output, e.g. to a buffer in tests.
func SetOutput(w io.Writer) {
	logger = log.New(w, prefix, log.Ltime|log.Lmicroseconds)
}

// Log writes a printf-style debug message if debug logging is enabled.
func Log(format string, args ...any) {
	if !enabled {
		return
	}
	logger.Printf(format, args...)
}

// LogIf writes a debug message only if the condition is true.
func LogIf(cond bool, format string, args ...any) {
	if !enabled || !cond {
		return
	}
	logger.Printf(format, args...)
}

// LogTiming writes a timing message if debug logging is enabled.
func LogTiming(name string, d time.Duration) {
	if !enabled {
		return
	}
	logger.Printf("%s took %v", name, d)
}

// LogEnterExit logs entry and exit with timing:
//
//	defer debug.LogEnterExit("layout")()
func LogEnterExit(name string) func() {
	if !enabled {
		return func() {}
	}
	logger.Printf("-> %s", name)
	start := time.Now()
	return func() {
		logger.Printf("<- %s (%v)", name, time.Since(start))
	}
}
