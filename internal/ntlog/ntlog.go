// Package ntlog is the shared, leveled logging helper used by every
// reader and adapter package. It exists because the data-quality warnings
// described throughout this module's documentation (broken exponents,
// negative CuV values, duplicate bin edges) must never change a return
// value; they are reported on a side channel instead.
package ntlog

import (
	"log"
	"os"
	"sync"
)

// Logger is the minimal interface this package depends on, satisfied by
// *log.Logger. Tests may substitute their own implementation via SetDefault.
type Logger interface {
	Printf(format string, v ...interface{})
}

var (
	mu      sync.RWMutex
	current Logger = log.New(os.Stderr, "", log.LstdFlags)
)

// SetDefault swaps the package-level logger. Primarily used by tests that
// want to capture or silence warnings.
func SetDefault(l Logger) {
	mu.Lock()
	defer mu.Unlock()
	current = l
}

func get() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Warnf reports a data-quality warning. It never returns an error and must
// never be used to signal a structural, parse, or invariant failure.
func Warnf(format string, v ...interface{}) {
	get().Printf("WARN "+format, v...)
}

// Infof reports routine progress information, e.g. tally discovery during
// the meshtal reader's first pass.
func Infof(format string, v ...interface{}) {
	get().Printf("INFO "+format, v...)
}
