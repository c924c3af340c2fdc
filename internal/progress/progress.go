// Package progress reports coarse-grained resource and throughput
// information while the meshtal reader streams large files. It replaces
// the progress bar the original tooling drove from a terminal, with a
// periodic log line instead since this module has no interactive shell.
package progress

import (
	"os"
	"time"

	"github.com/repositony/ntools-go/internal/ntlog"
	"github.com/shirou/gopsutil/process"
)

// Reporter tracks line throughput and emits an occasional info log.
// A zero-value Reporter is usable but reports no memory statistics.
type Reporter struct {
	label     string
	every     time.Duration
	lastEmit  time.Time
	lines     int64
	startedAt time.Time
	proc      *process.Process
}

// New builds a Reporter labeled for the current operation (typically a
// tally id or file name), emitting at most once per `every`.
func New(label string, every time.Duration) *Reporter {
	r := &Reporter{label: label, every: every, startedAt: time.Now()}
	if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
		r.proc = p
	}
	return r
}

// Tick records one processed line and, if enough time has elapsed since
// the last emission, logs a progress line including RSS if available.
func (r *Reporter) Tick() {
	r.lines++
	now := time.Now()
	if r.every <= 0 || now.Sub(r.lastEmit) < r.every {
		return
	}
	r.lastEmit = now
	rate := float64(r.lines) / now.Sub(r.startedAt).Seconds()
	if r.proc != nil {
		if mem, err := r.proc.MemoryInfo(); err == nil {
			ntlog.Infof("%s: %d lines (%.0f lines/s), rss=%dMB", r.label, r.lines, rate, mem.RSS/(1024*1024))
			return
		}
	}
	ntlog.Infof("%s: %d lines (%.0f lines/s)", r.label, r.lines, rate)
}

// Done emits a final summary line regardless of the throttle interval.
func (r *Reporter) Done() {
	ntlog.Infof("%s: done, %d lines in %s", r.label, r.lines, time.Since(r.startedAt).Round(time.Millisecond))
}
