package metrics

import (
	"fmt"
	"time"
)

// Stats is the per-run statistics block a renderer or harness owns.
// Visual accumulates the simulated playback delay; wall-clock time is
// measured from the last Reset.
type Stats struct {
	Counts
	Visual  time.Duration
	started time.Time
}

func (s *Stats) Reset(now time.Time) {
	s.Counts.Reset()
	s.Visual = 0
	s.started = now
}

func (s *Stats) Started() time.Time { return s.started }

func (s *Stats) Elapsed(now time.Time) time.Duration {
	if s.started.IsZero() {
		return 0
	}
	d := now.Sub(s.started)
	if d < 0 {
		return 0
	}
	return d
}

// Line formats the stats the way the renderers print them under a frame.
func (s *Stats) Line(now time.Time) string {
	return fmt.Sprintf("comparisons: %d  swaps: %d  writes: %d  visual: %s  elapsed: %s",
		s.Comparisons, s.Swaps, s.Writes,
		FormatDuration(s.Visual), FormatDuration(s.Elapsed(now)))
}

// FormatDuration renders d with a precision that suits sort runs:
// microseconds below a millisecond, milliseconds below a second.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
