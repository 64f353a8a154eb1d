package viz

import (
	"slices"

	"github.com/san-kum/sortlab/internal/metrics"
)

// DefaultFrameLimit caps the frames a Recorder keeps.
const DefaultFrameLimit = 20_000

// Frame is one recorded step of a run.
type Frame struct {
	Data    []int
	Touched []int
	Counts  metrics.Counts
}

// Trace is a recorded run. Frames[0] is the input before any step.
type Trace struct {
	Label     string
	Frames    []Frame
	Counts    metrics.Counts
	Truncated bool
}

// Last returns the final frame of the trace.
func (t *Trace) Last() Frame {
	return t.Frames[len(t.Frames)-1]
}

// Recorder is a sink that keeps a copy of every frame for later replay.
// Once the limit is reached, counting continues but frames are dropped.
type Recorder struct {
	counts    metrics.Counts
	frames    []Frame
	limit     int
	truncated bool
}

func NewRecorder(input []int, limit int) *Recorder {
	if limit < 1 {
		limit = DefaultFrameLimit
	}
	return &Recorder{
		frames: []Frame{{Data: slices.Clone(input)}},
		limit:  limit,
	}
}

func (r *Recorder) Compare() { r.counts.Comparisons++ }
func (r *Recorder) Swap()    { r.counts.Swaps++ }
func (r *Recorder) Write()   { r.counts.Writes++ }

func (r *Recorder) Mutate(data, touched []int) {
	if len(r.frames) >= r.limit {
		r.truncated = true
		return
	}
	r.frames = append(r.frames, Frame{
		Data:    slices.Clone(data),
		Touched: slices.Clone(touched),
		Counts:  r.counts,
	})
}

// Trace finishes the recording. final is the sequence after the run; it is
// appended as a last frame when the limit dropped the tail.
func (r *Recorder) Trace(label string, final []int) *Trace {
	if r.truncated {
		r.frames = append(r.frames, Frame{Data: slices.Clone(final), Counts: r.counts})
	}
	return &Trace{
		Label:     label,
		Frames:    r.frames,
		Counts:    r.counts,
		Truncated: r.truncated,
	}
}
