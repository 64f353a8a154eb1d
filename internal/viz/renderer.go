package viz

import (
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortlab/internal/metrics"
)

const (
	DefaultBaseDelay   = 100 * time.Millisecond
	DefaultGraphHeight = 20

	// MinDelay and MaxDelay bound the per-step delay for any speed.
	MinDelay = time.Microsecond
	MaxDelay = 10 * time.Second
)

var ErrInvalidSpeed = errors.New("viz: speed must be positive and finite")

// ValidSpeed reports whether s can be used as a playback speed.
func ValidSpeed(s float64) error {
	if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSpeed, s)
	}
	return nil
}

// Delay is the pause after each visualized step: base/speed, clamped to
// [MinDelay, MaxDelay]. Speed 1 means no pause at all.
func Delay(speed float64, base time.Duration) time.Duration {
	if speed == 1 {
		return 0
	}
	d := float64(base) / speed
	switch {
	case math.IsNaN(d) || d < float64(MinDelay):
		return MinDelay
	case d > float64(MaxDelay):
		return MaxDelay
	}
	return time.Duration(d)
}

type Options struct {
	Theme       Theme
	BaseDelay   time.Duration
	GraphHeight int

	// Now and Sleep default to the wall clock.
	Now   func() time.Time
	Sleep func(time.Duration)
}

// Renderer draws the frames of a run. It is not safe for concurrent use.
type Renderer struct {
	mode   Mode
	screen Screen
	lr     *lipgloss.Renderer
	pal    *Palette

	snapshot []int
	marked   []bool
	stats    metrics.Stats
	label    string

	speed  float64
	base   time.Duration
	height int
	now    func() time.Time
	sleep  func(time.Duration)

	frame strings.Builder
	err   error
}

func NewList(screen Screen, opts Options) *Renderer {
	return NewRenderer(ModeList, screen, opts)
}

func NewGraph(screen Screen, opts Options) *Renderer {
	return NewRenderer(ModeGraph, screen, opts)
}

func NewRenderer(mode Mode, screen Screen, opts Options) *Renderer {
	if opts.Theme.Name == "" {
		opts.Theme = DefaultTheme
	}
	if opts.BaseDelay <= 0 {
		opts.BaseDelay = DefaultBaseDelay
	}
	if opts.GraphHeight < 1 {
		opts.GraphHeight = DefaultGraphHeight
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Sleep == nil {
		opts.Sleep = time.Sleep
	}

	lr := lipgloss.NewRenderer(screen)
	return &Renderer{
		mode:   mode,
		screen: screen,
		lr:     lr,
		pal:    newPalette(lr, opts.Theme),
		speed:  1,
		base:   opts.BaseDelay,
		height: opts.GraphHeight,
		now:    opts.Now,
		sleep:  opts.Sleep,
	}
}

func (r *Renderer) Mode() Mode { return r.mode }

func (r *Renderer) SetMode(m Mode) { r.mode = m }

func (r *Renderer) Speed() float64 { return r.speed }

func (r *Renderer) SetSpeed(s float64) error {
	if err := ValidSpeed(s); err != nil {
		return err
	}
	r.speed = s
	return nil
}

func (r *Renderer) Theme() Theme { return r.pal.Theme }

func (r *Renderer) SetTheme(t Theme) { r.pal = newPalette(r.lr, t) }

// SetLabel names the run in the frame title and the completion banner.
func (r *Renderer) SetLabel(label string) { r.label = label }

// Stats exposes the counters a sink increments during a run.
func (r *Renderer) Stats() *metrics.Stats { return &r.stats }

// Err returns the first error the screen reported.
func (r *Renderer) Err() error { return r.err }

// ResetStats zeroes the counters and visual time and restarts the clock.
// Call it right before a sort starts.
func (r *Renderer) ResetStats() {
	r.stats.Reset(r.now())
	r.err = nil
}

// RenderStep takes a snapshot of data, marks the touched indices and
// redraws the frame, then pauses according to the playback speed.
func (r *Renderer) RenderStep(data, touched []int) {
	r.snapshot = append(r.snapshot[:0], data...)
	r.marked = markSet(r.marked, len(r.snapshot), touched)

	r.frame.Reset()
	r.drawTitle()
	r.drawBody()
	r.frame.WriteString(r.pal.Stats.Render(r.stats.Line(r.now())))
	r.frame.WriteString("\n")
	r.flush()

	if d := Delay(r.speed, r.base); d > 0 {
		r.stats.Visual += d
		r.sleep(d)
	}
}

// FinalRender redraws the last snapshot without markers or delay and
// appends a completion banner.
func (r *Renderer) FinalRender() {
	r.marked = markSet(r.marked, len(r.snapshot), nil)

	r.frame.Reset()
	r.drawTitle()
	r.drawBody()
	r.frame.WriteString(r.pal.Stats.Render(r.stats.Line(r.now())))
	r.frame.WriteString("\n")
	r.frame.WriteString(r.banner())
	r.frame.WriteString("\n")
	r.flush()
}

// Show draws data without markers or statistics.
func (r *Renderer) Show(data []int) {
	r.snapshot = append(r.snapshot[:0], data...)
	r.marked = markSet(r.marked, len(r.snapshot), nil)

	r.frame.Reset()
	r.drawBody()
	r.flush()
}

// Snapshot returns a copy of the last drawn sequence.
func (r *Renderer) Snapshot() []int { return slices.Clone(r.snapshot) }

func (r *Renderer) drawTitle() {
	if r.label == "" {
		return
	}
	r.frame.WriteString(r.pal.Title.Render(fmt.Sprintf("%s  (%d elements, %s)", r.label, len(r.snapshot), r.mode)))
	r.frame.WriteString("\n")
}

func (r *Renderer) drawBody() {
	if r.mode == ModeGraph {
		drawGraph(&r.frame, r.pal, r.snapshot, r.marked, r.height)
		return
	}
	drawList(&r.frame, r.pal, r.snapshot, r.marked)
}

func (r *Renderer) banner() string {
	label := r.label
	if label == "" {
		label = "sort"
	}
	if slices.IsSorted(r.snapshot) {
		return r.pal.Done.Render(fmt.Sprintf("✔ %s finished: %d elements sorted", label, len(r.snapshot)))
	}
	return r.pal.Failed.Render(fmt.Sprintf("✘ %s finished: %d elements NOT sorted", label, len(r.snapshot)))
}

func (r *Renderer) flush() {
	if r.err != nil {
		return
	}
	if err := r.screen.Clear(); err != nil {
		r.err = err
		return
	}
	if _, err := io.WriteString(r.screen, r.frame.String()); err != nil {
		r.err = err
	}
}
