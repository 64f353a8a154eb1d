// Package app owns the current sequence and dispatches parsed commands to
// the generator, the renderer and the comparison harness.
package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/san-kum/sortlab/internal/command"
	"github.com/san-kum/sortlab/internal/config"
	"github.com/san-kum/sortlab/internal/experiment"
	"github.com/san-kum/sortlab/internal/sequence"
	"github.com/san-kum/sortlab/internal/sorting"
	"github.com/san-kum/sortlab/internal/viz"
)

// ErrTooSmall is reported instead of sorting fewer than two elements.
var ErrTooSmall = errors.New("too small to sort")

type Options struct {
	Config *config.Config

	// Screen receives frames. Out receives status lines and reports; it
	// defaults to Screen.
	Screen viz.Screen
	Out    io.Writer

	Logger    *slog.Logger
	Generator *sequence.Generator
	Harness   *experiment.Harness

	// Render overrides the clock of the renderer; its theme, delay and
	// height come from Config.
	Render viz.Options

	// Prompt prints a prompt before every line Run reads.
	Prompt bool
}

// Controller is the application state between commands. It is not safe
// for concurrent use.
type Controller struct {
	cfg      *config.Config
	seq      []int
	renderer *viz.Renderer
	gen      *sequence.Generator
	harness  *experiment.Harness
	out      io.Writer
	log      *slog.Logger
	now      func() time.Time
	prompt   bool

	okColor   *color.Color
	errColor  *color.Color
	infoColor *color.Color
}

func New(opts Options) (*Controller, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.Screen == nil {
		return nil, errors.New("app: no screen")
	}
	mode, err := viz.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}
	theme, err := viz.ThemeByName(cfg.Theme)
	if err != nil {
		return nil, err
	}

	ropts := opts.Render
	if ropts.Now == nil {
		ropts.Now = time.Now
	}
	ropts.Theme = theme
	ropts.BaseDelay = time.Duration(cfg.BaseDelayMs) * time.Millisecond
	ropts.GraphHeight = cfg.GraphHeight
	renderer := viz.NewRenderer(mode, opts.Screen, ropts)
	if err := renderer.SetSpeed(cfg.Speed); err != nil {
		return nil, err
	}

	c := &Controller{
		cfg:       cfg,
		seq:       slices.Clone(cfg.Sequence),
		renderer:  renderer,
		gen:       opts.Generator,
		harness:   opts.Harness,
		out:       opts.Out,
		log:       opts.Logger,
		now:       ropts.Now,
		prompt:    opts.Prompt,
		okColor:   color.New(color.FgGreen),
		errColor:  color.New(color.FgRed, color.Bold),
		infoColor: color.New(color.FgCyan),
	}
	if c.out == nil {
		c.out = opts.Screen
	}
	if c.gen == nil {
		c.gen = sequence.NewGenerator(cfg.Seed)
	}
	if c.harness == nil {
		c.harness = experiment.NewHarness()
	}
	if c.log == nil {
		c.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if !viz.IsTerminal(c.out) {
		for _, col := range []*color.Color{c.okColor, c.errColor, c.infoColor} {
			col.DisableColor()
		}
	}
	return c, nil
}

// Sequence returns a copy of the current sequence.
func (c *Controller) Sequence() []int { return slices.Clone(c.seq) }

func (c *Controller) SetSequence(data []int) { c.seq = slices.Clone(data) }

func (c *Controller) Mode() viz.Mode { return c.renderer.Mode() }

func (c *Controller) Speed() float64 { return c.renderer.Speed() }

// Execute applies cmd. It reports quit for the exit command. On error the
// controller state is unchanged.
func (c *Controller) Execute(cmd command.Command) (quit bool, err error) {
	c.log.Debug("dispatch", "command", cmd.Kind)

	switch cmd.Kind {
	case command.Help:
		fmt.Fprintln(c.out, command.Usage)
	case command.Exit:
		return true, nil
	case command.Randomize:
		c.gen.Shuffle(c.seq)
		c.show()
	case command.Generate:
		return false, c.generate(cmd)
	case command.GenerateFull:
		data, err := c.gen.Full(cmd.Range)
		if err != nil {
			return false, err
		}
		c.replace(data, "generated every value of "+cmd.Range.String())
	case command.Preset:
		n := cmd.Count
		if n == 0 {
			n = c.defaultCount()
		}
		data, err := c.gen.Preset(cmd.Name, n)
		if err != nil {
			return false, err
		}
		c.replace(data, "loaded preset "+cmd.Name)
	case command.ReadList:
		data, err := sequence.ReadFile(cmd.Path)
		if err != nil {
			return false, err
		}
		c.replace(data, "read "+cmd.Path)
	case command.SetMode:
		c.renderer.SetMode(cmd.Mode)
		c.status("render mode: %s", cmd.Mode)
		c.show()
	case command.Speed:
		if err := c.renderer.SetSpeed(cmd.Speed); err != nil {
			return false, err
		}
		c.status("speed: %gx (step delay %s)", cmd.Speed, viz.Delay(cmd.Speed, c.baseDelay()))
	case command.Sort:
		return false, c.Sort(cmd.Algorithm)
	case command.Compare:
		return false, c.Compare(cmd.Algorithm, cmd.Other)
	case command.Algorithms:
		return false, c.listAlgorithms()
	case command.Show:
		c.show()
	default:
		return false, fmt.Errorf("%w: %v", command.ErrUnknownCommand, cmd.Kind)
	}
	return false, nil
}

// Sort runs a visualized sort of the current sequence.
func (c *Controller) Sort(a sorting.Algorithm) error {
	if len(c.seq) < 2 {
		c.status("%s", ErrTooSmall)
		return nil
	}
	if err := a.Check(c.seq); err != nil {
		return err
	}

	c.renderer.SetLabel(a.String())
	c.renderer.ResetStats()
	if err := sorting.Run(a, c.seq, viz.NewVisualizer(c.renderer)); err != nil {
		return err
	}
	c.renderer.FinalRender()

	stats := c.renderer.Stats()
	c.log.Debug("sort finished",
		"algorithm", a,
		"n", len(c.seq),
		"counts", stats.Counts,
		"visual", stats.Visual,
		"elapsed", stats.Elapsed(c.now()),
	)
	return c.renderer.Err()
}

// Compare measures a and b on copies of the current sequence and prints
// the report.
func (c *Controller) Compare(a, b sorting.Algorithm) error {
	report, err := c.harness.Compare(a, b, c.seq)
	if err != nil {
		return err
	}
	c.log.Debug("compare finished", "a", a, "b", b, "n", report.Size, "verdict", report.Verdict())
	return report.Write(c.out)
}

func (c *Controller) generate(cmd command.Command) error {
	r := sequence.Range{Min: c.cfg.Generate.Min, Max: c.cfg.Generate.Max}
	if cmd.HasRange {
		r = cmd.Range
	}
	n := cmd.Count
	if n == 0 {
		n = c.cfg.Generate.Count
	}
	if n == 0 {
		n = r.Size()
	}

	data, err := c.gen.Generate(n, r, cmd.NoRepeat)
	if err != nil {
		return err
	}
	msg := fmt.Sprintf("generated %d values in %s", n, r)
	if cmd.NoRepeat {
		if n > r.Size() {
			msg += fmt.Sprintf(" (range holds %d values, every value used then repeated)", r.Size())
		} else {
			msg += " without repeats"
		}
	}
	c.replace(data, msg)
	return nil
}

func (c *Controller) listAlgorithms() error {
	tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSTABLE\tDESCRIPTION")
	for _, a := range sorting.All() {
		stable := "no"
		if a.Stable() {
			stable = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", a, stable, a.Summary())
	}
	return tw.Flush()
}

func (c *Controller) replace(data []int, msg string) {
	c.seq = data
	c.show()
	c.status("%s", msg)
}

func (c *Controller) show() {
	c.renderer.Show(c.seq)
}

func (c *Controller) defaultCount() int {
	if c.cfg.Generate.Count > 0 {
		return c.cfg.Generate.Count
	}
	return c.cfg.Generate.Max - c.cfg.Generate.Min + 1
}

func (c *Controller) baseDelay() time.Duration {
	return time.Duration(c.cfg.BaseDelayMs) * time.Millisecond
}

func (c *Controller) status(format string, args ...any) {
	c.okColor.Fprintf(c.out, format+"\n", args...)
}

func (c *Controller) report(err error) {
	c.errColor.Fprintf(c.out, "error: %v\n", err)
}
