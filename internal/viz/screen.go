package viz

import (
	"io"
	"strings"

	"github.com/mattn/go-isatty"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// Screen is the output a renderer draws frames on. Clear starts a new
// frame.
type Screen interface {
	io.Writer
	Clear() error
}

// Terminal writes frames to w. When w is a terminal, Clear resets the
// screen; otherwise frames are separated by a blank line so that piped
// output stays readable.
type Terminal struct {
	w   io.Writer
	tty bool
}

func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w, tty: IsTerminal(w)}
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w any) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (t *Terminal) Write(p []byte) (int, error) { return t.w.Write(p) }

func (t *Terminal) IsTTY() bool { return t.tty }

func (t *Terminal) Clear() error {
	if !t.tty {
		_, err := io.WriteString(t.w, "\n")
		return err
	}
	_, err := io.WriteString(t.w, clearScreen)
	return err
}

// HideCursor and ShowCursor are no-ops off a terminal.
func (t *Terminal) HideCursor() error { return t.escape(hideCursor) }

func (t *Terminal) ShowCursor() error { return t.escape(showCursor) }

func (t *Terminal) escape(seq string) error {
	if !t.tty {
		return nil
	}
	_, err := io.WriteString(t.w, seq)
	return err
}

// Capture records frames in memory.
type Capture struct {
	frames []*strings.Builder
}

func (c *Capture) Write(p []byte) (int, error) {
	if len(c.frames) == 0 {
		c.frames = append(c.frames, &strings.Builder{})
	}
	return c.frames[len(c.frames)-1].Write(p)
}

func (c *Capture) Clear() error {
	c.frames = append(c.frames, &strings.Builder{})
	return nil
}

// Frames returns the text of every frame drawn so far.
func (c *Capture) Frames() []string {
	out := make([]string, len(c.frames))
	for i, f := range c.frames {
		out[i] = f.String()
	}
	return out
}

// Last returns the most recent frame, or "" if nothing was drawn.
func (c *Capture) Last() string {
	if len(c.frames) == 0 {
		return ""
	}
	return c.frames[len(c.frames)-1].String()
}

func (c *Capture) Len() int { return len(c.frames) }

func (c *Capture) Reset() { c.frames = c.frames[:0] }
