package viz

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	DefaultInterval = 80 * time.Millisecond
	minInterval     = 5 * time.Millisecond
	maxInterval     = 2 * time.Second
)

type tickMsg time.Time

type keyMap struct {
	Pause   key.Binding
	Back    key.Binding
	Forward key.Binding
	Faster  key.Binding
	Slower  key.Binding
	Restart key.Binding
	Theme   key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause"),
		),
		Back: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "step back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "step"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "slower"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Back, k.Forward, k.Faster, k.Slower, k.Restart, k.Theme, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Back, k.Forward},
		{k.Faster, k.Slower},
		{k.Restart, k.Theme, k.Quit},
	}
}

// Player replays a Trace frame by frame.
type Player struct {
	trace    *Trace
	mode     Mode
	height   int
	lr       *lipgloss.Renderer
	pal      *Palette
	keys     keyMap
	help     help.Model
	pos      int
	playing  bool
	interval time.Duration
}

func NewPlayer(trace *Trace, mode Mode, opts Options) Player {
	if opts.Theme.Name == "" {
		opts.Theme = DefaultTheme
	}
	if opts.GraphHeight < 1 {
		opts.GraphHeight = DefaultGraphHeight
	}
	lr := lipgloss.DefaultRenderer()
	return Player{
		trace:    trace,
		mode:     mode,
		height:   opts.GraphHeight,
		lr:       lr,
		pal:      newPalette(lr, opts.Theme),
		keys:     defaultKeyMap(),
		help:     help.New(),
		playing:  true,
		interval: DefaultInterval,
	}
}

func (p Player) Init() tea.Cmd {
	return p.tick()
}

func (p Player) tick() tea.Cmd {
	return tea.Tick(p.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (p Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Quit):
			return p, tea.Quit
		case key.Matches(msg, p.keys.Pause):
			if p.atEnd() {
				p.pos = 0
			}
			p.playing = !p.playing
		case key.Matches(msg, p.keys.Back):
			p.playing = false
			p.pos = max(p.pos-1, 0)
		case key.Matches(msg, p.keys.Forward):
			p.playing = false
			p.pos = min(p.pos+1, len(p.trace.Frames)-1)
		case key.Matches(msg, p.keys.Faster):
			p.interval = max(p.interval/2, minInterval)
		case key.Matches(msg, p.keys.Slower):
			p.interval = min(p.interval*2, maxInterval)
		case key.Matches(msg, p.keys.Restart):
			p.pos = 0
			p.playing = true
		case key.Matches(msg, p.keys.Theme):
			p.pal = newPalette(p.lr, NextTheme(p.pal.Theme))
		}
	case tea.WindowSizeMsg:
		p.help.Width = msg.Width
	case tickMsg:
		if p.playing {
			if p.atEnd() {
				p.playing = false
			} else {
				p.pos++
			}
		}
		return p, p.tick()
	}
	return p, nil
}

func (p Player) View() string {
	frame := p.trace.Frames[p.pos]
	marked := markSet(nil, len(frame.Data), frame.Touched)

	var b strings.Builder
	b.WriteString(p.pal.Title.Render(fmt.Sprintf("%s  step %d/%d", p.trace.Label, p.pos, len(p.trace.Frames)-1)))
	b.WriteString("\n\n")
	if p.mode == ModeGraph {
		drawGraph(&b, p.pal, frame.Data, marked, p.height)
	} else {
		drawList(&b, p.pal, frame.Data, marked)
	}
	b.WriteString(p.pal.Stats.Render(fmt.Sprintf("comparisons: %d  swaps: %d  writes: %d  interval: %s",
		frame.Counts.Comparisons, frame.Counts.Swaps, frame.Counts.Writes, p.interval)))
	b.WriteString("\n")
	if p.atEnd() {
		b.WriteString(p.pal.Done.Render("✔ replay finished"))
		if p.trace.Truncated {
			b.WriteString(p.pal.Failed.Render("  (trace truncated)"))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(p.pal.Help.Render(p.help.View(p.keys)))
	return b.String()
}

// Position is the index of the frame on display.
func (p Player) Position() int { return p.pos }

func (p Player) Playing() bool { return p.playing }

func (p Player) atEnd() bool { return p.pos >= len(p.trace.Frames)-1 }
