package viz

import (
	"slices"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/sortlab/internal/sorting"
)

func TestVisualizer(t *testing.T) {
	r, screen, _ := newTestRenderer(ModeList)
	data := []int{5, 2, 4, 6, 3, 10, 7, 1}
	counter := sorting.NewCounter()
	if err := sorting.Run(sorting.Quick, slices.Clone(data), counter); err != nil {
		t.Fatal(err)
	}

	r.ResetStats()
	if err := sorting.Run(sorting.Quick, data, NewVisualizer(r)); err != nil {
		t.Fatal(err)
	}
	r.FinalRender()

	if r.Stats().Counts != counter.Counts {
		t.Errorf("visualized counts %+v differ from counted %+v", r.Stats().Counts, counter.Counts)
	}
	if screen.Len() < 2 {
		t.Errorf("expected frames for every step, got %d", screen.Len())
	}
	if !strings.Contains(screen.Last(), "[1, 2, 3, 4, 5, 6, 7, 10]") {
		t.Errorf("final frame should show the sorted sequence:\n%s", screen.Last())
	}
}

func TestRecorder(t *testing.T) {
	input := []int{3, 1, 2}
	data := slices.Clone(input)
	rec := NewRecorder(data, 0)
	if err := sorting.Run(sorting.Merge, data, rec); err != nil {
		t.Fatal(err)
	}
	trace := rec.Trace("mergesort", data)

	if !slices.Equal(trace.Frames[0].Data, input) {
		t.Errorf("first frame should hold the input, got %v", trace.Frames[0].Data)
	}
	if !slices.Equal(trace.Last().Data, []int{1, 2, 3}) {
		t.Errorf("last frame should be sorted, got %v", trace.Last().Data)
	}
	if trace.Truncated {
		t.Error("short run should not be truncated")
	}
	if trace.Counts.Comparisons == 0 {
		t.Error("recorder should count comparisons")
	}
}

func TestRecorder_Limit(t *testing.T) {
	data := []int{9, 8, 7, 6, 5, 4, 3, 2, 1}
	rec := NewRecorder(data, 3)
	if err := sorting.Run(sorting.Bubble, data, rec); err != nil {
		t.Fatal(err)
	}
	trace := rec.Trace("bubble", data)

	if !trace.Truncated {
		t.Fatal("expected truncated trace")
	}
	if len(trace.Frames) != 4 {
		t.Errorf("expected limit plus final frame, got %d", len(trace.Frames))
	}
	if !slices.Equal(trace.Last().Data, data) {
		t.Errorf("last frame should be the final sequence, got %v", trace.Last().Data)
	}
}

func TestPlayer(t *testing.T) {
	trace := &Trace{
		Label: "demo",
		Frames: []Frame{
			{Data: []int{2, 1}},
			{Data: []int{1, 2}, Touched: []int{0, 1}},
		},
	}
	p := NewPlayer(trace, ModeList, Options{})

	if !strings.Contains(p.View(), "demo  step 0/1") {
		t.Errorf("unexpected view:\n%s", p.View())
	}

	m, cmd := p.Update(tickMsg(time.Now()))
	p = m.(Player)
	if p.Position() != 1 || cmd == nil {
		t.Fatalf("tick should advance and reschedule, pos=%d", p.Position())
	}
	if !strings.Contains(p.View(), "replay finished") {
		t.Errorf("expected finished banner:\n%s", p.View())
	}

	m, _ = p.Update(tickMsg(time.Now()))
	p = m.(Player)
	if p.Playing() || p.Position() != 1 {
		t.Error("player should stop at the last frame")
	}

	m, _ = p.Update(tea.KeyMsg{Type: tea.KeyLeft})
	p = m.(Player)
	if p.Position() != 0 {
		t.Errorf("left should step back, pos=%d", p.Position())
	}

	_, cmd = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Error("q should quit")
	}
}
