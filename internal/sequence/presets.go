package sequence

import (
	"fmt"
	"slices"
	"sort"
)

// Sample is the sequence the lab starts with.
var Sample = []int{5, 2, 4, 6, 3, 10, 7, 1}

// Shape builds an n-element sequence.
type Shape func(g *Generator, n int) []int

// Presets are named input shapes that exercise best and worst cases.
var Presets = map[string]Shape{
	"sample": func(*Generator, int) []int {
		return slices.Clone(Sample)
	},
	"random": func(g *Generator, n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = 1 + g.rng.Intn(n)
		}
		return out
	},
	"sorted": func(_ *Generator, n int) []int {
		return ascending(n)
	},
	"reversed": func(_ *Generator, n int) []int {
		out := ascending(n)
		slices.Reverse(out)
		return out
	},
	"nearly-sorted": func(g *Generator, n int) []int {
		out := ascending(n)
		for k := 0; k < n/10+1; k++ {
			i, j := g.rng.Intn(n), g.rng.Intn(n)
			out[i], out[j] = out[j], out[i]
		}
		return out
	},
	"few-unique": func(g *Generator, n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = 1 + g.rng.Intn(4)
		}
		return out
	},
	"sawtooth": func(_ *Generator, n int) []int {
		out := make([]int, n)
		tooth := max(n/4, 1)
		for i := range out {
			out[i] = 1 + i%tooth
		}
		return out
	},
}

// Preset builds the named shape with n elements.
func (g *Generator) Preset(name string, n int) ([]int, error) {
	shape, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	if n <= 0 || n > MaxCount {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidCount, n, MaxCount)
	}
	return shape(g, n), nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ascending(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}
