// Package sequence creates and loads the integer sequences the lab sorts.
package sequence

import (
	"fmt"
	"math/rand"
	"time"
)

// MaxCount bounds generated and loaded sequences.
const MaxCount = 1_000_000

// Range is an inclusive value range.
type Range struct {
	Min int
	Max int
}

func (r Range) Size() int { return r.Max - r.Min + 1 }

func (r Range) String() string { return fmt.Sprintf("%d-%d", r.Min, r.Max) }

func (r Range) Validate() error {
	if r.Min >= r.Max {
		return fmt.Errorf("%w: lower bound %d must be below upper bound %d", ErrInvalidRange, r.Min, r.Max)
	}
	if uint64(r.Max)-uint64(r.Min) >= MaxCount {
		return fmt.Errorf("%w: %s spans more than %d values", ErrInvalidRange, r, MaxCount)
	}
	return nil
}

// Generator produces random sequences from a seeded source.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator seeds from the clock when seed is zero.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate returns count values drawn from r. With noRepeat every value is
// distinct, unless count exceeds the range size: then each value of the
// range appears once and the remainder is drawn with repeats, shuffled.
func (g *Generator) Generate(count int, r Range, noRepeat bool) ([]int, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if count <= 0 || count > MaxCount {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidCount, count, MaxCount)
	}

	if !noRepeat {
		out := make([]int, count)
		for i := range out {
			out[i] = g.draw(r)
		}
		return out, nil
	}

	size := r.Size()
	if count >= size || size <= 4*count {
		out := g.full(r)
		for len(out) < count {
			out = append(out, g.draw(r))
		}
		g.Shuffle(out)
		return out[:count], nil
	}

	used := make(map[int]struct{}, count)
	out := make([]int, 0, count)
	for len(out) < count {
		v := g.draw(r)
		if _, ok := used[v]; ok {
			continue
		}
		used[v] = struct{}{}
		out = append(out, v)
	}
	return out, nil
}

// Full returns every value of r exactly once in random order.
func (g *Generator) Full(r Range) ([]int, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	out := g.full(r)
	g.Shuffle(out)
	return out, nil
}

func (g *Generator) Shuffle(data []int) {
	g.rng.Shuffle(len(data), func(i, j int) {
		data[i], data[j] = data[j], data[i]
	})
}

func (g *Generator) full(r Range) []int {
	out := make([]int, r.Size())
	for i := range out {
		out[i] = r.Min + i
	}
	return out
}

func (g *Generator) draw(r Range) int {
	return r.Min + g.rng.Intn(r.Size())
}
