package experiment

import (
	"bytes"
	"context"
	"slices"
	"testing"
	"time"

	"github.com/san-kum/sortlab/internal/sequence"
	"github.com/san-kum/sortlab/internal/sorting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepClock returns base advanced by the next step on every call.
func stepClock(steps ...time.Duration) func() time.Time {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	i := 0
	return func() time.Time {
		var d time.Duration
		if i < len(steps) {
			d = steps[i]
		}
		i++
		return base.Add(d)
	}
}

func TestCompare(t *testing.T) {
	input := []int{5, 2, 4, 6, 3, 10, 7, 1}
	h := NewHarnessWithClock(stepClock(0, 30*time.Microsecond, 0, 10*time.Microsecond))

	report, err := h.Compare(sorting.Quick, sorting.Merge, input)
	require.NoError(t, err)
	require.Len(t, report.Results, 2)

	assert.Equal(t, []int{5, 2, 4, 6, 3, 10, 7, 1}, input, "input must not be modified")
	assert.Equal(t, 8, report.Size)
	assert.Equal(t, int64(30), report.Results[0].Micros())
	assert.Equal(t, int64(10), report.Results[1].Micros())
	assert.True(t, report.Results[0].Sorted)
	assert.True(t, report.Results[1].Sorted)
	assert.False(t, report.Tie())
	assert.Equal(t, "mergesort is faster than quicksort", report.Verdict())
}

func TestCompare_CountsMatchCounter(t *testing.T) {
	input := []int{9, 3, 7, 1, 8, 2}
	report, err := NewHarness().Compare(sorting.Heap, sorting.Insertion, input)
	require.NoError(t, err)

	for i, alg := range []sorting.Algorithm{sorting.Heap, sorting.Insertion} {
		counter := sorting.NewCounter()
		require.NoError(t, sorting.Run(alg, slices.Clone(input), counter))
		assert.Equal(t, counter.Counts, report.Results[i].Counts, alg.String())
	}
}

func TestCompare_Tie(t *testing.T) {
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h := NewHarnessWithClock(func() time.Time { return fixed })

	report, err := h.Compare(sorting.Bubble, sorting.Gnome, []int{3, 1, 2})
	require.NoError(t, err)
	assert.True(t, report.Tie())
	assert.Equal(t, "tie", report.Verdict())
}

func TestCompare_Precondition(t *testing.T) {
	calls := 0
	h := NewHarnessWithClock(func() time.Time {
		calls++
		return time.Now()
	})

	_, err := h.Compare(sorting.Quick, sorting.Radix, []int{3, -1, 2})
	require.ErrorIs(t, err, sorting.ErrPrecondition)
	assert.Zero(t, calls, "no run may start when a precondition fails")

	_, err = h.Compare(sorting.Algorithm(99), sorting.Quick, []int{1, 2})
	assert.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)
}

func TestReport_Write(t *testing.T) {
	h := NewHarnessWithClock(stepClock(0, 5*time.Microsecond, 0, 9*time.Microsecond))
	report, err := h.Compare(sorting.Tim, sorting.Shell, []int{4, 3, 2, 1})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf))

	out := buf.String()
	assert.Contains(t, out, "ALGORITHM")
	assert.Contains(t, out, "COMPARISONS")
	assert.Contains(t, out, "timsort")
	assert.Contains(t, out, "shell")
	assert.Contains(t, out, "timsort is faster than shell\n")
}

func TestBench(t *testing.T) {
	gen := sequence.NewGenerator(42)
	input := func(n int) ([]int, error) {
		return gen.Generate(n, sequence.Range{Min: 0, Max: 1000}, false)
	}

	algs := []sorting.Algorithm{sorting.Quick, sorting.Radix}
	rows, err := NewHarness().Bench(context.Background(), algs, []int{10, 50, 100}, input)
	require.NoError(t, err)
	require.Len(t, rows, 6)

	for _, row := range rows {
		assert.True(t, row.Sorted, "%s at %d", row.Algorithm, row.Size)
	}
	assert.Equal(t, 10, rows[0].Size)
	assert.Equal(t, sorting.Radix, rows[1].Algorithm)

	var buf bytes.Buffer
	require.NoError(t, WriteBench(&buf, rows))
	assert.Contains(t, buf.String(), "OPS/ELEM")

	assert.NotEmpty(t, PlotComparisons(rows, sorting.Quick))
	assert.Empty(t, PlotComparisons(rows, sorting.Heap))
}

func TestBench_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	input := func(n int) ([]int, error) { return make([]int, n), nil }
	rows, err := NewHarness().Bench(ctx, []sorting.Algorithm{sorting.Quick}, []int{10}, input)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rows)
}
