// Package experiment measures sorting algorithms without drawing them.
package experiment

import (
	"fmt"
	"slices"
	"time"

	"github.com/san-kum/sortlab/internal/metrics"
	"github.com/san-kum/sortlab/internal/sorting"
)

// Result is the measurement of one silent run.
type Result struct {
	Algorithm sorting.Algorithm
	Elapsed   time.Duration
	Counts    metrics.Counts
	Sorted    bool
}

// Micros is the elapsed time in whole microseconds, the unit reports
// compare on.
func (r Result) Micros() int64 { return r.Elapsed.Microseconds() }

// Harness runs algorithms against a Counter sink and times them.
type Harness struct {
	now func() time.Time
}

func NewHarness() *Harness {
	return &Harness{now: time.Now}
}

// NewHarnessWithClock uses now instead of the wall clock.
func NewHarnessWithClock(now func() time.Time) *Harness {
	return &Harness{now: now}
}

// Measure sorts a copy of input with a and reports the run. input itself
// is never modified.
func (h *Harness) Measure(a sorting.Algorithm, input []int) (Result, error) {
	data := slices.Clone(input)
	counter := sorting.NewCounter()

	start := h.now()
	if err := sorting.Run(a, data, counter); err != nil {
		return Result{}, err
	}
	elapsed := h.now().Sub(start)

	return Result{
		Algorithm: a,
		Elapsed:   max(elapsed, 0),
		Counts:    counter.Counts,
		Sorted:    slices.IsSorted(data),
	}, nil
}

// Compare runs a and b on independent copies of input. Both algorithms'
// preconditions are checked before either runs, so a failure never leaves
// a half-filled report.
func (h *Harness) Compare(a, b sorting.Algorithm, input []int) (*Report, error) {
	for _, alg := range []sorting.Algorithm{a, b} {
		if err := alg.Check(input); err != nil {
			return nil, fmt.Errorf("compare: %w", err)
		}
	}

	report := &Report{Size: len(input)}
	for _, alg := range []sorting.Algorithm{a, b} {
		res, err := h.Measure(alg, input)
		if err != nil {
			return nil, fmt.Errorf("compare: %w", err)
		}
		report.Results = append(report.Results, res)
	}
	return report, nil
}
