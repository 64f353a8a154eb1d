package experiment

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sortlab/internal/sorting"
)

// BenchRow is one algorithm measured at one input size.
type BenchRow struct {
	Size int
	Result
}

// Bench measures every algorithm at every size. gen builds the input for
// a size; all algorithms of a size sort copies of the same input. ctx is
// checked between runs.
func (h *Harness) Bench(ctx context.Context, algs []sorting.Algorithm, sizes []int, gen func(n int) ([]int, error)) ([]BenchRow, error) {
	rows := make([]BenchRow, 0, len(algs)*len(sizes))
	for _, n := range sizes {
		input, err := gen(n)
		if err != nil {
			return nil, fmt.Errorf("bench input of size %d: %w", n, err)
		}
		for _, alg := range algs {
			if err := ctx.Err(); err != nil {
				return rows, err
			}
			res, err := h.Measure(alg, input)
			if err != nil {
				return rows, fmt.Errorf("bench size %d: %w", n, err)
			}
			rows = append(rows, BenchRow{Size: n, Result: res})
		}
	}
	return rows, nil
}

func WriteBench(w io.Writer, rows []BenchRow) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tN\tTIME (µs)\tCOMPARISONS\tSWAPS\tWRITES\tOPS/ELEM")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%.1f\n",
			row.Algorithm,
			row.Size,
			row.Micros(),
			row.Counts.Comparisons,
			row.Counts.Swaps,
			row.Counts.Writes,
			float64(row.Counts.Total())/float64(row.Size),
		)
	}
	return tw.Flush()
}

// PlotComparisons charts the comparison count of alg over the measured
// sizes. It returns "" when fewer than two sizes were measured.
func PlotComparisons(rows []BenchRow, alg sorting.Algorithm) string {
	var data []float64
	for _, row := range rows {
		if row.Algorithm == alg {
			data = append(data, float64(row.Counts.Comparisons))
		}
	}
	if len(data) < 2 {
		return ""
	}
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption(fmt.Sprintf("%s comparisons by input size", alg)),
	)
}
