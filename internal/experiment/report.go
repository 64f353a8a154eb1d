package experiment

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Report holds the side-by-side results of Compare, in argument order.
type Report struct {
	Size    int
	Results []Result
}

// Tie reports whether both runs took the same number of microseconds.
func (r *Report) Tie() bool {
	return r.Results[0].Micros() == r.Results[1].Micros()
}

// Faster returns the strictly faster run and the other one. It is only
// meaningful when Tie is false.
func (r *Report) Faster() (winner, loser Result) {
	a, b := r.Results[0], r.Results[1]
	if b.Micros() < a.Micros() {
		return b, a
	}
	return a, b
}

func (r *Report) Verdict() string {
	if r.Tie() {
		return "tie"
	}
	winner, loser := r.Faster()
	return fmt.Sprintf("%s is faster than %s", winner.Algorithm, loser.Algorithm)
}

// Write prints the table followed by the verdict line.
func (r *Report) Write(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ALGORITHM\tN\tTIME (µs)\tCOMPARISONS\tSWAPS\tWRITES\n")
	for _, res := range r.Results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\n",
			res.Algorithm,
			r.Size,
			res.Micros(),
			res.Counts.Comparisons,
			res.Counts.Swaps,
			res.Counts.Writes,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%s\n", r.Verdict())
	return err
}
