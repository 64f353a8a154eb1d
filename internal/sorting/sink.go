package sorting

import "github.com/san-kum/sortlab/internal/metrics"

// Sink receives every step of a sorting run.
//
// Compare is called once per three-way comparison of two elements, Swap
// once per exchange of two positions and Write once per single-position
// store. Mutate is called after a step changed the sequence; touched lists
// the affected positions. Both slices are only valid for the duration of
// the call.
type Sink interface {
	Compare()
	Swap()
	Write()
	Mutate(data []int, touched []int)
}

// Counter is the silent sink used for measurement.
type Counter struct {
	metrics.Counts
}

func NewCounter() *Counter { return &Counter{} }

func (c *Counter) Compare()           { c.Comparisons++ }
func (c *Counter) Swap()              { c.Swaps++ }
func (c *Counter) Write()             { c.Writes++ }
func (c *Counter) Mutate(_, _ []int) {}

// probe sits between an algorithm and its sink. It owns a single touched
// buffer that is reused for every Mutate call of the run.
type probe struct {
	sink    Sink
	key     func(int) int
	touched []int
}

func newProbe(sink Sink, key func(int) int) *probe {
	return &probe{sink: sink, key: key, touched: make([]int, 0, 8)}
}

func (p *probe) keyOf(v int) int {
	if p.key == nil {
		return v
	}
	return p.key(v)
}

func (p *probe) less(a, b int) bool {
	p.sink.Compare()
	if p.key == nil {
		return a < b
	}
	return p.key(a) < p.key(b)
}

func (p *probe) swap(data []int, i, j int) {
	data[i], data[j] = data[j], data[i]
	p.sink.Swap()
}

func (p *probe) write(data []int, i, v int) {
	data[i] = v
	p.sink.Write()
}

func (p *probe) mark(data []int, idx ...int) {
	p.touched = append(p.touched[:0], idx...)
	p.sink.Mutate(data, p.touched)
}

// markRange reports a mutation covering data[lo:hi].
func (p *probe) markRange(data []int, lo, hi int) {
	p.touched = p.touched[:0]
	for i := lo; i < hi; i++ {
		p.touched = append(p.touched, i)
	}
	p.sink.Mutate(data, p.touched)
}
