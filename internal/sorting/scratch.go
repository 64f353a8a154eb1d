package sorting

import "sync"

// scratchPool recycles the auxiliary buffers of merge, radix, counting and
// tim sort across runs.
type scratchPool struct {
	pool sync.Pool
}

var scratch scratchPool

func (s *scratchPool) get(n int) []int {
	if b, ok := s.pool.Get().(*[]int); ok && cap(*b) >= n {
		return (*b)[:n]
	}
	return make([]int, n)
}

func (s *scratchPool) put(b []int) {
	b = b[:0]
	s.pool.Put(&b)
}
