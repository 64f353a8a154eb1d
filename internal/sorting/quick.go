package sorting

// quickSort uses the Lomuto scheme with the last element as pivot. Already
// sorted or reversed input degrades to O(n²) comparisons and O(n) recursion
// depth; that is kept as-is so the worst case stays observable.
func quickSort(p *probe, data []int) {
	p.quick(data, 0, len(data)-1)
}

func (p *probe) quick(data []int, lo, hi int) {
	if lo >= hi {
		return
	}
	pivot := p.partition(data, lo, hi)
	p.quick(data, lo, pivot-1)
	p.quick(data, pivot+1, hi)
}

func (p *probe) partition(data []int, lo, hi int) int {
	pivot := data[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if !p.less(pivot, data[j]) {
			p.swap(data, i, j)
			p.mark(data, i, j)
			i++
		}
	}
	p.swap(data, i, hi)
	p.mark(data, i, hi)
	return i
}
