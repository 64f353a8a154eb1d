package sorting

func heapSort(p *probe, data []int) {
	n := len(data)
	for i := n/2 - 1; i >= 0; i-- {
		p.siftDown(data, i, n)
	}
	for end := n - 1; end > 0; end-- {
		p.swap(data, 0, end)
		p.mark(data, 0, end)
		p.siftDown(data, 0, end)
	}
}

// siftDown restores the max-heap property for the subtree at root within
// data[:end].
func (p *probe) siftDown(data []int, root, end int) {
	for {
		child := 2*root + 1
		if child >= end {
			return
		}
		if r := child + 1; r < end && p.less(data[child], data[r]) {
			child = r
		}
		if !p.less(data[root], data[child]) {
			return
		}
		p.swap(data, root, child)
		p.mark(data, root, child)
		root = child
	}
}
