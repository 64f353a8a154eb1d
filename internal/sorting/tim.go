package sorting

const minRun = 32

// timSort is a simplified timsort: fixed-size runs are insertion sorted,
// then merged bottom-up with doubling width. Each sorted run and each merge
// is one frame.
func timSort(p *probe, data []int) {
	n := len(data)
	for lo := 0; lo < n; lo += minRun {
		hi := min(lo+minRun, n)
		p.insertion(data, lo, hi, 1, false)
		p.markRange(data, lo, hi)
	}
	if n <= minRun {
		return
	}

	buf := scratch.get(n)
	defer scratch.put(buf)
	for width := minRun; width < n; width *= 2 {
		for lo := 0; lo+width < n; lo += 2 * width {
			mid := lo + width
			hi := min(lo+2*width, n)
			p.merge(data, buf, lo, mid, hi)
			p.markRange(data, lo, hi)
		}
	}
}
