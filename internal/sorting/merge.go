package sorting

// mergeSort splits at the midpoint and reports one mutation per merged
// segment rather than per write.
func mergeSort(p *probe, data []int) {
	buf := scratch.get(len(data))
	defer scratch.put(buf)
	p.mergeSort(data, buf, 0, len(data))
}

func (p *probe) mergeSort(data, buf []int, lo, hi int) {
	if hi-lo < 2 {
		return
	}
	mid := lo + (hi-lo)/2
	p.mergeSort(data, buf, lo, mid)
	p.mergeSort(data, buf, mid, hi)
	p.merge(data, buf, lo, mid, hi)
	p.markRange(data, lo, hi)
}

// merge combines the sorted runs data[lo:mid] and data[mid:hi]. On ties the
// left element is taken first.
func (p *probe) merge(data, buf []int, lo, mid, hi int) {
	copy(buf[lo:hi], data[lo:hi])
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if p.less(buf[j], buf[i]) {
			p.write(data, k, buf[j])
			j++
		} else {
			p.write(data, k, buf[i])
			i++
		}
		k++
	}
	for ; i < mid; i++ {
		p.write(data, k, buf[i])
		k++
	}
	for ; j < hi; j++ {
		p.write(data, k, buf[j])
		k++
	}
}
