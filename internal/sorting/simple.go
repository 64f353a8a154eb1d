package sorting

// The quadratic sorts below report a frame for every element movement.

func bubbleSort(p *probe, data []int) {
	for end := len(data) - 1; end > 0; end-- {
		swapped := false
		for j := 0; j < end; j++ {
			if p.less(data[j+1], data[j]) {
				p.swap(data, j, j+1)
				p.mark(data, j, j+1)
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

func cocktailSort(p *probe, data []int) {
	start, end := 0, len(data)-1
	for start < end {
		swapped := false
		for i := start; i < end; i++ {
			if p.less(data[i+1], data[i]) {
				p.swap(data, i, i+1)
				p.mark(data, i, i+1)
				swapped = true
			}
		}
		if !swapped {
			return
		}
		end--

		swapped = false
		for i := end - 1; i >= start; i-- {
			if p.less(data[i+1], data[i]) {
				p.swap(data, i, i+1)
				p.mark(data, i, i+1)
				swapped = true
			}
		}
		if !swapped {
			return
		}
		start++
	}
}

func selectionSort(p *probe, data []int) {
	n := len(data)
	for i := 0; i < n-1; i++ {
		m := i
		for j := i + 1; j < n; j++ {
			if p.less(data[j], data[m]) {
				m = j
			}
		}
		if m != i {
			p.swap(data, i, m)
			p.mark(data, i, m)
		}
	}
}

func gnomeSort(p *probe, data []int) {
	i := 1
	for i < len(data) {
		if i == 0 || !p.less(data[i], data[i-1]) {
			i++
			continue
		}
		p.swap(data, i, i-1)
		p.mark(data, i-1, i)
		i--
	}
}

func insertionSort(p *probe, data []int) {
	p.insertion(data, 0, len(data), 1, true)
}

func shellSort(p *probe, data []int) {
	for gap := len(data) / 2; gap > 0; gap /= 2 {
		p.insertion(data, 0, len(data), gap, true)
	}
}

// insertion is a gapped, shifting insertion sort over data[lo:hi]. With
// frames set every shift and every final placement is reported.
func (p *probe) insertion(data []int, lo, hi, gap int, frames bool) {
	for i := lo + gap; i < hi; i++ {
		v := data[i]
		j := i
		for j-gap >= lo && p.less(v, data[j-gap]) {
			p.write(data, j, data[j-gap])
			if frames {
				p.mark(data, j-gap, j)
			}
			j -= gap
		}
		if j != i {
			p.write(data, j, v)
			if frames {
				p.mark(data, j)
			}
		}
	}
}
