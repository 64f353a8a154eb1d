package sorting

// countingSort places every element by prefix sums over its value. The
// placement is stable and each store back into data is its own frame.
func countingSort(p *probe, data []int) {
	n := len(data)
	largest := 0
	for _, v := range data {
		if k := p.keyOf(v); k > largest {
			largest = k
		}
	}

	count := make([]int, largest+1)
	for _, v := range data {
		count[p.keyOf(v)]++
	}
	for i := 1; i < len(count); i++ {
		count[i] += count[i-1]
	}

	buf := scratch.get(n)
	defer scratch.put(buf)
	for i := n - 1; i >= 0; i-- {
		k := p.keyOf(data[i])
		count[k]--
		buf[count[k]] = data[i]
	}

	for i, v := range buf {
		p.write(data, i, v)
		p.mark(data, i)
	}
}
