package sorting

// radixSort is an LSD base-10 radix sort. Each digit pass is a stable
// counting sort into a scratch buffer followed by a copy back, and is
// reported as one mutation over the whole sequence.
func radixSort(p *probe, data []int) {
	n := len(data)
	largest := p.keyOf(data[0])
	for _, v := range data[1:] {
		if k := p.keyOf(v); k > largest {
			largest = k
		}
	}

	buf := scratch.get(n)
	defer scratch.put(buf)

	for exp := 1; largest/exp > 0; exp *= 10 {
		var count [10]int
		for _, v := range data {
			count[(p.keyOf(v)/exp)%10]++
		}
		for d := 1; d < len(count); d++ {
			count[d] += count[d-1]
		}
		for i := n - 1; i >= 0; i-- {
			d := (p.keyOf(data[i]) / exp) % 10
			count[d]--
			buf[count[d]] = data[i]
		}
		for i, v := range buf {
			p.write(data, i, v)
		}
		p.markRange(data, 0, n)

		if exp > largest/10 {
			break
		}
	}
}
