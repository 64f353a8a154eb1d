package sorting

import (
	"math/rand"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Run", func() {
	var r *rand.Rand

	BeforeEach(func() {
		r = rand.New(rand.NewSource(42))
	})

	for _, alg := range All() {
		alg := alg
		Context(alg.String(), func() {
			It("sorts random input into a permutation of itself", func() {
				for _, n := range []int{2, 3, 17, 100, 257} {
					data := randomInts(r, n, 0, 999)
					want := slices.Clone(data)
					slices.Sort(want)

					Expect(Run(alg, data, NewCounter())).To(Succeed())
					Expect(data).To(Equal(want), "n=%d", n)
				}
			})

			It("keeps already sorted input sorted", func() {
				data := []int{1, 2, 2, 3, 5, 8, 13, 21}
				Expect(Run(alg, data, NewCounter())).To(Succeed())
				Expect(data).To(Equal([]int{1, 2, 2, 3, 5, 8, 13, 21}))
			})

			It("sorts reversed input", func() {
				data := []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
				Expect(Run(alg, data, NewCounter())).To(Succeed())
				Expect(data).To(Equal([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}))
			})

			It("emits frames of constant length with valid touched indices", func() {
				data := randomInts(r, 40, 0, 99)
				sink := &traceSink{}
				Expect(Run(alg, data, sink)).To(Succeed())

				Expect(sink.frames).NotTo(BeEmpty())
				for i, frame := range sink.frames {
					Expect(frame).To(HaveLen(40))
					Expect(sink.touched[i]).NotTo(BeEmpty())
					for _, idx := range sink.touched[i] {
						Expect(idx).To(BeNumerically(">=", 0))
						Expect(idx).To(BeNumerically("<", 40))
					}
				}
				Expect(sink.frames[len(sink.frames)-1]).To(Equal(data))
			})

			It("counts the same operations on repeated runs", func() {
				input := randomInts(r, 64, 0, 500)
				a, b := NewCounter(), NewCounter()

				Expect(Run(alg, slices.Clone(input), a)).To(Succeed())
				Expect(Run(alg, slices.Clone(input), b)).To(Succeed())
				Expect(a.Counts).To(Equal(b.Counts))
				Expect(a.Comparisons).To(BeNumerically(">=", 0))
				Expect(a.Swaps).To(BeNumerically(">=", 0))
			})

			It("returns immediately for empty and single-element input", func() {
				for _, data := range [][]int{{}, {7}} {
					sink := &traceSink{}
					Expect(Run(alg, data, sink)).To(Succeed())
					Expect(sink.Total()).To(BeZero())
					Expect(sink.frames).To(BeEmpty())
				}
			})

			if alg.Stable() {
				It("keeps equal keys in input order", func() {
					seen := map[int]int{}
					data := make([]int, 80)
					for i := range data {
						k := r.Intn(8)
						data[i] = k*1000 + seen[k]
						seen[k]++
					}

					Expect(run(alg, data, NewCounter(), func(v int) int { return v / 1000 })).To(Succeed())
					for i := 1; i < len(data); i++ {
						prev, cur := data[i-1], data[i]
						Expect(prev / 1000).To(BeNumerically("<=", cur/1000))
						if prev/1000 == cur/1000 {
							Expect(prev % 1000).To(BeNumerically("<", cur%1000))
						}
					}
				})
			}

			if alg.Check([]int{-1}) == nil {
				It("sorts signed input", func() {
					data := randomInts(r, 120, -500, 500)
					want := slices.Clone(data)
					slices.Sort(want)

					Expect(Run(alg, data, NewCounter())).To(Succeed())
					Expect(data).To(Equal(want))
				})
			}
		})
	}
})

var _ = Describe("Quicksort", func() {
	It("degrades to n(n-1)/2 comparisons on sorted input", func() {
		data := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
		c := NewCounter()
		Expect(Run(Quick, data, c)).To(Succeed())
		Expect(c.Comparisons).To(BeEquivalentTo(45))
	})

	It("reports two touched indices for every swap", func() {
		sink := &traceSink{}
		Expect(Run(Quick, []int{5, 2, 4, 6, 3, 10, 7, 1}, sink)).To(Succeed())
		Expect(sink.frames).To(HaveLen(int(sink.Swaps)))
		for _, touched := range sink.touched {
			Expect(touched).To(HaveLen(2))
		}
	})
})

var _ = Describe("Mergesort", func() {
	It("reports one contiguous frame per merged segment", func() {
		sink := &traceSink{}
		Expect(Run(Merge, []int{5, 2, 4, 6, 3, 10, 7, 1}, sink)).To(Succeed())

		Expect(sink.frames).To(HaveLen(7))
		for _, touched := range sink.touched {
			for i := 1; i < len(touched); i++ {
				Expect(touched[i]).To(Equal(touched[i-1] + 1))
			}
		}
		Expect(sink.touched[len(sink.touched)-1]).To(Equal([]int{0, 1, 2, 3, 4, 5, 6, 7}))
		Expect(sink.Swaps).To(BeZero())
	})
})

var _ = Describe("Heapsort", func() {
	It("touches exactly the two swapped indices", func() {
		sink := &traceSink{}
		Expect(Run(Heap, []int{5, 2, 4, 6, 3, 10, 7, 1}, sink)).To(Succeed())
		Expect(sink.frames).To(HaveLen(int(sink.Swaps)))
		for _, touched := range sink.touched {
			Expect(touched).To(HaveLen(2))
		}
	})
})

var _ = Describe("Radix sort", func() {
	It("reports one frame per digit pass", func() {
		sink := &traceSink{}
		data := []int{170, 45, 75, 90, 802, 24, 2, 66}
		Expect(Run(Radix, data, sink)).To(Succeed())

		Expect(sink.frames).To(HaveLen(3))
		Expect(sink.frames[0]).To(Equal([]int{170, 90, 802, 2, 24, 45, 75, 66}))
		Expect(sink.Comparisons).To(BeZero())
		Expect(sink.Writes).To(BeEquivalentTo(24))
	})

	It("rejects negative input before touching the data", func() {
		data := []int{3, -1, 2}
		sink := &traceSink{}

		err := Run(Radix, data, sink)
		Expect(err).To(MatchError(ErrNegativeInput))
		Expect(err).To(MatchError(ErrPrecondition))
		Expect(data).To(Equal([]int{3, -1, 2}))
		Expect(sink.Total()).To(BeZero())
		Expect(sink.frames).To(BeEmpty())
	})
})

var _ = Describe("Counting sort", func() {
	It("rejects values beyond the count table", func() {
		err := Run(Counting, []int{1, MaxCountingValue + 1}, NewCounter())
		Expect(err).To(MatchError(ErrRangeTooLarge))
	})

	It("reports a frame per placed element", func() {
		sink := &traceSink{}
		Expect(Run(Counting, []int{3, 0, 2, 2, 1}, sink)).To(Succeed())
		Expect(sink.frames).To(HaveLen(5))
		Expect(sink.Comparisons).To(BeZero())
	})
})

var _ = Describe("Bubble sort", func() {
	It("exits after one pass over sorted input", func() {
		sink := &traceSink{}
		Expect(Run(Bubble, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, sink)).To(Succeed())
		Expect(sink.Comparisons).To(BeEquivalentTo(9))
		Expect(sink.Swaps).To(BeZero())
		Expect(sink.frames).To(BeEmpty())
	})
})

var _ = Describe("Timsort", func() {
	It("reports one frame per run and per merge", func() {
		data := randomInts(rand.New(rand.NewSource(7)), 100, 0, 1000)
		sink := &traceSink{}
		Expect(Run(Tim, data, sink)).To(Succeed())
		Expect(sink.frames).To(HaveLen(7))
		Expect(slices.IsSorted(data)).To(BeTrue())
	})

	It("counts real comparisons", func() {
		c := NewCounter()
		Expect(Run(Tim, []int{5, 2, 4, 6, 3, 10, 7, 1}, c)).To(Succeed())
		Expect(c.Comparisons).To(BeNumerically(">", 0))
	})
})
