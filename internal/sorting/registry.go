package sorting

import (
	"fmt"
	"strings"
)

// Algorithm identifies one of the supported sorting procedures.
type Algorithm int

const (
	Quick Algorithm = iota + 1
	Merge
	Heap
	Radix
	Tim
	Bubble
	Insertion
	Selection
	Gnome
	Cocktail
	Shell
	Counting
)

type entry struct {
	name    string
	aliases []string
	stable  bool
	summary string
	check   func(data []int) error
	sort    func(p *probe, data []int)
}

var registry = map[Algorithm]entry{
	Quick: {
		name: "quicksort", aliases: []string{"quick"},
		summary: "Lomuto partition, last element as pivot",
		sort:    quickSort,
	},
	Merge: {
		name: "mergesort", aliases: []string{"merge"}, stable: true,
		summary: "top-down merge sort, one frame per merged segment",
		sort:    mergeSort,
	},
	Heap: {
		name: "heapsort", aliases: []string{"heap"},
		summary: "bottom-up max-heap with sift-down",
		sort:    heapSort,
	},
	Radix: {
		name: "radix", aliases: []string{"radixsort", "lsd"}, stable: true,
		summary: "LSD base-10 radix sort, non-negative values only",
		check:   checkNonNegative,
		sort:    radixSort,
	},
	Tim: {
		name: "timsort", aliases: []string{"tim"}, stable: true,
		summary: "insertion-sorted runs merged bottom-up",
		sort:    timSort,
	},
	Bubble: {
		name: "bubble", aliases: []string{"bubblesort"}, stable: true,
		summary: "bubble sort with early exit",
		sort:    bubbleSort,
	},
	Insertion: {
		name: "insertion", aliases: []string{"insertionsort"}, stable: true,
		summary: "shifting insertion sort",
		sort:    insertionSort,
	},
	Selection: {
		name: "selection", aliases: []string{"selectionsort"},
		summary: "selection sort",
		sort:    selectionSort,
	},
	Gnome: {
		name: "gnome", aliases: []string{"gnomesort"}, stable: true,
		summary: "gnome sort",
		sort:    gnomeSort,
	},
	Cocktail: {
		name: "cocktail", aliases: []string{"cocktailsort", "shaker"}, stable: true,
		summary: "bidirectional bubble sort",
		sort:    cocktailSort,
	},
	Shell: {
		name: "shell", aliases: []string{"shellsort"},
		summary: "shell sort with halving gaps",
		sort:    shellSort,
	},
	Counting: {
		name: "counting", aliases: []string{"countingsort"}, stable: true,
		summary: "counting sort for small non-negative ranges",
		check:   checkCountable,
		sort:    countingSort,
	},
}

// All returns every algorithm in declaration order.
func All() []Algorithm {
	algs := make([]Algorithm, 0, len(registry))
	for a := Quick; a <= Counting; a++ {
		algs = append(algs, a)
	}
	return algs
}

// Parse resolves a command-line name or alias.
func Parse(name string) (Algorithm, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, a := range All() {
		e := registry[a]
		if n == e.name {
			return a, nil
		}
		for _, alias := range e.aliases {
			if n == alias {
				return a, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Names returns the primary name of every algorithm.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, a := range All() {
		names = append(names, a.String())
	}
	return names
}

func (a Algorithm) String() string {
	if e, ok := registry[a]; ok {
		return e.name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

func (a Algorithm) Valid() bool {
	_, ok := registry[a]
	return ok
}

// Stable reports whether equal elements keep their relative order.
func (a Algorithm) Stable() bool { return registry[a].stable }

func (a Algorithm) Summary() string { return registry[a].summary }

// Check validates data against the algorithm's preconditions without
// modifying it.
func (a Algorithm) Check(data []int) error {
	e, ok := registry[a]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownAlgorithm, a)
	}
	if e.check == nil {
		return nil
	}
	if err := e.check(data); err != nil {
		return fmt.Errorf("%s: %w", e.name, err)
	}
	return nil
}

// Run sorts data in place, reporting every step to sink. Preconditions are
// checked first; on error data is left untouched and sink sees no events.
// Sequences shorter than two elements return immediately.
func Run(a Algorithm, data []int, sink Sink) error {
	return run(a, data, sink, nil)
}

func run(a Algorithm, data []int, sink Sink, key func(int) int) error {
	if err := a.Check(data); err != nil {
		return err
	}
	if len(data) < 2 {
		return nil
	}
	registry[a].sort(newProbe(sink, key), data)
	return nil
}

func checkNonNegative(data []int) error {
	for i, v := range data {
		if v < 0 {
			return fmt.Errorf("%w (found %d at index %d)", ErrNegativeInput, v, i)
		}
	}
	return nil
}

// MaxCountingValue bounds the count table of counting sort.
const MaxCountingValue = 1 << 16

func checkCountable(data []int) error {
	if err := checkNonNegative(data); err != nil {
		return err
	}
	for i, v := range data {
		if v > MaxCountingValue {
			return fmt.Errorf("%w (found %d at index %d, limit %d)", ErrRangeTooLarge, v, i, MaxCountingValue)
		}
	}
	return nil
}
