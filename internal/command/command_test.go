package command

import (
	"testing"

	"github.com/san-kum/sortlab/internal/sequence"
	"github.com/san-kum/sortlab/internal/sorting"
	"github.com/san-kum/sortlab/internal/viz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{".help", Command{Kind: Help}},
		{"  .randomize  ", Command{Kind: Randomize}},
		{".list", Command{Kind: SetMode, Mode: viz.ModeList}},
		{".graphs", Command{Kind: SetMode, Mode: viz.ModeGraph}},
		{".speed 2.5", Command{Kind: Speed, Speed: 2.5}},
		{".speed 0.01", Command{Kind: Speed, Speed: 0.01}},
		{".sort Quicksort", Command{Kind: Sort, Algorithm: sorting.Quick}},
		{".sort shaker", Command{Kind: Sort, Algorithm: sorting.Cocktail}},
		{".quicksort", Command{Kind: Sort, Algorithm: sorting.Quick}},
		{".mergesort", Command{Kind: Sort, Algorithm: sorting.Merge}},
		{".timsort", Command{Kind: Sort, Algorithm: sorting.Tim}},
		{".radix", Command{Kind: Sort, Algorithm: sorting.Radix}},
		{".heapsort", Command{Kind: Sort, Algorithm: sorting.Heap}},
		{".compare quicksort mergesort", Command{Kind: Compare, Algorithm: sorting.Quick, Other: sorting.Merge}},
		{".readlist nums.txt", Command{Kind: ReadList, Path: "nums.txt"}},
		{".readList nums.txt", Command{Kind: ReadList, Path: "nums.txt"}},
		{".preset reversed", Command{Kind: Preset, Name: "reversed"}},
		{".preset sawtooth 40", Command{Kind: Preset, Name: "sawtooth", Count: 40}},
		{".algorithms", Command{Kind: Algorithms}},
		{".show", Command{Kind: Show}},
		{".exit", Command{Kind: Exit}},
		{".quit", Command{Kind: Exit}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Generate(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{".generate", Command{Kind: Generate}},
		{".generate 5", Command{Kind: Generate, Count: 5}},
		{".generate 5 1-5 nr", Command{Kind: Generate, Count: 5, Range: sequence.Range{Min: 1, Max: 5}, HasRange: true, NoRepeat: true}},
		{".generate 10 1-3 nr", Command{Kind: Generate, Count: 10, Range: sequence.Range{Min: 1, Max: 3}, HasRange: true, NoRepeat: true}},
		{".generate 20-40", Command{Kind: Generate, Range: sequence.Range{Min: 20, Max: 40}, HasRange: true}},
		{".generate nr 8", Command{Kind: Generate, Count: 8, NoRepeat: true}},
		{".generate 4 -10--2", Command{Kind: Generate, Count: 4, Range: sequence.Range{Min: -10, Max: -2}, HasRange: true}},
		{".generate 3 -5-5", Command{Kind: Generate, Count: 3, Range: sequence.Range{Min: -5, Max: 5}, HasRange: true}},
		{".generate full 1-10", Command{Kind: GenerateFull, Range: sequence.Range{Min: 1, Max: 10}, HasRange: true}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"", ErrUnknownCommand},
		{"quicksort", ErrUnknownCommand},
		{".bogosort", ErrUnknownCommand},
		{".HELP", ErrUnknownCommand},
		{".help me", ErrInvalidArgument},
		{".speed", ErrMissingArgument},
		{".speed fast", ErrInvalidArgument},
		{".speed 0", ErrInvalidArgument},
		{".speed -2", ErrInvalidArgument},
		{".speed NaN", ErrInvalidArgument},
		{".speed +Inf", ErrInvalidArgument},
		{".speed 1 2", ErrInvalidArgument},
		{".sort", ErrMissingArgument},
		{".sort bogosort", sorting.ErrUnknownAlgorithm},
		{".compare quicksort", ErrMissingArgument},
		{".compare quicksort bogosort", sorting.ErrUnknownAlgorithm},
		{".compare a b c", ErrInvalidArgument},
		{".generate 0", ErrInvalidArgument},
		{".generate -3", ErrInvalidArgument},
		{".generate ten", ErrInvalidArgument},
		{".generate 5 5-1", ErrInvalidRange},
		{".generate 5 3-3", ErrInvalidRange},
		{".generate 5 1-x", ErrInvalidArgument},
		{".generate 5 1-3 2-4", ErrInvalidArgument},
		{".generate 5 6", ErrInvalidArgument},
		{".generate nr nr", ErrInvalidArgument},
		{".generate full", ErrMissingArgument},
		{".generate full 7", ErrInvalidArgument},
		{".generate full 9-2", ErrInvalidRange},
		{".generate 5 -9223372036854775808-9223372036854775807", ErrInvalidRange},
		{".generate full -5000000000000000000-5000000000000000000", ErrInvalidRange},
		{".readlist", ErrMissingArgument},
		{".preset", ErrMissingArgument},
		{".preset sorted many", ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := Parse(tt.line)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestInvalidRangeIsGeneratorError(t *testing.T) {
	assert.ErrorIs(t, ErrInvalidRange, sequence.ErrInvalidRange)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "compare", Compare.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func TestUsageMentionsEveryCommand(t *testing.T) {
	for name := range commands {
		if name == ".readList" || name == ".graph" {
			continue
		}
		assert.Contains(t, Usage, name)
	}
}
