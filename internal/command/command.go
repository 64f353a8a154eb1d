// Package command parses the lines typed at the sortlab prompt.
package command

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/sortlab/internal/sequence"
	"github.com/san-kum/sortlab/internal/sorting"
	"github.com/san-kum/sortlab/internal/viz"
)

type Kind int

const (
	Help Kind = iota + 1
	Randomize
	Generate
	GenerateFull
	SetMode
	Speed
	Sort
	Compare
	ReadList
	Preset
	Algorithms
	Show
	Exit
)

var kindNames = map[Kind]string{
	Help:         "help",
	Randomize:    "randomize",
	Generate:     "generate",
	GenerateFull: "generate-full",
	SetMode:      "mode",
	Speed:        "speed",
	Sort:         "sort",
	Compare:      "compare",
	ReadList:     "readlist",
	Preset:       "preset",
	Algorithms:   "algorithms",
	Show:         "show",
	Exit:         "exit",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Command is a parsed prompt line. Only the fields of its Kind are set.
type Command struct {
	Kind Kind

	// Sort runs Algorithm; Compare runs Algorithm against Other.
	Algorithm sorting.Algorithm
	Other     sorting.Algorithm

	// Generate and Preset. Count 0 and HasRange false select defaults.
	Count    int
	Range    sequence.Range
	HasRange bool
	NoRepeat bool

	Mode  viz.Mode
	Speed float64
	Path  string
	Name  string
}

type parser func(args []string) (Command, error)

var commands map[string]parser

func init() {
	shorthand := func(a sorting.Algorithm) parser {
		return noArgs(Command{Kind: Sort, Algorithm: a})
	}

	commands = map[string]parser{
		".help":       noArgs(Command{Kind: Help}),
		".randomize":  noArgs(Command{Kind: Randomize}),
		".list":       noArgs(Command{Kind: SetMode, Mode: viz.ModeList}),
		".graphs":     noArgs(Command{Kind: SetMode, Mode: viz.ModeGraph}),
		".graph":      noArgs(Command{Kind: SetMode, Mode: viz.ModeGraph}),
		".algorithms": noArgs(Command{Kind: Algorithms}),
		".show":       noArgs(Command{Kind: Show}),
		".exit":       noArgs(Command{Kind: Exit}),
		".quit":       noArgs(Command{Kind: Exit}),
		".quicksort":  shorthand(sorting.Quick),
		".mergesort":  shorthand(sorting.Merge),
		".timsort":    shorthand(sorting.Tim),
		".radix":      shorthand(sorting.Radix),
		".heapsort":   shorthand(sorting.Heap),
		".speed":      parseSpeed,
		".sort":       parseSort,
		".compare":    parseCompare,
		".generate":   parseGenerate,
		".readlist":   parseReadList,
		".readList":   parseReadList,
		".preset":     parsePreset,
	}
}

// Parse turns one prompt line into a Command. Leading tokens are
// case-sensitive; algorithm names are not.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty line", ErrUnknownCommand)
	}
	p, ok := commands[fields[0]]
	if !ok {
		return Command{}, fmt.Errorf("%w: %s (try .help)", ErrUnknownCommand, fields[0])
	}
	cmd, err := p(fields[1:])
	if err != nil {
		return Command{}, fmt.Errorf("%s: %w", fields[0], err)
	}
	return cmd, nil
}

func noArgs(cmd Command) parser {
	return func(args []string) (Command, error) {
		if len(args) > 0 {
			return Command{}, fmt.Errorf("%w: unexpected %q", ErrInvalidArgument, args[0])
		}
		return cmd, nil
	}
}

func parseSpeed(args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, fmt.Errorf("%w: speed multiplier", ErrMissingArgument)
	}
	if len(args) > 1 {
		return Command{}, fmt.Errorf("%w: unexpected %q", ErrInvalidArgument, args[1])
	}
	s, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return Command{}, fmt.Errorf("%w: speed %q is not a number", ErrInvalidArgument, args[0])
	}
	if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return Command{}, fmt.Errorf("%w: speed %v must be positive and finite", ErrInvalidArgument, s)
	}
	return Command{Kind: Speed, Speed: s}, nil
}

func parseSort(args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, fmt.Errorf("%w: algorithm name", ErrMissingArgument)
	}
	if len(args) > 1 {
		return Command{}, fmt.Errorf("%w: unexpected %q", ErrInvalidArgument, args[1])
	}
	a, err := sorting.Parse(args[0])
	if err != nil {
		return Command{}, err
	}
	return Command{Kind: Sort, Algorithm: a}, nil
}

func parseCompare(args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, fmt.Errorf("%w: two algorithm names", ErrMissingArgument)
	}
	if len(args) > 2 {
		return Command{}, fmt.Errorf("%w: unexpected %q", ErrInvalidArgument, args[2])
	}
	a, err := sorting.Parse(args[0])
	if err != nil {
		return Command{}, err
	}
	b, err := sorting.Parse(args[1])
	if err != nil {
		return Command{}, err
	}
	return Command{Kind: Compare, Algorithm: a, Other: b}, nil
}

// parseGenerate accepts "[count] [min-max] [nr]" in any order, or
// "full min-max".
func parseGenerate(args []string) (Command, error) {
	if len(args) > 0 && args[0] == "full" {
		if len(args) < 2 {
			return Command{}, fmt.Errorf("%w: range for full", ErrMissingArgument)
		}
		if len(args) > 2 {
			return Command{}, fmt.Errorf("%w: unexpected %q", ErrInvalidArgument, args[2])
		}
		r, err := parseRange(args[1])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: GenerateFull, Range: r, HasRange: true}, nil
	}

	cmd := Command{Kind: Generate}
	for _, arg := range args {
		switch {
		case arg == "nr":
			if cmd.NoRepeat {
				return Command{}, fmt.Errorf("%w: nr given twice", ErrInvalidArgument)
			}
			cmd.NoRepeat = true
		case isRange(arg):
			if cmd.HasRange {
				return Command{}, fmt.Errorf("%w: second range %q", ErrInvalidArgument, arg)
			}
			r, err := parseRange(arg)
			if err != nil {
				return Command{}, err
			}
			cmd.Range, cmd.HasRange = r, true
		default:
			if cmd.Count != 0 {
				return Command{}, fmt.Errorf("%w: second count %q", ErrInvalidArgument, arg)
			}
			n, err := parseCount(arg)
			if err != nil {
				return Command{}, err
			}
			cmd.Count = n
		}
	}
	return cmd, nil
}

func parseReadList(args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, fmt.Errorf("%w: file name", ErrMissingArgument)
	}
	if len(args) > 1 {
		return Command{}, fmt.Errorf("%w: unexpected %q", ErrInvalidArgument, args[1])
	}
	return Command{Kind: ReadList, Path: args[0]}, nil
}

func parsePreset(args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, fmt.Errorf("%w: preset name", ErrMissingArgument)
	}
	if len(args) > 2 {
		return Command{}, fmt.Errorf("%w: unexpected %q", ErrInvalidArgument, args[2])
	}
	cmd := Command{Kind: Preset, Name: args[0]}
	if len(args) == 2 {
		n, err := parseCount(args[1])
		if err != nil {
			return Command{}, err
		}
		cmd.Count = n
	}
	return cmd, nil
}

// isRange reports whether s looks like "min-max"; a leading minus belongs
// to the lower bound.
func isRange(s string) bool {
	return len(s) > 1 && strings.Contains(s[1:], "-")
}

func parseRange(s string) (sequence.Range, error) {
	if !isRange(s) {
		return sequence.Range{}, fmt.Errorf("%w: range %q (want min-max)", ErrInvalidArgument, s)
	}
	i := strings.Index(s[1:], "-") + 1
	lo, err := strconv.Atoi(s[:i])
	if err != nil {
		return sequence.Range{}, fmt.Errorf("%w: range %q has a malformed lower bound", ErrInvalidArgument, s)
	}
	hi, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return sequence.Range{}, fmt.Errorf("%w: range %q has a malformed upper bound", ErrInvalidArgument, s)
	}
	r := sequence.Range{Min: lo, Max: hi}
	if err := r.Validate(); err != nil {
		return sequence.Range{}, err
	}
	return r, nil
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: count %q is not an integer", ErrInvalidArgument, s)
	}
	if n < 1 || n > sequence.MaxCount {
		return 0, fmt.Errorf("%w: count %d (want 1..%d)", ErrInvalidArgument, n, sequence.MaxCount)
	}
	return n, nil
}
