package sequence

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// Parse reads integers separated by any mix of whitespace and commas. Any
// other token fails the whole read.
func Parse(r io.Reader) ([]int, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFile, err)
	}

	fields := strings.FieldsFunc(string(raw), func(c rune) bool {
		return c == ',' || unicode.IsSpace(c)
	})
	if len(fields) > MaxCount {
		return nil, fmt.Errorf("%w: more than %d values", ErrFile, MaxCount)
	}

	out := make([]int, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d %q is not an integer", ErrFile, i+1, f)
		}
		out = append(out, v)
	}
	return out, nil
}

func ReadFile(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFile, err)
	}
	defer f.Close()

	data, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}
