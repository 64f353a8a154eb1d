package sequence

import "errors"

var (
	// ErrFile indicates a list file that is missing, unreadable or holds a
	// token that is not an integer.
	ErrFile = errors.New("sequence: cannot load list")

	// ErrInvalidRange indicates a range whose lower bound is not strictly
	// below its upper bound, or one too large to materialize.
	ErrInvalidRange = errors.New("sequence: invalid range")

	// ErrInvalidCount indicates a non-positive or oversized element count.
	ErrInvalidCount = errors.New("sequence: invalid count")

	// ErrUnknownPreset indicates a preset name outside the table.
	ErrUnknownPreset = errors.New("sequence: unknown preset")
)
