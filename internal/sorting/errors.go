package sorting

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownAlgorithm indicates a name outside the supported set.
	ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

	// ErrPrecondition indicates input the selected algorithm cannot sort.
	ErrPrecondition = errors.New("sorting: precondition violated")

	// ErrNegativeInput is returned by the digit and counting sorts.
	ErrNegativeInput = fmt.Errorf("%w: negative values are not supported", ErrPrecondition)

	// ErrRangeTooLarge is returned by counting sort when the value range
	// would need an oversized count table.
	ErrRangeTooLarge = fmt.Errorf("%w: value range too large", ErrPrecondition)
)
