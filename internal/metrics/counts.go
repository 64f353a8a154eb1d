package metrics

import "log/slog"

// Counts tallies the primitive operations a sorting run performs.
type Counts struct {
	Comparisons int64
	Swaps       int64
	Writes      int64
}

func (c *Counts) Reset() {
	c.Comparisons = 0
	c.Swaps = 0
	c.Writes = 0
}

// Total is the number of recorded operations of any kind.
func (c Counts) Total() int64 {
	return c.Comparisons + c.Swaps + c.Writes
}

func (c Counts) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("comparisons", c.Comparisons),
		slog.Int64("swaps", c.Swaps),
		slog.Int64("writes", c.Writes),
	)
}
