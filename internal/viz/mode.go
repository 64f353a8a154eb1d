package viz

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownMode = errors.New("viz: unknown render mode")

// Mode selects the layout a renderer draws.
type Mode int

const (
	ModeList Mode = iota + 1
	ModeGraph
)

func (m Mode) String() string {
	switch m {
	case ModeList:
		return "list"
	case ModeGraph:
		return "graph"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts "list", "graph" and "graphs".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "list":
		return ModeList, nil
	case "graph", "graphs":
		return ModeGraph, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}
