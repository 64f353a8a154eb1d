package command

import (
	"errors"

	"github.com/san-kum/sortlab/internal/sequence"
)

var (
	// ErrUnknownCommand indicates an unrecognized leading token.
	ErrUnknownCommand = errors.New("command: unknown command")

	// ErrInvalidArgument indicates a malformed number or range, or an
	// argument the command does not take.
	ErrInvalidArgument = errors.New("command: invalid argument")

	// ErrMissingArgument indicates that a required argument is absent.
	ErrMissingArgument = errors.New("command: missing argument")

	// ErrInvalidRange indicates a range whose lower bound is not strictly
	// below its upper bound. It is the same error the generator reports.
	ErrInvalidRange = sequence.ErrInvalidRange
)
