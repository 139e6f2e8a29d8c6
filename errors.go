package volcanium

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine is returned when an input line is not a valve record.
	ErrMalformedLine = errors.New("volcanium: malformed valve line")

	// ErrDuplicateValve is returned when two records share a name.
	ErrDuplicateValve = errors.New("volcanium: duplicate valve")

	// ErrUnknownValve is returned when a tunnel leads to a valve that has no record.
	ErrUnknownValve = errors.New("volcanium: tunnel to unknown valve")

	// ErrNegativeRate is returned for a valve with a flow rate below zero.
	ErrNegativeRate = errors.New("volcanium: negative flow rate")

	// ErrNoStart is returned when the start valve has no record.
	ErrNoStart = errors.New("volcanium: start valve not found")

	// ErrTooManyValves is returned when more flow valves exist than the
	// search can track.
	ErrTooManyValves = errors.New("volcanium: too many flow valves")

	// ErrSearchTooDeep is returned when the search exceeds the configured
	// decision depth.
	ErrSearchTooDeep = errors.New("volcanium: search depth limit exceeded")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("volcanium: invalid config")
)

func fmtInvalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
}
