package volcanium

import (
	"io"
	"log/slog"
	"runtime"
)

type options struct {
	start          string
	minutes        int
	agents         int
	openMinutes    int
	workers        int
	parallelCutoff int
	maxDepth       int
	prune          bool
	logger         *slog.Logger
}

func defaultOptions() options {
	return options{
		start:          "AA",
		minutes:        26,
		agents:         2,
		openMinutes:    1,
		workers:        runtime.GOMAXPROCS(0),
		parallelCutoff: 3,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option configures a search.
type Option func(*options)

// WithStart sets the valve every agent starts at. Default "AA".
func WithStart(name string) Option {
	return func(o *options) {
		o.start = name
	}
}

// WithMinutes sets the time budget. Default 26.
func WithMinutes(m int) Option {
	return func(o *options) {
		o.minutes = m
	}
}

// WithAgents sets the number of agents moving through the network.
// Default 2.
func WithAgents(n int) Option {
	return func(o *options) {
		o.agents = n
	}
}

// WithOpenMinutes sets how long an agent spends opening a valve once it
// arrives. Default 1; 0 opens the valve on arrival.
func WithOpenMinutes(m int) Option {
	return func(o *options) {
		o.openMinutes = m
	}
}

// WithWorkers caps the number of goroutines evaluating branches. Values
// below 2 run the search on the calling goroutine only.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithParallelCutoff sets the minimum remaining minutes for a branch to be
// handed to another goroutine. Smaller branches run inline.
func WithParallelCutoff(m int) Option {
	return func(o *options) {
		o.parallelCutoff = m
	}
}

// WithMaxDepth fails the search with ErrSearchTooDeep once a branch has
// made more than n decisions. Zero means no limit.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		o.maxDepth = n
	}
}

// WithPruning enables upper-bound pruning. The result is unchanged; only
// branches that cannot beat the best total found so far are skipped.
func WithPruning(on bool) Option {
	return func(o *options) {
		o.prune = on
	}
}

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func (o options) validate() error {
	switch {
	case o.agents < 1:
		return fmtInvalid("agents must be at least 1, got %d", o.agents)
	case o.minutes < 0:
		return fmtInvalid("minutes must not be negative, got %d", o.minutes)
	case o.openMinutes < 0:
		return fmtInvalid("open minutes must not be negative, got %d", o.openMinutes)
	case o.maxDepth < 0:
		return fmtInvalid("max depth must not be negative, got %d", o.maxDepth)
	case o.start == "":
		return fmtInvalid("start valve must be set")
	}
	return nil
}
