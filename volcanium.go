// Package volcanium finds the most pressure a group of agents can release
// from a network of valves in a fixed number of minutes.
//
// The valve graph is first reduced to the valves worth opening (see
// Reduce), then searched exhaustively over every order and assignment of
// valves to agents, evaluating sibling branches in parallel.
package volcanium

import (
	"context"
	"time"
)

// Result is the outcome of a search.
type Result struct {
	// Released is the most pressure released within the time budget.
	Released int
	// Branches is the number of child states explored.
	Branches int64
	// Leaves is the number of branches run to the end of the budget.
	Leaves  int64
	Elapsed time.Duration
}

// Solver searches a Network.
type Solver struct {
	net  *Network
	opts options
}

// NewSolver returns a Solver for n. The start valve is taken from n;
// WithStart is ignored.
func NewSolver(n *Network, opts ...Option) *Solver {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.start = n.Start()
	return &Solver{net: n, opts: o}
}

// Solve runs the search to completion, or until ctx is done.
func (s *Solver) Solve(ctx context.Context) (Result, error) {
	if err := s.opts.validate(); err != nil {
		return Result{}, err
	}
	log := s.opts.logger
	log.Debug("search starting",
		"valves", s.net.Len(),
		"total_rate", s.net.TotalRate(),
		"minutes", s.opts.minutes,
		"agents", s.opts.agents,
		"workers", s.opts.workers,
		"prune", s.opts.prune,
	)

	t0 := time.Now()
	e := newEngine(s.net, s.opts)
	best, err := e.search(ctx, e.root(), 0)
	res := Result{
		Released: best,
		Branches: e.branches.Load(),
		Leaves:   e.leaves.Load(),
		Elapsed:  time.Since(t0),
	}
	if err != nil {
		log.Error("search failed", "err", err, "branches", res.Branches)
		return Result{}, err
	}
	log.Debug("search done",
		"released", res.Released,
		"branches", res.Branches,
		"leaves", res.Leaves,
		"elapsed", res.Elapsed.Round(time.Microsecond),
	)
	return res, nil
}

// Solve reduces valves and searches the result. See Reduce for the
// structural errors it can return.
func Solve(ctx context.Context, valves []Valve, opts ...Option) (Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return Result{}, err
	}
	n, err := Reduce(valves, o.start)
	if err != nil {
		return Result{}, err
	}
	o.logger.Debug("network reduced", "valves", len(valves), "kept", n.Len()+1, "hash", n.Hash().String())
	return NewSolver(n, opts...).Solve(ctx)
}
