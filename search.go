package volcanium

import (
	"context"
	"fmt"
	"slices"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// state is the mutable part of a search branch. Copies must go through
// clone before being stepped, as agents is a slice.
type state struct {
	agents    []Agent
	remaining int
	opened    valveSet
	rate      int // combined rate of opened
	total     int
}

func (s state) clone() state {
	s.agents = slices.Clone(s.agents)
	return s
}

// step runs one minute: opened valves release, then agents move. A valve
// opened during the minute starts releasing the minute after.
func (s *state) step(n *Network) {
	s.total += s.rate
	for i, a := range s.agents {
		a, done := a.advance()
		s.agents[i] = a
		if done {
			s.open(n, a.At)
		}
	}
	s.remaining--
}

func (s *state) open(n *Network, v int) {
	if v == n.startIndex() || s.opened.Has(v) {
		return
	}
	s.opened = s.opened.With(v)
	s.rate += n.valves[v].Rate
}

// drain runs out the clock without opening anything else.
func (s *state) drain() {
	s.total += s.remaining * s.rate
	s.remaining = 0
}

type engine struct {
	net  *Network
	opts options
	all  valveSet

	// tokens bounds the goroutines running branches. A nil channel
	// disables forking.
	tokens chan struct{}

	best     atomic.Int64
	branches atomic.Int64
	leaves   atomic.Int64
}

func newEngine(n *Network, o options) *engine {
	e := &engine{
		net:  n,
		opts: o,
		all:  allValves(n.Len()),
	}
	if o.workers > 1 {
		e.tokens = make(chan struct{}, o.workers)
	}
	return e
}

func (e *engine) root() state {
	s := state{
		agents:    make([]Agent, e.opts.agents),
		remaining: e.opts.minutes,
	}
	for i := range s.agents {
		s.agents[i] = Agent{At: e.net.startIndex()}
	}
	return s
}

// search returns the best total reachable from s.
func (e *engine) search(ctx context.Context, s state, depth int) (int, error) {
	for {
		if s.remaining == 0 {
			e.leaves.Add(1)
			e.record(s.total)
			return s.total, nil
		}
		if s.opened == e.all {
			s.drain()
			continue
		}
		cands := e.candidates(s)
		idle := s.idle()
		if len(cands) == 0 && len(idle) == len(s.agents) {
			s.drain()
			continue
		}
		if len(cands) == 0 || len(idle) == 0 {
			s.step(e.net)
			continue
		}

		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if e.opts.maxDepth > 0 && depth >= e.opts.maxDepth {
			return 0, fmt.Errorf("%w: %d decisions", ErrSearchTooDeep, depth)
		}
		if e.opts.prune && int64(e.bound(s)) <= e.best.Load() {
			return s.total, nil
		}
		return e.fork(ctx, e.branch(s, idle, cands), depth+1)
	}
}

// candidates returns the unopened flow valves nobody is at or heading to
// that some agent could get to in the remaining time.
func (e *engine) candidates(s state) []int {
	var out []int
	for v := 0; v < e.net.Len(); v++ {
		if s.opened.Has(v) || s.claimed(v) {
			continue
		}
		for _, a := range s.agents {
			if d := e.net.dist[a.At][v]; d >= 0 && a.Remaining+d <= s.remaining {
				out = append(out, v)
				break
			}
		}
	}
	return out
}

func (s state) claimed(v int) bool {
	for _, a := range s.agents {
		if a.At == v {
			return true
		}
	}
	return false
}

// idle returns the indexes of the stationary agents.
func (s state) idle() []int {
	var out []int
	for i, a := range s.agents {
		if !a.Moving() {
			out = append(out, i)
		}
	}
	return out
}

// branch returns one child state per way of sending the idle agents to
// candidates, each already stepped through the current minute.
func (e *engine) branch(s state, idle, cands []int) []state {
	assigns := assignments(len(idle), len(cands))
	out := make([]state, 0, len(assigns))
	for _, as := range assigns {
		c := s.clone()
		for k, ai := range idle {
			v := cands[as[k]]
			d := e.net.dist[c.agents[ai].At][v]
			if d < 0 {
				// No path; the agent stays put and decides again next minute.
				continue
			}
			c.agents[ai] = Agent{At: v, Remaining: d + e.opts.openMinutes}
		}
		c.step(e.net)
		out = append(out, c)
	}
	return out
}

// assignments returns every way to give each of k agents one of c
// candidates. When there are enough candidates every agent gets a distinct
// one; otherwise every candidate is used and some are shared.
func assignments(k, c int) [][]int {
	var (
		out      [][]int
		cur      = make([]int, k)
		count    = make([]int, c)
		covered  int
		distinct = c >= k
	)
	var rec func(i int)
	rec = func(i int) {
		if i == k {
			if distinct || covered == c {
				out = append(out, slices.Clone(cur))
			}
			return
		}
		for j := 0; j < c; j++ {
			if distinct && count[j] > 0 {
				continue
			}
			if count[j] == 0 {
				covered++
			}
			count[j]++
			cur[i] = j
			rec(i + 1)
			count[j]--
			if count[j] == 0 {
				covered--
			}
		}
	}
	rec(0)
	return out
}

// fork evaluates the children and returns the best of them. Children are
// handed to other goroutines while tokens are available and run inline
// otherwise.
func (e *engine) fork(ctx context.Context, children []state, depth int) (int, error) {
	e.branches.Add(int64(len(children)))
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	results := make([]int, len(children))
	for i := range children {
		i := i
		run := func() error {
			v, err := e.search(ctx, children[i], depth)
			results[i] = v
			return err
		}
		if children[i].remaining >= e.opts.parallelCutoff && e.acquire() {
			g.Go(func() error {
				defer e.release()
				return run()
			})
			continue
		}
		if err := run(); err != nil {
			cancel()
			_ = g.Wait()
			return 0, err
		}
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return Max(results...), nil
}

func (e *engine) acquire() bool {
	select {
	case e.tokens <- struct{}{}:
		return true
	default:
		return false
	}
}

func (e *engine) release() {
	<-e.tokens
}

func (e *engine) record(total int) {
	for {
		cur := e.best.Load()
		if int64(total) <= cur || e.best.CompareAndSwap(cur, int64(total)) {
			return
		}
	}
}

// bound returns an upper limit on the total any continuation of s can
// reach: every unopened valve is assumed opened as early as the closest
// agent could manage.
func (e *engine) bound(s state) int {
	b := s.total + s.remaining*s.rate
	for v := 0; v < e.net.Len(); v++ {
		if s.opened.Has(v) {
			continue
		}
		earliest := -1
		for _, a := range s.agents {
			t := a.Remaining
			if a.At != v || !a.Moving() {
				d := e.net.dist[a.At][v]
				if d < 0 {
					continue
				}
				t += d + e.opts.openMinutes
			}
			if earliest < 0 || t < earliest {
				earliest = t
			}
		}
		if earliest >= 0 && earliest < s.remaining {
			b += e.net.valves[v].Rate * (s.remaining - earliest)
		}
	}
	return b
}
