package volcanium

import (
	"fmt"
	"slices"
	"sync"

	"golang.org/x/exp/maps"
	"tailscale.com/util/deephash"
)

// ReducedValve is a valve of a Network along with the travel time, in
// minutes, to every other valve of the Network it can reach.
type ReducedValve struct {
	Name    string
	Rate    int
	Tunnels map[string]int
}

// Network is the reduced form of a valve graph: only the valves with a
// positive flow rate, plus the start valve, with the shortest travel time
// between every pair. A Network is immutable and safe for concurrent use.
type Network struct {
	// valves holds the flow valves sorted by name, followed by the start
	// valve. Indexes into valves are the bit positions used in valveSet.
	valves []ReducedValve
	index  map[string]int

	// dist[i][j] is the travel time from valves[i] to valves[j], or -1 if
	// there is no path.
	dist [][]int
}

// Reduce builds a Network from the raw valve records. Every tunnel must
// lead to a valve present in valves.
//
// The start valve is kept regardless of its rate and is never opened.
func Reduce(valves []Valve, start string) (*Network, error) {
	var g Graph[string]
	byName := make(map[string]Valve, len(valves))
	for _, v := range valves {
		if _, dup := byName[v.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateValve, v.Name)
		}
		if v.Rate < 0 {
			return nil, fmt.Errorf("%w: %s has rate %d", ErrNegativeRate, v.Name, v.Rate)
		}
		byName[v.Name] = v
		g.AddNode(v.Name)
	}
	for _, v := range valves {
		for _, t := range v.Tunnels {
			if _, ok := byName[t]; !ok {
				return nil, fmt.Errorf("%w: %s -> %s", ErrUnknownValve, v.Name, t)
			}
			g.AddArc(v.Name, t, 1)
		}
	}
	if _, ok := byName[start]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoStart, start)
	}

	keep := slices.DeleteFunc(maps.Keys(byName), func(name string) bool {
		return name == start || byName[name].Rate == 0
	})
	if len(keep) > maxValves {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyValves, len(keep), maxValves)
	}
	slices.Sort(keep)
	keep = append(keep, start)

	paths := g.AllShortestPaths(keep...)
	n := &Network{
		valves: make([]ReducedValve, len(keep)),
		index:  make(map[string]int, len(keep)),
		dist:   make([][]int, len(keep)),
	}
	for i, a := range keep {
		n.index[a] = i
		rv := ReducedValve{
			Name:    a,
			Rate:    byName[a].Rate,
			Tunnels: make(map[string]int),
		}
		row := make([]int, len(keep))
		for j, b := range keep {
			if i == j {
				continue
			}
			d, ok := paths[Edge[string]{a, b}]
			if !ok {
				row[j] = -1
				continue
			}
			row[j] = d
			rv.Tunnels[b] = d
		}
		n.valves[i] = rv
		n.dist[i] = row
	}
	return n, nil
}

// Len reports the number of flow valves, excluding the start valve.
func (n *Network) Len() int {
	return len(n.valves) - 1
}

// Start returns the name of the start valve.
func (n *Network) Start() string {
	return n.valves[n.startIndex()].Name
}

func (n *Network) startIndex() int {
	return len(n.valves) - 1
}

// Valves returns the flow valves sorted by name, followed by the start
// valve.
func (n *Network) Valves() []ReducedValve {
	out := make([]ReducedValve, len(n.valves))
	for i, v := range n.valves {
		v.Tunnels = maps.Clone(v.Tunnels)
		out[i] = v
	}
	return out
}

// Valve returns the named valve. Zero-rate valves other than the start
// are not part of a Network.
func (n *Network) Valve(name string) (ReducedValve, bool) {
	i, ok := n.index[name]
	if !ok {
		return ReducedValve{}, false
	}
	v := n.valves[i]
	v.Tunnels = maps.Clone(v.Tunnels)
	return v, true
}

// Distance reports the travel time from one valve to another, and whether
// there is a path at all.
func (n *Network) Distance(from, to string) (int, bool) {
	i, ok := n.index[from]
	if !ok {
		return 0, false
	}
	j, ok := n.index[to]
	if !ok {
		return 0, false
	}
	if d := n.dist[i][j]; d >= 0 {
		return d, true
	}
	return 0, false
}

// TotalRate returns the combined rate of every flow valve.
func (n *Network) TotalRate() int {
	return n.rateOf(allValves(n.Len()))
}

func (n *Network) rateOf(s valveSet) int {
	var rate int
	for i := 0; i < n.Len(); i++ {
		if s.Has(i) {
			rate += n.valves[i].Rate
		}
	}
	return rate
}

var hashNetwork = sync.OnceValue(func() func(*Network) deephash.Sum {
	return deephash.HasherForType[Network]()
})

// Hash returns a structural hash of the Network. Reducing the same input
// twice yields the same hash.
func (n *Network) Hash() deephash.Sum {
	return hashNetwork()(n)
}
