package volcanium

// Graph is an adjacency map of weighted arcs. Unweighted puzzles use a
// weight of 1 on every arc.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

// AddArc adds a one-way arc from a to b.
func (g *Graph[K]) AddArc(a, b K, dist int) {
	InitMap(&g.Edges)
	g.AddNode(a)
	g.AddNode(b)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	g.Edges[a][b] = dist
}

func (g *Graph[K]) AddEdge(a, b K, dist int) {
	g.AddArc(a, b, dist)
	g.AddArc(b, a, dist)
}

// Distances returns the number of arcs on the shortest path from a to
// every node reachable from it. Arc weights are ignored. Unreachable nodes
// have no entry; a maps to 0.
func (g *Graph[K]) Distances(a K) map[K]int {
	dist := map[K]int{a: 0}
	q := NewQueue(a)
	q.While(func(v K) bool {
		d := dist[v]
		for k := range g.Edges[v] {
			if _, ok := dist[k]; ok {
				continue
			}
			dist[k] = d + 1
			q.Push(k)
		}
		return true
	})
	return dist
}

type Edge[T comparable] struct {
	A, B T
}

// AllShortestPaths returns the unit-weight shortest distance for every
// ordered pair of connected nodes in from.
func (g *Graph[K]) AllShortestPaths(from ...K) map[Edge[K]]int {
	out := make(map[Edge[K]]int)
	for _, a := range from {
		for b, d := range g.Distances(a) {
			out[Edge[K]{a, b}] = d
		}
	}
	return out
}
