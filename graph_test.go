package volcanium

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistances(t *testing.T) {
	var g Graph[string]
	g.AddEdge("a", "b", 1)
	g.AddEdge("b", "c", 1)
	g.AddEdge("c", "d", 7) // weights are ignored
	g.AddEdge("a", "d", 1)
	g.AddArc("d", "e", 1)
	g.AddNode("lonely")

	tests := []struct {
		from string
		want map[string]int
	}{
		{"a", map[string]int{"a": 0, "b": 1, "c": 2, "d": 1, "e": 2}},
		{"c", map[string]int{"a": 2, "b": 1, "c": 0, "d": 1, "e": 2}},
		{"e", map[string]int{"e": 0}},
		{"lonely", map[string]int{"lonely": 0}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, g.Distances(tt.from), "Distances(%q)", tt.from)
	}
}

func TestAllShortestPaths(t *testing.T) {
	var g Graph[int]
	for i := 0; i < 5; i++ {
		g.AddEdge(i, i+1, 1)
	}
	g.AddNode(10)

	got := g.AllShortestPaths(0, 3, 10)
	assert.Equal(t, 5, got[Edge[int]{0, 5}])
	assert.Equal(t, 3, got[Edge[int]{3, 0}])
	assert.Equal(t, 0, got[Edge[int]{10, 10}])
	_, ok := got[Edge[int]{0, 10}]
	assert.False(t, ok, "unreachable pair must be absent")
	_, ok = got[Edge[int]{5, 0}]
	assert.False(t, ok, "only requested sources are swept")
}

func TestQueue(t *testing.T) {
	q := NewQueue(1, 2)
	q.Push(3)
	assert.Equal(t, 3, q.Len())
	var got []int
	q.While(func(v int) bool {
		got = append(got, v)
		if v == 1 {
			q.Push(4)
		}
		return v != 3
	})
	assert.Equal(t, []int{1, 2, 3}, got)
	v, ok := q.Pop()
	assert.True(t, ok)
	assert.Equal(t, 4, v)
	_, ok = q.Pop()
	assert.False(t, ok)
}

func TestValveSet(t *testing.T) {
	var s valveSet
	s = s.With(0).With(5).With(63)
	assert.True(t, s.Has(5))
	assert.False(t, s.Has(4))
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, valveSet(0), allValves(0))
	assert.Equal(t, valveSet(0b111), allValves(3))
	assert.Equal(t, 64, allValves(64).Len())
}
