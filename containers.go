package volcanium

import (
	"math/bits"
)

func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{
		q: in,
	}
}

// Queue is a FIFO queue.
type Queue[T any] struct {
	q []T
}

func (q *Queue[T]) Len() int {
	return len(q.q)
}

func (q *Queue[T]) Push(v T) {
	q.q = append(q.q, v)
}

func (q *Queue[T]) Pop() (T, bool) {
	if len(q.q) == 0 {
		var zero T
		return zero, false
	}
	v := q.q[0]
	q.q = q.q[1:]
	return v, true
}

// While pops values and calls f on each until the queue is empty or f
// returns false. f may push more values.
func (q *Queue[T]) While(f func(T) bool) {
	for {
		v, ok := q.Pop()
		if !ok {
			return
		}
		if !f(v) {
			return
		}
	}
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}

// maxValves is the number of flow valves a valveSet can hold.
const maxValves = 64

// valveSet is a set of flow valve indexes.
type valveSet uint64

func (s valveSet) Has(i int) bool {
	return s&(1<<uint(i)) != 0
}

func (s valveSet) With(i int) valveSet {
	return s | 1<<uint(i)
}

func (s valveSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// allValves returns the set holding indexes [0, n).
func allValves(n int) valveSet {
	if n >= maxValves {
		return ^valveSet(0)
	}
	return valveSet(1)<<uint(n) - 1
}
