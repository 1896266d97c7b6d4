package aoc

import (
	"container/heap"
)

// Stack is a LIFO stack.
type Stack[T any] struct {
	s []T
}

func (s *Stack[T]) Len() int {
	return len(s.s)
}

func (s *Stack[T]) Push(v T) {
	s.s = append(s.s, v)
}

func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.s) == 0 {
		return zero, false
	}
	last := len(s.s) - 1
	v := s.s[last]
	s.s[last] = zero
	s.s = s.s[:last]
	return v, true
}

// While pops values until the stack is empty or f returns false.
func (s *Stack[T]) While(f func(T) bool) {
	for v, ok := s.Pop(); ok && f(v); v, ok = s.Pop() {
	}
}

// PQI is an item in a PQ: a value V with priority P.
type PQI[T any] struct {
	V T
	P int
}

// PQ is a priority queue that pops the lowest priority first.
type PQ[T any] struct {
	h itemHeap[T]
}

// MinQueue returns an empty PQ.
func MinQueue[T any]() *PQ[T] {
	return &PQ[T]{}
}

func (pq *PQ[T]) Push(it *PQI[T]) {
	heap.Push(&pq.h, it)
}

// PushValue pushes v with priority p.
func (pq *PQ[T]) PushValue(v T, p int) {
	pq.Push(&PQI[T]{V: v, P: p})
}

func (pq *PQ[T]) Pop() *PQI[T] {
	return heap.Pop(&pq.h).(*PQI[T])
}

func (pq *PQ[T]) Len() int {
	return len(pq.h)
}

// While pops items until the queue is empty or f returns false. f may push
// more items.
func (pq *PQ[T]) While(f func(*PQI[T]) bool) {
	for pq.Len() > 0 {
		if !f(pq.Pop()) {
			return
		}
	}
}

// itemHeap implements heap.Interface ordered by ascending priority.
type itemHeap[T any] []*PQI[T]

func (h itemHeap[T]) Len() int           { return len(h) }
func (h itemHeap[T]) Less(i, j int) bool { return h[i].P < h[j].P }
func (h itemHeap[T]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *itemHeap[T]) Push(x any) {
	*h = append(*h, x.(*PQI[T]))
}

func (h *itemHeap[T]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return it
}

// Queue is a FIFO queue.
type Queue[T any] struct {
	q []T
}

// NewQueue returns a queue holding in, first value first.
func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{q: in}
}

func (q *Queue[T]) Push(v T) {
	q.q = append(q.q, v)
}

func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if len(q.q) == 0 {
		return zero, false
	}
	v := q.q[0]
	q.q[0] = zero
	q.q = q.q[1:]
	return v, true
}

// While pops values until the queue is empty or f returns false. f may push
// more values.
func (q *Queue[T]) While(f func(T) bool) {
	for v, ok := q.Pop(); ok && f(v); v, ok = q.Pop() {
	}
}
