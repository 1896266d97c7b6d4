package aoc

import (
	"slices"
	"testing"
)

func TestPQ(t *testing.T) {
	q := MinQueue[string]()
	q.PushValue("c", 3)
	q.PushValue("a", -1)
	q.Push(&PQI[string]{V: "d", P: 7})
	q.PushValue("b", 0)
	if q.Len() != 4 {
		t.Fatalf("Len = %d, want 4", q.Len())
	}
	var got []string
	q.While(func(it *PQI[string]) bool {
		got = append(got, it.V)
		return it.V != "c"
	})
	if want := []string{"a", "b", "c"}; !slices.Equal(got, want) {
		t.Errorf("pop order = %v, want %v", got, want)
	}
	if q.Len() != 1 || q.Pop().V != "d" {
		t.Errorf("queue after stopping does not hold d")
	}
}

func TestPQWhileGrows(t *testing.T) {
	q := MinQueue[int]()
	q.PushValue(0, 0)
	var got []int
	q.While(func(it *PQI[int]) bool {
		got = append(got, it.V)
		if it.V < 3 {
			q.PushValue(it.V+1, it.P+1)
		}
		return true
	})
	if want := []int{0, 1, 2, 3}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestStack(t *testing.T) {
	var s Stack[int]
	for i := 1; i <= 3; i++ {
		s.Push(i)
	}
	if s.Len() != 3 {
		t.Errorf("Len = %d, want 3", s.Len())
	}
	var got []int
	s.While(func(v int) bool {
		got = append(got, v)
		return true
	})
	if want := []int{3, 2, 1}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, ok := s.Pop(); ok {
		t.Errorf("Pop on empty stack succeeded")
	}
}

func TestQueue(t *testing.T) {
	q := NewQueue(1, 2)
	q.Push(3)
	var got []int
	q.While(func(v int) bool {
		got = append(got, v)
		return v != 2
	})
	if want := []int{1, 2}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if v, ok := q.Pop(); !ok || v != 3 {
		t.Errorf("Pop = %v, %v; want 3, true", v, ok)
	}
}
