package collections

import (
	"fmt"
	"iter"
)

// Stack is a LIFO collection. Append pushes, so a stack can stand in
// wherever a collection is expected when the most recent value should be
// read first.
type Stack[V any] struct {
	entries []V
}

func NewStack[V any]() *Stack[V] {
	return &Stack[V]{
		entries: make([]V, 0),
	}
}

func (s *Stack[V]) Push(value V) {
	s.entries = append(s.entries, value)
}

func (s *Stack[V]) Append(value V) {
	s.Push(value)
}

// Pop removes and returns the top value, or returns the zero value if the
// stack is empty.
func (s *Stack[V]) Pop() V {
	var result V
	if n := len(s.entries); n > 0 {
		result = s.entries[n-1]
		s.entries = s.entries[:n-1]
	}
	return result
}

// Peek returns the top value without removing it, or the zero value if the
// stack is empty.
func (s *Stack[V]) Peek() V {
	var result V
	if n := len(s.entries); n > 0 {
		result = s.entries[n-1]
	}
	return result
}

func (s *Stack[V]) Size() int {
	return len(s.entries)
}

func (s *Stack[V]) IsEmpty() bool {
	return len(s.entries) == 0
}

// Entries returns the stacked values from top to bottom.
func (s *Stack[V]) Entries() []V {
	arr := make([]V, 0, len(s.entries))
	for i := len(s.entries) - 1; i >= 0; i-- {
		arr = append(arr, s.entries[i])
	}
	return arr
}

func (s *Stack[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := len(s.entries) - 1; i >= 0; i-- {
			if !yield(s.entries[i]) {
				return
			}
		}
	}
}

func (s Stack[V]) String() string {
	return fmt.Sprint(s.entries)
}
