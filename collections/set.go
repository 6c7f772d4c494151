package collections

import (
	"encoding/json"
	"fmt"
	"iter"

	"gopkg.in/yaml.v3"
)

// Set is a deduplicating collection of comparable values. Iteration order is
// unspecified.
type Set[V comparable] struct {
	entries map[V]struct{}
}

func NewSet[V comparable]() *Set[V] {
	return &Set[V]{
		entries: make(map[V]struct{}),
	}
}

func (s *Set[V]) Contains(value V) bool {
	_, ok := s.entries[value]
	return ok
}

// Add inserts the value, or returns ErrValueExisted if it is already present.
func (s *Set[V]) Add(value V) error {
	if s.Contains(value) {
		return ErrValueExisted
	}
	s.entries[value] = struct{}{}
	return nil
}

// Append inserts the value, silently coalescing duplicates.
func (s *Set[V]) Append(value V) {
	s.entries[value] = struct{}{}
}

// Remove deletes the value, or returns ErrValueNotExisted if it is absent.
func (s *Set[V]) Remove(value V) error {
	if !s.Contains(value) {
		return ErrValueNotExisted
	}
	delete(s.entries, value)
	return nil
}

func (s *Set[V]) Size() int {
	return len(s.entries)
}

func (s *Set[V]) IsEmpty() bool {
	return len(s.entries) == 0
}

func (s *Set[V]) Entries() []V {
	arr := make([]V, 0, len(s.entries))
	for value := range s.entries {
		arr = append(arr, value)
	}
	return arr
}

func (s *Set[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for value := range s.entries {
			if !yield(value) {
				return
			}
		}
	}
}

func (s Set[V]) String() string {
	return fmt.Sprint(s.Entries())
}

// MarshalJSON encodes the set as a JSON array in unspecified order.
func (s *Set[V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Entries())
}

func (s *Set[V]) UnmarshalJSON(data []byte) error {
	var entries []V
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	s.entries = make(map[V]struct{}, len(entries))
	for _, value := range entries {
		s.entries[value] = struct{}{}
	}
	return nil
}

func (s *Set[V]) MarshalYAML() (any, error) {
	return s.Entries(), nil
}

func (s *Set[V]) UnmarshalYAML(value *yaml.Node) error {
	var entries []V
	if err := value.Decode(&entries); err != nil {
		return err
	}
	s.entries = make(map[V]struct{}, len(entries))
	for _, v := range entries {
		s.entries[v] = struct{}{}
	}
	return nil
}
