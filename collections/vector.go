package collections

import (
	"encoding/json"
	"fmt"
	"iter"

	"gopkg.in/yaml.v3"
)

// Vector is a growable ordered sequence. It keeps every appended value,
// duplicates included, in insertion order.
type Vector[V any] struct {
	entries []V
}

func NewVector[V any]() *Vector[V] {
	return &Vector[V]{
		entries: make([]V, 0),
	}
}

func (v *Vector[V]) Append(value V) {
	v.entries = append(v.entries, value)
}

// Entries returns the stored values in insertion order. The returned slice is
// the vector's backing storage and must not be modified.
func (v *Vector[V]) Entries() []V {
	return v.entries
}

func (v *Vector[V]) Size() int {
	return len(v.entries)
}

func (v *Vector[V]) IsEmpty() bool {
	return len(v.entries) == 0
}

func (v *Vector[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, value := range v.entries {
			if !yield(value) {
				return
			}
		}
	}
}

func (v Vector[V]) String() string {
	return fmt.Sprint(v.entries)
}

// MarshalJSON encodes the vector as a plain JSON array.
func (v *Vector[V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.entries)
}

func (v *Vector[V]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &v.entries)
}

// MarshalYAML encodes the vector as a plain YAML sequence.
func (v *Vector[V]) MarshalYAML() (any, error) {
	return v.entries, nil
}

func (v *Vector[V]) UnmarshalYAML(value *yaml.Node) error {
	return value.Decode(&v.entries)
}
