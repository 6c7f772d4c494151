package collections

import (
	"encoding/json"
	"fmt"

	"golang.org/x/exp/maps"
	"gopkg.in/yaml.v3"
)

// Bag is a counting multiset. It stores each distinct value once together
// with the number of times it was appended.
type Bag[V comparable] struct {
	counts map[V]int
}

func NewBag[V comparable]() *Bag[V] {
	return &Bag[V]{
		counts: make(map[V]int),
	}
}

func (b *Bag[V]) Append(value V) {
	b.counts[value]++
}

// Remove discards one occurrence of the value, or returns ErrValueNotExisted
// if none is recorded.
func (b *Bag[V]) Remove(value V) error {
	n, ok := b.counts[value]
	if !ok {
		return ErrValueNotExisted
	}
	if n <= 1 {
		delete(b.counts, value)
		return nil
	}
	b.counts[value] = n - 1
	return nil
}

func (b *Bag[V]) Contains(value V) bool {
	return b.counts[value] > 0
}

func (b *Bag[V]) Count(value V) int {
	return b.counts[value]
}

// Size returns the number of distinct values.
func (b *Bag[V]) Size() int {
	return len(b.counts)
}

// Total returns the number of recorded occurrences, duplicates included.
func (b *Bag[V]) Total() int {
	total := 0
	for _, n := range b.counts {
		total += n
	}
	return total
}

func (b *Bag[V]) IsEmpty() bool {
	return len(b.counts) == 0
}

// Counts returns a copy of the value to occurrence-count mapping.
func (b *Bag[V]) Counts() map[V]int {
	return maps.Clone(b.counts)
}

func (b Bag[V]) String() string {
	return fmt.Sprint(b.counts)
}

// MarshalJSON encodes the bag as a JSON object of value to count.
func (b *Bag[V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.counts)
}

func (b *Bag[V]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &b.counts)
}

func (b *Bag[V]) MarshalYAML() (any, error) {
	return b.counts, nil
}

func (b *Bag[V]) UnmarshalYAML(value *yaml.Node) error {
	return value.Decode(&b.counts)
}
