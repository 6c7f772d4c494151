package aggregate

import (
	"fmt"
	"iter"
)

// Pair is one key-value element of an aggregation input.
type Pair[K, V any] struct {
	Key   K `json:"key" yaml:"key"`
	Value V `json:"value" yaml:"value"`
}

// PairOf builds a Pair from a key and a value.
func PairOf[K, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{Key: key, Value: value}
}

func (p Pair[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Key, p.Value)
}

// Pairs returns a sequence over the given pairs, in argument order.
func Pairs[K, V any](pairs ...Pair[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, p := range pairs {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}
