package aggregate

import (
	"encoding/json"
	"fmt"
	"iter"

	"gopkg.in/yaml.v3"
)

// AggregateMap owns an underlying mapping container M and grows it from
// key-value pairs, one value per insert, so that no value for a repeated key
// is ever lost. The wrapper adds nothing but the feeding operations; the
// container's native API stays reachable through Inner.
type AggregateMap[K, V any, M Map[K, V]] struct {
	inner M
}

// Wrap takes ownership of an existing container. K and V cannot be inferred
// from M alone, so callers state them explicitly:
//
//	am := aggregate.Wrap[string, int](m)
func Wrap[K, V any, M Map[K, V]](inner M) *AggregateMap[K, V, M] {
	return &AggregateMap[K, V, M]{inner: inner}
}

// Collect wraps the container, usually a fresh one, and extends it with
// every pair the sequence produces.
func Collect[K, V any, M Map[K, V]](inner M, pairs iter.Seq2[K, V]) *AggregateMap[K, V, M] {
	am := Wrap[K, V](inner)
	am.Extend(pairs)
	return am
}

// CollectPairs is Collect over a fixed list of pairs.
func CollectPairs[K, V any, M Map[K, V]](inner M, pairs ...Pair[K, V]) *AggregateMap[K, V, M] {
	am := Wrap[K, V](inner)
	am.ExtendPairs(pairs...)
	return am
}

// Insert adds one value under one key. An AggregateMap is itself a Map, so
// wrappers compose with anything that feeds a Map.
func (am *AggregateMap[K, V, M]) Insert(key K, value V) {
	am.inner.Insert(key, value)
}

// Extend inserts every pair the sequence produces, in sequence order. The
// sequence is consumed one pair at a time, so it may be backed by a stream
// that decides its own end.
func (am *AggregateMap[K, V, M]) Extend(pairs iter.Seq2[K, V]) {
	for k, v := range pairs {
		am.inner.Insert(k, v)
	}
}

// ExtendPairs inserts the given pairs in argument order.
func (am *AggregateMap[K, V, M]) ExtendPairs(pairs ...Pair[K, V]) {
	for _, p := range pairs {
		am.inner.Insert(p.Key, p.Value)
	}
}

// Append inserts a single pair. It makes an AggregateMap usable as a per-key
// Collection of pairs, so a nested AggregateMap can serve as the per-key
// collection one level up.
func (am *AggregateMap[K, V, M]) Append(pair Pair[K, V]) {
	am.inner.Insert(pair.Key, pair.Value)
}

// Inner returns the underlying container for direct access to its native
// operations. The wrapper keeps ownership; mutations through the returned
// container and through the wrapper hit the same state.
func (am *AggregateMap[K, V, M]) Inner() M {
	return am.inner
}

// Unwrap moves the underlying container out of the wrapper and returns it.
// The wrapper is left holding the zero container and must not be used
// afterwards.
func (am *AggregateMap[K, V, M]) Unwrap() M {
	inner := am.inner
	var zero M
	am.inner = zero
	return inner
}

func (am *AggregateMap[K, V, M]) String() string {
	return fmt.Sprint(am.inner)
}

// MarshalJSON encodes exactly as the underlying container does; wrapping
// never changes the wire shape.
func (am *AggregateMap[K, V, M]) MarshalJSON() ([]byte, error) {
	return json.Marshal(am.inner)
}

// UnmarshalJSON decodes into the underlying container.
func (am *AggregateMap[K, V, M]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &am.inner)
}

// MarshalYAML encodes exactly as the underlying container does.
func (am *AggregateMap[K, V, M]) MarshalYAML() (any, error) {
	return am.inner, nil
}

// UnmarshalYAML decodes into the underlying container.
func (am *AggregateMap[K, V, M]) UnmarshalYAML(value *yaml.Node) error {
	return value.Decode(&am.inner)
}
