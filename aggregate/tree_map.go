package aggregate

import (
	"encoding/json"
	"errors"
	"iter"

	"github.com/emirpasic/gods/maps/treemap"
	godsutils "github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
	"gopkg.in/yaml.v3"
)

// ErrNotConstructed is returned when a TreeMap that was never built with
// NewTreeMap or NewTreeMapWith, such as one allocated by a decoder, is asked
// to decode data. A tree needs its comparator before it can hold keys.
var ErrNotConstructed = errors.New("tree map not constructed with a comparator")

// Comparator defines a total order on keys: negative if a sorts before b,
// zero if they are equal, positive if a sorts after b.
type Comparator[K any] func(a, b K) int

// TreeMap adapts a red-black tree to the Map contract: every value inserted
// under a key lands in that key's collection, and iteration yields keys in
// ascending comparator order. Lookup and insertion are O(log n).
type TreeMap[K comparable, V any, C Collection[V]] struct {
	tree          *treemap.Map
	newCollection func() C
}

// NewTreeMap returns an empty TreeMap ordered by the natural ordering of K.
// newCollection produces the empty collection a key starts with on its first
// insert.
func NewTreeMap[K constraints.Ordered, V any, C Collection[V]](newCollection func() C) *TreeMap[K, V, C] {
	return NewTreeMapWith[K, V, C](func(a, b K) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}, newCollection)
}

// NewTreeMapWith returns an empty TreeMap ordered by the given comparator.
func NewTreeMapWith[K comparable, V any, C Collection[V]](compare Comparator[K], newCollection func() C) *TreeMap[K, V, C] {
	var comparator godsutils.Comparator = func(a, b any) int {
		return compare(a.(K), b.(K))
	}
	return &TreeMap[K, V, C]{
		tree:          treemap.NewWith(comparator),
		newCollection: newCollection,
	}
}

// Insert appends the value to the collection under key, creating the
// collection first if the key is new.
func (m *TreeMap[K, V, C]) Insert(key K, value V) {
	c, ok := m.Get(key)
	if !ok {
		c = m.newCollection()
		m.tree.Put(key, c)
	}
	c.Append(value)
}

// Contains reports whether the key holds a collection.
func (m *TreeMap[K, V, C]) Contains(key K) bool {
	_, ok := m.tree.Get(key)
	return ok
}

// Get returns the collection under key, or the zero collection and false if
// the key is absent.
func (m *TreeMap[K, V, C]) Get(key K) (C, bool) {
	raw, ok := m.tree.Get(key)
	if !ok {
		var zero C
		return zero, false
	}
	return raw.(C), true
}

// Delete drops the key and its whole collection.
func (m *TreeMap[K, V, C]) Delete(key K) {
	m.tree.Remove(key)
}

// Size returns the number of keys, not the number of stored values.
func (m *TreeMap[K, V, C]) Size() int {
	return m.tree.Size()
}

func (m *TreeMap[K, V, C]) IsEmpty() bool {
	return m.tree.Empty()
}

// Keys returns the keys in ascending order.
func (m *TreeMap[K, V, C]) Keys() []K {
	keys := make([]K, 0, m.tree.Size())
	it := m.tree.Iterator()
	for it.Next() {
		keys = append(keys, it.Key().(K))
	}
	return keys
}

// Values returns the per-key collections in ascending key order.
func (m *TreeMap[K, V, C]) Values() []C {
	values := make([]C, 0, m.tree.Size())
	it := m.tree.Iterator()
	for it.Next() {
		values = append(values, it.Value().(C))
	}
	return values
}

// All iterates the key-collection entries in ascending key order.
func (m *TreeMap[K, V, C]) All() iter.Seq2[K, C] {
	return func(yield func(K, C) bool) {
		it := m.tree.Iterator()
		for it.Next() {
			if !yield(it.Key().(K), it.Value().(C)) {
				return
			}
		}
	}
}

// Min returns the smallest key and its collection, or false if the map is
// empty.
func (m *TreeMap[K, V, C]) Min() (K, C, bool) {
	key, value := m.tree.Min()
	if key == nil {
		var zeroK K
		var zeroC C
		return zeroK, zeroC, false
	}
	return key.(K), value.(C), true
}

// Max returns the largest key and its collection, or false if the map is
// empty.
func (m *TreeMap[K, V, C]) Max() (K, C, bool) {
	key, value := m.tree.Max()
	if key == nil {
		var zeroK K
		var zeroC C
		return zeroK, zeroC, false
	}
	return key.(K), value.(C), true
}

// Clear drops every key. The comparator is kept.
func (m *TreeMap[K, V, C]) Clear() {
	m.tree.Clear()
}

// MarshalJSON encodes the map as a JSON object of key to collection. Keys
// must be encodable as JSON object keys, the same requirement encoding/json
// places on map keys.
func (m *TreeMap[K, V, C]) MarshalJSON() ([]byte, error) {
	entries := make(map[K]C, m.tree.Size())
	it := m.tree.Iterator()
	for it.Next() {
		entries[it.Key().(K)] = it.Value().(C)
	}
	return json.Marshal(entries)
}

// UnmarshalJSON replaces the map's entries with the decoded object. The
// receiver must have been built with NewTreeMap or NewTreeMapWith so the
// comparator is in place.
func (m *TreeMap[K, V, C]) UnmarshalJSON(data []byte) error {
	if m.tree == nil {
		return ErrNotConstructed
	}
	var entries map[K]C
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	m.tree.Clear()
	for k, c := range entries {
		m.tree.Put(k, c)
	}
	return nil
}

// MarshalYAML encodes the map as a YAML mapping of key to collection.
func (m *TreeMap[K, V, C]) MarshalYAML() (any, error) {
	entries := make(map[K]C, m.tree.Size())
	it := m.tree.Iterator()
	for it.Next() {
		entries[it.Key().(K)] = it.Value().(C)
	}
	return entries, nil
}

// UnmarshalYAML replaces the map's entries with the decoded mapping. The
// receiver must have been built with NewTreeMap or NewTreeMapWith so the
// comparator is in place.
func (m *TreeMap[K, V, C]) UnmarshalYAML(value *yaml.Node) error {
	if m.tree == nil {
		return ErrNotConstructed
	}
	var entries map[K]C
	if err := value.Decode(&entries); err != nil {
		return err
	}
	m.tree.Clear()
	for k, c := range entries {
		m.tree.Put(k, c)
	}
	return nil
}
