package aggregate

import (
	"encoding/json"
	"iter"

	"golang.org/x/exp/maps"
	"gopkg.in/yaml.v3"
)

// HashMap adapts Go's built-in map to the Map contract: every value inserted
// under a key lands in that key's collection instead of overwriting the
// previous value. Lookup and insertion are O(1); iteration order across keys
// is unspecified.
type HashMap[K comparable, V any, C Collection[V]] struct {
	entries       map[K]C
	newCollection func() C
}

// NewHashMap returns an empty HashMap. newCollection produces the empty
// collection a key starts with on its first insert, for example
// collections.NewVector[V] to keep duplicates or collections.NewSet[V] to
// coalesce them.
func NewHashMap[K comparable, V any, C Collection[V]](newCollection func() C) *HashMap[K, V, C] {
	return &HashMap[K, V, C]{
		entries:       make(map[K]C),
		newCollection: newCollection,
	}
}

// Insert appends the value to the collection under key, creating the
// collection first if the key is new.
func (m *HashMap[K, V, C]) Insert(key K, value V) {
	c, ok := m.entries[key]
	if !ok {
		c = m.newCollection()
		m.entries[key] = c
	}
	c.Append(value)
}

// Contains reports whether the key holds a collection.
func (m *HashMap[K, V, C]) Contains(key K) bool {
	_, ok := m.entries[key]
	return ok
}

// Get returns the collection under key, or the zero collection and false if
// the key is absent.
func (m *HashMap[K, V, C]) Get(key K) (C, bool) {
	c, ok := m.entries[key]
	return c, ok
}

// Delete drops the key and its whole collection.
func (m *HashMap[K, V, C]) Delete(key K) {
	delete(m.entries, key)
}

// Size returns the number of keys, not the number of stored values.
func (m *HashMap[K, V, C]) Size() int {
	return len(m.entries)
}

func (m *HashMap[K, V, C]) IsEmpty() bool {
	return len(m.entries) == 0
}

// Keys returns the keys in unspecified order.
func (m *HashMap[K, V, C]) Keys() []K {
	return maps.Keys(m.entries)
}

// Values returns the per-key collections in unspecified order.
func (m *HashMap[K, V, C]) Values() []C {
	return maps.Values(m.entries)
}

// All iterates the key-collection entries in unspecified order.
func (m *HashMap[K, V, C]) All() iter.Seq2[K, C] {
	return func(yield func(K, C) bool) {
		for k, c := range m.entries {
			if !yield(k, c) {
				return
			}
		}
	}
}

// Clear drops every key.
func (m *HashMap[K, V, C]) Clear() {
	maps.Clear(m.entries)
}

// MarshalJSON encodes the map as a JSON object of key to collection. Keys
// must be encodable as JSON object keys, the same requirement encoding/json
// places on map keys.
func (m *HashMap[K, V, C]) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.entries)
}

// UnmarshalJSON replaces the map's entries with the decoded object. The
// decoder builds collections through their own UnmarshalJSON, so a HashMap
// decoded into must still be built with NewHashMap before further inserts.
func (m *HashMap[K, V, C]) UnmarshalJSON(data []byte) error {
	entries := make(map[K]C)
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	m.entries = entries
	return nil
}

// MarshalYAML encodes the map as a YAML mapping of key to collection.
func (m *HashMap[K, V, C]) MarshalYAML() (any, error) {
	return m.entries, nil
}

// UnmarshalYAML replaces the map's entries with the decoded mapping.
func (m *HashMap[K, V, C]) UnmarshalYAML(value *yaml.Node) error {
	entries := make(map[K]C)
	if err := value.Decode(&entries); err != nil {
		return err
	}
	m.entries = entries
	return nil
}
