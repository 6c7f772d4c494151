// Package aggregate collects key-value pairs into a mapping from each key to
// a collection of every value seen for it, instead of keeping only the last
// value per key.
//
// An AggregateMap wraps any container satisfying Map and feeds it pairs one
// at a time:
//
//	am := aggregate.CollectPairs(
//		aggregate.NewHashMap[string, string](collections.NewVector[string]),
//		aggregate.PairOf("dog", "Terry"),
//		aggregate.PairOf("dog", "Zamboni"),
//		aggregate.PairOf("cat", "Jonathan"),
//	)
//	names, _ := am.Inner().Get("dog") // Terry, Zamboni
//
// HashMap and TreeMap adapt the two common mapping containers, and any
// collection with an Append method can hold the per-key values: a Vector
// keeps duplicates in insertion order, a Set coalesces them, a Bag counts
// them.
package aggregate

// Collection is the contract a per-key value container must satisfy. It only
// has to accept values one at a time; iteration, lookup and draining stay on
// the concrete type.
//
// Implementations must have reference semantics: an Append through any copy
// of the collection value must be visible through all copies. Pointer
// receivers on a struct, as in the collections package, are the usual way.
type Collection[V any] interface {
	// Append adds one value to the collection. Duplicate handling is the
	// collection's own policy.
	Append(value V)
}

// Map is the contract an underlying mapping container must satisfy to be
// wrapped by an AggregateMap. Everything beyond accepting a single pair,
// such as lookup or iteration, stays on the concrete type and is reached
// through Inner.
type Map[K, V any] interface {
	// Insert adds one value to the collection stored under key, creating
	// that collection on first use. Values under one key accumulate in
	// insertion order; no earlier value is overwritten or dropped.
	Insert(key K, value V)
}
