// Package container provides the insertion-ordered associative containers the maps of this module are built upon
package container

import "iter"

// Container represents the interface every container provided by this package has to implement.
// Keys are unique and iteration follows insertion order; overwriting a key keeps its position.
type Container[K comparable, V any] interface {
	// Len returns the amount of stored key-value pairs
	Len() int

	// Has returns whether a value is assigned to the given key
	Has(key K) bool

	// Get returns the value assigned to the given key and a boolean indicating whether it was present
	Get(key K) (V, bool)

	// Set inserts or overwrites a key-value pair
	Set(key K, value V)

	// Delete removes the value assigned to the given key and reports whether it was present
	Delete(key K) bool

	// Clear removes every key-value pair
	Clear()

	// All returns a sequence over the key-value pairs in insertion order
	All() iter.Seq2[K, V]
}

// Entry represents a single key-value pair
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Comparator compares two entries and returns a negative number, zero or a positive number
type Comparator[K comparable, V any] func(a, b Entry[K, V]) int

// Constructor creates a container pre-filled with the given entries
type Constructor[K comparable, V any] func(entries []Entry[K, V]) (Container[K, V], error)

// Collect snapshots the current pairs of a container
func Collect[K comparable, V any](cont Container[K, V]) []Entry[K, V] {
	entries := make([]Entry[K, V], 0, cont.Len())
	for key, value := range cont.All() {
		entries = append(entries, Entry[K, V]{Key: key, Value: value})
	}
	return entries
}
