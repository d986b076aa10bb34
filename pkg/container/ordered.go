package container

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"iter"
)

// Ordered implements the Container interface using a linked hash map
type Ordered[K comparable, V any] struct {
	underlying *orderedmap.OrderedMap[K, V]
}

var _ Container[int, any] = (*Ordered[int, any])(nil)

// NewOrdered creates a new ordered container holding the given entries
func NewOrdered[K comparable, V any](entries []Entry[K, V]) (Container[K, V], error) {
	obj := &Ordered[K, V]{
		underlying: orderedmap.New[K, V](orderedmap.WithCapacity[K, V](len(entries))),
	}
	for _, entry := range entries {
		obj.underlying.Set(entry.Key, entry.Value)
	}
	return obj, nil
}

// Len returns the amount of stored key-value pairs
func (obj *Ordered[K, V]) Len() int {
	return obj.underlying.Len()
}

// Has returns whether a value is assigned to the given key
func (obj *Ordered[K, V]) Has(key K) bool {
	_, ok := obj.underlying.Get(key)
	return ok
}

// Get returns the value assigned to the given key and a boolean indicating whether it was present
func (obj *Ordered[K, V]) Get(key K) (V, bool) {
	return obj.underlying.Get(key)
}

// Set inserts or overwrites a key-value pair
func (obj *Ordered[K, V]) Set(key K, value V) {
	obj.underlying.Set(key, value)
}

// Delete removes the value assigned to the given key and reports whether it was present
func (obj *Ordered[K, V]) Delete(key K) bool {
	_, ok := obj.underlying.Delete(key)
	return ok
}

// Clear removes every key-value pair (essentially re-creating the underlying map)
func (obj *Ordered[K, V]) Clear() {
	obj.underlying = orderedmap.New[K, V]()
}

// All returns a sequence over the key-value pairs in insertion order.
// The sequence walks the live list, so pairs appended while iterating are visited as well.
func (obj *Ordered[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for pair := obj.underlying.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}
