package datamap

import (
	"github.com/skybi/datamap/pkg/container"
	"iter"
)

// CoreMap forwards every operation to the container of its storage holder and reports reads, writes and
// clears to its hooks.
// Misses are never errors: they are signaled by a boolean.
type CoreMap[K comparable, V any] struct {
	data  Storage[K, V]
	hooks Hooks[K, V]
}

func newCore[K comparable, V any](entries []container.Entry[K, V], opts []Option[K, V]) (*CoreMap[K, V], error) {
	built := buildOptions(opts)

	// A ready-made holder already owns its container; the entries are written into it
	if built.holder.IsInstance() {
		data, err := built.holder.Resolve(nil)
		if err != nil {
			return nil, err
		}
		cont := data.Value()
		if cont == nil {
			return nil, ErrNoContainer
		}
		for _, entry := range entries {
			cont.Set(entry.Key, entry.Value)
		}
		return &CoreMap[K, V]{data: data, hooks: built.hooks}, nil
	}

	cont, err := built.container(entries)
	if err != nil {
		return nil, err
	}
	data, err := built.holder.Resolve(cont)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, ErrNoContainer
	}
	return &CoreMap[K, V]{data: data, hooks: built.hooks}, nil
}

// Data returns the storage holder of the map
func (obj *CoreMap[K, V]) Data() Storage[K, V] {
	return obj.data
}

// Size returns the amount of stored key-value pairs
func (obj *CoreMap[K, V]) Size() int {
	return obj.data.Value().Len()
}

// Get returns the value assigned to the given key and a boolean indicating whether it was present
func (obj *CoreMap[K, V]) Get(key K) (V, bool) {
	obj.hooks.OnGet(key, obj.data)
	return obj.data.Value().Get(key)
}

// Has returns whether a value is assigned to the given key.
// It is observed by the OnGet hook just like Get.
func (obj *CoreMap[K, V]) Has(key K) bool {
	obj.hooks.OnGet(key, obj.data)
	return obj.data.Value().Has(key)
}

// Set inserts or overwrites a key-value pair
func (obj *CoreMap[K, V]) Set(key K, value V) *CoreMap[K, V] {
	cont := obj.data.Value()
	previous, existed := cont.Get(key)
	obj.hooks.OnSet(key, value, previous, existed, obj.data)
	cont.Set(key, value)
	return obj
}

// Delete removes the value assigned to the given key and reports whether it was present.
// OnDelete is not called.
func (obj *CoreMap[K, V]) Delete(key K) bool {
	return obj.data.Value().Delete(key)
}

// Clear removes every key-value pair
func (obj *CoreMap[K, V]) Clear() *CoreMap[K, V] {
	obj.hooks.OnClear(obj.data)
	obj.data.Value().Clear()
	return obj
}

// Entries returns a sequence over the live key-value pairs in container order
func (obj *CoreMap[K, V]) Entries() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for key, value := range obj.data.Value().All() {
			if !yield(key, value) {
				return
			}
		}
	}
}

// Keys returns a sequence over the live keys in container order
func (obj *CoreMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for key := range obj.data.Value().All() {
			if !yield(key) {
				return
			}
		}
	}
}

// Values returns a sequence over the live values in container order
func (obj *CoreMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, value := range obj.data.Value().All() {
			if !yield(value) {
				return
			}
		}
	}
}

// ForEach calls action for every key-value pair in container order
func (obj *CoreMap[K, V]) ForEach(action func(value V, key K)) *CoreMap[K, V] {
	for key, value := range obj.data.Value().All() {
		action(value, key)
	}
	return obj
}

func (obj *CoreMap[K, V]) String() string {
	return "CoreMap"
}
