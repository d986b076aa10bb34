package datamap

import (
	"github.com/skybi/datamap/pkg/container"
	"github.com/skybi/datamap/pkg/holder"
	"slices"
)

// WeakDataMap is a data map whose container is stored in a holder.WeakTable.
// The container stays retrievable exactly as long as the map's holder is referenced; the map never evicts
// anything by itself and when the table drops the container is up to the garbage collector.
type WeakDataMap[K comparable, V any] struct {
	*DataMap[K, V]
}

// NewWeak creates a new weak data map registered in holder.DefaultTable
func NewWeak[K comparable, V any](entries []container.Entry[K, V], opts ...Option[K, V]) (*WeakDataMap[K, V], error) {
	return NewWeakIn(holder.DefaultTable, entries, opts...)
}

// NewWeakIn creates a new weak data map registered in the given table.
// A WithHolder option is overridden.
func NewWeakIn[K comparable, V any](table *holder.WeakTable, entries []container.Entry[K, V], opts ...Option[K, V]) (*WeakDataMap[K, V], error) {
	weakHolder := holder.Descriptor[container.Container[K, V]](holder.ConstructWeakData[container.Container[K, V]], table)
	data, err := New(entries, append(slices.Clone(opts), WithHolder[K, V](weakHolder))...)
	if err != nil {
		return nil, err
	}
	return &WeakDataMap[K, V]{DataMap: data}, nil
}

// Holder returns the weak holder of the map
func (obj *WeakDataMap[K, V]) Holder() *holder.WeakData[container.Container[K, V]] {
	return obj.data.(*holder.WeakData[container.Container[K, V]])
}

// Set inserts or overwrites a key-value pair
func (obj *WeakDataMap[K, V]) Set(key K, value V) *WeakDataMap[K, V] {
	obj.CoreMap.Set(key, value)
	return obj
}

// Clear removes every key-value pair
func (obj *WeakDataMap[K, V]) Clear() *WeakDataMap[K, V] {
	obj.CoreMap.Clear()
	return obj
}

// ForEach calls action for every key-value pair in container order
func (obj *WeakDataMap[K, V]) ForEach(action func(value V, key K)) *WeakDataMap[K, V] {
	obj.CoreMap.ForEach(action)
	return obj
}

func (obj *WeakDataMap[K, V]) String() string {
	return "WeakDataMap"
}
