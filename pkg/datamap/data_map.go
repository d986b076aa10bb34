package datamap

import (
	"github.com/skybi/datamap/pkg/container"
	"golang.org/x/exp/constraints"
	"maps"
	"slices"
)

// DataMap is the concrete hookable map
type DataMap[K comparable, V any] struct {
	*CoreMap[K, V]
}

// New creates a new data map holding the given entries
func New[K comparable, V any](entries []container.Entry[K, V], opts ...Option[K, V]) (*DataMap[K, V], error) {
	core, err := newCore(entries, opts)
	if err != nil {
		return nil, err
	}
	return &DataMap[K, V]{CoreMap: core}, nil
}

// FromObject creates a new data map holding the pairs of record in ascending key order
func FromObject[K constraints.Ordered, V any](record map[K]V, opts ...Option[K, V]) (*DataMap[K, V], error) {
	return New(entriesOf(record), opts...)
}

// Set inserts or overwrites a key-value pair
func (obj *DataMap[K, V]) Set(key K, value V) *DataMap[K, V] {
	obj.CoreMap.Set(key, value)
	return obj
}

// Clear removes every key-value pair
func (obj *DataMap[K, V]) Clear() *DataMap[K, V] {
	obj.CoreMap.Clear()
	return obj
}

// ForEach calls action for every key-value pair in container order
func (obj *DataMap[K, V]) ForEach(action func(value V, key K)) *DataMap[K, V] {
	obj.CoreMap.ForEach(action)
	return obj
}

func (obj *DataMap[K, V]) String() string {
	return "DataMap"
}

// entriesOf converts a record into entries sorted by key, as Go maps do not keep any order
func entriesOf[K constraints.Ordered, V any](record map[K]V) []container.Entry[K, V] {
	keys := slices.Sorted(maps.Keys(record))
	entries := make([]container.Entry[K, V], 0, len(keys))
	for _, key := range keys {
		entries = append(entries, container.Entry[K, V]{Key: key, Value: record[key]})
	}
	return entries
}
