package datamap

import (
	"github.com/skybi/datamap/pkg/container"
	"golang.org/x/exp/constraints"
	"slices"
)

// FactorySettings configures a factory map on construction.
// Nil functions keep the defaults.
type FactorySettings[K comparable, V any] struct {
	// Cloner copies values returned by Get
	Cloner func(value V) V

	// Comparator defines the order of Sort (StringComparator by default)
	Comparator container.Comparator[K, V]

	// DefaultValue produces the value materialized for keys missing on Get
	DefaultValue func() V

	// Ordered makes the map sort itself after every write
	Ordered bool
}

// FactoryMap is a hookable map producing default values for missing keys, optionally handing out copies of
// its values and optionally keeping its entries sorted.
//
// When ordered, the iteration order equals the comparator's order after every mutating operation.
type FactoryMap[K comparable, V any] struct {
	*CoreMap[K, V]

	defaultValue func() V
	cloner       func(value V) V
	comparator   container.Comparator[K, V]
	ordered      bool
}

// NewFactory creates a new factory map holding the given entries.
// An ordered map that holds entries after construction, including those of an Instance holder, is sorted once before it is returned.
func NewFactory[K comparable, V any](entries []container.Entry[K, V], settings FactorySettings[K, V], opts ...Option[K, V]) (*FactoryMap[K, V], error) {
	core, err := newCore(entries, opts)
	if err != nil {
		return nil, err
	}
	obj := &FactoryMap[K, V]{
		CoreMap:    core,
		comparator: StringComparator[K, V](),
		ordered:    settings.Ordered,
	}
	obj.SetCloner(settings.Cloner)
	obj.SetComparator(settings.Comparator)
	obj.SetDefaultValue(settings.DefaultValue)
	if obj.ordered && obj.Size() > 0 {
		obj.Sort()
	}
	return obj, nil
}

// FactoryFromObject creates a new factory map holding the pairs of record in ascending key order
func FactoryFromObject[K constraints.Ordered, V any](record map[K]V, settings FactorySettings[K, V], opts ...Option[K, V]) (*FactoryMap[K, V], error) {
	return NewFactory(entriesOf(record), settings, opts...)
}

// Get returns the value assigned to the given key and a boolean indicating whether it was present.
// A missing key is assigned a freshly produced default value first if a producer is configured; that write
// bypasses OnSet. If a cloner is configured, a copy of the stored value is returned.
func (obj *FactoryMap[K, V]) Get(key K) (V, bool) {
	if obj.defaultValue != nil {
		if cont := obj.data.Value(); !cont.Has(key) {
			cont.Set(key, obj.defaultValue())
			if obj.ordered {
				obj.Sort()
			}
		}
	}
	value, ok := obj.CoreMap.Get(key)
	if ok && obj.cloner != nil {
		return obj.cloner(value), true
	}
	return value, ok
}

// Set inserts or overwrites a key-value pair and re-sorts the map if it is ordered
func (obj *FactoryMap[K, V]) Set(key K, value V) *FactoryMap[K, V] {
	obj.CoreMap.Set(key, value)
	if obj.ordered {
		obj.Sort()
	}
	return obj
}

// Clear removes every key-value pair
func (obj *FactoryMap[K, V]) Clear() *FactoryMap[K, V] {
	obj.CoreMap.Clear()
	return obj
}

// ForEach calls action for every key-value pair in container order.
// The values are passed as stored, without cloning.
func (obj *FactoryMap[K, V]) ForEach(action func(value V, key K)) *FactoryMap[K, V] {
	obj.CoreMap.ForEach(action)
	return obj
}

// Sort re-orders the map using the stored comparator
func (obj *FactoryMap[K, V]) Sort() *FactoryMap[K, V] {
	return obj.SortBy(obj.comparator)
}

// SortBy re-orders the map using the given comparator (the stored one if nil).
// The entries are snapshotted, the map is cleared and the entries are re-inserted in order. Clearing and
// re-inserting go through the base operations, so OnClear fires once and OnSet once per entry, but the
// re-inserts never trigger another sort.
func (obj *FactoryMap[K, V]) SortBy(comparator container.Comparator[K, V]) *FactoryMap[K, V] {
	if comparator == nil {
		comparator = obj.comparator
	}
	entries := container.Collect(obj.data.Value())
	if len(entries) == 0 {
		return obj
	}
	slices.SortStableFunc(entries, comparator)

	obj.CoreMap.Clear()
	for _, entry := range entries {
		obj.CoreMap.Set(entry.Key, entry.Value)
	}
	return obj
}

// SetCloner sets the function copying values returned by Get; nil is ignored
func (obj *FactoryMap[K, V]) SetCloner(cloner func(value V) V) *FactoryMap[K, V] {
	if cloner != nil {
		obj.cloner = cloner
	}
	return obj
}

// Cloner returns the cloner function (nil if none is set)
func (obj *FactoryMap[K, V]) Cloner() func(value V) V {
	return obj.cloner
}

// SetComparator sets the comparator used by Sort; nil is ignored.
// Existing entries are not re-ordered until the next sort.
func (obj *FactoryMap[K, V]) SetComparator(comparator container.Comparator[K, V]) *FactoryMap[K, V] {
	if comparator != nil {
		obj.comparator = comparator
	}
	return obj
}

// Comparator returns the comparator used by Sort
func (obj *FactoryMap[K, V]) Comparator() container.Comparator[K, V] {
	return obj.comparator
}

// SetDefaultValue sets the producer of default values; nil is ignored
func (obj *FactoryMap[K, V]) SetDefaultValue(producer func() V) *FactoryMap[K, V] {
	if producer != nil {
		obj.defaultValue = producer
	}
	return obj
}

// DefaultValueFunc returns the producer of default values (nil if none is set)
func (obj *FactoryMap[K, V]) DefaultValueFunc() func() V {
	return obj.defaultValue
}

// DefaultValue produces a default value without storing it
func (obj *FactoryMap[K, V]) DefaultValue() (V, bool) {
	if obj.defaultValue == nil {
		var zero V
		return zero, false
	}
	return obj.defaultValue(), true
}

// SetOrdered sets whether the map sorts itself after every write.
// Enabling it sorts the map right away.
func (obj *FactoryMap[K, V]) SetOrdered(ordered bool) *FactoryMap[K, V] {
	obj.ordered = ordered
	if ordered {
		obj.Sort()
	}
	return obj
}

// Ordered returns whether the map sorts itself after every write
func (obj *FactoryMap[K, V]) Ordered() bool {
	return obj.ordered
}

func (obj *FactoryMap[K, V]) String() string {
	return "FactoryMap"
}
