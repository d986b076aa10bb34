// Package datamap provides hookable map wrappers built on pluggable containers and storage holders.
//
// DataMap forwards every operation to its container and lets a Hooks implementation observe reads,
// writes and clears. FactoryMap adds default values, defensive copies and automatic sorting.
// WeakDataMap keeps its container in a weak table so that it lives exactly as long as the map's holder.
package datamap

import (
	"github.com/skybi/datamap/pkg/container"
	"github.com/skybi/datamap/pkg/holder"
)

// Storage is the holder owning the container of a map
type Storage[K comparable, V any] interface {
	holder.Holder[container.Container[K, V]]
}

// Hooks observes the operations of a map.
// Hooks are called before the operation touches the container and can not alter its outcome.
type Hooks[K comparable, V any] interface {
	// OnGet is called by Get and Has
	OnGet(key K, data Storage[K, V])

	// OnSet is called by Set; previous is the zero value if existed is false
	OnSet(key K, value, previous V, existed bool, data Storage[K, V])

	// OnDelete is part of the hook set but not called by Delete
	OnDelete(key K, data Storage[K, V])

	// OnClear is called by Clear
	OnClear(data Storage[K, V])
}

// NopHooks implements every hook as a no-op.
// Embed it to override a subset of the hooks.
type NopHooks[K comparable, V any] struct{}

var _ Hooks[int, any] = NopHooks[int, any]{}

func (NopHooks[K, V]) OnGet(K, Storage[K, V])             {}
func (NopHooks[K, V]) OnSet(K, V, V, bool, Storage[K, V]) {}
func (NopHooks[K, V]) OnDelete(K, Storage[K, V])          {}
func (NopHooks[K, V]) OnClear(Storage[K, V])              {}

// MultiHooks calls every contained hook set in order
type MultiHooks[K comparable, V any] []Hooks[K, V]

var _ Hooks[int, any] = MultiHooks[int, any]{}

func (hooks MultiHooks[K, V]) OnGet(key K, data Storage[K, V]) {
	for _, h := range hooks {
		h.OnGet(key, data)
	}
}

func (hooks MultiHooks[K, V]) OnSet(key K, value, previous V, existed bool, data Storage[K, V]) {
	for _, h := range hooks {
		h.OnSet(key, value, previous, existed, data)
	}
}

func (hooks MultiHooks[K, V]) OnDelete(key K, data Storage[K, V]) {
	for _, h := range hooks {
		h.OnDelete(key, data)
	}
}

func (hooks MultiHooks[K, V]) OnClear(data Storage[K, V]) {
	for _, h := range hooks {
		h.OnClear(data)
	}
}
