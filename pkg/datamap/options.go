package datamap

import (
	"github.com/skybi/datamap/pkg/container"
	"github.com/skybi/datamap/pkg/holder"
)

type options[K comparable, V any] struct {
	container container.Constructor[K, V]
	holder    holder.Input[container.Container[K, V]]
	hooks     Hooks[K, V]
}

// Option configures the storage and hooks of a map
type Option[K comparable, V any] func(opts *options[K, V])

// WithContainer overrides the container constructor (container.NewOrdered by default)
func WithContainer[K comparable, V any](ctor container.Constructor[K, V]) Option[K, V] {
	return func(opts *options[K, V]) {
		if ctor != nil {
			opts.container = ctor
		}
	}
}

// WithHolder overrides how the storage holder is obtained (a holder.Data by default)
func WithHolder[K comparable, V any](input holder.Input[container.Container[K, V]]) Option[K, V] {
	return func(opts *options[K, V]) {
		opts.holder = input
	}
}

// WithHooks sets the hooks observing the map
func WithHooks[K comparable, V any](hooks Hooks[K, V]) Option[K, V] {
	return func(opts *options[K, V]) {
		if hooks != nil {
			opts.hooks = hooks
		}
	}
}

func buildOptions[K comparable, V any](opts []Option[K, V]) *options[K, V] {
	built := &options[K, V]{
		container: container.NewOrdered[K, V],
		hooks:     NopHooks[K, V]{},
	}
	for _, opt := range opts {
		opt(built)
	}
	return built
}
