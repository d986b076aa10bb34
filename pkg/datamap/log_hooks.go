package datamap

import "github.com/rs/zerolog"

// LogHooks writes a debug event for every observed operation
type LogHooks[K comparable, V any] struct {
	logger zerolog.Logger
}

var _ Hooks[int, any] = (*LogHooks[int, any])(nil)

// NewLogHooks creates new logging hooks writing to the given logger
func NewLogHooks[K comparable, V any](logger zerolog.Logger) *LogHooks[K, V] {
	return &LogHooks[K, V]{logger: logger}
}

func (hooks *LogHooks[K, V]) OnGet(key K, data Storage[K, V]) {
	hooks.logger.Debug().
		Str("op", "get").
		Interface("key", key).
		Int("size", data.Value().Len()).
		Msg("reading map entry")
}

func (hooks *LogHooks[K, V]) OnSet(key K, value, _ V, existed bool, data Storage[K, V]) {
	hooks.logger.Debug().
		Str("op", "set").
		Interface("key", key).
		Interface("value", value).
		Bool("existed", existed).
		Int("size", data.Value().Len()).
		Msg("writing map entry")
}

func (hooks *LogHooks[K, V]) OnDelete(key K, data Storage[K, V]) {
	hooks.logger.Debug().
		Str("op", "delete").
		Interface("key", key).
		Int("size", data.Value().Len()).
		Msg("deleting map entry")
}

func (hooks *LogHooks[K, V]) OnClear(data Storage[K, V]) {
	hooks.logger.Debug().
		Str("op", "clear").
		Int("size", data.Value().Len()).
		Msg("clearing map")
}
