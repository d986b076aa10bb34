// Package holder provides the storage holders owning the value a map is built upon.
//
// A holder is created once, either handed over directly (Instance) or constructed from a
// constructor plus extra arguments (Descriptor), and is never replaced afterwards.
package holder

// Holder owns exactly one value and provides read access to it
type Holder[T any] interface {
	// Value returns the held value
	Value() T
}

// Constructor creates a holder owning the given initial value.
// Extra arguments are constructor specific.
type Constructor[T any] func(initial T, args ...any) (Holder[T], error)

// Input describes how the holder of a map is obtained.
// The zero value resolves to a Data holder.
type Input[T any] struct {
	instance Holder[T]
	ctor     Constructor[T]
	args     []any
}

// Instance uses the given holder as it is
func Instance[T any](holder Holder[T]) Input[T] {
	return Input[T]{instance: holder}
}

// Descriptor constructs the holder using ctor and the extra arguments
func Descriptor[T any](ctor Constructor[T], args ...any) Input[T] {
	return Input[T]{ctor: ctor, args: args}
}

// IsInstance reports whether the input carries a ready-made holder
func (in Input[T]) IsInstance() bool {
	return in.instance != nil
}

// Resolve returns the holder described by the input.
// An instance is returned as it is and initial is ignored; errors of the constructor are returned unchanged.
func (in Input[T]) Resolve(initial T) (Holder[T], error) {
	if in.instance != nil {
		return in.instance, nil
	}
	if in.ctor != nil {
		return in.ctor(initial, in.args...)
	}
	return ConstructData(initial)
}
