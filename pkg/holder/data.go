package holder

// Data is the plain holder keeping a strong reference to its value
type Data[T any] struct {
	value T
	args  []any
}

var _ Holder[any] = (*Data[any])(nil)

// NewData creates a new data holder.
// The extra arguments are kept and can be read using Args.
func NewData[T any](initial T, args ...any) *Data[T] {
	return &Data[T]{
		value: initial,
		args:  args,
	}
}

// ConstructData is the Constructor of Data holders
func ConstructData[T any](initial T, args ...any) (Holder[T], error) {
	return NewData(initial, args...), nil
}

// Value returns the held value
func (obj *Data[T]) Value() T {
	return obj.value
}

// Args returns the extra arguments the holder was constructed with
func (obj *Data[T]) Args() []any {
	return obj.args
}
