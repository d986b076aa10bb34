package holder_test

import (
	"errors"
	"github.com/skybi/datamap/pkg/holder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"runtime"
	"testing"
)

func TestInput_ZeroValueResolvesToData(t *testing.T) {
	var in holder.Input[[]int]
	assert.False(t, in.IsInstance())

	h, err := in.Resolve([]int{1, 2})
	require.NoError(t, err)
	require.IsType(t, &holder.Data[[]int]{}, h)
	assert.Equal(t, []int{1, 2}, h.Value())
}

func TestInput_Instance(t *testing.T) {
	data := holder.NewData("kept")
	in := holder.Instance[string](data)
	assert.True(t, in.IsInstance())

	h, err := in.Resolve("ignored")
	require.NoError(t, err)
	assert.Same(t, data, h)
	assert.Equal(t, "kept", h.Value())
}

func TestInput_DescriptorPassesArgs(t *testing.T) {
	var received []any
	ctor := func(initial string, args ...any) (holder.Holder[string], error) {
		received = args
		return holder.NewData(initial, args...), nil
	}

	h, err := holder.Descriptor(ctor, "a", "b", 1).Resolve("value")
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b", 1}, received)
	assert.Equal(t, "value", h.Value())
	assert.Equal(t, []any{"a", "b", 1}, h.(*holder.Data[string]).Args())
}

func TestInput_DescriptorErrorIsPropagated(t *testing.T) {
	failure := errors.New("boom")
	ctor := func(string, ...any) (holder.Holder[string], error) {
		return nil, failure
	}

	_, err := holder.Descriptor(ctor).Resolve("value")
	assert.Same(t, failure, err)
}

func TestWeakData_Reachable(t *testing.T) {
	table := holder.NewWeakTable()
	h := holder.NewWeakData(map[string]int{"x": 1}, table)

	assert.Equal(t, 1, h.Value()["x"])
	assert.Same(t, table, h.Table())
	assert.Equal(t, h.Identity().ID(), h.ID())

	raw, ok := table.Get(h.Identity())
	require.True(t, ok)
	assert.Equal(t, map[string]int{"x": 1}, raw)

	val, ok := holder.Lookup[map[string]int](table, h.Identity())
	require.True(t, ok)
	assert.Equal(t, 1, val["x"])

	_, ok = holder.Lookup[string](table, h.Identity())
	assert.False(t, ok)
}

func TestWeakData_DistinctIdentities(t *testing.T) {
	table := holder.NewWeakTable()
	first := holder.NewWeakData("first", table)
	second := holder.NewWeakData("second", table)

	assert.NotEqual(t, first.ID(), second.ID())
	assert.Equal(t, "first", first.Value())
	assert.Equal(t, "second", second.Value())
	assert.GreaterOrEqual(t, table.Len(), 2)
	runtime.KeepAlive(first)
	runtime.KeepAlive(second)
}

func TestConstructWeakData_Args(t *testing.T) {
	table := holder.NewWeakTable()

	h, err := holder.ConstructWeakData(42, table)
	require.NoError(t, err)
	assert.Same(t, table, h.(*holder.WeakData[int]).Table())
	assert.Equal(t, 42, h.Value())

	h, err = holder.ConstructWeakData(42)
	require.NoError(t, err)
	assert.Same(t, holder.DefaultTable, h.(*holder.WeakData[int]).Table())

	_, err = holder.ConstructWeakData(42, table, "nope")
	require.ErrorIs(t, err, holder.ErrUnexpectedArgument)
	var argErr *holder.ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, 1, argErr.Index)
	assert.Equal(t, "nope", argErr.Arg)
}
