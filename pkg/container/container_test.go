package container_test

import (
	"github.com/skybi/datamap/pkg/container"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math"
	"testing"
)

func constructors() map[string]container.Constructor[string, int] {
	return map[string]container.Constructor[string, int]{
		"ordered": container.NewOrdered[string, int],
		"indexed": container.IndexedConstructor[string, int](),
	}
}

func TestContainer_Basic(t *testing.T) {
	for name, construct := range constructors() {
		t.Run(name, func(t *testing.T) {
			cont, err := construct([]container.Entry[string, int]{{Key: "one", Value: 1}, {Key: "two", Value: 2}})
			require.NoError(t, err)
			assert.Equal(t, 2, cont.Len())

			v, ok := cont.Get("two")
			require.True(t, ok)
			assert.Equal(t, 2, v)

			_, ok = cont.Get("three")
			assert.False(t, ok)
			assert.False(t, cont.Has("three"))

			cont.Set("three", 3)
			assert.True(t, cont.Has("three"))
			assert.Equal(t, 3, cont.Len())

			assert.True(t, cont.Delete("one"))
			assert.False(t, cont.Delete("one"))
			assert.Equal(t, 2, cont.Len())

			cont.Clear()
			assert.Equal(t, 0, cont.Len())
			assert.False(t, cont.Has("two"))
			assert.Empty(t, container.Collect(cont))
		})
	}
}

type node struct{ name string }

type pair struct{ A, B string }

func TestContainer_PointerKeys(t *testing.T) {
	backends := map[string]container.Constructor[*node, int]{
		"ordered": container.NewOrdered[*node, int],
		"indexed": container.IndexedConstructor[*node, int](),
	}
	for name, construct := range backends {
		t.Run(name, func(t *testing.T) {
			a, b := &node{"n"}, &node{"n"}
			cont, err := construct(nil)
			require.NoError(t, err)

			cont.Set(a, 1)
			cont.Set(b, 2)
			assert.Equal(t, 2, cont.Len())

			v, ok := cont.Get(a)
			require.True(t, ok)
			assert.Equal(t, 1, v)
			v, ok = cont.Get(b)
			require.True(t, ok)
			assert.Equal(t, 2, v)
			assert.False(t, cont.Has(&node{"n"}))

			assert.True(t, cont.Delete(a))
			assert.False(t, cont.Has(a))
			assert.True(t, cont.Has(b))
			assert.Equal(t, []container.Entry[*node, int]{{Key: b, Value: 2}}, container.Collect(cont))
		})
	}
}

func TestContainer_StructKeys(t *testing.T) {
	backends := map[string]container.Constructor[pair, int]{
		"ordered": container.NewOrdered[pair, int],
		"indexed": container.IndexedConstructor[pair, int](),
	}
	for name, construct := range backends {
		t.Run(name, func(t *testing.T) {
			// both format as {a b }
			first, second := pair{"a b", ""}, pair{"a", "b "}
			cont, err := construct([]container.Entry[pair, int]{{Key: first, Value: 1}, {Key: second, Value: 2}})
			require.NoError(t, err)
			assert.Equal(t, 2, cont.Len())

			v, ok := cont.Get(first)
			require.True(t, ok)
			assert.Equal(t, 1, v)

			cont.Set(pair{"a b", ""}, 10)
			assert.Equal(t, 2, cont.Len())
			assert.Equal(t, []container.Entry[pair, int]{
				{Key: first, Value: 10},
				{Key: second, Value: 2},
			}, container.Collect(cont))

			cont.Clear()
			assert.False(t, cont.Has(first))
			cont.Set(second, 3)
			assert.Equal(t, 1, cont.Len())
		})
	}
}

func TestContainer_SignedZeroKeys(t *testing.T) {
	backends := map[string]container.Constructor[float64, string]{
		"ordered": container.NewOrdered[float64, string],
		"indexed": container.IndexedConstructor[float64, string](),
	}
	for name, construct := range backends {
		t.Run(name, func(t *testing.T) {
			cont, err := construct(nil)
			require.NoError(t, err)

			cont.Set(0.0, "positive")
			cont.Set(math.Copysign(0, -1), "negative")
			assert.Equal(t, 1, cont.Len())
			v, ok := cont.Get(0.0)
			require.True(t, ok)
			assert.Equal(t, "negative", v)
		})
	}
}

func TestContainer_InsertionOrder(t *testing.T) {
	for name, construct := range constructors() {
		t.Run(name, func(t *testing.T) {
			cont, err := construct(nil)
			require.NoError(t, err)

			cont.Set("c", 3)
			cont.Set("a", 1)
			cont.Set("b", 2)
			// overwriting keeps the position
			cont.Set("c", 30)

			assert.Equal(t, []container.Entry[string, int]{
				{Key: "c", Value: 30},
				{Key: "a", Value: 1},
				{Key: "b", Value: 2},
			}, container.Collect(cont))

			cont.Delete("c")
			cont.Set("c", 4)
			assert.Equal(t, []container.Entry[string, int]{
				{Key: "a", Value: 1},
				{Key: "b", Value: 2},
				{Key: "c", Value: 4},
			}, container.Collect(cont))
		})
	}
}

func TestContainer_AllStopsEarly(t *testing.T) {
	for name, construct := range constructors() {
		t.Run(name, func(t *testing.T) {
			cont, err := construct([]container.Entry[string, int]{{Key: "a"}, {Key: "b"}, {Key: "c"}})
			require.NoError(t, err)

			visited := 0
			for range cont.All() {
				visited++
				if visited == 2 {
					break
				}
			}
			assert.Equal(t, 2, visited)
		})
	}
}

func TestIndexed_WithKeyEncoder(t *testing.T) {
	type point struct{ X, Y int }

	encode := func(p point) string {
		return string(rune('a'+p.X)) + string(rune('a'+p.Y))
	}
	cont, err := container.NewIndexed[point, string](nil, container.WithKeyEncoder[point, string](encode))
	require.NoError(t, err)

	cont.Set(point{1, 2}, "first")
	cont.Set(point{2, 1}, "second")
	cont.Set(point{1, 2}, "replaced")

	assert.Equal(t, 2, cont.Len())
	v, ok := cont.Get(point{1, 2})
	require.True(t, ok)
	assert.Equal(t, "replaced", v)
}

func TestIndexed_EmptyEncoding(t *testing.T) {
	cont, err := container.NewIndexed[int, string](nil, container.WithKeyEncoder[int, string](func(int) string {
		return ""
	}))
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		cont.Set(1, "one")
	})
	v, ok := cont.Get(1)
	require.True(t, ok)
	assert.Equal(t, "one", v)
	assert.True(t, cont.Delete(1))
	assert.Equal(t, 0, cont.Len())
}

func TestIndexed_SnapshotIteration(t *testing.T) {
	cont, err := container.NewIndexed([]container.Entry[int, int]{{Key: 1, Value: 1}, {Key: 2, Value: 2}})
	require.NoError(t, err)

	var keys []int
	for key := range cont.All() {
		keys = append(keys, key)
		cont.Set(key+10, key)
	}
	assert.Equal(t, []int{1, 2}, keys)
	assert.Equal(t, 4, cont.Len())
}

func TestIndexed_OrderBeyondOneByte(t *testing.T) {
	cont, err := container.NewIndexed[int, int](nil)
	require.NoError(t, err)

	for i := 0; i < 300; i++ {
		cont.Set(i, i)
	}

	expected := 0
	for key := range cont.All() {
		require.Equal(t, expected, key)
		expected++
	}
	assert.Equal(t, 300, expected)
}
