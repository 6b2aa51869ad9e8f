package fadaf

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMap(t *testing.T) *fadaf[int, string] {
	t.Helper()
	m, err := New[int, string](MinCapacity)
	require.NoError(t, err)
	return m.(*fadaf[int, string])
}

func TestMapScenario(t *testing.T) {
	m := newTestMap(t)

	for _, p := range []pair{{1, "a"}, {2, "b"}, {1, "c"}} {
		ok, err := m.Insert(p.key, p.data)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	assert.Equal(t, 3, m.Size())
	assert.Equal(t, 2, m.UniqueKeyCount())
	assert.Equal(t, []string{"a", "c"}, m.AllData(1))
	assert.True(t, m.LookupAny(1))

	ok, err := m.RemoveAll(1)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, 1, m.Size())
	assert.Equal(t, 1, m.UniqueKeyCount())
	assert.False(t, m.LookupAny(1))
	assert.Equal(t, 1, m.index.Size())
	checkTree(t, m.tree)
}

func TestMapCapacityBelowMinimum(t *testing.T) {
	m, err := New[int, string](MinCapacity - 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Nil(t, m)
}

func TestMapInsert(t *testing.T) {
	m := newTestMap(t)

	ok, err := m.Insert(7, "x")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.Insert(7, "x")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, m.Size())

	ok, err = m.Insert(7, "y")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, m.Size())
	assert.Equal(t, 1, m.UniqueKeyCount())

	// one index entry per key, not per pair
	assert.Equal(t, 1, m.index.Size())
}

func TestMapRemove(t *testing.T) {
	m := newTestMap(t)
	_, _ = m.Insert(3, "a")
	_, _ = m.Insert(3, "b")
	_, _ = m.Insert(4, "a")

	ok, err := m.Remove(3, "c")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = m.Remove(3, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, m.Lookup(3, "a"))
	assert.True(t, m.LookupAny(3))
	assert.Equal(t, 2, m.Size())

	ok, err = m.Remove(3, "b")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, m.LookupAny(3))
	assert.Equal(t, 1, m.Size())
	assert.Equal(t, 1, m.UniqueKeyCount())
	checkTree(t, m.tree)
}

func TestMapRemoveAllAbsent(t *testing.T) {
	m := newTestMap(t)
	_, _ = m.Insert(1, "a")

	ok, err := m.RemoveAll(2)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, m.Size())
}

func TestMapNilArguments(t *testing.T) {
	m, err := NewFunc[*int, *string](MinCapacity,
		func(a, b *int) int { return *a - *b },
		func(k *int) uint64 { return uint64(*k) })
	require.NoError(t, err)

	one, a := 1, "a"
	_, err = m.Insert(nil, &a)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = m.Insert(&one, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = m.Remove(&one, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = m.RemoveAll(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.False(t, m.LookupAny(nil))

	ok, err := m.Insert(&one, &a)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, m.LookupAny(&one))
}

func TestMapAllKeys(t *testing.T) {
	m := newTestMap(t)
	assert.Empty(t, m.AllKeys())

	for _, p := range []pair{{5, "a"}, {2, "a"}, {9, "a"}, {2, "b"}, {7, "a"}, {5, "b"}, {5, "c"}} {
		_, err := m.Insert(p.key, p.data)
		require.NoError(t, err)
	}
	assert.Equal(t, []int{2, 2, 5, 5, 5, 7, 9}, m.AllKeys())

	var data []string
	for k, d := range m.All() {
		if k == 5 {
			data = append(data, d)
		}
	}
	assert.Equal(t, []string{"a", "b", "c"}, data)
}

func TestMapMinMaxKey(t *testing.T) {
	m := newTestMap(t)

	_, ok := m.MinKey()
	assert.False(t, ok)
	_, ok = m.MaxKey()
	assert.False(t, ok)

	for _, k := range []int{4, -3, 12, 0, 12} {
		_, _ = m.Insert(k, strings.Repeat("x", k+4))
	}
	min, ok := m.MinKey()
	assert.True(t, ok)
	assert.Equal(t, -3, min)
	max, ok := m.MaxKey()
	assert.True(t, ok)
	assert.Equal(t, 12, max)

	_, _ = m.RemoveAll(-3)
	_, _ = m.RemoveAll(12)
	min, _ = m.MinKey()
	max, _ = m.MaxKey()
	assert.Equal(t, 0, min)
	assert.Equal(t, 4, max)
}

func TestMapResizeKeepsLookups(t *testing.T) {
	out := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m, err := New[int, string](MinCapacity, WithLogger(logger))
	require.NoError(t, err)
	impl := m.(*fadaf[int, string])

	for i := 0; i < 3*MinCapacity; i++ {
		_, err := m.Insert(i, "v")
		require.NoError(t, err)
		_, err = m.Insert(i, "w")
		require.NoError(t, err)
	}

	assert.GreaterOrEqual(t, impl.index.Capacity(), 2*MinCapacity)
	assert.Contains(t, out.String(), "hash index resized")
	for i := 0; i < 3*MinCapacity; i++ {
		assert.True(t, m.LookupAny(i))
		assert.True(t, m.Lookup(i, "v"))
		assert.True(t, m.Lookup(i, "w"))
	}
	assert.Equal(t, 3*MinCapacity, impl.index.Size())
}

func TestMapIterator(t *testing.T) {
	m := newTestMap(t)
	_, _ = m.Insert(2, "b")
	_, _ = m.Insert(1, "a")

	it := m.Iterator()
	var keys []int
	for it.HasNext() {
		n, err := it.Next()
		require.NoError(t, err)
		keys = append(keys, n.Key())
	}
	assert.Equal(t, []int{1, 2}, keys)

	_, err := it.Next()
	assert.ErrorIs(t, err, ErrNoMoreNodes)
}
