package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBTreeCacheWrapBasics(t *testing.T) {
	kv := MemStore()

	k, v := []byte("hello"), []byte("world")

	assert.False(t, kv.Has(k))
	assert.Nil(t, kv.Get(k))

	kv.Set(k, v)
	assert.True(t, kv.Has(k))
	assert.Equal(t, v, kv.Get(k))

	kv.Delete(k)
	assert.False(t, kv.Has(k))
	assert.Nil(t, kv.Get(k))
}

func TestCacheWrapWriteAndDiscard(t *testing.T) {
	kv := MemStore()
	kv.Set([]byte("a"), []byte("1"))
	kv.Set([]byte("b"), []byte("2"))

	// discard drops all changes of the layer
	cache := kv.CacheWrap()
	cache.Set([]byte("a"), []byte("changed"))
	cache.Set([]byte("c"), []byte("3"))
	cache.Delete([]byte("b"))

	// the cache sees its own writes over the parent
	assert.Equal(t, []byte("changed"), cache.Get([]byte("a")))
	assert.Equal(t, []byte("3"), cache.Get([]byte("c")))
	assert.False(t, cache.Has([]byte("b")))
	// the parent is untouched so far
	assert.Equal(t, []byte("1"), kv.Get([]byte("a")))
	assert.True(t, kv.Has([]byte("b")))

	cache.Discard()
	assert.Equal(t, []byte("1"), kv.Get([]byte("a")))
	assert.True(t, kv.Has([]byte("b")))
	assert.False(t, kv.Has([]byte("c")))

	// write pushes all changes down
	cache = kv.CacheWrap()
	cache.Set([]byte("a"), []byte("changed"))
	cache.Delete([]byte("b"))
	cache.Write()

	assert.Equal(t, []byte("changed"), kv.Get([]byte("a")))
	assert.False(t, kv.Has([]byte("b")))
}

func TestCacheWrapWriteAppliesOpsInOrder(t *testing.T) {
	kv := MemStore()

	cache := kv.CacheWrap()
	cache.Set([]byte("k"), []byte("1"))
	cache.Delete([]byte("k"))
	cache.Set([]byte("k"), []byte("2"))
	cache.Write()

	assert.Equal(t, []byte("2"), kv.Get([]byte("k")))

	// ending on a delete removes the key
	cache = kv.CacheWrap()
	cache.Set([]byte("k"), []byte("3"))
	cache.Delete([]byte("k"))
	cache.Write()

	assert.False(t, kv.Has([]byte("k")))
}

func TestCacheWrapNested(t *testing.T) {
	kv := MemStore()
	kv.Set([]byte("a"), []byte("1"))

	outer := kv.CacheWrap()
	outer.Set([]byte("b"), []byte("2"))

	inner := outer.CacheWrap()
	inner.Set([]byte("c"), []byte("3"))
	assert.True(t, inner.Has([]byte("a")))
	assert.True(t, inner.Has([]byte("b")))

	// inner commit is not visible in the backing store until the
	// outer layer commits as well
	inner.Write()
	assert.True(t, outer.Has([]byte("c")))
	assert.False(t, kv.Has([]byte("c")))

	outer.Write()
	assert.True(t, kv.Has([]byte("b")))
	assert.True(t, kv.Has([]byte("c")))
}

func collect(t *testing.T, it Iterator) [][2]string {
	t.Helper()
	defer it.Close()
	var got [][2]string
	for ; it.Valid(); it.Next() {
		got = append(got, [2]string{string(it.Key()), string(it.Value())})
	}
	return got
}

func TestIteratorMergesParentAndCache(t *testing.T) {
	kv := MemStore()
	kv.Set([]byte("a"), []byte("1"))
	kv.Set([]byte("c"), []byte("3"))
	kv.Set([]byte("d"), []byte("4"))

	cache := kv.CacheWrap()
	cache.Set([]byte("b"), []byte("2"))   // new key between parent keys
	cache.Set([]byte("c"), []byte("new")) // overrides parent
	cache.Delete([]byte("d"))             // hides parent

	got := collect(t, cache.Iterator(nil, nil))
	want := [][2]string{{"a", "1"}, {"b", "2"}, {"c", "new"}}
	assert.Equal(t, want, got)

	// a bounded domain, end is exclusive
	got = collect(t, cache.Iterator([]byte("b"), []byte("c")))
	assert.Equal(t, [][2]string{{"b", "2"}}, got)
}

func TestReverseIterator(t *testing.T) {
	kv := MemStore()
	kv.Set([]byte("a"), []byte("1"))
	kv.Set([]byte("b"), []byte("2"))
	kv.Set([]byte("c"), []byte("3"))

	got := collect(t, kv.ReverseIterator(nil, nil))
	want := [][2]string{{"c", "3"}, {"b", "2"}, {"a", "1"}}
	assert.Equal(t, want, got)

	got = collect(t, kv.ReverseIterator([]byte("b"), nil))
	want = [][2]string{{"c", "3"}, {"b", "2"}}
	assert.Equal(t, want, got)
}

func TestIteratorOnEmptyDomain(t *testing.T) {
	kv := MemStore()
	kv.Set([]byte("a"), []byte("1"))

	it := kv.Iterator([]byte("x"), []byte("z"))
	require.False(t, it.Valid())
	it.Close()
}
