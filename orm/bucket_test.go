package orm

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mart-network/mart"
	"github.com/mart-network/mart/errors"
	"github.com/mart-network/mart/store"
)

// counter is a minimal model for bucket tests
type counter struct {
	Count int64
}

var _ Model = (*counter)(nil)

func (c *counter) Marshal() ([]byte, error) {
	res := make([]byte, 8)
	binary.BigEndian.PutUint64(res, uint64(c.Count))
	return res, nil
}

func (c *counter) Unmarshal(b []byte) error {
	if len(b) != 8 {
		return errors.Wrapf(errors.ErrInput, "expected 8 bytes, got %d", len(b))
	}
	c.Count = int64(binary.BigEndian.Uint64(b))
	return nil
}

func (c *counter) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrState, "negative counter")
	}
	return nil
}

func counterBucket() Bucket {
	return NewBucket("cnts", NewSimpleObj(nil, new(counter)))
}

func TestBucketName(t *testing.T) {
	assert.Equal(t, "cnts", counterBucket().Name())

	assert.Panics(t, func() {
		NewBucket("l", NewSimpleObj(nil, new(counter)))
	})
	assert.Panics(t, func() {
		NewBucket("Capitalized", NewSimpleObj(nil, new(counter)))
	})
}

func TestBucketSaveGetDelete(t *testing.T) {
	db := store.MemStore()
	b := counterBucket()

	key := []byte("some")

	// missing is no error, nil object
	obj, err := b.Get(db, key)
	require.NoError(t, err)
	assert.Nil(t, obj)

	err = b.Save(db, NewSimpleObj(key, &counter{Count: 55}))
	require.NoError(t, err)

	obj, err = b.Get(db, key)
	require.NoError(t, err)
	require.NotNil(t, obj)
	assert.Equal(t, key, obj.Key())
	assert.Equal(t, int64(55), obj.Value().(*counter).Count)

	// invalid model is rejected before writing
	err = b.Save(db, NewSimpleObj([]byte("bad"), &counter{Count: -2}))
	assert.True(t, errors.ErrState.Is(err), "got %+v", err)
	obj, err = b.Get(db, []byte("bad"))
	require.NoError(t, err)
	assert.Nil(t, obj)

	require.NoError(t, b.Delete(db, key))
	obj, err = b.Get(db, key)
	require.NoError(t, err)
	assert.Nil(t, obj)

	// deleting a missing key is fine
	require.NoError(t, b.Delete(db, []byte("ghost")))
}

func TestBucketIsolation(t *testing.T) {
	db := store.MemStore()
	one := counterBucket()
	two := NewBucket("other", NewSimpleObj(nil, new(counter)))

	key := []byte("shared")
	require.NoError(t, one.Save(db, NewSimpleObj(key, &counter{Count: 1})))

	// same key in another bucket resolves to different data
	obj, err := two.Get(db, key)
	require.NoError(t, err)
	assert.Nil(t, obj)
}

func TestBucketQuery(t *testing.T) {
	db := store.MemStore()
	b := counterBucket()

	require.NoError(t, b.Save(db, NewSimpleObj([]byte("aa"), &counter{Count: 1})))
	require.NoError(t, b.Save(db, NewSimpleObj([]byte("ab"), &counter{Count: 2})))
	require.NoError(t, b.Save(db, NewSimpleObj([]byte("zz"), &counter{Count: 3})))

	// exact key
	res, err := b.Query(db, mart.KeyQueryMod, []byte("ab"))
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, b.DBKey([]byte("ab")), res[0].Key)

	// miss returns nothing
	res, err = b.Query(db, mart.KeyQueryMod, []byte("nope"))
	require.NoError(t, err)
	assert.Len(t, res, 0)

	// prefix scan
	res, err = b.Query(db, mart.PrefixQueryMod, []byte("a"))
	require.NoError(t, err)
	assert.Len(t, res, 2)

	// empty prefix returns the whole bucket
	res, err = b.Query(db, mart.PrefixQueryMod, nil)
	require.NoError(t, err)
	assert.Len(t, res, 3)

	// unknown mod errors
	_, err = b.Query(db, "fancy", []byte("a"))
	assert.True(t, errors.ErrInput.Is(err), "got %+v", err)
}

func TestDBKeyDoesNotAlias(t *testing.T) {
	b := counterBucket()

	first := b.DBKey([]byte("one"))
	second := b.DBKey([]byte("two"))
	assert.Equal(t, []byte("cnts:one"), first)
	assert.Equal(t, []byte("cnts:two"), second)
}

func TestSimpleObjClone(t *testing.T) {
	obj := NewSimpleObj([]byte("key"), &counter{Count: 5})

	// a clone carries the key but starts from a fresh value,
	// ready to unmarshal into
	clone := obj.Clone()
	assert.Equal(t, []byte("key"), clone.Key())
	assert.Equal(t, int64(0), clone.Value().(*counter).Count)

	clone.Value().(*counter).Count = 9
	assert.Equal(t, int64(5), obj.Value().(*counter).Count)

	// a key can be set later on an empty object
	empty := NewSimpleObj(nil, new(counter))
	assert.Error(t, empty.Validate())
	empty.SetKey([]byte("now"))
	assert.NoError(t, empty.Validate())
}
