package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mart-network/mart"
	"github.com/mart-network/mart/errors"
	"github.com/mart-network/mart/marttest"
	"github.com/mart-network/mart/store"
)

// writeHandler writes a key on every call and then fails as told
type writeHandler struct {
	key    []byte
	value  []byte
	err    error
	panics bool
}

var _ mart.Handler = writeHandler{}

func (h writeHandler) Check(ctx mart.Context, db mart.KVStore, tx mart.Tx) (*mart.CheckResult, error) {
	db.Set(h.key, h.value)
	if h.panics {
		panic("check exploded")
	}
	return &mart.CheckResult{}, h.err
}

func (h writeHandler) Deliver(ctx mart.Context, db mart.KVStore, tx mart.Tx) (*mart.DeliverResult, error) {
	db.Set(h.key, h.value)
	if h.panics {
		panic("deliver exploded")
	}
	if h.err != nil {
		return nil, h.err
	}
	return &mart.DeliverResult{}, nil
}

func TestApplyTxCommitsOnSuccess(t *testing.T) {
	db := store.MemStore()
	h := writeHandler{key: []byte("hello"), value: []byte("world")}
	tx := &marttest.Tx{Msg: &marttest.Msg{RoutePath: "test/good"}}

	_, err := ApplyTx(context.Background(), db, h, tx)
	require.NoError(t, err)
	assert.Equal(t, []byte("world"), db.Get([]byte("hello")))
}

func TestApplyTxRollsBackOnError(t *testing.T) {
	db := store.MemStore()
	fail := errors.Wrap(errors.ErrState, "no luck")
	h := writeHandler{key: []byte("hello"), value: []byte("world"), err: fail}
	tx := &marttest.Tx{Msg: &marttest.Msg{RoutePath: "test/good"}}

	_, err := ApplyTx(context.Background(), db, h, tx)
	assert.True(t, errors.ErrState.Is(err), "got %+v", err)
	assert.Nil(t, db.Get([]byte("hello")))
}

func TestApplyTxRecoversPanic(t *testing.T) {
	db := store.MemStore()
	h := writeHandler{key: []byte("hello"), value: []byte("world"), panics: true}
	tx := &marttest.Tx{Msg: &marttest.Msg{RoutePath: "test/good"}}

	_, err := ApplyTx(context.Background(), db, h, tx)
	assert.True(t, errors.ErrPanic.Is(err), "got %+v", err)
	assert.Nil(t, db.Get([]byte("hello")))
}

func TestCheckTxNeverWrites(t *testing.T) {
	db := store.MemStore()
	h := writeHandler{key: []byte("hello"), value: []byte("world")}
	tx := &marttest.Tx{Msg: &marttest.Msg{RoutePath: "test/good"}}

	_, err := CheckTx(context.Background(), db, h, tx)
	require.NoError(t, err)
	assert.Nil(t, db.Get([]byte("hello")))
}
