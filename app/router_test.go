package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mart-network/mart/errors"
	"github.com/mart-network/mart/marttest"
	"github.com/mart-network/mart/store"
)

func TestRouterDispatch(t *testing.T) {
	r := NewRouter()
	h := &marttest.Handler{}
	r.Handle(&marttest.Msg{RoutePath: "test/good"}, h)

	assert.NotNil(t, r.Handler("test/good"))
	assert.Nil(t, r.Handler("test/missing"))

	kv := store.MemStore()
	ctx := context.Background()

	tx := &marttest.Tx{Msg: &marttest.Msg{RoutePath: "test/good"}}
	_, err := r.Check(ctx, kv, tx)
	require.NoError(t, err)
	_, err = r.Deliver(ctx, kv, tx)
	require.NoError(t, err)
	assert.Equal(t, 1, h.CheckCallCount())
	assert.Equal(t, 1, h.DeliverCallCount())

	// unknown path is an error, not a panic
	bad := &marttest.Tx{Msg: &marttest.Msg{RoutePath: "test/missing"}}
	_, err = r.Deliver(ctx, kv, bad)
	assert.True(t, errors.ErrNotFound.Is(err), "got %+v", err)
	assert.Equal(t, 2, h.CallCount())
}

func TestRouterRejectsBadRegistrations(t *testing.T) {
	r := NewRouter()
	h := &marttest.Handler{}

	assert.Panics(t, func() {
		r.Handle(&marttest.Msg{RoutePath: "no-path"}, h)
	})
	assert.Panics(t, func() {
		r.Handle(&marttest.Msg{RoutePath: "Bad/Path"}, h)
	})

	r.Handle(&marttest.Msg{RoutePath: "test/good"}, h)
	assert.Panics(t, func() {
		r.Handle(&marttest.Msg{RoutePath: "test/good"}, h)
	})
}
