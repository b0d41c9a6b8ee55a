package mart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mart-network/mart"
	"github.com/mart-network/mart/errors"
	"github.com/mart-network/mart/marttest"
)

// routedMsg gives the mock message a distinct type for routing tests.
type routedMsg struct {
	marttest.Msg
}

func TestLoadMsg(t *testing.T) {
	msg := &marttest.Msg{RoutePath: "test/good", Serialized: []byte("payload")}
	tx := &marttest.Tx{Msg: msg}

	var dest marttest.Msg
	require.NoError(t, mart.LoadMsg(tx, &dest))
	assert.Equal(t, "test/good", dest.RoutePath)
	assert.Equal(t, []byte("payload"), dest.Serialized)
}

func TestLoadMsgBrokenTx(t *testing.T) {
	tx := &marttest.Tx{
		Msg: &marttest.Msg{RoutePath: "test/good"},
		Err: errors.Wrap(errors.ErrInput, "garbage"),
	}

	var dest marttest.Msg
	err := mart.LoadMsg(tx, &dest)
	assert.True(t, errors.ErrInput.Is(err), "got %+v", err)
}

func TestLoadMsgInvalidMessage(t *testing.T) {
	tx := &marttest.Tx{
		Msg: &marttest.Msg{
			RoutePath: "test/good",
			Err:       errors.Wrap(errors.ErrEmpty, "no content"),
		},
	}

	var dest marttest.Msg
	err := mart.LoadMsg(tx, &dest)
	assert.True(t, errors.ErrEmpty.Is(err), "got %+v", err)
}

func TestLoadMsgWrongType(t *testing.T) {
	tx := &marttest.Tx{Msg: &marttest.Msg{RoutePath: "test/good"}}

	var dest routedMsg
	err := mart.LoadMsg(tx, &dest)
	assert.True(t, errors.ErrType.Is(err), "got %+v", err)
}

func TestGetPath(t *testing.T) {
	tx := &marttest.Tx{Msg: &marttest.Msg{RoutePath: "test/good"}}
	assert.Equal(t, "test/good", mart.GetPath(tx))

	broken := &marttest.Tx{Err: errors.Wrap(errors.ErrInput, "garbage")}
	assert.Equal(t, "(missing)", mart.GetPath(broken))
}
