package cash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mart-network/mart/coin"
	"github.com/mart-network/mart/errors"
	"github.com/mart-network/mart/marttest"
	"github.com/mart-network/mart/store"
)

func TestIssueCoins(t *testing.T) {
	kv := store.MemStore()
	addr := marttest.NewAddress()
	addr2 := marttest.NewAddress()

	controller := NewController(NewBucket())

	plus := coin.NewCoin(500, 1000, "FOO")
	minus := coin.NewCoin(-400, -600, "FOO")
	total := coin.NewCoin(100, 400, "FOO")
	other := coin.NewCoin(1, 0, "DING")

	// issue positive
	err := controller.IssueCoins(kv, addr, plus)
	require.NoError(t, err)
	w, err := controller.Balance(kv, addr)
	require.NoError(t, err)
	assert.True(t, w.Contains(plus))
	assert.False(t, w.Contains(other))

	// issue negative, to deduct
	err = controller.IssueCoins(kv, addr, minus)
	require.NoError(t, err)
	w, err = controller.Balance(kv, addr)
	require.NoError(t, err)
	assert.False(t, w.Contains(plus))
	assert.True(t, w.Contains(total))

	// other wallet is untouched
	_, err = controller.Balance(kv, addr2)
	assert.True(t, errors.ErrNotFound.Is(err), "got %+v", err)

	// issue to other wallet
	err = controller.IssueCoins(kv, addr2, other)
	require.NoError(t, err)
	w2, err := controller.Balance(kv, addr2)
	require.NoError(t, err)
	assert.True(t, w2.Contains(other))
	assert.False(t, w2.Contains(total))

	// draining to zero is fine
	err = controller.IssueCoins(kv, addr2, other.Negative())
	require.NoError(t, err)
	w2, err = controller.Balance(kv, addr2)
	require.NoError(t, err)
	assert.True(t, w2.IsEmpty())

	// overflow is rejected
	err = controller.IssueCoins(kv, addr, coin.NewCoin(coin.MaxInt, 0, "FOO"))
	assert.Error(t, err)
	w, err = controller.Balance(kv, addr)
	require.NoError(t, err)
	assert.True(t, w.Contains(total))
}

func TestMoveCoins(t *testing.T) {
	kv := store.MemStore()
	addr := marttest.NewAddress()
	addr2 := marttest.NewAddress()
	addr3 := marttest.NewAddress()

	controller := NewController(NewBucket())

	cc := "MONY"
	bank := coin.NewCoin(50000, 0, cc)
	send := coin.NewCoin(300, 0, cc)

	// cannot send from an empty account
	err := controller.MoveCoins(kv, addr, addr2, send)
	assert.True(t, errors.ErrEmpty.Is(err), "got %+v", err)

	err = controller.IssueCoins(kv, addr, bank)
	require.NoError(t, err)

	// proper move
	err = controller.MoveCoins(kv, addr, addr2, send)
	require.NoError(t, err)
	w, err := controller.Balance(kv, addr)
	require.NoError(t, err)
	assert.True(t, w.Contains(coin.NewCoin(49700, 0, cc)))
	w2, err := controller.Balance(kv, addr2)
	require.NoError(t, err)
	assert.True(t, w2.Contains(send))
	_, err = controller.Balance(kv, addr3)
	assert.True(t, errors.ErrNotFound.Is(err), "got %+v", err)

	// cannot send negative or zero
	err = controller.MoveCoins(kv, addr2, addr3, send.Negative())
	assert.True(t, errors.ErrAmount.Is(err), "got %+v", err)
	err = controller.MoveCoins(kv, addr2, addr3, coin.NewCoin(0, 0, cc))
	assert.True(t, errors.ErrAmount.Is(err), "got %+v", err)

	// cannot send more than you have
	err = controller.MoveCoins(kv, addr2, addr3, coin.NewCoin(301, 0, cc))
	assert.True(t, errors.ErrAmount.Is(err), "got %+v", err)

	// cannot send a currency you do not have
	err = controller.MoveCoins(kv, addr2, addr3, coin.NewCoin(5, 0, "BAD"))
	assert.True(t, errors.ErrAmount.Is(err), "got %+v", err)

	// send all coins
	err = controller.MoveCoins(kv, addr2, addr3, send)
	require.NoError(t, err)
	w2, err = controller.Balance(kv, addr2)
	require.NoError(t, err)
	assert.True(t, w2.IsEmpty())
	w3, err := controller.Balance(kv, addr3)
	require.NoError(t, err)
	assert.True(t, w3.Contains(send))
}
