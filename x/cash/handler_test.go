package cash

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mart-network/mart/coin"
	"github.com/mart-network/mart/errors"
	"github.com/mart-network/mart/marttest"
	"github.com/mart-network/mart/store"
)

func TestSendHandler(t *testing.T) {
	kv := store.MemStore()
	auth := &marttest.CtxAuth{Key: "auth"}
	controller := NewController(NewBucket())
	h := NewSendHandler(auth, controller)

	sender := marttest.NewCondition()
	rcpt := marttest.NewAddress()

	err := controller.IssueCoins(kv, sender.Address(), coin.NewCoin(100, 0, "IOV"))
	require.NoError(t, err)

	amount := coin.NewCoin(40, 0, "IOV")
	tx := &marttest.Tx{Msg: &SendMsg{
		Src:    sender.Address(),
		Dest:   rcpt,
		Amount: &amount,
		Memo:   "rent",
	}}

	// no signature, no deal
	_, err = h.Deliver(context.Background(), kv, tx)
	assert.True(t, errors.ErrUnauthorized.Is(err), "got %+v", err)

	ctx := auth.SetConditions(context.Background(), sender)

	res, err := h.Check(ctx, kv, tx)
	require.NoError(t, err)
	assert.Equal(t, sendTxCost, res.GasAllocated)

	_, err = h.Deliver(ctx, kv, tx)
	require.NoError(t, err)

	got, err := controller.Balance(kv, sender.Address())
	require.NoError(t, err)
	assert.True(t, got.Contains(coin.NewCoin(60, 0, "IOV")))
	got, err = controller.Balance(kv, rcpt)
	require.NoError(t, err)
	assert.True(t, got.Contains(amount))
}

func TestSendMsgValidate(t *testing.T) {
	addr := marttest.NewAddress()
	addr2 := marttest.NewAddress()
	amount := coin.NewCoin(5, 0, "IOV")

	cases := map[string]struct {
		msg     *SendMsg
		wantErr bool
	}{
		"valid": {
			msg: &SendMsg{Src: addr, Dest: addr2, Amount: &amount},
		},
		"missing amount": {
			msg:     &SendMsg{Src: addr, Dest: addr2},
			wantErr: true,
		},
		"bad source": {
			msg:     &SendMsg{Src: []byte{1, 2}, Dest: addr2, Amount: &amount},
			wantErr: true,
		},
		"memo too long": {
			msg: &SendMsg{
				Src: addr, Dest: addr2, Amount: &amount,
				Memo: string(make([]byte, maxMemoSize+1)),
			},
			wantErr: true,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
