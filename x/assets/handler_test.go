package assets

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

func TestIssueApproveTransferFlow(t *testing.T) {
	kv := store.MemStore()
	auth := &marttest.CtxAuth{Key: "auth"}
	registry := NewRegistry(NewBucket())

	owner := marttest.NewCondition()
	broker := marttest.NewCondition()
	buyer := marttest.NewCondition()
	collection := marttest.NewAddress()
	assetID := []byte("nft-7")

	ctx := func(signer mart.Condition) mart.Context {
		return auth.SetConditions(context.Background(), signer)
	}

	// mint
	issue := IssueHandler{auth: auth, registry: registry}
	tx := &marttest.Tx{Msg: &IssueTokenMsg{
		Collection: collection,
		AssetId:    assetID,
		Owner:      owner.Address(),
	}}
	_, err := issue.Deliver(ctx(owner), kv, tx)
	require.NoError(t, err)

	got, err := registry.Owner(kv, collection, assetID)
	require.NoError(t, err)
	assert.Equal(t, owner.Address(), got)

	// minting the same token again is rejected
	_, err = issue.Deliver(ctx(owner), kv, tx)
	assert.True(t, errors.ErrDuplicate.Is(err), "got %+v", err)

	// a stranger cannot move the token
	transfer := TransferHandler{auth: auth, registry: registry}
	moveTx := &marttest.Tx{Msg: &TransferTokenMsg{
		Collection: collection,
		AssetId:    assetID,
		Dest:       buyer.Address(),
	}}
	_, err = transfer.Deliver(ctx(broker), kv, moveTx)
	assert.True(t, errors.ErrUnauthorized.Is(err), "got %+v", err)

	// the owner approves the broker
	approve := ApproveHandler{auth: auth, registry: registry}
	approveTx := &marttest.Tx{Msg: &ApproveMsg{
		Collection: collection,
		AssetId:    assetID,
		To:         broker.Address(),
	}}
	// only the owner can approve
	_, err = approve.Deliver(ctx(broker), kv, approveTx)
	assert.True(t, errors.ErrUnauthorized.Is(err), "got %+v", err)
	_, err = approve.Deliver(ctx(owner), kv, approveTx)
	require.NoError(t, err)

	// now the broker moves the token to the buyer
	_, err = transfer.Deliver(ctx(broker), kv, moveTx)
	require.NoError(t, err)
	got, err = registry.Owner(kv, collection, assetID)
	require.NoError(t, err)
	assert.Equal(t, buyer.Address(), got)

	// the transfer cleared the approval
	approved, err := registry.Approved(kv, collection, assetID)
	require.NoError(t, err)
	assert.Nil(t, approved)

	// so the broker cannot move it again
	moveBack := &marttest.Tx{Msg: &TransferTokenMsg{
		Collection: collection,
		AssetId:    assetID,
		Dest:       owner.Address(),
	}}
	_, err = transfer.Deliver(ctx(broker), kv, moveBack)
	assert.True(t, errors.ErrUnauthorized.Is(err), "got %+v", err)

	// but the new owner can
	_, err = transfer.Deliver(ctx(buyer), kv, moveBack)
	require.NoError(t, err)
}

func TestIssueRequiresOwnerSignature(t *testing.T) {
	kv := store.MemStore()
	auth := &marttest.CtxAuth{Key: "auth"}
	registry := NewRegistry(NewBucket())

	owner := marttest.NewCondition()
	stranger := marttest.NewCondition()

	issue := IssueHandler{auth: auth, registry: registry}
	tx := &marttest.Tx{Msg: &IssueTokenMsg{
		Collection: marttest.NewAddress(),
		AssetId:    []byte("nft-1"),
		Owner:      owner.Address(),
	}}

	ctx := auth.SetConditions(context.Background(), stranger)
	_, err := issue.Deliver(ctx, kv, tx)
	assert.True(t, errors.ErrUnauthorized.Is(err), "got %+v", err)
}

func TestTransferUnknownToken(t *testing.T) {
	kv := store.MemStore()
	auth := &marttest.CtxAuth{Key: "auth"}
	registry := NewRegistry(NewBucket())
	signer := marttest.NewCondition()

	transfer := TransferHandler{auth: auth, registry: registry}
	tx := &marttest.Tx{Msg: &TransferTokenMsg{
		Collection: marttest.NewAddress(),
		AssetId:    []byte("ghost"),
		Dest:       marttest.NewAddress(),
	}}
	ctx := auth.SetConditions(context.Background(), signer)
	_, err := transfer.Deliver(ctx, kv, tx)
	assert.True(t, errors.ErrNotFound.Is(err), "got %+v", err)
}
