package assets

import (
	"github.com/mart-network/mart"
	"github.com/mart-network/mart/errors"
	"github.com/mart-network/mart/x"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r mart.Registry, auth x.Authenticator) {
	registry := NewRegistry(NewBucket())

	r.Handle(&IssueTokenMsg{}, IssueHandler{auth: auth, registry: registry})
	r.Handle(&ApproveMsg{}, ApproveHandler{auth: auth, registry: registry})
	r.Handle(&TransferTokenMsg{}, TransferHandler{auth: auth, registry: registry})
}

// RegisterQuery will register this bucket as "/tokens"
func RegisterQuery(qr mart.QueryRouter) {
	NewBucket().Register("tokens", qr)
}

// IssueHandler mints new tokens
type IssueHandler struct {
	auth     x.Authenticator
	registry BaseRegistry
}

var _ mart.Handler = IssueHandler{}

// Check verifies the message and charges the issue cost
func (h IssueHandler) Check(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.CheckResult, error) {
	var msg IssueTokenMsg
	if err := mart.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "owner signature missing")
	}

	res := mart.CheckResult{
		GasAllocated: issueTokenCost,
	}
	return &res, nil
}

// Deliver mints the token if it does not exist yet
func (h IssueHandler) Deliver(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.DeliverResult, error) {
	var msg IssueTokenMsg
	if err := mart.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "owner signature missing")
	}

	if err := h.registry.Issue(store, msg.Collection, msg.AssetId, msg.Owner); err != nil {
		return nil, err
	}
	return &mart.DeliverResult{}, nil
}

// ApproveHandler grants or clears a transfer approval
type ApproveHandler struct {
	auth     x.Authenticator
	registry BaseRegistry
}

var _ mart.Handler = ApproveHandler{}

// Check verifies the message against the current owner
func (h ApproveHandler) Check(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.CheckResult, error) {
	var msg ApproveMsg
	if err := mart.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := h.owner(ctx, store, &msg); err != nil {
		return nil, err
	}

	res := mart.CheckResult{
		GasAllocated: approveTokenCost,
	}
	return &res, nil
}

// Deliver stores the approval
func (h ApproveHandler) Deliver(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.DeliverResult, error) {
	var msg ApproveMsg
	if err := mart.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	owner, err := h.owner(ctx, store, &msg)
	if err != nil {
		return nil, err
	}

	if err := h.registry.Approve(store, owner, msg.Collection, msg.AssetId, msg.To); err != nil {
		return nil, err
	}
	return &mart.DeliverResult{}, nil
}

// owner loads the token owner and ensures it signed the transaction
func (h ApproveHandler) owner(ctx mart.Context, store mart.KVStore, msg *ApproveMsg) (mart.Address, error) {
	owner, err := h.registry.Owner(store, msg.Collection, msg.AssetId)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "owner signature missing")
	}
	return owner, nil
}

// TransferHandler moves a token between owners
type TransferHandler struct {
	auth     x.Authenticator
	registry BaseRegistry
}

var _ mart.Handler = TransferHandler{}

// Check verifies the signer may move the token
func (h TransferHandler) Check(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.CheckResult, error) {
	var msg TransferTokenMsg
	if err := mart.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := h.actor(ctx, store, &msg); err != nil {
		return nil, err
	}

	res := mart.CheckResult{
		GasAllocated: transferTokenCost,
	}
	return &res, nil
}

// Deliver moves the token if the signer is owner or approved
func (h TransferHandler) Deliver(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.DeliverResult, error) {
	var msg TransferTokenMsg
	if err := mart.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	actor, err := h.actor(ctx, store, &msg)
	if err != nil {
		return nil, err
	}

	if err := h.registry.Move(store, actor, msg.Collection, msg.AssetId, msg.Dest); err != nil {
		return nil, err
	}
	return &mart.DeliverResult{}, nil
}

// actor picks the signing address that is allowed to move the token
func (h TransferHandler) actor(ctx mart.Context, store mart.KVStore, msg *TransferTokenMsg) (mart.Address, error) {
	owner, err := h.registry.Owner(store, msg.Collection, msg.AssetId)
	if err != nil {
		return nil, err
	}
	if h.auth.HasAddress(ctx, owner) {
		return owner, nil
	}
	approved, err := h.registry.Approved(store, msg.Collection, msg.AssetId)
	if err != nil {
		return nil, err
	}
	if len(approved) != 0 && h.auth.HasAddress(ctx, approved) {
		return approved, nil
	}
	return nil, errors.Wrap(errors.ErrUnauthorized, "neither owner nor approved signature")
}
