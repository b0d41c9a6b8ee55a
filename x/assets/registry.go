package assets

import (
	"github.com/mart-network/mart"
	"github.com/mart-network/mart/errors"
)

// Registry is the functionality needed by other extensions
// that want to inspect and move tokens. This is implemented
// by BaseRegistry, but you can pass in something else
// for tests or to change the rules.
type Registry interface {
	// Owner returns the current owner of the token,
	// or ErrNotFound if the token was never issued.
	Owner(db mart.ReadOnlyKVStore, collection mart.Address, assetID []byte) (mart.Address, error)

	// Move transfers the token to dest. The actor must be
	// the current owner or the approved address.
	// Any standing approval is cleared by the transfer.
	Move(db mart.KVStore, actor mart.Address, collection mart.Address, assetID []byte, dest mart.Address) error
}

// BaseRegistry implements Registry around the token bucket.
type BaseRegistry struct {
	bucket Bucket
}

var _ Registry = BaseRegistry{}

// NewRegistry returns a base registry implementation.
func NewRegistry(bucket Bucket) BaseRegistry {
	return BaseRegistry{bucket: bucket}
}

// Owner returns the current owner of the token
func (r BaseRegistry) Owner(db mart.ReadOnlyKVStore, collection mart.Address, assetID []byte) (mart.Address, error) {
	token, err := r.bucket.GetToken(db, collection, assetID)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "token %X in %s", assetID, collection)
	}
	return token.GetOwnerAddress(), nil
}

// Approved returns the address allowed to move the token,
// nil if no approval stands
func (r BaseRegistry) Approved(db mart.ReadOnlyKVStore, collection mart.Address, assetID []byte) (mart.Address, error) {
	token, err := r.bucket.GetToken(db, collection, assetID)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "token %X in %s", assetID, collection)
	}
	return token.GetApprovedAddress(), nil
}

// Move transfers the token to dest, clearing any approval
func (r BaseRegistry) Move(db mart.KVStore, actor mart.Address, collection mart.Address, assetID []byte, dest mart.Address) error {
	token, err := r.bucket.GetToken(db, collection, assetID)
	if err != nil {
		return err
	}
	if token == nil {
		return errors.Wrapf(errors.ErrNotFound, "token %X in %s", assetID, collection)
	}

	owner := token.GetOwnerAddress()
	approved := token.GetApprovedAddress()
	if !actor.Equals(owner) && !actor.Equals(approved) {
		return errors.Wrap(errors.ErrUnauthorized, "neither owner nor approved")
	}

	update := &Token{Owner: dest}
	return r.bucket.SaveToken(db, collection, assetID, update)
}

// Approve sets (or with an empty to address clears) the approval.
// The actor must be the current owner.
func (r BaseRegistry) Approve(db mart.KVStore, actor mart.Address, collection mart.Address, assetID []byte, to mart.Address) error {
	token, err := r.bucket.GetToken(db, collection, assetID)
	if err != nil {
		return err
	}
	if token == nil {
		return errors.Wrapf(errors.ErrNotFound, "token %X in %s", assetID, collection)
	}
	if !actor.Equals(token.GetOwnerAddress()) {
		return errors.Wrap(errors.ErrUnauthorized, "only owner can approve")
	}

	update := &Token{Owner: token.Owner, Approved: to}
	return r.bucket.SaveToken(db, collection, assetID, update)
}

// Issue registers a brand new token owned by owner.
// Fails if the token already exists.
func (r BaseRegistry) Issue(db mart.KVStore, collection mart.Address, assetID []byte, owner mart.Address) error {
	token, err := r.bucket.GetToken(db, collection, assetID)
	if err != nil {
		return err
	}
	if token != nil {
		return errors.Wrapf(errors.ErrDuplicate, "token %X in %s", assetID, collection)
	}
	return r.bucket.SaveToken(db, collection, assetID, &Token{Owner: owner})
}
