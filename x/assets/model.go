package assets

import (
	"github.com/mart-network/mart"
	"github.com/mart-network/mart/errors"
	"github.com/mart-network/mart/orm"
)

// BucketName is where we store the tokens
const BucketName = "assets"

const (
	// maxAssetIDSize is the longest asset id we accept
	maxAssetIDSize = 32
)

//---- Token

// Validate ensures the token has a proper owner, and the
// approved address, when set, is well formed
func (t *Token) Validate() error {
	var err error
	err = errors.Append(err, errors.Wrap(mart.Address(t.Owner).Validate(), "owner"))
	if len(t.Approved) != 0 {
		err = errors.Append(err, errors.Wrap(mart.Address(t.Approved).Validate(), "approved"))
	}
	return err
}

// GetOwnerAddress returns the owner as a typed address
func (t *Token) GetOwnerAddress() mart.Address {
	return mart.Address(t.GetOwner())
}

// GetApprovedAddress returns the approved party as a typed address,
// nil when no approval stands
func (t *Token) GetApprovedAddress() mart.Address {
	if len(t.GetApproved()) == 0 {
		return nil
	}
	return mart.Address(t.GetApproved())
}

// TokenKey joins collection and asset id into the primary bucket key.
// Collections are addresses and have a fixed length, so the
// concatenation is unambiguous.
func TokenKey(collection mart.Address, assetID []byte) []byte {
	key := make([]byte, 0, len(collection)+len(assetID))
	key = append(key, collection...)
	return append(key, assetID...)
}

// NewTokenObj wraps a token in a bucket-compatible object
func NewTokenObj(key []byte, token *Token) orm.Object {
	return orm.NewSimpleObj(key, token)
}

//--- assets.Bucket - type-safe bucket

// Bucket is a type-safe wrapper around orm.Bucket
type Bucket struct {
	orm.Bucket
}

// NewBucket initializes an assets.Bucket with default name
func NewBucket() Bucket {
	return Bucket{
		Bucket: orm.NewBucket(BucketName, orm.NewSimpleObj(nil, new(Token))),
	}
}

// GetToken loads the token for this (collection, asset id) pair,
// or nil if none is registered
func (b Bucket) GetToken(db mart.ReadOnlyKVStore, collection mart.Address, assetID []byte) (*Token, error) {
	obj, err := b.Get(db, TokenKey(collection, assetID))
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	token, ok := obj.Value().(*Token)
	if !ok {
		return nil, errors.Wrapf(errors.ErrModel, "invalid object stored at %X", obj.Key())
	}
	return token, nil
}

// SaveToken persists the token under its (collection, asset id) key
func (b Bucket) SaveToken(db mart.KVStore, collection mart.Address, assetID []byte, token *Token) error {
	obj := NewTokenObj(TokenKey(collection, assetID), token)
	return b.Save(db, obj)
}
