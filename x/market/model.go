package market

import (
	"github.com/mart-network/mart"
	"github.com/mart-network/mart/errors"
	"github.com/mart-network/mart/orm"
)

// BucketName is where we store the listings
const BucketName = "listing"

//---- Listing

// Validate ensures the listing is well formed. A listing without
// a bidder must not carry a bid amount and vice versa.
func (l *Listing) Validate() error {
	var err error
	err = errors.Append(err, errors.Wrap(mart.Address(l.Seller).Validate(), "seller"))
	err = errors.Append(err, errors.Wrap(mart.Address(l.Collection).Validate(), "collection"))
	if len(l.AssetId) == 0 {
		err = errors.Append(err, errors.Wrap(errors.ErrEmpty, "asset id"))
	}
	if l.MinBid == nil || !l.MinBid.IsPositive() {
		err = errors.Append(err, errors.Wrap(errors.ErrAmount, "min bid must be positive"))
	}
	if len(l.Bidder) != 0 {
		err = errors.Append(err, errors.Wrap(mart.Address(l.Bidder).Validate(), "bidder"))
		if l.Bid == nil || !l.Bid.IsPositive() {
			err = errors.Append(err, errors.Wrap(errors.ErrAmount, "bid must be positive"))
		}
	} else if l.Bid != nil {
		err = errors.Append(err, errors.Wrap(errors.ErrState, "bid without bidder"))
	}
	return err
}

// GetSellerAddress returns the seller as a typed address
func (l *Listing) GetSellerAddress() mart.Address {
	return mart.Address(l.GetSeller())
}

// GetBidderAddress returns the standing bidder as a typed address,
// nil when no bid stands
func (l *Listing) GetBidderAddress() mart.Address {
	if len(l.GetBidder()) == 0 {
		return nil
	}
	return mart.Address(l.GetBidder())
}

// ListingKey joins collection and asset id into the primary bucket
// key. Collections are addresses and have a fixed length, so the
// concatenation is unambiguous.
func ListingKey(collection mart.Address, assetID []byte) []byte {
	key := make([]byte, 0, len(collection)+len(assetID))
	key = append(key, collection...)
	return append(key, assetID...)
}

// ListingCondition is the per listing escrow condition. Funds of the
// standing bid are held under its address until the bid is either
// outbid and refunded, or accepted and released to the seller. The
// seller also approves this address on the token, which lets the
// market move the asset when the sale settles.
func ListingCondition(collection mart.Address, assetID []byte) mart.Condition {
	return mart.NewCondition("market", "escrow", ListingKey(collection, assetID))
}

// ListingAccount is the address of the per listing escrow account
func ListingAccount(collection mart.Address, assetID []byte) mart.Address {
	return ListingCondition(collection, assetID).Address()
}

// NewListingObj wraps a listing in a bucket-compatible object
func NewListingObj(key []byte, listing *Listing) orm.Object {
	return orm.NewSimpleObj(key, listing)
}

//--- market.Bucket - type-safe bucket

// Bucket is a type-safe wrapper around orm.Bucket
type Bucket struct {
	orm.Bucket
}

// NewBucket initializes a market.Bucket with default name
func NewBucket() Bucket {
	return Bucket{
		Bucket: orm.NewBucket(BucketName, orm.NewSimpleObj(nil, new(Listing))),
	}
}

// GetListing loads the listing for this (collection, asset id) pair,
// or nil if none exists
func (b Bucket) GetListing(db mart.ReadOnlyKVStore, collection mart.Address, assetID []byte) (*Listing, error) {
	obj, err := b.Get(db, ListingKey(collection, assetID))
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	listing, ok := obj.Value().(*Listing)
	if !ok {
		return nil, errors.Wrapf(errors.ErrModel, "invalid object stored at %X", obj.Key())
	}
	return listing, nil
}

// SaveListing persists the listing under its (collection, asset id) key
func (b Bucket) SaveListing(db mart.KVStore, listing *Listing) error {
	key := ListingKey(listing.Collection, listing.AssetId)
	return b.Save(db, NewListingObj(key, listing))
}

// DeleteListing removes the listing, a no-op when none exists
func (b Bucket) DeleteListing(db mart.KVStore, collection mart.Address, assetID []byte) error {
	return b.Delete(db, ListingKey(collection, assetID))
}
