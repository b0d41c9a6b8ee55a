package market

import (
	common "github.com/tendermint/tendermint/libs/common"

	"github.com/mart-network/mart"
	"github.com/mart-network/mart/errors"
	"github.com/mart-network/mart/x"
	"github.com/mart-network/mart/x/assets"
	"github.com/mart-network/mart/x/cash"
)

const (
	tagAction  = "action"
	tagListing = "listing"
	tagSeller  = "seller"
	tagBidder  = "bidder"
	tagBuyer   = "buyer"
	tagMinBid  = "min_bid"
	tagPrice   = "price"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r mart.Registry, auth x.Authenticator,
	control cash.Controller, registry assets.Registry) {

	bucket := NewBucket()

	r.Handle(&ListMsg{}, ListHandler{auth: auth, bucket: bucket, registry: registry})
	r.Handle(&BidMsg{}, BidHandler{auth: auth, bucket: bucket, control: control})
	r.Handle(&AcceptBidMsg{}, AcceptBidHandler{auth: auth, bucket: bucket,
		control: control, registry: registry})
}

// RegisterQuery will register this bucket as "/listings"
func RegisterQuery(qr mart.QueryRouter) {
	NewBucket().Register("listings", qr)
}

// ListHandler puts an asset up for sale
type ListHandler struct {
	auth     x.Authenticator
	bucket   Bucket
	registry assets.Registry
}

var _ mart.Handler = ListHandler{}

// Check verifies the lister owns the asset and charges the list cost
func (h ListHandler) Check(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.CheckResult, error) {
	if _, _, err := h.validate(ctx, store, tx); err != nil {
		return nil, err
	}

	res := mart.CheckResult{
		GasAllocated: listCost,
	}
	return &res, nil
}

// Deliver stores the listing
func (h ListHandler) Deliver(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.DeliverResult, error) {
	msg, owner, err := h.validate(ctx, store, tx)
	if err != nil {
		return nil, err
	}

	// Relisting replaces the previous listing wholesale.
	// TODO: refund the standing bid of a replaced listing from
	// its escrow instead of stranding it there.
	listing := &Listing{
		Seller:     owner,
		Collection: msg.Collection,
		AssetId:    msg.AssetId,
		MinBid:     msg.MinBid,
	}
	if err := h.bucket.SaveListing(store, listing); err != nil {
		return nil, err
	}

	res := mart.DeliverResult{
		Tags: []common.KVPair{
			{Key: []byte(tagAction), Value: []byte("market/list")},
			{Key: []byte(tagListing), Value: ListingKey(msg.Collection, msg.AssetId)},
			{Key: []byte(tagSeller), Value: owner},
			{Key: []byte(tagMinBid), Value: []byte(msg.MinBid.String())},
		},
	}
	return &res, nil
}

// validate loads the message and ensures the signer owns the asset
// and set a sensible minimum bid
func (h ListHandler) validate(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*ListMsg, mart.Address, error) {
	var msg ListMsg
	if err := mart.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	owner, err := h.registry.Owner(store, msg.Collection, msg.AssetId)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, owner) {
		return nil, nil, errors.Wrap(ErrInvalidOwner, "owner signature missing")
	}
	if msg.MinBid == nil || !msg.MinBid.IsPositive() {
		return nil, nil, errors.Wrap(ErrInvalidMinBid, "must be positive")
	}
	return &msg, owner, nil
}

// BidHandler escrows a payment as the new standing bid
type BidHandler struct {
	auth    x.Authenticator
	bucket  Bucket
	control cash.Controller
}

var _ mart.Handler = BidHandler{}

// Check verifies the bid against the listing and charges the bid cost
func (h BidHandler) Check(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.CheckResult, error) {
	if _, _, err := h.validate(ctx, store, tx); err != nil {
		return nil, err
	}

	res := mart.CheckResult{
		GasAllocated: bidCost,
	}
	return &res, nil
}

// Deliver moves the payment into the listing escrow, refunds the
// previous bidder and records the new standing bid
func (h BidHandler) Deliver(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.DeliverResult, error) {
	msg, listing, err := h.validate(ctx, store, tx)
	if err != nil {
		return nil, err
	}

	bidder := x.MainSigner(ctx, h.auth).Address()
	escrow := ListingAccount(msg.Collection, msg.AssetId)

	if err := h.control.MoveCoins(store, bidder, escrow, *msg.Payment); err != nil {
		return nil, errors.Wrap(err, "escrow payment")
	}
	if prev := listing.GetBidderAddress(); prev != nil {
		if err := h.control.MoveCoins(store, escrow, prev, *listing.Bid); err != nil {
			return nil, errors.Wrap(err, "refund previous bidder")
		}
	}

	listing.Bidder = bidder
	listing.Bid = msg.Price
	if err := h.bucket.SaveListing(store, listing); err != nil {
		return nil, err
	}

	res := mart.DeliverResult{
		Tags: []common.KVPair{
			{Key: []byte(tagAction), Value: []byte("market/bid")},
			{Key: []byte(tagListing), Value: ListingKey(msg.Collection, msg.AssetId)},
			{Key: []byte(tagBidder), Value: bidder},
			{Key: []byte(tagPrice), Value: []byte(msg.Price.String())},
		},
	}
	return &res, nil
}

// validate loads the message and the listing it applies to, and
// judges the offered price and payment against both
func (h BidHandler) validate(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*BidMsg, *Listing, error) {
	var msg BidMsg
	if err := mart.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	listing, err := h.bucket.GetListing(store, msg.Collection, msg.AssetId)
	if err != nil {
		return nil, nil, err
	}
	if listing == nil {
		return nil, nil, errors.Wrap(ErrNotExist, "listing")
	}

	if signer := x.MainSigner(ctx, h.auth); signer == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "bidder signature missing")
	}

	if !msg.Price.SameType(*listing.MinBid) {
		return nil, nil, errors.Wrapf(ErrInvalidPrice, "expected %s", listing.MinBid.Ticker)
	}
	if msg.Price.Compare(*listing.MinBid) < 0 {
		return nil, nil, errors.Wrap(ErrInvalidPrice, "below minimum bid")
	}
	if listing.Bid != nil && msg.Price.Compare(*listing.Bid) < 0 {
		return nil, nil, errors.Wrap(ErrInvalidPrice, "below standing bid")
	}
	if !msg.Payment.Equals(*msg.Price) {
		return nil, nil, errors.Wrap(ErrInvalidValue, "payment must match price")
	}
	return &msg, listing, nil
}

// AcceptBidHandler settles a sale at the standing bid
type AcceptBidHandler struct {
	auth     x.Authenticator
	bucket   Bucket
	control  cash.Controller
	registry assets.Registry
}

var _ mart.Handler = AcceptBidHandler{}

// Check verifies the seller may settle and charges the accept cost
func (h AcceptBidHandler) Check(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.CheckResult, error) {
	if _, _, err := h.validate(ctx, store, tx); err != nil {
		return nil, err
	}

	res := mart.CheckResult{
		GasAllocated: acceptBidCost,
	}
	return &res, nil
}

// Deliver moves the asset to the bidder, releases the escrowed bid
// to the seller and removes the listing
func (h AcceptBidHandler) Deliver(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.DeliverResult, error) {
	msg, listing, err := h.validate(ctx, store, tx)
	if err != nil {
		return nil, err
	}

	bidder := listing.GetBidderAddress()
	escrow := ListingAccount(msg.Collection, msg.AssetId)

	if err := h.registry.Move(store, escrow, msg.Collection, msg.AssetId, bidder); err != nil {
		return nil, errors.Wrap(err, "move asset")
	}
	if err := h.control.MoveCoins(store, escrow, listing.GetSellerAddress(), *listing.Bid); err != nil {
		return nil, errors.Wrap(err, "release escrow")
	}

	if err := h.bucket.DeleteListing(store, msg.Collection, msg.AssetId); err != nil {
		return nil, err
	}

	res := mart.DeliverResult{
		Tags: []common.KVPair{
			{Key: []byte(tagAction), Value: []byte("market/accept_bid")},
			{Key: []byte(tagListing), Value: ListingKey(msg.Collection, msg.AssetId)},
			{Key: []byte(tagSeller), Value: listing.Seller},
			{Key: []byte(tagBuyer), Value: bidder},
			{Key: []byte(tagPrice), Value: []byte(listing.Bid.String())},
		},
	}
	return &res, nil
}

// validate loads the message and the listing, and ensures a bid
// stands and the seller signed
func (h AcceptBidHandler) validate(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*AcceptBidMsg, *Listing, error) {
	var msg AcceptBidMsg
	if err := mart.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	listing, err := h.bucket.GetListing(store, msg.Collection, msg.AssetId)
	if err != nil {
		return nil, nil, err
	}
	if listing == nil {
		return nil, nil, errors.Wrap(ErrNotExist, "listing")
	}
	if len(listing.Bidder) == 0 {
		return nil, nil, errors.Wrap(ErrNotExist, "no standing bid")
	}
	if !h.auth.HasAddress(ctx, listing.GetSellerAddress()) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "seller signature missing")
	}
	return &msg, listing, nil
}
