package market

import (
	"github.com/mart-network/mart"
	"github.com/mart-network/mart/errors"
)

// Ensure we implement the Msg interface
var _ mart.Msg = (*ListMsg)(nil)
var _ mart.Msg = (*BidMsg)(nil)
var _ mart.Msg = (*AcceptBidMsg)(nil)

const (
	listCost      int64 = 150
	bidCost       int64 = 150
	acceptBidCost int64 = 200

	// maxAssetIDSize is the longest asset id we accept
	maxAssetIDSize = 32
)

// Path returns the routing path for this message
func (ListMsg) Path() string {
	return "market/list"
}

// Validate makes sure that this is sensible.
// The minimum bid amount is checked by the handler, after
// the ownership of the asset was established.
func (m *ListMsg) Validate() error {
	var err error
	if cerr := mart.Address(m.Collection).Validate(); cerr != nil {
		err = errors.Append(err, errors.Wrap(ErrInvalidCollection, cerr.Error()))
	}
	err = errors.Append(err, validateAssetID(m.AssetId))
	if m.MinBid != nil {
		err = errors.Append(err, errors.Wrap(m.MinBid.Validate(), "min bid"))
	}
	return err
}

// Path returns the routing path for this message
func (BidMsg) Path() string {
	return "market/bid"
}

// Validate makes sure that this is sensible.
// Price and payment amounts are judged by the handler against
// the listing they apply to.
func (m *BidMsg) Validate() error {
	var err error
	if cerr := mart.Address(m.Collection).Validate(); cerr != nil {
		err = errors.Append(err, errors.Wrap(ErrInvalidCollection, cerr.Error()))
	}
	err = errors.Append(err, validateAssetID(m.AssetId))
	if m.Price == nil {
		err = errors.Append(err, errors.Wrap(errors.ErrEmpty, "price"))
	} else {
		err = errors.Append(err, errors.Wrap(m.Price.Validate(), "price"))
	}
	if m.Payment == nil {
		err = errors.Append(err, errors.Wrap(errors.ErrEmpty, "payment"))
	} else {
		err = errors.Append(err, errors.Wrap(m.Payment.Validate(), "payment"))
	}
	return err
}

// Path returns the routing path for this message
func (AcceptBidMsg) Path() string {
	return "market/accept_bid"
}

// Validate makes sure that this is sensible
func (m *AcceptBidMsg) Validate() error {
	var err error
	if cerr := mart.Address(m.Collection).Validate(); cerr != nil {
		err = errors.Append(err, errors.Wrap(ErrInvalidCollection, cerr.Error()))
	}
	err = errors.Append(err, validateAssetID(m.AssetId))
	return err
}

func validateAssetID(id []byte) error {
	if len(id) == 0 {
		return errors.Wrap(errors.ErrEmpty, "asset id")
	}
	if len(id) > maxAssetIDSize {
		return errors.Wrapf(errors.ErrInput, "asset id longer than %d bytes", maxAssetIDSize)
	}
	return nil
}
