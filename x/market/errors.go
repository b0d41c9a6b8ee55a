package market

import (
	"github.com/mart-network/mart/errors"
)

var (
	// ErrInvalidCollection is returned when the collection address
	// is malformed or empty.
	ErrInvalidCollection = errors.Register(1100, "invalid collection")

	// ErrInvalidOwner is returned when the lister does not own
	// the asset.
	ErrInvalidOwner = errors.Register(1101, "invalid owner")

	// ErrInvalidMinBid is returned when the minimum bid is not
	// a positive amount.
	ErrInvalidMinBid = errors.Register(1102, "invalid minimum bid")

	// ErrInvalidPrice is returned when a bid price is below the
	// minimum bid or below the standing bid.
	ErrInvalidPrice = errors.Register(1103, "invalid price")

	// ErrInvalidValue is returned when the payment does not match
	// the declared bid price.
	ErrInvalidValue = errors.Register(1104, "invalid value")

	// ErrNotExist is returned when the listing, or the standing bid
	// required by the operation, does not exist.
	ErrNotExist = errors.Register(1105, "does not exist")
)
