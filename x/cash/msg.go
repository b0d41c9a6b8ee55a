package cash

import (
	"github.com/mart-network/mart"
	"github.com/mart-network/mart/coin"
	"github.com/mart-network/mart/errors"
)

// Ensure we implement the Msg interface
var _ mart.Msg = (*SendMsg)(nil)

const (
	sendTxCost int64 = 100

	maxMemoSize int = 128
)

// Path returns the routing path for this message
func (SendMsg) Path() string {
	return "cash/send"
}

// Validate makes sure that this is sensible
func (s *SendMsg) Validate() error {
	var err error
	if coin.IsEmpty(s.Amount) || !s.Amount.IsPositive() {
		err = errors.Wrapf(errors.ErrAmount, "non-positive SendMsg: %#v", s.Amount)
	} else {
		err = errors.Append(err, errors.Wrap(s.Amount.Validate(), "amount"))
	}
	err = errors.Append(err, errors.Wrap(mart.Address(s.Src).Validate(), "src"))
	err = errors.Append(err, errors.Wrap(mart.Address(s.Dest).Validate(), "dest"))
	if len(s.Memo) > maxMemoSize {
		err = errors.Append(err, errors.Wrap(errors.ErrState, "memo too long"))
	}

	return err
}
