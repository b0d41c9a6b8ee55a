package cash

import (
	"github.com/mart-network/mart"
	"github.com/mart-network/mart/coin"
	"github.com/mart-network/mart/errors"
)

// Controller is the functionality needed by other extensions
// that want to move value around. This is implemented
// by BaseController, but you can pass in something else
// for tests or to change the rules.
type Controller interface {
	// MoveCoins removes funds from the source account and adds them
	// to the destination account. This operation is atomic.
	MoveCoins(store mart.KVStore, src mart.Address, dest mart.Address, amount coin.Coin) error

	// Balance returns the amount of funds stored under given
	// account address.
	Balance(store mart.KVStore, addr mart.Address) (coin.Coins, error)
}

// BaseController implements Controller interface.
type BaseController struct {
	bucket Bucket
}

var _ Controller = BaseController{}

// NewController returns a base controller implementation.
func NewController(bucket Bucket) BaseController {
	return BaseController{bucket: bucket}
}

// Balance returns the amount of funds stored under given account
// address.
func (c BaseController) Balance(store mart.KVStore, src mart.Address) (coin.Coins, error) {
	wallet, err := c.bucket.Get(store, src)
	if err != nil {
		return nil, errors.Wrap(err, "cannot get wallet")
	}
	if wallet == nil {
		return nil, errors.Wrap(errors.ErrNotFound, "no wallet")
	}
	return wallet.Coins(), nil
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails.
func (c BaseController) MoveCoins(store mart.KVStore,
	src mart.Address, dest mart.Address, amount coin.Coin) error {

	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive transfer: %#v", &amount)
	}

	sender, err := c.bucket.Get(store, src)
	if err != nil {
		return err
	}
	if sender == nil {
		return errors.Wrapf(errors.ErrEmpty, "empty account %s", src)
	}
	if !sender.Coins().Contains(amount) {
		return errors.Wrap(errors.ErrAmount, "funds")
	}

	recipient, err := c.bucket.GetOrCreate(store, dest)
	if err != nil {
		return err
	}
	err = sender.Subtract(amount)
	if err != nil {
		return err
	}
	err = recipient.Add(amount)
	if err != nil {
		return err
	}

	// save them and return
	err = c.bucket.Save(store, sender)
	if err != nil {
		return err
	}
	return c.bucket.Save(store, recipient)
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
//
// Note the amount may also be negative:
// "the lord giveth and the lord taketh away"
func (c BaseController) IssueCoins(store mart.KVStore,
	dest mart.Address, amount coin.Coin) error {

	recipient, err := c.bucket.GetOrCreate(store, dest)
	if err != nil {
		return err
	}
	err = recipient.Add(amount)
	if err != nil {
		return err
	}

	return c.bucket.Save(store, recipient)
}
