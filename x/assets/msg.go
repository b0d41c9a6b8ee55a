package assets

import (
	"github.com/mart-network/mart"
	"github.com/mart-network/mart/errors"
)

// Ensure we implement the Msg interface
var _ mart.Msg = (*IssueTokenMsg)(nil)
var _ mart.Msg = (*ApproveMsg)(nil)
var _ mart.Msg = (*TransferTokenMsg)(nil)

const (
	issueTokenCost    int64 = 200
	approveTokenCost  int64 = 100
	transferTokenCost int64 = 100
)

// Path returns the routing path for this message
func (IssueTokenMsg) Path() string {
	return "assets/issue"
}

// Validate makes sure that this is sensible
func (m *IssueTokenMsg) Validate() error {
	var err error
	err = errors.Append(err, errors.Wrap(mart.Address(m.Collection).Validate(), "collection"))
	err = errors.Append(err, validateAssetID(m.AssetId))
	err = errors.Append(err, errors.Wrap(mart.Address(m.Owner).Validate(), "owner"))
	return err
}

// Path returns the routing path for this message
func (ApproveMsg) Path() string {
	return "assets/approve"
}

// Validate makes sure that this is sensible
func (m *ApproveMsg) Validate() error {
	var err error
	err = errors.Append(err, errors.Wrap(mart.Address(m.Collection).Validate(), "collection"))
	err = errors.Append(err, validateAssetID(m.AssetId))
	// empty to address clears the approval
	if len(m.To) != 0 {
		err = errors.Append(err, errors.Wrap(mart.Address(m.To).Validate(), "to"))
	}
	return err
}

// Path returns the routing path for this message
func (TransferTokenMsg) Path() string {
	return "assets/transfer"
}

// Validate makes sure that this is sensible
func (m *TransferTokenMsg) Validate() error {
	var err error
	err = errors.Append(err, errors.Wrap(mart.Address(m.Collection).Validate(), "collection"))
	err = errors.Append(err, validateAssetID(m.AssetId))
	err = errors.Append(err, errors.Wrap(mart.Address(m.Dest).Validate(), "dest"))
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
