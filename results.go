package mart

import (
	abci "github.com/tendermint/tendermint/abci/types"
	common "github.com/tendermint/tendermint/libs/common"

	"github.com/mart-network/mart/errors"
)

// CheckResult captures any non-error response from Check
type CheckResult struct {
	// Data is a machine-parseable return value, like id of created
	// entity
	Data []byte

	// Log is human-readable informational string
	Log string

	// RequiredFee is the fee the tx must pay before it can be
	// delivered. Zero means free ride.
	RequiredFee int64

	// GasAllocated is the maximum units of work we allow this tx to
	// perform
	GasAllocated int64

	// GasPayment is the total fees for this tx (or other source of
	// payment)
	GasPayment int64
}

// NewCheck sets the gas used and the response data but no more info.
// These are the most common info needed to be set by the Handler
func NewCheck(gasAllocated int64, log string) *CheckResult {
	return &CheckResult{
		GasAllocated: gasAllocated,
		Log:          log,
	}
}

// ToABCI converts our internal type into an abci response
func (c CheckResult) ToABCI() abci.ResponseCheckTx {
	return abci.ResponseCheckTx{
		Data:      c.Data,
		Log:       c.Log,
		GasWanted: c.GasAllocated,
	}
}

// DeliverResult captures any non-error response from Deliver
type DeliverResult struct {
	// Data is a machine-parseable return value, like id of created
	// entity
	Data []byte

	// Log is human-readable informational string
	Log string

	// RequiredFee is the fee the tx paid. May be less than CheckResult
	// demanded if partial execution
	RequiredFee int64

	// Diff contains any validator set updates
	Diff []abci.ValidatorUpdate

	// Tags are indexed to make operation results searchable
	Tags []common.KVPair

	// GasUsed is the units of work performed by this tx
	GasUsed int64
}

// ToABCI converts our internal type into an abci response
func (d DeliverResult) ToABCI() abci.ResponseDeliverTx {
	return abci.ResponseDeliverTx{
		Data:    d.Data,
		Log:     d.Log,
		GasUsed: d.GasUsed,
		Tags:    d.Tags,
	}
}

// DeliverOrError returns an abci response for DeliverTx,
// converting the error message if present, or using the successful
// DeliverResult
func DeliverOrError(result DeliverResult, err error, debug bool) abci.ResponseDeliverTx {
	if err != nil {
		return DeliverTxError(err, debug)
	}
	return result.ToABCI()
}

// CheckOrError returns an abci response for CheckTx,
// converting the error message if present, or using the successful
// CheckResult
func CheckOrError(result CheckResult, err error, debug bool) abci.ResponseCheckTx {
	if err != nil {
		return CheckTxError(err, debug)
	}
	return result.ToABCI()
}

// DeliverTxError converts any error into an abci response
func DeliverTxError(err error, debug bool) abci.ResponseDeliverTx {
	clean := errors.Redact(err)
	code, log := errors.ABCIInfo(clean, debug)

	return abci.ResponseDeliverTx{
		Code: code,
		Log:  log,
	}
}

// CheckTxError converts any error into an abci response
func CheckTxError(err error, debug bool) abci.ResponseCheckTx {
	clean := errors.Redact(err)
	code, log := errors.ABCIInfo(clean, debug)

	return abci.ResponseCheckTx{
		Code: code,
		Log:  log,
	}
}
