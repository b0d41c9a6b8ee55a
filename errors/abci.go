package errors

import (
	"fmt"
	"reflect"
)

// SuccessABCICode declares an ABCI response use 0 to signal that the
// processing was successful and no error is returned.
const SuccessABCICode = 0

// All unclassified errors that do not provide an ABCI code are
// clubbed under an internal error code and a generic message instead
// of detailed error string.
const (
	internalABCICode uint32 = 1
	internalABCILog  string = "internal error"
)

// ABCIInfo returns the ABCI error information as consumed by the
// tendermint client. Returned code and log message should be used as
// a ResponseDeliverTx.Code and ResponseDeliverTx.Log respectively.
// Returned code is 0 if the error is nil.
// When not running in a debug mode, all messages of errors that do
// not have a registered code are replaced with a generic instead.
func ABCIInfo(err error, debug bool) (uint32, string) {
	if errIsNil(err) {
		return SuccessABCICode, ""
	}

	// Only non-internal errors information can be exposed. Any error
	// without an ABCI code is an internal error and its message is
	// not deterministic.
	if code := abciCode(err); code != internalABCICode {
		return code, err.Error()
	}
	if debug {
		return internalABCICode, err.Error()
	}
	return internalABCICode, internalABCILog
}

// abciCode tests if given error contains an ABCI code and returns the
// value of it if available. This function is testing for the causer
// interface as well and unwraps the error.
func abciCode(err error) uint32 {
	if errIsNil(err) {
		return SuccessABCICode
	}

	type coder interface {
		ABCICode() uint32
	}

	for {
		if c, ok := err.(coder); ok {
			return c.ABCICode()
		}

		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return internalABCICode
		}
	}
}

// errIsNil returns true if value represented by the given error is
// nil.
//
// Most of the time a simple == check is enough. There is a very
// narrow case when user provides a nil error wrapped in an interface
// and in that case a reflect inspection is required.
func errIsNil(err error) bool {
	if err == nil {
		return true
	}
	if val := reflect.ValueOf(err); val.Kind() == reflect.Ptr {
		return val.IsNil()
	}
	return false
}

// Redact replaces the message of any error that can leak
// implementation details. Panic errors must never leak their content.
func Redact(err error) error {
	if ErrPanic.Is(err) {
		return fmt.Errorf("panic message redacted to hide potentially sensitive system info")
	}
	return err
}
