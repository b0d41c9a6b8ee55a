package errors

import "strings"

// Append clubs together all provided errors. Nil values are ignored.
//
// If given error implements unpacker interface, it is flattened. All
// represented errors are directly included into the result set.
func Append(errs ...error) error {
	var res multiErr
	for _, e := range errs {
		if errIsNil(e) {
			continue
		}
		if u, ok := e.(unpacker); ok {
			res = append(res, u.Unpack()...)
		} else {
			res = append(res, e)
		}
	}

	if len(res) == 0 {
		return nil
	}
	return res
}

type multiErr []error

var _ unpacker = (multiErr)(nil)

func (errs multiErr) Unpack() []error {
	return errs
}

func (errs multiErr) Error() string {
	switch len(errs) {
	case 0:
		return ""
	case 1:
		return errs[0].Error()
	}

	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// ABCICode returns the error code of the first represented error.
func (errs multiErr) ABCICode() uint32 {
	for _, err := range errs {
		return abciCode(err)
	}
	return SuccessABCICode
}
