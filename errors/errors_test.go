package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	// codes from the 9xx range are not used by the framework
	err := Register(930, "a thing broke")
	assert.Equal(t, uint32(930), err.ABCICode())
	assert.Equal(t, "a thing broke", err.Error())

	assert.Panics(t, func() {
		Register(930, "the same code again")
	})
}

func TestIs(t *testing.T) {
	cases := map[string]struct {
		kind *Error
		err  error
		want bool
	}{
		"nil kind matches nil error": {
			kind: nil, err: nil, want: true,
		},
		"kind matches itself": {
			kind: ErrNotFound, err: ErrNotFound, want: true,
		},
		"kind matches wrapped": {
			kind: ErrNotFound, err: Wrap(ErrNotFound, "gone"), want: true,
		},
		"kind matches deeply wrapped": {
			kind: ErrNotFound,
			err:  Wrap(Wrap(ErrNotFound, "gone"), "lookup"),
			want: true,
		},
		"different kind": {
			kind: ErrNotFound, err: Wrap(ErrState, "gone"), want: false,
		},
		"stdlib error": {
			kind: ErrNotFound, err: fmt.Errorf("gone"), want: false,
		},
		"kind never matches nil": {
			kind: ErrNotFound, err: nil, want: false,
		},
		"member of a multi error": {
			kind: ErrNotFound,
			err:  Append(Wrap(ErrState, "a"), Wrap(ErrNotFound, "b")),
			want: true,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.kind.Is(tc.err))
		})
	}
}

func TestWrap(t *testing.T) {
	err := Wrap(ErrNotFound, "wallet")
	assert.Equal(t, "wallet: not found", err.Error())
	assert.Equal(t, ErrNotFound.ABCICode(), abciCode(err))

	// wrapping nil stays nil
	assert.Nil(t, Wrap(nil, "no problem"))

	// wrapping attaches a stack trace exactly once
	require.NotNil(t, stackTrace(err))
	again := Wrap(err, "outer")
	assert.Equal(t, "outer: wallet: not found", again.Error())
	require.NotNil(t, stackTrace(again))
}

func TestAppend(t *testing.T) {
	// nils are dropped
	assert.Nil(t, Append(nil, nil))

	err := Append(nil, Wrap(ErrState, "first"), nil, Wrap(ErrAmount, "second"))
	require.NotNil(t, err)
	assert.Equal(t, "first: invalid state; second: invalid amount", err.Error())
	assert.True(t, ErrState.Is(err))
	assert.True(t, ErrAmount.Is(err))
	assert.False(t, ErrNotFound.Is(err))

	// nested multi errors are flattened
	flat := Append(err, Wrap(ErrNotFound, "third"))
	multi, ok := flat.(unpacker)
	require.True(t, ok)
	assert.Len(t, multi.Unpack(), 3)

	// the code of the first member wins
	coded, ok := flat.(interface{ ABCICode() uint32 })
	require.True(t, ok)
	assert.Equal(t, ErrState.ABCICode(), coded.ABCICode())
}

func TestABCIInfo(t *testing.T) {
	cases := map[string]struct {
		err      error
		debug    bool
		wantCode uint32
		wantLog  string
	}{
		"success": {
			err: nil, wantCode: SuccessABCICode, wantLog: "",
		},
		"registered error": {
			err:      Wrap(ErrNotFound, "wallet"),
			wantCode: ErrNotFound.ABCICode(),
			wantLog:  "wallet: not found",
		},
		"stdlib error is hidden": {
			err:      fmt.Errorf("secret database path"),
			wantCode: 1,
			wantLog:  "internal error",
		},
		"stdlib error shown in debug": {
			err:      fmt.Errorf("secret database path"),
			debug:    true,
			wantCode: 1,
			wantLog:  "secret database path",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			code, log := ABCIInfo(tc.err, tc.debug)
			assert.Equal(t, tc.wantCode, code)
			assert.Equal(t, tc.wantLog, log)
		})
	}
}

func TestRedact(t *testing.T) {
	// panic content is never exposed
	panicErr := Wrap(ErrPanic, "address of the admin")
	redacted := Redact(panicErr)
	assert.NotContains(t, redacted.Error(), "admin")

	// other errors pass through
	err := Wrap(ErrNotFound, "wallet")
	assert.Equal(t, err, Redact(err))
}

func TestRecover(t *testing.T) {
	run := func() (err error) {
		defer Recover(&err)
		panic("exploded")
	}
	err := run()
	require.Error(t, err)
	assert.True(t, ErrPanic.Is(err))
	assert.Contains(t, err.Error(), "exploded")
}
