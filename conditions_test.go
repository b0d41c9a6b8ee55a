package mart

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mart-network/mart/errors"
)

func TestConditionParse(t *testing.T) {
	cond := NewCondition("sigs", "ed25519", []byte{1, 2, 3, 4})
	ext, typ, data, err := cond.Parse()
	require.NoError(t, err)
	assert.Equal(t, "sigs", ext)
	assert.Equal(t, "ed25519", typ)
	assert.Equal(t, []byte{1, 2, 3, 4}, data)
	assert.NoError(t, cond.Validate())

	// data may contain any byte, also the separator and newline
	tricky := NewCondition("foo", "bar", []byte("dings/bums\n"))
	ext, typ, data, err = tricky.Parse()
	require.NoError(t, err)
	assert.Equal(t, "foo", ext)
	assert.Equal(t, "bar", typ)
	assert.Equal(t, []byte("dings/bums\n"), data)

	cases := map[string]Condition{
		"empty":           {},
		"no data":         Condition("foo/bar/"),
		"extension short": NewCondition("ab", "types", []byte{1}),
		"extension long":  NewCondition("waytoolongg", "types", []byte{1}),
		"bad separator":   Condition("foo.bar.baz"),
	}
	for name, cond := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, _, err := cond.Parse()
			assert.True(t, errors.ErrInput.Is(err), "got %+v", err)
			assert.Error(t, cond.Validate())
		})
	}
}

func TestConditionAddress(t *testing.T) {
	cond := NewCondition("mart", "escrow", []byte("listing-key"))
	addr := cond.Address()
	assert.NoError(t, addr.Validate())
	assert.Len(t, []byte(addr), AddressLength)

	// stable and collision free for different data
	assert.True(t, addr.Equals(cond.Address()))
	other := NewCondition("mart", "escrow", []byte("other-key"))
	assert.False(t, addr.Equals(other.Address()))
}

func TestAddressJSONRoundTrip(t *testing.T) {
	addr := NewCondition("sigs", "ed25519", []byte{7, 7, 7}).Address()

	raw, err := json.Marshal(addr)
	require.NoError(t, err)

	var got Address
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.True(t, addr.Equals(got))

	var empty Address
	require.NoError(t, json.Unmarshal([]byte(`""`), &empty))
	assert.Nil(t, empty)

	assert.Error(t, json.Unmarshal([]byte(`"notahexstring"`), &got))
}

func TestParseAddress(t *testing.T) {
	cond := NewCondition("sigs", "ed25519", []byte{1, 2, 3, 4})
	addr := cond.Address()

	// plain hex and explicit hex prefix
	got, err := ParseAddress(addr.String())
	require.NoError(t, err)
	assert.True(t, addr.Equals(got))
	got, err = ParseAddress("hex:" + addr.String())
	require.NoError(t, err)
	assert.True(t, addr.Equals(got))

	// condition format resolves to the address of the condition
	got, err = ParseAddress("cond:sigs/ed25519/01020304")
	require.NoError(t, err)
	assert.True(t, addr.Equals(got))

	cases := map[string]string{
		"wrong length":   "hex:C0FFEE",
		"not hex":        "hex:zzzz",
		"bad condition":  "cond:onlytwo/chunks",
		"unknown format": "base64:AAAA",
		"bad bech32":     "bech32:definitelynotbech32",
	}
	for name, enc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseAddress(enc)
			assert.Error(t, err)
		})
	}
}
