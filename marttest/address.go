package marttest

import (
	"crypto/rand"
	"testing"

	"github.com/mart-network/mart"
)

// NewCondition returns a random condition. Each call returns a
// different one, so each call models a different actor.
func NewCondition() mart.Condition {
	data := make([]byte, 16)
	if _, err := rand.Read(data); err != nil {
		panic(err)
	}
	return mart.NewCondition("sigs", "ed25519", data)
}

// NewAddress returns the address of a new random condition
func NewAddress() mart.Address {
	return NewCondition().Address()
}

// ParseAddress takes an address in a human readable format and
// returns its binary representation, failing the test on a bad input.
func ParseAddress(t testing.TB, encodedAddress string) mart.Address {
	t.Helper()

	addr, err := mart.ParseAddress(encodedAddress)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encodedAddress, err)
	}
	return addr
}
