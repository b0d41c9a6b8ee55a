package coin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoinAdd(t *testing.T) {
	a := NewCoin(2, 500000000, "FOO")
	b := NewCoin(1, 700000000, "FOO")

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Equals(NewCoin(4, 200000000, "FOO")))

	// adding different currencies fails
	_, err = a.Add(NewCoin(1, 0, "BAR"))
	assert.Error(t, err)

	// a zero coin without ticker has no influence
	sum, err = a.Add(Coin{})
	require.NoError(t, err)
	assert.True(t, sum.Equals(a))

	// overflow is rejected
	_, err = NewCoin(MaxInt, 0, "FOO").Add(NewCoin(1, 0, "FOO"))
	assert.Error(t, err)
}

func TestCoinSubtractAndNegative(t *testing.T) {
	a := NewCoin(5, 0, "FOO")

	diff, err := a.Subtract(NewCoin(2, 300000000, "FOO"))
	require.NoError(t, err)
	assert.True(t, diff.Equals(NewCoin(2, 700000000, "FOO")))

	sum, err := a.Add(a.Negative())
	require.NoError(t, err)
	assert.True(t, sum.IsZero())
}

func TestCoinCompare(t *testing.T) {
	cases := map[string]struct {
		a, b Coin
		want int
	}{
		"larger whole":      {NewCoin(2, 0, "FOO"), NewCoin(1, 0, "FOO"), 1},
		"smaller whole":     {NewCoin(1, 0, "FOO"), NewCoin(2, 0, "FOO"), -1},
		"larger fraction":   {NewCoin(1, 5, "FOO"), NewCoin(1, 4, "FOO"), 1},
		"smaller fraction":  {NewCoin(1, 4, "FOO"), NewCoin(1, 5, "FOO"), -1},
		"equal":             {NewCoin(1, 5, "FOO"), NewCoin(1, 5, "FOO"), 0},
		"negative vs. zero": {NewCoin(-1, 0, "FOO"), NewCoin(0, 0, "FOO"), -1},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Compare(tc.b))
		})
	}
}

func TestCoinPredicates(t *testing.T) {
	assert.True(t, NewCoin(1, 0, "FOO").IsPositive())
	assert.True(t, NewCoin(0, 1, "FOO").IsPositive())
	assert.False(t, NewCoin(0, 0, "FOO").IsPositive())
	assert.False(t, NewCoin(-1, 0, "FOO").IsPositive())

	assert.True(t, NewCoin(0, 0, "FOO").IsZero())
	assert.True(t, NewCoin(0, 0, "FOO").IsNonNegative())
	assert.False(t, NewCoin(0, -1, "FOO").IsNonNegative())

	assert.True(t, NewCoin(2, 0, "FOO").IsGTE(NewCoin(2, 0, "FOO")))
	assert.True(t, NewCoin(2, 1, "FOO").IsGTE(NewCoin(2, 0, "FOO")))
	assert.False(t, NewCoin(2, 0, "FOO").IsGTE(NewCoin(2, 1, "FOO")))
	// different currencies never compare
	assert.False(t, NewCoin(2, 0, "FOO").IsGTE(NewCoin(1, 0, "BAR")))
}

func TestCoinValidate(t *testing.T) {
	cases := map[string]struct {
		coin    Coin
		wantErr bool
	}{
		"valid":            {NewCoin(1, 0, "FOO"), false},
		"valid negative":   {NewCoin(-1, -5, "FOO"), false},
		"no ticker":        {NewCoin(1, 0, ""), true},
		"lowercase ticker": {NewCoin(1, 0, "foo"), true},
		"whole overflow":   {NewCoin(MaxInt + 1, 0, "FOO"), true},
		"frac overflow":    {NewCoin(0, FracUnit, "FOO"), true},
		"mismatched sign":  {NewCoin(1, -5, "FOO"), true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.coin.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseHumanFormat(t *testing.T) {
	cases := map[string]struct {
		src     string
		want    Coin
		wantErr bool
	}{
		"whole only":      {src: "5 IOV", want: NewCoin(5, 0, "IOV")},
		"with fraction":   {src: "1.25 IOV", want: NewCoin(1, 250000000, "IOV")},
		"negative":        {src: "-2.5 IOV", want: NewCoin(-2, -500000000, "IOV")},
		"no space":        {src: "42IOV", want: NewCoin(42, 0, "IOV")},
		"missing ticker":  {src: "5", wantErr: true},
		"bad ticker":      {src: "5 iov", wantErr: true},
		"not a number":    {src: "five IOV", wantErr: true},
		"double fraction": {src: "1.2.3 IOV", wantErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := ParseHumanFormat(tc.src)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.want.Equals(got), "got %#v", got)
		})
	}
}

func TestCoinString(t *testing.T) {
	assert.Equal(t, "5 IOV", NewCoin(5, 0, "IOV").String())
	assert.Equal(t, "1.25 IOV", NewCoin(1, 250000000, "IOV").String())
	assert.Equal(t, "0.000000001 IOV", NewCoin(0, 1, "IOV").String())
}
