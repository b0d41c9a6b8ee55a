package market

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mart-network/mart/coin"
	"github.com/mart-network/mart/errors"
	"github.com/mart-network/mart/marttest"
)

func TestMsgPaths(t *testing.T) {
	assert.Equal(t, "market/list", ListMsg{}.Path())
	assert.Equal(t, "market/bid", BidMsg{}.Path())
	assert.Equal(t, "market/accept_bid", AcceptBidMsg{}.Path())
}

func TestListMsgValidate(t *testing.T) {
	collection := marttest.NewAddress()

	cases := map[string]struct {
		msg     ListMsg
		wantErr *errors.Error
	}{
		"valid": {
			msg: ListMsg{
				Collection: collection,
				AssetId:    []byte("nft-1"),
				MinBid:     coin.NewCoinp(1, 0, "IOV"),
			},
		},
		"valid without min bid": {
			msg: ListMsg{
				Collection: collection,
				AssetId:    []byte("nft-1"),
			},
		},
		"malformed collection": {
			msg: ListMsg{
				Collection: []byte("too-short"),
				AssetId:    []byte("nft-1"),
			},
			wantErr: ErrInvalidCollection,
		},
		"missing asset id": {
			msg: ListMsg{
				Collection: collection,
			},
			wantErr: errors.ErrEmpty,
		},
		"asset id too long": {
			msg: ListMsg{
				Collection: collection,
				AssetId:    bytes.Repeat([]byte("x"), maxAssetIDSize+1),
			},
			wantErr: errors.ErrInput,
		},
		"broken min bid coin": {
			msg: ListMsg{
				Collection: collection,
				AssetId:    []byte("nft-1"),
				MinBid:     coin.NewCoinp(1, 0, "not-a-ticker"),
			},
			wantErr: errors.ErrCurrency,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, tc.wantErr.Is(err), "got %+v", err)
			}
		})
	}
}

func TestBidMsgValidate(t *testing.T) {
	collection := marttest.NewAddress()
	price := coin.NewCoinp(4, 0, "IOV")

	cases := map[string]struct {
		msg     BidMsg
		wantErr *errors.Error
	}{
		"valid": {
			msg: BidMsg{
				Collection: collection,
				AssetId:    []byte("nft-1"),
				Price:      price,
				Payment:    price,
			},
		},
		"malformed collection": {
			msg: BidMsg{
				Collection: []byte{1, 2, 3},
				AssetId:    []byte("nft-1"),
				Price:      price,
				Payment:    price,
			},
			wantErr: ErrInvalidCollection,
		},
		"missing price": {
			msg: BidMsg{
				Collection: collection,
				AssetId:    []byte("nft-1"),
				Payment:    price,
			},
			wantErr: errors.ErrEmpty,
		},
		"missing payment": {
			msg: BidMsg{
				Collection: collection,
				AssetId:    []byte("nft-1"),
				Price:      price,
			},
			wantErr: errors.ErrEmpty,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, tc.wantErr.Is(err), "got %+v", err)
			}
		})
	}
}

func TestAcceptBidMsgValidate(t *testing.T) {
	msg := AcceptBidMsg{
		Collection: marttest.NewAddress(),
		AssetId:    []byte("nft-1"),
	}
	assert.NoError(t, msg.Validate())

	msg.AssetId = nil
	assert.True(t, errors.ErrEmpty.Is(msg.Validate()))

	msg.AssetId = []byte("nft-1")
	msg.Collection = nil
	assert.True(t, ErrInvalidCollection.Is(msg.Validate()))
}
