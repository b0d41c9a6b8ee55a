package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mart-network/mart/coin"
	"github.com/mart-network/mart/errors"
	"github.com/mart-network/mart/marttest"
	"github.com/mart-network/mart/store"
)

func TestListingValidate(t *testing.T) {
	seller := marttest.NewAddress()
	collection := marttest.NewAddress()
	bidder := marttest.NewAddress()

	cases := map[string]struct {
		listing Listing
		wantErr *errors.Error
	}{
		"valid without bid": {
			listing: Listing{
				Seller:     seller,
				Collection: collection,
				AssetId:    []byte("nft-1"),
				MinBid:     coin.NewCoinp(1, 0, "IOV"),
			},
		},
		"valid with bid": {
			listing: Listing{
				Seller:     seller,
				Collection: collection,
				AssetId:    []byte("nft-1"),
				MinBid:     coin.NewCoinp(1, 0, "IOV"),
				Bidder:     bidder,
				Bid:        coin.NewCoinp(2, 0, "IOV"),
			},
		},
		"missing seller": {
			listing: Listing{
				Collection: collection,
				AssetId:    []byte("nft-1"),
				MinBid:     coin.NewCoinp(1, 0, "IOV"),
			},
			wantErr: errors.ErrEmpty,
		},
		"missing min bid": {
			listing: Listing{
				Seller:     seller,
				Collection: collection,
				AssetId:    []byte("nft-1"),
			},
			wantErr: errors.ErrAmount,
		},
		"zero min bid": {
			listing: Listing{
				Seller:     seller,
				Collection: collection,
				AssetId:    []byte("nft-1"),
				MinBid:     coin.NewCoinp(0, 0, "IOV"),
			},
			wantErr: errors.ErrAmount,
		},
		"bidder without bid": {
			listing: Listing{
				Seller:     seller,
				Collection: collection,
				AssetId:    []byte("nft-1"),
				MinBid:     coin.NewCoinp(1, 0, "IOV"),
				Bidder:     bidder,
			},
			wantErr: errors.ErrAmount,
		},
		"bid without bidder": {
			listing: Listing{
				Seller:     seller,
				Collection: collection,
				AssetId:    []byte("nft-1"),
				MinBid:     coin.NewCoinp(1, 0, "IOV"),
				Bid:        coin.NewCoinp(2, 0, "IOV"),
			},
			wantErr: errors.ErrState,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.listing.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, tc.wantErr.Is(err), "got %+v", err)
			}
		})
	}
}

func TestBidderAddress(t *testing.T) {
	listing := Listing{}
	assert.Nil(t, listing.GetBidderAddress())

	bidder := marttest.NewAddress()
	listing.Bidder = bidder
	assert.Equal(t, bidder, listing.GetBidderAddress())
}

func TestListingKey(t *testing.T) {
	collection := marttest.NewAddress()
	assetID := []byte("nft-1")

	key := ListingKey(collection, assetID)
	assert.Equal(t, append(append([]byte{}, collection...), assetID...), key)

	// same input, same key
	assert.Equal(t, key, ListingKey(collection, assetID))
	// different asset, different key
	assert.NotEqual(t, key, ListingKey(collection, []byte("nft-2")))
}

func TestListingAccount(t *testing.T) {
	collection := marttest.NewAddress()

	escrow := ListingAccount(collection, []byte("nft-1"))
	require.NoError(t, escrow.Validate())

	// stable across calls, unique per listing
	assert.Equal(t, escrow, ListingAccount(collection, []byte("nft-1")))
	assert.NotEqual(t, escrow, ListingAccount(collection, []byte("nft-2")))
	assert.NotEqual(t, escrow, ListingAccount(marttest.NewAddress(), []byte("nft-1")))
}

func TestBucketRoundTrip(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket()

	collection := marttest.NewAddress()
	assetID := []byte("nft-1")

	listing, err := bucket.GetListing(db, collection, assetID)
	require.NoError(t, err)
	assert.Nil(t, listing)

	saved := &Listing{
		Seller:     marttest.NewAddress(),
		Collection: collection,
		AssetId:    assetID,
		MinBid:     coin.NewCoinp(1, 0, "IOV"),
	}
	require.NoError(t, bucket.SaveListing(db, saved))

	listing, err = bucket.GetListing(db, collection, assetID)
	require.NoError(t, err)
	require.NotNil(t, listing)
	assert.Equal(t, saved.Seller, listing.Seller)
	assert.True(t, saved.MinBid.Equals(*listing.MinBid))

	require.NoError(t, bucket.DeleteListing(db, collection, assetID))
	listing, err = bucket.GetListing(db, collection, assetID)
	require.NoError(t, err)
	assert.Nil(t, listing)
}
