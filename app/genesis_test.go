package app

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mart-network/mart"
	"github.com/mart-network/mart/coin"
	"github.com/mart-network/mart/marttest"
	"github.com/mart-network/mart/store"
	"github.com/mart-network/mart/x/assets"
	"github.com/mart-network/mart/x/cash"
)

func TestChainInitializers(t *testing.T) {
	kv := store.MemStore()

	addr := marttest.NewAddress()
	collection := marttest.NewAddress()
	assetID := []byte("genesis-nft")

	accounts, err := json.Marshal([]cash.GenesisAccount{{
		Address: addr,
		Set:     cash.Set{Coins: []*coin.Coin{coin.NewCoinp(100, 0, "IOV")}},
	}})
	require.NoError(t, err)
	tokens, err := json.Marshal([]assets.GenesisToken{{
		Collection: collection,
		AssetID:    assetID,
		Owner:      addr,
	}})
	require.NoError(t, err)

	opts := mart.Options{
		"cash":   accounts,
		"assets": tokens,
	}

	ini := ChainInitializers(cash.Initializer{}, assets.Initializer{})
	require.NoError(t, ini.FromGenesis(opts, kv))

	balance, err := cash.NewController(cash.NewBucket()).Balance(kv, addr)
	require.NoError(t, err)
	assert.True(t, balance.Contains(coin.NewCoin(100, 0, "IOV")))

	owner, err := assets.NewRegistry(assets.NewBucket()).Owner(kv, collection, assetID)
	require.NoError(t, err)
	assert.Equal(t, addr, owner)
}

func TestChainInitializersAbortOnError(t *testing.T) {
	kv := store.MemStore()

	opts := mart.Options{
		"cash": json.RawMessage(`[{"address": "invalid"}]`),
	}
	ini := ChainInitializers(cash.Initializer{}, assets.Initializer{})
	assert.Error(t, ini.FromGenesis(opts, kv))
}
