package assets

import (
	"github.com/mart-network/mart"
)

const optKey = "assets"

// GenesisToken is used to parse the json from genesis file
type GenesisToken struct {
	Collection mart.Address `json:"collection"`
	AssetID    []byte       `json:"asset_id"`
	Owner      mart.Address `json:"owner"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ mart.Initializer = Initializer{}

// FromGenesis will parse initial token info from genesis
// and save it to the database
func (Initializer) FromGenesis(opts mart.Options, kv mart.KVStore) error {
	tokens := []GenesisToken{}
	err := opts.ReadOptions(optKey, &tokens)
	if err != nil {
		return err
	}
	bucket := NewBucket()
	for _, t := range tokens {
		if err := t.Collection.Validate(); err != nil {
			return err
		}
		if err := t.Owner.Validate(); err != nil {
			return err
		}
		token := &Token{Owner: t.Owner}
		if err := bucket.SaveToken(kv, t.Collection, t.AssetID, token); err != nil {
			return err
		}
	}
	return nil
}
