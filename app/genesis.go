package app

import (
	"github.com/mart-network/mart"
)

// ChainInitializers lets you initialize many extensions with one
// initializer
func ChainInitializers(inits ...mart.Initializer) mart.Initializer {
	return chainInitializer{inits: inits}
}

type chainInitializer struct {
	inits []mart.Initializer
}

// FromGenesis will pass opts to all initializers in the list,
// aborting at the first error.
func (c chainInitializer) FromGenesis(opts mart.Options, kv mart.KVStore) error {
	for _, i := range c.inits {
		if err := i.FromGenesis(opts, kv); err != nil {
			return err
		}
	}
	return nil
}
