/*
Package app ties the pieces together: a path based router that
implements the handler registry, and the transaction application
that makes every delivery atomic.
*/
package app

import (
	"github.com/mart-network/mart"
	"github.com/mart-network/mart/errors"
)

// ApplyTx delivers the transaction against an isolated cache of the
// store. The cache is written back only when the handler succeeds, so
// a failure anywhere in the call, nested collaborator calls included,
// leaves the store untouched. Panics inside the handler are captured
// and surface as regular errors.
func ApplyTx(ctx mart.Context, db mart.CacheableKVStore, h mart.Handler, tx mart.Tx) (*mart.DeliverResult, error) {
	cache := db.CacheWrap()
	res, err := deliverSafe(ctx, cache, h, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	cache.Write()
	return res, nil
}

// CheckTx runs the handler check against a throwaway cache, so a
// check can never modify the store.
func CheckTx(ctx mart.Context, db mart.CacheableKVStore, h mart.Handler, tx mart.Tx) (*mart.CheckResult, error) {
	cache := db.CacheWrap()
	defer cache.Discard()
	return checkSafe(ctx, cache, h, tx)
}

func deliverSafe(ctx mart.Context, store mart.KVStore, h mart.Handler, tx mart.Tx) (res *mart.DeliverResult, err error) {
	defer errors.Recover(&err)
	return h.Deliver(ctx, store, tx)
}

func checkSafe(ctx mart.Context, store mart.KVStore, h mart.Handler, tx mart.Tx) (res *mart.CheckResult, err error) {
	defer errors.Recover(&err)
	return h.Check(ctx, store, tx)
}
