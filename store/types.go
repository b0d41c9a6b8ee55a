package store

import "github.com/mart-network/mart"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = mart.ReadOnlyKVStore
type SetDeleter = mart.SetDeleter
type KVStore = mart.KVStore
type Batch = mart.Batch
type Iterator = mart.Iterator
type CacheableKVStore = mart.CacheableKVStore
type KVCacheWrap = mart.KVCacheWrap
type Model = mart.Model
