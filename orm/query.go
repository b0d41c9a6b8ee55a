package orm

import (
	"github.com/mart-network/mart"
)

// queryPrefix returns all models with this prefix,
// combining the prefix-stripped key with the value
func queryPrefix(db mart.ReadOnlyKVStore, prefix []byte) []mart.Model {
	var res []mart.Model

	itr := db.Iterator(prefix, prefixEnd(prefix))
	defer itr.Close()

	for ; itr.Valid(); itr.Next() {
		key := append([]byte(nil), itr.Key()...)
		value := append([]byte(nil), itr.Value()...)
		res = append(res, mart.Pair(key, value))
	}
	return res
}

// prefixEnd gives the first key that is just above all keys
// with the given prefix. nil means "to the end"
func prefixEnd(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)

	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	// prefix is all 0xff, no upper limit
	return nil
}
