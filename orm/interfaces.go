package orm

import (
	"github.com/mart-network/mart"
	"github.com/mart-network/mart/x"
)

// Model is implemented by any entity that can be stored in a bucket.
// It is the value part of a stored object.
type Model interface {
	mart.Persistent
	x.Validater
}

// Object is what is stored in the bucket
// Key is joined with the prefix to set the full key
// Value is the data stored
//
// this can be light wrapper around a protobuf-defined type
type Object interface {
	Keyed
	Cloneable
	// Validate returns error if the object is not in a valid
	// state to save to the db (eg. field missing, out of range, ...)
	x.Validater
	Value() mart.Persistent
}

// Reader defines an interface that allows reading objects from the db
type Reader interface {
	Get(db mart.ReadOnlyKVStore, key []byte) (Object, error)
}

// Keyed is anything that can identify itself
type Keyed interface {
	Key() []byte
	SetKey([]byte)
}

// Cloneable will create a new object that can be loaded into
type Cloneable interface {
	Clone() Object
}
