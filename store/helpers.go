package store

// sliceIterator walks a precomputed list of models
type sliceIterator struct {
	data []Model
	idx  int
}

var _ Iterator = (*sliceIterator)(nil)

func (s *sliceIterator) Valid() bool {
	return s.idx < len(s.data)
}

func (s *sliceIterator) Next() {
	if !s.Valid() {
		panic("iterated past the end")
	}
	s.idx++
}

func (s *sliceIterator) Key() []byte {
	if !s.Valid() {
		panic("iterated past the end")
	}
	return s.data[s.idx].Key
}

func (s *sliceIterator) Value() []byte {
	if !s.Valid() {
		panic("iterated past the end")
	}
	return s.data[s.idx].Value
}

func (s *sliceIterator) Close() {
	s.data = nil
}

// EmptyKVStore holds no data and swallows every write. MemStore builds
// on it: a btree cache wrap with nothing behind it, so the cache layer
// is the only state there is.
type EmptyKVStore struct{}

var _ KVStore = EmptyKVStore{}

func (e EmptyKVStore) Get(key []byte) []byte { return nil }

func (e EmptyKVStore) Has(key []byte) bool { return false }

func (e EmptyKVStore) Set(key, value []byte) {}

func (e EmptyKVStore) Delete(key []byte) {}

func (e EmptyKVStore) Iterator(start, end []byte) Iterator {
	return new(sliceIterator)
}

func (e EmptyKVStore) ReverseIterator(start, end []byte) Iterator {
	return new(sliceIterator)
}

func (e EmptyKVStore) NewBatch() Batch {
	return newMemBatch(e)
}

// batchOp is one queued write
type batchOp struct {
	delete bool
	key    []byte
	value  []byte
}

func (o batchOp) apply(out SetDeleter) {
	if o.delete {
		out.Delete(o.key)
		return
	}
	out.Set(o.key, o.value)
}

// memBatch queues writes and replays them in order on Write.
// The replay is not atomic, which is fine for the in-memory
// stores it backs.
type memBatch struct {
	out SetDeleter
	ops []batchOp
}

var _ Batch = (*memBatch)(nil)

func newMemBatch(out SetDeleter) *memBatch {
	return &memBatch{out: out}
}

func (b *memBatch) Set(key, value []byte) {
	b.ops = append(b.ops, batchOp{key: key, value: value})
}

func (b *memBatch) Delete(key []byte) {
	b.ops = append(b.ops, batchOp{delete: true, key: key})
}

func (b *memBatch) Write() {
	for _, op := range b.ops {
		op.apply(b.out)
	}
	b.ops = nil
}
