package container

import (
	"fmt"
	"github.com/hashicorp/go-memdb"
	"github.com/rs/zerolog/log"
	"iter"
)

const indexedTable = "entries"

var indexedSchema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		indexedTable: {
			Name: indexedTable,
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:         "id",
					Unique:       true,
					AllowMissing: false,
					Indexer:      &memdb.StringFieldIndex{Field: "ID"},
				},
				"order": {
					Name:         "order",
					Unique:       true,
					AllowMissing: false,
					Indexer:      &memdb.StringFieldIndex{Field: "Order"},
				},
			},
		},
	},
}

// KeyEncoder turns a key into the string it is indexed by.
// Two distinct keys must never share an encoding.
type KeyEncoder[K comparable] func(key K) string

// ID prefixes keep every indexed ID non-empty and separate encoded keys from assigned ones
const (
	encodedPrefix  = "key:"
	assignedPrefix = "seq:"
)

type record[K comparable, V any] struct {
	ID    string
	Order string
	Key   K
	Value V
}

// orderOf encodes a sequence number so that lexical order equals numeric order
func orderOf(seq uint64) string {
	return fmt.Sprintf("%016x", seq)
}

// Indexed implements the Container interface using an in-memory database built using hashicorp/go-memdb.
// Insertion order is kept by an index over a monotonic sequence number.
// Without a KeyEncoder every distinct key (as compared by ==) is assigned its own ID when it is first stored.
type Indexed[K comparable, V any] struct {
	db     *memdb.MemDB
	encode KeyEncoder[K]
	ids    map[K]string
	seq    uint64
	size   int
}

var _ Container[int, any] = (*Indexed[int, any])(nil)

// IndexedOption configures an indexed container
type IndexedOption[K comparable, V any] func(obj *Indexed[K, V])

// WithKeyEncoder makes the container index keys by the given encoding instead of assigning IDs
func WithKeyEncoder[K comparable, V any](encode KeyEncoder[K]) IndexedOption[K, V] {
	return func(obj *Indexed[K, V]) {
		if encode != nil {
			obj.encode = encode
		}
	}
}

// NewIndexed creates a new indexed container holding the given entries
func NewIndexed[K comparable, V any](entries []Entry[K, V], opts ...IndexedOption[K, V]) (*Indexed[K, V], error) {
	db, err := memdb.NewMemDB(indexedSchema)
	if err != nil {
		return nil, err
	}
	obj := &Indexed[K, V]{
		db:  db,
		ids: make(map[K]string),
	}
	for _, opt := range opts {
		opt(obj)
	}
	for _, entry := range entries {
		obj.Set(entry.Key, entry.Value)
	}
	return obj, nil
}

// IndexedConstructor returns a Constructor creating indexed containers with the given options
func IndexedConstructor[K comparable, V any](opts ...IndexedOption[K, V]) Constructor[K, V] {
	return func(entries []Entry[K, V]) (Container[K, V], error) {
		obj, err := NewIndexed(entries, opts...)
		if err != nil {
			return nil, err
		}
		return obj, nil
	}
}

// Len returns the amount of stored key-value pairs
func (obj *Indexed[K, V]) Len() int {
	return obj.size
}

// Has returns whether a value is assigned to the given key
func (obj *Indexed[K, V]) Has(key K) bool {
	_, ok := obj.Get(key)
	return ok
}

// Get returns the value assigned to the given key and a boolean indicating whether it was present
func (obj *Indexed[K, V]) Get(key K) (V, bool) {
	txn := obj.db.Txn(false)
	id, ok := obj.idOf(key)
	if !ok {
		var zero V
		return zero, false
	}
	rec := obj.first(txn, id)
	if rec == nil {
		var zero V
		return zero, false
	}
	return rec.Value, true
}

// Set inserts or overwrites a key-value pair
func (obj *Indexed[K, V]) Set(key K, value V) {
	txn := obj.db.Txn(true)
	defer txn.Abort()

	rec := &record[K, V]{
		Key:   key,
		Value: value,
	}
	id, ok := obj.idOf(key)
	var existing *record[K, V]
	if ok {
		existing = obj.first(txn, id)
	}
	if existing != nil {
		rec.Order = existing.Order
	} else {
		obj.seq++
		rec.Order = orderOf(obj.seq)
		if !ok {
			id = assignedPrefix + rec.Order
		}
	}
	rec.ID = id
	if err := txn.Insert(indexedTable, rec); err != nil {
		log.Error().Err(err).Str("id", id).Msg("could not insert entry into indexed container")
		return
	}
	txn.Commit()
	if existing == nil {
		obj.size++
		if obj.encode == nil {
			obj.ids[key] = id
		}
	}
}

// Delete removes the value assigned to the given key and reports whether it was present
func (obj *Indexed[K, V]) Delete(key K) bool {
	txn := obj.db.Txn(true)
	defer txn.Abort()

	id, ok := obj.idOf(key)
	if !ok {
		return false
	}
	existing := obj.first(txn, id)
	if existing == nil {
		return false
	}
	if err := txn.Delete(indexedTable, existing); err != nil {
		log.Error().Err(err).Str("id", id).Msg("could not delete entry from indexed container")
		return false
	}
	txn.Commit()
	obj.size--
	if obj.encode == nil {
		delete(obj.ids, key)
	}
	return true
}

// Clear removes every key-value pair
func (obj *Indexed[K, V]) Clear() {
	txn := obj.db.Txn(true)
	defer txn.Abort()
	if _, err := txn.DeleteAll(indexedTable, "id"); err != nil {
		log.Error().Err(err).Msg("could not clear indexed container")
		return
	}
	txn.Commit()
	obj.size = 0
	clear(obj.ids)
}

// All returns a sequence over the key-value pairs in insertion order.
// The sequence reads a snapshot taken when iteration starts.
func (obj *Indexed[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		txn := obj.db.Txn(false)
		it, err := txn.Get(indexedTable, "order")
		if err != nil {
			log.Error().Err(err).Msg("could not iterate indexed container")
			return
		}
		for raw := it.Next(); raw != nil; raw = it.Next() {
			rec := raw.(*record[K, V])
			if !yield(rec.Key, rec.Value) {
				return
			}
		}
	}
}

// idOf returns the ID the given key is indexed by and whether the key has one
func (obj *Indexed[K, V]) idOf(key K) (string, bool) {
	if obj.encode != nil {
		return encodedPrefix + obj.encode(key), true
	}
	id, ok := obj.ids[key]
	return id, ok
}

func (obj *Indexed[K, V]) first(txn *memdb.Txn, id string) *record[K, V] {
	raw, err := txn.First(indexedTable, "id", id)
	if err != nil || raw == nil {
		return nil
	}
	return raw.(*record[K, V])
}
