package holder

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"runtime"
	"sync"
	"weak"
)

// Identity is the object a WeakTable keys its values by.
// A value stays retrievable as long as its identity is reachable.
type Identity struct {
	id uuid.UUID
}

// ID returns the unique ID of the identity
func (identity *Identity) ID() uuid.UUID {
	return identity.id
}

// WeakTable associates identities with values without keeping the identities alive.
// Once an identity becomes unreachable, its value is dropped at some unspecified point in time.
// Values are held strongly: a value that references its own identity (for example a container whose
// values point back at the WeakDataMap owning it) keeps that identity reachable and is never dropped.
// The table is safe for concurrent use because reclamation runs on a runtime goroutine.
type WeakTable struct {
	mtx    sync.RWMutex
	values map[weak.Pointer[Identity]]any
}

// DefaultTable is the process-wide weak table used by WeakData holders unless told otherwise
var DefaultTable = NewWeakTable()

// NewWeakTable creates a new empty weak table
func NewWeakTable() *WeakTable {
	return &WeakTable{
		values: make(map[weak.Pointer[Identity]]any),
	}
}

// Len returns the amount of values not yet reclaimed
func (table *WeakTable) Len() int {
	table.mtx.RLock()
	defer table.mtx.RUnlock()
	return len(table.values)
}

// Get returns the value associated with the given identity and a boolean indicating if one was found
func (table *WeakTable) Get(identity *Identity) (any, bool) {
	table.mtx.RLock()
	defer table.mtx.RUnlock()
	val, ok := table.values[weak.Make(identity)]
	return val, ok
}

// register creates a new identity and associates it with value
func (table *WeakTable) register(value any) *Identity {
	identity := &Identity{id: uuid.New()}
	ref := weak.Make(identity)

	table.mtx.Lock()
	table.values[ref] = value
	table.mtx.Unlock()

	runtime.AddCleanup(identity, table.forget, ref)
	return identity
}

func (table *WeakTable) forget(ref weak.Pointer[Identity]) {
	table.mtx.Lock()
	defer table.mtx.Unlock()
	delete(table.values, ref)
	log.Trace().Int("remaining", len(table.values)).Msg("reclaimed weak table entry")
}

// Lookup returns the value associated with the given identity if it is of type T
func Lookup[T any](table *WeakTable, identity *Identity) (T, bool) {
	raw, ok := table.Get(identity)
	if !ok {
		var zero T
		return zero, false
	}
	val, ok := raw.(T)
	return val, ok
}

// WeakData is a holder storing its value in a WeakTable instead of referencing it.
// The value is reclaimable as soon as the holder itself is.
type WeakData[T any] struct {
	identity *Identity
	table    *WeakTable
}

var _ Holder[any] = (*WeakData[any])(nil)

// NewWeakData creates a new weak data holder registered in the given table (DefaultTable if nil)
func NewWeakData[T any](initial T, table *WeakTable) *WeakData[T] {
	if table == nil {
		table = DefaultTable
	}
	return &WeakData[T]{
		identity: table.register(initial),
		table:    table,
	}
}

// ConstructWeakData is the Constructor of WeakData holders.
// A *WeakTable argument selects the table to register in; any other argument is rejected.
func ConstructWeakData[T any](initial T, args ...any) (Holder[T], error) {
	var table *WeakTable
	for i, arg := range args {
		switch typed := arg.(type) {
		case *WeakTable:
			table = typed
		default:
			return nil, &ArgumentError{Index: i, Arg: arg}
		}
	}
	return NewWeakData(initial, table), nil
}

// Value returns the held value.
// It is always present while the holder is reachable.
func (obj *WeakData[T]) Value() T {
	val, _ := Lookup[T](obj.table, obj.identity)
	return val
}

// ID returns the unique ID of the holder
func (obj *WeakData[T]) ID() uuid.UUID {
	return obj.identity.id
}

// Identity returns the identity the holder's value is keyed by
func (obj *WeakData[T]) Identity() *Identity {
	return obj.identity
}

// Table returns the table the holder is registered in
func (obj *WeakData[T]) Table() *WeakTable {
	return obj.table
}
