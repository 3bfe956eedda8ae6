package ohash

import (
	"errors"
	"fmt"
	"math/bits"

	"go.uber.org/zap"
)

const (
	// DefaultExpandThreshold is the load factor above which the table doubles
	DefaultExpandThreshold = 0.75
	// DefaultShrinkThreshold is the load factor below which the table halves
	DefaultShrinkThreshold = 0.5

	initialCapacity = 1
)

var (
	// ErrInvalidThreshold is returned for load factor thresholds outside their allowed range
	ErrInvalidThreshold = errors.New("invalid load factor threshold")
	// ErrInvalidCapacity is returned for an initial capacity that is not a power of two
	ErrInvalidCapacity = errors.New("invalid initial capacity")
)

// Options configures a Table. The zero value gives the defaults.
type Options struct {
	// ExpandThreshold must lie in (0, 1]. Zero means DefaultExpandThreshold.
	ExpandThreshold float64
	// ShrinkThreshold must lie in [0, ExpandThreshold). Zero means
	// DefaultShrinkThreshold unless DisableShrink is set.
	ShrinkThreshold float64
	// DisableShrink keeps the table from ever shrinking.
	DisableShrink bool
	// InitialCapacity must be a power of two. Zero means 1.
	InitialCapacity int
	// Logger receives a debug line per resize. Nil disables logging.
	Logger *zap.Logger
}

// Table is an open-addressing hash table of Entry values.
// It is not safe for concurrent use.
type Table struct {
	slots      []slot
	count      int
	tombstones int

	expandThreshold float64
	shrinkThreshold float64

	expansions uint64
	shrinks    uint64

	logger *zap.Logger
}

// Stats is a point-in-time snapshot of a Table's bookkeeping
type Stats struct {
	Count      int
	Capacity   int
	Tombstones int
	LoadFactor float64
	Expansions uint64
	Shrinks    uint64
}

// New creates an empty table with capacity 1 and the default thresholds
func New() *Table {
	t, err := NewWithOptions(Options{})
	if err != nil {
		// the zero Options are always valid
		panic(err)
	}
	return t
}

// NewWithOptions creates an empty table configured by opts
func NewWithOptions(opts Options) (*Table, error) {
	expand := opts.ExpandThreshold
	if expand == 0 {
		expand = DefaultExpandThreshold
	}
	if !(expand > 0 && expand <= 1) {
		return nil, fmt.Errorf("expand threshold %v not in (0, 1]: %w", expand, ErrInvalidThreshold)
	}

	shrink := opts.ShrinkThreshold
	if opts.DisableShrink {
		shrink = 0
	} else if shrink == 0 {
		shrink = DefaultShrinkThreshold
	}
	if !(shrink >= 0 && shrink < expand) {
		return nil, fmt.Errorf("shrink threshold %v not in [0, %v): %w", shrink, expand, ErrInvalidThreshold)
	}

	capacity := opts.InitialCapacity
	if capacity == 0 {
		capacity = initialCapacity
	}
	if capacity < 0 || bits.OnesCount(uint(capacity)) != 1 {
		return nil, fmt.Errorf("capacity %d is not a power of two: %w", capacity, ErrInvalidCapacity)
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Table{
		slots:           make([]slot, capacity),
		expandThreshold: expand,
		shrinkThreshold: shrink,
		logger:          logger,
	}, nil
}

// Insert adds e to the table. It never checks for an existing equal key, so
// inserting a key twice stores two entries.
func (t *Table) Insert(e Entry) {
	// A full table would leave the insertion probe nowhere to stop
	if t.count >= len(t.slots) {
		t.resize(len(t.slots)*2, opExpand)
	}

	idx := insertionSlot(t.slots, digest(e))
	if t.slots[idx].state == slotDeleted {
		t.tombstones--
	}
	t.slots[idx].put(e)
	t.count++

	t.maybeExpand()
}

// Delete removes the first entry on e's probe sequence whose key equals e's.
// Deleting an absent key does nothing.
func (t *Table) Delete(e Entry) {
	idx, found := t.find(e.key)
	if !found {
		return
	}

	t.slots[idx].clear()
	t.tombstones++
	t.count--

	t.maybeShrink()
}

// Get returns the entry stored under key
func (t *Table) Get(key string) (Entry, bool) {
	idx, found := t.find(key)
	if !found {
		return Entry{}, false
	}
	return t.slots[idx].entry, true
}

// Contains reports whether key is stored in the table
func (t *Table) Contains(key string) bool {
	_, found := t.find(key)
	return found
}

// Count returns the number of live entries
func (t *Table) Count() int {
	return t.count
}

// Capacity returns the number of buckets
func (t *Table) Capacity() int {
	return len(t.slots)
}

// Tombstones returns the number of deleted buckets not yet reclaimed by a rehash
func (t *Table) Tombstones() int {
	return t.tombstones
}

// LoadFactor returns Count divided by Capacity
func (t *Table) LoadFactor() float64 {
	return loadFactor(t.count, len(t.slots))
}

// Stats returns a snapshot of the table's counters
func (t *Table) Stats() Stats {
	return Stats{
		Count:      t.count,
		Capacity:   len(t.slots),
		Tombstones: t.tombstones,
		LoadFactor: t.LoadFactor(),
		Expansions: t.expansions,
		Shrinks:    t.shrinks,
	}
}

func loadFactor(count, capacity int) float64 {
	return float64(count) / float64(capacity)
}
