package ohash

import "errors"

// errTableFull is raised when an insertion probe finds no free bucket. Insert
// grows the table before probing, so reaching it indicates a bug.
var errTableFull = errors.New("ohash: hash table full")

// insertionSlot returns the first bucket on h's probe sequence that is not
// occupied. Tombstones count as free. Equal keys are not looked for.
func insertionSlot(slots []slot, h uint64) int {
	n := len(slots)
	idx := home(h, n)

	for i := 0; i < n; i++ {
		currentIdx := (idx + i) % n
		if !slots[currentIdx].occupied() {
			return currentIdx
		}
	}

	panic(errTableFull)
}

// find returns the index of the first occupied bucket holding key.
// Tombstones are skipped; an empty bucket or a full lap ends the search.
func (t *Table) find(key string) (int, bool) {
	n := len(t.slots)
	idx := home(hashKey(key), n)

	for i := 0; i < n; i++ {
		currentIdx := (idx + i) % n
		s := &t.slots[currentIdx]

		switch s.state {
		case slotEmpty:
			return -1, false
		case slotOccupied:
			if s.entry.key == key {
				return currentIdx, true
			}
		case slotDeleted:
			// keep walking, entries inserted after the delete may sit past it
		}
	}

	return -1, false
}
