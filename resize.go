package ohash

import "go.uber.org/zap"

const (
	opExpand = "expand"
	opShrink = "shrink"
)

// maybeExpand doubles the table until the load factor is back within the
// expand threshold. A load factor equal to the threshold does not expand.
func (t *Table) maybeExpand() {
	if loadFactor(t.count, len(t.slots)) <= t.expandThreshold {
		return
	}

	newCapacity := len(t.slots) * 2
	for loadFactor(t.count, newCapacity) > t.expandThreshold {
		newCapacity *= 2
	}
	t.resize(newCapacity, opExpand)
}

// maybeShrink halves the table once when the load factor falls below the
// shrink threshold. A load factor equal to the threshold does not shrink.
func (t *Table) maybeShrink() {
	if loadFactor(t.count, len(t.slots)) >= t.shrinkThreshold {
		return
	}

	newCapacity := len(t.slots) / 2
	if newCapacity < 1 {
		return
	}
	// High shrink thresholds could otherwise halve into a table with no free bucket
	if t.count >= newCapacity {
		return
	}
	t.resize(newCapacity, opShrink)
}

func (t *Table) resize(newCapacity int, op string) {
	from, dropped := len(t.slots), t.tombstones
	t.rehash(newCapacity)

	if op == opExpand {
		t.expansions++
	} else {
		t.shrinks++
	}

	t.logger.Debug("table resized",
		zap.String("op", op),
		zap.Int("from", from),
		zap.Int("to", newCapacity),
		zap.Int("count", t.count),
		zap.Int("tombstones", dropped))
}

// rehash moves every occupied entry into a fresh store of newCapacity
// buckets. Tombstones are not carried over.
func (t *Table) rehash(newCapacity int) {
	slots := make([]slot, newCapacity)

	usedCount := 0
	for i := 0; i < len(t.slots) && usedCount < t.count; i++ {
		old := &t.slots[i]
		if !old.occupied() {
			continue
		}
		usedCount++

		idx := insertionSlot(slots, digest(old.entry))
		slots[idx].put(old.entry)
	}

	t.slots = slots
	t.tombstones = 0
}
