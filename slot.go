package ohash

type slotState uint8

const (
	slotEmpty slotState = iota // never used since the last rehash
	slotOccupied
	slotDeleted // tombstone
)

func (s slotState) String() string {
	switch s {
	case slotEmpty:
		return "empty"
	case slotOccupied:
		return "occupied"
	case slotDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// slot is one bucket of the table. The entry is only meaningful while
// state is slotOccupied.
type slot struct {
	state slotState
	entry Entry
}

func (s *slot) occupied() bool {
	return s.state == slotOccupied
}

func (s *slot) put(e Entry) {
	s.state = slotOccupied
	s.entry = e
}

// clear turns an occupied slot into a tombstone and drops its payload
func (s *slot) clear() {
	s.state = slotDeleted
	s.entry = Entry{}
}
