package ohash

// Entry is an immutable string-keyed value stored in a Table.
// Equality and hashing are defined over the key alone.
type Entry struct {
	key string
}

// NewEntry creates an Entry for key
func NewEntry(key string) Entry {
	return Entry{key: key}
}

// Key returns the entry's key
func (e Entry) Key() string {
	return e.key
}

// Equal reports whether e and other carry the same key
func (e Entry) Equal(other Entry) bool {
	return e.key == other.key
}

func (e Entry) String() string {
	return e.key
}
