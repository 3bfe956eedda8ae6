/*
Package ohash provides an in-memory open-addressing hash table over string keys.

The Table stores Entry values directly in a bucket array and resolves collisions
with linear probing. Deletions leave tombstones so that probe chains stay intact,
and the table grows or shrinks by a full rehash whenever its load factor crosses
the configured thresholds.

Basic usage:

	import "github.com/theflywheel/ohash"

	t := ohash.New()

	// Insert data
	t.Insert(ohash.NewEntry("5"))
	t.Insert(ohash.NewEntry("7"))

	// Look it up
	if e, ok := t.Get("7"); ok {
		fmt.Println("found", e.Key())
	}

	// Remove it
	t.Delete(ohash.NewEntry("5"))

	fmt.Println(t.Count(), t.Capacity())

Features:

  - Starts at capacity 1 and doubles when the load factor exceeds 0.75
  - Halves (never below 1) when the load factor drops below 0.5
  - Uses xxHash64 for a stable, unsalted key digest
  - Open addressing with linear probing for collision resolution
  - Optional structured logging of resizes through zap

Implementation Details:

Each bucket is one of three states: empty, occupied or deleted. Insertion walks
the probe sequence from digest mod capacity and takes the first bucket that is
not occupied, so tombstones are reused and an equal key is never checked for:
inserting the same key twice stores it twice. Search walks the same sequence,
skipping tombstones and stopping at the first empty bucket.

A rehash rebuilds the bucket array at the new capacity from the occupied
entries only. It is the sole place tombstones are reclaimed.

A Table is not safe for concurrent use. Callers must serialize access.
*/
package ohash
