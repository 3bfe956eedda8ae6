package ohash

import "github.com/cespare/xxhash/v2"

// digest computes the 64-bit xxHash of the entry's key.
// xxHash is unseeded, so the result is stable across processes.
func digest(e Entry) uint64 {
	return hashKey(e.key)
}

func hashKey(key string) uint64 {
	return xxhash.Sum64String(key)
}

// home returns the first bucket of key's probe sequence for a table of n buckets
func home(h uint64, n int) int {
	return int(h % uint64(n))
}
