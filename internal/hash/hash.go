package hash

import "github.com/cespare/xxhash/v2"

// Key computes the xxHash64 of a document key.
func Key(key string) uint64 {
	return xxhash.Sum64String(key)
}

// Sum computes the xxHash64 of raw bytes.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
