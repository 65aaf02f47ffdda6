package project

import "crypto/sha256"

// Digest is a fixed 256-bit hash, layout-compatible with source.File.Hash.
type Digest [32]byte

// Combine builds a cache key: H( content || part1 || part2 ... ). The
// parts must arrive in a deterministic order.
func Combine(content Digest, parts ...Digest) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, p := range parts {
		_, _ = h.Write(p[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// HashBytes digests arbitrary bytes, used for hashing option sets.
func HashBytes(b []byte) Digest {
	return sha256.Sum256(b)
}
