// Package hash provides hashing of sparse-vector entries.
//
// Hashes are computed with xxhash over (key, value) pairs in key order.
// Values are canonicalised first so that values comparing equal hash
// equally: every NaN maps to one bit pattern and negative zero maps to zero.
//
// # Usage
//
//	h := hash.NewEntryHasher()
//	for k, v := range entries {
//	    h.Add(k, v)
//	}
//	sum := h.Sum64()
package hash
