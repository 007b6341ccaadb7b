// Package dubloom provides a bloom filter built on double hashing with two
// independent base hash functions.
//
// A bloom filter is a space-efficient probabilistic data structure that tests
// whether an element is a member of a set. False positive matches are possible,
// but false negatives are not – if the filter says an element is not present,
// it definitely is not. If it says an element might be present, it could be a
// false positive.
//
// # Double Hashing
//
// Instead of computing k independent hash functions per item, dubloom computes
// two base hashes h1 and h2 and derives the k bit positions as
//
//	index_i = (h1 + i*h2) mod m    for i in 0..k-1
//
// This is the Kirsch–Mitzenmacher technique from "Less Hashing, Same
// Performance": the derived positions preserve the asymptotic false-positive
// bound of k truly independent hash functions while costing only two hash
// computations per operation.
//
// # Hash Independence
//
// The technique is only valid when h1 and h2 are statistically independent,
// which in practice means they must be computed by two distinct hash
// algorithms (or distinctly seeded ones) over the original input bytes.
//
// A tempting shortcut – deriving h2 by re-hashing h1 – silently breaks the
// filter: whenever two distinct inputs collide on h1, their h2 values are
// forced equal too, so every derived position coincides and the filter
// degrades to a single effective hash function regardless of k. The extra
// rounds then add cost without adding statistical independence.
//
// dubloom guards this contract two ways. The default [HashPair] computes h1
// with xxh3 and h2 with murmur3, two unrelated algorithm families applied to
// the same input bytes. And [NewWithHashPair] runs a correlation smoke check
// on caller-supplied pairs, rejecting bitwise-trivial derivations such as
// h2 == h1 with [ErrCorrelatedHashes].
//
// # Choosing Parameters
//
// Use [OptimalParams] or [NewWithEstimates] with your expected number of
// items and desired false positive rate:
//
//	// filter sized for 10,000 items at a 1% false positive rate
//	f, err := dubloom.NewWithEstimates(10_000, 0.01)
//
// The translation from (items, rate) to (m, k) follows the standard formulas
//
//	m = -n*ln(p) / (ln 2)²
//	k = (m/n) * ln 2
//
// and is exposed as a pure function rather than hidden inside construction,
// so the derived m and k are always visible to the caller. [New] accepts
// explicit m and k for full control.
//
// # Limitations
//
// The filter supports no deletion and no resizing. Clearing a bit could
// silently reintroduce false negatives for other items sharing that bit, so
// such operations are simply not exposed. Bits are only ever set; inserting
// more items than the filter was sized for raises the false positive rate,
// which [Filter.EstimatedFalsePositiveRate] tracks.
//
// # Thread Safety
//
// Filter is NOT thread-safe. Insert is a read-modify-write over the shared
// bit array, and a query racing an in-flight insert can observe a torn
// update. Callers that share a filter across goroutines must serialize access
// with their own lock.
//
// # References
//
//   - Less Hashing, Same Performance: https://www.eecs.harvard.edu/~michaelm/postscripts/rsa2008.pdf
//   - Space/Time Trade-offs in Hash Coding with Allowable Errors (Bloom, 1970)
package dubloom
