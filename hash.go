package dubloom

import (
	"fmt"
	"math/bits"
	"math/rand"

	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// HashPair computes two base hashes of the same input.
//
// Contract: h1 and h2 must come from two distinct hash algorithms (or
// distinctly seeded ones), each applied directly to the original input bytes.
// Deriving h2 from h1 is a defect – any two inputs that collide on h1 then
// share their entire probe sequence, and the filter behaves as if it used a
// single hash function no matter how large k is. Empty input is valid; both
// hashes must treat it as an opaque zero-length byte sequence.
type HashPair interface {
	Hash(data []byte) (h1, h2 uint64)
	HashString(s string) (h1, h2 uint64)
}

// xxh3Murmur is the default HashPair: xxh3 for h1 and murmur3 for h2. Two
// unrelated algorithm families, both computed over the original input.
type xxh3Murmur struct{}

func (xxh3Murmur) Hash(data []byte) (uint64, uint64) {
	return xxh3.Hash(data), murmur3.Sum64(data)
}

func (xxh3Murmur) HashString(s string) (uint64, uint64) {
	// xxh3 hashes the string directly; murmur3 only takes a byte slice.
	return xxh3.HashString(s), murmur3.Sum64([]byte(s))
}

// DefaultHashPair returns the xxh3+murmur3 pair used by New.
func DefaultHashPair() HashPair {
	return xxh3Murmur{}
}

// correlationSamples is the number of random inputs fed to a candidate
// HashPair by checkCorrelation.
const correlationSamples = 256

// checkCorrelation rejects hash pairs whose two outputs are grossly
// correlated.
//
// It catches bitwise-trivial derivations – h2 == h1, h2 == h1 ^ const,
// degenerate constant outputs – but it is a smoke test, not a proof: a
// well-mixed h2 = f(h1) produces statistically clean-looking output and only
// betrays itself under h1 collisions. The sample inputs are drawn from a
// fixed seed so the verdict for a given pair is the same on every run.
func checkCorrelation(pair HashPair) error {
	rng := rand.New(rand.NewSource(0x6475626c))
	buf := make([]byte, 24)

	var equal int
	var hamming int
	xors := make(map[uint64]struct{}, correlationSamples)
	for i := 0; i < correlationSamples; i++ {
		rng.Read(buf)
		h1, h2 := pair.Hash(buf)
		if h1 == h2 {
			equal++
		}
		xors[h1^h2] = struct{}{}
		hamming += bits.OnesCount64(h1 ^ h2)
	}

	// Independent 64-bit hashes collide with probability 2^-64; any observed
	// equality means the outputs are tied together.
	if equal > 0 {
		return fmt.Errorf("%w: h1 == h2 on %d of %d samples", ErrCorrelatedHashes, equal, correlationSamples)
	}
	if len(xors) < correlationSamples/2 {
		return fmt.Errorf("%w: h1^h2 is near-constant across %d samples", ErrCorrelatedHashes, correlationSamples)
	}
	// Independent outputs differ in ~32 of 64 bits on average.
	mean := float64(hamming) / float64(correlationSamples)
	if mean < 16 || mean > 48 {
		return fmt.Errorf("%w: mean hamming distance %.1f between h1 and h2, want ~32", ErrCorrelatedHashes, mean)
	}
	return nil
}
