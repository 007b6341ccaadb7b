package dubloom

import (
	"errors"

	"github.com/bits-and-blooms/bitset"
)

var (
	// ErrInvalidConfig is returned when a filter is constructed with a
	// non-positive bit-array length or number of hash rounds.
	ErrInvalidConfig = errors.New("dubloom: m and k must be positive")

	// ErrCorrelatedHashes is returned by NewWithHashPair when the supplied
	// HashPair fails the construction-time correlation check.
	ErrCorrelatedHashes = errors.New("dubloom: base hashes are correlated")
)

// Filter is a non-thread-safe bloom filter over byte strings.
//
// It owns a fixed-length bit array of m bits and derives k probe positions
// per item from two independent base hashes via double hashing. Bits are only
// ever set, never cleared: once an item is inserted, queries for it return
// true for the lifetime of the filter.
type Filter struct {
	bits  *bitset.BitSet // m-bit array, exclusively owned
	m     uint64         // bit-array length, fixed at construction
	k     int            // probe positions derived per item
	pair  HashPair       // two independent base hash functions
	count uint64         // items inserted, informational only
}

// New creates a filter with an m-bit array and k derived probe positions per
// item, hashing with the default xxh3+murmur3 pair. It returns
// ErrInvalidConfig if m or k is not positive.
func New(m, k int) (*Filter, error) {
	if m <= 0 || k <= 0 {
		return nil, ErrInvalidConfig
	}
	return &Filter{
		bits: bitset.New(uint(m)),
		m:    uint64(m),
		k:    k,
		pair: DefaultHashPair(),
	}, nil
}

// NewWithHashPair creates a filter that hashes with the supplied pair.
//
// The pair is put through a correlation smoke check before the filter is
// built; pairs whose two outputs are bitwise-trivially related (for example
// h2 == h1) are rejected with ErrCorrelatedHashes. The check cannot prove
// independence – see HashPair for the full contract.
func NewWithHashPair(m, k int, pair HashPair) (*Filter, error) {
	if m <= 0 || k <= 0 {
		return nil, ErrInvalidConfig
	}
	if err := checkCorrelation(pair); err != nil {
		return nil, err
	}
	return &Filter{
		bits: bitset.New(uint(m)),
		m:    uint64(m),
		k:    k,
		pair: pair,
	}, nil
}

// NewWithEstimates creates a filter sized for the expected number of items
// and desired false positive rate, deriving m and k via OptimalParams. The
// derived values remain visible through M and K.
func NewWithEstimates(expectedItems uint64, fpRate float64) (*Filter, error) {
	m, k := OptimalParams(expectedItems, fpRate)
	return New(int(m), k)
}

// Insert adds data to the filter.
func (f *Filter) Insert(data []byte) {
	h1, h2 := f.pair.Hash(data)
	f.insert(h1, h2)
}

// InsertString adds a string to the filter.
func (f *Filter) InsertString(s string) {
	h1, h2 := f.pair.HashString(s)
	f.insert(h1, h2)
}

func (f *Filter) insert(h1, h2 uint64) {
	h2 = probeStep(h2)
	for i := uint64(0); i < uint64(f.k); i++ {
		f.bits.Set(uint(f.probe(h1, h2, i)))
	}
	f.count++
}

// MightContain reports whether data might be in the filter. A false result is
// certain: the item was never inserted. A true result may be a false
// positive.
func (f *Filter) MightContain(data []byte) bool {
	h1, h2 := f.pair.Hash(data)
	return f.lookup(h1, h2)
}

// MightContainString reports whether a string might be in the filter.
func (f *Filter) MightContainString(s string) bool {
	h1, h2 := f.pair.HashString(s)
	return f.lookup(h1, h2)
}

func (f *Filter) lookup(h1, h2 uint64) bool {
	h2 = probeStep(h2)
	for i := uint64(0); i < uint64(f.k); i++ {
		if !f.bits.Test(uint(f.probe(h1, h2, i))) {
			return false
		}
	}
	return true
}

// probe returns the i'th derived bit position for the base hash pair
// (h1, h2). The arithmetic is unsigned throughout: overflow wraps mod 2^64
// before the reduction, so the result is always in [0, m).
func (f *Filter) probe(h1, h2, i uint64) uint64 {
	return (h1 + i*h2) % f.m
}

// probeStep forces a zero h2 to 1 so the probe sequence always advances.
func probeStep(h2 uint64) uint64 {
	if h2 == 0 {
		return 1
	}
	return h2
}

// M returns the bit-array length.
func (f *Filter) M() uint64 {
	return f.m
}

// K returns the number of probe positions derived per item.
func (f *Filter) K() int {
	return f.k
}

// Count returns the number of items inserted into the filter.
func (f *Filter) Count() uint64 {
	return f.count
}

// SetBits returns the number of bits currently set.
func (f *Filter) SetBits() uint64 {
	return uint64(f.bits.Count())
}

// FillRatio returns the proportion of bits that are set.
func (f *Filter) FillRatio() float64 {
	return float64(f.bits.Count()) / float64(f.m)
}

// EstimatedFalsePositiveRate estimates the current false positive rate based
// on the number of items inserted.
func (f *Filter) EstimatedFalsePositiveRate() float64 {
	return EstimateFalsePositiveRate(f.m, f.k, f.count)
}
