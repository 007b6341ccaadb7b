package dubloom

import "math"

const (
	// ln2 is the natural logarithm of 2.
	ln2 = 0.6931471805599453
	// ln2Squared is ln(2)^2.
	ln2Squared = 0.4804530139182014
)

// OptimalParams translates an expected item count and a target false positive
// rate into the bit-array length m and hash rounds k:
//
//	m = ceil(-n*ln(p) / (ln 2)²)
//	k = round((m/n) * ln 2)
//
// The translation is a pure function so callers always see the derived
// parameters before (or instead of) constructing a filter with them.
// Out-of-range inputs are clamped: expectedItems of zero is treated as one,
// fpRate is confined to (0, 1), and k is at least 1.
func OptimalParams(expectedItems uint64, fpRate float64) (m uint64, k int) {
	if expectedItems == 0 {
		expectedItems = 1
	}
	if fpRate <= 0 {
		fpRate = 0.0001
	}
	if fpRate >= 1 {
		fpRate = 0.99
	}

	bitsPerItem := -math.Log(fpRate) / ln2Squared
	m = uint64(math.Ceil(bitsPerItem * float64(expectedItems)))
	if m == 0 {
		m = 1
	}

	// Use the bits-per-item actually granted after rounding m up.
	k = int(math.Round(float64(m) / float64(expectedItems) * ln2))
	if k < 1 {
		k = 1
	}
	return m, k
}

// EstimateFalsePositiveRate estimates the false positive rate of an m-bit
// filter with k hash rounds after inserting n items.
// Formula: (1 - e^(-kn/m))^k
func EstimateFalsePositiveRate(m uint64, k int, inserted uint64) float64 {
	if m == 0 || inserted == 0 {
		return 0
	}
	kf := float64(k)
	return math.Pow(1-math.Exp(-kf*float64(inserted)/float64(m)), kf)
}
