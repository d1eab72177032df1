package tropical

import "math"

// Weight is a cost in the tropical semiring. float32 matches the flat
// arc record crossing the boundary package, so no conversion happens on
// marshal.
type Weight float32

// Zero returns the additive identity: +Inf, the weight of "no path" and
// the implicit final weight of a non-final state. Zero is never stored
// on an arc; it only ever appears as an absence marker.
func Zero() Weight { return Weight(math.Inf(1)) }

// One returns the multiplicative identity: 0, the neutral path weight.
func One() Weight { return 0 }

// IsZero reports whether w is the semiring zero.
func IsZero(w Weight) bool { return math.IsInf(float64(w), 1) }

// Combine folds two alternative path weights into the better one:
// min(a, b).
func Combine(a, b Weight) Weight {
	if a <= b {
		return a
	}

	return b
}

// Extend concatenates two path weights: a + b. Zero absorbs, so an
// impossible prefix or suffix keeps the whole path impossible.
func Extend(a, b Weight) Weight {
	if IsZero(a) || IsZero(b) {
		return Zero()
	}

	return a + b
}

// FromProb converts a probability p ∈ (0, 1] to its tropical cost
// -ln(p). FromProb(1) is exactly One(); p outside (0, 1] is caller
// error (p == 0 yields Zero(), negative p yields NaN).
func FromProb(p float64) Weight {
	w := -math.Log(p)
	if w == 0 { // collapse -0 from p == 1
		return One()
	}

	return Weight(w)
}

// Prob converts a tropical cost back to probability mass exp(-w).
// Prob(Zero()) == 0 and Prob(One()) == 1.
func Prob(w Weight) float64 { return math.Exp(-float64(w)) }
