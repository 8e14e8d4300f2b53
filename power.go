package step

import (
	"fmt"
	"math"
)

// Pair holds the two digit counts for one (radix, bound) combination.
// Max is always Min or Min+1; the two are equal exactly when the bound
// is a power of the radix.
type Pair struct {
	Min, Max uint
}

// maxClimb bounds the corrective loop in PowerBound. The log seed is
// within a couple of units of the true exponent on any sane libm; if the
// climb runs this far past the seed the platform's log cannot be trusted
// and neither can the exactness contract.
const maxClimb = 8

// PowerBound finds the largest power of radix that does not exceed bound,
// returning it as Pair.Min, with Pair.Max marking whether one further
// digit might still fit. radix must be >= 2 and bound >= 1.
//
// A floating-point logarithm seeds the search, but only ever as a
// starting point: log can round up past the true exponent, especially
// when bound is itself a power of the radix, so the seed deliberately
// under-estimates and the answer is settled by exact integer climbs and
// an exact final comparison.
func PowerBound(radix uint, bound Bound) (Pair, error) {
	if radix < 2 {
		return Pair{}, fmt.Errorf("step: radix %d out of range: must be >= 2", radix)
	}
	if bound.IsZero() {
		return Pair{}, fmt.Errorf("step: bound out of range: must be >= 1")
	}

	seed := int(math.Floor(math.Log(bound.v.AsFloat64())/math.Log(float64(radix)))) - 1
	if seed < 0 {
		// The integer search cannot start below radix^0.
		seed = 0
	}

	power := uint(seed)
	cur := powU256(uint64(radix), power)

	for climbed := 0; cur.LessOrEqualTo(bound.v); climbed++ {
		if climbed >= maxClimb {
			panic(fmt.Sprintf("step: power climb for radix %d did not converge from seed %d", radix, seed))
		}
		var carry uint64
		cur, carry = cur.Mul64(uint64(radix))
		if carry != 0 {
			panic("step: power climb overflowed 256 bits")
		}
		power++
	}
	power--

	// Settle the classification with exact arithmetic only.
	switch powU256(uint64(radix), power).Cmp(bound.v) {
	case -1:
		return Pair{Min: power, Max: power + 1}, nil
	case 0:
		return Pair{Min: power, Max: power}, nil
	}
	panic(fmt.Sprintf("step: log seed %d overshot the largest power of %d below %s", seed, radix, bound))
}

func powU256(base uint64, exp uint) U256 {
	out := U256From64(1)
	for i := uint(0); i < exp; i++ {
		var carry uint64
		out, carry = out.Mul64(base)
		if carry != 0 {
			panic("step: radix power overflowed 256 bits")
		}
	}
	return out
}
