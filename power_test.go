package step

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

// oraclePower recomputes PowerBound the slow way, entirely in big.Int.
func oraclePower(radix uint, bound *big.Int) Pair {
	r := new(big.Int).SetUint64(uint64(radix))
	pow := big.NewInt(1)
	p := uint(0)
	for pow.Cmp(bound) <= 0 {
		pow.Mul(pow, r)
		p++
	}
	p--

	exact := new(big.Int).Exp(r, new(big.Int).SetUint64(uint64(p)), nil)
	if exact.Cmp(bound) == 0 {
		return Pair{Min: p, Max: p}
	}
	return Pair{Min: p, Max: p + 1}
}

func TestPowerBound(t *testing.T) {
	for _, tc := range []struct {
		radix uint
		bound Bound
		pair  Pair
	}{
		{2, bounds("0x1 00000000 00000000"), Pair{64, 64}},
		{2, bounds("0x8000 0000 0000 0000"), Pair{63, 63}},
		{10, bounds("0x1 00000000 00000000"), Pair{19, 20}},
		{16, bounds("0x1 00000000 00000000"), Pair{16, 16}},
		{36, bounds("256"), Pair{1, 2}},
		{10, bounds("1"), Pair{0, 0}},
		{10, bounds("2"), Pair{0, 1}},
		{10, bounds("10"), Pair{1, 1}},
		{10, bounds("11"), Pair{1, 2}},
		{2, bounds("0x1 00000000 00000000 00000000 00000000"), Pair{128, 128}},
		{3, bounds("0x1 00000000 00000000 00000000 00000000"), Pair{80, 81}},
		{36, bounds("0x8000 0000 0000 0000"), Pair{12, 13}},
	} {
		t.Run(fmt.Sprintf("%d/%s", tc.radix, tc.bound), func(t *testing.T) {
			tt := assert.WrapTB(t)
			pair, err := PowerBound(tc.radix, tc.bound)
			tt.MustOK(err)
			tt.MustEqual(tc.pair, pair)
		})
	}
}

func TestPowerBoundInvalidArgument(t *testing.T) {
	tt := assert.WrapTB(t)

	for _, radix := range []uint{0, 1} {
		_, err := PowerBound(radix, BoundFrom64(10))
		tt.MustAssert(err != nil, "radix %d must be rejected", radix)
	}

	_, err := PowerBound(10, Bound{})
	tt.MustAssert(err != nil, "zero bound must be rejected")
}

func TestPowerBoundAgainstOracle(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < propIterations; i++ {
		radix := uint(globalRNG.Intn(35)) + 2
		bb := randomBigBound(globalRNG)

		bound, inRange := BoundFromBigInt(bb)
		tt.MustAssert(inRange, "bound %s", bb)

		pair, err := PowerBound(radix, bound)
		tt.MustOK(err)
		tt.MustEqual(oraclePower(radix, bb), pair, "radix %d bound %s", radix, bb)
	}
}

func TestPowerBoundProperties(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < propIterations; i++ {
		radix := uint(globalRNG.Intn(35)) + 2
		bb := randomBigBound(globalRNG)

		bound, _ := BoundFromBigInt(bb)
		pair, err := PowerBound(radix, bound)
		tt.MustOK(err)

		r := new(big.Int).SetUint64(uint64(radix))
		minPow := new(big.Int).Exp(r, new(big.Int).SetUint64(uint64(pair.Min)), nil)

		// radix^min <= bound, always:
		tt.MustAssert(minPow.Cmp(bb) <= 0, "radix %d bound %s min %d", radix, bb, pair.Min)

		// max is min or min+1:
		tt.MustAssert(pair.Max == pair.Min || pair.Max == pair.Min+1,
			"radix %d bound %s pair %v", radix, bb, pair)

		if pair.Max == pair.Min {
			// equal only when the bound is an exact radix power:
			tt.MustAssert(minPow.Cmp(bb) == 0, "radix %d bound %s min %d", radix, bb, pair.Min)
		} else {
			// otherwise the bound sits strictly between adjacent powers:
			nextPow := new(big.Int).Mul(minPow, r)
			tt.MustAssert(minPow.Cmp(bb) < 0, "radix %d bound %s min %d", radix, bb, pair.Min)
			tt.MustAssert(bb.Cmp(nextPow) < 0, "radix %d bound %s max %d", radix, bb, pair.Max)
		}
	}
}

func TestPowerBoundMonotonic(t *testing.T) {
	// For a fixed radix, min must never decrease as the bound grows.
	for radix := uint(2); radix <= 36; radix++ {
		radix := radix
		t.Run(fmt.Sprintf("radix=%d", radix), func(t *testing.T) {
			tt := assert.WrapTB(t)

			last := uint(0)
			for v := uint64(1); v <= 4096; v++ {
				pair, err := PowerBound(radix, BoundFrom64(v))
				tt.MustOK(err)
				tt.MustAssert(pair.Min >= last, "bound %d: min %d < %d", v, pair.Min, last)
				last = pair.Min
			}
		})
	}
}

func TestPowerBoundAllWidths(t *testing.T) {
	// The full cartesian product the generator runs, against the oracle.
	for radix := uint(2); radix <= 36; radix++ {
		for _, bits := range Widths {
			for _, signed := range []bool{false, true} {
				radix, bits, signed := radix, bits, signed
				t.Run(fmt.Sprintf("%d/%d/%v", radix, bits, signed), func(t *testing.T) {
					tt := assert.WrapTB(t)

					bound, ok := MaxBound(bits, signed)
					tt.MustAssert(ok)

					pair, err := PowerBound(radix, bound)
					tt.MustOK(err)
					tt.MustEqual(oraclePower(radix, bound.AsBigInt()), pair)
				})
			}
		}
	}
}
