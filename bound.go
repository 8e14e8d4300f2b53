package step

import (
	"math/big"
)

// Widths lists the supported integer widths, in bits. Accessors fall back
// to FallbackStep for any width not in this list.
var Widths = [...]uint{8, 16, 32, 64, 128}

// maxBound is 2^128, the largest bound the package models.
var maxBound = U256From64(1).Lsh(128)

// Bound is the exclusive upper bound a digit string is tested against.
//
// It is deliberately one greater than the largest representable magnitude
// of the type it stands for: a 64-digit binary string cannot equal 2^64,
// so comparing radix powers against the exclusive bound is what makes
// exact-power detection come out right at the edge.
type Bound struct {
	v U256
}

func BoundFrom64(v uint64) Bound { return Bound{v: U256From64(v)} }

// BoundFromBigInt creates a Bound from a big.Int. Values below zero or
// above 2^128 are out of range and set inRange to 'false'.
func BoundFromBigInt(b *big.Int) (out Bound, inRange bool) {
	v, inRange := U256FromBigInt(b)
	if !inRange || v.GreaterThan(maxBound) {
		return Bound{}, false
	}
	return Bound{v: v}, true
}

// MaxBound returns the bound for a fixed-width integer type: 2^bits when
// unsigned, 2^(bits-1) when signed. ok is false for widths outside Widths.
func MaxBound(bits uint, signed bool) (bound Bound, ok bool) {
	if widthIndex(bits) < 0 {
		return Bound{}, false
	}
	if signed {
		bits--
	}
	return Bound{v: U256From64(1).Lsh(bits)}, true
}

func (b Bound) IsZero() bool { return b.v.IsZero() }

func (b Bound) AsBigInt() *big.Int { return b.v.AsBigInt() }

func (b Bound) String() string { return b.v.String() }
