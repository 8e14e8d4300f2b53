package step

import (
	"fmt"
	"math/big"
	"strconv"
)

const (
	maxUint64 = 1<<64 - 1

	wrapUint64Float = float64(maxUint64) + 1 // 1 << 64

	intSize = 32 << (^uint(0) >> 63)
)

var (
	zeroU256 U256

	// MaxU256 is higher than any radix power the search loop can reach; a
	// 128-bit bound times the largest radix still fits in 134 bits.
	MaxU256 = U256{maxUint64, maxUint64, maxUint64, maxUint64}
)

// U256 implements just enough of a 256-bit unsigned integer to verify
// radix powers exactly. Bounds reach 2^128, and the first power to
// overshoot a bound can be radix times larger again, so the verification
// arithmetic needs more than 128 bits or it silently wraps.
type U256 struct {
	hi, hm, lm, lo uint64
}

func U256From64(in uint64) U256 {
	return U256{lo: in}
}

// U256FromBigInt creates a U256 from a big.Int. Overflow truncates to
// MaxU256 and sets inRange to 'false', as does a negative input.
func U256FromBigInt(v *big.Int) (out U256, inRange bool) {
	if v.Sign() < 0 {
		return out, false
	}

	words := v.Bits()

	switch intSize {
	case 64:
		switch len(words) {
		case 0:
			return U256{}, true
		case 1:
			return U256{lo: uint64(words[0])}, true
		case 2:
			return U256{lm: uint64(words[1]), lo: uint64(words[0])}, true
		case 3:
			return U256{hm: uint64(words[2]), lm: uint64(words[1]), lo: uint64(words[0])}, true
		case 4:
			return U256{hi: uint64(words[3]), hm: uint64(words[2]), lm: uint64(words[1]), lo: uint64(words[0])}, true
		default:
			return MaxU256, false
		}

	default:
		panic("step: unsupported bit size")
	}
}

func (u U256) IsZero() bool { return u == zeroU256 }

// Mul64 multiplies by a 64-bit value. Any bits shifted past the top of
// the 256-bit result are reported in carry.
func (u U256) Mul64(n uint64) (out U256, carry uint64) {
	var c uint64

	c, out.lo = mul64to128(u.lo, n)

	hi, lo := mul64to128(u.lm, n)
	out.lm = lo + c
	if out.lm < lo {
		hi++
	}
	c = hi

	hi, lo = mul64to128(u.hm, n)
	out.hm = lo + c
	if out.hm < lo {
		hi++
	}
	c = hi

	hi, lo = mul64to128(u.hi, n)
	out.hi = lo + c
	if out.hi < lo {
		hi++
	}

	return out, hi
}

func (u U256) Cmp(n U256) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.hm > n.hm {
		return 1
	} else if u.hm < n.hm {
		return -1
	} else if u.lm > n.lm {
		return 1
	} else if u.lm < n.lm {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U256) Equal(v U256) bool         { return u.Cmp(v) == 0 }
func (u U256) GreaterThan(v U256) bool   { return u.Cmp(v) > 0 }
func (u U256) LessThan(v U256) bool      { return u.Cmp(v) < 0 }
func (u U256) LessOrEqualTo(v U256) bool { return u.Cmp(v) <= 0 }

func (u U256) Lsh(n uint) (v U256) {
	if n == 0 {
		return u

	} else if n < 64 {
		return U256{
			hi: (u.hi << n) | (u.hm >> (64 - n)),
			hm: (u.hm << n) | (u.lm >> (64 - n)),
			lm: (u.lm << n) | (u.lo >> (64 - n)),
			lo: u.lo << n,
		}

	} else if n == 64 {
		return U256{hi: u.hm, hm: u.lm, lm: u.lo}

	} else if n < 128 {
		n -= 64
		return U256{
			hi: (u.hm << n) | (u.lm >> (64 - n)),
			hm: (u.lm << n) | (u.lo >> (64 - n)),
			lm: u.lo << n,
		}

	} else if n == 128 {
		return U256{hi: u.lm, hm: u.lo}

	} else if n < 192 {
		n -= 128
		return U256{
			hi: (u.lm << n) | (u.lo >> (64 - n)),
			hm: u.lo << n,
		}

	} else if n == 192 {
		return U256{hi: u.lo}
	} else if n < 256 {
		return U256{hi: u.lo << (n - 192)}
	} else {
		return U256{}
	}
}

func (u U256) AsFloat64() float64 {
	f := float64(u.hi)
	f = f*wrapUint64Float + float64(u.hm)
	f = f*wrapUint64Float + float64(u.lm)
	f = f*wrapUint64Float + float64(u.lo)
	return f
}

func (u U256) IntoBigInt(b *big.Int) {
	switch intSize {
	case 64:
		bits := b.Bits()
		ln := len(bits)
		if len(bits) < 4 {
			bits = append(bits, make([]big.Word, 4-ln)...)
		}
		bits = bits[:4]
		bits[0] = big.Word(u.lo)
		bits[1] = big.Word(u.lm)
		bits[2] = big.Word(u.hm)
		bits[3] = big.Word(u.hi)
		b.SetBits(bits)

	default:
		panic("step: unsupported bit size")
	}
}

func (u U256) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// AsUint64 truncates the U256 to fit in a uint64. See IsUint64() if you
// want to check before you convert.
func (u U256) AsUint64() uint64 { return u.lo }

// IsUint64 reports whether u can be represented as a uint64.
func (u U256) IsUint64() bool { return u.hi == 0 && u.hm == 0 && u.lm == 0 }

func (u U256) String() string {
	if u == zeroU256 {
		return "0"
	}
	if u.IsUint64() {
		return strconv.FormatUint(u.lo, 10)
	}
	v := u.AsBigInt()
	return v.String()
}

func (u U256) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}
