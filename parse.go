package step

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax indicates a value does not have the right syntax for the
	// radix it was parsed with.
	ErrSyntax = errors.New("invalid syntax")

	// ErrRange indicates a value is out of range for uint64.
	ErrRange = errors.New("value out of range")
)

// ParseUint64 interprets s in the given radix (2 to 36) and returns the
// corresponding uint64. Digits above 9 may be upper or lower case.
//
// Rather than checking for overflow after every digit, it consumes
// batches of digits sized by the 64-bit unsigned step table: a batch of
// MinStep digits can never overflow on its own, so only the
// multiply-accumulate joining one batch to the next needs a check.
func ParseUint64(s string, radix uint) (uint64, error) {
	if radix < 2 || radix > 36 {
		return 0, fmt.Errorf("step: parsing %q: illegal radix %d", s, radix)
	}
	if len(s) == 0 {
		return 0, syntaxError(s)
	}

	batch := MinStep(radix, 64, false)
	if MaxStep(radix, 64, false) == batch {
		// The bound sits exactly on a radix power, so radix^batch is 2^64
		// and does not fit the per-batch multiplier. One digit fewer keeps
		// it in range; batch size is a performance choice, not a
		// correctness one.
		batch--
	}

	r64 := uint64(radix)
	var out uint64

	for rest := s; len(rest) > 0; {
		n := int(batch)
		if n > len(rest) {
			n = len(rest)
		}
		chunk := rest[:n]
		rest = rest[n:]

		// Within a batch no check is needed: fewer than MinStep digits
		// cannot exceed a uint64.
		var acc uint64
		for i := 0; i < len(chunk); i++ {
			d, ok := digitValue(chunk[i])
			if !ok || d >= radix {
				return 0, syntaxError(s)
			}
			acc = acc*r64 + uint64(d)
		}

		hi, lo := mul64to128(out, pow64(r64, uint(len(chunk))))
		if hi != 0 {
			return 0, rangeError(s)
		}
		out = lo + acc
		if out < lo {
			return 0, rangeError(s)
		}
	}

	return out, nil
}

func digitValue(c byte) (uint, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint(c - '0'), true
	case c >= 'a' && c <= 'z':
		return uint(c-'a') + 10, true
	case c >= 'A' && c <= 'Z':
		return uint(c-'A') + 10, true
	}
	return 0, false
}

// pow64 raises base to exp. Callers guarantee the result fits a uint64.
func pow64(base uint64, exp uint) uint64 {
	out := uint64(1)
	for i := uint(0); i < exp; i++ {
		out *= base
	}
	return out
}

func syntaxError(s string) error {
	return fmt.Errorf("step: parsing %q: %w", s, ErrSyntax)
}

func rangeError(s string) error {
	return fmt.Errorf("step: parsing %q: %w", s, ErrRange)
}
