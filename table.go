package step

import (
	"fmt"
)

// FallbackStep is the step returned for widths outside Widths. One digit
// per step degrades a batching consumer to the naive digit-at-a-time
// algorithm; returning zero would have it recurse forever on empty
// batches, so the fallback is a sentinel, not an error.
const FallbackStep = 1

const numWidths = len(Widths)

func widthIndex(bits uint) int {
	switch bits {
	case 8:
		return 0
	case 16:
		return 1
	case 32:
		return 2
	case 64:
		return 3
	case 128:
		return 4
	}
	return -1
}

// Table holds the digit steps for one radix across every supported
// (width, signedness) combination, indexed in Widths order.
type Table struct {
	Radix    uint
	unsigned [numWidths]Pair
	signed   [numWidths]Pair
}

// BuildTable computes the table for one radix from scratch. The checked
// in tables behind MinStep and MaxStep were produced this way by
// cmd/stepgen.
func BuildTable(radix uint) (Table, error) {
	if radix < 2 || radix > 36 {
		return Table{}, fmt.Errorf("step: radix %d out of range: must be in 2..36", radix)
	}

	t := Table{Radix: radix}
	for i, bits := range Widths {
		for _, signed := range []bool{false, true} {
			bound, ok := MaxBound(bits, signed)
			if !ok {
				return Table{}, fmt.Errorf("step: no bound for width %d", bits)
			}
			pair, err := PowerBound(radix, bound)
			if err != nil {
				return Table{}, err
			}
			if signed {
				t.signed[i] = pair
			} else {
				t.unsigned[i] = pair
			}
		}
	}
	return t, nil
}

// MinStep returns the number of digits guaranteed not to overflow the
// type, or FallbackStep for an unsupported width.
func (t Table) MinStep(bits uint, signed bool) uint {
	p, ok := t.pair(bits, signed)
	if !ok {
		return FallbackStep
	}
	return p.Min
}

// MaxStep returns the number of digits that might fit the type depending
// on the digit values, or FallbackStep for an unsupported width.
func (t Table) MaxStep(bits uint, signed bool) uint {
	p, ok := t.pair(bits, signed)
	if !ok {
		return FallbackStep
	}
	return p.Max
}

func (t Table) pair(bits uint, signed bool) (Pair, bool) {
	idx := widthIndex(bits)
	if idx < 0 {
		return Pair{}, false
	}
	if signed {
		return t.signed[idx], true
	}
	return t.unsigned[idx], true
}

// MinStep looks up the precomputed guaranteed-safe digit count for a
// radix in 2..36. Unsupported widths fall back to FallbackStep; an
// illegal radix is a programming error and panics.
func MinStep(radix, bits uint, signed bool) uint {
	return radixTable(radix).MinStep(bits, signed)
}

// MaxStep looks up the precomputed possibly-safe digit count for a radix
// in 2..36. Unsupported widths fall back to FallbackStep; an illegal
// radix is a programming error and panics.
func MaxStep(radix, bits uint, signed bool) uint {
	return radixTable(radix).MaxStep(bits, signed)
}

func radixTable(radix uint) Table {
	if radix < 2 || radix > 36 {
		panic("step: illegal radix: must be in 2..36")
	}
	return stepTables[radix]
}
