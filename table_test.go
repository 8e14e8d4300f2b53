package step

import (
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

// The checked-in tables are derived output; they must agree with a live
// run of the core for every combination the generator covers.
func TestGeneratedTablesMatchLiveComputation(t *testing.T) {
	for radix := uint(2); radix <= 36; radix++ {
		radix := radix
		t.Run(fmt.Sprintf("radix=%d", radix), func(t *testing.T) {
			tt := assert.WrapTB(t)

			live, err := BuildTable(radix)
			tt.MustOK(err)
			tt.MustEqual(radix, live.Radix)

			for _, bits := range Widths {
				for _, signed := range []bool{false, true} {
					tt.MustEqual(live.MinStep(bits, signed), MinStep(radix, bits, signed),
						"min step, %d bits, signed=%v", bits, signed)
					tt.MustEqual(live.MaxStep(bits, signed), MaxStep(radix, bits, signed),
						"max step, %d bits, signed=%v", bits, signed)
				}
			}
		})
	}
}

func TestKnownSteps(t *testing.T) {
	for _, tc := range []struct {
		radix, bits uint
		signed      bool
		min, max    uint
	}{
		{2, 64, false, 64, 64},
		{2, 64, true, 63, 63},
		{2, 128, false, 128, 128},
		{10, 32, true, 9, 10},
		{10, 64, false, 19, 20},
		{10, 64, true, 18, 19},
		{10, 128, false, 38, 39},
		{16, 64, false, 16, 16},
		{16, 64, true, 15, 16},
		{36, 8, false, 1, 2},
		{36, 128, true, 24, 25},
	} {
		t.Run(fmt.Sprintf("%d/%d/%v", tc.radix, tc.bits, tc.signed), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.min, MinStep(tc.radix, tc.bits, tc.signed))
			tt.MustEqual(tc.max, MaxStep(tc.radix, tc.bits, tc.signed))
		})
	}
}

func TestStepFallbackForUnsupportedWidths(t *testing.T) {
	tt := assert.WrapTB(t)

	for _, radix := range []uint{2, 10, 16, 36} {
		for _, bits := range []uint{0, 1, 7, 24, 48, 63, 129, 256} {
			for _, signed := range []bool{false, true} {
				tt.MustEqual(uint(FallbackStep), MinStep(radix, bits, signed),
					"radix %d width %d signed=%v", radix, bits, signed)
				tt.MustEqual(uint(FallbackStep), MaxStep(radix, bits, signed),
					"radix %d width %d signed=%v", radix, bits, signed)
			}
		}
	}

	var zero Table
	tt.MustEqual(uint(FallbackStep), zero.MinStep(24, false))
	tt.MustEqual(uint(FallbackStep), zero.MaxStep(24, false))
}

func TestStepPanicsOnIllegalRadix(t *testing.T) {
	for _, radix := range []uint{0, 1, 37} {
		radix := radix
		t.Run(fmt.Sprintf("radix=%d", radix), func(t *testing.T) {
			tt := assert.WrapTB(t)
			defer func() {
				tt.MustAssert(recover() != nil, "radix %d must panic", radix)
			}()
			MinStep(radix, 64, false)
		})
	}
}

func TestBuildTableIllegalRadix(t *testing.T) {
	tt := assert.WrapTB(t)

	for _, radix := range []uint{0, 1, 37, 100} {
		_, err := BuildTable(radix)
		tt.MustAssert(err != nil, "radix %d must be rejected", radix)
	}
}

// The invariant every table row must satisfy: min <= max <= min+1, and the
// steps never grow as the radix does for a fixed width.
func TestTableInvariants(t *testing.T) {
	tt := assert.WrapTB(t)

	for _, bits := range Widths {
		for _, signed := range []bool{false, true} {
			lastMin := MinStep(2, bits, signed)
			for radix := uint(2); radix <= 36; radix++ {
				min := MinStep(radix, bits, signed)
				max := MaxStep(radix, bits, signed)
				tt.MustAssert(max == min || max == min+1,
					"radix %d width %d signed=%v: (%d, %d)", radix, bits, signed, min, max)
				tt.MustAssert(min <= lastMin,
					"radix %d width %d signed=%v: min %d grew past %d", radix, bits, signed, min, lastMin)
				lastMin = min
			}
		}
	}
}
