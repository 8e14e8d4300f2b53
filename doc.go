/*
Package step computes digit step sizes for radixes 2 through 36: for a
fixed-width integer type, the number of digits a parser or formatter can
consume per multiply-accumulate step without checking for overflow after
every single digit.

For each radix and each (width, signedness) pair the package exposes two
counts. MinStep is the number of digits guaranteed never to overflow the
type; MaxStep is the largest number of digits that might still fit
depending on the actual digit values. MaxStep is either MinStep or
MinStep+1, and the two are equal exactly when the type's bound sits on a
power of the radix:

	step.MinStep(10, 64, false) // 19: 19 decimal digits always fit a uint64
	step.MaxStep(10, 64, false) // 20: a 20-digit string might still fit
	step.MinStep(16, 64, false) // 16: 16^16 == 2^64, no 17th hex digit ever fits

The tables are precomputed by cmd/stepgen and checked in; PowerBound is
the exact core behind them and can be called directly for other bounds.
Floating-point logarithms are used only to seed the search. The final
classification is always an exact integer comparison, performed in 256
bits so that verification against a 128-bit bound cannot wrap.

ParseUint64 demonstrates the intended consumer: a uint64 parser that
batches digits by the step table and checks overflow once per batch.
*/
package step
