// Copyright 2025 the constval authors. All rights reserved.

// Package mathutil provides the 128-bit numeric plumbing behind the
// constval operators: saturating addition/subtraction for both
// signedness domains, bit operations on signed patterns, and shifts
// with a defined result for oversized amounts.
package mathutil

import (
	num "github.com/shabbyrobe/go-num"
)

const width = 128

// AddSatU128 returns a+b, clamped to MaxU128 on overflow.
func AddSatU128(a, b num.U128) num.U128 {
	sum := a.Add(b)
	if sum.Cmp(a) < 0 { // wrapped around
		return num.MaxU128
	}
	return sum
}

// SubSatU128 returns a-b, clamped to zero on underflow.
func SubSatU128(a, b num.U128) num.U128 {
	if a.Cmp(b) < 0 {
		return num.U128{}
	}
	return a.Sub(b)
}

// AddSatI128 returns a+b, clamped to MaxI128/MinI128 on overflow.
// I128 wraps like int64, so an overflowing sum of same-signed operands
// comes back with the opposite sign.
func AddSatI128(a, b num.I128) num.I128 {
	sum := a.Add(b)
	if a.Sign() >= 0 && b.Sign() >= 0 && sum.Sign() < 0 {
		return num.MaxI128
	}
	if a.Sign() < 0 && b.Sign() < 0 && sum.Sign() >= 0 {
		return num.MinI128
	}
	return sum
}

// SubSatI128 returns a-b, clamped to MaxI128/MinI128 on overflow.
func SubSatI128(a, b num.I128) num.I128 {
	diff := a.Sub(b)
	if a.Sign() >= 0 && b.Sign() < 0 && diff.Sign() < 0 {
		return num.MaxI128
	}
	if a.Sign() < 0 && b.Sign() >= 0 && diff.Sign() >= 0 {
		return num.MinI128
	}
	return diff
}

// AndI128 returns the bitwise AND of the two signed patterns.
func AndI128(a, b num.I128) num.I128 {
	return a.AsU128().And(b.AsU128()).AsI128()
}

// OrI128 returns the bitwise OR of the two signed patterns.
func OrI128(a, b num.I128) num.I128 {
	return a.AsU128().Or(b.AsU128()).AsI128()
}

// XorI128 returns the bitwise XOR of the two signed patterns.
func XorI128(a, b num.I128) num.I128 {
	return a.AsU128().Xor(b.AsU128()).AsI128()
}

// LshU128 returns x<<n. Amounts of width or more clear the value.
func LshU128(x num.U128, n uint8) num.U128 {
	if uint(n) >= width {
		return num.U128{}
	}
	return x.Lsh(uint(n))
}

// RshU128 returns the logical shift x>>n. Amounts of width or more
// clear the value.
func RshU128(x num.U128, n uint8) num.U128 {
	if uint(n) >= width {
		return num.U128{}
	}
	return x.Rsh(uint(n))
}

// LshI128 returns x<<n on the raw pattern. Amounts of width or more
// clear the value.
func LshI128(x num.I128, n uint8) num.I128 {
	return LshU128(x.AsU128(), n).AsI128()
}

// RshI128 returns the arithmetic shift x>>n: vacated high bits take the
// sign bit. Amounts of width or more decay to the sign fill, 0 or -1.
func RshI128(x num.I128, n uint8) num.I128 {
	if n == 0 {
		return x
	}
	neg := x.Sign() < 0
	if uint(n) >= width {
		if neg {
			return num.I128From64(-1)
		}
		return num.I128{}
	}
	shifted := x.AsU128().Rsh(uint(n))
	if neg {
		shifted = shifted.Or(num.MaxU128.Lsh(width - uint(n)))
	}
	return shifted.AsI128()
}
