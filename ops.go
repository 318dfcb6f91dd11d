// Copyright 2025 the constval authors. All rights reserved.

package constval

import (
	"github.com/encodekit/constval/internal/mathutil"
)

// Add returns v+other, saturating at MaxU128. The right operand is
// widened with AsU128 first, so a negative Signed operand arrives as a
// large unsigned magnitude.
func (v Unsigned) Add(other Value) Value {
	return NewUnsigned(mathutil.AddSatU128(v.mag, other.AsU128()))
}

// Add returns v+other, saturating at the signed 128-bit bounds.
func (v Signed) Add(other Value) Value {
	return NewSigned(mathutil.AddSatI128(v.mag, other.AsI128()))
}

// Sub returns v-other, saturating at zero.
func (v Unsigned) Sub(other Value) Value {
	return NewUnsigned(mathutil.SubSatU128(v.mag, other.AsU128()))
}

// Sub returns v-other, saturating at the signed 128-bit bounds.
func (v Signed) Sub(other Value) Value {
	return NewSigned(mathutil.SubSatI128(v.mag, other.AsI128()))
}

// Mul returns v*other with native 128-bit wraparound. Unlike Add and
// Sub it does not saturate; encodings depend on the wrapped bits.
func (v Unsigned) Mul(other Value) Value {
	return NewUnsigned(v.mag.Mul(other.AsU128()))
}

// Mul returns v*other with native 128-bit wraparound.
func (v Signed) Mul(other Value) Value {
	return NewSigned(v.mag.Mul(other.AsI128()))
}

// Div returns v/other. Panics if the widened divisor is zero; callers
// must validate divisors upstream.
func (v Unsigned) Div(other Value) Value {
	return NewUnsigned(v.mag.Quo(other.AsU128()))
}

// Div returns v/other, truncated toward zero. Panics if the widened
// divisor is zero.
func (v Signed) Div(other Value) Value {
	return NewSigned(v.mag.Quo(other.AsI128()))
}

// Rem returns v%other. Panics if the widened divisor is zero.
func (v Unsigned) Rem(other Value) Value {
	return NewUnsigned(v.mag.Rem(other.AsU128()))
}

// Rem returns v%other, with the sign of the dividend. Panics if the
// widened divisor is zero.
func (v Signed) Rem(other Value) Value {
	return NewSigned(v.mag.Rem(other.AsI128()))
}

// Neg reinterprets the magnitude as signed and negates it. Negating an
// Unsigned value always produces a Signed one.
func (v Unsigned) Neg() Value {
	return NewSigned(v.mag.AsI128().Neg())
}

// Neg returns -v. Negating the minimum signed value is undefined; here
// it wraps back to the minimum.
func (v Signed) Neg() Value {
	return NewSigned(v.mag.Neg())
}

// And returns the bitwise AND over the full 128-bit pattern.
func (v Unsigned) And(other Value) Value {
	return NewUnsigned(v.mag.And(other.AsU128()))
}

// And returns the bitwise AND over the full 128-bit pattern.
func (v Signed) And(other Value) Value {
	return NewSigned(mathutil.AndI128(v.mag, other.AsI128()))
}

// Or returns the bitwise OR over the full 128-bit pattern.
func (v Unsigned) Or(other Value) Value {
	return NewUnsigned(v.mag.Or(other.AsU128()))
}

// Or returns the bitwise OR over the full 128-bit pattern.
func (v Signed) Or(other Value) Value {
	return NewSigned(mathutil.OrI128(v.mag, other.AsI128()))
}

// Xor returns the bitwise XOR over the full 128-bit pattern.
func (v Unsigned) Xor(other Value) Value {
	return NewUnsigned(v.mag.Xor(other.AsU128()))
}

// Xor returns the bitwise XOR over the full 128-bit pattern.
func (v Signed) Xor(other Value) Value {
	return NewSigned(mathutil.XorI128(v.mag, other.AsI128()))
}

// Shl shifts left by n bits. Amounts of 128 or more clear the value.
func (v Unsigned) Shl(n uint8) Value {
	return NewUnsigned(mathutil.LshU128(v.mag, n))
}

// Shl shifts the raw pattern left by n bits. Amounts of 128 or more
// clear the value.
func (v Signed) Shl(n uint8) Value {
	return NewSigned(mathutil.LshI128(v.mag, n))
}

// Shr is the logical right shift: vacated bits are zero-filled.
// Amounts of 128 or more clear the value.
func (v Unsigned) Shr(n uint8) Value {
	return NewUnsigned(mathutil.RshU128(v.mag, n))
}

// Shr is the arithmetic right shift: vacated bits take the sign bit.
// Amounts of 128 or more decay to the sign fill, 0 or -1.
func (v Signed) Shr(n uint8) Value {
	return NewSigned(mathutil.RshI128(v.mag, n))
}
