// Copyright 2025 the constval authors. All rights reserved.

// Package constval implements the constant operand value used throughout
// the instruction encoder: a 128-bit quantity that is either unsigned or
// signed (two's complement), together with the arithmetic, bitwise,
// shift, comparison, parsing, formatting, and bit-field-extraction
// operations an encoder needs.
//
// A Value is a closed two-case variant: Unsigned or Signed. The variant
// is fixed at construction and every operation returns a new value, so
// values are plain immutable data and can be copied and shared freely.
//
// Binary operators take the left operand's variant as authoritative: the
// right operand is first widened into the left domain with AsU128 or
// AsI128. Those widenings are bit-pattern reinterpretations, not checked
// conversions, so crossing the half-range boundary changes the
// mathematical value on purpose. Callers mixing signedness rely on that.
package constval

import (
	"fmt"

	num "github.com/shabbyrobe/go-num"
)

// Value is a constant operand: a 128-bit magnitude that is either
// Unsigned or Signed. The two implementations are the only ones; every
// operation handles both.
//
// Add and Sub saturate at the bounds of the left operand's domain.
// Mul, Div, and Rem use native 128-bit wraparound/truncation instead,
// and Div/Rem panic on a zero divisor. The asymmetry is deliberate:
// existing encodings depend on it, so none of these may be "fixed" to
// agree with the others.
type Value interface {
	fmt.Stringer
	fmt.GoStringer

	// IsZero reports whether the magnitude is zero, for either variant.
	IsZero() bool

	// AsU128 returns the 128-bit pattern read as unsigned. For a
	// negative Signed value this is the two's-complement
	// reinterpretation, not an absolute value.
	AsU128() num.U128
	// AsI128 returns the 128-bit pattern read as signed. For an
	// Unsigned value with the top bit set this flips the mathematical
	// sign.
	AsI128() num.I128

	// Add returns v+other, saturating at the domain bounds.
	Add(other Value) Value
	// Sub returns v-other, saturating at the domain bounds.
	Sub(other Value) Value
	// Mul returns v*other with native 128-bit wraparound.
	Mul(other Value) Value
	// Div returns v/other, truncated toward zero. Panics if other's
	// widened magnitude is zero.
	Div(other Value) Value
	// Rem returns v%other. Panics if other's widened magnitude is zero.
	Rem(other Value) Value
	// Neg returns -v. The result is always Signed: negating an
	// Unsigned value reinterprets its magnitude as signed first.
	// Negating the minimum Signed value is undefined.
	Neg() Value

	// And, Or, and Xor operate on the full 128-bit pattern; the result
	// keeps the left operand's variant.
	And(other Value) Value
	Or(other Value) Value
	Xor(other Value) Value

	// Shl shifts left by n bits. Amounts of 128 or more clear the
	// value.
	Shl(n uint8) Value
	// Shr shifts right by n bits: logical on Unsigned, arithmetic
	// (sign-filling) on Signed. Amounts of 128 or more decay to the
	// fill bit.
	Shr(n uint8) Value

	// Apply extracts the bit field described by f. See FieldSelector.
	Apply(f FieldSelector) Value

	// Equal reports whether other has the same variant and magnitude.
	// It is always false across variants; widen one side explicitly to
	// compare mixed values.
	Equal(other Value) bool
	// Cmp returns -1, 0, or +1 ordering v against other within one
	// variant. ok is false when the variants differ.
	Cmp(other Value) (res int, ok bool)

	isValue()
}

// Unsigned is the Value variant holding an unsigned 128-bit magnitude.
type Unsigned struct {
	mag num.U128
}

// Signed is the Value variant holding a signed (two's-complement)
// 128-bit magnitude.
type Signed struct {
	mag num.I128
}

var (
	_ Value = Unsigned{}
	_ Value = Signed{}
)

func (Unsigned) isValue() {}
func (Signed) isValue()   {}

// NewUnsigned returns an Unsigned value for the given magnitude.
func NewUnsigned(mag num.U128) Unsigned {
	return Unsigned{mag: mag}
}

// NewSigned returns a Signed value for the given magnitude.
func NewSigned(mag num.I128) Signed {
	return Signed{mag: mag}
}

// FromUint8 returns an Unsigned value, zero-extending x.
func FromUint8(x uint8) Unsigned { return NewUnsigned(num.U128From8(x)) }

// FromUint16 returns an Unsigned value, zero-extending x.
func FromUint16(x uint16) Unsigned { return NewUnsigned(num.U128From16(x)) }

// FromUint32 returns an Unsigned value, zero-extending x.
func FromUint32(x uint32) Unsigned { return NewUnsigned(num.U128From32(x)) }

// FromUint64 returns an Unsigned value, zero-extending x.
func FromUint64(x uint64) Unsigned { return NewUnsigned(num.U128From64(x)) }

// FromU128 returns an Unsigned value for x.
func FromU128(x num.U128) Unsigned { return NewUnsigned(x) }

// FromInt8 returns a Signed value, sign-extending x.
func FromInt8(x int8) Signed { return NewSigned(num.I128From8(x)) }

// FromInt16 returns a Signed value, sign-extending x.
func FromInt16(x int16) Signed { return NewSigned(num.I128From16(x)) }

// FromInt32 returns a Signed value, sign-extending x.
func FromInt32(x int32) Signed { return NewSigned(num.I128From32(x)) }

// FromInt64 returns a Signed value, sign-extending x.
func FromInt64(x int64) Signed { return NewSigned(num.I128From64(x)) }

// FromI128 returns a Signed value for x.
func FromI128(x num.I128) Signed { return NewSigned(x) }

// IsZero reports whether the magnitude is zero.
func (v Unsigned) IsZero() bool { return v.mag.IsZero() }

// IsZero reports whether the magnitude is zero.
func (v Signed) IsZero() bool { return v.mag.IsZero() }

// AsU128 returns the magnitude.
func (v Unsigned) AsU128() num.U128 { return v.mag }

// AsI128 reinterprets the magnitude as signed. Magnitudes of 2^127 and
// above come out negative.
func (v Unsigned) AsI128() num.I128 { return v.mag.AsI128() }

// AsU128 reinterprets the magnitude as unsigned. Negative magnitudes
// come out as their two's-complement bit pattern, not an absolute value.
func (v Signed) AsU128() num.U128 { return v.mag.AsU128() }

// AsI128 returns the magnitude.
func (v Signed) AsI128() num.I128 { return v.mag }

// Equal reports whether other is Unsigned with the same magnitude.
func (v Unsigned) Equal(other Value) bool {
	o, ok := other.(Unsigned)
	return ok && v.mag.Equal(o.mag)
}

// Equal reports whether other is Signed with the same magnitude.
func (v Signed) Equal(other Value) bool {
	o, ok := other.(Signed)
	return ok && v.mag.Equal(o.mag)
}

// Cmp orders two Unsigned values. ok is false if other is not Unsigned.
func (v Unsigned) Cmp(other Value) (res int, ok bool) {
	o, ok := other.(Unsigned)
	if !ok {
		return 0, false
	}
	return v.mag.Cmp(o.mag), true
}

// Cmp orders two Signed values. ok is false if other is not Signed.
func (v Signed) Cmp(other Value) (res int, ok bool) {
	o, ok := other.(Signed)
	if !ok {
		return 0, false
	}
	return v.mag.Cmp(o.mag), true
}

// String renders the value for debug output, like "U96(42)".
// The "96" label predates the widening of the magnitude to 128 bits and
// is kept verbatim: it is part of the observable text format.
func (v Unsigned) String() string {
	return "U96(" + v.mag.String() + ")"
}

// String renders the value for debug output, like "I96(-7)". See
// Unsigned.String for the "96" label.
func (v Signed) String() string {
	return "I96(" + v.mag.String() + ")"
}

// GoString returns debug string representation.
func (v Unsigned) GoString() string {
	return "constval.NewUnsigned(" + v.mag.String() + ")"
}

// GoString returns debug string representation.
func (v Signed) GoString() string {
	return "constval.NewSigned(" + v.mag.String() + ")"
}
