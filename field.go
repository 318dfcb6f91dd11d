// Copyright 2025 the constval authors. All rights reserved.

package constval

import (
	num "github.com/shabbyrobe/go-num"

	"github.com/encodekit/constval/internal/mathutil"
)

// FieldSelector locates a bit field inside an encoded value: Offset is
// the bit position of the field's least significant bit, Length its
// width in bits. Apply performs no validation; selectors with
// Offset+Length > 128 or Length == 0 are caller errors and yield
// implementation-defined results.
type FieldSelector struct {
	Offset uint8
	Length uint8
}

// fieldMask returns (1 << (Length-1)) - 1.
//
// Note the Length-1: the mask keeps one bit fewer than the selector
// declares, so a Length-8 field extracts only 7 bits. Almost certainly
// an off-by-one (a full mask would shift by Length), but downstream
// encodings depend on the current output, so the formula is kept as is.
// TestApplyMaskWidth pins this behavior; a future fix changes this one
// line.
func fieldMask(f FieldSelector) num.U128 {
	one := num.U128From64(1)
	return mathutil.LshU128(one, f.Length-1).Sub(one)
}

// Apply extracts the field described by f: (v >> f.Offset) masked to
// the field width. The shift keeps the variant, and the AND widens the
// unsigned mask into it, so the result variant matches v's.
func (v Unsigned) Apply(f FieldSelector) Value {
	return v.Shr(f.Offset).And(NewUnsigned(fieldMask(f)))
}

// Apply extracts the field described by f. See Unsigned.Apply.
func (v Signed) Apply(f FieldSelector) Value {
	return v.Shr(f.Offset).And(NewUnsigned(fieldMask(f)))
}
