// Copyright 2025 the constval authors. All rights reserved.

package constval

import (
	"math/big"
	"strconv"

	num "github.com/shabbyrobe/go-num"
)

// ParseError describes a failed literal conversion. Err is one of the
// strconv sentinels: ErrSyntax for empty input or a digit invalid for
// the base, ErrRange for a magnitude outside the variant's 128-bit
// range.
type ParseError struct {
	Input string
	Base  int
	Err   error
}

func (e *ParseError) Error() string {
	return "constval: parsing " + strconv.Quote(e.Input) +
		" in base " + strconv.Itoa(e.Base) + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseUnsigned parses a digit string in the given base (2 to 36,
// letters in either case) into an Unsigned value. An optional leading
// "+" is allowed; a "-" is not a valid digit for the unsigned form.
// Returns a *ParseError for malformed or out-of-range input.
// Panics if base is outside [2, 36].
func ParseUnsigned(s string, base int) (Value, error) {
	mag, err := parseBig(s, base)
	if err != nil {
		return nil, err
	}
	if mag.Sign() < 0 {
		return nil, &ParseError{Input: s, Base: base, Err: strconv.ErrSyntax}
	}
	x, ok := num.U128FromBigInt(mag)
	if !ok {
		return nil, &ParseError{Input: s, Base: base, Err: strconv.ErrRange}
	}
	return NewUnsigned(x), nil
}

// ParseSigned parses a digit string with an optional sign prefix in the
// given base (2 to 36) into a Signed value. Returns a *ParseError for
// malformed or out-of-range input. Panics if base is outside [2, 36].
func ParseSigned(s string, base int) (Value, error) {
	mag, err := parseBig(s, base)
	if err != nil {
		return nil, err
	}
	x, ok := num.I128FromBigInt(mag)
	if !ok {
		return nil, &ParseError{Input: s, Base: base, Err: strconv.ErrRange}
	}
	return NewSigned(x), nil
}

func parseBig(s string, base int) (*big.Int, error) {
	if base < 2 || base > 36 {
		panic("constval: parse base must be in [2, 36]")
	}
	mag, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, &ParseError{Input: s, Base: base, Err: strconv.ErrSyntax}
	}
	return mag, nil
}
