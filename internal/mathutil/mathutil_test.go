// Copyright 2025 the constval authors. All rights reserved.

package mathutil

import (
	"fmt"
	"math"
	"testing"

	num "github.com/shabbyrobe/go-num"
	"github.com/stretchr/testify/assert"
)

func TestAddSatU128(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b, res num.U128
	}{
		{num.U128From64(2), num.U128From64(3), num.U128From64(5)},
		{num.MaxU128, num.U128From64(1), num.MaxU128},
		{num.MaxU128, num.MaxU128, num.MaxU128},
		{num.MaxU128.Sub(num.U128From64(1)), num.U128From64(1), num.MaxU128},
		{num.U128{}, num.U128{}, num.U128{}},
		{num.U128From64(math.MaxUint64), num.U128From64(1), num.U128FromRaw(1, 0)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, AddSatU128(test.a, test.b))
		})
	}
}

func TestSubSatU128(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b, res num.U128
	}{
		{num.U128From64(5), num.U128From64(3), num.U128From64(2)},
		{num.U128From64(3), num.U128From64(5), num.U128{}},
		{num.U128{}, num.MaxU128, num.U128{}},
		{num.MaxU128, num.MaxU128, num.U128{}},
		{num.U128FromRaw(1, 0), num.U128From64(1), num.U128From64(math.MaxUint64)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, SubSatU128(test.a, test.b))
		})
	}
}

func TestAddSatI128(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b, res num.I128
	}{
		{num.I128From64(2), num.I128From64(-3), num.I128From64(-1)},
		{num.MaxI128, num.I128From64(1), num.MaxI128},
		{num.MinI128, num.I128From64(-1), num.MinI128},
		{num.MaxI128, num.MinI128, num.I128From64(-1)},
		{num.MinI128, num.MaxI128, num.I128From64(-1)},
		{num.I128From64(-1), num.I128From64(1), num.I128{}},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, AddSatI128(test.a, test.b))
		})
	}
}

func TestSubSatI128(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b, res num.I128
	}{
		{num.I128From64(-5), num.I128From64(-7), num.I128From64(2)},
		{num.MinI128, num.I128From64(1), num.MinI128},
		{num.MaxI128, num.I128From64(-1), num.MaxI128},
		{num.I128From64(0), num.MinI128, num.MaxI128},
		{num.I128From64(-1), num.MinI128, num.MaxI128},
		{num.I128From64(-2), num.MinI128, num.MaxI128.Sub(num.I128From64(1))},
		{num.MinI128, num.I128From64(0), num.MinI128},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, SubSatI128(test.a, test.b))
		})
	}
}

func TestShiftsU128(t *testing.T) {
	a := assert.New(t)
	one := num.U128From64(1)
	a.Equal(num.U128From64(0x10), RshU128(num.U128From64(0x100), 4))
	a.Equal(num.U128FromRaw(1<<63, 0), LshU128(one, 127))
	a.Equal(one, RshU128(num.U128FromRaw(1<<63, 0), 127))
	a.Equal(num.U128{}, LshU128(one, 128))
	a.Equal(num.U128{}, RshU128(num.MaxU128, 128))
	a.Equal(num.U128{}, RshU128(num.MaxU128, 200))
	a.Equal(num.U128From64(5), RshU128(num.U128From64(5), 0))
}

func TestRshI128(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x   num.I128
		n   uint8
		res num.I128
	}{
		{num.I128From64(8), 1, num.I128From64(4)},
		{num.I128From64(-8), 1, num.I128From64(-4)},
		{num.I128From64(-1), 127, num.I128From64(-1)},
		{num.MinI128, 127, num.I128From64(-1)},
		{num.MinI128, 1, num.MinI128.Quo(num.I128From64(2))},
		{num.I128From64(-1), 200, num.I128From64(-1)},
		{num.I128From64(5), 200, num.I128{}},
		{num.I128From64(-5), 0, num.I128From64(-5)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, RshI128(test.x, test.n))
		})
	}
}

func TestBitOpsI128(t *testing.T) {
	a := assert.New(t)
	minusOne := num.I128From64(-1)
	a.Equal(num.I128From64(0xFF), AndI128(minusOne, num.I128From64(0xFF)))
	a.Equal(minusOne, OrI128(minusOne, num.I128From64(0xF0)))
	a.Equal(num.I128{}, XorI128(minusOne, minusOne))
	a.Equal(num.I128From64(-0x100), XorI128(minusOne, num.I128From64(0xFF)))
}
