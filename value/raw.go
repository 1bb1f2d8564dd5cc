// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math"
	"math/big"
)

var mask64 = new(big.Int).SetUint64(math.MaxUint64)

// Bits returns the 64-bit pattern of a Real, or the low 64 bits of the
// two's complement form of an Int, as a non-negative Int.
func Bits(v Value) (Int, bool) {
	switch v := v.(type) {
	case Real:
		return Int{new(big.Int).SetUint64(math.Float64bits(float64(v)))}, true
	case Int:
		return Int{new(big.Int).And(v.big(), mask64)}, true
	}
	return Int{}, false
}

// FromBits reinterprets the low 64 bits of i as an IEEE-754 double.
// It is the inverse of Bits for Reals.
func FromBits(i Int) Real {
	u := new(big.Int).And(i.big(), mask64).Uint64()
	return Real(math.Float64frombits(u))
}

// rawValue is the value printed in raw mode. A non-negative Int prints
// as itself, even beyond 64 bits.
func rawValue(v Value) Value {
	if i, ok := v.(Int); ok && i.Sign() >= 0 {
		return i
	}
	if b, ok := Bits(v); ok {
		return b
	}
	return v
}
