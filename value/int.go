// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math/big"

	"procalc.org/procalc/config"
)

// Int is an integer of arbitrary size. The *big.Int it wraps is never
// modified after construction.
type Int struct {
	x *big.Int
}

func NewInt(x int64) Int {
	return Int{big.NewInt(x)}
}

// NewBigInt returns an Int holding a copy of x.
func NewBigInt(x *big.Int) Int {
	return Int{new(big.Int).Set(x)}
}

// Big returns a copy of the integer.
func (i Int) Big() *big.Int {
	return new(big.Int).Set(i.big())
}

// big returns the wrapped integer; the zero Int is 0.
func (i Int) big() *big.Int {
	if i.x == nil {
		return bigZero
	}
	return i.x
}

// Int64 returns the value as an int64 and whether it fits.
func (i Int) Int64() (int64, bool) {
	x := i.big()
	return x.Int64(), x.IsInt64()
}

func (i Int) Sign() int {
	return i.big().Sign()
}

func (i Int) Kind() Kind {
	return IntKind
}

func (i Int) String() string {
	return i.big().String()
}

func (i Int) Sprint(conf *config.Config) string {
	return Format(conf, i)
}

func (i Int) toType(which Kind) Value {
	switch which {
	case IntKind:
		return i
	case RealKind:
		return Real(Float64(i))
	case ComplexKind:
		return Complex(complex(Float64(i), 0))
	}
	panic("Int.toType")
}

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)
