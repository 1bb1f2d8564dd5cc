// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"math"
	"math/big"
	"math/cmplx"
)

// Unary operators.

type unaryFn func(Value) Value

type unaryOp struct {
	fn [numKind]unaryFn
}

// mathOp builds an operator from a float function and its complex
// counterpart. Ints are computed as Reals.
func mathOp(f func(float64) float64, c func(complex128) complex128) *unaryOp {
	op := &unaryOp{
		fn: [numKind]unaryFn{
			IntKind: func(v Value) Value {
				return Real(f(Float64(v)))
			},
			RealKind: func(v Value) Value {
				return Real(f(float64(v.(Real))))
			},
		},
	}
	if c != nil {
		op.fn[ComplexKind] = func(v Value) Value {
			return Complex(c(complex128(v.(Complex))))
		}
	}
	return op
}

// roundOp builds floor or ceil. A finite result is an Int.
func roundOp(f func(float64) float64) *unaryOp {
	return &unaryOp{
		fn: [numKind]unaryFn{
			IntKind: func(v Value) Value { return v },
			RealKind: func(v Value) Value {
				r := Real(f(float64(v.(Real))))
				if i, ok := ToInt(r); ok {
					return i
				}
				return r
			},
		},
	}
}

var (
	unaryMinus, unaryAbs, unaryNot, unarySqrt *unaryOp
	unaryOps                                   map[string]*unaryOp
)

func init() {
	unaryMinus = &unaryOp{
		fn: [numKind]unaryFn{
			IntKind: func(v Value) Value {
				return Int{new(big.Int).Neg(v.(Int).big())}
			},
			RealKind: func(v Value) Value {
				return -v.(Real)
			},
			ComplexKind: func(v Value) Value {
				return -v.(Complex)
			},
		},
	}

	unaryAbs = &unaryOp{
		fn: [numKind]unaryFn{
			IntKind: func(v Value) Value {
				return Int{new(big.Int).Abs(v.(Int).big())}
			},
			RealKind: func(v Value) Value {
				return Real(math.Abs(float64(v.(Real))))
			},
			ComplexKind: func(v Value) Value {
				return Real(cmplx.Abs(complex128(v.(Complex))))
			},
		},
	}

	unaryNot = &unaryOp{
		fn: [numKind]unaryFn{
			IntKind: func(v Value) Value {
				return Int{new(big.Int).Not(v.(Int).big())}
			},
		},
	}

	// The square root of a negative number is imaginary.
	unarySqrt = &unaryOp{
		fn: [numKind]unaryFn{
			IntKind: func(v Value) Value {
				return unarySqrt.fn[RealKind](Real(Float64(v)))
			},
			RealKind: func(v Value) Value {
				f := float64(v.(Real))
				if f < 0 {
					return Complex(cmplx.Sqrt(complex(f, 0)))
				}
				return Real(math.Sqrt(f))
			},
			ComplexKind: func(v Value) Value {
				return Complex(cmplx.Sqrt(complex128(v.(Complex))))
			},
		},
	}

	unaryOps = map[string]*unaryOp{
		"neg":   unaryMinus,
		"abs":   unaryAbs,
		"not":   unaryNot,
		"sqrt":  unarySqrt,
		"sin":   mathOp(math.Sin, cmplx.Sin),
		"cos":   mathOp(math.Cos, cmplx.Cos),
		"tan":   mathOp(math.Tan, cmplx.Tan),
		"asin":  mathOp(math.Asin, cmplx.Asin),
		"acos":  mathOp(math.Acos, cmplx.Acos),
		"atan":  mathOp(math.Atan, cmplx.Atan),
		"ln":    mathOp(math.Log, cmplx.Log),
		"lg":    mathOp(math.Log10, cmplx.Log10),
		"exp":   mathOp(math.Exp, cmplx.Exp),
		"floor": roundOp(math.Floor),
		"ceil":  roundOp(math.Ceil),
	}
}

// Unary applies the named operator to v.
func Unary(op string, v Value) (Value, error) {
	uop := unaryOps[op]
	if uop == nil {
		return nil, fmt.Errorf("no unary operator %q", op)
	}
	fn := uop.fn[v.Kind()]
	if fn == nil {
		return nil, &KindError{Op: op, Kind: v.Kind()}
	}
	return fn(v), nil
}
