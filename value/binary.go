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

// Binary operators.

// To avoid initialization cycles when we refer to the ops from inside
// themselves, we use an init function to initialize the ops.

// KindError reports an operation that is not defined for a kind of value.
type KindError struct {
	Op   string
	Kind Kind
}

func (e *KindError) Error() string {
	return fmt.Sprintf("%s not defined for %s", e.Op, e.Kind)
}

type binaryFn func(u, v Value) Value

type binaryOp struct {
	whichType func(a, b Kind) Kind
	fn        [numKind]binaryFn
}

// binaryArithType returns the maximum of the two kinds,
// so the smaller value is appropriately up-converted.
func binaryArithType(t1, t2 Kind) Kind {
	return max(t1, t2)
}

// maxPowBits bounds the size of an exact integer power; larger results
// are computed in floating point.
const maxPowBits = 1 << 22

// MaxShift is the largest shift count accepted by Lsh and Rsh.
const MaxShift = 1 << 24

func binaryBigIntOp(u Value, op func(*big.Int, *big.Int, *big.Int) *big.Int, v Value) Value {
	i, j := u.(Int), v.(Int)
	z := new(big.Int)
	op(z, i.big(), j.big())
	return Int{z}
}

func binaryRealOp(u Value, op func(x, y float64) float64, v Value) Value {
	return Real(op(float64(u.(Real)), float64(v.(Real))))
}

func binaryComplexOp(u Value, op func(x, y complex128) complex128, v Value) Value {
	return Complex(op(complex128(u.(Complex)), complex128(v.(Complex))))
}

// floorMod is x mod y with the sign of y.
func floorMod(x, y float64) float64 {
	r := math.Mod(x, y)
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}
	return r
}

var (
	add, sub, mul, quo, mod, pow *binaryOp
	and, or, xor, andNot         *binaryOp
	binaryOps                    map[string]*binaryOp
)

func init() {
	add = &binaryOp{
		whichType: binaryArithType,
		fn: [numKind]binaryFn{
			IntKind: func(u, v Value) Value {
				return binaryBigIntOp(u, (*big.Int).Add, v)
			},
			RealKind: func(u, v Value) Value {
				return binaryRealOp(u, func(x, y float64) float64 { return x + y }, v)
			},
			ComplexKind: func(u, v Value) Value {
				return binaryComplexOp(u, func(x, y complex128) complex128 { return x + y }, v)
			},
		},
	}

	sub = &binaryOp{
		whichType: binaryArithType,
		fn: [numKind]binaryFn{
			IntKind: func(u, v Value) Value {
				return binaryBigIntOp(u, (*big.Int).Sub, v)
			},
			RealKind: func(u, v Value) Value {
				return binaryRealOp(u, func(x, y float64) float64 { return x - y }, v)
			},
			ComplexKind: func(u, v Value) Value {
				return binaryComplexOp(u, func(x, y complex128) complex128 { return x - y }, v)
			},
		},
	}

	mul = &binaryOp{
		whichType: binaryArithType,
		fn: [numKind]binaryFn{
			IntKind: func(u, v Value) Value {
				return binaryBigIntOp(u, (*big.Int).Mul, v)
			},
			RealKind: func(u, v Value) Value {
				return binaryRealOp(u, func(x, y float64) float64 { return x * y }, v)
			},
			ComplexKind: func(u, v Value) Value {
				return binaryComplexOp(u, func(x, y complex128) complex128 { return x * y }, v)
			},
		},
	}

	// Integer division is exact when it can be; otherwise the quotient
	// is a Real. Division by zero gives ±Inf or NaN.
	quo = &binaryOp{
		whichType: binaryArithType,
		fn: [numKind]binaryFn{
			IntKind: func(u, v Value) Value {
				i, j := u.(Int).big(), v.(Int).big()
				if j.Sign() == 0 {
					return Real(Float64(u.(Int)) / 0)
				}
				q, r := new(big.Int).QuoRem(i, j, new(big.Int))
				if r.Sign() == 0 {
					return Int{q}
				}
				f, _ := new(big.Rat).SetFrac(i, j).Float64()
				return Real(f)
			},
			RealKind: func(u, v Value) Value {
				return binaryRealOp(u, func(x, y float64) float64 { return x / y }, v)
			},
			ComplexKind: func(u, v Value) Value {
				return binaryComplexOp(u, func(x, y complex128) complex128 { return x / y }, v)
			},
		},
	}

	mod = &binaryOp{
		whichType: binaryArithType,
		fn: [numKind]binaryFn{
			IntKind: func(u, v Value) Value {
				i, j := u.(Int).big(), v.(Int).big()
				if j.Sign() == 0 {
					return Real(math.NaN())
				}
				r := new(big.Int).Rem(i, j)
				if r.Sign() != 0 && r.Sign() != j.Sign() {
					r.Add(r, j)
				}
				return Int{r}
			},
			RealKind: func(u, v Value) Value {
				return binaryRealOp(u, floorMod, v)
			},
		},
	}

	pow = &binaryOp{
		whichType: binaryArithType,
		fn: [numKind]binaryFn{
			IntKind: func(u, v Value) Value {
				i, j := u.(Int).big(), v.(Int).big()
				if j.Sign() < 0 || !j.IsInt64() || j.Int64() > maxPowBits || int64(i.BitLen())*j.Int64() > maxPowBits {
					return Real(math.Pow(Float64(u), Float64(v)))
				}
				return Int{new(big.Int).Exp(i, j, nil)}
			},
			RealKind: func(u, v Value) Value {
				return binaryRealOp(u, math.Pow, v)
			},
			ComplexKind: func(u, v Value) Value {
				return binaryComplexOp(u, cmplx.Pow, v)
			},
		},
	}

	and = &binaryOp{
		whichType: binaryArithType,
		fn: [numKind]binaryFn{
			IntKind: func(u, v Value) Value {
				return binaryBigIntOp(u, (*big.Int).And, v)
			},
		},
	}

	or = &binaryOp{
		whichType: binaryArithType,
		fn: [numKind]binaryFn{
			IntKind: func(u, v Value) Value {
				return binaryBigIntOp(u, (*big.Int).Or, v)
			},
		},
	}

	xor = &binaryOp{
		whichType: binaryArithType,
		fn: [numKind]binaryFn{
			IntKind: func(u, v Value) Value {
				return binaryBigIntOp(u, (*big.Int).Xor, v)
			},
		},
	}

	andNot = &binaryOp{
		whichType: binaryArithType,
		fn: [numKind]binaryFn{
			IntKind: func(u, v Value) Value {
				return binaryBigIntOp(u, (*big.Int).AndNot, v)
			},
		},
	}

	binaryOps = map[string]*binaryOp{
		"+":      add,
		"-":      sub,
		"*":      mul,
		"/":      quo,
		"mod":    mod,
		"**":     pow,
		"and":    and,
		"or":     or,
		"xor":    xor,
		"andnot": andNot,
	}
}

// Binary applies the named operator to u and v after promoting both to
// the larger of their kinds. The names are "+", "-", "*", "/", "mod",
// "**", "and", "or", "xor" and "andnot".
func Binary(u Value, op string, v Value) (Value, error) {
	bop := binaryOps[op]
	if bop == nil {
		return nil, fmt.Errorf("no binary operator %q", op)
	}
	which := bop.whichType(u.Kind(), v.Kind())
	fn := bop.fn[which]
	if fn == nil {
		return nil, &KindError{Op: op, Kind: which}
	}
	return fn(u.toType(which), v.toType(which)), nil
}

// Lsh shifts i left by n bits; a negative n shifts right.
func Lsh(i Int, n int64) (Int, error) {
	if n > MaxShift || n < -MaxShift {
		return Int{}, fmt.Errorf("shift count %d out of range", n)
	}
	if n < 0 {
		return Int{new(big.Int).Rsh(i.big(), uint(-n))}, nil
	}
	return Int{new(big.Int).Lsh(i.big(), uint(n))}, nil
}

// Rsh shifts i right by n bits, rounding toward negative infinity;
// a negative n shifts left.
func Rsh(i Int, n int64) (Int, error) {
	return Lsh(i, -n)
}

// DivMod returns the floored quotient and remainder of u and v.
func DivMod(u, v Value) (q, r Value, err error) {
	r, err = Binary(u, "mod", v)
	if err != nil {
		return nil, nil, err
	}
	d, err := Binary(u, "-", r)
	if err != nil {
		return nil, nil, err
	}
	q, err = Binary(d, "/", v)
	if err != nil {
		return nil, nil, err
	}
	if f, ok := q.(Real); ok {
		if i, ok := ToInt(Real(math.Round(float64(f)))); ok {
			q = i
		}
	}
	return q, r, nil
}
