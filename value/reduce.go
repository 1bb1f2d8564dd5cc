// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "math"

// Reductions over a list of values, in the order they were entered.

// Sum adds the values; Ints stay exact. The empty sum is 0.
func Sum(vals []Value) (Value, error) {
	return fold(vals, "+", NewInt(0))
}

// Product multiplies the values; Ints stay exact. The empty product is 1.
func Product(vals []Value) (Value, error) {
	return fold(vals, "*", NewInt(1))
}

func fold(vals []Value, op string, acc Value) (Value, error) {
	var err error
	for _, v := range vals {
		acc, err = Binary(acc, op, v)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// Mean returns the arithmetic mean as a Real, or a Complex if any value
// is complex.
func Mean(vals []Value) (Value, error) {
	if len(vals) == 0 {
		return Real(math.NaN()), nil
	}
	s, err := Sum(vals)
	if err != nil {
		return nil, err
	}
	n := float64(len(vals))
	if c, ok := s.(Complex); ok {
		return c / Complex(complex(n, 0)), nil
	}
	return Real(Float64(s) / n), nil
}

// GeoMean returns the geometric mean of real values. It is NaN if any
// value is negative.
func GeoMean(vals []Value) (Value, error) {
	if len(vals) == 0 {
		return Real(math.NaN()), nil
	}
	logSum := 0.0
	for _, v := range vals {
		if v.Kind() == ComplexKind {
			return nil, &KindError{Op: "gmean", Kind: ComplexKind}
		}
		logSum += math.Log(Float64(v))
	}
	return Real(math.Exp(logSum / float64(len(vals)))), nil
}

// StdDev returns the population standard deviation of real values.
func StdDev(vals []Value) (Value, error) {
	if len(vals) == 0 {
		return Real(math.NaN()), nil
	}
	mean := 0.0
	for _, v := range vals {
		if v.Kind() == ComplexKind {
			return nil, &KindError{Op: "sdev", Kind: ComplexKind}
		}
		mean += Float64(v)
	}
	n := float64(len(vals))
	mean /= n
	sq := 0.0
	for _, v := range vals {
		d := Float64(v) - mean
		sq += d * d
	}
	return Real(math.Sqrt(sq / n)), nil
}
