// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value implements the numeric values held on the calculator
// stack and the codec that reads and prints them in bases 2, 8, 10
// and 16.
package value // import "procalc.org/procalc/value"

import (
	"fmt"
	"math"
	"math/big"

	"procalc.org/procalc/config"
)

// Value is an immutable number: an Int, a Real or a Complex.
type Value interface {
	// String prints the value in decimal, ignoring any configuration.
	String() string

	// Sprint prints the value using the base, precision and mode of conf.
	Sprint(conf *config.Config) string

	// Kind reports which numeric domain the value belongs to.
	Kind() Kind

	toType(Kind) Value
}

// Kind orders the numeric domains; a binary operation is carried out in
// the larger of its operands' kinds.
type Kind int

const (
	IntKind Kind = iota
	RealKind
	ComplexKind
	numKind
)

func (k Kind) String() string {
	switch k {
	case IntKind:
		return "int"
	case RealKind:
		return "real"
	case ComplexKind:
		return "complex"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseError reports text that is not a number.
type ParseError struct {
	Text string
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bad number %q: %s", e.Text, e.Msg)
}

func parseErrorf(text, format string, args ...interface{}) *ParseError {
	return &ParseError{Text: text, Msg: fmt.Sprintf(format, args...)}
}

// debugConf prints plain decimal.
var debugConf = &config.Config{}

// Equal reports whether u and v denote the same number, regardless of
// kind. NaN is not equal to anything.
func Equal(u, v Value) bool {
	which := max(u.Kind(), v.Kind())
	switch which {
	case IntKind:
		return u.(Int).big().Cmp(v.(Int).big()) == 0
	case RealKind:
		return u.toType(RealKind).(Real) == v.toType(RealKind).(Real)
	default:
		return u.toType(ComplexKind).(Complex) == v.toType(ComplexKind).(Complex)
	}
}

// IsIntegral reports whether v has an exact integer value.
func IsIntegral(v Value) bool {
	_, ok := ToInt(v)
	return ok
}

// ToInt returns v as an Int if it is exactly representable as one.
func ToInt(v Value) (Int, bool) {
	switch v := v.(type) {
	case Int:
		return v, true
	case Real:
		f := float64(v)
		if math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
			return Int{}, false
		}
		z, _ := big.NewFloat(f).Int(nil)
		return Int{z}, true
	case Complex:
		if imag(v) != 0 {
			return Int{}, false
		}
		return ToInt(Real(real(v)))
	}
	return Int{}, false
}

// ToScalar returns v as an Int or a Real, failing for a Complex with a
// non-zero imaginary part.
func ToScalar(v Value) (Value, bool) {
	if c, ok := v.(Complex); ok {
		if imag(c) != 0 {
			return nil, false
		}
		return Real(real(c)), true
	}
	return v, true
}

// Float64 returns v as a float64, ignoring any imaginary part.
func Float64(v Value) float64 {
	switch v := v.(type) {
	case Int:
		f, _ := new(big.Float).SetInt(v.big()).Float64()
		return f
	case Real:
		return float64(v)
	case Complex:
		return real(v)
	}
	return math.NaN()
}
