// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"strconv"

	"procalc.org/procalc/config"
)

// Real is an IEEE-754 double.
type Real float64

func (r Real) Kind() Kind {
	return RealKind
}

func (r Real) String() string {
	return strconv.FormatFloat(float64(r), 'g', -1, 64)
}

func (r Real) Sprint(conf *config.Config) string {
	return Format(conf, r)
}

func (r Real) toType(which Kind) Value {
	switch which {
	case RealKind:
		return r
	case ComplexKind:
		return Complex(complex(float64(r), 0))
	}
	panic(fmt.Sprintf("Real.toType %s", which))
}

// Complex is a pair of Reals.
type Complex complex128

func (c Complex) Kind() Kind {
	return ComplexKind
}

func (c Complex) String() string {
	return c.Sprint(debugConf)
}

func (c Complex) Sprint(conf *config.Config) string {
	return Format(conf, c)
}

func (c Complex) toType(which Kind) Value {
	if which == ComplexKind {
		return c
	}
	panic(fmt.Sprintf("Complex.toType %s", which))
}
