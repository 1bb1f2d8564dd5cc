// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Literal returns text that Parse reads back as v, of the same kind.
// Infinities and NaN have no literal form.
func Literal(v Value) (string, error) {
	switch v := v.(type) {
	case Int:
		return v.big().String(), nil
	case Real:
		return realLiteral(float64(v))
	case Complex:
		re, err := realLiteral(real(v))
		if err != nil {
			return "", err
		}
		im, err := realLiteral(imag(v))
		if err != nil {
			return "", err
		}
		if !strings.HasPrefix(im, "-") {
			im = "+" + im
		}
		return re + im + "j", nil
	}
	return "", fmt.Errorf("no literal for %T", v)
}

func realLiteral(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%s has no literal form", Real(f))
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s, nil
}
