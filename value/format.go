// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"procalc.org/procalc/config"
)

// maxFracDigits bounds fraction extraction when no precision is set.
// Every double terminates within this many digits in bases 2, 8 and 16.
const maxFracDigits = 1100

// Prefix returns the literal prefix for base.
func Prefix(base int) string {
	switch base {
	case 2:
		return "0b"
	case 8:
		return "0o"
	case 16:
		return "0x"
	}
	return ""
}

// Format renders v using the base, precision and mode of conf.
// A nil conf prints plain decimal.
func Format(conf *config.Config, v Value) string {
	if conf == nil {
		conf = debugConf
	}
	if c, ok := v.(Complex); ok {
		return formatComplex(conf, c)
	}
	if conf.Mode() == config.Raw {
		v = rawValue(v)
	}
	return formatScalar(conf, v)
}

// formatComplex prints <real><sign><imag>j. In raw mode both parts
// show their bit patterns.
func formatComplex(conf *config.Config, c Complex) string {
	re, im := real(c), imag(c)
	if conf.Mode() == config.Raw {
		return formatScalar(conf, rawValue(Real(re))) + "+" + formatScalar(conf, rawValue(Real(im))) + "j"
	}
	sign := "+"
	if im < 0 {
		sign = "-"
		im = -im
	}
	return formatScalar(conf, Real(re)) + sign + formatScalar(conf, Real(im)) + "j"
}

func formatScalar(conf *config.Config, v Value) string {
	if r, ok := v.(Real); ok {
		f := float64(r)
		switch {
		case math.IsNaN(f):
			return "nan"
		case math.IsInf(f, 1):
			return "inf"
		case math.IsInf(f, -1):
			return "-inf"
		}
	}
	base := conf.OutputBase()
	intDigits, fracDigits := conf.Precision()
	if conf.Mode() == config.BinaryExponent {
		return formatExp(toRat(v, base), base, intDigits, fracDigits)
	}
	return formatRat(toRat(v, base), base, intDigits, fracDigits)
}

// toRat returns the exact value to print. A Real printed in decimal is
// taken at its shortest decimal representation, so 0.1 prints as 0.1;
// in the binary bases its exact value always terminates.
func toRat(v Value, base int) *big.Rat {
	switch v := v.(type) {
	case Int:
		return new(big.Rat).SetInt(v.big())
	case Real:
		if base == 10 {
			return decimal.NewFromFloat(float64(v)).Rat()
		}
		return new(big.Rat).SetFloat64(float64(v))
	}
	panic("toRat")
}

// formatRat prints r in base with the integer part zero-padded to
// intDigits and the fraction truncated or padded to fracDigits.
// Negative counts disable padding and truncation.
func formatRat(r *big.Rat, base, intDigits, fracDigits int) string {
	neg := r.Sign() < 0
	num := new(big.Int).Abs(r.Num())
	den := r.Denom()
	ip, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	digits := ip.Text(base)
	zero := ip.Sign() == 0

	var frac strings.Builder
	b := big.NewInt(int64(base))
	d := new(big.Int)
	for rem.Sign() != 0 && frac.Len() < maxFracDigits && (fracDigits < 0 || frac.Len() < fracDigits) {
		rem.Mul(rem, b)
		d.QuoRem(rem, den, rem)
		if d.Sign() != 0 {
			zero = false
		}
		frac.WriteString(d.Text(base))
	}
	for frac.Len() < fracDigits {
		frac.WriteByte('0')
	}

	var s strings.Builder
	if neg && !zero {
		s.WriteByte('-')
	}
	s.WriteString(Prefix(base))
	s.WriteString(pad(digits, intDigits))
	if frac.Len() > 0 {
		s.WriteByte('.')
		s.WriteString(frac.String())
	}
	return s.String()
}

// formatExp prints r as mantissa×base^exponent with intDigits digits
// (at least one) in the mantissa's integer part.
func formatExp(r *big.Rat, base, intDigits, fracDigits int) string {
	if r.Sign() == 0 {
		return formatRat(r, base, intDigits, fracDigits)
	}
	k := max(intDigits, 1)
	exp := intDigitCount(r, base) - k
	scale := new(big.Rat).SetInt(new(big.Int).Exp(big.NewInt(int64(base)), big.NewInt(int64(abs(exp))), nil))
	m := new(big.Rat)
	if exp >= 0 {
		m.Quo(r, scale)
	} else {
		m.Mul(r, scale)
	}
	var e string
	switch {
	case exp < 0:
		e = "-" + strconv.FormatInt(int64(-exp), base)
	case base == 16:
		// A bare e would read as a hexadecimal digit.
		e = "+" + strconv.FormatInt(int64(exp), base)
	default:
		e = strconv.FormatInt(int64(exp), base)
	}
	return formatRat(m, base, intDigits, fracDigits) + "e" + e
}

// intDigitCount returns n such that base^(n-1) <= |r| < base^n.
// r must be non-zero.
func intDigitCount(r *big.Rat, base int) int {
	a := new(big.Rat).Abs(r)
	one := big.NewRat(1, 1)
	if a.Cmp(one) >= 0 {
		ip := new(big.Int).Quo(a.Num(), a.Denom())
		return len(ip.Text(base))
	}
	b := new(big.Rat).SetInt64(int64(base))
	n := 1
	for a.Cmp(one) < 0 {
		a.Mul(a, b)
		n--
	}
	return n
}

func pad(digits string, width int) string {
	if n := width - len(digits); n > 0 {
		return strings.Repeat("0", n) + digits
	}
	return digits
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
