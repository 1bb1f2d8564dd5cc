// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"procalc.org/procalc/config"
)

func TestParse(t *testing.T) {
	var tests = []struct {
		in   string
		want Value
		kind Kind
	}{
		{"42", NewInt(42), IntKind},
		{"-42", NewInt(-42), IntKind},
		{"+7", NewInt(7), IntKind},
		{"0x1f", NewInt(31), IntKind},
		{"0X1F", NewInt(31), IntKind},
		{"-0x10", NewInt(-16), IntKind},
		{"0o17", NewInt(15), IntKind},
		{"0b101", NewInt(5), IntKind},
		{"0x", NewInt(0), IntKind},
		{"ff", NewInt(255), IntKind},
		{"1e", NewInt(30), IntKind},
		{"1.5", Real(1.5), RealKind},
		{".5", Real(0.5), RealKind},
		{"1.", Real(1), RealKind},
		{"1e3", Real(1000), RealKind},
		{"2.5e-1", Real(0.25), RealKind},
		{"0x1.8", Real(1.5), RealKind},
		{"0b0.01", Real(0.25), RealKind},
		{"0o0.4", Real(0.5), RealKind},
		{"0b1e11", NewInt(8), IntKind},
		{"0b1e-1", Real(0.5), RealKind},
		{"0x1e+2", NewInt(256), IntKind},
		{"0x1.8e+1", NewInt(24), RealKind},
		{"2j", Complex(2i), ComplexKind},
		{"1.5-2j", Complex(complex(1.5, -2)), ComplexKind},
		{"-1+0.5j", Complex(complex(-1, 0.5)), ComplexKind},
		{"1e-5j", Complex(complex(0, 1e-5)), ComplexKind},
		{"0x1e+0x2j", Complex(complex(30, 2)), ComplexKind},
		{" 12 ", NewInt(12), IntKind},
	}
	for _, test := range tests {
		v, err := Parse(test.in)
		if err != nil {
			t.Errorf("%q: unexpected error %v", test.in, err)
			continue
		}
		if v.Kind() != test.kind {
			t.Errorf("%q: expected kind %s; got %s", test.in, test.kind, v.Kind())
		}
		if !Equal(v, test.want) {
			t.Errorf("%q: expected %s; got %s", test.in, test.want, v)
		}
	}
}

func TestParseError(t *testing.T) {
	var tests = []string{
		"",
		"-",
		".",
		"0o108",
		"0b102",
		"12g",
		"1.2.3",
		"1e+",
		"j",
		"0x1e+zz",
		"--1",
	}
	for _, test := range tests {
		v, err := Parse(test)
		if err == nil {
			t.Errorf("%q: expected error; got %s", test, v)
			continue
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("%q: expected *ParseError; got %T", test, err)
		}
	}
}

func newConf(base, intDigits, fracDigits int, mode config.Mode) *config.Config {
	conf := new(config.Config)
	conf.SetBase(base)
	conf.SetPrecision(intDigits, fracDigits)
	conf.SetMode(mode)
	return conf
}

func TestFormat(t *testing.T) {
	var tests = []struct {
		v          Value
		base       int
		intDigits  int
		fracDigits int
		mode       config.Mode
		want       string
	}{
		{NewInt(255), 10, -1, -1, config.Normal, "255"},
		{NewInt(255), 16, -1, -1, config.Normal, "0xff"},
		{NewInt(255), 8, -1, -1, config.Normal, "0o377"},
		{NewInt(255), 2, -1, -1, config.Normal, "0b11111111"},
		{NewInt(-255), 16, -1, -1, config.Normal, "-0xff"},
		{NewInt(5), 16, 4, -1, config.Normal, "0x0005"},
		{NewInt(5), 10, -1, 2, config.Normal, "5.00"},
		{NewInt(0), 10, -1, -1, config.Normal, "0"},
		{NewInt(255), 0, -1, -1, config.Normal, "255"},
		{Real(0.1), 10, -1, -1, config.Normal, "0.1"},
		{Real(2), 10, -1, -1, config.Normal, "2"},
		{Real(math.Copysign(0, -1)), 10, -1, -1, config.Normal, "0"},
		{Real(-0.001), 10, -1, 2, config.Normal, "0.00"},
		{Real(3.14159), 10, -1, 2, config.Normal, "3.14"},
		{Real(-3.14159), 10, 3, 3, config.Normal, "-003.141"},
		{Real(1.5), 2, -1, -1, config.Normal, "0b1.1"},
		{Real(0.75), 16, -1, -1, config.Normal, "0x0.c"},
		{Real(0.5), 8, -1, 3, config.Normal, "0o0.400"},
		{Real(math.NaN()), 10, -1, -1, config.Normal, "nan"},
		{Real(math.Inf(1)), 16, -1, -1, config.Normal, "inf"},
		{Real(math.Inf(-1)), 10, -1, -1, config.Normal, "-inf"},
		{Complex(complex(1, -2)), 10, -1, -1, config.Normal, "1-2j"},
		{Complex(complex(0.5, 3)), 2, -1, -1, config.Normal, "0b0.1+0b11j"},
		{Real(10), 16, -1, -1, config.Raw, "0x4024000000000000"},
		{Real(1), 10, -1, -1, config.Raw, "4607182418800017408"},
		{NewInt(-1), 16, -1, -1, config.Raw, "0xffffffffffffffff"},
		{NewInt(42), 10, -1, -1, config.Raw, "42"},
		{Real(1234.5), 10, -1, -1, config.BinaryExponent, "1.2345e3"},
		{NewInt(-1024), 10, -1, -1, config.BinaryExponent, "-1.024e3"},
		{NewInt(1024), 2, -1, -1, config.BinaryExponent, "0b1e1010"},
		{NewInt(1024), 10, 2, -1, config.BinaryExponent, "10.24e2"},
		{Real(0.015625), 16, -1, -1, config.BinaryExponent, "0x4e-2"},
		{NewInt(10), 16, -1, -1, config.BinaryExponent, "0xae+0"},
		{Real(0.00123), 10, -1, -1, config.BinaryExponent, "1.23e-3"},
		{NewInt(0), 10, -1, -1, config.BinaryExponent, "0"},
	}
	for _, test := range tests {
		conf := newConf(test.base, test.intDigits, test.fracDigits, test.mode)
		got := test.v.Sprint(conf)
		if got != test.want {
			t.Errorf("%s base %d prec %d:%d mode %s: expected %q; got %q",
				test.v, test.base, test.intDigits, test.fracDigits, test.mode, test.want, got)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	vals := []Value{
		NewInt(0),
		NewInt(1),
		NewInt(-77),
		NewInt(1 << 40),
		NewBigInt(new(big.Int).Lsh(bigOne, 100)),
		Real(0.1),
		Real(-2.75),
		Real(1e300),
		Real(5e-324),
		Real(math.Pi),
		Real(1.0 / 3),
		Complex(complex(1.25, -0.5)),
	}
	for _, base := range []int{2, 8, 10, 16} {
		for _, mode := range []config.Mode{config.Normal, config.BinaryExponent} {
			conf := newConf(base, -1, -1, mode)
			for _, v := range vals {
				text := v.Sprint(conf)
				got, err := Parse(text)
				if err != nil {
					t.Errorf("base %d mode %s: %s printed as %q: %v", base, mode, v, text, err)
					continue
				}
				if !Equal(got, v) {
					t.Errorf("base %d mode %s: %s printed as %q parsed as %s", base, mode, v, text, got)
				}
			}
		}
	}
}

func TestRawBits(t *testing.T) {
	conf := newConf(16, -1, -1, config.Raw)
	text := Real(10).Sprint(conf)
	if text != "0x4024000000000000" {
		t.Fatalf("raw 10.0: got %q", text)
	}
	v, err := Parse(text)
	if err != nil {
		t.Fatal(err)
	}
	i, ok := v.(Int)
	if !ok {
		t.Fatalf("raw text parsed as %T", v)
	}
	if f := FromBits(i); f != 10 {
		t.Errorf("FromBits: expected 10; got %v", f)
	}
	for _, f := range []float64{0, -1.5, math.Inf(1), math.SmallestNonzeroFloat64, math.MaxFloat64} {
		b, _ := Bits(Real(f))
		if got := FromBits(b); got != Real(f) {
			t.Errorf("%g: bits round trip gave %g", f, float64(got))
		}
	}
	b, _ := Bits(NewInt(-2))
	if b.String() != "18446744073709551614" {
		t.Errorf("Bits(-2): got %s", b)
	}
}

func TestBinary(t *testing.T) {
	var tests = []struct {
		u    Value
		op   string
		v    Value
		want Value
	}{
		{NewInt(3), "+", NewInt(4), NewInt(7)},
		{NewInt(3), "+", Real(0.5), Real(3.5)},
		{Real(1), "+", Complex(2i), Complex(complex(1, 2))},
		{NewInt(8), "-", NewInt(3), NewInt(5)},
		{NewInt(6), "*", NewInt(7), NewInt(42)},
		{NewInt(6), "/", NewInt(3), NewInt(2)},
		{NewInt(1), "/", NewInt(2), Real(0.5)},
		{NewInt(1), "/", NewInt(0), Real(math.Inf(1))},
		{NewInt(-1), "/", NewInt(0), Real(math.Inf(-1))},
		{NewInt(7), "mod", NewInt(3), NewInt(1)},
		{NewInt(-7), "mod", NewInt(3), NewInt(2)},
		{NewInt(7), "mod", NewInt(-3), NewInt(-2)},
		{Real(-7.5), "mod", NewInt(2), Real(0.5)},
		{NewInt(2), "**", NewInt(10), NewInt(1024)},
		{NewInt(2), "**", NewInt(-1), Real(0.5)},
		{Real(4), "**", Real(0.5), Real(2)},
		{NewInt(12), "and", NewInt(10), NewInt(8)},
		{NewInt(12), "or", NewInt(10), NewInt(14)},
		{NewInt(12), "xor", NewInt(10), NewInt(6)},
		{NewInt(12), "andnot", NewInt(10), NewInt(4)},
		{NewInt(-1), "and", NewInt(0xff), NewInt(0xff)},
	}
	for _, test := range tests {
		got, err := Binary(test.u, test.op, test.v)
		if err != nil {
			t.Errorf("%s %s %s: %v", test.u, test.op, test.v, err)
			continue
		}
		if !Equal(got, test.want) {
			t.Errorf("%s %s %s: expected %s; got %s", test.u, test.op, test.v, test.want, got)
		}
	}
	if _, err := Binary(Real(1.5), "and", NewInt(1)); err == nil {
		t.Error("and of reals: expected error")
	}
	if _, err := Binary(Complex(1i), "mod", NewInt(1)); err == nil {
		t.Error("mod of complex: expected error")
	}
	v, _ := Binary(NewInt(0), "mod", NewInt(0))
	if f, ok := v.(Real); !ok || !math.IsNaN(float64(f)) {
		t.Errorf("0 mod 0: expected nan; got %s", v)
	}
}

func TestShift(t *testing.T) {
	for _, x := range []int64{0, 1, 5, 255, -5, -256} {
		for n := int64(0); n < 70; n++ {
			l, err1 := Lsh(NewInt(x), -n)
			r, err2 := Rsh(NewInt(x), n)
			if err1 != nil || err2 != nil {
				t.Fatalf("shift %d by %d: %v %v", x, n, err1, err2)
			}
			if !Equal(l, r) {
				t.Errorf("%d: shl -%d = %s; shr %d = %s", x, n, l, n, r)
			}
		}
	}
	if v, _ := Rsh(NewInt(-5), 1); !Equal(v, NewInt(-3)) {
		t.Errorf("-5 >> 1: expected -3; got %s", v)
	}
	if v, _ := Lsh(NewInt(1), 100); v.Big().BitLen() != 101 {
		t.Errorf("1 << 100: got %s", v)
	}
	if _, err := Lsh(NewInt(1), MaxShift+1); err == nil {
		t.Error("huge shift: expected error")
	}
}

func TestUnary(t *testing.T) {
	var tests = []struct {
		op   string
		v    Value
		want Value
	}{
		{"neg", NewInt(5), NewInt(-5)},
		{"neg", Complex(complex(1, -1)), Complex(complex(-1, 1))},
		{"abs", NewInt(-5), NewInt(5)},
		{"abs", Complex(complex(3, 4)), Real(5)},
		{"not", NewInt(5), NewInt(-6)},
		{"sqrt", NewInt(16), Real(4)},
		{"sqrt", Real(-4), Complex(2i)},
		{"sin", NewInt(0), Real(0)},
		{"cos", Real(0), Real(1)},
		{"ln", Real(1), Real(0)},
		{"lg", NewInt(1), Real(0)},
		{"exp", NewInt(0), Real(1)},
		{"floor", Real(-2.5), NewInt(-3)},
		{"ceil", Real(2.1), NewInt(3)},
		{"floor", NewInt(7), NewInt(7)},
	}
	for _, test := range tests {
		got, err := Unary(test.op, test.v)
		if err != nil {
			t.Errorf("%s %s: %v", test.op, test.v, err)
			continue
		}
		if !Equal(got, test.want) {
			t.Errorf("%s %s: expected %s; got %s", test.op, test.v, test.want, got)
		}
	}
	if _, err := Unary("not", Real(1)); err == nil {
		t.Error("not of real: expected error")
	}
}

func TestReduce(t *testing.T) {
	list := []Value{NewInt(1), NewInt(2), NewInt(3)}
	check := func(name string, f func([]Value) (Value, error), want Value) {
		t.Helper()
		got, err := f(list)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			return
		}
		if !Equal(got, want) {
			t.Errorf("%s: expected %s; got %s", name, want, got)
		}
	}
	check("sum", Sum, NewInt(6))
	check("product", Product, NewInt(6))
	check("mean", Mean, Real(2))

	g, _ := GeoMean([]Value{NewInt(1), NewInt(2), NewInt(4)})
	if math.Abs(Float64(g)-2) > 1e-12 {
		t.Errorf("gmean: expected 2; got %s", g)
	}
	s, _ := StdDev([]Value{NewInt(2), NewInt(4), NewInt(4), NewInt(4), NewInt(5), NewInt(5), NewInt(7), NewInt(9)})
	if math.Abs(Float64(s)-2) > 1e-12 {
		t.Errorf("sdev: expected 2; got %s", s)
	}
	if v, _ := Sum(nil); !Equal(v, NewInt(0)) {
		t.Errorf("empty sum: got %s", v)
	}
	if v, _ := Mean(nil); !math.IsNaN(Float64(v)) {
		t.Errorf("empty mean: got %s", v)
	}
	if _, err := StdDev([]Value{Complex(1i)}); err == nil {
		t.Error("sdev of complex: expected error")
	}
}

func TestLiteral(t *testing.T) {
	var tests = []struct {
		v    Value
		text string
	}{
		{NewInt(-42), "-42"},
		{Real(2), "2.0"},
		{Real(0.1), "0.1"},
		{Real(1e300), "1e+300"},
		{Real(-2.5e-7), "-2.5e-07"},
		{Complex(complex(1.5, -2)), "1.5-2.0j"},
		{Complex(complex(0, 0.5)), "0.0+0.5j"},
	}
	for _, test := range tests {
		text, err := Literal(test.v)
		if err != nil {
			t.Errorf("%v: %v", test.v, err)
			continue
		}
		if text != test.text {
			t.Errorf("%v: expected %q; got %q", test.v, test.text, text)
		}
		back, err := Parse(text)
		if err != nil {
			t.Errorf("%q: %v", text, err)
			continue
		}
		if back.Kind() != test.v.Kind() || !Equal(back, test.v) {
			t.Errorf("%q read back as %v (%s)", text, back, back.Kind())
		}
	}
	for _, v := range []Value{Real(math.NaN()), Real(math.Inf(-1)), Complex(complex(1, math.Inf(1)))} {
		if _, err := Literal(v); err == nil {
			t.Errorf("%v: expected error", v)
		}
	}
}
