// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"errors"
	"math/big"
	"strconv"
	"strings"
)

// maxExponent bounds the exponent of a non-decimal literal.
const maxExponent = 1 << 16

// Parse reads a number. The grammar is
//
//	sign? prefix? digits? ('.' digits)? (exp sign? digits)? 'j'?
//
// where prefix is 0x, 0o or 0b. Without a prefix the literal is decimal
// unless it is only valid as hexadecimal, as in "ff". A trailing j marks
// an imaginary number; a full complex literal is two signed numbers, the
// second ending in j: "1.5-2j".
//
// Decimal literals with a fraction or exponent are Reals, other
// decimal literals are Ints. A non-decimal literal is an Int unless it
// has a fraction or a negative exponent, and its exponent, written in
// the literal's base, scales by powers of that base. In base 16 the
// letter e is a digit; it is an exponent marker only when followed by
// a sign, as in 0x1.8e+2.
func Parse(text string) (Value, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, parseErrorf(text, "empty")
	}
	if last := s[len(s)-1]; last == 'j' || last == 'J' {
		return parseComplex(text, s[:len(s)-1])
	}
	return parseReal(text, s)
}

// parseComplex parses s, the text before the trailing j. If s is not a
// number by itself it is split at a sign into real and imaginary parts,
// trying the rightmost sign first.
func parseComplex(text, s string) (Value, error) {
	im, err := parseReal(text, s)
	if err == nil {
		return Complex(complex(0, Float64(im))), nil
	}
	for i := len(s) - 1; i > 0; i-- {
		if s[i] != '+' && s[i] != '-' {
			continue
		}
		re, err1 := parseReal(text, s[:i])
		if err1 != nil {
			continue
		}
		im, err1 := parseReal(text, s[i:])
		if err1 != nil {
			continue
		}
		return Complex(complex(Float64(re), Float64(im))), nil
	}
	return nil, err
}

// number is the scanned form of a real literal.
type number struct {
	neg      bool
	base     int
	intPart  string
	dot      bool
	frac     string
	hasExp   bool
	expNeg   bool
	exponent string
}

func parseReal(text, s string) (Value, error) {
	n, err := scanNumber(text, s)
	if err != nil {
		return nil, err
	}
	if n.base == 10 {
		return n.decimal(text)
	}
	return n.value(text)
}

// scanNumber splits s into the parts of a literal, validating digits
// against the base.
func scanNumber(text, s string) (*number, error) {
	n := new(number)
	if s != "" && (s[0] == '+' || s[0] == '-') {
		n.neg = s[0] == '-'
		s = s[1:]
	}
	prefixed := false
	if len(s) >= 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			n.base = 16
		case 'o', 'O':
			n.base = 8
		case 'b', 'B':
			n.base = 2
		}
		if n.base != 0 {
			prefixed = true
			s = s[2:]
		}
	}
	if n.base == 0 {
		n.base = 10
		if !isDecimal(s) {
			n.base = 16
		}
	}
	l := &scanner{input: s, base: n.base}
	n.intPart = l.digitRun()
	if l.accept(".") {
		n.dot = true
		n.frac = l.digitRun()
	}
	if !prefixed && n.intPart == "" && n.frac == "" {
		return nil, parseErrorf(text, "no digits")
	}
	if l.atExponent() {
		l.next()
		n.hasExp = true
		if r := l.peek(); r == '+' || r == '-' {
			n.expNeg = r == '-'
			l.next()
		}
		n.exponent = l.digitRun()
		if n.exponent == "" {
			return nil, parseErrorf(text, "missing exponent")
		}
	}
	if !l.atEOF() {
		r := l.peek()
		if digitVal(r) < 16 {
			return nil, parseErrorf(text, "invalid digit %q in base %d", r, n.base)
		}
		return nil, parseErrorf(text, "unexpected %q", r)
	}
	return n, nil
}

// decimal converts a base 10 literal.
func (n *number) decimal(text string) (Value, error) {
	if !n.dot && !n.hasExp {
		i, ok := new(big.Int).SetString(n.intPart, 10)
		if !ok {
			return nil, parseErrorf(text, "integer parse error")
		}
		if n.neg {
			i.Neg(i)
		}
		return Int{i}, nil
	}
	s := n.intPart
	if n.dot {
		s += "." + n.frac
	}
	if n.hasExp {
		s += "e"
		if n.expNeg {
			s += "-"
		}
		s += n.exponent
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, parseErrorf(text, "%v", err)
	}
	if n.neg {
		f = -f
	}
	return Real(f), nil
}

// value converts a base 2, 8 or 16 literal: the fraction is the sum of
// digit/base^position and the exponent scales by base^exponent.
func (n *number) value(text string) (Value, error) {
	m := new(big.Int)
	if digits := n.intPart + n.frac; digits != "" {
		if _, ok := m.SetString(digits, n.base); !ok {
			return nil, parseErrorf(text, "integer parse error")
		}
	}
	exp := int64(0)
	if n.hasExp {
		e, err := strconv.ParseInt(n.exponent, n.base, 64)
		if err != nil || e > maxExponent {
			return nil, parseErrorf(text, "exponent out of range")
		}
		if n.expNeg {
			e = -e
		}
		exp = e
	}
	if n.neg {
		m.Neg(m)
	}
	scale := exp - int64(len(n.frac))
	base := big.NewInt(int64(n.base))
	if !n.dot && scale >= 0 {
		return Int{m.Mul(m, new(big.Int).Exp(base, big.NewInt(scale), nil))}, nil
	}
	r := new(big.Rat).SetInt(m)
	pow := new(big.Rat).SetInt(new(big.Int).Exp(base, big.NewInt(abs64(scale)), nil))
	if scale < 0 {
		r.Quo(r, pow)
	} else {
		r.Mul(r, pow)
	}
	f, _ := r.Float64()
	return Real(f), nil
}

// isDecimal reports whether s, without sign or prefix, is a decimal
// literal: digits, an optional fraction and an optional exponent.
func isDecimal(s string) bool {
	l := &scanner{input: s, base: 10}
	mant := l.digitRun()
	if l.accept(".") {
		mant += l.digitRun()
	}
	if mant == "" {
		return false
	}
	if l.accept("eE") {
		l.accept("+-")
		if l.digitRun() == "" {
			return false
		}
	}
	return l.atEOF()
}

// scanner walks a literal one byte at a time. Number text is ASCII once
// it has been through the width folding done by callers.
type scanner struct {
	input string
	pos   int
	base  int
}

func (l *scanner) atEOF() bool {
	return l.pos >= len(l.input)
}

func (l *scanner) peek() rune {
	if l.atEOF() {
		return 0
	}
	return rune(l.input[l.pos])
}

func (l *scanner) peek2() rune {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return rune(l.input[l.pos+1])
}

func (l *scanner) next() rune {
	r := l.peek()
	if !l.atEOF() {
		l.pos++
	}
	return r
}

// accept consumes the next rune if it's from the valid set.
func (l *scanner) accept(valid string) bool {
	if !l.atEOF() && strings.ContainsRune(valid, l.peek()) {
		l.pos++
		return true
	}
	return false
}

// atExponent reports whether the scanner is at an exponent marker.
func (l *scanner) atExponent() bool {
	r := l.peek()
	if r != 'e' && r != 'E' {
		return false
	}
	if l.base == 16 {
		r2 := l.peek2()
		return r2 == '+' || r2 == '-'
	}
	return true
}

// digitRun consumes a run of digits valid in the scanner's base.
func (l *scanner) digitRun() string {
	start := l.pos
	for !l.atEOF() && digitVal(l.peek()) < l.base && !l.atExponent() {
		l.pos++
	}
	return l.input[start:l.pos]
}

// digitVal returns the value of the hexadecimal digit r, or 16 if r is
// not a digit.
func digitVal(r rune) int {
	switch {
	case '0' <= r && r <= '9':
		return int(r - '0')
	case 'a' <= r && r <= 'f':
		return int(r-'a') + 10
	case 'A' <= r && r <= 'F':
		return int(r-'A') + 10
	}
	return 16
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
