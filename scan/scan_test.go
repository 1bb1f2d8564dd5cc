// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

import (
	"strings"
	"testing"

	"procalc.org/procalc/config"
	"procalc.org/procalc/exec"
)

func tokens(input string) []Token {
	l := New(new(config.Config), exec.Standard(), "test", strings.NewReader(input))
	var toks []Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Type == EOF {
			return toks
		}
	}
}

func tok(t Type, text string) Token {
	return Token{Type: t, Text: text}
}

var eofTok = tok(EOF, "EOF")

func TestScan(t *testing.T) {
	var tests = []struct {
		input string
		want  []Token
	}{
		{"3+4*2\n", []Token{tok(Number, "3"), tok(Operator, "+"), tok(Number, "4"), tok(Operator, "*"), tok(Number, "2"), tok(Newline, "\n"), eofTok}},
		{"8 - -2", []Token{tok(Number, "8"), tok(Operator, "-"), tok(Number, "-2"), eofTok}},
		{"-3 + 1", []Token{tok(Number, "-3"), tok(Operator, "+"), tok(Number, "1"), eofTok}},
		{"3*-2", []Token{tok(Number, "3"), tok(Operator, "*"), tok(Number, "-2"), eofTok}},
		{"0x1f & ~0b101", []Token{tok(Number, "0x1f"), tok(Operator, "&"), tok(Operator, "~"), tok(Number, "0b101"), eofTok}},
		{"2**3", []Token{tok(Number, "2"), tok(Operator, "**"), tok(Number, "3"), eofTok}},
		{"5 &~ 3", []Token{tok(Number, "5"), tok(Operator, "&~"), tok(Number, "3"), eofTok}},
		{"12 × 3 ÷ 4 − 1", []Token{tok(Number, "12"), tok(Operator, "×"), tok(Number, "3"), tok(Operator, "÷"), tok(Number, "4"), tok(Operator, "−"), tok(Number, "1"), eofTok}},
		{"[1 2 3 Σ", []Token{tok(Operator, "["), tok(Number, "1"), tok(Number, "2"), tok(Number, "3"), tok(Operator, "Σ"), eofTok}},
		{"ff+e", []Token{tok(Number, "ff"), tok(Operator, "+"), tok(Operator, "e"), eofTok}},
		{"1e-5j", []Token{tok(Number, "1e-5j"), eofTok}},
		{"0x1.8e+2", []Token{tok(Number, "0x1.8e+2"), eofTok}},
		{"1.5-2j", []Token{tok(Number, "1.5"), tok(Operator, "-"), tok(Number, "2j"), eofTok}},
		{"３＋４", []Token{tok(Number, "3"), tok(Operator, "+"), tok(Number, "4"), eofTok}},
		{"sin π", []Token{tok(Operator, "sin"), tok(Operator, "π"), eofTok}},
		{"pi - 1", []Token{tok(Operator, "pi"), tok(Operator, "-"), tok(Number, "1"), eofTok}},
		{")base 16\n", []Token{tok(Command, "base 16"), tok(Newline, "\n"), eofTok}},
		{"  ) clear", []Token{tok(Command, "clear"), eofTok}},
		{"1 = # comment", []Token{tok(Number, "1"), tok(Equals, "="), eofTok}},
		{"frob 1\n2", []Token{tok(Error, "frob is not an operator"), tok(Newline, "\n"), tok(Number, "2"), eofTok}},
		{"3 @", []Token{tok(Number, "3"), tok(Error, "U+0040 '@' is not an operator"), eofTok}},
	}
	for _, test := range tests {
		got := tokens(test.input)
		if len(got) != len(test.want) {
			t.Errorf("%q: expected %v; got %v", test.input, test.want, got)
			continue
		}
		for i := range got {
			if got[i].Type != test.want[i].Type || got[i].Text != test.want[i].Text {
				t.Errorf("%q: token %d: expected %v; got %v", test.input, i, test.want[i], got[i])
			}
		}
	}
}

func TestLineNumbers(t *testing.T) {
	got := tokens("1\n2\n\n3")
	lines := []int{1, 1, 2, 2, 3, 4, 4}
	if len(got) != len(lines) {
		t.Fatalf("expected %d tokens; got %v", len(lines), got)
	}
	for i, tok := range got {
		if tok.Line != lines[i] {
			t.Errorf("token %d %v: expected line %d; got %d", i, tok, lines[i], tok.Line)
		}
	}
}

func TestDebugTokens(t *testing.T) {
	var out strings.Builder
	conf := new(config.Config)
	conf.SetOutput(&out)
	conf.SetDebug("tokens", true)
	l := New(conf, exec.Standard(), "<stdin>", strings.NewReader("1"))
	l.Next()
	if got, want := out.String(), "<stdin>:1: emit Number: \"1\"\n"; got != want {
		t.Errorf("expected %q; got %q", want, got)
	}
}
