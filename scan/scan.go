// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scan splits typed input lines into the tokens the calculator
// stack takes one at a time: numbers, operator names, the = that asks
// for a result, and ) commands.
package scan // import "procalc.org/procalc/scan"

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"

	"procalc.org/procalc/config"
	"procalc.org/procalc/exec"
)

// Token represents a token or text string returned from the scanner.
type Token struct {
	Type Type   // The type of this item.
	Line int    // The line number on which this token appears
	Text string // The text of this item.
}

// Type identifies the type of lex items.
type Type int

const (
	EOF     Type = iota // zero value so closed channel delivers EOF
	Error               // error occurred; value is text of error
	Newline
	Number   // number literal, any base, possibly imaginary
	Operator // name of an operator in the table
	Equals   // '=', evaluate and print
	Command  // ')' command; text is the rest of the line
)

var typeNames = [...]string{
	EOF:      "EOF",
	Error:    "Error",
	Newline:  "Newline",
	Number:   "Number",
	Operator: "Operator",
	Equals:   "Equals",
	Command:  "Command",
}

func (t Type) String() string {
	if 0 <= t && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

func (i Token) String() string {
	switch {
	case i.Type == EOF:
		return "EOF"
	case i.Type == Error:
		return "error: " + i.Text
	case len(i.Text) > 10:
		return fmt.Sprintf("%s: %.10q...", i.Type, i.Text)
	}
	return fmt.Sprintf("%s: %q", i.Type, i.Text)
}

const eof = -1

// stateFn represents the state of the scanner as a function that returns the next state.
type stateFn func(*Scanner) stateFn

// Scanner holds the state of the scanner.
type Scanner struct {
	conf      *config.Config
	table     *exec.Table
	r         io.ByteReader
	done      bool
	name      string  // the name of the input; used only for error reports
	buf       []byte  // I/O buffer, re-used.
	input     string  // the line of text being scanned.
	lastRune  rune    // most recent return from next()
	lastWidth int     // size of that rune
	state     stateFn // the next lexing function to enter
	line      int     // line number in input
	pos       int     // current position in the input
	start     int     // start position of this item
	operand   bool    // the previous token on the line leaves an operand
	token     Token
}

// New creates and returns a new scanner. Operator names are those of
// table.
func New(conf *config.Config, table *exec.Table, name string, r io.ByteReader) *Scanner {
	return &Scanner{
		r:     r,
		name:  name,
		line:  1,
		conf:  conf,
		table: table,
	}
}

// Loc returns the current input location in the form name:line: .
func (l *Scanner) Loc() string {
	return fmt.Sprintf("%s:%d: ", l.name, l.line)
}

// loadLine reads the next line of input into l.input.
// It strips carriage returns and folds full-width characters to their
// narrow forms, so a keypad's ＋ or １ reads as + or 1.
func (l *Scanner) loadLine() {
	l.buf = l.buf[:0]
	for {
		c, err := l.r.ReadByte()
		if err != nil {
			l.done = true
			break
		}
		if c != '\r' { // There will never be a \r in l.input.
			l.buf = append(l.buf, c)
		}
		if c == '\n' {
			break
		}
	}
	l.input = width.Fold.String(string(l.buf))
	l.start = 0
	l.pos = 0
	l.operand = false
}

// readRune reads the next rune from the input.
func (l *Scanner) readRune() (rune, int) {
	if !l.done && l.pos == len(l.input) {
		l.loadLine()
	}
	if len(l.input) == l.pos {
		return eof, 0
	}
	return utf8.DecodeRuneInString(l.input[l.pos:])
}

// next returns the next rune in the input.
func (l *Scanner) next() rune {
	l.lastRune, l.lastWidth = l.readRune()
	l.pos += l.lastWidth
	return l.lastRune
}

// peek returns but does not consume the next rune in the input.
func (l *Scanner) peek() rune {
	if l.pos >= len(l.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return r
}

// peek2 returns the rune after the next one, without consuming anything.
func (l *Scanner) peek2() rune {
	if l.pos >= len(l.input) {
		return eof
	}
	_, w := utf8.DecodeRuneInString(l.input[l.pos:])
	if l.pos+w >= len(l.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos+w:])
	return r
}

// backup steps back one rune. Should only be called once per call of next.
func (l *Scanner) backup() {
	if l.lastRune == eof {
		return
	}
	if l.pos > l.start {
		l.pos -= l.lastWidth
	}
}

// emit passes an item back to the client.
func (l *Scanner) emit(t Type) stateFn {
	text := l.input[l.start:l.pos]
	return l.emitText(t, text)
}

func (l *Scanner) emitText(t Type, text string) stateFn {
	if l.conf.Debug("tokens") {
		fmt.Fprintf(l.conf.Output(), "%s:%d: emit %s\n", l.name, l.line, Token{t, l.line, text})
	}
	l.token = Token{t, l.line, text}
	if t == Newline {
		l.line++
	}
	l.start = l.pos
	return nil
}

// errorf returns an error token and empties the rest of the line.
func (l *Scanner) errorf(format string, args ...interface{}) stateFn {
	l.token = Token{Error, l.line, fmt.Sprintf(format, args...)}
	if i := strings.IndexByte(l.input[l.pos:], '\n'); i >= 0 {
		l.pos += i
	} else {
		l.pos = len(l.input)
	}
	l.start = l.pos
	return nil
}

// Next returns the next token.
func (l *Scanner) Next() Token {
	l.lastRune = eof
	l.lastWidth = 0
	l.token = Token{EOF, l.line, "EOF"}
	state := lexAny
	for {
		state = state(l)
		if state == nil {
			return l.token
		}
	}
}

// state functions

// lexComment scans a comment. The comment marker has been consumed.
func lexComment(l *Scanner) stateFn {
	for {
		r := l.peek()
		if r == eof || r == '\n' {
			break
		}
		l.next()
	}
	l.start = l.pos
	return lexAny
}

// lexAny scans non-space items.
func lexAny(l *Scanner) stateFn {
	switch r := l.next(); {
	case r == eof:
		return nil
	case r == '\n':
		l.operand = false
		return l.emit(Newline)
	case r == '#':
		return lexComment
	case isSpace(r):
		return lexSpace
	case r == ')' && strings.TrimSpace(l.input[:l.start]) == "":
		return lexCommand
	case r == '=':
		l.operand = false
		return l.emit(Equals)
	case (r == '-' || r == '+') && !l.operand && (isDigit(l.peek()) || l.peek() == '.'):
		// A sign, not an operator: nothing to its left to operate on.
		l.backup()
		return lexNumber
	case r == '.' || isDigit(r):
		l.backup()
		return lexNumber
	case isAlphaNumeric(r):
		l.backup()
		return lexWord
	case isSymbol(r):
		return lexSymbol
	default:
		return l.errorf("unrecognized character: %#U", r)
	}
}

// lexSpace scans a run of space characters.
// One space has already been seen.
func lexSpace(l *Scanner) stateFn {
	for isSpace(l.peek()) {
		l.next()
	}
	// Skips over the pending input.
	l.start = l.pos
	return lexAny
}

// lexCommand scans a ) command: the rest of the line.
func lexCommand(l *Scanner) stateFn {
	for r := l.peek(); r != eof && r != '\n'; r = l.peek() {
		l.next()
	}
	text := strings.TrimSpace(l.input[l.start+1 : l.pos])
	l.operand = false
	return l.emitText(Command, text)
}

// lexNumber scans a literal: an optional sign, then letters, digits
// and dots, with a sign allowed after an e that starts an exponent.
// The stack's parser decides whether the text is a valid number.
func lexNumber(l *Scanner) stateFn {
	l.accept("+-")
	for r := l.peek(); r == '.' || isAlphaNumeric(r); r = l.peek() {
		l.next()
		if (r == 'e' || r == 'E') && (l.peek() == '+' || l.peek() == '-') && isAlphaNumeric(l.peek2()) {
			l.next()
		}
	}
	l.operand = true
	return l.emit(Number)
}

// lexWord scans an alphanumeric word. It is an operator if the table
// defines it, otherwise a number such as ff.
func lexWord(l *Scanner) stateFn {
	for isAlphaNumeric(l.peek()) {
		l.next()
	}
	word := l.input[l.start:l.pos]
	if d, ok := l.table.Lookup(word); ok {
		l.operand = d.IsOperand() && !d.IsMarker()
		return l.emit(Operator)
	}
	if isAllHexDigits(word) {
		l.pos = l.start
		return lexNumber
	}
	return l.errorf("%s is not an operator", word)
}

// lexSymbol scans an operator spelled with symbols, taking the longest
// run that names an operator. The first symbol has been consumed.
func lexSymbol(l *Scanner) stateFn {
	for isSymbol(l.peek()) {
		l.next()
	}
	for end := l.pos; end > l.start; {
		word := l.input[l.start:end]
		if d, ok := l.table.Lookup(word); ok {
			l.pos = end
			l.operand = d.IsOperand() && !d.IsMarker()
			return l.emit(Operator)
		}
		_, w := utf8.DecodeLastRuneInString(word)
		end -= w
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.start:])
	return l.errorf("%#U is not an operator", r)
}

// accept consumes the next rune if it's from the valid set.
func (l *Scanner) accept(valid string) bool {
	if strings.ContainsRune(valid, l.next()) {
		return true
	}
	l.backup()
	return false
}

// isSpace reports whether r is a space character.
func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

// isAlphaNumeric reports whether r is an alphabetic, digit, or underscore.
func isAlphaNumeric(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isDigit reports whether r is an ASCII digit.
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isSymbol reports whether r may be part of an operator spelled with
// symbols, such as ×, ** or &~.
func isSymbol(r rune) bool {
	switch r {
	case eof, '\n', '#', '=', ')', '.':
		return false
	case '[':
		return true
	}
	return !isSpace(r) && !isAlphaNumeric(r) && (unicode.IsPunct(r) || unicode.IsSymbol(r))
}

// isAllHexDigits reports whether s is made of hexadecimal digits,
// possibly ending in the j of an imaginary number.
func isAllHexDigits(s string) bool {
	s = strings.TrimSuffix(s, "j")
	if s == "" {
		return false
	}
	for _, c := range s {
		if !isDigit(c) && !('a' <= c && c <= 'f') && !('A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}
