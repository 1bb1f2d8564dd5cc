// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The mobile package provides a very narrow interface to procalc,
// suitable for wrapping in a UI for mobile applications.
// It is designed to work well with the gomobile tool by exposing
// only primitive types. It's also handy for testing.
//
// Each Session owns its stack and converter state, so any number of
// sessions may be used at once, though a single Session must not be
// used concurrently.
package mobile

//go:generate sh -c "go run help_gen.go | gofmt >help.go"

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"procalc.org/procalc/config"
	"procalc.org/procalc/demo"
	"procalc.org/procalc/run"
	"procalc.org/procalc/stack"
	"procalc.org/procalc/value"
)

// Session is one calculator: a stack and its converter state.
type Session struct {
	conf  config.Config
	stack *stack.Stack
}

// NewSession returns a session with an empty stack, decimal output and
// no precision limits.
func NewSession() *Session {
	s := new(Session)
	s.stack = stack.New(&s.conf, nil)
	return s
}

// PushOp enters a key press: an operator name or a number.
func (s *Session) PushOp(token string) error {
	return s.stack.PushOp(token)
}

// PopOp evaluates the stack and returns the result, formatted.
func (s *Session) PopOp() (string, error) {
	v, err := s.stack.PopOp()
	if err != nil {
		return "", err
	}
	return v.Sprint(&s.conf), nil
}

// parse reads a value for the positional operations; blank text is an
// absent value.
func parse(text string) (value.Value, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	return value.Parse(text)
}

// Push inserts the number in text at index, ignoring priorities.
func (s *Session) Push(text string, index int) error {
	v, err := parse(text)
	if err != nil {
		return err
	}
	return s.stack.Push(v, index)
}

// Pop removes the entry at index and returns it, formatted.
func (s *Session) Pop(index int) (string, error) {
	e, err := s.stack.Pop(index)
	if err != nil {
		return "", err
	}
	return e.Sprint(&s.conf), nil
}

// Get returns the entry at index, formatted.
func (s *Session) Get(index int) (string, error) {
	e, err := s.stack.Get(index)
	if err != nil {
		return "", err
	}
	return e.Sprint(&s.conf), nil
}

// Put replaces the entry at index with the number in text.
func (s *Session) Put(index int, text string) error {
	v, err := parse(text)
	if err != nil {
		return err
	}
	return s.stack.Put(index, v)
}

func (s *Session) Drop(index int) error {
	return s.stack.Drop(index)
}

func (s *Session) Dup() error {
	return s.stack.Dup()
}

func (s *Session) Swap() error {
	return s.stack.Swap()
}

func (s *Session) Clear() {
	s.stack.Clear()
}

func (s *Session) Len() int {
	return s.stack.Len()
}

// Text renders the stack top first, one entry per line.
func (s *Session) Text() string {
	return s.stack.Text()
}

// SetBase selects the output base: 2, 8, 10 or 16, or 0 for auto.
func (s *Session) SetBase(base int) {
	s.conf.SetBase(base)
}

func (s *Session) Base() int {
	return s.conf.Base()
}

// SetPrecision sets the integer padding and fraction digits; -1
// disables either.
func (s *Session) SetPrecision(intDigits, fracDigits int) {
	s.conf.SetPrecision(intDigits, fracDigits)
}

// Precision returns the precision in its saved form, "int:frac".
func (s *Session) Precision() string {
	p, _, _ := s.conf.Saved()
	return p
}

// SetMode selects the rendering mode: 0 normal, 1 raw, 2 exponent.
func (s *Session) SetMode(mode int) {
	s.conf.SetMode(config.Mode(mode))
}

func (s *Session) Mode() int {
	return int(s.conf.Mode())
}

// Restore applies saved converter state, as returned by Precision, Mode
// and Base.
func (s *Session) Restore(precision string, mode, base int) error {
	return s.conf.Restore(precision, mode, base)
}

// Save returns the session, converter state and stack, as commands
// that Eval turns back into it.
func (s *Session) Save() (string, error) {
	var b strings.Builder
	if err := run.Save(s.stack, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Eval runs the input text as typed lines and returns its output.
// If execution caused errors, they will be returned concatenated
// together in the error value returned.
func (s *Session) Eval(expr string) (result string, errors error) {
	if !strings.HasSuffix(expr, "\n") {
		expr += "\n"
	}
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	run.Text(s.stack, expr, stdout, stderr)
	var err error
	if stderr.Len() > 0 {
		err = fmt.Errorf("%s", strings.TrimSuffix(stderr.String(), "\n"))
	}
	return stdout.String(), err
}

// Demo represents a running line-by-line demonstration.
type Demo struct {
	session *Session
	scanner *bufio.Scanner
}

// NewDemo returns a new Demo that runs the standard demo script in a
// fresh session.
func NewDemo() *Demo {
	return &Demo{
		session: NewSession(),
		scanner: bufio.NewScanner(strings.NewReader(demo.Text())),
	}
}

// Next returns the script line and the result (and error) produced by
// it. Narration lines produce no result. It returns ("", "", io.EOF)
// at EOF.
func (d *Demo) Next() (line, result string, err error) {
	if !d.scanner.Scan() {
		if err := d.scanner.Err(); err != nil {
			return "", "", err
		}
		return "", "", io.EOF
	}
	line = d.scanner.Text()
	if strings.HasPrefix(strings.TrimSpace(line), "#") {
		return line, "", nil
	}
	result, err = d.session.Eval(line)
	return line, result, err
}

// Help returns the help page formatted in HTML.
func Help() string {
	return help
}
