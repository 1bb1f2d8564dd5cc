// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stack implements the calculator's operand stack. Operands and
// operators typed in infix order are stored in reverse-Polish order,
// with operator priorities deciding where each new entry goes, and
// nothing is evaluated until a result is asked for.
//
// Index 0 is the top of the stack. The top entries may be a run of
// operators still waiting for their right operands; an operand is
// placed just below that run, and a new operator first resolves the
// waiting operators that bind at least as tightly as it does. Read from
// the bottom up, the entries are always an RPN program.
package stack // import "procalc.org/procalc/stack"

import (
	"strings"

	"golang.org/x/text/width"

	"procalc.org/procalc/config"
	"procalc.org/procalc/exec"
	"procalc.org/procalc/value"
)

// Entry is a stack entry: a value, or an operator from the table.
// Exactly one of the fields is set.
type Entry struct {
	Value value.Value
	Op    *exec.Def
}

// IsOp reports whether the entry is an operator.
func (e Entry) IsOp() bool {
	return e.Op != nil
}

// Sprint renders the entry: values through conf, operators by name.
func (e Entry) Sprint(conf *config.Config) string {
	if e.IsOp() {
		return e.Op.Name
	}
	return e.Value.Sprint(conf)
}

func (e Entry) String() string {
	return e.Sprint(nil)
}

// Stack is the operand stack of one calculator session. It is not safe
// for concurrent use.
type Stack struct {
	conf    *config.Config
	table   *exec.Table
	entries []Entry // bottom first
	pending int     // operators at the top waiting for operands
}

// New returns an empty stack that resolves operators through table
// and prints values through conf. A nil table selects the standard
// operator set.
func New(conf *config.Config, table *exec.Table) *Stack {
	if table == nil {
		table = exec.Standard()
	}
	if conf == nil {
		conf = new(config.Config)
	}
	return &Stack{conf: conf, table: table}
}

// Config returns the configuration used to print the stack.
func (s *Stack) Config() *config.Config {
	return s.conf
}

// Table returns the operator table.
func (s *Stack) Table() *exec.Table {
	return s.table
}

// Len is the number of entries on the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Pending is the number of operators at the top still waiting for an
// operand.
func (s *Stack) Pending() int {
	return s.pending
}

// pos converts a stack index to a position in entries.
func (s *Stack) pos(i int) int {
	return len(s.entries) - 1 - i
}

func (s *Stack) at(i int) Entry {
	return s.entries[s.pos(i)]
}

// insert puts e at index i, so that it is preceded by i entries.
func (s *Stack) insert(i int, e Entry) {
	p := len(s.entries) - i
	s.entries = append(s.entries, Entry{})
	copy(s.entries[p+1:], s.entries[p:])
	s.entries[p] = e
}

// remove deletes and returns the entry at index i.
func (s *Stack) remove(i int) Entry {
	p := s.pos(i)
	e := s.entries[p]
	s.entries = append(s.entries[:p], s.entries[p+1:]...)
	if i < s.pending {
		s.pending--
	}
	return e
}

// check validates an index of an existing entry.
func (s *Stack) check(i int) error {
	if len(s.entries) == 0 {
		return &Error{Kind: Empty}
	}
	if i < 0 || i >= len(s.entries) {
		return &Error{Kind: IndexOutOfRange, Index: i}
	}
	return nil
}

// Lookup returns the table's definition of the named operator.
func (s *Stack) Lookup(name string) (*exec.Def, error) {
	d, ok := s.table.Lookup(width.Fold.String(name))
	if !ok {
		return nil, &Error{Kind: UnknownOperation, Name: name}
	}
	return d, nil
}

// PushOp enters a token typed by the user: the name of an operator, or
// a number. Full-width characters are read as their narrow forms.
// Text that is neither fails with a *value.ParseError, or with
// UnknownOperation if it has no decimal digits at all.
func (s *Stack) PushOp(text string) error {
	tok := width.Fold.String(strings.TrimSpace(text))
	if tok == "" {
		return &Error{Kind: EmptyValue}
	}
	if d, ok := s.table.Lookup(tok); ok {
		s.PushDef(d)
		return nil
	}
	v, err := value.Parse(tok)
	if err != nil {
		if !strings.ContainsAny(tok, "0123456789") {
			return &Error{Kind: UnknownOperation, Name: tok, Err: err}
		}
		return err
	}
	s.insert(s.pending, Entry{Value: v})
	return nil
}

// PushValue enters an operand, as PushOp does for a number.
func (s *Stack) PushValue(v value.Value) error {
	if v == nil {
		return &Error{Kind: EmptyValue}
	}
	s.insert(s.pending, Entry{Value: v})
	return nil
}

// PushDef enters an operator. Constants, markers and the noop take the
// place of an operand.
func (s *Stack) PushDef(d *exec.Def) {
	if d.IsOperand() {
		s.insert(s.pending, Entry{Op: d})
		return
	}
	for s.pending > 0 && s.at(s.pending-1).Op.Binds(d) {
		s.pending--
	}
	s.insert(s.pending, Entry{Op: d})
	s.pending++
}

// PopOp evaluates the stack down to a value at the top and removes it.
// An error while applying an operator stops evaluation; operators
// already applied stay applied.
func (s *Stack) PopOp() (value.Value, error) {
	for {
		if len(s.entries) == 0 {
			return nil, &Error{Kind: Empty}
		}
		e := s.remove(0)
		if !e.IsOp() {
			return e.Value, nil
		}
		if err := exec.Apply(s, e.Op); err != nil {
			return nil, err
		}
	}
}

// PushResult puts an operator's result on top of the stack.
func (s *Stack) PushResult(v value.Value) {
	s.insert(0, Entry{Value: v})
	s.pending = 0
}

// PopMarker removes a list-start marker from the top of the stack and
// reports whether there was one.
func (s *Stack) PopMarker() bool {
	if len(s.entries) == 0 {
		return false
	}
	if e := s.at(0); e.IsOp() && e.Op.IsMarker() {
		s.remove(0)
		return true
	}
	return false
}

// Push inserts v at index i, bypassing operator priorities.
// Operators above it stop waiting for operands.
func (s *Stack) Push(v value.Value, i int) error {
	if v == nil {
		return &Error{Kind: EmptyValue}
	}
	if i < 0 || i > len(s.entries) {
		return &Error{Kind: IndexOutOfRange, Index: i}
	}
	s.insert(i, Entry{Value: v})
	if i < s.pending {
		s.pending = i
	}
	return nil
}

// PushOpAt inserts the named operator at index i, bypassing operator
// priorities. An operator inserted among the pending ones, or just
// below them, joins them; a constant or marker acts as Push does.
func (s *Stack) PushOpAt(name string, i int) error {
	d, err := s.Lookup(name)
	if err != nil {
		return err
	}
	if i < 0 || i > len(s.entries) {
		return &Error{Kind: IndexOutOfRange, Index: i}
	}
	s.insert(i, Entry{Op: d})
	switch {
	case d.IsOperand():
		s.pending = min(s.pending, i)
	case i <= s.pending:
		s.pending++
	}
	return nil
}

// Pop removes and returns the entry at index i.
func (s *Stack) Pop(i int) (Entry, error) {
	if err := s.check(i); err != nil {
		return Entry{}, err
	}
	return s.remove(i), nil
}

// Get returns the entry at index i.
func (s *Stack) Get(i int) (Entry, error) {
	if err := s.check(i); err != nil {
		return Entry{}, err
	}
	return s.at(i), nil
}

// Put replaces the entry at index i with v.
func (s *Stack) Put(i int, v value.Value) error {
	if v == nil {
		return &Error{Kind: EmptyValue}
	}
	if err := s.check(i); err != nil {
		return err
	}
	s.entries[s.pos(i)] = Entry{Value: v}
	if i < s.pending {
		s.pending = i
	}
	return nil
}

// Drop removes the entry at index i.
func (s *Stack) Drop(i int) error {
	_, err := s.Pop(i)
	return err
}

// Clear empties the stack.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
	s.pending = 0
}

// Dup evaluates the top of the stack and pushes a second copy of the
// result.
func (s *Stack) Dup() error {
	v, err := s.PopOp()
	if err != nil {
		return err
	}
	s.PushResult(v)
	s.PushResult(v)
	return nil
}

// Swap evaluates the top two values and exchanges them. On error the
// stack holds whatever evaluation left.
func (s *Stack) Swap() error {
	a, err := s.PopOp()
	if err != nil {
		return err
	}
	b, err := s.PopOp()
	if err != nil {
		s.PushResult(a)
		return err
	}
	s.PushResult(a)
	s.PushResult(b)
	return nil
}

// Entries returns the entries, top first.
func (s *Stack) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	for i := range out {
		out[i] = s.at(i)
	}
	return out
}

// Text renders the stack top first, one entry per line.
func (s *Stack) Text() string {
	var b strings.Builder
	for i := 0; i < len(s.entries); i++ {
		b.WriteString(s.at(i).Sprint(s.conf))
		b.WriteByte('\n')
	}
	return b.String()
}
