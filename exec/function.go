// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"errors"
	"fmt"
	"strings"

	"procalc.org/procalc/value"
)

// Operands is the stack an operator draws its arguments from and
// pushes its results to. It is implemented by package stack; the
// interface lives here so this package does not depend on it.
type Operands interface {
	// PopOp evaluates the top of the stack down to a value and
	// removes that value.
	PopOp() (value.Value, error)
	// PushResult puts v on top of the stack.
	PushResult(v value.Value)
	// PopMarker removes a list-start marker from the top of the stack
	// and reports whether there was one.
	PopMarker() bool
	// Len is the number of entries on the stack.
	Len() int
}

// ErrorKind classifies an OperationError.
type ErrorKind int

const (
	_ ErrorKind = iota
	ArgumentTypeMismatch
)

func (k ErrorKind) String() string {
	if k == ArgumentTypeMismatch {
		return "arguments type mismatch"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// OperationError reports arguments an operator cannot take.
type OperationError struct {
	Op       string
	Expected []Coercion
	Kind     ErrorKind
	Err      error // underlying cause, if any
}

// ErrArgumentTypeMismatch matches any OperationError of that kind
// through errors.Is.
var ErrArgumentTypeMismatch = &OperationError{Kind: ArgumentTypeMismatch}

func (e *OperationError) Error() string {
	types := make([]string, len(e.Expected))
	for i, c := range e.Expected {
		types[i] = c.String()
	}
	msg := fmt.Sprintf("%s for %s(%s)", e.Kind, e.Op, strings.Join(types, ", "))
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *OperationError) Is(target error) bool {
	t, ok := target.(*OperationError)
	return ok && t.Kind == e.Kind
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

func (d *Def) mismatch(n int, err error) *OperationError {
	expected := d.Args
	if d.Arity == Variadic {
		expected = make([]Coercion, n)
		for i := range expected {
			expected[i] = d.Args[0]
		}
	}
	return &OperationError{Op: d.Name, Expected: expected, Kind: ArgumentTypeMismatch, Err: err}
}

// Apply evaluates d against the stack: it pops d's arguments,
// evaluating any operators it meets on the way, coerces them, computes
// the results and pushes them so the first result ends on top.
// Errors leave whatever has already been popped or evaluated as it is.
func Apply(ops Operands, d *Def) error {
	args, err := collect(ops, d)
	if err != nil {
		return err
	}
	for i, a := range args {
		c := Number
		if d.Arity == Variadic {
			c = d.Args[0]
		} else if i < len(d.Args) {
			c = d.Args[i]
		}
		v, ok := c.Coerce(a)
		if !ok {
			return d.mismatch(len(args), nil)
		}
		args[i] = v
	}
	if d.Fn == nil {
		return nil
	}
	results, err := d.Fn(args)
	if err != nil {
		var oe *OperationError
		if errors.As(err, &oe) {
			return err
		}
		return d.mismatch(len(args), err)
	}
	for i := len(results) - 1; i >= 0; i-- {
		ops.PushResult(results[i])
	}
	return nil
}

// collect pops d's arguments, leftmost first.
func collect(ops Operands, d *Def) ([]value.Value, error) {
	var args []value.Value
	if d.Arity == Variadic {
		for ops.Len() > 0 && !ops.PopMarker() {
			v, err := ops.PopOp()
			if err != nil {
				return nil, err
			}
			args = append(args, v)
		}
	} else {
		for i := 0; i < d.Arity; i++ {
			v, err := ops.PopOp()
			if err != nil {
				return nil, err
			}
			args = append(args, v)
		}
	}
	// Popped rightmost first.
	for i, j := 0, len(args)-1; i < j; i, j = i+1, j-1 {
		args[i], args[j] = args[j], args[i]
	}
	return args, nil
}
