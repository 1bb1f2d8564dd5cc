// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stack

import "fmt"

// ErrorKind classifies an Error.
type ErrorKind int

const (
	_ ErrorKind = iota
	Empty
	EmptyValue
	UnknownOperation
	IndexOutOfRange
)

func (k ErrorKind) String() string {
	switch k {
	case Empty:
		return "stack empty"
	case EmptyValue:
		return "empty value"
	case UnknownOperation:
		return "unknown operation"
	case IndexOutOfRange:
		return "index out of range"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is a failure of a stack operation.
type Error struct {
	Kind  ErrorKind
	Index int    // for IndexOutOfRange
	Name  string // for UnknownOperation
	Err   error  // underlying cause, if any
}

// Sentinels that match any Error of their kind through errors.Is.
var (
	ErrEmpty            = &Error{Kind: Empty}
	ErrEmptyValue       = &Error{Kind: EmptyValue}
	ErrUnknownOperation = &Error{Kind: UnknownOperation}
	ErrIndexOutOfRange  = &Error{Kind: IndexOutOfRange}
)

func (e *Error) Error() string {
	switch e.Kind {
	case IndexOutOfRange:
		return fmt.Sprintf("%s: %d", e.Kind, e.Index)
	case UnknownOperation:
		return fmt.Sprintf("%s %q", e.Kind, e.Name)
	}
	return e.Kind.String()
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}
