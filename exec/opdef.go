// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"math"

	"procalc.org/procalc/value"
)

// Priorities. Higher binds tighter.
const (
	MarkerPriority  = math.MinInt32 // list-start marker
	ReducerPriority = -1            // variadic reductions
	NoopPriority    = 0
	AddPriority     = 1
	MulPriority     = 2 // also the bitwise operators
	PowPriority     = 3
	NotPriority     = 4
	FuncPriority    = 5 // unary math functions
	OperandPriority = math.MaxInt32 // values and constants
)

// Variadic is the arity of an operator that consumes values back to a
// list-start marker or the bottom of the stack.
const Variadic = -1

// Assoc selects how an operator ties with an equal-priority operator
// already waiting on the stack.
type Assoc int

const (
	// LeftAssoc resolves the waiting operator first: 8−3−2 is (8−3)−2.
	LeftAssoc Assoc = iota
	// RightAssoc leaves it waiting: 2↑3↑2 is 2↑(3↑2).
	RightAssoc
)

// Func computes an operator's results from its coerced arguments.
// args[0] is the leftmost operand. The first result ends on top of the
// stack.
type Func func(args []value.Value) ([]value.Value, error)

// Def is the immutable definition of an operator.
type Def struct {
	Name     string
	Priority int
	Arity    int        // fixed count, or Variadic
	Args     []Coercion // one per argument; a Variadic op uses Args[0] for all
	Assoc    Assoc
	Fn       Func
}

// IsMarker reports whether d is a list-start marker.
func (d *Def) IsMarker() bool {
	return d.Priority == MarkerPriority
}

// IsOperand reports whether d takes its place on the stack like a value:
// constants, markers and the noop.
func (d *Def) IsOperand() bool {
	return d.Arity == 0
}

// Binds reports whether d, an operator waiting on the stack, must be
// resolved before the operator next can be placed above its operands.
func (d *Def) Binds(next *Def) bool {
	if next.Assoc == RightAssoc {
		return d.Priority > next.Priority
	}
	return d.Priority >= next.Priority
}

func (d *Def) String() string {
	return d.Name
}

// Coercion is the kind of value an operator argument must have.
type Coercion int

const (
	Number  Coercion = iota // any value
	Scalar                  // an Int or a Real; a Complex needs a zero imaginary part
	Integer                 // an exact integer
)

func (c Coercion) String() string {
	switch c {
	case Number:
		return "number"
	case Scalar:
		return "scalar"
	case Integer:
		return "integer"
	}
	return "unknown"
}

// Coerce converts v to the kind c requires, reporting whether it could.
func (c Coercion) Coerce(v value.Value) (value.Value, bool) {
	switch c {
	case Number:
		return v, true
	case Scalar:
		return value.ToScalar(v)
	case Integer:
		i, ok := value.ToInt(v)
		return i, ok
	}
	return nil, false
}
