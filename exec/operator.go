// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"math"

	"procalc.org/procalc/value"
)

// Names of operators the stack and the command loop refer to.
const (
	MarkerName = "["
	NoopName   = ""
)

// Aliases are the ASCII and word spellings of the display names.
// None is a valid hexadecimal number, so they work when base is 16.
var Aliases = map[string]string{
	"-":     "−",
	"*":     "×",
	"/":     "÷",
	"**":    "↑",
	"!":     "~",
	"#":     "^",
	"$":     "&~",
	"mod":   "%",
	"and":   "&",
	"or":    "|",
	"xor":   "^",
	"not":   "~",
	"shl":   "<<",
	"shr":   ">>",
	"sum":   "Σ",
	"prod":  "Π",
	"mean":  "μ",
	"gmean": "gμ",
	"sdev":  "σ",
	"pi":    "π",
}

var (
	two     = []Coercion{Number, Number}
	twoReal = []Coercion{Scalar, Scalar}
	twoInt  = []Coercion{Integer, Integer}
	one     = []Coercion{Number}
	oneReal = []Coercion{Scalar}
	oneInt  = []Coercion{Integer}
)

func results(v ...value.Value) []value.Value {
	return v
}

// binary wraps a value.Binary operator.
func binary(op string) Func {
	return func(args []value.Value) ([]value.Value, error) {
		v, err := value.Binary(args[0], op, args[1])
		if err != nil {
			return nil, err
		}
		return results(v), nil
	}
}

// unary wraps a value.Unary operator.
func unary(op string) Func {
	return func(args []value.Value) ([]value.Value, error) {
		v, err := value.Unary(op, args[0])
		if err != nil {
			return nil, err
		}
		return results(v), nil
	}
}

func shift(left bool) Func {
	return func(args []value.Value) ([]value.Value, error) {
		n, ok := args[1].(value.Int).Int64()
		if !ok || n > value.MaxShift || n < -value.MaxShift {
			return nil, &OperationError{Op: shiftName(left), Expected: twoInt, Kind: ArgumentTypeMismatch}
		}
		var (
			v   value.Int
			err error
		)
		if left {
			v, err = value.Lsh(args[0].(value.Int), n)
		} else {
			v, err = value.Rsh(args[0].(value.Int), n)
		}
		if err != nil {
			return nil, err
		}
		return results(v), nil
	}
}

func shiftName(left bool) string {
	if left {
		return "<<"
	}
	return ">>"
}

func reduce(f func([]value.Value) (value.Value, error)) Func {
	return func(args []value.Value) ([]value.Value, error) {
		v, err := f(args)
		if err != nil {
			return nil, err
		}
		return results(v), nil
	}
}

func constant(v value.Value) Func {
	return func([]value.Value) ([]value.Value, error) {
		return results(v), nil
	}
}

func divMod(args []value.Value) ([]value.Value, error) {
	q, r, err := value.DivMod(args[0], args[1])
	if err != nil {
		return nil, err
	}
	return results(q, r), nil
}

func raw(args []value.Value) ([]value.Value, error) {
	b, _ := value.Bits(args[0])
	return results(b), nil
}

func unraw(args []value.Value) ([]value.Value, error) {
	return results(value.FromBits(args[0].(value.Int))), nil
}

func noop([]value.Value) ([]value.Value, error) {
	return nil, nil
}

// Register adds the standard operator set and its aliases to b.
func Register(b *Builder) *Builder {
	b.Add(Def{Name: NoopName, Priority: NoopPriority, Fn: noop})
	b.Add(Def{Name: MarkerName, Priority: MarkerPriority})

	b.Add(Def{Name: "π", Priority: OperandPriority, Fn: constant(value.Real(math.Pi))})
	b.Add(Def{Name: "e", Priority: OperandPriority, Fn: constant(value.Real(math.E))})

	b.Add(Def{Name: "+", Priority: AddPriority, Arity: 2, Args: two, Fn: binary("+")})
	b.Add(Def{Name: "−", Priority: AddPriority, Arity: 2, Args: two, Fn: binary("-")})
	b.Add(Def{Name: "×", Priority: MulPriority, Arity: 2, Args: two, Fn: binary("*")})
	b.Add(Def{Name: "÷", Priority: MulPriority, Arity: 2, Args: two, Fn: binary("/")})
	b.Add(Def{Name: "%", Priority: MulPriority, Arity: 2, Args: twoReal, Fn: binary("mod")})
	b.Add(Def{Name: "divmod", Priority: MulPriority, Arity: 2, Args: twoReal, Fn: divMod})
	b.Add(Def{Name: "↑", Priority: PowPriority, Arity: 2, Args: two, Assoc: RightAssoc, Fn: binary("**")})

	b.Add(Def{Name: "&", Priority: MulPriority, Arity: 2, Args: twoInt, Fn: binary("and")})
	b.Add(Def{Name: "|", Priority: MulPriority, Arity: 2, Args: twoInt, Fn: binary("or")})
	b.Add(Def{Name: "^", Priority: MulPriority, Arity: 2, Args: twoInt, Fn: binary("xor")})
	b.Add(Def{Name: "&~", Priority: MulPriority, Arity: 2, Args: twoInt, Fn: binary("andnot")})
	b.Add(Def{Name: "<<", Priority: MulPriority, Arity: 2, Args: twoInt, Fn: shift(true)})
	b.Add(Def{Name: ">>", Priority: MulPriority, Arity: 2, Args: twoInt, Fn: shift(false)})
	b.Add(Def{Name: "~", Priority: NotPriority, Arity: 1, Args: oneInt, Assoc: RightAssoc, Fn: unary("not")})

	for _, name := range []string{"sin", "cos", "tan", "asin", "acos", "atan", "ln", "lg", "exp", "sqrt", "abs", "neg"} {
		b.Add(Def{Name: name, Priority: FuncPriority, Arity: 1, Args: one, Assoc: RightAssoc, Fn: unary(name)})
	}
	for _, name := range []string{"floor", "ceil"} {
		b.Add(Def{Name: name, Priority: FuncPriority, Arity: 1, Args: oneReal, Assoc: RightAssoc, Fn: unary(name)})
	}
	b.Add(Def{Name: "raw", Priority: FuncPriority, Arity: 1, Args: oneReal, Assoc: RightAssoc, Fn: raw})
	b.Add(Def{Name: "unraw", Priority: FuncPriority, Arity: 1, Args: oneInt, Assoc: RightAssoc, Fn: unraw})

	b.Add(Def{Name: "Σ", Priority: ReducerPriority, Arity: Variadic, Args: one, Fn: reduce(value.Sum)})
	b.Add(Def{Name: "Π", Priority: ReducerPriority, Arity: Variadic, Args: one, Fn: reduce(value.Product)})
	b.Add(Def{Name: "μ", Priority: ReducerPriority, Arity: Variadic, Args: one, Fn: reduce(value.Mean)})
	b.Add(Def{Name: "gμ", Priority: ReducerPriority, Arity: Variadic, Args: oneReal, Fn: reduce(value.GeoMean)})
	b.Add(Def{Name: "σ", Priority: ReducerPriority, Arity: Variadic, Args: oneReal, Fn: reduce(value.StdDev)})

	for alias, name := range Aliases {
		b.Alias(alias, name)
	}
	return b
}

// Standard returns a new table holding the standard operator set.
func Standard() *Table {
	t, err := Register(NewBuilder()).Build()
	if err != nil {
		panic(err)
	}
	return t
}
