// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exec holds the operation table: the named operators a
// calculator stack can hold, their priorities and arities, and the
// evaluation that applies them to operands.
package exec // import "procalc.org/procalc/exec"

import (
	"fmt"
)

// Table maps operator names, and their aliases, to definitions.
// A Table is immutable once built and may be shared between sessions.
type Table struct {
	defs    map[string]*Def
	aliases map[string]string
	names   []string // in registration order
	marker  *Def
	noop    *Def
}

// Lookup returns the definition of the named operator. The name may be
// an alias.
func (t *Table) Lookup(name string) (*Def, bool) {
	if canon, ok := t.aliases[name]; ok {
		name = canon
	}
	d, ok := t.defs[name]
	return d, ok
}

// Names returns the canonical operator names in registration order.
func (t *Table) Names() []string {
	return append([]string(nil), t.names...)
}

// Aliases returns a copy of the alias map.
func (t *Table) Aliases() map[string]string {
	m := make(map[string]string, len(t.aliases))
	for k, v := range t.aliases {
		m[k] = v
	}
	return m
}

// Marker returns the list-start marker, or nil if none is registered.
func (t *Table) Marker() *Def {
	return t.marker
}

// Noop returns the operator that marks an empty slot, or nil if none is
// registered.
func (t *Table) Noop() *Def {
	return t.noop
}

// Builder assembles a Table through registration calls. The first
// registration error is kept and reported by Build.
type Builder struct {
	t   *Table
	err error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		t: &Table{
			defs:    make(map[string]*Def),
			aliases: make(map[string]string),
		},
	}
}

// Add registers an operator.
func (b *Builder) Add(d Def) *Builder {
	if b.err != nil {
		return b
	}
	switch {
	case b.taken(d.Name):
		b.err = fmt.Errorf("operator %q already defined", d.Name)
		return b
	case d.Arity < Variadic:
		b.err = fmt.Errorf("operator %q: bad arity %d", d.Name, d.Arity)
		return b
	case d.Arity == Variadic && len(d.Args) != 1:
		b.err = fmt.Errorf("operator %q: variadic operator needs one coercion", d.Name)
		return b
	case d.Arity > 0 && len(d.Args) != d.Arity:
		b.err = fmt.Errorf("operator %q: %d coercions for %d arguments", d.Name, len(d.Args), d.Arity)
		return b
	case d.Fn == nil && d.Priority != MarkerPriority:
		b.err = fmt.Errorf("operator %q: no function", d.Name)
		return b
	}
	def := d
	def.Args = append([]Coercion(nil), d.Args...)
	b.t.defs[d.Name] = &def
	b.t.names = append(b.t.names, d.Name)
	switch {
	case def.IsMarker():
		b.t.marker = &def
	case def.Priority == NoopPriority && def.Arity == 0:
		b.t.noop = &def
	}
	return b
}

// Alias makes alias another name for the registered operator name.
func (b *Builder) Alias(alias, name string) *Builder {
	if b.err != nil {
		return b
	}
	if b.taken(alias) {
		b.err = fmt.Errorf("alias %q already defined", alias)
		return b
	}
	if _, ok := b.t.defs[name]; !ok {
		b.err = fmt.Errorf("alias %q: no operator %q", alias, name)
		return b
	}
	b.t.aliases[alias] = name
	return b
}

func (b *Builder) taken(name string) bool {
	_, isDef := b.t.defs[name]
	_, isAlias := b.t.aliases[name]
	return isDef || isAlias
}

// Build returns the table, or the first registration error.
// The Builder must not be used afterwards.
func (b *Builder) Build() (*Table, error) {
	if b.err != nil {
		return nil, b.err
	}
	t := b.t
	b.t = nil
	return t, nil
}
