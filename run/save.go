// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package run

// Saving a session to a file.

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"procalc.org/procalc/exec"
	"procalc.org/procalc/scan"
	"procalc.org/procalc/stack"
	"procalc.org/procalc/value"
)

// Save writes the converter state and the stack to w as ) commands
// that rebuild them when run. Values are written in decimal so they
// read back exactly, whatever the output settings. Pending operators
// are saved unevaluated.
func Save(s *stack.Stack, w io.Writer) error {
	out := bufio.NewWriter(w)
	p, m, b := s.Config().Saved()
	fmt.Fprintf(out, ")restore %s %d %d\n", p, m, b)
	fmt.Fprintf(out, ")clear\n")
	// Bottom first; each entry goes on top of the ones before.
	entries := s.Entries()
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		switch {
		case !e.IsOp():
			lit, err := value.Literal(e.Value)
			if err != nil {
				return fmt.Errorf("save: entry %d: %v", i, err)
			}
			fmt.Fprintf(out, ")push %s\n", lit)
		case e.Op.Name == exec.NoopName:
			// Nothing to evaluate.
		default:
			fmt.Fprintf(out, ")pushop %s\n", e.Op.Name)
		}
	}
	return out.Flush()
}

// saveFile saves the session to the named file.
func saveFile(s *stack.Stack, file string) (err error) {
	fd, err := os.Create(file)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fd.Close(); err == nil {
			err = cerr
		}
	}()
	return Save(s, fd)
}

// Load runs the named file against the stack, as typed input. It
// reports whether the file ran without error.
func Load(s *stack.Stack, file string) (bool, error) {
	fd, err := os.Open(file)
	if err != nil {
		return false, err
	}
	defer fd.Close()
	return Run(s, scan.New(s.Config(), s.Table(), file, bufio.NewReader(fd)), false), nil
}
