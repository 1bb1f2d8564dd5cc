// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package run provides the execution control for procalc: it feeds
// scanned tokens to the stack and carries out ) commands.
// It is factored out of main so it can be used for tests.
// This layout also helps out procalc/mobile.
package run // import "procalc.org/procalc/run"

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"procalc.org/procalc/scan"
	"procalc.org/procalc/stack"
)

// Run reads tokens from the scanner and applies them to the stack until
// EOF. An error is reported to the configured error output, prefixed
// by the input location, and the rest of its line is skipped.
// The return value reports whether every line ran without error.
// If interactive is set, a blank line follows each error report so it
// stands apart from the next prompt.
func Run(s *stack.Stack, scanner *scan.Scanner, interactive bool) (success bool) {
	conf := s.Config()
	success = true
	skip := false
	for {
		tok := scanner.Next()
		var err error
		switch tok.Type {
		case scan.EOF:
			return success
		case scan.Newline:
			if !skip && conf.Debug("stack") {
				fmt.Fprint(conf.Output(), s.Text())
			}
			skip = false
			continue
		}
		if skip {
			continue
		}
		switch tok.Type {
		case scan.Error:
			err = errors.New(tok.Text)
		case scan.Number, scan.Operator:
			err = s.PushOp(tok.Text)
		case scan.Equals:
			err = result(s)
		case scan.Command:
			err = command(s, tok.Text)
		}
		if err != nil {
			fmt.Fprintf(conf.ErrOutput(), "%s%s\n", scanner.Loc(), err)
			if interactive {
				fmt.Fprintln(conf.ErrOutput())
			}
			success = false
			skip = true
		}
	}
}

// result evaluates the stack, prints the value and leaves it on top,
// so the next line can carry on from it.
func result(s *stack.Stack) error {
	v, err := s.PopOp()
	if err != nil {
		return err
	}
	conf := s.Config()
	fmt.Fprintln(conf.Output(), v.Sprint(conf))
	return s.PushValue(v)
}

// Text runs the input text against the stack, writing output to stdout
// and errors to stderr. It reports whether it ran without error.
func Text(s *stack.Stack, input string, stdout, stderr io.Writer) bool {
	conf := s.Config()
	saveOut, saveErr := conf.Output(), conf.ErrOutput()
	defer func() {
		conf.SetOutput(saveOut)
		conf.SetErrOutput(saveErr)
	}()
	conf.SetOutput(stdout)
	conf.SetErrOutput(stderr)
	scanner := scan.New(conf, s.Table(), "<input>", strings.NewReader(input))
	return Run(s, scanner, false)
}
