// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package demo implements the I/O for running the )demo
// special command. The script for the demo is in demo.rpn
// in this directory. Its content is embedded in this source file.
package demo

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	_ "embed"
)

//go:embed demo.rpn
var demoText []byte

// Text returns the input text for the standard demo.
func Text() string {
	return string(demoText)
}

// script hands out the demo one line at a time.
type script struct {
	text []byte
}

// next returns the next line, including its newline, or nil at the end.
func (s *script) next() []byte {
	nl := bytes.IndexByte(s.text, '\n')
	if nl < 0 { // EOF or incomplete line.
		return nil
	}
	var line []byte
	line, s.text = s.text[:nl+1], s.text[nl+1:]
	return line
}

// isComment reports whether a script line is narration rather than
// calculator input.
func isComment(line []byte) bool {
	return bytes.HasPrefix(bytes.TrimSpace(line), []byte("#"))
}

// Run runs the demo. The arguments are the user's input, a Writer that
// delivers text to the calculator, and a Writer for the output; the
// calculator is assumed to write to the same output. Each script line
// is echoed to the output and, unless it is narration, sent to the
// calculator. When the user enters a blank line the script advances;
// any other line is sent to the calculator instead, and "quit" stops.
// A nil userInput ignores the user and just runs the script.
func Run(userInput io.Reader, toCalc io.Writer, output io.Writer) error {
	s := &script{text: demoText} // Don't consume the global.
	var scan *bufio.Scanner
	if userInput != nil {
		scan = bufio.NewScanner(userInput)
	}
	// Show first line, with instructions, before accepting user input.
	output.Write(s.next())
	for userInput == nil || scan.Scan() {
		if userInput != nil && len(bytes.TrimSpace(scan.Bytes())) > 0 {
			line := strings.TrimSpace(scan.Text())
			if line == "quit" {
				break
			}
			if _, err := io.WriteString(toCalc, line+"\n"); err != nil {
				return err
			}
			continue
		}
		line := s.next()
		if line == nil {
			break
		}
		output.Write(line)
		if isComment(line) {
			continue
		}
		if _, err := toCalc.Write(line); err != nil {
			return err
		}
	}
	if scan == nil {
		return nil
	}
	return scan.Err()
}
