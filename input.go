// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"procalc.org/procalc/config"
)

// interactive reports whether f is a terminal that supports line
// editing.
func interactive(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil || fi.Mode()&os.ModeCharDevice == 0 {
		return false
	}
	return liner.TerminalSupported()
}

// lineReader delivers terminal input a byte at a time, prompting for
// a new line, with editing and history, each time the last one runs out.
type lineReader struct {
	conf *config.Config
	line *liner.State
	buf  string
}

func newLineReader(conf *config.Config) *lineReader {
	r := &lineReader{
		conf: conf,
		line: liner.NewLiner(),
	}
	r.line.SetCtrlCAborts(true)
	return r
}

// Close restores the terminal.
func (r *lineReader) Close() {
	r.line.Close()
}

func (r *lineReader) ReadByte() (byte, error) {
	for r.buf == "" {
		text, err := r.line.Prompt(r.conf.Prompt())
		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			// Abandon the line being typed.
			continue
		case err != nil:
			return 0, io.EOF
		}
		if strings.TrimSpace(text) != "" {
			r.line.AppendHistory(text)
		}
		r.buf = text + "\n"
	}
	c := r.buf[0]
	r.buf = r.buf[1:]
	return c, nil
}
