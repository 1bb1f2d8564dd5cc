// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"procalc.org/procalc/config"
	"procalc.org/procalc/demo"
	"procalc.org/procalc/exec"
	"procalc.org/procalc/run"
	"procalc.org/procalc/stack"
)

// The demo must run cleanly from start to finish.
func TestDemo(t *testing.T) {
	s := stack.New(new(config.Config), exec.Standard())
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	if !run.Text(s, demo.Text(), stdout, stderr) {
		t.Fatalf("demo execution error:\n%s", stderr)
	}
	for _, want := range []string{
		"7", "11", "3", "512", "12.5",
		"1267650600228229401496703205376",
		"0xff", "0b1010", "0b0.101", "0003.141",
		"0x4024000000000000", "1.2345e3", "0+2j", "1.5+4j",
		"10", "2",
	} {
		found := false
		for _, line := range strings.Split(stdout.String(), "\n") {
			if line == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("demo output lacks %q:\n%s", want, stdout)
		}
	}
}

// The )demo command drives the same script through the stack.
func TestDemoCommand(t *testing.T) {
	s := stack.New(new(config.Config), exec.Standard())
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	if !run.Text(s, ")demo\n", stdout, stderr) || stderr.Len() > 0 {
		t.Fatalf("demo command failed:\n%s", stderr)
	}
	out := stdout.String()
	if !strings.HasPrefix(out, "# This is a demo of procalc.") {
		t.Errorf("demo did not start with its instructions:\n%.80s", out)
	}
	if !strings.HasSuffix(out, "Demo finished\n") {
		t.Errorf("demo did not finish:\n%s", out)
	}
}
