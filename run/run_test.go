// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package run

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"procalc.org/procalc/config"
	"procalc.org/procalc/exec"
	"procalc.org/procalc/stack"
)

func newStack() *stack.Stack {
	return stack.New(new(config.Config), exec.Standard())
}

func runText(t *testing.T, s *stack.Stack, input string) (stdout, stderr string, ok bool) {
	t.Helper()
	var out, errs bytes.Buffer
	ok = Text(s, input, &out, &errs)
	return out.String(), errs.String(), ok
}

func TestErrorSkipsLine(t *testing.T) {
	s := newStack()
	out, errs, ok := runText(t, s, "1 frob 2 =\n3 =\n")
	if ok {
		t.Error("expected failure")
	}
	if errs != "<input>:1: frob is not an operator\n" {
		t.Errorf("errors: got %q", errs)
	}
	// The 1 before the error stays; the rest of the line is skipped.
	if out != "3\n" {
		t.Errorf("output: got %q", out)
	}
	if got := s.Text(); got != "3\n1\n" {
		t.Errorf("stack: got %q", got)
	}
}

func TestTextRestoresOutput(t *testing.T) {
	s := newStack()
	conf := s.Config()
	var mine bytes.Buffer
	conf.SetOutput(&mine)
	runText(t, s, "1 =\n")
	if conf.Output() != &mine {
		t.Error("output writer not restored")
	}
	if mine.Len() != 0 {
		t.Errorf("output leaked: %q", mine.String())
	}
}

func TestCommands(t *testing.T) {
	var tests = []struct {
		input  string
		output string
	}{
		{")base 16\n)base\n", "16\n"},
		{")precision 3:1\n)prec\n", "3:1\n"},
		{")mode exp\n)mode\n", "exp\n"},
		{")mode 1\n)mode\n", "raw\n"},
		{")prompt \"> \"\n)prompt\n", "\"> \"\n"},
		{")debug stack\n)debug stack\n", "true\nfalse\n"},
		{")push 0x10\n)get\n", "16\n"},
		{"1 + 2\n)pushop ×\n)stack\n", "×\n+\n2\n1\n"},
		{")save\n", "-1:-1 0 0\n"},
	}
	for _, test := range tests {
		out, errs, ok := runText(t, newStack(), test.input)
		if !ok {
			t.Errorf("%q: %s", test.input, errs)
			continue
		}
		if out != test.output {
			t.Errorf("%q: expected %q; got %q", test.input, test.output, out)
		}
	}
}

func TestOps(t *testing.T) {
	out, errs, ok := runText(t, newStack(), ")ops\n")
	if !ok {
		t.Fatal(errs)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if !strings.HasPrefix(lines[0], "π\toperand") && !strings.HasPrefix(lines[0], "e\toperand") {
		t.Errorf("first line: %q", lines[0])
	}
	if last := lines[len(lines)-1]; last != "[\tmarker" {
		t.Errorf("last line: %q", last)
	}
	if !strings.Contains(out, "×\t2\t*\n") {
		t.Errorf("× and its alias missing:\n%s", out)
	}
}

func TestSaveLoad(t *testing.T) {
	s := newStack()
	input := ")base 16\n)precision 2:3\n)push 2.5-1j\n5 + 0.25 × [ 1\n"
	if _, errs, ok := runText(t, s, input); !ok {
		t.Fatal(errs)
	}
	var buf bytes.Buffer
	if err := Save(s, &buf); err != nil {
		t.Fatal(err)
	}
	want := `)restore 2:3 0 16
)clear
)push 2.5-1.0j
)push 5
)push 0.25
)pushop [
)push 1
)pushop ×
)pushop +
`
	if buf.String() != want {
		t.Fatalf("saved:\n%s\nwant:\n%s", buf.String(), want)
	}

	file := filepath.Join(t.TempDir(), "session.rpn")
	if err := os.WriteFile(file, buf.Bytes(), 0666); err != nil {
		t.Fatal(err)
	}
	u := newStack()
	ok, err := Load(u, file)
	if err != nil || !ok {
		t.Fatalf("load: %v", err)
	}
	if u.Text() != s.Text() {
		t.Errorf("loaded stack:\n%s\nwant:\n%s", u.Text(), s.Text())
	}
	if u.Pending() != s.Pending() {
		t.Errorf("loaded %d pending operators; want %d", u.Pending(), s.Pending())
	}
	p, m, b := u.Config().Saved()
	if p != "2:3" || m != 0 || b != 16 {
		t.Errorf("loaded state %q %d %d", p, m, b)
	}
}

func TestSaveCommand(t *testing.T) {
	file := filepath.Join(t.TempDir(), "s.rpn")
	s := newStack()
	if _, errs, ok := runText(t, s, "1 2 3\n)save "+file+"\n)clear\n)load "+file+"\n"); !ok {
		t.Fatal(errs)
	}
	if got := s.Text(); got != "3\n2\n1\n" {
		t.Errorf("got %q", got)
	}
	if _, _, ok := runText(t, s, ")load "+filepath.Join(t.TempDir(), "missing")+"\n"); ok {
		t.Error("load of missing file succeeded")
	}
}

func TestSaveInfinity(t *testing.T) {
	s := newStack()
	runText(t, s, "1 / 0\n")
	if _, _, ok := runText(t, s, ")dup\n"); !ok {
		t.Fatal("dup failed")
	}
	var buf bytes.Buffer
	if err := Save(s, &buf); err == nil {
		t.Error("saved an infinity")
	}
}
