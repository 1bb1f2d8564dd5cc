// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package demo

import (
	"strings"
	"testing"
)

func TestRunSteps(t *testing.T) {
	var calc, out strings.Builder
	// Two steps, a line of the user's own, then quit.
	user := strings.NewReader("\n\n2 + 2 =\nquit\n")
	if err := Run(user, &calc, &out); err != nil {
		t.Fatal(err)
	}
	lines := strings.SplitAfter(Text(), "\n")
	if want := lines[0] + lines[1] + lines[2]; out.String() != want {
		t.Errorf("output: expected %q; got %q", want, out.String())
	}
	// Narration is not sent to the calculator.
	if want := lines[2] + "2 + 2 =\n"; calc.String() != want {
		t.Errorf("calculator input: expected %q; got %q", want, calc.String())
	}
}

func TestRunAll(t *testing.T) {
	var calc, out strings.Builder
	if err := Run(nil, &calc, &out); err != nil {
		t.Fatal(err)
	}
	if out.String() != Text() {
		t.Error("output is not the whole script")
	}
	for _, line := range strings.SplitAfter(calc.String(), "\n") {
		if isComment([]byte(line)) {
			t.Errorf("narration sent to calculator: %q", line)
		}
	}
	if !strings.Contains(calc.String(), "3 + 4 =\n") {
		t.Errorf("calculator input lacks first step:\n%s", calc.String())
	}
}
