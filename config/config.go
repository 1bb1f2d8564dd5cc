// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the converter state and I/O settings of one
// calculator session. There is no package-level state; every session
// owns its own Config.
package config // import "procalc.org/procalc/config"

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Mode selects how values are rendered.
type Mode int

const (
	Normal         Mode = iota // Magnitude in the selected base.
	Raw                        // Underlying 64-bit pattern.
	BinaryExponent             // Normalized mantissa and exponent.
	numModes
)

var modeNames = [...]string{
	Normal:         "normal",
	Raw:            "raw",
	BinaryExponent: "exp",
}

func (m Mode) String() string {
	if m < 0 || m >= numModes {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode accepts a mode name or its integer code.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(m), nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || Mode(n) >= numModes {
		return Normal, fmt.Errorf("unknown mode %q", s)
	}
	return Mode(n), nil
}

// ValidBase reports whether base is a base the codec can print.
// Zero means auto.
func ValidBase(base int) bool {
	switch base {
	case 0, 2, 8, 10, 16:
		return true
	}
	return false
}

type Config struct {
	prompt     string
	base       int
	intDigits  int
	fracDigits int
	mode       Mode
	// precSet distinguishes the zero Config from an explicit 0:0 precision.
	precSet   bool
	debug     map[string]bool
	output    io.Writer
	errOutput io.Writer
}

// Base returns the output base. Zero means auto, which prints decimal.
func (c *Config) Base() int {
	return c.base
}

// OutputBase returns the base to print in, resolving auto to 10.
func (c *Config) OutputBase() int {
	if c.base == 0 {
		return 10
	}
	return c.base
}

// SetBase sets the output base. An unsupported base selects auto.
func (c *Config) SetBase(base int) {
	if !ValidBase(base) {
		base = 0
	}
	c.base = base
}

// Precision returns the minimum number of integer digits and the number
// of fraction digits. A negative value disables padding (integer part)
// or truncation (fraction part).
func (c *Config) Precision() (intDigits, fracDigits int) {
	if !c.precSet {
		return -1, -1
	}
	return c.intDigits, c.fracDigits
}

// SetPrecision sets the digit counts. Values below -1 are treated as -1.
func (c *Config) SetPrecision(intDigits, fracDigits int) {
	c.intDigits = max(intDigits, -1)
	c.fracDigits = max(fracDigits, -1)
	c.precSet = true
}

func (c *Config) Mode() Mode {
	return c.mode
}

// SetMode sets the rendering mode. Unknown modes select Normal.
func (c *Config) SetMode(m Mode) {
	if m < 0 || m >= numModes {
		m = Normal
	}
	c.mode = m
}

func (c *Config) Prompt() string {
	return c.prompt
}

func (c *Config) SetPrompt(prompt string) {
	c.prompt = prompt
}

// DebugFlags are the names accepted by SetDebug.
var DebugFlags = []string{
	"stack",  // print the stack after each line
	"tokens", // print tokens as they are scanned
}

// IsDebugFlag reports whether s names a debug flag.
func IsDebugFlag(s string) bool {
	for _, f := range DebugFlags {
		if f == s {
			return true
		}
	}
	return false
}

func (c *Config) Debug(s string) bool {
	return c.debug[s]
}

func (c *Config) SetDebug(s string, state bool) {
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[s] = state
}

// Output returns the writer for results, stdout by default.
func (c *Config) Output() io.Writer {
	if c.output == nil {
		return os.Stdout
	}
	return c.output
}

func (c *Config) SetOutput(w io.Writer) {
	c.output = w
}

// ErrOutput returns the writer for error messages, stderr by default.
func (c *Config) ErrOutput() io.Writer {
	if c.errOutput == nil {
		return os.Stderr
	}
	return c.errOutput
}

func (c *Config) SetErrOutput(w io.Writer) {
	c.errOutput = w
}

// ParsePrecision parses the "int:frac" form used to persist precision.
func ParsePrecision(s string) (intDigits, fracDigits int, err error) {
	i, f, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("bad precision %q: want int:frac", s)
	}
	intDigits, err = strconv.Atoi(strings.TrimSpace(i))
	if err != nil || intDigits < -1 {
		return 0, 0, fmt.Errorf("bad integer digits in precision %q", s)
	}
	fracDigits, err = strconv.Atoi(strings.TrimSpace(f))
	if err != nil || fracDigits < -1 {
		return 0, 0, fmt.Errorf("bad fraction digits in precision %q", s)
	}
	return intDigits, fracDigits, nil
}

// Restore applies converter state saved by a previous session: the
// precision as a colon-joined pair, the integer mode code and the base.
// On error the Config is unchanged.
func (c *Config) Restore(precision string, mode, base int) error {
	intDigits, fracDigits, err := ParsePrecision(precision)
	if err != nil {
		return err
	}
	if mode < 0 || Mode(mode) >= numModes {
		return fmt.Errorf("bad mode code %d", mode)
	}
	if !ValidBase(base) {
		return fmt.Errorf("bad base %d", base)
	}
	c.SetPrecision(intDigits, fracDigits)
	c.SetMode(Mode(mode))
	c.SetBase(base)
	return nil
}

// Saved returns the converter state in the form accepted by Restore.
func (c *Config) Saved() (precision string, mode, base int) {
	i, f := c.Precision()
	return fmt.Sprintf("%d:%d", i, f), int(c.mode), c.base
}
