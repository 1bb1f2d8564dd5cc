// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package run

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"procalc.org/procalc/config"
	"procalc.org/procalc/demo"
	"procalc.org/procalc/exec"
	"procalc.org/procalc/scan"
	"procalc.org/procalc/stack"
	"procalc.org/procalc/value"
)

const commandHelp = `Special commands:
  ) base [n]            output base: 0 (auto), 2, 8, 10 or 16
  ) precision [i:f]     pad integer part to i digits, show f fraction digits; -1 disables
  ) mode [m]            normal, raw or exp (or 0, 1, 2)
  ) debug [flag]        toggle a debug flag: stack, tokens
  ) prompt [text]       set the interactive prompt
  ) push v [i]          insert value v at index i (default top)
  ) pop [i]             remove and print the entry at index i
  ) get [i]             print the entry at index i
  ) put i v             replace the entry at index i with value v
  ) drop [i]            remove the entry at index i
  ) dup                 evaluate the top and push a copy
  ) swap                evaluate and exchange the top two values
  ) clear               empty the stack
  ) stack               print the stack, top first
  ) ops                 list the operators and their priorities
  ) pushop name [i]      insert operator name at index i (default top)
  ) save [file]         print the converter state as precision mode base,
                        or write the session to file
  ) load file           run the commands in file
  ) restore p m b       restore converter state printed by ) save
  ) demo                run the demonstration script
  ) help                print this text
`

// command carries out a ) command. The text is the line after the
// parenthesis.
func command(s *stack.Stack, text string) error {
	conf := s.Config()
	out := conf.Output()
	args := strings.Fields(text)
	if len(args) == 0 {
		return fmt.Errorf("empty command")
	}
	name, args := args[0], args[1:]
	switch name {
	case "help":
		fmt.Fprint(out, commandHelp)
	case "base":
		if len(args) == 0 {
			fmt.Fprintf(out, "%d\n", conf.Base())
			break
		}
		base, err := decimalArg(args[0])
		if err != nil {
			return err
		}
		if !config.ValidBase(base) {
			return fmt.Errorf("illegal base %d", base)
		}
		conf.SetBase(base)
	case "precision", "prec":
		if len(args) == 0 {
			i, f := conf.Precision()
			fmt.Fprintf(out, "%d:%d\n", i, f)
			break
		}
		i, f, err := config.ParsePrecision(args[0])
		if err != nil {
			return err
		}
		conf.SetPrecision(i, f)
	case "mode":
		if len(args) == 0 {
			fmt.Fprintln(out, conf.Mode())
			break
		}
		m, err := config.ParseMode(args[0])
		if err != nil {
			return err
		}
		conf.SetMode(m)
	case "debug":
		if len(args) == 0 {
			for _, f := range config.DebugFlags {
				fmt.Fprintf(out, "%s\t%t\n", f, conf.Debug(f))
			}
			break
		}
		if !config.IsDebugFlag(args[0]) {
			return fmt.Errorf("no such debug flag: %s", args[0])
		}
		conf.SetDebug(args[0], !conf.Debug(args[0]))
		fmt.Fprintln(out, conf.Debug(args[0]))
	case "prompt":
		if len(args) == 0 {
			fmt.Fprintf(out, "%q\n", conf.Prompt())
			break
		}
		prompt := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(text), name))
		if p, err := strconv.Unquote(prompt); err == nil {
			prompt = p
		}
		conf.SetPrompt(prompt)
	case "push":
		if len(args) == 0 {
			return fmt.Errorf("push: missing value")
		}
		v, err := value.Parse(args[0])
		if err != nil {
			return err
		}
		i, err := indexArg(args[1:])
		if err != nil {
			return err
		}
		return s.Push(v, i)
	case "pop", "get":
		i, err := indexArg(args)
		if err != nil {
			return err
		}
		var e stack.Entry
		if name == "pop" {
			e, err = s.Pop(i)
		} else {
			e, err = s.Get(i)
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(out, e.Sprint(conf))
	case "put":
		if len(args) != 2 {
			return fmt.Errorf("usage: put index value")
		}
		i, err := decimalArg(args[0])
		if err != nil {
			return err
		}
		v, err := value.Parse(args[1])
		if err != nil {
			return err
		}
		return s.Put(i, v)
	case "drop":
		i, err := indexArg(args)
		if err != nil {
			return err
		}
		return s.Drop(i)
	case "dup":
		return s.Dup()
	case "swap":
		return s.Swap()
	case "clear":
		s.Clear()
	case "stack":
		fmt.Fprint(out, s.Text())
	case "ops":
		printOps(s, conf)
	case "pushop":
		if len(args) == 0 {
			return fmt.Errorf("pushop: missing operator")
		}
		i, err := indexArg(args[1:])
		if err != nil {
			return err
		}
		return s.PushOpAt(args[0], i)
	case "save":
		switch len(args) {
		case 0:
			p, m, b := conf.Saved()
			fmt.Fprintf(out, "%s %d %d\n", p, m, b)
		case 1:
			return saveFile(s, args[0])
		default:
			return fmt.Errorf("usage: save [file]")
		}
	case "load":
		if len(args) != 1 {
			return fmt.Errorf("usage: load file")
		}
		ok, err := Load(s, args[0])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("errors loading %s", args[0])
		}
	case "restore":
		if len(args) != 3 {
			return fmt.Errorf("usage: restore precision mode base")
		}
		m, err := decimalArg(args[1])
		if err != nil {
			return err
		}
		b, err := decimalArg(args[2])
		if err != nil {
			return err
		}
		return conf.Restore(args[0], m, b)
	case "demo":
		if err := demo.Run(nil, &stackWriter{s}, out); err != nil {
			return err
		}
		fmt.Fprintln(out, "Demo finished")
	default:
		return fmt.Errorf(")%s: unknown command", name)
	}
	return nil
}

// decimalArg parses a command's numeric argument, always in decimal.
func decimalArg(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad number %q", s)
	}
	return n, nil
}

// indexArg returns the optional stack index in args, defaulting to the
// top.
func indexArg(args []string) (int, error) {
	switch len(args) {
	case 0:
		return 0, nil
	case 1:
		return decimalArg(args[0])
	}
	return 0, fmt.Errorf("too many arguments")
}

// printOps lists the operators by priority, tightest first, with their
// aliases.
func printOps(s *stack.Stack, conf *config.Config) {
	tab := s.Table()
	aliases := make(map[string][]string)
	for alias, name := range tab.Aliases() {
		aliases[name] = append(aliases[name], alias)
	}
	var defs []*exec.Def
	for _, name := range tab.Names() {
		if d, ok := tab.Lookup(name); ok && d.Name != exec.NoopName {
			defs = append(defs, d)
		}
	}
	sort.SliceStable(defs, func(i, j int) bool {
		return defs[i].Priority > defs[j].Priority
	})
	out := conf.Output()
	for _, d := range defs {
		fmt.Fprintf(out, "%s\t%s", d.Name, priorityName(d.Priority))
		if a := aliases[d.Name]; len(a) > 0 {
			sort.Strings(a)
			fmt.Fprintf(out, "\t%s", strings.Join(a, " "))
		}
		fmt.Fprintln(out)
	}
}

func priorityName(p int) string {
	switch p {
	case exec.OperandPriority:
		return "operand"
	case exec.MarkerPriority:
		return "marker"
	}
	return strconv.Itoa(p)
}

// Writer returns a Writer that feeds the lines written to it to the
// stack, as typed input. Errors are reported to the configured error
// output.
func Writer(s *stack.Stack) io.Writer {
	return &stackWriter{s}
}

type stackWriter struct {
	s *stack.Stack
}

func (w *stackWriter) Write(b []byte) (int, error) {
	scanner := scan.New(w.s.Config(), w.s.Table(), "<demo>", bytes.NewReader(b))
	Run(w.s, scanner, false)
	return len(b), nil
}
