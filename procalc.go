// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"procalc.org/procalc/config"
	"procalc.org/procalc/demo"
	"procalc.org/procalc/exec"
	"procalc.org/procalc/run"
	"procalc.org/procalc/scan"
	"procalc.org/procalc/stack"
)

var (
	base      = flag.Int("base", 0, "output base: 0 (auto), 2, 8, 10 or 16")
	precision = flag.String("precision", "-1:-1", "integer and fraction `digits`, as int:frac; -1 disables either")
	mode      = flag.String("mode", "normal", "rendering `mode`: normal, raw or exp")
	prompt    = flag.String("prompt", "", "command `prompt`")
	debugFlag = flag.String("debug", "", "comma-separated `names` of debug settings to enable")
	execute   = flag.Bool("e", false, "execute arguments as a single expression")
	demoFlag  = flag.Bool("demo", false, "run the demo")
)

var (
	conf  config.Config
	table = exec.Standard()
)

func main() {
	flag.Usage = usage
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("procalc: ")

	if err := initConf(); err != nil {
		log.Fatal(err)
	}
	s := stack.New(&conf, table)

	if *execute {
		input := strings.Join(flag.Args(), " ") + "\n"
		if !run.Text(s, input, os.Stdout, os.Stderr) {
			os.Exit(1)
		}
		return
	}

	if *demoFlag {
		if flag.NArg() > 0 {
			log.Fatal("no arguments allowed with -demo")
		}
		if err := demo.Run(os.Stdin, run.Writer(s), os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	if flag.NArg() > 0 {
		ok := true
		for _, name := range flag.Args() {
			loaded, err := run.Load(s, name)
			if err != nil {
				log.Fatal(err)
			}
			ok = loaded && ok
		}
		if !ok {
			os.Exit(1)
		}
		return
	}

	if interactive(os.Stdin) {
		in := newLineReader(&conf)
		defer in.Close()
		run.Run(s, scan.New(&conf, table, "<stdin>", in), true)
		return
	}
	if !run.Run(s, scan.New(&conf, table, "<stdin>", bufio.NewReader(os.Stdin)), false) {
		os.Exit(1)
	}
}

func initConf() error {
	if !config.ValidBase(*base) {
		return fmt.Errorf("illegal base %d", *base)
	}
	conf.SetBase(*base)
	i, f, err := config.ParsePrecision(*precision)
	if err != nil {
		return err
	}
	conf.SetPrecision(i, f)
	m, err := config.ParseMode(*mode)
	if err != nil {
		return err
	}
	conf.SetMode(m)
	conf.SetPrompt(*prompt)
	if *debugFlag != "" {
		for _, name := range strings.Split(*debugFlag, ",") {
			if !config.IsDebugFlag(name) {
				return fmt.Errorf("no such debug flag: %s", name)
			}
			conf.SetDebug(name, true)
		}
	}
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: procalc [options] [file ...]\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
	os.Exit(2)
}
