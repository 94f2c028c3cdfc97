// This file is part of vmAssmbler - https://github.com/cooperalpaca/vmAssmbler
//
// Copyright 2016 The vmAssmbler Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cooperalpaca/vmAssmbler/asm"
	"github.com/cooperalpaca/vmAssmbler/image"
	"github.com/pkg/errors"
	"github.com/tebeka/atexit"
)

const defaultInput = "asm/input.asm"

var (
	debug      bool
	disasm     bool
	configFile string
	flags      = defaultConfig()
)

func atExit(err error) {
	if err == nil {
		atexit.Exit(0)
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
	}
	atexit.Exit(1)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	lvl := slog.LevelInfo
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// assemble assembles the input file into cfg.Output and reports to stdout.
func assemble(input string, cfg *config, log *slog.Logger, stdout io.Writer) error {
	f, err := os.Open(input)
	if err != nil {
		return errors.Wrap(err, "open failed")
	}
	defer f.Close()

	p, err := asm.Assemble(input, bufio.NewReader(f),
		asm.Strict(cfg.Strict),
		asm.Extended(cfg.Extended),
		asm.Logger(log))
	if err != nil {
		return err
	}
	n, err := image.Save(cfg.Output, p.Instructions)
	if err != nil {
		return errors.Wrap(err, input)
	}
	log.Debug("image saved", slog.String("file", cfg.Output), slog.Int("instructions", len(p.Instructions)), slog.Int("padding", n-len(p.Instructions)))
	if cfg.Labels {
		if err = writeLabels(stdout, p.Labels.All(), isTerminal(stdout)); err != nil {
			return errors.Wrap(err, "write failed")
		}
	}
	_, err = fmt.Fprintf(stdout, "wrote %d instructions to %s\n", n, cfg.Output)
	return err
}

// disassemble prints a disassembly of the input image.
func disassemble(input string, stdout io.Writer) error {
	words, err := image.Load(input)
	if err != nil {
		return errors.Wrap(err, input)
	}
	w := bufio.NewWriter(stdout)
	if err = asm.DisassembleAll(words, w); err != nil {
		return err
	}
	return errors.Wrap(w.Flush(), "write failed")
}

func main() {
	var err error
	defer func() { atExit(err) }()

	flag.StringVar(&configFile, "config", "", "load settings from YAML file `filename`")
	flag.BoolVar(&disasm, "d", false, "disassemble the input image instead of assembling it")
	flag.BoolVar(&debug, "debug", false, "print a full stack trace on errors")
	flag.BoolVar(&flags.Extended, "extended", false, "enable the arithmetic, pop, push, print, stprint, dump and return mnemonics")
	flag.BoolVar(&flags.Labels, "labels", false, "print the label table")
	flag.StringVar(&flags.Output, "o", image.DefaultFileName, "output image file name `filename`")
	flag.BoolVar(&flags.Strict, "strict", false, "reject unsupported mnemonics instead of assembling them as 0")
	flag.BoolVar(&flags.Verbose, "v", false, "verbose logging")
	flag.Parse()

	input := defaultInput
	switch flag.NArg() {
	case 0:
	case 1:
		input = flag.Arg(0)
	default:
		flag.Usage()
		err = errors.New("too many arguments")
		return
	}

	cfg := defaultConfig()
	if configFile != "" {
		if err = loadConfig(configFile, &cfg); err != nil {
			return
		}
	}
	// explicit flags override the configuration file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o":
			cfg.Output = flags.Output
		case "strict":
			cfg.Strict = flags.Strict
		case "extended":
			cfg.Extended = flags.Extended
		case "labels":
			cfg.Labels = flags.Labels
		case "v":
			cfg.Verbose = flags.Verbose
		}
	})

	if disasm {
		err = disassemble(input, os.Stdout)
		return
	}

	// no stale image is left behind after a failed run
	atexit.Register(func() {
		if err != nil {
			os.Remove(cfg.Output)
		}
	})
	err = assemble(input, &cfg, newLogger(os.Stderr, cfg.Verbose), os.Stdout)
}
