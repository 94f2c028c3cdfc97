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

package asm

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/cooperalpaca/vmAssmbler/internal/iox"
	"github.com/cooperalpaca/vmAssmbler/isa"
)

// Program is the result of a successful assembly.
type Program struct {
	// Instructions in program order. This is the content of the image, before
	// padding.
	Instructions []isa.Instruction
	Labels       *LabelTable
	Warnings     []Warning
}

// Words returns the encoded instructions.
func (p *Program) Words() []uint32 {
	w := make([]uint32, len(p.Instructions))
	for i, ins := range p.Instructions {
		w[i] = isa.Encode(ins)
	}
	return w
}

type assembler struct {
	name     string
	strict   bool
	extended bool
	log      *slog.Logger
	warnings []Warning
}

// Option configures the assembler.
type Option func(*assembler)

// Strict makes unrecognized mnemonics an error with cause ErrUnsupported.
// Otherwise they are assembled as a zero word.
func Strict(strict bool) Option {
	return func(a *assembler) { a.strict = strict }
}

// Extended enables the mnemonics of the arithmetic, pop, push, print,
// stprint, dump and return instructions. Control flow instructions are never
// assembled.
func Extended(extended bool) Option {
	return func(a *assembler) { a.extended = extended }
}

// Logger sets the logger used for warnings and debug traces. By default,
// nothing is logged.
func Logger(l *slog.Logger) Option {
	return func(a *assembler) {
		if l != nil {
			a.log = l
		}
	}
}

func (a *assembler) warn(l *line, format string, args ...interface{}) {
	w := Warning{Filename: a.name, Line: l.num, Msg: fmt.Sprintf(format, args...)}
	a.warnings = append(a.warnings, w)
	a.log.Warn(w.Msg, slog.String("file", w.Filename), slog.Int("line", w.Line))
}

// Assemble assembles source read from the supplied io.Reader.
//
// The name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// Assembly stops at the first error. The returned error, if not nil, wraps an
// *Error whose cause is ErrSyntax or ErrUnsupported, or is an I/O error.
func Assemble(name string, r io.Reader, opts ...Option) (*Program, error) {
	a := &assembler{
		name: name,
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	labels, err := a.buildLabels(lines)
	if err != nil {
		return nil, err
	}
	stream, err := a.assembleLines(lines)
	if err != nil {
		return nil, err
	}
	return &Program{Instructions: stream, Labels: labels, Warnings: a.warnings}, nil
}

// Disassemble writes a disassembly of the word at position pc in the given
// slice to the specified io.Writer and returns any write error.
func Disassemble(words []uint32, pc int, w io.Writer) error {
	ew, _ := w.(*iox.ErrWriter)
	if ew == nil {
		ew = iox.NewErrWriter(w)
	}
	io.WriteString(ew, isa.Decode(words[pc]).String())
	return ew.Err
}

// DisassembleAll writes a disassembly of all words in the given slice to the
// specified io.Writer, one per line, prefixed with their byte offset. It will
// return any write error.
func DisassembleAll(words []uint32, w io.Writer) error {
	ew := iox.NewErrWriter(w)
	for pc := range words {
		fmt.Fprintf(ew, "% 8d\t%08x\t", pc*4, words[pc])
		Disassemble(words, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
