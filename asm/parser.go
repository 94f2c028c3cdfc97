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
	"log/slog"
	"strconv"
	"strings"

	"github.com/cooperalpaca/vmAssmbler/isa"
)

// A builder assembles a single instruction line.
type builder func(a *assembler, l *line) ([]isa.Instruction, error)

// builders for the mnemonics always recognized.
var builders = map[string]builder{
	"stpush":  buildStPush,
	"dup":     buildDup,
	"exit":    buildExit,
	"swap":    buildSwap,
	"nop":     buildNop,
	"input":   buildInput,
	"stinput": buildStInput,
	"debug":   buildDebug,
}

// extBuilders are recognized in extended mode only. Arithmetic mnemonics are
// looked up in package isa.
var extBuilders = map[string]builder{
	"pop":     buildPop,
	"push":    buildPush,
	"print":   buildPrint,
	"stprint": buildStPrint,
	"dump":    buildDump,
	"return":  buildReturn,
}

// isBranch reports whether name is a control flow mnemonic. Branch offsets
// are not resolved, so these are never assembled.
func isBranch(name string) bool {
	if name == "call" || name == "goto" {
		return true
	}
	if _, ok := isa.LookupBinaryCond(name); ok {
		return true
	}
	_, ok := isa.LookupUnaryCond(name)
	return ok
}

func one(i isa.Instruction) []isa.Instruction { return []isa.Instruction{i} }

// assembleLines is pass 2.
func (a *assembler) assembleLines(lines []line) ([]isa.Instruction, error) {
	var stream []isa.Instruction
	for i := range lines {
		l := &lines[i]
		if l.kind != lineInstr {
			continue
		}
		ins, err := a.assembleLine(l)
		if err != nil {
			return nil, err
		}
		stream = append(stream, ins...)
	}
	return stream, nil
}

func (a *assembler) assembleLine(l *line) ([]isa.Instruction, error) {
	name := l.mnemonic()
	if b, ok := builders[name]; ok {
		return b(a, l)
	}
	if a.extended {
		if b, ok := extBuilders[name]; ok {
			return b(a, l)
		}
		if op, ok := isa.LookupArith(name); ok {
			return a.noOperands(l, isa.BinaryArith{Op: op})
		}
		if op, ok := isa.LookupUnary(name); ok {
			return a.noOperands(l, isa.UnaryArith{Op: op})
		}
	}
	if a.strict {
		if isBranch(name) {
			return nil, lineError(a.name, l, ErrUnsupported, "%s: branch offsets are not supported", name)
		}
		return nil, lineError(a.name, l, ErrUnsupported, "unknown mnemonic %q", l.fields[0])
	}
	a.log.Debug("unrecognized mnemonic assembled as 0", slog.String("file", a.name), slog.Int("line", l.num), slog.String("mnemonic", name))
	return one(isa.Unknown{Word: 0}), nil
}

// operands checks the operand count of l and returns the operands.
func (a *assembler) operands(l *line, n int) ([]string, error) {
	ops := l.operands()
	if len(ops) > n {
		return nil, lineError(a.name, l, ErrSyntax, "%s: too many operands", l.mnemonic())
	}
	return ops, nil
}

func (a *assembler) noOperands(l *line, i isa.Instruction) ([]isa.Instruction, error) {
	if _, err := a.operands(l, 0); err != nil {
		return nil, err
	}
	return one(i), nil
}

// parseDec parses a decimal operand.
func (a *assembler) parseDec(l *line, s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, lineError(a.name, l, ErrSyntax, "%s: invalid number %q", l.mnemonic(), s)
	}
	return v, nil
}

// parseHex parses a hexadecimal operand. The 0x prefix is optional.
func (a *assembler) parseHex(l *line, s string) (int64, error) {
	d := s
	if len(d) > 2 && (d[:2] == "0x" || d[:2] == "0X") {
		d = d[2:]
	}
	v, err := strconv.ParseUint(d, 16, 64)
	if err != nil {
		return 0, lineError(a.name, l, ErrSyntax, "%s: invalid hexadecimal number %q", l.mnemonic(), s)
	}
	return int64(v), nil
}

// parseNum parses an operand in hexadecimal if prefixed with 0x, decimal
// otherwise.
func (a *assembler) parseNum(l *line, s string) (int64, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return a.parseHex(l, s)
	}
	return a.parseDec(l, s)
}

// optNum parses the optional operand at index i of ops with parse, or returns
// def.
func (a *assembler) optNum(l *line, ops []string, i int, def int64, parse func(*line, string) (int64, error)) (int64, error) {
	if i >= len(ops) {
		return def, nil
	}
	return parse(l, ops[i])
}

func (a *assembler) parseFormat(l *line, ops []string, i int) (isa.Format, error) {
	if i >= len(ops) {
		return isa.FormatDec, nil
	}
	if f, ok := isa.LookupFormat(strings.ToLower(ops[i])); ok {
		return f, nil
	}
	v, err := strconv.ParseUint(ops[i], 10, 2)
	if err != nil {
		return 0, lineError(a.name, l, ErrSyntax, "%s: invalid format %q", l.mnemonic(), ops[i])
	}
	return isa.Format(v), nil
}

func buildStPush(a *assembler, l *line) ([]isa.Instruction, error) {
	lit, ok := unquote(l.rest())
	if !ok {
		return nil, lineError(a.name, l, ErrSyntax, "stpush: expected a quoted string, got %q", l.rest())
	}
	return ExpandString(lit), nil
}

func buildDup(a *assembler, l *line) ([]isa.Instruction, error) {
	ops, err := a.operands(l, 1)
	if err != nil {
		return nil, err
	}
	off, err := a.optNum(l, ops, 0, 0, a.parseDec)
	if err != nil {
		return nil, err
	}
	return one(isa.Dup{Offset: int32(off)}), nil
}

func buildExit(a *assembler, l *line) ([]isa.Instruction, error) {
	ops, err := a.operands(l, 1)
	if err != nil {
		return nil, err
	}
	code, err := a.optNum(l, ops, 0, 0, a.parseDec)
	if err != nil {
		return nil, err
	}
	return one(isa.Exit{Code: uint32(code)}), nil
}

func buildSwap(a *assembler, l *line) ([]isa.Instruction, error) {
	ops, err := a.operands(l, 2)
	if err != nil {
		return nil, err
	}
	from, err := a.optNum(l, ops, 0, 4, a.parseDec)
	if err != nil {
		return nil, err
	}
	to, err := a.optNum(l, ops, 1, 0, a.parseDec)
	if err != nil {
		return nil, err
	}
	return one(isa.Swap{From: int32(from), To: int32(to)}), nil
}

func buildNop(a *assembler, l *line) ([]isa.Instruction, error) {
	return a.noOperands(l, isa.Nop{})
}

func buildInput(a *assembler, l *line) ([]isa.Instruction, error) {
	return a.noOperands(l, isa.Input{})
}

func buildStInput(a *assembler, l *line) ([]isa.Instruction, error) {
	ops, err := a.operands(l, 1)
	if err != nil {
		return nil, err
	}
	n, err := a.optNum(l, ops, 0, isa.DefaultStInputMax, a.parseNum)
	if err != nil {
		return nil, err
	}
	return one(isa.StInput{Max: uint32(n)}), nil
}

// debug [hex|dec] [value]
func buildDebug(a *assembler, l *line) ([]isa.Instruction, error) {
	ops, err := a.operands(l, 2)
	if err != nil {
		return nil, err
	}
	parse := a.parseNum
	if len(ops) > 0 {
		switch strings.ToLower(ops[0]) {
		case "hex":
			parse = a.parseHex
			ops = ops[1:]
		case "dec":
			parse = a.parseDec
			ops = ops[1:]
		}
	}
	if len(ops) > 1 {
		return nil, lineError(a.name, l, ErrSyntax, "debug: too many operands")
	}
	v, err := a.optNum(l, ops, 0, 0, parse)
	if err != nil {
		return nil, err
	}
	return one(isa.Debug{Value: uint32(v)}), nil
}

func buildPop(a *assembler, l *line) ([]isa.Instruction, error) {
	ops, err := a.operands(l, 1)
	if err != nil {
		return nil, err
	}
	off, err := a.optNum(l, ops, 0, 0, a.parseNum)
	if err != nil {
		return nil, err
	}
	return one(isa.Pop{Offset: uint32(off)}), nil
}

func buildPush(a *assembler, l *line) ([]isa.Instruction, error) {
	ops, err := a.operands(l, 1)
	if err != nil {
		return nil, err
	}
	if len(ops) == 0 {
		return nil, lineError(a.name, l, ErrSyntax, "push: missing operand")
	}
	v, err := a.parseNum(l, ops[0])
	if err != nil {
		return nil, err
	}
	return one(isa.Push{Value: uint32(v)}), nil
}

func buildPrint(a *assembler, l *line) ([]isa.Instruction, error) {
	off, f, err := a.offsetFormat(l)
	if err != nil {
		return nil, err
	}
	return one(isa.Print{Offset: off, Format: f}), nil
}

func buildStPrint(a *assembler, l *line) ([]isa.Instruction, error) {
	off, f, err := a.offsetFormat(l)
	if err != nil {
		return nil, err
	}
	return one(isa.StPrint{Offset: off, Format: f}), nil
}

// offsetFormat parses the "[offset] [format]" operands of print and stprint.
func (a *assembler) offsetFormat(l *line) (int32, isa.Format, error) {
	ops, err := a.operands(l, 2)
	if err != nil {
		return 0, 0, err
	}
	off, err := a.optNum(l, ops, 0, 0, a.parseNum)
	if err != nil {
		return 0, 0, err
	}
	f, err := a.parseFormat(l, ops, 1)
	if err != nil {
		return 0, 0, err
	}
	return int32(off), f, nil
}

func buildDump(a *assembler, l *line) ([]isa.Instruction, error) {
	return a.noOperands(l, isa.Dump{})
}

func buildReturn(a *assembler, l *line) ([]isa.Instruction, error) {
	ops, err := a.operands(l, 1)
	if err != nil {
		return nil, err
	}
	off, err := a.optNum(l, ops, 0, 0, a.parseNum)
	if err != nil {
		return nil, err
	}
	return one(isa.Return{Offset: uint32(off)}), nil
}
