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

package isa

// Opcode is the 4 bits instruction family stored in bits [31:28].
type Opcode uint8

// Instruction families.
const (
	OpMisc Opcode = iota
	OpPop
	OpBinaryArith
	OpUnaryArith
	OpStPrint
	OpCall
	OpReturn
	OpGoto
	OpBinaryIf
	OpUnaryIf
	_
	_
	OpDup
	OpPrint
	OpDump
	OpPush
)

// Subopcodes of the misc family, stored in bits [27:24].
const (
	miscExit    = 0x1
	miscSwap    = 0x2
	miscNop     = 0x4
	miscInput   = 0x5
	miscDebug   = 0xD
	miscStInput = 0xF
)

// ArithOp selects a binary arithmetic operation.
type ArithOp uint8

// Binary arithmetic subopcodes.
const (
	Add ArithOp = iota + 1
	Sub
	Mul
	Div
	Rem
	And
	Or
	Xor
	Lsl
	Asr
	Lsr
)

// UnaryOp selects a unary arithmetic operation.
type UnaryOp uint8

// Unary arithmetic subopcodes.
const (
	Neg UnaryOp = iota
	Not
)

// BinaryCond is the 3 bits condition of a binary if. The two values on top of
// the stack are compared.
type BinaryCond uint8

// Binary if conditions.
const (
	Eq BinaryCond = iota
	Ne
	Lt
	Gt
	Le
	Ge
)

// UnaryCond is the 2 bits condition of a unary if. The value on top of the
// stack is compared against 0.
type UnaryCond uint8

// Unary if conditions.
const (
	EqZ UnaryCond = iota
	NeZ
	LtZ
	GeZ
)

// Format is the 2 bits output format of print and stprint.
type Format uint8

// Print formats.
const (
	FormatDec Format = iota
	FormatHex
	FormatChar
	FormatUnsigned
)

var arithNames = [...]string{
	Add: "add",
	Sub: "sub",
	Mul: "mul",
	Div: "div",
	Rem: "rem",
	And: "and",
	Or:  "or",
	Xor: "xor",
	Lsl: "lsl",
	Asr: "asr",
	Lsr: "lsr",
}

var unaryNames = [...]string{
	Neg: "neg",
	Not: "not",
}

var binaryCondNames = [...]string{
	Eq: "ifeq",
	Ne: "ifne",
	Lt: "iflt",
	Gt: "ifgt",
	Le: "ifle",
	Ge: "ifge",
}

var unaryCondNames = [...]string{
	EqZ: "ifeqz",
	NeZ: "ifnez",
	LtZ: "ifltz",
	GeZ: "ifgez",
}

var formatNames = [...]string{
	FormatDec:      "dec",
	FormatHex:      "hex",
	FormatChar:     "char",
	FormatUnsigned: "udec",
}

var (
	arithIndex      = make(map[string]ArithOp)
	unaryIndex      = make(map[string]UnaryOp)
	binaryCondIndex = make(map[string]BinaryCond)
	unaryCondIndex  = make(map[string]UnaryCond)
	formatIndex     = make(map[string]Format)
)

func init() {
	for i, v := range arithNames {
		if v != "" {
			arithIndex[v] = ArithOp(i)
		}
	}
	for i, v := range unaryNames {
		unaryIndex[v] = UnaryOp(i)
	}
	for i, v := range binaryCondNames {
		binaryCondIndex[v] = BinaryCond(i)
	}
	for i, v := range unaryCondNames {
		unaryCondIndex[v] = UnaryCond(i)
	}
	for i, v := range formatNames {
		formatIndex[v] = Format(i)
	}
}

func (op ArithOp) String() string {
	if int(op) < len(arithNames) && arithNames[op] != "" {
		return arithNames[op]
	}
	return "arith?"
}

func (op UnaryOp) String() string {
	if int(op) < len(unaryNames) {
		return unaryNames[op]
	}
	return "unary?"
}

func (c BinaryCond) String() string {
	if int(c) < len(binaryCondNames) {
		return binaryCondNames[c]
	}
	return "if?"
}

func (c UnaryCond) String() string {
	if int(c) < len(unaryCondNames) {
		return unaryCondNames[c]
	}
	return "if?z"
}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "fmt?"
}

// LookupArith returns the binary arithmetic operation for the given mnemonic.
func LookupArith(name string) (ArithOp, bool) {
	op, ok := arithIndex[name]
	return op, ok
}

// LookupUnary returns the unary arithmetic operation for the given mnemonic.
func LookupUnary(name string) (UnaryOp, bool) {
	op, ok := unaryIndex[name]
	return op, ok
}

// LookupBinaryCond returns the condition of a binary if mnemonic (ifeq, ifne,
// iflt, ifgt, ifle, ifge).
func LookupBinaryCond(name string) (BinaryCond, bool) {
	c, ok := binaryCondIndex[name]
	return c, ok
}

// LookupUnaryCond returns the condition of a unary if mnemonic (ifeqz, ifnez,
// ifltz, ifgez).
func LookupUnaryCond(name string) (UnaryCond, bool) {
	c, ok := unaryCondIndex[name]
	return c, ok
}

// LookupFormat returns the print format with the given name.
func LookupFormat(name string) (Format, bool) {
	f, ok := formatIndex[name]
	return f, ok
}
