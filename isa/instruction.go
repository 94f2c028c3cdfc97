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

import (
	"fmt"
	"strconv"
)

// Instruction is a single machine instruction. The set of implementations is
// closed: it is one of the types declared in this package.
type Instruction interface {
	// Opcode returns the instruction family.
	Opcode() Opcode
	// String returns the instruction in assembler syntax.
	String() string
	instruction()
}

// Exit terminates the program with the given exit code.
type Exit struct{ Code uint32 }

// Swap swaps the stack cells at byte offsets From and To.
type Swap struct{ From, To int32 }

// Nop does nothing.
type Nop struct{}

// Input reads a value from the console.
type Input struct{}

// Debug emits a debug trace carrying Value.
type Debug struct{ Value uint32 }

// StInput reads a string of at most Max characters.
type StInput struct{ Max uint32 }

// DefaultStInputMax is the stinput limit used when none is given.
const DefaultStInputMax = 0xFFFFFF

// Pop discards stack cells.
type Pop struct{ Offset uint32 }

// BinaryArith pops two values and pushes the result of Op.
type BinaryArith struct{ Op ArithOp }

// UnaryArith replaces the top of stack with the result of Op.
type UnaryArith struct{ Op UnaryOp }

// StPrint prints the string stored at stack byte offset Offset.
type StPrint struct {
	Offset int32
	Format Format
}

// Call calls the subroutine at the PC relative offset.
type Call struct{ Offset int32 }

// Return returns from a subroutine.
type Return struct{ Offset uint32 }

// Goto jumps to the PC relative offset.
type Goto struct{ Offset int32 }

// BinaryIf jumps to the PC relative offset if Cond holds between the two
// values on top of the stack.
type BinaryIf struct {
	Cond   BinaryCond
	Offset int32
}

// UnaryIf jumps to the PC relative offset if Cond holds for the top of stack.
type UnaryIf struct {
	Cond   UnaryCond
	Offset int32
}

// Dup pushes a copy of the stack cell at byte offset Offset.
type Dup struct{ Offset int32 }

// Print prints the stack cell at byte offset Offset.
type Print struct {
	Offset int32
	Format Format
}

// Dump dumps the machine state.
type Dump struct{}

// Push pushes a 28 bits immediate value.
type Push struct{ Value uint32 }

// Unknown is a word that does not decode to any known instruction. It encodes
// back to Word.
type Unknown struct{ Word uint32 }

func (Exit) Opcode() Opcode        { return OpMisc }
func (Swap) Opcode() Opcode        { return OpMisc }
func (Nop) Opcode() Opcode         { return OpMisc }
func (Input) Opcode() Opcode       { return OpMisc }
func (Debug) Opcode() Opcode       { return OpMisc }
func (StInput) Opcode() Opcode     { return OpMisc }
func (Pop) Opcode() Opcode         { return OpPop }
func (BinaryArith) Opcode() Opcode { return OpBinaryArith }
func (UnaryArith) Opcode() Opcode  { return OpUnaryArith }
func (StPrint) Opcode() Opcode     { return OpStPrint }
func (Call) Opcode() Opcode        { return OpCall }
func (Return) Opcode() Opcode      { return OpReturn }
func (Goto) Opcode() Opcode        { return OpGoto }
func (BinaryIf) Opcode() Opcode    { return OpBinaryIf }
func (UnaryIf) Opcode() Opcode     { return OpUnaryIf }
func (Dup) Opcode() Opcode         { return OpDup }
func (Print) Opcode() Opcode       { return OpPrint }
func (Dump) Opcode() Opcode        { return OpDump }
func (Push) Opcode() Opcode        { return OpPush }
func (u Unknown) Opcode() Opcode   { return Opcode(u.Word >> 28) }

func (Exit) instruction()        {}
func (Swap) instruction()        {}
func (Nop) instruction()         {}
func (Input) instruction()       {}
func (Debug) instruction()       {}
func (StInput) instruction()     {}
func (Pop) instruction()         {}
func (BinaryArith) instruction() {}
func (UnaryArith) instruction()  {}
func (StPrint) instruction()     {}
func (Call) instruction()        {}
func (Return) instruction()      {}
func (Goto) instruction()        {}
func (BinaryIf) instruction()    {}
func (UnaryIf) instruction()     {}
func (Dup) instruction()         {}
func (Print) instruction()       {}
func (Dump) instruction()        {}
func (Push) instruction()        {}
func (Unknown) instruction()     {}

func (i Exit) String() string        { return "exit " + strconv.FormatUint(uint64(i.Code), 10) }
func (i Swap) String() string        { return fmt.Sprintf("swap %d %d", i.From, i.To) }
func (Nop) String() string           { return "nop" }
func (Input) String() string         { return "input" }
func (i Debug) String() string       { return fmt.Sprintf("debug 0x%x", i.Value) }
func (i StInput) String() string     { return fmt.Sprintf("stinput 0x%x", i.Max) }
func (i Pop) String() string         { return "pop " + strconv.FormatUint(uint64(i.Offset), 10) }
func (i BinaryArith) String() string { return i.Op.String() }
func (i UnaryArith) String() string  { return i.Op.String() }
func (i StPrint) String() string     { return fmt.Sprintf("stprint %d %s", i.Offset, i.Format) }
func (i Call) String() string        { return fmt.Sprintf("call %d", i.Offset) }
func (i Return) String() string      { return "return " + strconv.FormatUint(uint64(i.Offset), 10) }
func (i Goto) String() string        { return fmt.Sprintf("goto %d", i.Offset) }
func (i BinaryIf) String() string    { return fmt.Sprintf("%s %d", i.Cond, i.Offset) }
func (i UnaryIf) String() string     { return fmt.Sprintf("%s %d", i.Cond, i.Offset) }
func (i Dup) String() string         { return fmt.Sprintf("dup %d", i.Offset) }
func (i Print) String() string       { return fmt.Sprintf("print %d %s", i.Offset, i.Format) }
func (Dump) String() string          { return "dump" }
func (i Push) String() string        { return fmt.Sprintf("push 0x%07x", i.Value) }
func (u Unknown) String() string     { return fmt.Sprintf(".word 0x%08x", u.Word) }
