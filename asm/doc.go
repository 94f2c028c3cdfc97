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

// Package asm provides functions to assemble and disassemble programs for the
// 32-bit stack machine described in package isa.
//
// Source format:
//
// The source is line oriented: each line holds one instruction, one label
// declaration or nothing. A '#' starts a comment that runs to the end of the
// line, unless it appears inside a string literal. Mnemonics are case
// insensitive, label names are case sensitive.
//
// Labels are declared on their own line, as an identifier followed by a colon:
//
//	main:
//		exit 0
//
// A label is bound to the byte offset of the next instruction in the image,
// header excluded. If a label is declared more than once, the first
// declaration is kept and a warning is issued for the others. Labels are not
// used as branch targets: call, goto and the if instructions are parsed but
// their offsets are never resolved.
//
// Supported mnemonics:
//
//	mnemonic	operands		description
//	--------	--------		------------------------------------------------
//	exit		[code]			exit with the given decimal code (default 0)
//	swap		[from] [to]		swap stack cells at byte offsets (default 4 0)
//	nop					no-op
//	input					read a value
//	stinput		[max]			read a string of at most max chars (default 0xFFFFFF)
//	debug		[hex|dec] [value]	debug trace (default 0)
//	dup		[offset]		duplicate the stack cell at a byte offset (default 0)
//	stpush		"string"		push a string (pseudo instruction)
//
// Operands of exit, swap and dup are decimal. Operands of stinput and debug
// are hexadecimal if prefixed with 0x, decimal otherwise. The hex and dec
// keywords of debug force the base of the value.
//
// Any other mnemonic is assembled as a zero word, unless the Strict option is
// set, in which case it is an error. The Extended option enables the following
// mnemonics:
//
//	pop		[offset]		pop stack cells
//	push		value			push a 28 bits immediate
//	add sub mul div rem and or xor lsl asr lsr
//	neg not
//	print		[offset] [format]	print a stack cell
//	stprint		[offset] [format]	print a string from the stack
//	dump					dump the machine state
//	return		[offset]		return from subroutine
//
// where format is one of dec, hex, char, udec or 0 to 3.
//
// String literals:
//
// The stpush pseudo instruction takes a double quoted string in which the
// escape sequences \\, \n and \" are recognized. It is assembled as a sequence
// of push instructions of 3 characters each, see ExpandString. When computing
// label offsets, escape sequences count for two characters.
package asm
