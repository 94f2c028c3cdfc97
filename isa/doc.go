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

// Package isa describes the instruction set of the 32-bit stack machine and
// implements the encoding of instructions into machine words.
//
// Every instruction is a single 32 bits word. The opcode is stored in the top
// 4 bits, the remaining 28 bits hold opcode specific fields:
//
//	mnemonic	[31:28]	fields
//	--------	-------	--------------------------------------------------------
//	exit		0x0	[27:24]=0x1 [23:0]=exit code
//	swap		0x0	[27:24]=0x2 [23:12]=from>>2 [11:0]=to>>2
//	nop		0x0	[27:24]=0x4
//	input		0x0	[27:24]=0x5
//	debug		0x0	[27:24]=0xD [23:0]=value
//	stinput		0x0	[27:24]=0xF [23:0]=max chars (default 0xFFFFFF)
//	pop		0x1	[27:0]=unsigned offset
//	add..lsr	0x2	[27:24]=subopcode 0x1-0xB
//	neg, not	0x3	[27:24]=subopcode 0x0-0x1
//	stprint		0x4	[15:4]=offset>>2 [1:0]=format
//	call		0x5	[27:0]=PC relative offset
//	return		0x6	[27:0]=offset
//	goto		0x7	[27:0]=PC relative offset
//	if<cond>	0x8	[27:25]=condition [24:0]=offset
//	if<cond>z	0x9	[27:26]=condition [25:0]=offset
//	dup		0xC	[27:0]=offset>>2
//	print		0xD	[13:2]=offset>>2 [1:0]=format
//	dump		0xE
//	push		0xF	[27:0]=immediate
//
// Encode never fails: operands that do not fit in their field are silently
// truncated to the field width. Signed offsets are stored as two's complement
// truncated to the field width.
package isa
