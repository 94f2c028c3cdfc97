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

import "github.com/cooperalpaca/vmAssmbler/isa"

// String chunk flags, stored in bits [27:24] of the push immediate.
const (
	chunkLast     = 0x0
	chunkContinue = 0x1
)

// ExpandString returns the push instructions for the stpush pseudo
// instruction. The escape sequences \\, \n and \" in s are resolved first.
//
// The string is split in chunks of 3 bytes, each packed in a push immediate
// as flag<<24 | b2<<16 | b1<<8 | b0, the first byte of the chunk in b0. The
// pushes are emitted starting with the last chunk, flagged chunkLast, so that
// the first chunk ends up on top of the stack. All other chunks are flagged
// chunkContinue. An empty string yields no instructions.
func ExpandString(s string) []isa.Instruction {
	b := []byte(unescape(s))
	n := (len(b) + 2) / 3
	ins := make([]isa.Instruction, 0, n)
	for c := n - 1; c >= 0; c-- {
		var v uint32
		for k, ch := range b[c*3 : min(c*3+3, len(b))] {
			v |= uint32(ch) << (8 * k)
		}
		flag := uint32(chunkContinue)
		if c == n-1 {
			flag = chunkLast
		}
		ins = append(ins, isa.Push{Value: flag<<24 | v})
	}
	return ins
}
