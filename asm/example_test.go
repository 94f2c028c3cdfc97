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

package asm_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/cooperalpaca/vmAssmbler/asm"
)

// Shows off the assembler syntax and the disassembler output.
func ExampleAssemble() {
	code := `
# greet the user and read a name
main:
	stpush "Hi!"	# fits in a single push
	stpush "name?"
	stinput 0x20	# hex literals need the 0x prefix
	debug hex ff
	swap 8 4
	dup 4
done:
	exit 0
`
	p, err := asm.Assemble("raw_string", strings.NewReader(code))
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, l := range p.Labels.All() {
		fmt.Printf("%s: line %d, offset %d\n", l.Name, l.Line, l.Offset)
	}
	asm.DisassembleAll(p.Words(), os.Stdout)

	// Output:
	// main: line 3, offset 0
	// done: line 10, offset 28
	//        0	f0216948	push 0x0216948
	//        4	f0003f65	push 0x0003f65
	//        8	f16d616e	push 0x16d616e
	//       12	0f000020	stinput 0x20
	//       16	0d0000ff	debug 0xff
	//       20	02002001	swap 8 4
	//       24	c0000001	dup 4
	//       28	01000000	exit 0
}
