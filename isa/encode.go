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

// Field masks.
const (
	mask2  = 0x3
	mask3  = 0x7
	mask4  = 0xF
	mask12 = 0xFFF
	mask24 = 0xFFFFFF
	mask25 = 0x1FFFFFF
	mask26 = 0x3FFFFFF
	mask28 = 0xFFFFFFF
)

func word(op Opcode, sub uint32) uint32 {
	return uint32(op)<<28 | (sub&mask4)<<24
}

// Encode returns the machine word for the given instruction. Out of range
// operands are truncated to their field width. A nil Instruction encodes to 0.
func Encode(i Instruction) uint32 {
	switch i := i.(type) {
	case nil:
		return 0
	case Exit:
		return word(OpMisc, miscExit) | i.Code&mask24
	case Swap:
		return word(OpMisc, miscSwap) |
			uint32(i.From>>2)&mask12<<12 |
			uint32(i.To>>2)&mask12
	case Nop:
		return word(OpMisc, miscNop)
	case Input:
		return word(OpMisc, miscInput)
	case Debug:
		return word(OpMisc, miscDebug) | i.Value&mask24
	case StInput:
		return word(OpMisc, miscStInput) | i.Max&mask24
	case Pop:
		return word(OpPop, 0) | i.Offset&mask28
	case BinaryArith:
		return word(OpBinaryArith, uint32(i.Op))
	case UnaryArith:
		return word(OpUnaryArith, uint32(i.Op))
	case StPrint:
		return word(OpStPrint, 0) |
			uint32(i.Offset>>2)&mask12<<4 |
			uint32(i.Format)&mask2
	case Call:
		return word(OpCall, 0) | uint32(i.Offset)&mask28
	case Return:
		return word(OpReturn, 0) | i.Offset&mask28
	case Goto:
		return word(OpGoto, 0) | uint32(i.Offset)&mask28
	case BinaryIf:
		return word(OpBinaryIf, 0) |
			uint32(i.Cond)&mask3<<25 |
			uint32(i.Offset)&mask25
	case UnaryIf:
		return word(OpUnaryIf, 0) |
			uint32(i.Cond)&mask2<<26 |
			uint32(i.Offset)&mask26
	case Dup:
		return word(OpDup, 0) | uint32(i.Offset>>2)&mask28
	case Print:
		return word(OpPrint, 0) |
			uint32(i.Offset>>2)&mask12<<2 |
			uint32(i.Format)&mask2
	case Dump:
		return word(OpDump, 0)
	case Push:
		return word(OpPush, 0) | i.Value&mask28
	case Unknown:
		return i.Word
	}
	panic("isa: unhandled instruction type")
}

// signExtend interprets the low bits of v as a two's complement value.
func signExtend(v uint32, bits uint) int32 {
	shift := 32 - bits
	return int32(v<<shift) >> shift
}

// Decode returns the instruction encoded in w. Words that do not match any
// instruction are returned as Unknown. PC relative offsets are sign extended
// from their field width; stack offsets are zero extended.
func Decode(w uint32) Instruction {
	sub := w >> 24 & mask4
	switch Opcode(w >> 28) {
	case OpMisc:
		switch sub {
		case miscExit:
			return Exit{w & mask24}
		case miscSwap:
			return Swap{From: int32(w>>12&mask12) << 2, To: int32(w&mask12) << 2}
		case miscNop:
			if w&mask24 == 0 {
				return Nop{}
			}
		case miscInput:
			if w&mask24 == 0 {
				return Input{}
			}
		case miscDebug:
			return Debug{w & mask24}
		case miscStInput:
			return StInput{w & mask24}
		}
	case OpPop:
		return Pop{w & mask28}
	case OpBinaryArith:
		if sub >= uint32(Add) && sub <= uint32(Lsr) && w&mask24 == 0 {
			return BinaryArith{ArithOp(sub)}
		}
	case OpUnaryArith:
		if sub <= uint32(Not) && w&mask24 == 0 {
			return UnaryArith{UnaryOp(sub)}
		}
	case OpStPrint:
		return StPrint{Offset: int32(w>>4&mask12) << 2, Format: Format(w & mask2)}
	case OpCall:
		return Call{signExtend(w&mask28, 28)}
	case OpReturn:
		return Return{w & mask28}
	case OpGoto:
		return Goto{signExtend(w&mask28, 28)}
	case OpBinaryIf:
		return BinaryIf{Cond: BinaryCond(w >> 25 & mask3), Offset: signExtend(w&mask25, 25)}
	case OpUnaryIf:
		return UnaryIf{Cond: UnaryCond(w >> 26 & mask2), Offset: signExtend(w&mask26, 26)}
	case OpDup:
		return Dup{int32(w&mask28) << 2}
	case OpPrint:
		return Print{Offset: int32(w>>2&mask12) << 2, Format: Format(w & mask2)}
	case OpDump:
		if w&mask28 == 0 {
			return Dump{}
		}
	case OpPush:
		return Push{w & mask28}
	}
	return Unknown{w}
}
