// Copyright © 2019 mg
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package i8080

// Instruction is one dispatch-table entry: the exec function for an
// opcode (mnemonics live in pkg/disasm). Unlike the teacher's Instruction (name + op + addressing-mode +
// fixed cycle count), the 8080's conditional branches need to report one
// of two cycle counts depending on whether the branch is taken, so Exec
// itself returns the cycle count rather than a separate table column.
type Instruction struct {
	Exec func(c *CPU) int
}

var opcodeTable [256]Instruction

func init() {
	for i := range opcodeTable {
		opcodeTable[i] = Instruction{Exec: execUndefinedNOP}
	}

	installDataMovementOpcodes()
	installArithmeticOpcodes()
	installRotateOpcodes()
	installControlFlowOpcodes()
	installStackOpcodes()
	installIOOpcodes()
	installMiscOpcodes()
	installUndocumentedAliases()
}

// execUndefinedNOP is never reached in practice: installUndocumentedAliases
// and the family installers between them cover all 256 entries, but the
// default keeps the table total and crash-free if one is ever missed.
func execUndefinedNOP(c *CPU) int {
	return 4
}

// fetchByte reads the byte at PC and advances PC past it, the 8080's
// immediate-operand fetch used by every instruction with an 8-bit
// immediate or a single-byte displacement.
func (c *CPU) fetchByte() uint8 {
	v := c.Bus.ReadByte(c.Reg.PC)
	c.Reg.PC++
	return v
}

// fetchWord reads the little-endian word at PC and advances PC past both
// bytes, the 8080's immediate/address-operand fetch.
func (c *CPU) fetchWord() uint16 {
	lo := uint16(c.fetchByte())
	hi := uint16(c.fetchByte())
	return hi<<8 | lo
}
