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

// Package disasm turns an 8080 opcode byte (plus up to two following
// bytes) into the classic Intel assembly mnemonic, with no knowledge of
// or access to any CPU state. It is grounded on the teacher's disassembly
// package (a pure address-to-mnemonic mapper used both standalone and by
// the CPU's own trace formatting) but rebuilt for the 8080's fixed-length,
// non-addressing-mode encoding rather than the 6502's addressing modes.
package disasm

import "fmt"

// entry describes one opcode's text rendering. format contains at most one
// printf verb (%02x for an immediate byte, %04x for a little-endian
// address/immediate word); operandBytes says how many of the following
// bytes that verb consumes, which is also (length-1).
type entry struct {
	format       string
	operandBytes int
}

func (e entry) length() int {
	return e.operandBytes + 1
}

var regNames = [8]string{"B", "C", "D", "E", "H", "L", "M", "A"}
var rpNames = [4]string{"B", "D", "H", "SP"}
var pushPopNames = [4]string{"B", "D", "H", "PSW"}
var condNames = [8]string{"NZ", "Z", "NC", "C", "PO", "PE", "P", "M"}

var table [256]entry

func init() {
	for i := range table {
		table[i] = entry{"???", 0}
	}

	table[0x00] = entry{"NOP", 0}
	table[0x07] = entry{"RLC", 0}
	table[0x0F] = entry{"RRC", 0}
	table[0x17] = entry{"RAL", 0}
	table[0x1F] = entry{"RAR", 0}
	table[0x27] = entry{"DAA", 0}
	table[0x2F] = entry{"CMA", 0}
	table[0x37] = entry{"STC", 0}
	table[0x3F] = entry{"CMC", 0}
	table[0x76] = entry{"HLT", 0}
	table[0xE3] = entry{"XTHL", 0}
	table[0xE9] = entry{"PCHL", 0}
	table[0xEB] = entry{"XCHG", 0}
	table[0xF3] = entry{"DI", 0}
	table[0xF9] = entry{"SPHL", 0}
	table[0xFB] = entry{"EI", 0}

	// Undocumented opcodes: the 8080 has no illegal-instruction trap, and
	// these twelve behave as NOP/JMP/CALL/RET aliases on real silicon.
	for _, op := range []int{0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38} {
		table[op] = entry{"NOP", 0}
	}
	table[0xCB] = entry{"JMP $%04x", 2}
	table[0xD9] = entry{"RET", 0}
	for _, op := range []int{0xDD, 0xED, 0xFD} {
		table[op] = entry{"CALL $%04x", 2}
	}

	for rp := 0; rp < 4; rp++ {
		base := rp * 0x10
		table[base+0x01] = entry{fmt.Sprintf("LXI %s,$%%04x", rpNames[rp]), 2}
		table[base+0x03] = entry{fmt.Sprintf("INX %s", rpNames[rp]), 0}
		table[base+0x09] = entry{fmt.Sprintf("DAD %s", rpNames[rp]), 0}
		table[base+0x0B] = entry{fmt.Sprintf("DCX %s", rpNames[rp]), 0}
	}
	table[0x02] = entry{"STAX B", 0}
	table[0x12] = entry{"STAX D", 0}
	table[0x0A] = entry{"LDAX B", 0}
	table[0x1A] = entry{"LDAX D", 0}
	table[0x22] = entry{"SHLD $%04x", 2}
	table[0x2A] = entry{"LHLD $%04x", 2}
	table[0x32] = entry{"STA $%04x", 2}
	table[0x3A] = entry{"LDA $%04x", 2}

	for r := 0; r < 8; r++ {
		table[r*8+0x04] = entry{fmt.Sprintf("INR %s", regNames[r]), 0}
		table[r*8+0x05] = entry{fmt.Sprintf("DCR %s", regNames[r]), 0}
		table[r*8+0x06] = entry{fmt.Sprintf("MVI %s,$%%02x", regNames[r]), 1}
	}

	for dst := 0; dst < 8; dst++ {
		for src := 0; src < 8; src++ {
			op := 0x40 + dst*8 + src
			if op == 0x76 {
				continue // HLT, set above
			}
			table[op] = entry{fmt.Sprintf("MOV %s,%s", regNames[dst], regNames[src]), 0}
		}
	}

	aluNames := []string{"ADD", "ADC", "SUB", "SBB", "ANA", "XRA", "ORA", "CMP"}
	for alu := 0; alu < 8; alu++ {
		for r := 0; r < 8; r++ {
			op := 0x80 + alu*8 + r
			table[op] = entry{fmt.Sprintf("%s %s", aluNames[alu], regNames[r]), 0}
		}
	}
	aluImmNames := []string{"ADI", "ACI", "SUI", "SBI", "ANI", "XRI", "ORI", "CPI"}
	for alu := 0; alu < 8; alu++ {
		table[0xC6+alu*8] = entry{fmt.Sprintf("%s $%%02x", aluImmNames[alu]), 1}
	}

	for cc := 0; cc < 8; cc++ {
		table[0xC0+cc*8] = entry{fmt.Sprintf("R%s", condNames[cc]), 0}
		table[0xC2+cc*8] = entry{fmt.Sprintf("J%s $%%04x", condNames[cc]), 2}
		table[0xC4+cc*8] = entry{fmt.Sprintf("C%s $%%04x", condNames[cc]), 2}
	}
	table[0xC3] = entry{"JMP $%04x", 2}
	table[0xCD] = entry{"CALL $%04x", 2}
	table[0xC9] = entry{"RET", 0}

	for i := 0; i < 4; i++ {
		table[0xC1+i*0x10] = entry{fmt.Sprintf("POP %s", pushPopNames[i]), 0}
		table[0xC5+i*0x10] = entry{fmt.Sprintf("PUSH %s", pushPopNames[i]), 0}
	}

	for n := 0; n < 8; n++ {
		table[0xC7+n*8] = entry{fmt.Sprintf("RST %d", n), 0}
	}

	table[0xD3] = entry{"OUT $%02x", 1}
	table[0xDB] = entry{"IN $%02x", 1}
}

// Length returns the instruction encoding length (1, 2 or 3 bytes) for the
// given opcode, without needing the bytes that follow it.
func Length(opcode byte) int {
	return table[opcode].length()
}

// Disassemble renders the instruction starting with opcode (with byte1 and
// byte2 as the following bytes, valid only up to the instruction's actual
// length) as classic Intel 8080 assembly syntax, and returns its encoded
// length in bytes.
func Disassemble(opcode, byte1, byte2 byte) (string, int) {
	e := table[opcode]
	switch e.operandBytes {
	case 0:
		return e.format, e.length()
	case 1:
		return fmt.Sprintf(e.format, byte1), e.length()
	case 2:
		word := uint16(byte2)<<8 | uint16(byte1)
		return fmt.Sprintf(e.format, word), e.length()
	}
	return e.format, e.length()
}
