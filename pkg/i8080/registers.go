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

import "github.com/retrocore/i8080/pkg/bus"

// Registers is the 8080's programmer-visible register file: the eight
// 8-bit registers (with M routed through the bus at HL), SP, PC and the
// interrupt-enable latch. Grounded on the teacher's MG6502 register block
// (flat exported fields, a bus pointer alongside them) but adds indexed
// access by the 3-bit/2-bit fields the opcode map actually encodes with,
// since the 8080 (unlike the 6502) names its registers inside the opcode
// byte itself rather than through separate addressing modes.
type Registers struct {
	B, C, D, E, H, L, A uint8
	SP, PC              uint16
	INTE                bool

	bus *bus.Bus
}

// NewRegisters creates a zero-initialized register file wired to b.
func NewRegisters(b *bus.Bus) *Registers {
	return &Registers{bus: b}
}

// Reset zeroes every register, pointer and the interrupt-enable latch.
func (r *Registers) Reset() {
	r.B, r.C, r.D, r.E, r.H, r.L, r.A = 0, 0, 0, 0, 0, 0, 0
	r.SP, r.PC = 0, 0
	r.INTE = false
}

// HL returns the current value of the H:L pair.
func (r *Registers) HL() uint16 {
	return uint16(r.H)<<8 | uint16(r.L)
}

// SetHL stores v into the H:L pair.
func (r *Registers) SetHL(v uint16) {
	r.H = uint8(v >> 8)
	r.L = uint8(v)
}

// Reg8 reads the register named by the opcode map's 3-bit field: 0=B,
// 1=C, 2=D, 3=E, 4=H, 5=L, 6=M (memory at HL), 7=A.
func (r *Registers) Reg8(idx uint8) uint8 {
	switch idx & 0x07 {
	case 0:
		return r.B
	case 1:
		return r.C
	case 2:
		return r.D
	case 3:
		return r.E
	case 4:
		return r.H
	case 5:
		return r.L
	case 6:
		return r.bus.ReadByte(r.HL())
	default:
		return r.A
	}
}

// SetReg8 writes v to the register named by idx, following the same
// encoding as Reg8.
func (r *Registers) SetReg8(idx uint8, v uint8) {
	switch idx & 0x07 {
	case 0:
		r.B = v
	case 1:
		r.C = v
	case 2:
		r.D = v
	case 3:
		r.E = v
	case 4:
		r.H = v
	case 5:
		r.L = v
	case 6:
		r.bus.WriteByte(r.HL(), v)
	default:
		r.A = v
	}
}

// RegPair reads the pair named by the opcode map's 2-bit field for
// register-pair instructions other than PUSH/POP: 0=BC, 1=DE, 2=HL, 3=SP.
func (r *Registers) RegPair(idx uint8) uint16 {
	switch idx & 0x03 {
	case 0:
		return uint16(r.B)<<8 | uint16(r.C)
	case 1:
		return uint16(r.D)<<8 | uint16(r.E)
	case 2:
		return r.HL()
	default:
		return r.SP
	}
}

// SetRegPair writes v to the pair named by idx, following RegPair's
// encoding.
func (r *Registers) SetRegPair(idx uint8, v uint16) {
	switch idx & 0x03 {
	case 0:
		r.B, r.C = uint8(v>>8), uint8(v)
	case 1:
		r.D, r.E = uint8(v>>8), uint8(v)
	case 2:
		r.SetHL(v)
	default:
		r.SP = v
	}
}

// pushPopPair indexes {BC, DE, HL} for PUSH/POP's 2-bit field; index 3
// is PSW (A + flags) and is handled by the CPU directly since it needs
// the Flags struct, not a plain register pair.
func (r *Registers) pushPopPair(idx uint8) uint16 {
	switch idx & 0x03 {
	case 0:
		return uint16(r.B)<<8 | uint16(r.C)
	case 1:
		return uint16(r.D)<<8 | uint16(r.E)
	default:
		return r.HL()
	}
}

func (r *Registers) setPushPopPair(idx uint8, v uint16) {
	switch idx & 0x03 {
	case 0:
		r.B, r.C = uint8(v>>8), uint8(v)
	case 1:
		r.D, r.E = uint8(v>>8), uint8(v)
	default:
		r.SetHL(v)
	}
}

// Push writes v onto the stack using the 8080's SP±2 convention: SP is
// decremented by 2 first, then the high byte lands at SP+1 and the low
// byte at SP.
func (r *Registers) Push(v uint16) {
	r.SP -= 2
	r.bus.WriteByte(r.SP+1, uint8(v>>8))
	r.bus.WriteByte(r.SP, uint8(v))
}

// Pop reads a 16-bit value off the stack and advances SP by 2, the
// inverse of Push.
func (r *Registers) Pop() uint16 {
	lo := r.bus.ReadByte(r.SP)
	hi := r.bus.ReadByte(r.SP + 1)
	r.SP += 2
	return uint16(hi)<<8 | uint16(lo)
}
