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

// Package i8080 implements the Intel 8080 instruction set: register file,
// flag arithmetic, a 256-entry opcode dispatch table and the single-step
// executor that ties them to a memory/port bus. Grounded on the teacher's
// MG6502 (the top-level CPU aggregate, its flat register fields, and its
// single-opcode-at-a-time Clock/step loop) but the fetch-decode-execute
// loop itself is rebuilt for the 8080's fixed dispatch-on-opcode-byte
// model rather than the 6502's separate addressing-mode stage.
package i8080

import (
	"fmt"
	"strings"
	"time"

	"github.com/retrocore/i8080/pkg/bus"
	"github.com/retrocore/i8080/pkg/disasm"
	"github.com/retrocore/i8080/pkg/i8080log"
)

// CPU is the top-level 8080 aggregate: registers, flags, the bus, the
// one-shot interrupt slot, halted state and an optional debug trace.
type CPU struct {
	Reg   *Registers
	Flags Flags
	Bus   *bus.Bus

	Halted bool

	eiPending bool

	intPending bool
	intOpcode  uint8

	DebugEnabled bool
	debugBuf     strings.Builder

	// NsPerCycle, when non-zero, makes Step sleep for
	// cycles_consumed * NsPerCycle nanoseconds before returning.
	NsPerCycle int64
}

// New creates a CPU wired to its own fresh Bus.
func New() *CPU {
	b := bus.New()
	return &CPU{
		Reg: NewRegisters(b),
		Bus: b,
	}
}

// NewWithBus creates a CPU wired to an existing Bus, so a host can load
// firmware and configure port latches before the CPU touches it.
func NewWithBus(b *bus.Bus) *CPU {
	return &CPU{
		Reg: NewRegisters(b),
		Bus: b,
	}
}

// Reset zeroes the register file and flags, clears INTE, halted and any
// pending interrupt, and discards any unread debug trace.
func (c *CPU) Reset() {
	c.Reg.Reset()
	c.Flags = Flags{}
	c.Halted = false
	c.eiPending = false
	c.intPending = false
	c.intOpcode = 0
	c.debugBuf.Reset()
}

// RequestInterrupt arms the one-shot interrupt slot with opcode, typically
// one of the RST family (0xC7, 0xCF, ..., 0xFF). It is serviced at the
// start of the next Step if INTE is set at that time.
func (c *CPU) RequestInterrupt(opcode uint8) {
	c.intPending = true
	c.intOpcode = opcode
}

// InterruptPending reports whether an interrupt is currently armed.
func (c *CPU) InterruptPending() bool {
	return c.intPending
}

// ReadDebug returns and clears the accumulated debug trace buffer.
func (c *CPU) ReadDebug() string {
	s := c.debugBuf.String()
	c.debugBuf.Reset()
	return s
}

// Step services a pending interrupt if armed and enabled, otherwise
// fetches, decodes and executes one opcode at PC. It returns the number
// of 8080 clock cycles the retired instruction consumed.
func (c *CPU) Step() int {
	willService := c.INTE() && c.intPending

	if c.Halted && !willService {
		if c.NsPerCycle > 0 {
			time.Sleep(time.Duration(4 * c.NsPerCycle))
		}
		return 4
	}

	var opcode uint8
	startPC := c.Reg.PC

	if willService {
		opcode = c.intOpcode
	} else {
		opcode = c.Bus.ReadByte(c.Reg.PC)
		c.Reg.PC++
	}

	if willService {
		c.setINTE(false)
		c.intPending = false
		c.Halted = false
	}

	eiWasPending := c.eiPending
	cycles := c.execute(opcode)
	if eiWasPending {
		c.eiPending = false
		c.setINTE(true)
	}

	if c.DebugEnabled {
		c.appendDebug(opcode, startPC)
	}

	if c.NsPerCycle > 0 {
		time.Sleep(time.Duration(int64(cycles) * c.NsPerCycle))
	}

	return cycles
}

// INTE reports the interrupt-enable latch.
func (c *CPU) INTE() bool {
	return c.Reg.INTE
}

func (c *CPU) setINTE(on bool) {
	c.Reg.INTE = on
}

// execute dispatches opcode to its Instruction and runs it.
func (c *CPU) execute(opcode uint8) int {
	instr := opcodeTable[opcode]
	return instr.Exec(c)
}

// appendDebug formats the just-retired instruction. startPC is where the
// opcode was fetched from (captured before Exec ran, since a taken branch
// or call has already moved c.Reg.PC by the time we get here).
func (c *CPU) appendDebug(opcode uint8, startPC uint16) {
	b1 := c.Bus.ReadByte(startPC + 1)
	b2 := c.Bus.ReadByte(startPC + 2)
	mnemonic, length := disasm.Disassemble(opcode, b1, b2)

	hexBytes := make([]string, 0, 3)
	hexBytes = append(hexBytes, fmt.Sprintf("%02X", opcode))
	if length >= 2 {
		hexBytes = append(hexBytes, fmt.Sprintf("%02X", b1))
	}
	if length >= 3 {
		hexBytes = append(hexBytes, fmt.Sprintf("%02X", b2))
	}

	fmt.Fprintf(&c.debugBuf, "<%s>  %s\n", strings.Join(hexBytes, " "), mnemonic)
	fmt.Fprintf(&c.debugBuf,
		"PC : 0x%04X\tSP : 0x%04X\tS : %d\tZ : %d\tA : %d\tP : %d\tC : %d\n",
		c.Reg.PC, c.Reg.SP, b2i(c.Flags.S), b2i(c.Flags.Z), b2i(c.Flags.A), b2i(c.Flags.P), b2i(c.Flags.C))
	fmt.Fprintf(&c.debugBuf,
		"B : 0x%02X\tC : 0x%02X\tD : 0x%02X\tE : 0x%02X\tH : 0x%02X\tL : 0x%02X\tA : 0x%02X\n",
		c.Reg.B, c.Reg.C, c.Reg.D, c.Reg.E, c.Reg.H, c.Reg.L, c.Reg.A)

	i8080log.Log(mnemonic)
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
