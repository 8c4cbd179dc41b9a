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

// Package bus implements the 8080's memory and port-I/O fabric: a flat
// 64KiB address space with an optional contiguous read-only window, plus
// the 256-entry input/output port latches a host uses to talk to the CPU
// between steps. Grounded on the teacher's pkg/bus (address dispatch) and
// pkg/cartridge/loader.go (file loading), generalized from a
// RAM/PPU/cartridge dispatch to the 8080's single flat space plus ROM
// window.
package bus

import (
	"os"

	"github.com/pkg/errors"

	"github.com/retrocore/i8080/pkg/memory"
)

// Bus is the 8080's view of the world: memory plus port latches.
type Bus struct {
	mem *memory.Plain

	romEnabled bool
	romLo      uint16
	romHi      uint16

	ioIn    [256]uint8
	ioInSet [256]bool

	ioOut    [256]uint8
	ioOutSet [256]bool
}

// New creates a Bus with a zeroed 64KiB address space and no ROM window.
func New() *Bus {
	return &Bus{mem: memory.NewPlain()}
}

// ReadByte returns the byte at addr. Reads always succeed, including
// inside a configured ROM window.
func (b *Bus) ReadByte(addr uint16) uint8 {
	return b.mem.Read(addr)
}

// ReadWord returns the little-endian word at addr: low byte at addr, high
// byte at addr+1, both taken modulo 65536 via uint16 wraparound.
func (b *Bus) ReadWord(addr uint16) uint16 {
	lo := uint16(b.mem.Read(addr))
	hi := uint16(b.mem.Read(addr + 1))
	return hi<<8 | lo
}

// WriteByte stores v at addr unless addr falls inside the configured
// read-only window, in which case the write is silently discarded.
func (b *Bus) WriteByte(addr uint16, v uint8) {
	if b.isROM(addr) {
		return
	}
	b.mem.Write(addr, v)
}

// WriteWord stores v at addr/addr+1 little-endian, as two independent
// byte writes each subject to the read-only check.
func (b *Bus) WriteWord(addr uint16, v uint16) {
	b.WriteByte(addr, uint8(v&0xFF))
	b.WriteByte(addr+1, uint8(v>>8))
}

func (b *Bus) isROM(addr uint16) bool {
	return b.romEnabled && addr >= b.romLo && addr <= b.romHi
}

// SetROMSpace installs an inclusive read-only window [lo, hi]. Writes to
// addresses in the window are discarded until ClearROMSpace is called.
func (b *Bus) SetROMSpace(lo, hi uint16) {
	b.romEnabled = true
	b.romLo = lo
	b.romHi = hi
}

// ClearROMSpace removes any configured read-only window.
func (b *Bus) ClearROMSpace() {
	b.romEnabled = false
}

// LoadBin reads the entire file at path and copies its bytes into memory
// starting at origin, wrapping at the 64KiB boundary. It bypasses the
// read-only window check, since this is how firmware is installed in the
// first place. The file is read whole before any byte is copied, so a
// read failure returns an error and leaves memory unchanged.
func (b *Bus) LoadBin(path string, origin uint16) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "load_bin: reading %s", path)
	}
	addr := origin
	for _, v := range data {
		b.mem.Write(addr, v)
		addr++
	}
	return nil
}

// SetIOIn makes v available to the CPU on the next IN from port.
func (b *Bus) SetIOIn(port uint8, v uint8) {
	b.ioIn[port] = v
	b.ioInSet[port] = true
}

// GetIOIn returns the pending input latch for port, and whether one is
// pending at all.
func (b *Bus) GetIOIn(port uint8) (uint8, bool) {
	return b.ioIn[port], b.ioInSet[port]
}

// ClearIOIn marks port's input latch as no longer pending.
func (b *Bus) ClearIOIn(port uint8) {
	b.ioInSet[port] = false
}

// SetIOOut records v as the last byte the CPU wrote to port via OUT.
func (b *Bus) SetIOOut(port uint8, v uint8) {
	b.ioOut[port] = v
	b.ioOutSet[port] = true
}

// GetIOOut returns the pending output latch for port, and whether the CPU
// has written to it since it was last cleared.
func (b *Bus) GetIOOut(port uint8) (uint8, bool) {
	return b.ioOut[port], b.ioOutSet[port]
}

// ClearIOOut marks port's output latch as consumed.
func (b *Bus) ClearIOOut(port uint8) {
	b.ioOutSet[port] = false
}
