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

// Package memory provides the flat, byte-addressable storage backing an
// Intel 8080 bus.
package memory

// Capacity is the size of the address space a 16-bit 8080 program counter
// can reach.
const Capacity = 65536

// Memory is the minimal contract a bus needs from its backing store.
type Memory interface {
	Reset()
	Read(addr uint16) uint8
	Write(addr uint16, value uint8) (oldValue uint8)
}

// Plain is a flat 64KiB array of bytes with wraparound addressing.
type Plain [Capacity]uint8

// NewPlain creates and zero-initializes a Plain memory.
func NewPlain() *Plain {
	m := &Plain{}
	m.Reset()
	return m
}

// Reset zeroes every byte. Real 8080 RAM powers up in an indeterminate
// state; zeroing is the conventional emulator default and keeps test runs
// deterministic.
func (m *Plain) Reset() {
	for i := range m {
		m[i] = 0
	}
}

func (m *Plain) Read(addr uint16) uint8 {
	return m[addr]
}

func (m *Plain) Write(addr uint16, value uint8) (oldValue uint8) {
	oldValue = m[addr]
	m[addr] = value
	return oldValue
}
