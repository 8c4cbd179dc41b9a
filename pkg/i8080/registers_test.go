package i8080

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/retrocore/i8080/pkg/bus"
)

func newTestRegisters() (*Registers, *bus.Bus) {
	b := bus.New()
	return NewRegisters(b), b
}

func TestReg8RoutesMThroughBus(t *testing.T) {
	r, b := newTestRegisters()
	r.H, r.L = 0x20, 0x10

	r.SetReg8(6, 0x99)
	assert.Equal(t, uint8(0x99), b.ReadByte(0x2010))
	assert.Equal(t, uint8(0x99), r.Reg8(6))
}

func TestReg8Indexing(t *testing.T) {
	r, _ := newTestRegisters()
	r.B, r.C, r.D, r.E, r.H, r.L, r.A = 1, 2, 3, 4, 5, 6, 7
	for i, want := range []uint8{1, 2, 3, 4, 5, 6, 0, 7} {
		if i == 6 {
			continue // M, covered separately
		}
		assert.Equal(t, want, r.Reg8(uint8(i)), "index %d", i)
	}
}

func TestRegPairIndexing(t *testing.T) {
	r, _ := newTestRegisters()
	r.SetRegPair(0, 0x1234)
	assert.Equal(t, uint8(0x12), r.B)
	assert.Equal(t, uint8(0x34), r.C)
	assert.Equal(t, uint16(0x1234), r.RegPair(0))

	r.SetRegPair(3, 0xFF00)
	assert.Equal(t, uint16(0xFF00), r.SP)
}

func TestPushPopSPConvention(t *testing.T) {
	r, b := newTestRegisters()
	r.SP = 0x2000

	r.Push(0xBEEF)
	assert.Equal(t, uint16(0x1FFE), r.SP)
	assert.Equal(t, uint8(0xEF), b.ReadByte(0x1FFE))
	assert.Equal(t, uint8(0xBE), b.ReadByte(0x1FFF))

	got := r.Pop()
	assert.Equal(t, uint16(0xBEEF), got)
	assert.Equal(t, uint16(0x2000), r.SP)
}
