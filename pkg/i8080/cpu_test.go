package i8080

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountdownLoop(t *testing.T) {
	c := New()
	c.Reg.SP = 0xFF00
	c.Reg.Push(0x0000)
	c.Reg.PC = 0x0100

	// MVI A,0x0F; DCR A; JNZ 0x0102; RET
	prog := []uint8{0x3E, 0x0F, 0x3D, 0xC2, 0x02, 0x01, 0xC9}
	for i, b := range prog {
		c.Bus.WriteByte(0x0100+uint16(i), b)
	}

	for c.Reg.PC != 0x0000 {
		c.Step()
	}

	assert.Equal(t, uint8(0x00), c.Reg.A)
	assert.True(t, c.Flags.Z)
	assert.False(t, c.Flags.S)
}

func TestOutLatch(t *testing.T) {
	c := New()
	c.Reg.PC = 0x0000
	prog := []uint8{0x3E, 0x55, 0xD3, 0x01, 0x76} // MVI A,0x55; OUT 1; HLT
	for i, b := range prog {
		c.Bus.WriteByte(uint16(i), b)
	}

	for !c.Halted {
		c.Step()
	}

	v, ok := c.Bus.GetIOOut(1)
	require.True(t, ok)
	assert.Equal(t, uint8(0x55), v)
	assert.Equal(t, uint8(0x55), c.Reg.A)
	assert.Equal(t, uint16(4), c.Reg.PC)
}

func TestInterruptService(t *testing.T) {
	c := New()
	c.Bus.WriteByte(0x0000, 0xC3) // JMP 0
	c.Bus.WriteByte(0x0001, 0x00)
	c.Bus.WriteByte(0x0002, 0x00)
	c.Reg.PC = 0x0000
	c.Reg.SP = 0x2000
	c.setINTE(true)

	c.RequestInterrupt(0xCF) // RST 1

	cycles := c.Step()

	assert.Equal(t, 11, cycles)
	assert.Equal(t, uint16(0x0008), c.Reg.PC)
	assert.False(t, c.INTE())
	assert.False(t, c.InterruptPending())
	assert.Equal(t, uint16(0x0000), c.Reg.Pop())
}

func TestReadOnlyWindowScenario(t *testing.T) {
	c := New()
	c.Bus.SetROMSpace(0x0000, 0x00FF)
	c.Reg.PC = 0x0200 // outside the window so the program itself can run

	prog := []uint8{0x3E, 0xAA, 0x32, 0x10, 0x00} // MVI A,0xAA; STA 0x0010
	for i, b := range prog {
		c.Bus.WriteByte(0x0200+uint16(i), b)
	}

	c.Step()
	c.Step()

	assert.Equal(t, uint8(0xAA), c.Reg.A)
	assert.Equal(t, uint8(0x00), c.Bus.ReadByte(0x0010))
}

func TestDelayedEI(t *testing.T) {
	c := New()
	c.Reg.PC = 0x0000
	c.Bus.WriteByte(0x0000, 0xFB) // EI
	c.Bus.WriteByte(0x0001, 0x00) // NOP

	c.Step() // EI retires
	assert.False(t, c.INTE(), "INTE must not be set the same step as EI")

	c.Step() // NOP retires
	assert.True(t, c.INTE(), "INTE becomes set only after the instruction following EI retires")
}

func TestCallThenRetRestoresPCAndSP(t *testing.T) {
	c := New()
	c.Reg.SP = 0x2000
	c.Reg.PC = 0x0100
	c.Bus.WriteByte(0x0100, 0xCD) // CALL 0x0300
	c.Bus.WriteByte(0x0101, 0x00)
	c.Bus.WriteByte(0x0102, 0x03)
	c.Bus.WriteByte(0x0300, 0xC9) // RET

	c.Step()
	assert.Equal(t, uint16(0x0300), c.Reg.PC)
	c.Step()
	assert.Equal(t, uint16(0x0103), c.Reg.PC)
	assert.Equal(t, uint16(0x2000), c.Reg.SP)
}

func TestDAADecimalCorrection(t *testing.T) {
	c := New()
	c.Reg.A = 0x9A
	execDAA(c)
	assert.Equal(t, uint8(0x00), c.Reg.A)
	assert.True(t, c.Flags.C)
}
