package i8080

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestINLeavesALoneWithNoPendingLatch(t *testing.T) {
	c := New()
	c.Reg.A = 0x77
	c.Reg.PC = 0x0000
	c.Bus.WriteByte(0x0000, 0xDB) // IN 3
	c.Bus.WriteByte(0x0001, 0x03)

	cycles := c.Step()

	assert.Equal(t, 10, cycles)
	assert.Equal(t, uint8(0x77), c.Reg.A, "A must be unchanged when no value is pending for the port")
	assert.Equal(t, uint16(0x0002), c.Reg.PC)
}

func TestINConsumesPendingLatch(t *testing.T) {
	c := New()
	c.Bus.SetIOIn(3, 0x9A)
	c.Reg.PC = 0x0000
	c.Bus.WriteByte(0x0000, 0xDB)
	c.Bus.WriteByte(0x0001, 0x03)

	c.Step()

	assert.Equal(t, uint8(0x9A), c.Reg.A)
}

func TestConditionalCallCycleCounts(t *testing.T) {
	c := New()
	c.Reg.PC = 0x0000
	c.Reg.SP = 0x2000
	c.Flags.Z = true // CZ taken, CNZ not taken

	c.Bus.WriteByte(0x0000, 0xCC) // CZ 0x1000
	c.Bus.WriteByte(0x0001, 0x00)
	c.Bus.WriteByte(0x0002, 0x10)

	cycles := c.Step()
	assert.Equal(t, 17, cycles, "taken conditional CALL costs 17")
	assert.Equal(t, uint16(0x1000), c.Reg.PC)

	c2 := New()
	c2.Reg.PC = 0x0000
	c2.Reg.SP = 0x2000
	c2.Flags.Z = true
	c2.Bus.WriteByte(0x0000, 0xC4) // CNZ 0x1000 — not taken since Z is set
	c2.Bus.WriteByte(0x0001, 0x00)
	c2.Bus.WriteByte(0x0002, 0x10)

	cycles2 := c2.Step()
	assert.Equal(t, 11, cycles2, "not-taken conditional CALL costs 11")
	assert.Equal(t, uint16(0x0003), c2.Reg.PC)
}

func TestConditionalReturnCycleCounts(t *testing.T) {
	c := New()
	c.Reg.SP = 0x2000
	c.Reg.Push(0x1234)
	c.Reg.PC = 0x0000
	c.Flags.C = true

	c.Bus.WriteByte(0x0000, 0xD8) // RC — taken

	cycles := c.Step()
	assert.Equal(t, 11, cycles)
	assert.Equal(t, uint16(0x1234), c.Reg.PC)
}

func TestConditionalJumpAlwaysCosts10(t *testing.T) {
	for _, taken := range []bool{true, false} {
		c := New()
		c.Reg.PC = 0x0000
		c.Flags.Z = taken
		c.Bus.WriteByte(0x0000, 0xCA) // JZ 0x2000
		c.Bus.WriteByte(0x0001, 0x00)
		c.Bus.WriteByte(0x0002, 0x20)

		cycles := c.Step()
		assert.Equal(t, 10, cycles)
	}
}

func TestHaltParksPCAndCostsFourPerPoll(t *testing.T) {
	c := New()
	c.Reg.PC = 0x0050
	c.Bus.WriteByte(0x0050, 0x76) // HLT

	cycles := c.Step()
	assert.Equal(t, 7, cycles)
	assert.True(t, c.Halted)
	assert.Equal(t, uint16(0x0050), c.Reg.PC, "PC stays parked on the HLT address")

	cycles = c.Step()
	assert.Equal(t, 4, cycles, "each subsequent poll while halted costs 4")
	assert.True(t, c.Halted)
}

func TestXTHLSwapsTopOfStackWithHL(t *testing.T) {
	c := New()
	c.Reg.SP = 0x2000
	c.Bus.WriteWord(0x2000, 0x1234)
	c.Reg.SetHL(0x5678)
	c.Reg.PC = 0x0000
	c.Bus.WriteByte(0x0000, 0xE3) // XTHL

	cycles := c.Step()

	assert.Equal(t, 18, cycles)
	assert.Equal(t, uint16(0x1234), c.Reg.HL())
	assert.Equal(t, uint16(0x5678), c.Bus.ReadWord(0x2000))
}
