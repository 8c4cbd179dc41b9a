package i8080

// installStackOpcodes wires PUSH/POP for BC, DE, HL and PSW (A plus the
// packed flag byte), plus XTHL and SPHL.
func installStackOpcodes() {
	for i := uint8(0); i < 3; i++ {
		i := i
		opcodeTable[0xC5+i*0x10] = Instruction{Exec: func(c *CPU) int { // PUSH rp
			c.Reg.Push(c.Reg.pushPopPair(i))
			return 11
		}}
		opcodeTable[0xC1+i*0x10] = Instruction{Exec: func(c *CPU) int { // POP rp
			c.Reg.setPushPopPair(i, c.Reg.Pop())
			return 10
		}}
	}

	opcodeTable[0xF5] = Instruction{Exec: func(c *CPU) int { // PUSH PSW
		c.Reg.Push(uint16(c.Reg.A)<<8 | uint16(c.Flags.ToPSW()))
		return 11
	}}
	opcodeTable[0xF1] = Instruction{Exec: func(c *CPU) int { // POP PSW
		v := c.Reg.Pop()
		c.Reg.A = uint8(v >> 8)
		c.Flags = FlagsFromPSW(uint8(v))
		return 10
	}}

	opcodeTable[0xE3] = Instruction{Exec: func(c *CPU) int { // XTHL
		lo := c.Bus.ReadByte(c.Reg.SP)
		hi := c.Bus.ReadByte(c.Reg.SP + 1)
		c.Bus.WriteByte(c.Reg.SP, c.Reg.L)
		c.Bus.WriteByte(c.Reg.SP+1, c.Reg.H)
		c.Reg.L = lo
		c.Reg.H = hi
		return 18
	}}
	opcodeTable[0xF9] = Instruction{Exec: func(c *CPU) int { // SPHL
		c.Reg.SP = c.Reg.HL()
		return 5
	}}
}
