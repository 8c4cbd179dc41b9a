package i8080

// testCondition evaluates the opcode map's 3-bit condition field: 0=NZ,
// 1=Z, 2=NC, 3=C, 4=PO, 5=PE, 6=P, 7=M.
func (c *CPU) testCondition(cc uint8) bool {
	switch cc & 0x07 {
	case 0:
		return !c.Flags.Z
	case 1:
		return c.Flags.Z
	case 2:
		return !c.Flags.C
	case 3:
		return c.Flags.C
	case 4:
		return !c.Flags.P
	case 5:
		return c.Flags.P
	case 6:
		return !c.Flags.S
	default:
		return c.Flags.S
	}
}

// installControlFlowOpcodes wires JMP, CALL, RET (unconditional and all
// eight conditional variants of each), RST and PCHL. A CALL pushes the
// address of the instruction after it, which is simply PC by the time
// Exec runs, since fetchWord already advanced PC past the 3-byte
// encoding before the branch decision is made.
func installControlFlowOpcodes() {
	opcodeTable[0xC3] = Instruction{Exec: func(c *CPU) int {
		c.Reg.PC = c.fetchWord()
		return 10
	}}
	opcodeTable[0xCD] = Instruction{Exec: func(c *CPU) int {
		addr := c.fetchWord()
		c.Reg.Push(c.Reg.PC)
		c.Reg.PC = addr
		return 17
	}}
	opcodeTable[0xC9] = Instruction{Exec: func(c *CPU) int {
		c.Reg.PC = c.Reg.Pop()
		return 10
	}}
	opcodeTable[0xE9] = Instruction{Exec: func(c *CPU) int { // PCHL
		c.Reg.PC = c.Reg.HL()
		return 5
	}}

	for cc := uint8(0); cc < 8; cc++ {
		cc := cc
		opcodeTable[0xC2+cc*8] = Instruction{Exec: func(c *CPU) int { // Jcc
			addr := c.fetchWord()
			if c.testCondition(cc) {
				c.Reg.PC = addr
			}
			return 10
		}}
		opcodeTable[0xC4+cc*8] = Instruction{Exec: func(c *CPU) int { // Ccc
			addr := c.fetchWord()
			if c.testCondition(cc) {
				c.Reg.Push(c.Reg.PC)
				c.Reg.PC = addr
				return 17
			}
			return 11
		}}
		opcodeTable[0xC0+cc*8] = Instruction{Exec: func(c *CPU) int { // Rcc
			if c.testCondition(cc) {
				c.Reg.PC = c.Reg.Pop()
				return 11
			}
			return 5
		}}
	}

	for n := uint8(0); n < 8; n++ {
		n := n
		opcodeTable[0xC7+n*8] = Instruction{Exec: func(c *CPU) int { // RST n
			c.Reg.Push(c.Reg.PC)
			c.Reg.PC = uint16(n) * 8
			return 11
		}}
	}
}
