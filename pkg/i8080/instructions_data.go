package i8080

// installDataMovementOpcodes wires MOV, MVI, LXI, LDA/STA, LHLD/SHLD,
// LDAX/STAX and XCHG: every opcode that moves a byte or word between two
// of {register, M, immediate, bus} without touching the flags.
func installDataMovementOpcodes() {
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			op := 0x40 + dst*8 + src
			if op == 0x76 {
				continue // HLT, installed by installMiscOpcodes
			}
			dst, src := dst, src
			opcodeTable[op] = Instruction{Exec: func(c *CPU) int {
				c.Reg.SetReg8(dst, c.Reg.Reg8(src))
				if dst == 6 || src == 6 {
					return 7
				}
				return 5
			}}
		}
	}

	for r := uint8(0); r < 8; r++ {
		r := r
		op := r*8 + 0x06
		opcodeTable[op] = Instruction{Exec: func(c *CPU) int {
			v := c.fetchByte()
			c.Reg.SetReg8(r, v)
			if r == 6 {
				return 10
			}
			return 7
		}}
	}

	for rp := uint8(0); rp < 4; rp++ {
		rp := rp
		opcodeTable[rp*0x10+0x01] = Instruction{Exec: func(c *CPU) int {
			c.Reg.SetRegPair(rp, c.fetchWord())
			return 10
		}}
	}

	opcodeTable[0x3A] = Instruction{Exec: func(c *CPU) int { // LDA addr
		c.Reg.A = c.Bus.ReadByte(c.fetchWord())
		return 13
	}}
	opcodeTable[0x32] = Instruction{Exec: func(c *CPU) int { // STA addr
		c.Bus.WriteByte(c.fetchWord(), c.Reg.A)
		return 13
	}}
	opcodeTable[0x2A] = Instruction{Exec: func(c *CPU) int { // LHLD addr
		c.Reg.SetHL(c.Bus.ReadWord(c.fetchWord()))
		return 16
	}}
	opcodeTable[0x22] = Instruction{Exec: func(c *CPU) int { // SHLD addr
		c.Bus.WriteWord(c.fetchWord(), c.Reg.HL())
		return 16
	}}

	opcodeTable[0x0A] = Instruction{Exec: func(c *CPU) int { // LDAX B
		c.Reg.A = c.Bus.ReadByte(c.Reg.RegPair(0))
		return 7
	}}
	opcodeTable[0x1A] = Instruction{Exec: func(c *CPU) int { // LDAX D
		c.Reg.A = c.Bus.ReadByte(c.Reg.RegPair(1))
		return 7
	}}
	opcodeTable[0x02] = Instruction{Exec: func(c *CPU) int { // STAX B
		c.Bus.WriteByte(c.Reg.RegPair(0), c.Reg.A)
		return 7
	}}
	opcodeTable[0x12] = Instruction{Exec: func(c *CPU) int { // STAX D
		c.Bus.WriteByte(c.Reg.RegPair(1), c.Reg.A)
		return 7
	}}

	opcodeTable[0xEB] = Instruction{Exec: func(c *CPU) int { // XCHG
		c.Reg.D, c.Reg.H = c.Reg.H, c.Reg.D
		c.Reg.E, c.Reg.L = c.Reg.L, c.Reg.E
		return 4
	}}
}
