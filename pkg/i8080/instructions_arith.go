package i8080

// The alu* constants follow the order of disasm's aluNames; kept local rather than shared
// since this package's table is execution-oriented (it stores functions,
// not display strings) and the two are intentionally independent.
const (
	aluADD = iota
	aluADC
	aluSUB
	aluSBB
	aluANA
	aluXRA
	aluORA
	aluCMP
)

// applyALU performs the ALU operation selected by alu on A and operand,
// storing the result in A except for CMP, which only sets flags.
func (c *CPU) applyALU(alu uint8, operand uint8) {
	switch alu {
	case aluADD:
		c.Reg.A = c.Flags.addFlags(c.Reg.A, operand, false)
	case aluADC:
		c.Reg.A = c.Flags.addFlags(c.Reg.A, operand, c.Flags.C)
	case aluSUB:
		c.Reg.A = c.Flags.subFlags(c.Reg.A, operand, false)
	case aluSBB:
		c.Reg.A = c.Flags.subFlags(c.Reg.A, operand, c.Flags.C)
	case aluANA:
		result := c.Reg.A & operand
		c.Flags.logicAndFlags(c.Reg.A, operand, result)
		c.Reg.A = result
	case aluXRA:
		result := c.Reg.A ^ operand
		c.Flags.logicOrXorFlags(result)
		c.Reg.A = result
	case aluORA:
		result := c.Reg.A | operand
		c.Flags.logicOrXorFlags(result)
		c.Reg.A = result
	case aluCMP:
		c.Flags.subFlags(c.Reg.A, operand, false)
	}
}

// installArithmeticOpcodes wires ADD/ADC/SUB/SBB/ANA/XRA/ORA/CMP in both
// their register and immediate forms, INR/DCR/INX/DCX/DAD, and DAA.
func installArithmeticOpcodes() {
	for alu := uint8(0); alu < 8; alu++ {
		for r := uint8(0); r < 8; r++ {
			alu, r := alu, r
			op := 0x80 + alu*8 + r
			opcodeTable[op] = Instruction{Exec: func(c *CPU) int {
				c.applyALU(alu, c.Reg.Reg8(r))
				if r == 6 {
					return 7
				}
				return 4
			}}
		}
		alu := alu
		opcodeTable[0xC6+alu*8] = Instruction{Exec: func(c *CPU) int {
			c.applyALU(alu, c.fetchByte())
			return 7
		}}
	}

	for r := uint8(0); r < 8; r++ {
		r := r
		opcodeTable[r*8+0x04] = Instruction{Exec: func(c *CPU) int { // INR
			result := c.Reg.Reg8(r) + 1
			c.Reg.SetReg8(r, result)
			c.Flags.incDecFlags(result, true)
			if r == 6 {
				return 10
			}
			return 5
		}}
		opcodeTable[r*8+0x05] = Instruction{Exec: func(c *CPU) int { // DCR
			result := c.Reg.Reg8(r) - 1
			c.Reg.SetReg8(r, result)
			c.Flags.incDecFlags(result, false)
			if r == 6 {
				return 10
			}
			return 5
		}}
	}

	for rp := uint8(0); rp < 4; rp++ {
		rp := rp
		opcodeTable[rp*0x10+0x03] = Instruction{Exec: func(c *CPU) int { // INX
			c.Reg.SetRegPair(rp, c.Reg.RegPair(rp)+1)
			return 5
		}}
		opcodeTable[rp*0x10+0x0B] = Instruction{Exec: func(c *CPU) int { // DCX
			c.Reg.SetRegPair(rp, c.Reg.RegPair(rp)-1)
			return 5
		}}
		opcodeTable[rp*0x10+0x09] = Instruction{Exec: func(c *CPU) int { // DAD
			hl := uint32(c.Reg.HL())
			operand := uint32(c.Reg.RegPair(rp))
			sum := hl + operand
			c.Reg.SetHL(uint16(sum))
			c.Flags.C = sum > 0xFFFF
			return 10
		}}
	}

	opcodeTable[0x27] = Instruction{Exec: execDAA}
}

// execDAA implements the BCD correction: two independent nibble
// adjustments driven by the nibble's own value and the carry the
// preceding add/sub left behind, per the real 8080's decimal-adjust
// microcode. The msb==9&&lsb>9 clause on the high correction covers the
// case where the low-nibble correction alone pushes the high nibble past
// 9 (e.g. 0x9A), which the high nibble's pre-correction value can't see
// on its own.
func execDAA(c *CPU) int {
	a := c.Reg.A
	lsb := a & 0x0F
	msb := a >> 4
	cy := c.Flags.C
	var correction uint8

	if c.Flags.A || lsb > 9 {
		correction += 0x06
	}
	if cy || msb > 9 || (msb == 9 && lsb > 9) {
		correction += 0x60
		cy = true
	}

	c.Flags.A = (lsb+(correction&0x0F))&0xF0 != 0
	result := a + correction
	c.Reg.A = result
	c.Flags.setSZP(result)
	c.Flags.C = cy
	return 4
}
