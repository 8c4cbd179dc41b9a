package i8080

// installIOOpcodes wires IN and OUT. IN leaves A unchanged when no input
// is pending for the port, per the latch contract: the CPU never
// fabricates a value for a port the host hasn't armed.
func installIOOpcodes() {
	opcodeTable[0xDB] = Instruction{Exec: func(c *CPU) int { // IN port
		port := c.fetchByte()
		if v, ok := c.Bus.GetIOIn(port); ok {
			c.Reg.A = v
		}
		return 10
	}}
	opcodeTable[0xD3] = Instruction{Exec: func(c *CPU) int { // OUT port
		port := c.fetchByte()
		c.Bus.SetIOOut(port, c.Reg.A)
		return 10
	}}
}
