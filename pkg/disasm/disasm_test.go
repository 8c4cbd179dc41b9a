package disasm

import "testing"

func TestDisassembleImmediateForms(t *testing.T) {
	cases := []struct {
		opcode, b1, b2 byte
		want           string
		length         int
	}{
		{0x3E, 0x0F, 0x00, "MVI A,$0f", 2},
		{0x21, 0x34, 0x12, "LXI H,$1234", 3},
		{0xC2, 0x02, 0x01, "JNZ $0102", 3},
		{0xC7, 0x00, 0x00, "RST 0", 1},
		{0x00, 0x00, 0x00, "NOP", 1},
		{0x76, 0x00, 0x00, "HLT", 1},
	}
	for _, tc := range cases {
		got, length := Disassemble(tc.opcode, tc.b1, tc.b2)
		if got != tc.want || length != tc.length {
			t.Errorf("Disassemble(0x%02x): got (%q, %d), want (%q, %d)",
				tc.opcode, got, length, tc.want, tc.length)
		}
	}
}

func TestLengthMatchesEncoding(t *testing.T) {
	if Length(0x00) != 1 {
		t.Errorf("NOP length = %d, want 1", Length(0x00))
	}
	if Length(0x3E) != 2 {
		t.Errorf("MVI A length = %d, want 2", Length(0x3E))
	}
	if Length(0xC3) != 3 {
		t.Errorf("JMP length = %d, want 3", Length(0xC3))
	}
}

func TestUndocumentedOpcodeAliases(t *testing.T) {
	mnemonic, _ := Disassemble(0x08, 0, 0)
	if mnemonic != "NOP" {
		t.Errorf("0x08 alias = %q, want NOP", mnemonic)
	}
	mnemonic, _ = Disassemble(0xD9, 0, 0)
	if mnemonic != "RET" {
		t.Errorf("0xD9 alias = %q, want RET", mnemonic)
	}
}
