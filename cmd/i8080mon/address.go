// Breakpoint/watch address-expression parsing, adapted from the
// teacher pack's IntuitionEngine machine monitor (debug_commands.go):
// the same $hex / 0xhex / bare-hex / #decimal grammar, plus a single
// register±offset form, generalized from the 6502's register set to the
// 8080's (PC, SP, A and the BC/DE/HL pairs).
package main

import (
	"strconv"
	"strings"

	"github.com/retrocore/i8080/pkg/i8080"
)

// parseAddress parses a monitor address in $hex, 0xhex, bare-hex or
// #decimal form.
func parseAddress(s string) (uint16, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if strings.HasPrefix(s, "#") {
		v, err := strconv.ParseUint(s[1:], 10, 16)
		return uint16(v), err == nil
	}
	if strings.HasPrefix(s, "$") {
		v, err := strconv.ParseUint(s[1:], 16, 16)
		return uint16(v), err == nil
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 16)
		return uint16(v), err == nil
	}
	v, err := strconv.ParseUint(s, 16, 16)
	return uint16(v), err == nil
}

// registerValue resolves one of the 8080's named registers/pairs, case
// insensitive, for use as a term in an address expression.
func registerValue(name string, cpu *i8080.CPU) (uint16, bool) {
	switch strings.ToUpper(name) {
	case "PC":
		return cpu.Reg.PC, true
	case "SP":
		return cpu.Reg.SP, true
	case "A":
		return uint16(cpu.Reg.A), true
	case "BC":
		return cpu.Reg.RegPair(0), true
	case "DE":
		return cpu.Reg.RegPair(1), true
	case "HL":
		return cpu.Reg.HL(), true
	default:
		return 0, false
	}
}

// evalAddress evaluates "<term> [+|- <term>]", where each term is either
// a register name or a numeric address — enough to write breakpoints
// like "PC+3" or "HL" alongside plain "$4000".
func evalAddress(expr string, cpu *i8080.CPU) (uint16, bool) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return 0, false
	}

	op := byte(0)
	split := -1
	for i := 1; i < len(expr); i++ {
		if expr[i] == '+' || expr[i] == '-' {
			split = i
			op = expr[i]
			break
		}
	}

	first := expr
	if split >= 0 {
		first = expr[:split]
	}
	firstVal, ok := termValue(first, cpu)
	if !ok {
		return 0, false
	}
	if split < 0 {
		return firstVal, true
	}

	secondVal, ok := termValue(expr[split+1:], cpu)
	if !ok {
		return 0, false
	}
	if op == '+' {
		return firstVal + secondVal, true
	}
	return firstVal - secondVal, true
}

func termValue(s string, cpu *i8080.CPU) (uint16, bool) {
	s = strings.TrimSpace(s)
	if v, ok := registerValue(s, cpu); ok {
		return v, true
	}
	return parseAddress(s)
}
