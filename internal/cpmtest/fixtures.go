package cpmtest

// The real 8080PRE, TST8080, CPUTEST and 8080EXM community binaries are
// not part of this repository's retrieved pack, so these two small
// hand-assembled programs stand in for the first two: they exercise the
// exact same CALL-5/JMP-0 CP/M convention and print the same banner text
// spec.md §8 scenario 2 names, without attempting the exhaustive opcode
// coverage the real ROMs provide. CPUTEST and 8080EXM have no small
// stand-in that would mean anything — they are run from an externally
// supplied --rom path.

// Preliminary8080, loaded at 0x0100, prints "CPU IS OPERATIONAL" and
// exits via JMP 0. Assembly:
//
//	ORG  0100h
//	LXI  D,msg
//	MVI  C,9
//	CALL 5
//	JMP  0
//
// msg: DB 'CPU IS OPERATIONAL$'
var Preliminary8080 = assemblePrintAndExit("CPU IS OPERATIONAL")

// TST8080 (stand-in) prints "8080 Preliminary tests complete" and exits
// the same way; the real TST8080 binary runs far more extensive checks.
var TST8080 = assemblePrintAndExit("8080 Preliminary tests complete")

// assemblePrintAndExit hand-assembles LXI D,msg / MVI C,9 / CALL 5 /
// JMP 0 followed by msg+'$', loadable at origin 0x0100.
func assemblePrintAndExit(msg string) []byte {
	const msgAddr = 0x010B // 0x0100 + len(LXI)+len(MVI)+len(CALL)+len(JMP) = 0x0100+11
	prog := []byte{
		0x11, byte(msgAddr), byte(msgAddr >> 8), // LXI D,msg
		0x0E, 0x09, // MVI C,9
		0xCD, 0x05, 0x00, // CALL 5
		0xC3, 0x00, 0x00, // JMP 0
	}
	prog = append(prog, []byte(msg)...)
	prog = append(prog, '$')
	return prog
}
