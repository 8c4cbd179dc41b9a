package i8080

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
)

func TestPSWRoundTrip(t *testing.T) {
	for bits := 0; bits < (1 << 13); bits++ {
		b := uint8(0)
		if bits&0x01 != 0 {
			b |= pswBitS
		}
		if bits&0x02 != 0 {
			b |= pswBitZ
		}
		if bits&0x04 != 0 {
			b |= pswBitA
		}
		if bits&0x08 != 0 {
			b |= pswBitP
		}
		if bits&0x10 != 0 {
			b |= pswBitC
		}

		f := FlagsFromPSW(b)
		roundTripped := f.ToPSW()

		if roundTripped != b|(1<<1) {
			t.Fatalf("PSW round trip mismatch for input 0x%02x: got 0x%02x\n%s",
				b, roundTripped, spew.Sdump(f))
		}
	}
}

func TestToPSWFixedBits(t *testing.T) {
	f := Flags{}
	psw := f.ToPSW()
	assert.Equal(t, uint8(0x02), psw, "bit1 must be 1 and bits 5,3 must be 0 when every flag is clear")
}

func TestAddFlagsCarryAndAux(t *testing.T) {
	var f Flags
	result := f.addFlags(0xFF, 0x01, false)
	assert.Equal(t, uint8(0x00), result)
	assert.True(t, f.Z)
	assert.True(t, f.C)
	assert.True(t, f.A)
	assert.False(t, f.S)
}

func TestSubFlagsBorrow(t *testing.T) {
	var f Flags
	result := f.subFlags(0x00, 0x01, false)
	assert.Equal(t, uint8(0xFF), result)
	assert.True(t, f.C, "borrow must set C")
	assert.True(t, f.S)
}

func TestSubFlagsNoBorrow(t *testing.T) {
	var f Flags
	result := f.subFlags(0x10, 0x01, false)
	assert.Equal(t, uint8(0x0F), result)
	assert.False(t, f.C, "no borrow when minuend exceeds subtrahend")
	assert.True(t, f.A, "half-borrow from bit 4")
}

func TestLogicAndFlagsQuirk(t *testing.T) {
	var f Flags
	// a|b has bit 3 set, so A must be set even though no carry occurred.
	f.logicAndFlags(0x08, 0x00, 0x00)
	assert.True(t, f.A)
	assert.False(t, f.C)
}

func TestParityEven(t *testing.T) {
	assert.True(t, parity(0x00))
	assert.True(t, parity(0x03))
	assert.False(t, parity(0x01))
}
