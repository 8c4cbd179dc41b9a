package bus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWriteByte(t *testing.T) {
	b := New()
	assert.Equal(t, uint8(0), b.ReadByte(0x1234))

	b.WriteByte(0x1234, 0xAB)
	assert.Equal(t, uint8(0xAB), b.ReadByte(0x1234))
}

func TestReadWriteWordLittleEndian(t *testing.T) {
	b := New()
	b.WriteWord(0x2000, 0x1234)

	assert.Equal(t, uint8(0x34), b.ReadByte(0x2000), "low byte at addr")
	assert.Equal(t, uint8(0x12), b.ReadByte(0x2001), "high byte at addr+1")
	assert.Equal(t, uint16(0x1234), b.ReadWord(0x2000))
}

func TestROMSpaceDiscardsWrites(t *testing.T) {
	b := New()
	b.WriteByte(0x0010, 0x11)
	b.SetROMSpace(0x0000, 0x00FF)

	b.WriteByte(0x0010, 0xAA)
	assert.Equal(t, uint8(0x11), b.ReadByte(0x0010), "write inside ROM window must be discarded")

	b.WriteByte(0x0200, 0x22)
	assert.Equal(t, uint8(0x22), b.ReadByte(0x0200), "write outside ROM window must land")

	b.ClearROMSpace()
	b.WriteByte(0x0010, 0xBB)
	assert.Equal(t, uint8(0xBB), b.ReadByte(0x0010), "clearing the window must restore writability")
}

func TestLoadBinWrapsAndBypassesROM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fw.bin")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3, 4}, 0o644))

	b := New()
	b.SetROMSpace(0x0000, 0xFFFF)
	require.NoError(t, b.LoadBin(path, 0xFFFE))

	assert.Equal(t, uint8(1), b.ReadByte(0xFFFE))
	assert.Equal(t, uint8(2), b.ReadByte(0xFFFF))
	assert.Equal(t, uint8(3), b.ReadByte(0x0000), "load_bin wraps at the 64KiB boundary")
	assert.Equal(t, uint8(4), b.ReadByte(0x0001))
}

func TestLoadBinMissingFile(t *testing.T) {
	b := New()
	err := b.LoadBin(filepath.Join(t.TempDir(), "missing.bin"), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load_bin")
}

func TestIOInLatch(t *testing.T) {
	b := New()
	_, ok := b.GetIOIn(1)
	assert.False(t, ok, "no value pending by default")

	b.SetIOIn(1, 0x42)
	v, ok := b.GetIOIn(1)
	require.True(t, ok)
	assert.Equal(t, uint8(0x42), v)

	b.ClearIOIn(1)
	_, ok = b.GetIOIn(1)
	assert.False(t, ok)
}

func TestIOOutLatch(t *testing.T) {
	b := New()
	_, ok := b.GetIOOut(7)
	assert.False(t, ok)

	b.SetIOOut(7, 0x55)
	v, ok := b.GetIOOut(7)
	require.True(t, ok)
	assert.Equal(t, uint8(0x55), v)

	b.ClearIOOut(7)
	_, ok = b.GetIOOut(7)
	assert.False(t, ok)
}
