package cpu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/beevik/m6502/cpu"
)

func TestFlatMemoryBytes(t *testing.T) {
	mem := cpu.NewFlatMemory()
	assert.NoError(t, mem.StoreBytes(0x2000, []byte{1, 2, 3}))

	b := make([]byte, 4)
	mem.LoadBytes(0x2000, b)
	assert.Equal(t, []byte{1, 2, 3, 0}, b)

	assert.ErrorIs(t, mem.StoreBytes(0xfffe, []byte{1, 2, 3}), cpu.ErrMemoryOutOfBounds)
	assert.NoError(t, mem.StoreBytes(0xfffd, []byte{0xaa, 0xbb, 0xcc}))
}

func TestFlatMemoryLoadPastEnd(t *testing.T) {
	mem := cpu.NewFlatMemory()
	mem.StoreBytes(0xfffc, []byte{0x11, 0x22, 0x33, 0x44})
	mem.Write(0x0000, 0x99)

	// Bytes beyond $FFFF come back as zero rather than wrapping.
	b := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	mem.LoadBytes(0xfffc, b)
	assert.Equal(t, []byte{0x11, 0x22, 0x33, 0x44, 0, 0, 0, 0}, b)
}

func TestFlatMemoryAddress(t *testing.T) {
	mem := cpu.NewFlatMemory()
	mem.StoreAddress(0x1234, 0xbeef)
	assert.Equal(t, byte(0xef), mem.Read(0x1234))
	assert.Equal(t, byte(0xbe), mem.Read(0x1235))
	assert.Equal(t, uint16(0xbeef), mem.LoadAddress(0x1234))

	// The high byte wraps around to $0000.
	mem.StoreAddress(0xffff, 0x5678)
	assert.Equal(t, byte(0x78), mem.Read(0xffff))
	assert.Equal(t, byte(0x56), mem.Read(0x0000))
	assert.Equal(t, uint16(0x5678), mem.LoadAddress(0xffff))
}
