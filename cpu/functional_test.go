package cpu_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/beevik/m6502/cpu"
)

const (
	functionalBin     = "6502_functional_test.bin"
	functionalEntry   = 0x0400
	functionalSuccess = 0x3469
	functionalLimit   = 200_000_000
)

// Runs Klaus Dormann's 6502 functional test image if it is present in
// testdata. The image is not distributed with this package. Get
// bin_files/6502_functional_test.bin from
// https://github.com/Klaus2m5/6502_65C02_functional_tests and copy it to
// cpu/testdata. It must be the stock build, loaded at $0000 and entered
// at $0400.
//
// The test traps in a jump-to-self loop on both success and failure, so
// the trap address tells which one happened.
func TestKlausFunctional(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", functionalBin))
	if os.IsNotExist(err) {
		t.Skipf("testdata/%s not present", functionalBin)
	}
	require.NoError(t, err)
	require.Len(t, data, 0x10000)

	mem := cpu.NewFlatMemory()
	require.NoError(t, mem.StoreBytes(0, data))

	c := cpu.NewCPU(cpu.NMOS, mem)
	c.SetPC(functionalEntry)

	var cycles uint64
	for cycles < functionalLimit {
		pc := c.Reg.PC
		cycles += c.Step()
		if c.Reg.PC == pc {
			break
		}
	}
	require.Equal(t, uint16(functionalSuccess), c.Reg.PC,
		"trapped at $%04X (test case $%02X)", c.Reg.PC, mem.Read(0x0200))
}
