package disasm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/beevik/m6502/cpu"
	"github.com/beevik/m6502/disasm"
)

func TestDisassemble(t *testing.T) {
	mem := cpu.NewFlatMemory()
	mem.StoreBytes(0x1000, []byte{
		0xa9, 0x5e, // LDA #$5E
		0xbd, 0x34, 0x12, // LDA $1234,X
		0x0a,       // ASL A
		0xd0, 0xfa, // BNE $1002
		0xb1, 0x80, // LDA ($80),Y
		0xea,       // NOP
		0xa7, 0x10, // *LAX $10
		0x6c, 0xff, 0x12, // JMP ($12FF)
	})
	c := cpu.NewCPU(cpu.NMOS, mem)

	want := []string{
		"LDA #$5E",
		"LDA $1234,X",
		"ASL A",
		"BNE $1002",
		"LDA ($80),Y",
		"NOP",
		"*LAX $10",
		"JMP ($12FF)",
	}

	addr := uint16(0x1000)
	for _, w := range want {
		line, next := disasm.Disassemble(c, addr)
		assert.Equal(t, w, line)
		assert.Greater(t, next, addr)
		addr = next
	}
	assert.Equal(t, uint16(0x1010), addr)
	assert.Equal(t, "6C FF 12", disasm.GetCodeBytes(c, 0x100d))
}

func TestGetRegisterString(t *testing.T) {
	var r cpu.Registers
	r.Init()
	r.PC = 0x1000
	r.A = 0x42
	assert.Equal(t, "A=42 X=00 Y=00 PS=[-----I--] SP=FD PC=1000", disasm.GetRegisterString(&r))
}
