package cpu_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/beevik/m6502/cpu"
)

// Base cycle counts for every NMOS opcode, without page crossing or
// branch penalties.
var nmosCycles = [256]byte{
	7, 6, 2, 8, 3, 3, 5, 5, 3, 2, 2, 2, 4, 4, 6, 6, // 0x
	2, 5, 2, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7, // 1x
	6, 6, 2, 8, 3, 3, 5, 5, 4, 2, 2, 2, 4, 4, 6, 6, // 2x
	2, 5, 2, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7, // 3x
	6, 6, 2, 8, 3, 3, 5, 5, 3, 2, 2, 2, 3, 4, 6, 6, // 4x
	2, 5, 2, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7, // 5x
	6, 6, 2, 8, 3, 3, 5, 5, 4, 2, 2, 2, 5, 4, 6, 6, // 6x
	2, 5, 2, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7, // 7x
	2, 6, 2, 6, 3, 3, 3, 3, 2, 2, 2, 2, 4, 4, 4, 4, // 8x
	2, 6, 2, 6, 4, 4, 4, 4, 2, 5, 2, 5, 5, 5, 5, 5, // 9x
	2, 6, 2, 6, 3, 3, 3, 3, 2, 2, 2, 2, 4, 4, 4, 4, // Ax
	2, 5, 2, 5, 4, 4, 4, 4, 2, 4, 2, 4, 4, 4, 4, 4, // Bx
	2, 6, 2, 8, 3, 3, 5, 5, 2, 2, 2, 2, 4, 4, 6, 6, // Cx
	2, 5, 2, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7, // Dx
	2, 6, 2, 8, 3, 3, 5, 5, 2, 2, 2, 2, 4, 4, 6, 6, // Ex
	2, 5, 2, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7, // Fx
}

// Opcodes that take an extra cycle when indexing crosses a page.
var pagePenalty = map[byte]bool{
	0x11: true, 0x19: true, 0x1d: true,
	0x31: true, 0x39: true, 0x3d: true,
	0x51: true, 0x59: true, 0x5d: true,
	0x71: true, 0x79: true, 0x7d: true,
	0xb1: true, 0xb9: true, 0xbd: true, 0xbc: true, 0xbe: true,
	0xd1: true, 0xd9: true, 0xdd: true,
	0xf1: true, 0xf9: true, 0xfd: true,
	0xb3: true, 0xbf: true, 0xbb: true,
	0x1c: true, 0x3c: true, 0x5c: true, 0x7c: true, 0xdc: true, 0xfc: true,
}

func TestInstructionTable(t *testing.T) {
	for _, v := range []cpu.Variant{cpu.NMOS, cpu.Ricoh2A03} {
		set := cpu.GetInstructionSet(v)
		for i := 0; i < 256; i++ {
			inst := set.Lookup(byte(i))
			assert.Equal(t, byte(i), inst.Opcode)
			assert.Equal(t, nmosCycles[i], inst.Cycles, "%s opcode $%02X cycles", v, i)
			assert.Equal(t, pagePenalty[byte(i)], inst.BPCycles == 1, "%s opcode $%02X page penalty", v, i)
		}
	}
}

// Control flow opcodes move the PC somewhere other than the next
// instruction, so they are timed by their own tests.
func isControlFlow(inst *cpu.Instruction) bool {
	switch inst.Name {
	case "BRK", "JSR", "RTS", "RTI", "JMP", "JAM":
		return true
	}
	return inst.Mode == cpu.REL
}

func TestInstructionCycles(t *testing.T) {
	set := cpu.GetInstructionSet(cpu.NMOS)
	for i := 0; i < 256; i++ {
		inst := set.Lookup(byte(i))
		if isControlFlow(inst) {
			continue
		}

		t.Run(fmt.Sprintf("%02X_%s", i, inst.Name), func(t *testing.T) {
			// Zero operands and index registers never cross a page.
			c, _ := loadCPU(t, inst.Opcode, 0x00, 0x00)
			n := c.Step()
			assert.Equal(t, uint64(nmosCycles[i]), n)
			assert.Equal(t, uint16(origin)+uint16(inst.Length), c.Reg.PC)
		})
	}
}
