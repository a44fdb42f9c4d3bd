package cpu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beevik/m6502/cpu"
)

const origin = 0x1000

func loadCPU(t *testing.T, code ...byte) (*cpu.CPU, *cpu.FlatMemory) {
	t.Helper()
	mem := cpu.NewFlatMemory()
	require.NoError(t, mem.StoreBytes(origin, code))

	c := cpu.NewCPU(cpu.NMOS, mem)
	c.SetPC(origin)
	return c, mem
}

func stepCPU(c *cpu.CPU, steps int) {
	for i := 0; i < steps; i++ {
		c.Step()
	}
}

func runCPU(t *testing.T, steps int, code ...byte) (*cpu.CPU, *cpu.FlatMemory) {
	t.Helper()
	c, mem := loadCPU(t, code...)
	stepCPU(c, steps)
	return c, mem
}

func expectPC(t *testing.T, c *cpu.CPU, pc uint16) {
	t.Helper()
	assert.Equal(t, pc, c.Reg.PC, "PC incorrect. exp: $%04X, got: $%04X", pc, c.Reg.PC)
}

func expectCycles(t *testing.T, c *cpu.CPU, cycles uint64) {
	t.Helper()
	assert.Equal(t, cycles, c.Cycles, "cycles incorrect")
}

func expectACC(t *testing.T, c *cpu.CPU, acc byte) {
	t.Helper()
	assert.Equal(t, acc, c.Reg.A, "accumulator incorrect. exp: $%02X, got: $%02X", acc, c.Reg.A)
}

func expectSP(t *testing.T, c *cpu.CPU, sp byte) {
	t.Helper()
	assert.Equal(t, sp, c.Reg.SP, "stack pointer incorrect. exp: $%02X, got $%02X", sp, c.Reg.SP)
}

func expectFlag(t *testing.T, c *cpu.CPU, s cpu.Status, on bool) {
	t.Helper()
	assert.Equal(t, on, c.Reg.IsSet(s), "flag %s incorrect (PS=%s)", s, c.Reg.PS)
}

func expectMem(t *testing.T, mem *cpu.FlatMemory, addr uint16, v byte) {
	t.Helper()
	got := mem.Read(addr)
	assert.Equal(t, v, got, "memory at $%04X incorrect. exp: $%02X, got: $%02X", addr, v, got)
}

func TestAccumulator(t *testing.T) {
	c, mem := runCPU(t, 3,
		0xa9, 0x5e, // LDA #$5E
		0x85, 0x15, // STA $15
		0x8d, 0x00, 0x15, // STA $1500
	)

	expectPC(t, c, 0x1007)
	expectCycles(t, c, 9)
	expectACC(t, c, 0x5e)
	expectMem(t, mem, 0x15, 0x5e)
	expectMem(t, mem, 0x1500, 0x5e)
}

func TestStack(t *testing.T) {
	c, mem := loadCPU(t,
		0xa9, 0x11, 0x48, // LDA #$11, PHA
		0xa9, 0x12, 0x48, // LDA #$12, PHA
		0xa9, 0x13, 0x48, // LDA #$13, PHA
		0x68, 0x8d, 0x00, 0x20, // PLA, STA $2000
		0x68, 0x8d, 0x01, 0x20, // PLA, STA $2001
		0x68, 0x8d, 0x02, 0x20, // PLA, STA $2002
	)

	stepCPU(c, 6)
	expectSP(t, c, 0xfa)
	expectACC(t, c, 0x13)
	expectMem(t, mem, 0x1fd, 0x11)
	expectMem(t, mem, 0x1fc, 0x12)
	expectMem(t, mem, 0x1fb, 0x13)

	stepCPU(c, 6)
	expectACC(t, c, 0x11)
	expectSP(t, c, 0xfd)
	expectMem(t, mem, 0x2000, 0x13)
	expectMem(t, mem, 0x2001, 0x12)
	expectMem(t, mem, 0x2002, 0x11)
}

func TestNop(t *testing.T) {
	c, _ := loadCPU(t, 0xea)
	before := c.Reg

	assert.Equal(t, uint64(2), c.Run(1))
	expectPC(t, c, origin+1)
	expectCycles(t, c, 2)

	after := c.Reg
	after.PC = before.PC
	assert.Equal(t, before, after, "registers changed")
}

func TestRunBudget(t *testing.T) {
	// Three NOPs take 6 cycles; a budget of 5 still finishes the third.
	c, _ := loadCPU(t, 0xea, 0xea, 0xea, 0xea)
	assert.Equal(t, uint64(6), c.Run(5))
	expectPC(t, c, origin+3)

	// The counter restarts on every Run.
	assert.Equal(t, uint64(2), c.Run(1))
	expectCycles(t, c, 2)
}

func TestIndirectJumpPageWrap(t *testing.T) {
	c, mem := loadCPU(t, 0x6c, 0xff, 0x12) // JMP ($12FF)
	mem.Write(0x12ff, 0x34)
	mem.Write(0x1200, 0x12)
	mem.Write(0x1300, 0x56)

	stepCPU(c, 1)
	expectPC(t, c, 0x1234)
	expectCycles(t, c, 5)
}

func TestZeroPageIndexWrap(t *testing.T) {
	c, mem := loadCPU(t,
		0xa2, 0x10, // LDX #$10
		0xb5, 0xf8, // LDA $F8,X
		0xa1, 0xef, // LDA ($EF,X)
	)
	mem.Write(0x0008, 0x77)
	mem.Write(0x00ff, 0x00)
	mem.Write(0x0000, 0x30)
	mem.Write(0x3000, 0x99)

	stepCPU(c, 2)
	expectACC(t, c, 0x77)

	// Pointer at $FF takes its high byte from $00.
	stepCPU(c, 1)
	expectACC(t, c, 0x99)
	expectCycles(t, c, 2+4+6)
}

func TestPageCrossing(t *testing.T) {
	c, mem := loadCPU(t,
		0xa2, 0x01, // LDX #$01
		0xbd, 0x00, 0x20, // LDA $2000,X
		0xbd, 0xff, 0x20, // LDA $20FF,X
		0x9d, 0xff, 0x20, // STA $20FF,X
	)
	mem.Write(0x2100, 0x42)

	stepCPU(c, 2)
	expectCycles(t, c, 2+4)

	stepCPU(c, 1)
	expectACC(t, c, 0x42)
	expectCycles(t, c, 2+4+5)

	// Stores always take the fixed cycle count.
	stepCPU(c, 1)
	expectCycles(t, c, 2+4+5+5)
}

func TestIndirectIndexedPageCrossing(t *testing.T) {
	c, mem := loadCPU(t,
		0xa0, 0x10, // LDY #$10
		0xb1, 0x40, // LDA ($40),Y
		0xb1, 0x42, // LDA ($42),Y
		0x91, 0x42, // STA ($42),Y
		0x91, 0x40, // STA ($40),Y
	)
	mem.StoreAddress(0x40, 0x2000)
	mem.StoreAddress(0x42, 0x20f8)
	mem.Write(0x2010, 0x11)
	mem.Write(0x2108, 0x22)

	stepCPU(c, 2)
	expectACC(t, c, 0x11)
	expectCycles(t, c, 2+5)

	// $20F8+$10 lands on the next page.
	stepCPU(c, 1)
	expectACC(t, c, 0x22)
	expectCycles(t, c, 2+5+6)

	// Stores take 6 cycles whether or not the page changes.
	c.Reg.A = 0x33
	stepCPU(c, 1)
	expectMem(t, mem, 0x2108, 0x33)
	expectCycles(t, c, 2+5+6+6)

	stepCPU(c, 1)
	expectMem(t, mem, 0x2010, 0x33)
	expectCycles(t, c, 2+5+6+6+6)
}

func TestBranchTiming(t *testing.T) {
	cases := []struct {
		name   string
		addr   uint16
		code   []byte
		pc     uint16
		cycles uint64
	}{
		{"not taken", 0x1000, []byte{0xf0, 0x10}, 0x1002, 2},
		{"taken", 0x1000, []byte{0xd0, 0x10}, 0x1012, 3},
		{"taken across page", 0x10fc, []byte{0xd0, 0x10}, 0x110e, 4},
		{"taken backward across page", 0x1000, []byte{0xd0, 0xfc}, 0x0ffe, 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mem := cpu.NewFlatMemory()
			mem.StoreBytes(tc.addr, tc.code)
			c := cpu.NewCPU(cpu.NMOS, mem)
			c.SetPC(tc.addr)

			n := c.Step()
			expectPC(t, c, tc.pc)
			assert.Equal(t, tc.cycles, n)
		})
	}
}

func TestSubroutine(t *testing.T) {
	c, mem := loadCPU(t,
		0x20, 0x00, 0x20, // JSR $2000
		0xea, // NOP
	)
	mem.Write(0x2000, 0x60) // RTS

	stepCPU(c, 1)
	expectPC(t, c, 0x2000)
	expectSP(t, c, 0xfb)
	expectMem(t, mem, 0x1fd, 0x10)
	expectMem(t, mem, 0x1fc, 0x02)

	stepCPU(c, 1)
	expectPC(t, c, 0x1003)
	expectSP(t, c, 0xfd)
	expectCycles(t, c, 12)
}

func TestBRK(t *testing.T) {
	c, mem := loadCPU(t,
		0x58,       // CLI
		0x00, 0xff, // BRK + padding
	)
	mem.StoreAddress(0xfffe, 0x2000)
	mem.Write(0x2000, 0x40) // RTI

	stepCPU(c, 1)
	assert.Equal(t, uint64(7), c.Step(), "BRK cycles")
	expectPC(t, c, 0x2000)
	expectSP(t, c, 0xfa)
	expectFlag(t, c, cpu.InterruptDisable, true)
	expectFlag(t, c, cpu.Break, false)
	expectMem(t, mem, 0x1fd, 0x10)
	expectMem(t, mem, 0x1fc, 0x03)
	expectMem(t, mem, 0x1fb, byte(cpu.Reserved|cpu.Break))

	assert.Equal(t, uint64(6), c.Step(), "RTI cycles")
	expectPC(t, c, 0x1003)
	expectSP(t, c, 0xfd)
	expectFlag(t, c, cpu.InterruptDisable, false)
	expectFlag(t, c, cpu.Break, false)
	expectFlag(t, c, cpu.Reserved, true)
}

func TestPHPAndPLP(t *testing.T) {
	c, mem := loadCPU(t,
		0x08,       // PHP
		0xa9, 0xff, // LDA #$FF
		0x48, // PHA
		0x28, // PLP
	)

	stepCPU(c, 1)
	expectMem(t, mem, 0x1fd, byte(cpu.Reserved|cpu.Break|cpu.InterruptDisable))

	stepCPU(c, 3)
	assert.Equal(t, 0xff&^cpu.Break, c.Reg.PS, "PS incorrect. exp: %s, got: %s", 0xff&^cpu.Break, c.Reg.PS)
}

func TestDecimalAdd(t *testing.T) {
	c, _ := runCPU(t, 4,
		0xf8,       // SED
		0x18,       // CLC
		0xa9, 0x15, // LDA #$15
		0x69, 0x27, // ADC #$27
	)
	expectACC(t, c, 0x42)
	expectFlag(t, c, cpu.Carry, false)
}

func TestDecimalAddCarry(t *testing.T) {
	c, _ := runCPU(t, 4,
		0xf8,       // SED
		0x18,       // CLC
		0xa9, 0x99, // LDA #$99
		0x69, 0x01, // ADC #$01
	)

	// Z comes from the binary sum and N from the unadjusted high nybble.
	expectACC(t, c, 0x00)
	expectFlag(t, c, cpu.Carry, true)
	expectFlag(t, c, cpu.Zero, false)
	expectFlag(t, c, cpu.Negative, true)
}

func TestDecimalSubtract(t *testing.T) {
	c, _ := runCPU(t, 4,
		0xf8,       // SED
		0x38,       // SEC
		0xa9, 0x42, // LDA #$42
		0xe9, 0x13, // SBC #$13
	)
	expectACC(t, c, 0x29)
	expectFlag(t, c, cpu.Carry, true)
}

func TestRicohIgnoresDecimal(t *testing.T) {
	mem := cpu.NewFlatMemory()
	mem.StoreBytes(origin, []byte{
		0xf8,       // SED
		0x18,       // CLC
		0xa9, 0x15, // LDA #$15
		0x69, 0x27, // ADC #$27
	})
	c := cpu.NewCPU(cpu.Ricoh2A03, mem)
	c.SetPC(origin)

	stepCPU(c, 4)
	expectACC(t, c, 0x3c)
	expectFlag(t, c, cpu.Decimal, true)
}

func TestBinaryOverflow(t *testing.T) {
	c, _ := runCPU(t, 3,
		0x18,       // CLC
		0xa9, 0x50, // LDA #$50
		0x69, 0x50, // ADC #$50
	)
	expectACC(t, c, 0xa0)
	expectFlag(t, c, cpu.Overflow, true)
	expectFlag(t, c, cpu.Negative, true)
	expectFlag(t, c, cpu.Carry, false)

	c, _ = runCPU(t, 3,
		0x38,       // SEC
		0xa9, 0x50, // LDA #$50
		0xe9, 0xb0, // SBC #$B0
	)
	expectACC(t, c, 0xa0)
	expectFlag(t, c, cpu.Overflow, true)
	expectFlag(t, c, cpu.Carry, false)
}

func TestJam(t *testing.T) {
	c, mem := loadCPU(t, 0x02, 0xea)
	mem.StoreAddress(0xfffa, 0x3000)
	mem.StoreAddress(0xfffc, 0x2000)

	assert.Equal(t, uint64(2), c.Step(), "JAM cycles")
	require.True(t, c.Jammed, "CPU not jammed")
	expectPC(t, c, origin)

	c.NMI()
	assert.Equal(t, uint64(1), c.Step(), "jammed step cycles")
	expectPC(t, c, origin)

	c.Reset()
	assert.False(t, c.Jammed, "reset did not clear jam")
	expectPC(t, c, 0x2000)
}

func TestGetInstruction(t *testing.T) {
	c, _ := loadCPU(t, 0xbd, 0x00, 0x20, 0xea)

	inst := c.GetInstruction(origin)
	assert.Equal(t, "LDA", inst.Name)
	assert.Equal(t, cpu.ABX, inst.Mode)
	assert.Equal(t, uint16(origin+3), c.NextAddr(origin))
}
