// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// Read the operand of the current instruction according to the addressing
// mode and compute its effective address. The program counter is advanced
// past the operand bytes.
func (cpu *CPU) resolve(mode Mode) {
	switch mode {
	case IMP, ACC:
		cpu.ea = 0
		cpu.base = 0
	case IMM:
		cpu.ea = cpu.Reg.PC
		cpu.Reg.PC++
	case REL:
		offset := cpu.Bus.Read(cpu.Reg.PC)
		cpu.Reg.PC++
		cpu.ea = cpu.Reg.PC + uint16(int8(offset))
	case ZPG:
		cpu.ea = uint16(cpu.fetch())
	case ZPX:
		cpu.ea = offsetZeroPage(cpu.fetch(), cpu.Reg.X)
	case ZPY:
		cpu.ea = offsetZeroPage(cpu.fetch(), cpu.Reg.Y)
	case ABS:
		cpu.ea = cpu.fetchAddress()
	case ABX:
		cpu.base = cpu.fetchAddress()
		cpu.ea, cpu.pageCrossed = offsetAddress(cpu.base, cpu.Reg.X)
	case ABY:
		cpu.base = cpu.fetchAddress()
		cpu.ea, cpu.pageCrossed = offsetAddress(cpu.base, cpu.Reg.Y)
	case IND:
		// The NMOS 6502 never carries into the high byte of the pointer, so
		// JMP ($12FF) reads its target from $12FF and $1200.
		ptr := cpu.fetchAddress()
		lo := cpu.Bus.Read(ptr)
		hi := cpu.Bus.Read((ptr & 0xff00) | uint16(byte(ptr)+1))
		cpu.ea = uint16(lo) | uint16(hi)<<8
	case IDX:
		zp := cpu.fetch() + cpu.Reg.X
		cpu.ea = cpu.loadZeroPageAddress(zp)
	case IDY:
		cpu.base = cpu.loadZeroPageAddress(cpu.fetch())
		cpu.ea, cpu.pageCrossed = offsetAddress(cpu.base, cpu.Reg.Y)
	default:
		panic("Invalid addressing mode")
	}
}

// Read the byte at the program counter and advance past it.
func (cpu *CPU) fetch() byte {
	v := cpu.Bus.Read(cpu.Reg.PC)
	cpu.Reg.PC++
	return v
}

// Read the 16-bit address at the program counter and advance past it.
func (cpu *CPU) fetchAddress() uint16 {
	addr := cpu.read16(cpu.Reg.PC)
	cpu.Reg.PC += 2
	return addr
}

// Load a 16-bit pointer from the zero page. The high byte wraps around to
// $00 when the pointer sits at $FF.
func (cpu *CPU) loadZeroPageAddress(zp byte) uint16 {
	lo := cpu.Bus.Read(uint16(zp))
	hi := cpu.Bus.Read(uint16(zp + 1))
	return uint16(lo) | uint16(hi)<<8
}

// Load the operand value of the current instruction.
func (cpu *CPU) load(mode Mode) byte {
	switch mode {
	case ACC:
		return cpu.Reg.A
	case IMP, REL:
		panic("Invalid addressing mode")
	default:
		return cpu.Bus.Read(cpu.ea)
	}
}

// Store a byte value to the operand location of the current instruction.
func (cpu *CPU) store(mode Mode, v byte) {
	switch mode {
	case ACC:
		cpu.Reg.A = v
	case IMP, IMM, REL:
		panic("Invalid addressing mode")
	default:
		cpu.storeByte(cpu, cpu.ea, v)
	}
}

// Take a branch to the resolved relative target. A taken branch costs one
// extra cycle, and another if it lands on a different page.
func (cpu *CPU) branch() {
	oldPC := cpu.Reg.PC
	cpu.Reg.PC = cpu.ea
	cpu.deltaCycles++
	if ((cpu.Reg.PC ^ oldPC) & 0xff00) != 0 {
		cpu.deltaCycles++
	}
}
