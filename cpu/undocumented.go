// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// Undocumented NMOS opcodes. Most of them are the side effect of two
// documented operations sharing a decode line, so they are implemented
// in terms of the same helpers the documented instructions use.

// Magic constant ORed into the accumulator by the unstable ANE and LXA
// opcodes. Real parts vary between $00, $EE and $FF.
const unstableMagic = 0xee

// AND immediate, then shift the accumulator right.
func (cpu *CPU) alr(inst *Instruction) {
	cpu.Reg.A = cpu.shiftRight(cpu.Reg.A & cpu.load(inst.Mode))
}

// AND immediate, copying the resulting sign bit into carry.
func (cpu *CPU) anc(inst *Instruction) {
	cpu.Reg.A &= cpu.load(inst.Mode)
	cpu.updateNZ(cpu.Reg.A)
	cpu.Reg.Set(Carry, (cpu.Reg.A&0x80) != 0)
}

// A = (A | magic) & X & immediate
func (cpu *CPU) ane(inst *Instruction) {
	cpu.Reg.A = (cpu.Reg.A | unstableMagic) & cpu.Reg.X & cpu.load(inst.Mode)
	cpu.updateNZ(cpu.Reg.A)
}

// AND immediate, then rotate right (binary). C is bit 6 of the result and
// V is bit 6 xor bit 5.
func (cpu *CPU) arrb(inst *Instruction) {
	t := cpu.Reg.A & cpu.load(inst.Mode)
	r := (t >> 1) | (cpu.Reg.Bit(Carry) << 7)
	cpu.updateNZ(r)
	cpu.Reg.Set(Carry, (r&0x40) != 0)
	cpu.Reg.Set(Overflow, ((r>>6)^(r>>5))&1 != 0)
	cpu.Reg.A = r
}

// AND immediate, then rotate right. In decimal mode the NMOS part applies
// a BCD fixup to each nybble of the rotated value.
func (cpu *CPU) arrd(inst *Instruction) {
	if !cpu.Reg.IsSet(Decimal) {
		cpu.arrb(inst)
		return
	}

	t := cpu.Reg.A & cpu.load(inst.Mode)
	ah, al := t>>4, t&0x0f
	r := (t >> 1) | (cpu.Reg.Bit(Carry) << 7)

	cpu.Reg.Set(Negative, cpu.Reg.IsSet(Carry))
	cpu.Reg.Set(Zero, r == 0)
	cpu.Reg.Set(Overflow, ((t^r)&0x40) != 0)

	if al+(al&1) > 5 {
		r = (r & 0xf0) | ((r + 6) & 0x0f)
	}
	if ah+(ah&1) > 5 {
		cpu.Reg.Set(Carry, true)
		r += 0x60
	} else {
		cpu.Reg.Set(Carry, false)
	}
	cpu.Reg.A = r
}

// Decrement memory, then compare with the accumulator.
func (cpu *CPU) dcp(inst *Instruction) {
	v := cpu.load(inst.Mode) - 1
	cpu.store(inst.Mode, v)
	cpu.compare(cpu.Reg.A, v)
}

// Increment memory, then subtract it from the accumulator (decimal mode
// honored).
func (cpu *CPU) iscd(inst *Instruction) {
	v := cpu.load(inst.Mode) + 1
	cpu.store(inst.Mode, v)
	if cpu.Reg.IsSet(Decimal) {
		cpu.subDecimal(v)
	} else {
		cpu.subBinary(v)
	}
}

// Increment memory, then subtract it from the accumulator (binary only).
func (cpu *CPU) iscb(inst *Instruction) {
	v := cpu.load(inst.Mode) + 1
	cpu.store(inst.Mode, v)
	cpu.subBinary(v)
}

// Halt the CPU. It stays jammed on this opcode until reset.
func (cpu *CPU) jam(inst *Instruction) {
	cpu.Jammed = true
	cpu.Reg.PC = cpu.LastPC
}

// Load A, X and SP with memory ANDed with SP.
func (cpu *CPU) las(inst *Instruction) {
	v := cpu.load(inst.Mode) & cpu.Reg.SP
	cpu.Reg.A, cpu.Reg.X, cpu.Reg.SP = v, v, v
	cpu.updateNZ(v)
}

// Load A and X with the same value.
func (cpu *CPU) lax(inst *Instruction) {
	v := cpu.load(inst.Mode)
	cpu.Reg.A, cpu.Reg.X = v, v
	cpu.updateNZ(v)
}

// A = X = (A | magic) & immediate
func (cpu *CPU) lxa(inst *Instruction) {
	v := (cpu.Reg.A | unstableMagic) & cpu.load(inst.Mode)
	cpu.Reg.A, cpu.Reg.X = v, v
	cpu.updateNZ(v)
}

// Rotate memory left, then AND it into the accumulator.
func (cpu *CPU) rla(inst *Instruction) {
	v := cpu.rotateLeft(cpu.load(inst.Mode))
	cpu.store(inst.Mode, v)
	cpu.Reg.A &= v
	cpu.updateNZ(cpu.Reg.A)
}

// Rotate memory right, then add it to the accumulator (decimal mode
// honored).
func (cpu *CPU) rrad(inst *Instruction) {
	v := cpu.rotateRight(cpu.load(inst.Mode))
	cpu.store(inst.Mode, v)
	if cpu.Reg.IsSet(Decimal) {
		cpu.addDecimal(v)
	} else {
		cpu.addBinary(v)
	}
}

// Rotate memory right, then add it to the accumulator (binary only).
func (cpu *CPU) rrab(inst *Instruction) {
	v := cpu.rotateRight(cpu.load(inst.Mode))
	cpu.store(inst.Mode, v)
	cpu.addBinary(v)
}

// Store A & X. Flags are unaffected.
func (cpu *CPU) sax(inst *Instruction) {
	cpu.store(inst.Mode, cpu.Reg.A&cpu.Reg.X)
}

// X = (A & X) - immediate, without borrow. Carry is set as by CMP.
func (cpu *CPU) sbx(inst *Instruction) {
	t := cpu.Reg.A & cpu.Reg.X
	v := cpu.load(inst.Mode)
	cpu.Reg.Set(Carry, t >= v)
	cpu.Reg.X = t - v
	cpu.updateNZ(cpu.Reg.X)
}

// Store A & X & (H+1).
func (cpu *CPU) sha(inst *Instruction) {
	cpu.storeHighAnd(cpu.Reg.A & cpu.Reg.X)
}

// Store X & (H+1).
func (cpu *CPU) shx(inst *Instruction) {
	cpu.storeHighAnd(cpu.Reg.X)
}

// Store Y & (H+1).
func (cpu *CPU) shy(inst *Instruction) {
	cpu.storeHighAnd(cpu.Reg.Y)
}

// SP = A & X, then store SP & (H+1).
func (cpu *CPU) tas(inst *Instruction) {
	cpu.Reg.SP = cpu.Reg.A & cpu.Reg.X
	cpu.storeHighAnd(cpu.Reg.SP)
}

// Shift memory left, then OR it into the accumulator.
func (cpu *CPU) slo(inst *Instruction) {
	v := cpu.shiftLeft(cpu.load(inst.Mode))
	cpu.store(inst.Mode, v)
	cpu.Reg.A |= v
	cpu.updateNZ(cpu.Reg.A)
}

// Shift memory right, then XOR it into the accumulator.
func (cpu *CPU) sre(inst *Instruction) {
	v := cpu.shiftRight(cpu.load(inst.Mode))
	cpu.store(inst.Mode, v)
	cpu.Reg.A ^= v
	cpu.updateNZ(cpu.Reg.A)
}

// Store 'v' ANDed with one plus the high byte of the unindexed address.
// When indexing crossed a page, the stored value also replaces the high
// byte of the target address.
func (cpu *CPU) storeHighAnd(v byte) {
	v &= byte(cpu.base>>8) + 1
	addr := cpu.ea
	if cpu.pageCrossed {
		addr = uint16(v)<<8 | (addr & 0x00ff)
	}
	cpu.storeByte(cpu, addr, v)
}
