// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// Add 'v' and the carry to the accumulator in binary.
func (cpu *CPU) addBinary(v byte) {
	a := cpu.Reg.A
	sum := uint16(a) + uint16(v) + uint16(cpu.Reg.Bit(Carry))
	r := byte(sum)
	cpu.Reg.Set(Carry, sum > 0xff)
	cpu.Reg.Set(Overflow, (^(a^v)&(a^r)&0x80) != 0)
	cpu.Reg.A = r
	cpu.updateNZ(r)
}

// Add 'v' and the carry to the accumulator in BCD. Flags follow the NMOS
// part: Z reflects the binary sum, while N and V are taken after the low
// nybble adjustment but before the high nybble adjustment.
func (cpu *CPU) addDecimal(v byte) {
	a := int(cpu.Reg.A)
	b := int(v)
	c := int(cpu.Reg.Bit(Carry))

	al := (a & 0x0f) + (b & 0x0f) + c
	if al >= 0x0a {
		al = ((al + 0x06) & 0x0f) + 0x10
	}
	s := (a & 0xf0) + (b & 0xf0) + al

	cpu.Reg.Set(Zero, byte(a+b+c) == 0)
	cpu.Reg.Set(Negative, (s&0x80) != 0)
	cpu.Reg.Set(Overflow, (^(a^b)&(a^s)&0x80) != 0)

	if s >= 0xa0 {
		s += 0x60
	}
	cpu.Reg.Set(Carry, s >= 0x100)
	cpu.Reg.A = byte(s)
}

// Subtract 'v' and the borrow from the accumulator in binary.
func (cpu *CPU) subBinary(v byte) {
	cpu.addBinary(^v)
}

// Subtract 'v' and the borrow from the accumulator in BCD. On the NMOS
// part all flags come from the equivalent binary subtraction.
func (cpu *CPU) subDecimal(v byte) {
	a := int(cpu.Reg.A)
	b := int(v)
	c := int(cpu.Reg.Bit(Carry))

	al := (a & 0x0f) - (b & 0x0f) + c - 1
	if al < 0 {
		al = ((al - 0x06) & 0x0f) - 0x10
	}
	s := (a & 0xf0) - (b & 0xf0) + al
	if s < 0 {
		s -= 0x60
	}

	cpu.subBinary(v)
	cpu.Reg.A = byte(s)
}

// Compare register 'reg' against 'v'.
func (cpu *CPU) compare(reg, v byte) {
	cpu.Reg.Set(Carry, reg >= v)
	cpu.updateNZ(reg - v)
}

func (cpu *CPU) shiftLeft(v byte) byte {
	cpu.Reg.Set(Carry, (v&0x80) != 0)
	v <<= 1
	cpu.updateNZ(v)
	return v
}

func (cpu *CPU) shiftRight(v byte) byte {
	cpu.Reg.Set(Carry, (v&1) != 0)
	v >>= 1
	cpu.updateNZ(v)
	return v
}

func (cpu *CPU) rotateLeft(v byte) byte {
	r := (v << 1) | cpu.Reg.Bit(Carry)
	cpu.Reg.Set(Carry, (v&0x80) != 0)
	cpu.updateNZ(r)
	return r
}

func (cpu *CPU) rotateRight(v byte) byte {
	r := (v >> 1) | (cpu.Reg.Bit(Carry) << 7)
	cpu.Reg.Set(Carry, (v&1) != 0)
	cpu.updateNZ(r)
	return r
}

// Add with carry (NMOS, decimal mode honored)
func (cpu *CPU) adcd(inst *Instruction) {
	v := cpu.load(inst.Mode)
	if cpu.Reg.IsSet(Decimal) {
		cpu.addDecimal(v)
	} else {
		cpu.addBinary(v)
	}
}

// Add with carry (binary only)
func (cpu *CPU) adcb(inst *Instruction) {
	cpu.addBinary(cpu.load(inst.Mode))
}

// Boolean AND
func (cpu *CPU) and(inst *Instruction) {
	cpu.Reg.A &= cpu.load(inst.Mode)
	cpu.updateNZ(cpu.Reg.A)
}

// Arithmetic Shift Left
func (cpu *CPU) asl(inst *Instruction) {
	v := cpu.shiftLeft(cpu.load(inst.Mode))
	cpu.store(inst.Mode, v)
}

// Branch if Carry Clear
func (cpu *CPU) bcc(inst *Instruction) {
	if !cpu.Reg.IsSet(Carry) {
		cpu.branch()
	}
}

// Branch if Carry Set
func (cpu *CPU) bcs(inst *Instruction) {
	if cpu.Reg.IsSet(Carry) {
		cpu.branch()
	}
}

// Branch if EQual (to zero)
func (cpu *CPU) beq(inst *Instruction) {
	if cpu.Reg.IsSet(Zero) {
		cpu.branch()
	}
}

// Bit Test
func (cpu *CPU) bit(inst *Instruction) {
	v := cpu.load(inst.Mode)
	cpu.Reg.Set(Zero, (v&cpu.Reg.A) == 0)
	cpu.Reg.Set(Negative, (v&0x80) != 0)
	cpu.Reg.Set(Overflow, (v&0x40) != 0)
}

// Branch if MInus (negative)
func (cpu *CPU) bmi(inst *Instruction) {
	if cpu.Reg.IsSet(Negative) {
		cpu.branch()
	}
}

// Branch if Not Equal (not zero)
func (cpu *CPU) bne(inst *Instruction) {
	if !cpu.Reg.IsSet(Zero) {
		cpu.branch()
	}
}

// Branch if PLus (positive)
func (cpu *CPU) bpl(inst *Instruction) {
	if !cpu.Reg.IsSet(Negative) {
		cpu.branch()
	}
}

// Break. The byte following the opcode is skipped, so the pushed return
// address is the BRK address plus two.
func (cpu *CPU) brk(inst *Instruction) {
	cpu.Reg.PC++
	cpu.handleInterrupt(true, vectorBRK)
}

// Branch if oVerflow Clear
func (cpu *CPU) bvc(inst *Instruction) {
	if !cpu.Reg.IsSet(Overflow) {
		cpu.branch()
	}
}

// Branch if oVerflow Set
func (cpu *CPU) bvs(inst *Instruction) {
	if cpu.Reg.IsSet(Overflow) {
		cpu.branch()
	}
}

// Clear Carry flag
func (cpu *CPU) clc(inst *Instruction) {
	cpu.Reg.Set(Carry, false)
}

// Clear Decimal flag
func (cpu *CPU) cld(inst *Instruction) {
	cpu.Reg.Set(Decimal, false)
}

// Clear InterruptDisable flag
func (cpu *CPU) cli(inst *Instruction) {
	cpu.Reg.Set(InterruptDisable, false)
}

// Clear oVerflow flag
func (cpu *CPU) clv(inst *Instruction) {
	cpu.Reg.Set(Overflow, false)
}

// Compare to accumulator
func (cpu *CPU) cmp(inst *Instruction) {
	cpu.compare(cpu.Reg.A, cpu.load(inst.Mode))
}

// Compare to X register
func (cpu *CPU) cpx(inst *Instruction) {
	cpu.compare(cpu.Reg.X, cpu.load(inst.Mode))
}

// Compare to Y register
func (cpu *CPU) cpy(inst *Instruction) {
	cpu.compare(cpu.Reg.Y, cpu.load(inst.Mode))
}

// Decrement memory value
func (cpu *CPU) dec(inst *Instruction) {
	v := cpu.load(inst.Mode) - 1
	cpu.updateNZ(v)
	cpu.store(inst.Mode, v)
}

// Decrement X register
func (cpu *CPU) dex(inst *Instruction) {
	cpu.Reg.X--
	cpu.updateNZ(cpu.Reg.X)
}

// Decrement Y register
func (cpu *CPU) dey(inst *Instruction) {
	cpu.Reg.Y--
	cpu.updateNZ(cpu.Reg.Y)
}

// Boolean XOR
func (cpu *CPU) eor(inst *Instruction) {
	cpu.Reg.A ^= cpu.load(inst.Mode)
	cpu.updateNZ(cpu.Reg.A)
}

// Increment memory value
func (cpu *CPU) inc(inst *Instruction) {
	v := cpu.load(inst.Mode) + 1
	cpu.updateNZ(v)
	cpu.store(inst.Mode, v)
}

// Increment X register
func (cpu *CPU) inx(inst *Instruction) {
	cpu.Reg.X++
	cpu.updateNZ(cpu.Reg.X)
}

// Increment Y register
func (cpu *CPU) iny(inst *Instruction) {
	cpu.Reg.Y++
	cpu.updateNZ(cpu.Reg.Y)
}

// Jump to memory address
func (cpu *CPU) jmp(inst *Instruction) {
	cpu.Reg.PC = cpu.ea
}

// Jump to subroutine
func (cpu *CPU) jsr(inst *Instruction) {
	cpu.pushAddress(cpu.Reg.PC - 1)
	cpu.Reg.PC = cpu.ea
}

// load Accumulator
func (cpu *CPU) lda(inst *Instruction) {
	cpu.Reg.A = cpu.load(inst.Mode)
	cpu.updateNZ(cpu.Reg.A)
}

// load the X register
func (cpu *CPU) ldx(inst *Instruction) {
	cpu.Reg.X = cpu.load(inst.Mode)
	cpu.updateNZ(cpu.Reg.X)
}

// load the Y register
func (cpu *CPU) ldy(inst *Instruction) {
	cpu.Reg.Y = cpu.load(inst.Mode)
	cpu.updateNZ(cpu.Reg.Y)
}

// Logical Shift Right
func (cpu *CPU) lsr(inst *Instruction) {
	v := cpu.shiftRight(cpu.load(inst.Mode))
	cpu.store(inst.Mode, v)
}

// No-operation. Variants with an operand still perform the read.
func (cpu *CPU) nop(inst *Instruction) {
	if inst.Mode != IMP {
		cpu.load(inst.Mode)
	}
}

// Boolean OR
func (cpu *CPU) ora(inst *Instruction) {
	cpu.Reg.A |= cpu.load(inst.Mode)
	cpu.updateNZ(cpu.Reg.A)
}

// Push Accumulator
func (cpu *CPU) pha(inst *Instruction) {
	cpu.push(cpu.Reg.A)
}

// Push Processor flags
func (cpu *CPU) php(inst *Instruction) {
	cpu.push(cpu.Reg.SavePS(true))
}

// Pull (pop) Accumulator
func (cpu *CPU) pla(inst *Instruction) {
	cpu.Reg.A = cpu.pop()
	cpu.updateNZ(cpu.Reg.A)
}

// Pull (pop) Processor flags
func (cpu *CPU) plp(inst *Instruction) {
	cpu.Reg.RestorePS(cpu.pop())
}

// Rotate Left
func (cpu *CPU) rol(inst *Instruction) {
	v := cpu.rotateLeft(cpu.load(inst.Mode))
	cpu.store(inst.Mode, v)
}

// Rotate Right
func (cpu *CPU) ror(inst *Instruction) {
	v := cpu.rotateRight(cpu.load(inst.Mode))
	cpu.store(inst.Mode, v)
}

// Return from Interrupt
func (cpu *CPU) rti(inst *Instruction) {
	cpu.Reg.RestorePS(cpu.pop())
	cpu.Reg.PC = cpu.popAddress()
}

// Return from Subroutine
func (cpu *CPU) rts(inst *Instruction) {
	addr := cpu.popAddress()
	cpu.Reg.PC = addr + 1
}

// Subtract with Carry (NMOS, decimal mode honored)
func (cpu *CPU) sbcd(inst *Instruction) {
	v := cpu.load(inst.Mode)
	if cpu.Reg.IsSet(Decimal) {
		cpu.subDecimal(v)
	} else {
		cpu.subBinary(v)
	}
}

// Subtract with Carry (binary only)
func (cpu *CPU) sbcb(inst *Instruction) {
	cpu.subBinary(cpu.load(inst.Mode))
}

// Set Carry flag
func (cpu *CPU) sec(inst *Instruction) {
	cpu.Reg.Set(Carry, true)
}

// Set Decimal flag
func (cpu *CPU) sed(inst *Instruction) {
	cpu.Reg.Set(Decimal, true)
}

// Set InterruptDisable flag
func (cpu *CPU) sei(inst *Instruction) {
	cpu.Reg.Set(InterruptDisable, true)
}

// Store Accumulator
func (cpu *CPU) sta(inst *Instruction) {
	cpu.store(inst.Mode, cpu.Reg.A)
}

// Store X register
func (cpu *CPU) stx(inst *Instruction) {
	cpu.store(inst.Mode, cpu.Reg.X)
}

// Store Y register
func (cpu *CPU) sty(inst *Instruction) {
	cpu.store(inst.Mode, cpu.Reg.Y)
}

// Transfer Accumulator to X register
func (cpu *CPU) tax(inst *Instruction) {
	cpu.Reg.X = cpu.Reg.A
	cpu.updateNZ(cpu.Reg.X)
}

// Transfer Accumulator to Y register
func (cpu *CPU) tay(inst *Instruction) {
	cpu.Reg.Y = cpu.Reg.A
	cpu.updateNZ(cpu.Reg.Y)
}

// Transfer stack pointer to X register
func (cpu *CPU) tsx(inst *Instruction) {
	cpu.Reg.X = cpu.Reg.SP
	cpu.updateNZ(cpu.Reg.X)
}

// Transfer X register to Accumulator
func (cpu *CPU) txa(inst *Instruction) {
	cpu.Reg.A = cpu.Reg.X
	cpu.updateNZ(cpu.Reg.A)
}

// Transfer X register to the stack pointer
func (cpu *CPU) txs(inst *Instruction) {
	cpu.Reg.SP = cpu.Reg.X
}

// Transfer Y register to the Accumulator
func (cpu *CPU) tya(inst *Instruction) {
	cpu.Reg.A = cpu.Reg.Y
	cpu.updateNZ(cpu.Reg.A)
}
