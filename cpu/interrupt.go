// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// NMI records a non-maskable interrupt edge. The interrupt is serviced at
// the next instruction boundary, exactly once per call.
func (cpu *CPU) NMI() {
	cpu.NMIEdge = true
}

// SetNMILine drives the NMI input. Only a transition from released to
// asserted requests service; holding the line asserted does not.
func (cpu *CPU) SetNMILine(level bool) {
	if level && !cpu.NMILine {
		cpu.NMIEdge = true
	}
	cpu.NMILine = level
}

// IRQ drives the level-sensitive IRQ input. While the line is asserted
// and the interrupt disable flag is clear, the CPU services an interrupt
// at every instruction boundary.
func (cpu *CPU) IRQ(level bool) {
	cpu.IRQLine = level
}

// Handle an interrupt by storing the program counter and status flags on
// the stack. Then switch the program counter to the requested address.
func (cpu *CPU) handleInterrupt(brk bool, addr uint16) {
	cpu.pushAddress(cpu.Reg.PC)
	cpu.push(cpu.Reg.SavePS(brk))
	cpu.Reg.Set(InterruptDisable, true)
	cpu.Reg.PC = cpu.read16(addr)
}
