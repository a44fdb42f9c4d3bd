// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cpu implements a cycle-counted NMOS 6502 CPU emulator that
// runs against a caller-supplied bus.
package cpu

import "fmt"

// Variant selects the flavor of NMOS 6502 being emulated.
type Variant byte

const (
	// NMOS is the original MOS 6502, with decimal mode arithmetic.
	NMOS Variant = iota

	// Ricoh2A03 is the NES CPU. The decimal flag exists but ADC and SBC
	// always perform binary arithmetic.
	Ricoh2A03
)

var variantNames = [...]string{
	NMOS:      "6502",
	Ricoh2A03: "2a03",
}

func (v Variant) String() string {
	if int(v) < len(variantNames) {
		return variantNames[v]
	}
	return fmt.Sprintf("Variant(%d)", byte(v))
}

// ParseVariant converts a variant name ("6502" or "2a03") into a Variant.
func ParseVariant(name string) (Variant, error) {
	for i, n := range variantNames {
		if n == name {
			return Variant(i), nil
		}
	}
	return NMOS, fmt.Errorf("unknown cpu variant %q", name)
}

// CPU represents a single 6502 CPU. It reaches memory and peripherals
// only through its Bus.
type CPU struct {
	Variant     Variant         // CPU variant
	Reg         Registers       // CPU registers
	Bus         Bus             // the machine's address space
	Cycles      uint64          // cycles consumed since the current Run began
	IRQLine     bool            // IRQ input level (asserted when true)
	NMILine     bool            // NMI input level (asserted when true)
	NMIEdge     bool            // an NMI edge is waiting to be serviced
	Jammed      bool            // a JAM opcode halted the CPU
	LastPC      uint16          // address of the most recently started instruction
	InstSet     *InstructionSet // Instruction set used by the CPU
	powered     bool
	resetCycles uint64
	opcode      byte
	ea          uint16 // effective address of the current instruction
	base        uint16 // effective address before indexing
	pageCrossed bool
	deltaCycles int8
	debugger    *Debugger
	storeByte   func(cpu *CPU, addr uint16, v byte)
}

// Interrupt vectors
const (
	vectorNMI   = 0xfffa
	vectorReset = 0xfffc
	vectorIRQ   = 0xfffe
	vectorBRK   = 0xfffe
)

// Number of cycles consumed by the reset and interrupt sequences.
const (
	resetCycles     = 7
	interruptCycles = 7
	jamCycles       = 1
)

// NewCPU creates a powered-on 6502 CPU of the requested variant, bound to
// the bus. Registers hold their power-up values; call Reset to start
// executing from the reset vector.
func NewCPU(variant Variant, bus Bus) *CPU {
	cpu := &CPU{
		Variant:   variant,
		Bus:       bus,
		InstSet:   GetInstructionSet(variant),
		storeByte: (*CPU).storeByteNormal,
	}

	cpu.Power(true)
	return cpu
}

// Powered returns true if the CPU is powered on.
func (cpu *CPU) Powered() bool {
	return cpu.powered
}

// Power turns the CPU on or off. While off, Run and Step do nothing.
// Turning the power on puts the registers in their power-up state but
// does not perform a reset.
func (cpu *CPU) Power(on bool) {
	if on == cpu.powered {
		return
	}

	cpu.powered = on
	if !on {
		return
	}

	if cpu.InstSet == nil {
		cpu.InstSet = GetInstructionSet(cpu.Variant)
	}
	if cpu.storeByte == nil {
		cpu.storeByte = (*CPU).storeByteNormal
	}

	cpu.Reg.Init()
	cpu.IRQLine = false
	cpu.NMILine = false
	cpu.NMIEdge = false
	cpu.Jammed = false
	cpu.resetCycles = 0
}

// Reset pulses the CPU's RESET line. The interrupt disable flag is set,
// the stack pointer is reinitialized and the program counter is loaded
// from the reset vector. The seven cycles of the reset sequence are
// consumed by the next call to Step.
func (cpu *CPU) Reset() {
	if !cpu.powered {
		return
	}

	cpu.Reg.SP = 0xfd
	cpu.Reg.Set(InterruptDisable, true)
	cpu.Reg.PS |= Reserved
	cpu.Reg.PC = cpu.read16(vectorReset)
	cpu.Jammed = false
	cpu.NMIEdge = false
	cpu.resetCycles = resetCycles
}

// SetPC updates the CPU program counter to 'addr'.
func (cpu *CPU) SetPC(addr uint16) {
	cpu.Reg.PC = addr
}

// GetInstruction returns the instruction opcode at the requested address.
func (cpu *CPU) GetInstruction(addr uint16) *Instruction {
	opcode := cpu.Bus.Read(addr)
	return cpu.InstSet.Lookup(opcode)
}

// NextAddr returns the address of the next instruction following the
// instruction at addr.
func (cpu *CPU) NextAddr(addr uint16) uint16 {
	opcode := cpu.Bus.Read(addr)
	inst := cpu.InstSet.Lookup(opcode)
	return addr + uint16(inst.Length)
}

// Run executes whole instructions until at least 'cycles' clock cycles
// have elapsed, and returns the number of cycles actually consumed. The
// cycle counter is zeroed on entry. A powered-off CPU returns 0.
func (cpu *CPU) Run(cycles uint64) uint64 {
	if !cpu.powered {
		return 0
	}

	cpu.Cycles = 0
	for cpu.Cycles < cycles {
		cpu.Step()
	}
	return cpu.Cycles
}

// Step the cpu by one instruction, interrupt sequence or reset sequence.
// It returns the number of cycles consumed.
func (cpu *CPU) Step() uint64 {
	if !cpu.powered {
		return 0
	}

	start := cpu.Cycles

	switch {
	case cpu.resetCycles > 0:
		cpu.Cycles += cpu.resetCycles
		cpu.resetCycles = 0

	case cpu.Jammed:
		cpu.Cycles += jamCycles

	case cpu.NMIEdge:
		cpu.NMIEdge = false
		cpu.handleInterrupt(false, vectorNMI)
		cpu.Cycles += interruptCycles

	case cpu.IRQLine && !cpu.Reg.IsSet(InterruptDisable):
		cpu.handleInterrupt(false, vectorIRQ)
		cpu.Cycles += interruptCycles

	default:
		cpu.execute()
	}

	// Update the debugger so it can handle breakpoints.
	if cpu.debugger != nil {
		cpu.debugger.onUpdatePC(cpu, cpu.Reg.PC)
	}

	return cpu.Cycles - start
}

// Fetch, decode and execute the instruction at the program counter.
func (cpu *CPU) execute() {
	cpu.LastPC = cpu.Reg.PC

	// Grab the next opcode at the current PC and look up its instruction
	// data.
	cpu.opcode = cpu.Bus.Read(cpu.Reg.PC)
	cpu.Reg.PC++
	inst := cpu.InstSet.Lookup(cpu.opcode)

	// Resolve the operand and advance the PC past it.
	cpu.pageCrossed = false
	cpu.deltaCycles = 0
	cpu.resolve(inst.Mode)

	inst.fn(cpu, inst)

	// Update the CPU cycle counter, with special-case logic
	// to handle a page boundary crossing
	cpu.Cycles += uint64(int8(inst.Cycles) + cpu.deltaCycles)
	if cpu.pageCrossed {
		cpu.Cycles += uint64(inst.BPCycles)
	}
}

// AttachDebugger attaches a debugger to the CPU. The debugger receives
// notifications whenever the CPU executes an instruction or stores a byte
// to memory.
func (cpu *CPU) AttachDebugger(debugger *Debugger) {
	cpu.debugger = debugger
	cpu.storeByte = (*CPU).storeByteDebugger
}

// DetachDebugger detaches the currently debugger from the CPU.
func (cpu *CPU) DetachDebugger() {
	cpu.debugger = nil
	cpu.storeByte = (*CPU).storeByteNormal
}

// Store the byte value 'v' add the address 'addr'.
func (cpu *CPU) storeByteNormal(addr uint16, v byte) {
	cpu.Bus.Write(addr, v)
}

// Store the byte value 'v' add the address 'addr', notifying the debugger
// first.
func (cpu *CPU) storeByteDebugger(addr uint16, v byte) {
	cpu.debugger.onDataStore(cpu, addr, v)
	cpu.Bus.Write(addr, v)
}

// Read a little-endian 16-bit value from the bus.
func (cpu *CPU) read16(addr uint16) uint16 {
	lo := cpu.Bus.Read(addr)
	hi := cpu.Bus.Read(addr + 1)
	return uint16(lo) | uint16(hi)<<8
}

// Push a value 'v' onto the stack.
func (cpu *CPU) push(v byte) {
	cpu.storeByte(cpu, stackAddress(cpu.Reg.SP), v)
	cpu.Reg.SP--
}

// Push the address 'addr' onto the stack.
func (cpu *CPU) pushAddress(addr uint16) {
	cpu.push(byte(addr >> 8))
	cpu.push(byte(addr))
}

// Pop a value from the stack and return it.
func (cpu *CPU) pop() byte {
	cpu.Reg.SP++
	return cpu.Bus.Read(stackAddress(cpu.Reg.SP))
}

// Pop a 16-bit address off the stack.
func (cpu *CPU) popAddress() uint16 {
	lo := cpu.pop()
	hi := cpu.pop()
	return uint16(lo) | (uint16(hi) << 8)
}

// Update the Zero and Negative flags based on the value of 'v'.
func (cpu *CPU) updateNZ(v byte) {
	cpu.Reg.Set(Zero, v == 0)
	cpu.Reg.Set(Negative, (v&0x80) != 0)
}
