// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package disasm implements a 6502 instruction set
// disassembler.
package disasm

import (
	"fmt"

	"github.com/beevik/m6502/cpu"
)

// Disassembler formatting for addressing modes
var modeFormat = []string{
	"#$%s",    // IMM
	"%s",      // IMP
	"$%s",     // REL
	"$%s",     // ZPG
	"$%s,X",   // ZPX
	"$%s,Y",   // ZPY
	"$%s",     // ABS
	"$%s,X",   // ABX
	"$%s,Y",   // ABY
	"($%s)",   // IND
	"($%s,X)", // IDX
	"($%s),Y", // IDY
	"A",       // ACC
}

var hex = "0123456789ABCDEF"

// Return a hexadecimal string representation of the byte slice, most
// significant (last) byte first.
func hexString(b []byte) string {
	hexlen := len(b) * 2
	hexbuf := make([]byte, hexlen)
	j := hexlen - 1
	for _, n := range b {
		hexbuf[j] = hex[n&0xf]
		hexbuf[j-1] = hex[n>>4]
		j -= 2
	}
	return string(hexbuf)
}

// Disassemble the machine code on the CPU's bus at address 'addr'. Return
// a 'line' string representing the disassembled instruction and a 'next'
// address that starts the following line of machine code. Undocumented
// opcodes are prefixed with '*'.
func Disassemble(c *cpu.CPU, addr uint16) (line string, next uint16) {
	inst := c.GetInstruction(addr)

	var buf [2]byte
	operand := buf[:inst.Length-1]
	for i := range operand {
		operand[i] = c.Bus.Read(addr + 1 + uint16(i))
	}

	if inst.Mode == cpu.REL {
		// Convert relative offset to absolute address.
		braddr := addr + uint16(inst.Length) + uint16(int8(operand[0]))
		operand = []byte{byte(braddr), byte(braddr >> 8)}
	}

	name := inst.Name
	if inst.Undocumented {
		name = "*" + name
	}

	switch inst.Mode {
	case cpu.IMP:
		line = name
	case cpu.ACC:
		line = name + " A"
	default:
		line = fmt.Sprintf("%s "+modeFormat[inst.Mode], name, hexString(operand))
	}
	next = addr + uint16(inst.Length)
	return line, next
}

// GetRegisterString returns a single-line summary of the register
// contents, suitable for trace output.
func GetRegisterString(r *cpu.Registers) string {
	return fmt.Sprintf("A=%02X X=%02X Y=%02X PS=[%s] SP=%02X PC=%04X",
		r.A, r.X, r.Y, r.PS, r.SP, r.PC)
}

// GetCodeBytes returns the hex bytes of the instruction at 'addr',
// separated by spaces.
func GetCodeBytes(c *cpu.CPU, addr uint16) string {
	inst := c.GetInstruction(addr)
	s := ""
	for i := uint16(0); i < uint16(inst.Length); i++ {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%02X", c.Bus.Read(addr+i))
	}
	return s
}
