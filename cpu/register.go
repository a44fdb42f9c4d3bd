// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// Status holds the bit-packed processor status flags.
type Status byte

// Bits assigned to the processor status byte
const (
	Carry            Status = 1 << 0 // C
	Zero             Status = 1 << 1 // Z
	InterruptDisable Status = 1 << 2 // I
	Decimal          Status = 1 << 3 // D
	Break            Status = 1 << 4 // B (only exists in pushed copies)
	Reserved         Status = 1 << 5 // always reads as set
	Overflow         Status = 1 << 6 // V
	Negative         Status = 1 << 7 // N
)

// Registers contains the state of all 6502 registers.
type Registers struct {
	A  byte   // accumulator
	X  byte   // X indexing register
	Y  byte   // Y indexing register
	SP byte   // stack pointer ($100 + SP = stack memory location)
	PC uint16 // program counter
	PS Status // processor status bits
}

// Init sets all registers to their power-up values. A, X, Y = 0. SP = $FD.
// PC = 0. PS = Reserved|InterruptDisable.
func (r *Registers) Init() {
	r.A = 0
	r.X = 0
	r.Y = 0
	r.SP = 0xfd
	r.PC = 0
	r.PS = Reserved | InterruptDisable
}

// IsSet returns true if all status bits in 's' are set.
func (r *Registers) IsSet(s Status) bool {
	return (r.PS & s) == s
}

// Set sets the status bits in 's' to 1 if 'on' is true. Otherwise they
// are cleared.
func (r *Registers) Set(s Status, on bool) {
	if on {
		r.PS |= s
	} else {
		r.PS &^= s
	}
}

// Bit returns 1 if the status bit 's' is set, otherwise 0.
func (r *Registers) Bit(s Status) byte {
	if (r.PS & s) == 0 {
		return 0
	}
	return 1
}

// SavePS returns the processor status as it appears when pushed onto the
// stack. The break bit is set if requested.
func (r *Registers) SavePS(brk bool) byte {
	ps := r.PS | Reserved
	if brk {
		ps |= Break
	} else {
		ps &^= Break
	}
	return byte(ps)
}

// RestorePS restores the processor status from a byte pulled off the
// stack. The break bit is discarded.
func (r *Registers) RestorePS(ps byte) {
	r.PS = (Status(ps) &^ Break) | Reserved
}

// String returns the flags as a compact string such as "NV-BDIZC", with
// cleared flags shown as dashes.
func (s Status) String() string {
	const names = "CZIDB-VN"
	var b [8]byte
	for i := 0; i < 8; i++ {
		bit := Status(1) << uint(i)
		switch {
		case bit == Reserved:
			b[7-i] = '-'
		case s&bit != 0:
			b[7-i] = names[i]
		default:
			b[7-i] = '-'
		}
	}
	return string(b[:])
}
