// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import "errors"

// Errors
var (
	ErrMemoryOutOfBounds = errors.New("memory access out of bounds")
)

// The Bus interface presents the machine's address space to the CPU. All
// memory and peripheral accesses made by the CPU go through it, and the
// CPU never keeps a copy of what it reads.
type Bus interface {
	// Read returns the byte at the requested address.
	Read(addr uint16) byte

	// Write stores a byte at the requested address.
	Write(addr uint16, v byte)
}

// BusFuncs adapts a pair of callback functions sharing an opaque context
// value to the Bus interface.
type BusFuncs struct {
	Context   any
	ReadFunc  func(context any, addr uint16) byte
	WriteFunc func(context any, addr uint16, v byte)
}

// Read calls the read callback.
func (b *BusFuncs) Read(addr uint16) byte {
	return b.ReadFunc(b.Context, addr)
}

// Write calls the write callback.
func (b *BusFuncs) Write(addr uint16, v byte) {
	b.WriteFunc(b.Context, addr, v)
}

// FlatMemory represents an entire 16-bit address space as a singular
// 64K buffer.
type FlatMemory struct {
	b [64 * 1024]byte
}

// NewFlatMemory creates a new 16-bit memory space.
func NewFlatMemory() *FlatMemory {
	return &FlatMemory{}
}

// Read loads a single byte from the address and returns it.
func (m *FlatMemory) Read(addr uint16) byte {
	return m.b[addr]
}

// Write stores a byte at the requested address.
func (m *FlatMemory) Write(addr uint16, v byte) {
	m.b[addr] = v
}

// LoadBytes loads multiple bytes from the address into the buffer 'b'.
// Bytes past the end of the address space are returned as zero.
func (m *FlatMemory) LoadBytes(addr uint16, b []byte) {
	n := copy(b, m.b[addr:])
	clear(b[n:])
}

// StoreBytes stores multiple bytes starting at the requested address. It
// returns ErrMemoryOutOfBounds if the bytes would run past $FFFF.
func (m *FlatMemory) StoreBytes(addr uint16, b []byte) error {
	if int(addr)+len(b) > len(m.b) {
		return ErrMemoryOutOfBounds
	}
	copy(m.b[addr:], b)
	return nil
}

// LoadAddress loads a little-endian 16-bit value from the requested
// address. The high byte comes from addr+1, wrapping at $FFFF.
func (m *FlatMemory) LoadAddress(addr uint16) uint16 {
	return uint16(m.b[addr]) | uint16(m.b[addr+1])<<8
}

// StoreAddress stores a little-endian 16-bit value at the requested
// address.
func (m *FlatMemory) StoreAddress(addr uint16, v uint16) {
	m.b[addr] = byte(v)
	m.b[addr+1] = byte(v >> 8)
}

// Return the offset address 'addr' + 'offset'. If the offset
// crossed a page boundary, return 'pageCrossed' as true.
func offsetAddress(addr uint16, offset byte) (newAddr uint16, pageCrossed bool) {
	newAddr = addr + uint16(offset)
	pageCrossed = ((newAddr & 0xff00) != (addr & 0xff00))
	return newAddr, pageCrossed
}

// Offset a zero-page address 'addr' by 'offset'. If the address
// exceeds the zero-page address space, wrap it.
func offsetZeroPage(addr byte, offset byte) uint16 {
	return uint16(addr + offset)
}

// Given a 1-byte stack pointer register, return the stack
// corresponding memory address.
func stackAddress(offset byte) uint16 {
	return uint16(0x100) + uint16(offset)
}
