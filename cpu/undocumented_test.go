package cpu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/beevik/m6502/cpu"
)

func TestUndocumentedOpcodes(t *testing.T) {
	type state struct {
		a, x, y, sp byte
		carry       bool
	}

	cases := []struct {
		name  string
		code  []byte
		init  state
		mem   map[uint16]byte
		want  state
		wantM map[uint16]byte
		flags map[cpu.Status]bool
	}{
		{
			name: "LAX zp",
			code: []byte{0xa7, 0x10},
			mem:  map[uint16]byte{0x10: 0x81},
			init: state{sp: 0xfd},
			want: state{a: 0x81, x: 0x81, sp: 0xfd},
			flags: map[cpu.Status]bool{
				cpu.Negative: true,
				cpu.Zero:     false,
			},
		},
		{
			name:  "SAX zp",
			code:  []byte{0x87, 0x20},
			init:  state{a: 0xf0, x: 0x3c, sp: 0xfd},
			want:  state{a: 0xf0, x: 0x3c, sp: 0xfd},
			wantM: map[uint16]byte{0x20: 0x30},
		},
		{
			name:  "DCP zp",
			code:  []byte{0xc7, 0x10},
			mem:   map[uint16]byte{0x10: 0x05},
			init:  state{a: 0x04, sp: 0xfd},
			want:  state{a: 0x04, sp: 0xfd, carry: true},
			wantM: map[uint16]byte{0x10: 0x04},
			flags: map[cpu.Status]bool{cpu.Zero: true},
		},
		{
			name:  "ISC zp",
			code:  []byte{0xe7, 0x10},
			mem:   map[uint16]byte{0x10: 0x0f},
			init:  state{a: 0x10, sp: 0xfd, carry: true},
			want:  state{a: 0x00, sp: 0xfd, carry: true},
			wantM: map[uint16]byte{0x10: 0x10},
			flags: map[cpu.Status]bool{cpu.Zero: true},
		},
		{
			name:  "SLO zp",
			code:  []byte{0x07, 0x10},
			mem:   map[uint16]byte{0x10: 0x81},
			init:  state{a: 0x40, sp: 0xfd},
			want:  state{a: 0x42, sp: 0xfd, carry: true},
			wantM: map[uint16]byte{0x10: 0x02},
		},
		{
			name:  "RLA zp",
			code:  []byte{0x27, 0x10},
			mem:   map[uint16]byte{0x10: 0x81},
			init:  state{a: 0xff, sp: 0xfd, carry: true},
			want:  state{a: 0x03, sp: 0xfd, carry: true},
			wantM: map[uint16]byte{0x10: 0x03},
		},
		{
			name:  "SRE zp",
			code:  []byte{0x47, 0x10},
			mem:   map[uint16]byte{0x10: 0x03},
			init:  state{a: 0xff, sp: 0xfd},
			want:  state{a: 0xfe, sp: 0xfd, carry: true},
			wantM: map[uint16]byte{0x10: 0x01},
		},
		{
			name:  "RRA zp",
			code:  []byte{0x67, 0x10},
			mem:   map[uint16]byte{0x10: 0x03},
			init:  state{a: 0x10, sp: 0xfd},
			want:  state{a: 0x12, sp: 0xfd},
			wantM: map[uint16]byte{0x10: 0x01},
		},
		{
			name: "SBX imm",
			code: []byte{0xcb, 0x05},
			init: state{a: 0xff, x: 0x0f, sp: 0xfd},
			want: state{a: 0xff, x: 0x0a, sp: 0xfd, carry: true},
		},
		{
			name:  "ANC imm",
			code:  []byte{0x0b, 0xff},
			init:  state{a: 0x80, sp: 0xfd},
			want:  state{a: 0x80, sp: 0xfd, carry: true},
			flags: map[cpu.Status]bool{cpu.Negative: true},
		},
		{
			name: "ALR imm",
			code: []byte{0x4b, 0x03},
			init: state{a: 0x03, sp: 0xfd},
			want: state{a: 0x01, sp: 0xfd, carry: true},
		},
		{
			name: "ARR imm",
			code: []byte{0x6b, 0xff},
			init: state{a: 0xff, sp: 0xfd},
			want: state{a: 0x7f, sp: 0xfd, carry: true},
			flags: map[cpu.Status]bool{
				cpu.Overflow: false,
				cpu.Negative: false,
			},
		},
		{
			name: "ANE imm",
			code: []byte{0x8b, 0xff},
			init: state{a: 0x00, x: 0x3f, sp: 0xfd},
			want: state{a: 0x2e, x: 0x3f, sp: 0xfd},
		},
		{
			name: "LXA imm",
			code: []byte{0xab, 0x0f},
			init: state{a: 0x01, sp: 0xfd},
			want: state{a: 0x0f, x: 0x0f, sp: 0xfd},
		},
		{
			name: "LAS aby",
			code: []byte{0xbb, 0x00, 0x20},
			mem:  map[uint16]byte{0x2000: 0xf3},
			init: state{sp: 0xfd},
			want: state{a: 0xf1, x: 0xf1, sp: 0xf1},
		},
		{
			name:  "TAS aby",
			code:  []byte{0x9b, 0x00, 0x20},
			init:  state{a: 0xff, x: 0x0f, sp: 0xfd},
			want:  state{a: 0xff, x: 0x0f, sp: 0x0f},
			wantM: map[uint16]byte{0x2000: 0x01},
		},
		{
			name:  "SHX aby",
			code:  []byte{0x9e, 0x00, 0x20},
			init:  state{x: 0xff, sp: 0xfd},
			want:  state{x: 0xff, sp: 0xfd},
			wantM: map[uint16]byte{0x2000: 0x21},
		},
		{
			name:  "SHX aby across page",
			code:  []byte{0x9e, 0xff, 0x10},
			init:  state{x: 0x0f, y: 0x01, sp: 0xfd},
			want:  state{x: 0x0f, y: 0x01, sp: 0xfd},
			wantM: map[uint16]byte{0x0100: 0x01, 0x1100: 0x00},
		},
		{
			name:  "SHY abx",
			code:  []byte{0x9c, 0x00, 0x20},
			init:  state{y: 0x3f, sp: 0xfd},
			want:  state{y: 0x3f, sp: 0xfd},
			wantM: map[uint16]byte{0x2000: 0x21},
		},
		{
			name:  "SHA aby",
			code:  []byte{0x9f, 0x00, 0x20},
			init:  state{a: 0x33, x: 0xf1, sp: 0xfd},
			want:  state{a: 0x33, x: 0xf1, sp: 0xfd},
			wantM: map[uint16]byte{0x2000: 0x21},
		},
		{
			name: "USBC imm",
			code: []byte{0xeb, 0x01},
			init: state{a: 0x10, sp: 0xfd, carry: true},
			want: state{a: 0x0f, sp: 0xfd, carry: true},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, mem := loadCPU(t, tc.code...)
			for addr, v := range tc.mem {
				mem.Write(addr, v)
			}
			c.Reg.A, c.Reg.X, c.Reg.Y, c.Reg.SP = tc.init.a, tc.init.x, tc.init.y, tc.init.sp
			c.Reg.Set(cpu.Carry, tc.init.carry)

			c.Step()

			assert.Equal(t, tc.want.a, c.Reg.A, "A")
			assert.Equal(t, tc.want.x, c.Reg.X, "X")
			assert.Equal(t, tc.want.y, c.Reg.Y, "Y")
			assert.Equal(t, tc.want.sp, c.Reg.SP, "SP")
			assert.Equal(t, tc.want.carry, c.Reg.IsSet(cpu.Carry), "C")
			for addr, v := range tc.wantM {
				assert.Equal(t, v, mem.Read(addr), "memory at $%04X", addr)
			}
			for s, on := range tc.flags {
				assert.Equal(t, on, c.Reg.IsSet(s), "flag %s", s)
			}
			assert.Equal(t, uint16(origin)+uint16(len(tc.code)), c.Reg.PC, "PC")
		})
	}
}

func TestUndocumentedNopTiming(t *testing.T) {
	c, _ := loadCPU(t,
		0xa2, 0xff, // LDX #$FF
		0x1c, 0x01, 0x10, // NOP $1001,X
		0x04, 0x10, // NOP $10
		0x80, 0x00, // NOP #$00
	)

	stepCPU(c, 1)
	assert.Equal(t, uint64(5), c.Step(), "page cross adds a cycle")
	assert.Equal(t, uint64(3), c.Step())
	assert.Equal(t, uint64(2), c.Step())
	assert.Equal(t, uint16(0x1009), c.Reg.PC)
}

func TestUndocumentedFlagged(t *testing.T) {
	set := cpu.GetInstructionSet(cpu.NMOS)

	count := 0
	for i := 0; i < 256; i++ {
		if !set.Lookup(byte(i)).Undocumented {
			count++
		}
	}
	assert.Equal(t, 151, count, "documented opcodes")
	assert.Len(t, set.GetInstructions("jam"), 12)
	assert.Len(t, set.GetInstructions("LDA"), 8)
}
