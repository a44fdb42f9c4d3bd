// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import "github.com/beevik/m6502/cpu"

// The debugHandler receives breakpoint notifications from the cpu debugger
// and stops the host's run loop.
type debugHandler struct {
	host *Host
}

func newDebugHandler(h *Host) *debugHandler {
	return &debugHandler{host: h}
}

func (d *debugHandler) OnBreakpoint(c *cpu.CPU, b *cpu.Breakpoint) {
	h := d.host
	if h.stepOverAddr != nil && *h.stepOverAddr == b.Address {
		return
	}
	h.setState(stateBreakpoint)
	h.printf("Breakpoint hit at $%04X.\n", b.Address)
}

func (d *debugHandler) OnDataBreakpoint(c *cpu.CPU, b *cpu.DataBreakpoint) {
	h := d.host
	h.setState(stateBreakpoint)
	h.printf("Data breakpoint hit on address $%04X.\n", b.Address)
	line, _ := h.disassemble(c.LastPC, displayAll)
	h.println(line)
}
