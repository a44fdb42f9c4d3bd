// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host allows you to create a "host" that wraps a 6502 CPU in a
// 64K flat memory machine with a built-in debugger and monitor.
//
// Within the host it is possible to load machine code into memory, drive
// the CPU's power, reset and interrupt lines, run the CPU for a number of
// cycles, step through code, set address and data breakpoints, dump and
// modify memory, disassemble code, manipulate CPU registers, and evaluate
// address expressions.
package host

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync/atomic"

	"github.com/beevik/cmd"
	"github.com/beevik/m6502/cpu"
	"github.com/beevik/m6502/disasm"
)

// ErrQuit is returned by RunCommands when the quit command is entered.
var ErrQuit = errors.New("exiting program")

type displayFlags uint8

const (
	displayRegisters displayFlags = 1 << iota
	displayCycles

	displayAll = displayRegisters | displayCycles
)

type state uint32

const (
	stateProcessingCommands state = iota
	stateRunning
	stateBreakpoint
	stateInterrupted
)

// Status flags that may be changed with the set command.
var flagNames = map[string]cpu.Status{
	"carry":     cpu.Carry,
	"zero":      cpu.Zero,
	"interrupt": cpu.InterruptDisable,
	"decimal":   cpu.Decimal,
	"overflow":  cpu.Overflow,
	"negative":  cpu.Negative,
}

// A Host represents a fully emulated 6502 system with 64K of memory, a
// built-in debugger, and other useful tools.
type Host struct {
	input        *bufio.Scanner
	output       *bufio.Writer
	interactive  bool
	mem          *cpu.FlatMemory
	cpu          *cpu.CPU
	debugger     *cpu.Debugger
	lastCmd      *cmd.Selection
	state        atomic.Uint32 // a state value; Break writes it from another goroutine
	exprParser   *exprParser
	settings     *settings
	stepOverAddr *uint16
	cycles       uint64 // cycles run by the host since the last reset
}

// New creates a new 6502 host environment with a CPU of the requested
// variant.
func New(variant cpu.Variant) *Host {
	h := &Host{
		output:     bufio.NewWriter(io.Discard),
		exprParser: newExprParser(),
		settings:   newSettings(),
	}

	// Create the emulated CPU and memory.
	h.mem = cpu.NewFlatMemory()
	h.cpu = cpu.NewCPU(variant, h.mem)

	// Create a CPU debugger and attach it to the CPU.
	h.debugger = cpu.NewDebugger(newDebugHandler(h))
	h.cpu.AttachDebugger(h.debugger)

	return h
}

// CPU returns the host's CPU.
func (h *Host) CPU() *cpu.CPU {
	return h.cpu
}

// Memory returns the host's 64K memory.
func (h *Host) Memory() *cpu.FlatMemory {
	return h.mem
}

// LoadFile stores the raw contents of a file into memory at 'addr'.
func (h *Host) LoadFile(filename string, addr uint16) (n int, err error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return 0, err
	}
	if err := h.mem.StoreBytes(addr, b); err != nil {
		return 0, fmt.Errorf("loading %s at $%04X: %w", filepath.Base(filename), addr, err)
	}
	return len(b), nil
}

// Reset pulses the CPU's RESET line and runs the reset sequence.
func (h *Host) Reset() {
	h.cpu.Reset()
	h.cycles = h.cpu.Step()
	h.settings.NextDisasmAddr = h.cpu.Reg.PC
}

// RunCommands accepts host commands from a reader and outputs the results
// to a writer. If the commands are interactive, a prompt is displayed while
// the host waits for the next command to be entered. It returns nil
// when the input is exhausted and ErrQuit if a quit command was entered.
func (h *Host) RunCommands(r io.Reader, w io.Writer, interactive bool) error {
	h.input = bufio.NewScanner(r)
	h.output = bufio.NewWriter(w)
	h.interactive = interactive
	defer h.flush()

	if interactive {
		h.println()
		h.displayPC()
	}

	for {
		h.prompt()

		line, err := h.getLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		var sel cmd.Selection
		switch {
		case line != "":
			sel, err = cmds.Lookup(line)
			if err != nil {
				h.printf("%v.\n", err)
				continue
			}
		case h.interactive && h.lastCmd != nil:
			sel = *h.lastCmd
		}

		if sel.Command == nil {
			continue
		}
		h.lastCmd = &sel

		handler := sel.Command.Data.(func(*Host, cmd.Selection) error)
		if err := handler(h, sel); err != nil {
			return err
		}
	}
}

// Break interrupts a running CPU. It may be called from any goroutine.
func (h *Host) Break() {
	if h.state.CompareAndSwap(uint32(stateRunning), uint32(stateInterrupted)) {
		return
	}

	h.println()
	h.prompt()
}

func (h *Host) getState() state {
	return state(h.state.Load())
}

func (h *Host) setState(s state) {
	h.state.Store(uint32(s))
}

func (h *Host) printf(format string, args ...any) {
	fmt.Fprintf(h.output, format, args...)
	h.flush()
}

func (h *Host) println(args ...any) {
	fmt.Fprintln(h.output, args...)
	h.flush()
}

func (h *Host) flush() {
	h.output.Flush()
}

func (h *Host) getLine() (string, error) {
	if h.input.Scan() {
		return h.input.Text(), nil
	}
	if h.input.Err() != nil {
		return "", h.input.Err()
	}
	return "", io.EOF
}

func (h *Host) prompt() {
	if h.interactive {
		h.printf("* ")
	}
}

func (h *Host) displayPC() {
	d, _ := h.disassemble(h.cpu.Reg.PC, displayAll)
	h.println(d)
}

func (h *Host) displayUsage(c *cmd.Command) {
	if c.Usage != "" {
		h.printf("Usage: %s\n", c.Usage)
	} else {
		h.println("<no usage text>")
	}
}

// Parse the address argument shared by the breakpoint commands.
func (h *Host) addrArg(c cmd.Selection) (addr uint16, ok bool) {
	if len(c.Args) < 1 {
		h.displayUsage(c.Command)
		return 0, false
	}

	addr, err := h.parseExpr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return 0, false
	}
	return addr, true
}

// Parse an optional count argument, returning 'def' when it is absent.
func (h *Host) countArg(c cmd.Selection, i int, def int) int {
	if len(c.Args) <= i {
		return def
	}
	n, err := h.exprParser.Parse(c.Args[i], h)
	if err != nil || n < 0 {
		h.printf("invalid count '%s'\n", c.Args[i])
		return 0
	}
	return int(n)
}

func (h *Host) cmdBreakpointList(c cmd.Selection) error {
	h.println("Addr  Enabled")
	h.println("----- -------")
	for _, b := range h.debugger.GetBreakpoints() {
		h.printf("$%04X %v\n", b.Address, !b.Disabled)
	}
	return nil
}

func (h *Host) cmdBreakpointAdd(c cmd.Selection) error {
	if addr, ok := h.addrArg(c); ok {
		h.debugger.AddBreakpoint(addr)
		h.printf("Breakpoint added at $%04X.\n", addr)
	}
	return nil
}

func (h *Host) cmdBreakpointRemove(c cmd.Selection) error {
	addr, ok := h.addrArg(c)
	if !ok {
		return nil
	}

	if h.debugger.GetBreakpoint(addr) == nil {
		h.printf("No breakpoint was set on $%04X.\n", addr)
		return nil
	}

	h.debugger.RemoveBreakpoint(addr)
	h.printf("Breakpoint at $%04X removed.\n", addr)
	return nil
}

func (h *Host) cmdBreakpointEnable(c cmd.Selection) error {
	h.enableBreakpoint(c, true)
	return nil
}

func (h *Host) cmdBreakpointDisable(c cmd.Selection) error {
	h.enableBreakpoint(c, false)
	return nil
}

func (h *Host) enableBreakpoint(c cmd.Selection, enable bool) {
	addr, ok := h.addrArg(c)
	if !ok {
		return
	}

	b := h.debugger.GetBreakpoint(addr)
	if b == nil {
		h.printf("No breakpoint was set on $%04X.\n", addr)
		return
	}

	b.Disabled = !enable
	h.printf("Breakpoint at $%04X %s.\n", addr, enabledString(enable))
}

func (h *Host) cmdDataBreakpointList(c cmd.Selection) error {
	h.println("Addr  Enabled  Value")
	h.println("----- -------  -----")
	for _, b := range h.debugger.GetDataBreakpoints() {
		if b.Conditional {
			h.printf("$%04X %-5v    $%02X\n", b.Address, !b.Disabled, b.Value)
		} else {
			h.printf("$%04X %-5v    <none>\n", b.Address, !b.Disabled)
		}
	}
	return nil
}

func (h *Host) cmdDataBreakpointAdd(c cmd.Selection) error {
	addr, ok := h.addrArg(c)
	if !ok {
		return nil
	}

	if len(c.Args) > 1 {
		value, err := h.parseExpr(c.Args[1])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		h.debugger.AddConditionalDataBreakpoint(addr, byte(value))
		h.printf("Conditional data breakpoint added at $%04X for value $%02X.\n", addr, byte(value))
	} else {
		h.debugger.AddDataBreakpoint(addr)
		h.printf("Data breakpoint added at $%04X.\n", addr)
	}
	return nil
}

func (h *Host) cmdDataBreakpointRemove(c cmd.Selection) error {
	addr, ok := h.addrArg(c)
	if !ok {
		return nil
	}

	if h.debugger.GetDataBreakpoint(addr) == nil {
		h.printf("No data breakpoint was set on $%04X.\n", addr)
		return nil
	}

	h.debugger.RemoveDataBreakpoint(addr)
	h.printf("Data breakpoint at $%04X removed.\n", addr)
	return nil
}

func (h *Host) cmdDataBreakpointEnable(c cmd.Selection) error {
	h.enableDataBreakpoint(c, true)
	return nil
}

func (h *Host) cmdDataBreakpointDisable(c cmd.Selection) error {
	h.enableDataBreakpoint(c, false)
	return nil
}

func (h *Host) enableDataBreakpoint(c cmd.Selection, enable bool) {
	addr, ok := h.addrArg(c)
	if !ok {
		return
	}

	b := h.debugger.GetDataBreakpoint(addr)
	if b == nil {
		h.printf("No data breakpoint was set on $%04X.\n", addr)
		return
	}

	b.Disabled = !enable
	h.printf("Data breakpoint at $%04X %s.\n", addr, enabledString(enable))
}

func enabledString(enable bool) string {
	if enable {
		return "enabled"
	}
	return "disabled"
}

// Resolve the starting address argument shared by disassemble and memory
// dump. '$' continues from 'next' and '.' is the program counter.
func (h *Host) startAddr(c cmd.Selection, next uint16) (uint16, bool) {
	if len(c.Args) == 0 {
		return next, true
	}

	switch c.Args[0] {
	case "$":
		return next, true
	case ".":
		return h.cpu.Reg.PC, true
	default:
		addr, err := h.parseExpr(c.Args[0])
		if err != nil {
			h.printf("%v\n", err)
			return 0, false
		}
		return addr, true
	}
}

func (h *Host) cmdDisassemble(c cmd.Selection) error {
	addr, ok := h.startAddr(c, h.settings.NextDisasmAddr)
	if !ok {
		return nil
	}

	lines := h.countArg(c, 1, h.settings.DisasmLines)
	for i := 0; i < lines; i++ {
		d, next := h.disassemble(addr, 0)
		h.println(d)
		addr = next
	}

	h.settings.NextDisasmAddr = addr
	h.lastCmd.Args = []string{"$", fmt.Sprintf("%d", lines)}
	return nil
}

func (h *Host) cmdEval(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayUsage(c.Command)
		return nil
	}

	v, err := h.exprParser.Parse(strings.Join(c.Args, " "), h)
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	h.printf("$%04X (%d)\n", uint16(v), v)
	return nil
}

func (h *Host) cmdHelp(c cmd.Selection) error {
	if len(c.Args) == 0 {
		h.println("Commands:")
		for _, s := range cmdSummaries {
			h.printf("    %-24s %s\n", s.name, s.brief)
		}
		return nil
	}

	name := strings.Join(c.Args, " ")
	s, err := cmds.Lookup(name)
	if err != nil {
		h.printf("%v.\n", err)
		return nil
	}

	if s.Command == nil {
		for _, sum := range cmdSummaries {
			if strings.HasPrefix(sum.name, name+" ") {
				h.printf("    %-24s %s\n", sum.name, sum.brief)
			}
		}
		return nil
	}

	if s.Command.Usage != "" {
		h.printf("Usage: %s\n\n", s.Command.Usage)
	}
	switch {
	case s.Command.Description != "":
		h.printf("Description:\n%s\n\n", indentWrap(3, 76, s.Command.Description))
	case s.Command.Brief != "":
		h.printf("Description:\n%s.\n\n", indentWrap(3, 76, s.Command.Brief))
	}
	return nil
}

func (h *Host) cmdIRQ(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayUsage(c.Command)
		return nil
	}

	level, err := stringToBool(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	h.cpu.IRQ(level)
	if level {
		h.println("IRQ line asserted.")
	} else {
		h.println("IRQ line released.")
	}
	return nil
}

func (h *Host) cmdLoad(c cmd.Selection) error {
	if len(c.Args) < 2 {
		h.displayUsage(c.Command)
		return nil
	}

	filename := c.Args[0]
	addr, err := h.parseExpr(c.Args[1])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	n, err := h.LoadFile(filename, addr)
	if err != nil {
		h.printf("Failed to load '%s': %v\n", filepath.Base(filename), err)
		return nil
	}

	h.printf("Loaded '%s' to $%04X..$%04X\n", filepath.Base(filename), addr, int(addr)+n-1)
	h.settings.NextDisasmAddr = addr
	h.settings.NextMemDumpAddr = addr
	return nil
}

func (h *Host) cmdMemoryDump(c cmd.Selection) error {
	addr, ok := h.startAddr(c, h.settings.NextMemDumpAddr)
	if !ok {
		return nil
	}

	bytes := h.countArg(c, 1, h.settings.MemDumpBytes)
	if bytes == 0 {
		return nil
	}

	h.dumpMemory(addr, bytes)

	h.settings.NextMemDumpAddr = addr + uint16(bytes)
	h.lastCmd.Args = []string{"$", fmt.Sprintf("%d", bytes)}
	return nil
}

func (h *Host) cmdMemorySet(c cmd.Selection) error {
	if len(c.Args) < 2 {
		h.displayUsage(c.Command)
		return nil
	}

	addr, err := h.parseExpr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	b := make([]byte, 0, len(c.Args)-1)
	for _, arg := range c.Args[1:] {
		v, err := h.parseExpr(arg)
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		b = append(b, byte(v))
	}

	if err := h.mem.StoreBytes(addr, b); err != nil {
		h.printf("%v\n", err)
		return nil
	}

	h.printf("Stored %d byte(s) at $%04X.\n", len(b), addr)
	return nil
}

func (h *Host) cmdNMI(c cmd.Selection) error {
	h.cpu.NMI()
	h.println("NMI signaled.")
	return nil
}

func (h *Host) cmdPower(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayUsage(c.Command)
		return nil
	}

	on, err := stringToBool(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	h.cpu.Power(on)
	if on {
		h.println("Power on.")
	} else {
		h.println("Power off.")
	}
	return nil
}

func (h *Host) cmdQuit(c cmd.Selection) error {
	return ErrQuit
}

func (h *Host) cmdRegisters(c cmd.Selection) error {
	h.displayPC()
	return nil
}

func (h *Host) cmdReset(c cmd.Selection) error {
	if !h.cpu.Powered() {
		h.println("CPU is powered off.")
		return nil
	}

	h.Reset()
	h.printf("Reset to $%04X.\n", h.cpu.Reg.PC)
	h.displayPC()
	return nil
}

func (h *Host) cmdRun(c cmd.Selection) error {
	var budget uint64
	if len(c.Args) > 0 {
		v, err := h.exprParser.Parse(c.Args[0], h)
		if err != nil || v < 0 {
			h.printf("invalid cycle count '%s'\n", c.Args[0])
			return nil
		}
		budget = uint64(v)
	}

	if !h.cpu.Powered() {
		h.println("CPU is powered off.")
		return nil
	}

	if budget == 0 {
		h.printf("Running from $%04X. Press ctrl-C to break.\n", h.cpu.Reg.PC)
	}

	h.setState(stateRunning)
	total := h.run(budget)
	h.setState(stateProcessingCommands)

	if h.cpu.Jammed {
		h.printf("CPU jammed at $%04X.\n", h.cpu.Reg.PC)
	}
	h.printf("Ran %d cycles.\n", total)
	h.displayPC()

	h.settings.NextDisasmAddr = h.cpu.Reg.PC
	return nil
}

// Run the CPU until the budget is consumed (0 means no limit), a
// breakpoint is hit, the CPU jams, or the user breaks in. With no enabled
// breakpoints and tracing off, the CPU runs in slices of RunChunkCycles.
func (h *Host) run(budget uint64) (total uint64) {
	for h.getState() == stateRunning && !h.cpu.Jammed {
		if budget > 0 && total >= budget {
			break
		}

		if h.settings.TraceMode || h.hasEnabledBreakpoints() {
			total += h.step()
			continue
		}

		chunk := max(h.settings.RunChunkCycles, 1)
		if budget > 0 {
			chunk = min(chunk, budget-total)
		}
		n := h.cpu.Run(chunk)
		h.cycles += n
		total += n
	}
	return total
}

func (h *Host) hasEnabledBreakpoints() bool {
	for _, b := range h.debugger.GetBreakpoints() {
		if !b.Disabled {
			return true
		}
	}
	for _, b := range h.debugger.GetDataBreakpoints() {
		if !b.Disabled {
			return true
		}
	}
	return false
}

func (h *Host) cmdSet(c cmd.Selection) error {
	switch len(c.Args) {
	case 0:
		h.println("Variables:")
		h.settings.Display(h.output)
		h.flush()
		return nil
	case 1:
		h.displayUsage(c.Command)
		return nil
	}

	key, value := strings.ToLower(c.Args[0]), strings.Join(c.Args[1:], " ")

	// Setting a status flag?
	if flag, ok := flagNames[key]; ok {
		on, err := stringToBool(value)
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		h.cpu.Reg.Set(flag, on)
		h.printf("Flag %s set to %v.\n", strings.ToUpper(key), on)
		return nil
	}

	v, errV := h.exprParser.Parse(value, h)

	// Setting a register?
	switch key {
	case "a", "x", "y", "sp", "pc", ".":
		if errV != nil {
			h.printf("%v\n", errV)
			return nil
		}
		switch key {
		case "a":
			h.cpu.Reg.A = byte(v)
		case "x":
			h.cpu.Reg.X = byte(v)
		case "y":
			h.cpu.Reg.Y = byte(v)
		case "sp":
			h.cpu.Reg.SP = byte(v)
		default:
			key = "pc"
			h.cpu.Reg.PC = uint16(v)
			h.settings.NextDisasmAddr = uint16(v)
		}
		if key == "pc" {
			h.printf("Register PC set to $%04X.\n", uint16(v))
		} else {
			h.printf("Register %s set to $%02X.\n", strings.ToUpper(key), byte(v))
		}
		return nil
	}

	// Setting a debugger setting?
	var err error
	switch h.settings.Kind(key) {
	case reflect.Invalid:
		err = fmt.Errorf("setting '%s' not found", key)
	case reflect.Bool:
		var on bool
		on, err = stringToBool(value)
		if err == nil {
			err = h.settings.Set(key, on)
		}
	default:
		err = errV
		if err == nil {
			err = h.settings.Set(key, v)
		}
	}

	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	h.println("Setting updated.")
	h.onSettingsUpdate()
	return nil
}

func (h *Host) cmdStepIn(c cmd.Selection) error {
	h.stepLoop(h.countArg(c, 0, 1), h.step)
	return nil
}

func (h *Host) cmdStepOver(c cmd.Selection) error {
	h.stepLoop(h.countArg(c, 0, 1), h.stepOver)
	return nil
}

// Call 'fn' count times, showing at most MaxStepLines of the trailing
// steps.
func (h *Host) stepLoop(count int, fn func() uint64) {
	if !h.cpu.Powered() {
		h.println("CPU is powered off.")
		return
	}

	h.setState(stateRunning)
	for i := count - 1; i >= 0 && h.getState() == stateRunning; i-- {
		fn()
		switch {
		case i == h.settings.MaxStepLines:
			h.println("...")
		case i < h.settings.MaxStepLines:
			h.displayPC()
		}
		if h.cpu.Jammed {
			h.printf("CPU jammed at $%04X.\n", h.cpu.Reg.PC)
			break
		}
	}
	h.setState(stateProcessingCommands)

	h.settings.NextDisasmAddr = h.cpu.Reg.PC
}

func (h *Host) cmdVectors(c cmd.Selection) error {
	h.printf("NMI   $FFFA -> $%04X\n", h.mem.LoadAddress(0xfffa))
	h.printf("RESET $FFFC -> $%04X\n", h.mem.LoadAddress(0xfffc))
	h.printf("IRQ   $FFFE -> $%04X\n", h.mem.LoadAddress(0xfffe))
	return nil
}

func (h *Host) step() uint64 {
	n := h.cpu.Step()
	h.cycles += n
	if h.settings.TraceMode && h.getState() == stateRunning {
		h.displayPC()
	}
	return n
}

// Step over the next instruction. A JSR runs until the CPU returns to the
// instruction following it, or until something else stops the host.
func (h *Host) stepOver() uint64 {
	inst := h.cpu.GetInstruction(h.cpu.Reg.PC)
	if inst.Name != "JSR" {
		return h.step()
	}

	next := h.cpu.Reg.PC + uint16(inst.Length)
	h.stepOverAddr = &next
	defer func() { h.stepOverAddr = nil }()

	var n uint64
	for h.getState() == stateRunning && !h.cpu.Jammed {
		n += h.step()
		if h.cpu.Reg.PC == next {
			break
		}
	}
	return n
}

func (h *Host) onSettingsUpdate() {
	h.exprParser.hexMode = h.settings.HexMode
}

func (h *Host) parseExpr(expr string) (uint16, error) {
	v, err := h.exprParser.Parse(expr, h)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}

func (h *Host) disassemble(addr uint16, flags displayFlags) (str string, next uint16) {
	var line string
	line, next = disasm.Disassemble(h.cpu, addr)

	str = fmt.Sprintf("%04X-   %-8s    %-15s", addr, disasm.GetCodeBytes(h.cpu, addr), line)

	if (flags & displayRegisters) != 0 {
		str += " " + disasm.GetRegisterString(&h.cpu.Reg)
	}

	if (flags & displayCycles) != 0 {
		str += fmt.Sprintf(" C=%d", h.cycles)
	}

	return str, next
}

func (h *Host) dumpMemory(addr0 uint16, bytes int) {
	addr1 := int(addr0) + bytes - 1
	if addr1 > 0xffff {
		addr1 = 0xffff
	}

	buf := []byte("    -" + strings.Repeat(" ", 35))
	var data [8]byte

	// Align the rows to 8-byte boundaries.
	for row := int(addr0) &^ 7; row <= addr1; row += 8 {
		addrToBuf(uint16(row), buf[0:4])
		h.mem.LoadBytes(uint16(row), data[:])
		for i, m := range data {
			a := row + i
			c1, c2 := 6+i*3, 32+i
			if a >= int(addr0) && a <= addr1 {
				byteToBuf(m, buf[c1:c1+2])
				buf[c2] = toPrintableChar(m)
			} else {
				buf[c1], buf[c1+1], buf[c2] = ' ', ' ', ' '
			}
		}
		h.println(strings.TrimRight(string(buf), " "))
	}
}

func (h *Host) resolveIdentifier(s string) (int64, error) {
	s = strings.ToLower(s)

	switch s {
	case "a":
		return int64(h.cpu.Reg.A), nil
	case "x":
		return int64(h.cpu.Reg.X), nil
	case "y":
		return int64(h.cpu.Reg.Y), nil
	case "sp":
		return int64(h.cpu.Reg.SP), nil
	case ".", "pc":
		return int64(h.cpu.Reg.PC), nil
	case "nmi":
		return int64(h.mem.LoadAddress(0xfffa)), nil
	case "reset":
		return int64(h.mem.LoadAddress(0xfffc)), nil
	case "irq", "brk":
		return int64(h.mem.LoadAddress(0xfffe)), nil
	}

	return 0, fmt.Errorf("identifier '%s' not found", s)
}
