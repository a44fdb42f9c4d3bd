// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import "github.com/beevik/cmd"

var cmds *cmd.Tree

// A command's name and brief description, as listed by "help".
type cmdSummary struct {
	name  string
	brief string
}

var cmdSummaries []cmdSummary

func addCommand(t *cmd.Tree, prefix string, d cmd.CommandDescriptor) {
	t.AddCommand(d)
	if d.Brief != "" {
		cmdSummaries = append(cmdSummaries, cmdSummary{prefix + d.Name, d.Brief})
	}
}

func init() {
	root := cmd.NewTree(cmd.TreeDescriptor{Name: "m6502"})
	addCommand(root, "", cmd.CommandDescriptor{
		Name:        "help",
		Description: "Display help for a command.",
		Usage:       "help [<command>]",
		Data:        (*Host).cmdHelp,
	})

	// Breakpoint commands
	bp := root.AddSubtree(cmd.TreeDescriptor{Name: "breakpoint", Brief: "Breakpoint commands"})
	addCommand(bp, "breakpoint ", cmd.CommandDescriptor{
		Name:        "list",
		Brief:       "List breakpoints",
		Description: "List all current breakpoints.",
		Usage:       "breakpoint list",
		Data:        (*Host).cmdBreakpointList,
	})
	addCommand(bp, "breakpoint ", cmd.CommandDescriptor{
		Name:        "add",
		Brief:       "Add a breakpoint",
		Description: "Add a breakpoint at the specified address. The breakpoint starts enabled.",
		Usage:       "breakpoint add <address>",
		Data:        (*Host).cmdBreakpointAdd,
	})
	addCommand(bp, "breakpoint ", cmd.CommandDescriptor{
		Name:        "remove",
		Brief:       "Remove a breakpoint",
		Description: "Remove a breakpoint at the specified address.",
		Usage:       "breakpoint remove <address>",
		Data:        (*Host).cmdBreakpointRemove,
	})
	addCommand(bp, "breakpoint ", cmd.CommandDescriptor{
		Name:        "enable",
		Brief:       "Enable a breakpoint",
		Description: "Enable a previously added breakpoint.",
		Usage:       "breakpoint enable <address>",
		Data:        (*Host).cmdBreakpointEnable,
	})
	addCommand(bp, "breakpoint ", cmd.CommandDescriptor{
		Name:  "disable",
		Brief: "Disable a breakpoint",
		Description: "Disable a previously added breakpoint. This prevents" +
			" the breakpoint from being hit when running the CPU.",
		Usage: "breakpoint disable <address>",
		Data:  (*Host).cmdBreakpointDisable,
	})

	// Data breakpoint commands
	db := root.AddSubtree(cmd.TreeDescriptor{Name: "databreakpoint", Brief: "Data breakpoint commands"})
	addCommand(db, "databreakpoint ", cmd.CommandDescriptor{
		Name:        "list",
		Brief:       "List data breakpoints",
		Description: "List all current data breakpoints.",
		Usage:       "databreakpoint list",
		Data:        (*Host).cmdDataBreakpointList,
	})
	addCommand(db, "databreakpoint ", cmd.CommandDescriptor{
		Name:  "add",
		Brief: "Add a data breakpoint",
		Description: "Add a data breakpoint at the specified address. When" +
			" the CPU writes to this address over the bus, execution stops." +
			" If a byte value is given, execution stops only when that value" +
			" is written.",
		Usage: "databreakpoint add <address> [<value>]",
		Data:  (*Host).cmdDataBreakpointAdd,
	})
	addCommand(db, "databreakpoint ", cmd.CommandDescriptor{
		Name:        "remove",
		Brief:       "Remove a data breakpoint",
		Description: "Remove the data breakpoint at the specified address.",
		Usage:       "databreakpoint remove <address>",
		Data:        (*Host).cmdDataBreakpointRemove,
	})
	addCommand(db, "databreakpoint ", cmd.CommandDescriptor{
		Name:        "enable",
		Brief:       "Enable a data breakpoint",
		Description: "Enable a previously added data breakpoint.",
		Usage:       "databreakpoint enable <address>",
		Data:        (*Host).cmdDataBreakpointEnable,
	})
	addCommand(db, "databreakpoint ", cmd.CommandDescriptor{
		Name:        "disable",
		Brief:       "Disable a data breakpoint",
		Description: "Disable a previously added data breakpoint.",
		Usage:       "databreakpoint disable <address>",
		Data:        (*Host).cmdDataBreakpointDisable,
	})

	addCommand(root, "", cmd.CommandDescriptor{
		Name:  "disassemble",
		Brief: "Disassemble code",
		Description: "Disassemble machine code starting at the requested" +
			" address. Use '.' for the program counter and '$' to continue" +
			" from the last disassembly. The number of lines may be given.",
		Usage: "disassemble [<address>] [<lines>]",
		Data:  (*Host).cmdDisassemble,
	})
	addCommand(root, "", cmd.CommandDescriptor{
		Name:        "evaluate",
		Brief:       "Evaluate an expression",
		Description: "Evaluate an address expression and display the result.",
		Usage:       "evaluate <expression>",
		Data:        (*Host).cmdEval,
	})
	addCommand(root, "", cmd.CommandDescriptor{
		Name:  "irq",
		Brief: "Drive the IRQ line",
		Description: "Assert or release the level-sensitive IRQ line. While" +
			" asserted and unmasked, the CPU takes an interrupt at every" +
			" instruction boundary.",
		Usage: "irq on|off",
		Data:  (*Host).cmdIRQ,
	})
	addCommand(root, "", cmd.CommandDescriptor{
		Name:  "load",
		Brief: "Load a binary file",
		Description: "Load the raw contents of a binary file into memory at" +
			" the specified address.",
		Usage: "load <filename> <address>",
		Data:  (*Host).cmdLoad,
	})

	// Memory commands
	mem := root.AddSubtree(cmd.TreeDescriptor{Name: "memory", Brief: "Memory commands"})
	addCommand(mem, "memory ", cmd.CommandDescriptor{
		Name:  "dump",
		Brief: "Dump memory at address",
		Description: "Dump the contents of memory starting from the" +
			" specified address. The number of bytes to dump may be" +
			" specified as an option.",
		Usage: "memory dump [<address>] [<bytes>]",
		Data:  (*Host).cmdMemoryDump,
	})
	addCommand(mem, "memory ", cmd.CommandDescriptor{
		Name:        "set",
		Brief:       "Set memory at address",
		Description: "Store one or more byte values starting at the specified address.",
		Usage:       "memory set <address> <byte> [<byte> ...]",
		Data:        (*Host).cmdMemorySet,
	})

	addCommand(root, "", cmd.CommandDescriptor{
		Name:        "nmi",
		Brief:       "Signal a non-maskable interrupt",
		Description: "Pulse the NMI line. The CPU services it once at the next instruction boundary.",
		Usage:       "nmi",
		Data:        (*Host).cmdNMI,
	})
	addCommand(root, "", cmd.CommandDescriptor{
		Name:  "power",
		Brief: "Switch the CPU power",
		Description: "Turn the CPU off or on. A powered-off CPU executes" +
			" nothing. Turning it on does not reset it.",
		Usage: "power on|off",
		Data:  (*Host).cmdPower,
	})
	addCommand(root, "", cmd.CommandDescriptor{
		Name:        "quit",
		Brief:       "Quit the program",
		Description: "Quit the program.",
		Usage:       "quit",
		Data:        (*Host).cmdQuit,
	})
	addCommand(root, "", cmd.CommandDescriptor{
		Name:  "registers",
		Brief: "Display register contents",
		Description: "Display the current contents of all CPU registers, and" +
			" disassemble the instruction at the current program counter.",
		Usage: "registers",
		Data:  (*Host).cmdRegisters,
	})
	addCommand(root, "", cmd.CommandDescriptor{
		Name:  "reset",
		Brief: "Reset the CPU",
		Description: "Pulse the RESET line. The program counter is loaded" +
			" from the reset vector at $FFFC.",
		Usage: "reset",
		Data:  (*Host).cmdReset,
	})
	addCommand(root, "", cmd.CommandDescriptor{
		Name:  "run",
		Brief: "Run the CPU",
		Description: "Run the CPU until a breakpoint is hit, the CPU jams," +
			" or the user types Ctrl-C. If a cycle count is given, stop once" +
			" at least that many cycles have run.",
		Usage: "run [<cycles>]",
		Data:  (*Host).cmdRun,
	})
	addCommand(root, "", cmd.CommandDescriptor{
		Name:  "set",
		Brief: "Set a register or configuration variable",
		Description: "Set the value of a CPU register (a, x, y, sp, pc)," +
			" a status flag (carry, zero, interrupt, decimal, overflow," +
			" negative) or a configuration variable. Type the set command" +
			" without arguments to display all configuration variables.",
		Usage: "set [<var> <value>]",
		Data:  (*Host).cmdSet,
	})

	// Step commands
	st := root.AddSubtree(cmd.TreeDescriptor{Name: "step", Brief: "Step the debugger"})
	addCommand(st, "step ", cmd.CommandDescriptor{
		Name:  "in",
		Brief: "Step into next instruction",
		Description: "Step the CPU by a single instruction. If the" +
			" instruction is a subroutine call, step into the subroutine." +
			" The number of steps may be specified as an option.",
		Usage: "step in [<count>]",
		Data:  (*Host).cmdStepIn,
	})
	addCommand(st, "step ", cmd.CommandDescriptor{
		Name:  "over",
		Brief: "Step over next instruction",
		Description: "Step the CPU by a single instruction. If the" +
			" instruction is a subroutine call, run until it returns." +
			" The number of steps may be specified as an option.",
		Usage: "step over [<count>]",
		Data:  (*Host).cmdStepOver,
	})

	addCommand(root, "", cmd.CommandDescriptor{
		Name:        "vectors",
		Brief:       "Display interrupt vectors",
		Description: "Display the NMI, RESET and IRQ/BRK vectors.",
		Usage:       "vectors",
		Data:        (*Host).cmdVectors,
	})

	// Add command shortcuts.
	root.AddShortcut("b", "breakpoint")
	root.AddShortcut("ba", "breakpoint add")
	root.AddShortcut("br", "breakpoint remove")
	root.AddShortcut("bl", "breakpoint list")
	root.AddShortcut("be", "breakpoint enable")
	root.AddShortcut("bd", "breakpoint disable")
	root.AddShortcut("d", "disassemble")
	root.AddShortcut("db", "databreakpoint")
	root.AddShortcut("dbl", "databreakpoint list")
	root.AddShortcut("dba", "databreakpoint add")
	root.AddShortcut("dbr", "databreakpoint remove")
	root.AddShortcut("dbe", "databreakpoint enable")
	root.AddShortcut("dbd", "databreakpoint disable")
	root.AddShortcut("e", "evaluate")
	root.AddShortcut("m", "memory dump")
	root.AddShortcut("ms", "memory set")
	root.AddShortcut("r", "registers")
	root.AddShortcut("s", "step over")
	root.AddShortcut("si", "step in")
	root.AddShortcut("?", "help")

	cmds = root
}
