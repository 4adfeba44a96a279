// Package host wraps a go6502.CPU in an interactive line-oriented shell:
// load a raw binary into memory, set execution and data breakpoints,
// single-step or free-run, disassemble and dump memory, and inspect or
// change registers. It is the "surrounding program" around the core
// go6502 package -- none of this is part of the CPU's own contract.
package host

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/beevik/cmd"
	"github.com/nmos6502/go6502"
	"github.com/nmos6502/go6502/disasm"
)

type hostState byte

const (
	stateProcessingCommands hostState = iota
	stateRunning
	stateBreakpoint
)

// Host ties a CPU, its memory, and an optional debugger to an
// interactive command loop.
type Host struct {
	input       *bufio.Scanner
	output      *bufio.Writer
	interactive bool

	mem      *go6502.FlatMemory
	cpu      *go6502.CPU
	debugger *go6502.Debugger

	lastCmd     *cmd.Selection
	state       hostState
	exprParser  *exprParser
	settings    *settings
	annotations map[uint16]string
}

// New creates a host with a fresh 64 KiB memory and a CPU attached to
// it, ready to load a program.
func New() *Host {
	h := &Host{
		mem:         go6502.NewFlatMemory(),
		exprParser:  newExprParser(),
		settings:    newSettings(),
		annotations: make(map[uint16]string),
	}
	h.cpu = go6502.NewCPU(h.mem)
	h.debugger = go6502.NewDebugger(newDebugHandler(h))
	h.cpu.AttachDebugger(h.debugger)
	return h
}

var cmds *cmd.Tree

func init() {
	cmds = cmd.NewTree("go6502", []cmd.Command{
		{
			Name:     "help",
			Shortcut: "?",
			Brief:    "Display help",
			HelpText: "help [<command>]",
			Data:     (*Host).cmdHelp,
		},
		{
			Name:     "annotate",
			Brief:    "Annotate an address",
			HelpText: "annotate <address> <string>",
			Description: "Attach a comment to a memory address. The comment is" +
				" displayed whenever that address is disassembled.",
			Data: (*Host).cmdAnnotate,
		},
		{
			Name:  "breakpoint",
			Brief: "Breakpoint commands",
			Shortcut: "b",
			Subcommands: cmd.NewTree("Breakpoint", []cmd.Command{
				{Name: "list", Brief: "List breakpoints", HelpText: "breakpoint list", Data: (*Host).cmdBreakpointList},
				{Name: "add", Brief: "Add a breakpoint", HelpText: "breakpoint add <address>", Data: (*Host).cmdBreakpointAdd},
				{Name: "remove", Brief: "Remove a breakpoint", HelpText: "breakpoint remove <address>", Data: (*Host).cmdBreakpointRemove},
				{Name: "enable", Brief: "Enable a breakpoint", HelpText: "breakpoint enable <address>", Data: (*Host).cmdBreakpointEnable},
				{Name: "disable", Brief: "Disable a breakpoint", HelpText: "breakpoint disable <address>", Data: (*Host).cmdBreakpointDisable},
			}),
		},
		{
			Name:     "databreakpoint",
			Shortcut: "db",
			Brief:    "Data breakpoint commands",
			Subcommands: cmd.NewTree("Data breakpoint", []cmd.Command{
				{Name: "list", Brief: "List data breakpoints", HelpText: "databreakpoint list", Data: (*Host).cmdDataBreakpointList},
				{Name: "add", Brief: "Add a data breakpoint", HelpText: "databreakpoint add <address> [<value>]", Data: (*Host).cmdDataBreakpointAdd},
				{Name: "remove", Brief: "Remove a data breakpoint", HelpText: "databreakpoint remove <address>", Data: (*Host).cmdDataBreakpointRemove},
				{Name: "enable", Brief: "Enable a data breakpoint", HelpText: "databreakpoint enable <address>", Data: (*Host).cmdDataBreakpointEnable},
				{Name: "disable", Brief: "Disable a data breakpoint", HelpText: "databreakpoint disable <address>", Data: (*Host).cmdDataBreakpointDisable},
			}),
		},
		{
			Name:     "disassemble",
			Shortcut: "d",
			Brief:    "Disassemble code",
			HelpText: "disassemble [<address>] [<lines>]",
			Data:     (*Host).cmdDisassemble,
		},
		{
			Name:     "evaluate",
			Shortcut: "e",
			Brief:    "Evaluate an expression",
			HelpText: "evaluate <expression>",
			Data:     (*Host).cmdEvaluate,
		},
		{
			Name:     "load",
			Brief:    "Load a raw binary file into memory",
			HelpText: "load <filename> <address>",
			Data:     (*Host).cmdLoad,
		},
		{
			Name:  "memory",
			Brief: "Memory commands",
			Subcommands: cmd.NewTree("Memory", []cmd.Command{
				{Name: "dump", Brief: "Dump memory at address", HelpText: "memory dump [<address>] [<bytes>]", Data: (*Host).cmdMemoryDump},
			}),
		},
		{
			Name:     "quit",
			Shortcut: "q",
			Brief:    "Quit",
			HelpText: "quit",
			Data:     (*Host).cmdQuit,
		},
		{
			Name:     "registers",
			Shortcut: "r",
			Brief:    "Display register contents",
			HelpText: "registers",
			Data:     (*Host).cmdRegisters,
		},
		{
			Name:     "reset",
			Brief:    "Reset the CPU",
			HelpText: "reset",
			Data:     (*Host).cmdReset,
		},
		{
			Name:     "run",
			Brief:    "Run the CPU",
			HelpText: "run [<address>]",
			Data:     (*Host).cmdRun,
		},
		{
			Name:     "set",
			Brief:    "Set a register or host setting",
			HelpText: "set [<name> <value>]",
			Data:     (*Host).cmdSet,
		},
		{
			Name:     "step",
			Shortcut: "s",
			Brief:    "Step one or more instructions",
			HelpText: "step [<count>]",
			Data:     (*Host).cmdStep,
		},
		{
			Name:     "stepover",
			Shortcut: "so",
			Brief:    "Step over a subroutine call",
			HelpText: "stepover [<count>]",
			Data:     (*Host).cmdStepOver,
		},
	})
}

// RunCommands reads lines from r and executes them as commands,
// writing output to w. If interactive is true, a prompt and the
// current disassembly line are displayed between commands.
func (h *Host) RunCommands(r io.Reader, w io.Writer, interactive bool) {
	h.input = bufio.NewScanner(r)
	h.output = bufio.NewWriter(w)
	h.interactive = interactive

	if interactive {
		h.println()
	}
	h.displayPC()

	for {
		h.prompt()

		line, err := h.getLine()
		if err != nil {
			break
		}

		var c cmd.Selection
		if line != "" {
			c, err = cmds.Lookup(line)
			switch {
			case errors.Is(err, cmd.ErrNotFound):
				h.println("Command not found.")
				continue
			case errors.Is(err, cmd.ErrAmbiguous):
				h.println("Command is ambiguous.")
				continue
			case err != nil:
				h.printf("ERROR: %v.\n", err)
				continue
			}
		} else if h.lastCmd != nil {
			c = *h.lastCmd
		}

		if c.Command == nil {
			continue
		}
		h.lastCmd = &c

		handler := c.Command.Data.(func(*Host, cmd.Selection) error)
		if err := handler(h, c); err != nil {
			break
		}
	}
}

// Break interrupts a running CPU, e.g. in response to a host Ctrl-C.
func (h *Host) Break() {
	h.println()
	if h.state == stateRunning {
		h.displayPC()
	}
	h.state = stateProcessingCommands
	h.prompt()
}

func (h *Host) printf(format string, args ...any) {
	fmt.Fprintf(h.output, format, args...)
	h.output.Flush()
}

func (h *Host) println(args ...any) {
	fmt.Fprintln(h.output, args...)
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
	if h.interactive {
		line, _ := h.disassemble(h.cpu.Reg.PC, displayAll)
		h.println(line)
	}
}

type displayFlags byte

const (
	displayRegisters displayFlags = 1 << iota
	displayCycles
	displayAnnotations
	displayAll = displayRegisters | displayCycles | displayAnnotations
)

func (h *Host) disassemble(addr uint16, flags displayFlags) (line string, next uint16) {
	line, next = disasm.Disassemble(h.mem, addr)

	b := make([]byte, next-addr)
	h.mem.LoadBytes(addr, b)
	line = fmt.Sprintf("%04X-   %-8s    %-15s", addr, codeString(b), line)

	if flags&displayRegisters != 0 {
		line += " " + registerString(&h.cpu.Reg)
	}
	if flags&displayCycles != 0 {
		line += fmt.Sprintf(" C=%-10d", h.cpu.Cycles)
	}
	if flags&displayAnnotations != 0 {
		if a, ok := h.annotations[addr]; ok {
			line += " ; " + a
		}
	}
	return line, next
}

func registerString(r *go6502.Registers) string {
	return fmt.Sprintf("A=%02X X=%02X Y=%02X SP=%02X PC=%04X %s",
		r.A, r.X, r.Y, r.SP, r.PC, flagString(r))
}

func flagString(r *go6502.Registers) string {
	flags := [...]struct {
		set  bool
		char byte
	}{
		{r.Sign, 'N'}, {r.Overflow, 'V'}, {r.Decimal, 'D'},
		{r.InterruptDisable, 'I'}, {r.Zero, 'Z'}, {r.Carry, 'C'},
	}
	buf := make([]byte, len(flags))
	for i, f := range flags {
		if f.set {
			buf[i] = f.char
		} else {
			buf[i] = '-'
		}
	}
	return string(buf)
}

func (h *Host) dumpMemory(addr0, count uint16) {
	if count == 0 {
		return
	}
	addr1 := addr0 + count - 1

	start := addr0 &^ 7
	for a := start; a <= addr1; a += 8 {
		line := fmt.Sprintf("%04X- ", a)
		var chars [8]byte
		for i := uint16(0); i < 8; i++ {
			addr := a + i
			if addr < addr0 || addr > addr1 {
				line += "   "
				chars[i] = ' '
				continue
			}
			v := h.mem.LoadByte(addr)
			line += fmt.Sprintf(" %02X", v)
			chars[i] = toPrintableChar(v)
		}
		h.println(line + "  " + string(chars[:]))
		if a > 0xfff8 {
			break
		}
	}
}

func (h *Host) parseExpr(expr string) (uint16, error) {
	v, err := h.exprParser.Parse(expr, h)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}

func (h *Host) resolveIdentifier(s string) (int64, error) {
	switch strings.ToLower(s) {
	case "a":
		return int64(h.cpu.Reg.A), nil
	case "x":
		return int64(h.cpu.Reg.X), nil
	case "y":
		return int64(h.cpu.Reg.Y), nil
	case "sp":
		return int64(h.cpu.Reg.SP) | 0x0100, nil
	case ".", "pc":
		return int64(h.cpu.Reg.PC), nil
	}
	for addr, name := range h.annotations {
		if strings.EqualFold(name, s) {
			return int64(addr), nil
		}
	}
	return 0, fmt.Errorf("identifier %q not found", s)
}

func (h *Host) displayHelpText(c *cmd.Command) {
	if c.HelpText != "" {
		h.printf("Syntax: %s\n", c.HelpText)
	} else {
		h.println("<no help text>")
	}
}

func (h *Host) displayCommands(commands *cmd.Tree) {
	h.printf("%s commands:\n", commands.Title)
	for _, c := range commands.Commands {
		if c.Brief != "" {
			h.printf("    %-15s  %s\n", c.Name, c.Brief)
		}
	}
}

//
// command handlers
//

func (h *Host) cmdHelp(c cmd.Selection) error {
	if len(c.Args) == 0 {
		h.displayCommands(cmds)
		return nil
	}
	s, err := cmds.Lookup(strings.Join(c.Args, " "))
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}
	if s.Command.Subcommands != nil {
		h.displayCommands(s.Command.Subcommands)
		return nil
	}
	h.displayHelpText(s.Command)
	if s.Command.Description != "" {
		h.printf("\n%s\n", s.Command.Description)
	}
	return nil
}

func (h *Host) cmdAnnotate(c cmd.Selection) error {
	if len(c.Args) < 2 {
		h.displayHelpText(c.Command)
		return nil
	}
	addr, err := h.parseExpr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}
	h.annotations[addr] = strings.Join(c.Args[1:], " ")
	return nil
}

func (h *Host) cmdBreakpointList(c cmd.Selection) error {
	for _, b := range h.debugger.GetBreakpoints() {
		state := "enabled"
		if b.Disabled {
			state = "disabled"
		}
		h.printf("Breakpoint %04X (%s)\n", b.Address, state)
	}
	return nil
}

func (h *Host) cmdBreakpointAdd(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayHelpText(c.Command)
		return nil
	}
	addr, err := h.parseExpr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}
	h.debugger.AddBreakpoint(addr)
	h.printf("Breakpoint added at $%04X.\n", addr)
	return nil
}

func (h *Host) cmdBreakpointRemove(c cmd.Selection) error {
	return h.withBreakpointAddress(c, func(addr uint16) {
		h.debugger.RemoveBreakpoint(addr)
		h.printf("Breakpoint at $%04X removed.\n", addr)
	})
}

func (h *Host) cmdBreakpointEnable(c cmd.Selection) error {
	return h.withBreakpointAddress(c, func(addr uint16) {
		if b := h.debugger.GetBreakpoint(addr); b != nil {
			b.Disabled = false
		}
	})
}

func (h *Host) cmdBreakpointDisable(c cmd.Selection) error {
	return h.withBreakpointAddress(c, func(addr uint16) {
		if b := h.debugger.GetBreakpoint(addr); b != nil {
			b.Disabled = true
		}
	})
}

func (h *Host) withBreakpointAddress(c cmd.Selection, fn func(addr uint16)) error {
	if len(c.Args) < 1 {
		h.displayHelpText(c.Command)
		return nil
	}
	addr, err := h.parseExpr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}
	fn(addr)
	return nil
}

func (h *Host) cmdDataBreakpointList(c cmd.Selection) error {
	for _, b := range h.debugger.GetDataBreakpoints() {
		state := "enabled"
		if b.Disabled {
			state = "disabled"
		}
		if b.Conditional {
			h.printf("Data breakpoint %04X == $%02X (%s)\n", b.Address, b.Value, state)
		} else {
			h.printf("Data breakpoint %04X (%s)\n", b.Address, state)
		}
	}
	return nil
}

func (h *Host) cmdDataBreakpointAdd(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayHelpText(c.Command)
		return nil
	}
	addr, err := h.parseExpr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}
	if len(c.Args) >= 2 {
		v, err := h.parseExpr(c.Args[1])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		h.debugger.AddConditionalDataBreakpoint(addr, byte(v))
	} else {
		h.debugger.AddDataBreakpoint(addr)
	}
	h.printf("Data breakpoint added at $%04X.\n", addr)
	return nil
}

func (h *Host) cmdDataBreakpointRemove(c cmd.Selection) error {
	return h.withBreakpointAddress(c, func(addr uint16) {
		h.debugger.RemoveDataBreakpoint(addr)
	})
}

func (h *Host) cmdDataBreakpointEnable(c cmd.Selection) error {
	return h.withBreakpointAddress(c, func(addr uint16) {
		if b := h.debugger.GetDataBreakpoint(addr); b != nil {
			b.Disabled = false
		}
	})
}

func (h *Host) cmdDataBreakpointDisable(c cmd.Selection) error {
	return h.withBreakpointAddress(c, func(addr uint16) {
		if b := h.debugger.GetDataBreakpoint(addr); b != nil {
			b.Disabled = true
		}
	})
}

func (h *Host) cmdDisassemble(c cmd.Selection) error {
	addr := h.settings.NextDisasmAddr
	if len(c.Args) > 0 {
		a, err := h.parseExpr(c.Args[0])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		addr = a
	}

	lines := h.settings.DisasmLinesToDisplay
	if len(c.Args) > 1 {
		l, err := h.parseExpr(c.Args[1])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		lines = int(l)
	}

	for i := 0; i < lines; i++ {
		line, next := h.disassemble(addr, displayAnnotations)
		h.println(line)
		addr = next
	}
	h.settings.NextDisasmAddr = addr
	return nil
}

func (h *Host) cmdEvaluate(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayHelpText(c.Command)
		return nil
	}
	v, err := h.parseExpr(strings.Join(c.Args, " "))
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}
	h.printf("$%04X\n", v)
	return nil
}

func (h *Host) cmdLoad(c cmd.Selection) error {
	if len(c.Args) < 2 {
		h.displayHelpText(c.Command)
		return nil
	}

	data, err := os.ReadFile(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	addr, err := h.parseExpr(c.Args[1])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	if err := h.cpu.LoadProgram(data, addr); err != nil {
		h.printf("%v\n", err)
		return nil
	}

	h.printf("Loaded %d bytes at $%04X.\n", len(data), addr)
	h.settings.NextDisasmAddr = h.cpu.Reg.PC
	h.displayPC()
	return nil
}

func (h *Host) cmdMemoryDump(c cmd.Selection) error {
	addr := h.settings.NextMemDumpAddr
	if len(c.Args) > 0 {
		a, err := h.parseExpr(c.Args[0])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		addr = a
	}

	count := uint16(h.settings.MemDumpBytes)
	if len(c.Args) > 1 {
		n, err := h.parseExpr(c.Args[1])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		count = n
	}

	h.dumpMemory(addr, count)
	h.settings.NextMemDumpAddr = addr + count
	return nil
}

func (h *Host) cmdQuit(c cmd.Selection) error {
	return errors.New("exiting")
}

func (h *Host) cmdRegisters(c cmd.Selection) error {
	h.println(registerString(&h.cpu.Reg))
	return nil
}

func (h *Host) cmdReset(c cmd.Selection) error {
	h.cpu.Reset()
	h.settings.NextDisasmAddr = h.cpu.Reg.PC
	h.displayPC()
	return nil
}

func (h *Host) cmdRun(c cmd.Selection) error {
	if len(c.Args) > 0 {
		addr, err := h.parseExpr(c.Args[0])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		h.cpu.SetPC(addr)
	}

	h.printf("Running from $%04X. Press ctrl-C to break.\n", h.cpu.Reg.PC)
	h.state = stateRunning

	// The loop lives here, not inside cpu.Run, so that a concurrent call
	// to Break (e.g. from a Ctrl-C signal handler) can flip h.state and
	// stop execution between instructions.
	for h.state == stateRunning {
		if h.mem.LoadByte(h.cpu.Reg.PC) == 0x00 {
			h.state = stateProcessingCommands
			break
		}
		if err := h.stepChecked(); err != nil {
			h.printf("%v\n", err)
			h.state = stateProcessingCommands
			break
		}
	}
	h.settings.NextDisasmAddr = h.cpu.Reg.PC
	return nil
}

func (h *Host) stepChecked() (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()
	h.cpu.Step()
	return nil
}

func (h *Host) cmdSet(c cmd.Selection) error {
	if len(c.Args) == 0 {
		h.settings.Display(h.output)
		h.output.Flush()
		return nil
	}
	if len(c.Args) == 1 {
		h.displayHelpText(c.Command)
		return nil
	}

	key, value := strings.ToLower(c.Args[0]), strings.Join(c.Args[1:], " ")

	if v, err := h.exprParser.Parse(value, h); err == nil {
		if h.setRegister(key, v) {
			return nil
		}
	}

	switch h.settings.Kind(key) {
	case reflect.Invalid:
		h.printf("Setting %q not found.\n", key)
	case reflect.Bool:
		v, err := stringToBool(value)
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		if err := h.settings.Set(key, v); err != nil {
			h.printf("%v\n", err)
			return nil
		}
		h.println("Setting updated.")
	default:
		v, err := h.exprParser.Parse(value, h)
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		if err := h.settings.Set(key, v); err != nil {
			h.printf("%v\n", err)
			return nil
		}
		h.println("Setting updated.")
	}
	return nil
}

// setRegister assigns v to the named CPU register or flag, reporting
// whether key named one.
func (h *Host) setRegister(key string, v int64) bool {
	switch key {
	case "a":
		h.cpu.Reg.A = byte(v)
	case "x":
		h.cpu.Reg.X = byte(v)
	case "y":
		h.cpu.Reg.Y = byte(v)
	case "sp":
		h.cpu.Reg.SP = byte(v)
	case ".", "pc":
		h.cpu.Reg.PC = uint16(v)
	case "carry":
		h.cpu.Reg.Carry = v != 0
	case "zero":
		h.cpu.Reg.Zero = v != 0
	case "interrupt":
		h.cpu.Reg.InterruptDisable = v != 0
	case "decimal":
		h.cpu.Reg.Decimal = v != 0
	case "overflow":
		h.cpu.Reg.Overflow = v != 0
	case "sign":
		h.cpu.Reg.Sign = v != 0
	default:
		return false
	}
	h.printf("Register %s set to $%X.\n", strings.ToUpper(key), v)
	return true
}

func (h *Host) cmdStep(c cmd.Selection) error {
	count := 1
	if len(c.Args) > 0 {
		if n, err := h.parseExpr(c.Args[0]); err == nil {
			count = int(n)
		}
	}

	h.state = stateRunning
	for i := 0; i < count && h.state == stateRunning; i++ {
		if err := h.stepChecked(); err != nil {
			h.printf("%v\n", err)
			break
		}
		if i >= count-h.settings.StepLinesToDisplay {
			h.displayPC()
		}
	}
	h.state = stateProcessingCommands
	h.settings.NextDisasmAddr = h.cpu.Reg.PC
	return nil
}

// cmdStepOver steps one instruction, but if it is a JSR, runs until
// control returns to the instruction after it rather than descending
// into the subroutine.
func (h *Host) cmdStepOver(c cmd.Selection) error {
	count := 1
	if len(c.Args) > 0 {
		if n, err := h.parseExpr(c.Args[0]); err == nil {
			count = int(n)
		}
	}

	h.state = stateRunning
	for i := 0; i < count && h.state == stateRunning; i++ {
		pc := h.cpu.Reg.PC
		isJSR := h.mem.LoadByte(pc) == 0x20
		if err := h.stepChecked(); err != nil {
			h.printf("%v\n", err)
			break
		}
		if isJSR {
			returnAddr := pc + 3
			for h.cpu.Reg.PC != returnAddr && h.state == stateRunning {
				if err := h.stepChecked(); err != nil {
					h.printf("%v\n", err)
					break
				}
			}
		}
		if i >= count-h.settings.StepLinesToDisplay {
			h.displayPC()
		}
	}
	h.state = stateProcessingCommands
	h.settings.NextDisasmAddr = h.cpu.Reg.PC
	return nil
}

func (h *Host) onBreakpoint(cpu *go6502.CPU, b *go6502.Breakpoint) {
	h.state = stateBreakpoint
	h.printf("Breakpoint hit at $%04X.\n", b.Address)
	h.displayPC()
}

func (h *Host) onDataBreakpoint(cpu *go6502.CPU, b *go6502.DataBreakpoint) {
	h.state = stateBreakpoint
	h.printf("Data breakpoint hit on address $%04X.\n", b.Address)
	h.displayPC()
}
