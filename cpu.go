// Package go6502 implements the core of a MOS 6502 CPU: registers, a
// flat 64 KiB address space, the addressing-mode resolver, flag
// arithmetic, the official NMOS instruction set, and the fetch-decode-
// execute loop that ties them together.
//
// The package intentionally has no opinion about what memory beyond
// plain RAM looks like, how a program is produced, or how the host
// wants to observe execution -- those are the surrounding program's
// job. A CPU exposes its registers, memory, and cycle counter directly,
// and has two extension points: a per-instruction callback (see
// RunWithCallback) and an attachable Debugger (see AttachDebugger).
package go6502

// CPU represents a single 6502 processor bound to a Memory
// implementation.
type CPU struct {
	Reg    Registers // CPU registers, including unpacked status flags
	Mem    Memory    // memory this CPU operates on
	Cycles uint64    // total cycles executed since creation or the last Reset

	// LastPC holds the program counter at the start of the most
	// recently executed instruction. It exists purely for tracing
	// (spec's "fetched_data" observability contract) and is not
	// consulted by any instruction semantic.
	LastPC uint16

	debugger    *Debugger
	pageCrossed bool
	deltaCycles int8
}

// Interrupt and reset vectors.
const (
	vectorNMI   = 0xfffa
	vectorReset = 0xfffc
	vectorIRQ   = 0xfffe
	vectorBRK   = 0xfffe
)

// NewCPU creates a 6502 CPU bound to the given memory. All registers
// start zeroed except SP, which starts at 0xff.
func NewCPU(m Memory) *CPU {
	cpu := &CPU{Mem: m}
	cpu.Reg.Init()
	return cpu
}

// SetPC updates the program counter directly, bypassing the reset
// vector. Used by test harnesses and by the host's "run from here"
// command.
func (cpu *CPU) SetPC(addr uint16) {
	cpu.Reg.PC = addr
}

// AttachDebugger attaches a debugger to the CPU. Once attached, the
// debugger is notified after every instruction (for execution
// breakpoints) and on every memory store (for data breakpoints).
func (cpu *CPU) AttachDebugger(d *Debugger) {
	cpu.debugger = d
}

// DetachDebugger removes any attached debugger.
func (cpu *CPU) DetachDebugger() {
	cpu.debugger = nil
}

// Step executes a single instruction: it fetches the opcode at PC,
// advances PC past the opcode and operand bytes (unless the
// instruction itself rewrote PC, e.g. JMP/JSR/RTS/RTI/BRK/a taken
// branch), dispatches to the mnemonic's semantic routine, and updates
// the cycle counter by the instruction's base cost plus any
// page-crossing or branch penalty.
//
// Step panics with an *UnknownOpcodeError if the opcode has no entry in
// the dispatch table -- there are no undocumented opcodes in scope.
func (cpu *CPU) Step() {
	opcode := cpu.Mem.LoadByte(cpu.Reg.PC)
	inst := &Instructions[opcode]
	if inst.fn == nil {
		panic(&UnknownOpcodeError{Opcode: opcode, PC: cpu.Reg.PC})
	}

	var buf [2]byte
	operand := buf[:inst.Length-1]
	cpu.Mem.LoadBytes(cpu.Reg.PC+1, operand)
	cpu.LastPC = cpu.Reg.PC
	cpu.Reg.PC += uint16(inst.Length)

	cpu.pageCrossed = false
	cpu.deltaCycles = 0
	inst.fn(cpu, inst, operand)

	cpu.Cycles += uint64(int8(inst.Cycles) + cpu.deltaCycles)
	if cpu.pageCrossed {
		cpu.Cycles += uint64(inst.BPCycles)
	}

	if cpu.debugger != nil {
		cpu.debugger.onStep(cpu, cpu.Reg.PC)
	}
}

// load reads an operand byte using the requested addressing mode. It
// never advances PC -- that is Step's responsibility.
func (cpu *CPU) load(mode Mode, operand []byte) byte {
	switch mode {
	case IMM:
		return operand[0]
	case ACC:
		return cpu.Reg.A
	case ZPG:
		return cpu.Mem.LoadByte(operandToAddress(operand))
	case ZPX:
		addr := offsetZeroPage(operandToAddress(operand), cpu.Reg.X)
		return cpu.Mem.LoadByte(addr)
	case ZPY:
		addr := offsetZeroPage(operandToAddress(operand), cpu.Reg.Y)
		return cpu.Mem.LoadByte(addr)
	case ABS:
		return cpu.Mem.LoadByte(operandToAddress(operand))
	case ABX:
		addr, crossed := offsetAddress(operandToAddress(operand), cpu.Reg.X)
		cpu.pageCrossed = crossed
		return cpu.Mem.LoadByte(addr)
	case ABY:
		addr, crossed := offsetAddress(operandToAddress(operand), cpu.Reg.Y)
		cpu.pageCrossed = crossed
		return cpu.Mem.LoadByte(addr)
	case IDX:
		zpaddr := offsetZeroPage(operandToAddress(operand), cpu.Reg.X)
		addr := cpu.Mem.LoadAddress(zpaddr)
		return cpu.Mem.LoadByte(addr)
	case IDY:
		zpaddr := operandToAddress(operand)
		base := cpu.Mem.LoadAddress(zpaddr)
		addr, crossed := offsetAddress(base, cpu.Reg.Y)
		cpu.pageCrossed = crossed
		return cpu.Mem.LoadByte(addr)
	default:
		panic("go6502: invalid addressing mode for load")
	}
}

// loadAddress resolves an effective 16-bit address for the Absolute and
// Indirect modes used by JMP.
func (cpu *CPU) loadAddress(mode Mode, operand []byte) uint16 {
	switch mode {
	case ABS:
		return operandToAddress(operand)
	case IND:
		return cpu.Mem.LoadAddress(operandToAddress(operand))
	default:
		panic("go6502: invalid addressing mode for loadAddress")
	}
}

// store writes v to the effective address of the requested addressing
// mode. For ACC mode, this writes to the accumulator directly.
func (cpu *CPU) store(mode Mode, operand []byte, v byte) {
	switch mode {
	case ACC:
		cpu.Reg.A = v
	case ZPG:
		cpu.storeByte(operandToAddress(operand), v)
	case ZPX:
		addr := offsetZeroPage(operandToAddress(operand), cpu.Reg.X)
		cpu.storeByte(addr, v)
	case ZPY:
		addr := offsetZeroPage(operandToAddress(operand), cpu.Reg.Y)
		cpu.storeByte(addr, v)
	case ABS:
		cpu.storeByte(operandToAddress(operand), v)
	case ABX:
		addr, crossed := offsetAddress(operandToAddress(operand), cpu.Reg.X)
		cpu.pageCrossed = crossed
		cpu.storeByte(addr, v)
	case ABY:
		addr, crossed := offsetAddress(operandToAddress(operand), cpu.Reg.Y)
		cpu.pageCrossed = crossed
		cpu.storeByte(addr, v)
	case IDX:
		zpaddr := offsetZeroPage(operandToAddress(operand), cpu.Reg.X)
		addr := cpu.Mem.LoadAddress(zpaddr)
		cpu.storeByte(addr, v)
	case IDY:
		zpaddr := operandToAddress(operand)
		base := cpu.Mem.LoadAddress(zpaddr)
		addr, crossed := offsetAddress(base, cpu.Reg.Y)
		cpu.pageCrossed = crossed
		cpu.storeByte(addr, v)
	default:
		panic("go6502: invalid addressing mode for store")
	}
}

func (cpu *CPU) storeByte(addr uint16, v byte) {
	cpu.Mem.StoreByte(addr, v)
	if cpu.debugger != nil {
		cpu.debugger.onStore(cpu, addr, v)
	}
}

// branch resolves the signed relative operand and, if taken, updates PC
// and adds the branch-taken and page-crossing cycle penalties.
func (cpu *CPU) branch(operand []byte) {
	offset := int8(operand[0])
	oldPC := cpu.Reg.PC
	cpu.Reg.PC = uint16(int32(cpu.Reg.PC) + int32(offset))

	cpu.deltaCycles++
	if (cpu.Reg.PC^oldPC)&0xff00 != 0 {
		cpu.deltaCycles++
	}
}

// push writes v to the stack and decrements SP.
func (cpu *CPU) push(v byte) {
	cpu.storeByte(stackAddress(cpu.Reg.SP), v)
	cpu.Reg.SP--
}

// pushAddress pushes a 16-bit value as two bytes: high byte first, then
// low byte, so that a matching popAddress reads the low byte first.
func (cpu *CPU) pushAddress(addr uint16) {
	cpu.push(byte(addr >> 8))
	cpu.push(byte(addr))
}

// pop increments SP and reads the resulting stack slot.
func (cpu *CPU) pop() byte {
	cpu.Reg.SP++
	return cpu.Mem.LoadByte(stackAddress(cpu.Reg.SP))
}

// popAddress pops a 16-bit value pushed by pushAddress: low byte first,
// then high byte.
func (cpu *CPU) popAddress() uint16 {
	lo := cpu.pop()
	hi := cpu.pop()
	return uint16(lo) | uint16(hi)<<8
}

// updateNZ sets the Zero and Sign (Negative) flags from v.
func (cpu *CPU) updateNZ(v byte) {
	cpu.Reg.Zero = v == 0
	cpu.Reg.Sign = v&0x80 != 0
}

// handleInterrupt pushes PC and the status register (with the break bit
// set as requested), sets the interrupt-disable flag, and loads PC from
// the given vector. It underlies both BRK and RTI's counterpart entry
// into an interrupt handler.
func (cpu *CPU) handleInterrupt(brk bool, vector uint16) {
	cpu.pushAddress(cpu.Reg.PC)
	cpu.push(cpu.Reg.SavePS(brk))
	cpu.Reg.InterruptDisable = true
	cpu.Reg.PC = cpu.Mem.LoadAddress(vector)
}

// reset loads PC from the reset vector at 0xfffc/0xfffd. Registers and
// cycles are left untouched by this low-level helper -- see Reset on
// the run controller for the full reset behavior.
func (cpu *CPU) reset() {
	cpu.Reg.PC = cpu.Mem.LoadAddress(vectorReset)
}
