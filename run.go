package go6502

// This file implements the run controller: the handful of entry
// points a host uses to load a program and execute it, layered on top
// of Step. None of it is required by Step itself -- a host that wants
// to single-step under its own loop can ignore this file entirely.

// maxProgramSize is the largest program that can ever fit, starting at
// base address 0.
const maxProgramSize = 0x10000

// Reset reinitializes all registers (including zeroing A, X, Y, and
// clearing every flag) and reloads PC from the reset vector at
// 0xfffc/0xfffd. Memory, including whatever program was previously
// loaded, is left untouched.
func (cpu *CPU) Reset() {
	cpu.Reg.Init()
	cpu.Cycles = 0
	cpu.reset()
}

// LoadProgram copies bytes into memory starting at base and points the
// reset vector at base, then calls Reset so PC begins executing there.
//
// It returns ErrEmptyProgram if bytes is empty, and a
// *ProgramTooLargeError if bytes does not fit in the address space
// starting at base.
func (cpu *CPU) LoadProgram(bytes []byte, base uint16) error {
	if len(bytes) == 0 {
		return ErrEmptyProgram
	}
	if len(bytes) > maxProgramSize-int(base) {
		return &ProgramTooLargeError{Base: base, Size: len(bytes)}
	}

	cpu.Mem.StoreBytes(base, bytes)
	cpu.Mem.StoreAddress(vectorReset, base)
	cpu.Reset()
	return nil
}

// Interpret loads bytes at address 0 and runs starting from PC=0 until
// PC advances past the end of bytes or a BRK is reached, without
// touching the reset vector. It exists so unit tests can exercise a
// short instruction sequence without the ceremony of LoadProgram's
// reset dance.
//
// It returns ErrEmptyProgram if bytes is empty, or an *UnknownOpcodeError
// if execution reaches an opcode with no dispatch table entry.
func (cpu *CPU) Interpret(bytes []byte) error {
	if len(bytes) == 0 {
		return ErrEmptyProgram
	}

	cpu.Mem.StoreBytes(0, bytes)
	cpu.Reg.PC = 0
	limit := uint16(len(bytes))

	for cpu.Reg.PC < limit {
		if cpu.Mem.LoadByte(cpu.Reg.PC) == 0x00 {
			return nil
		}
		if err := cpu.stepChecked(); err != nil {
			return err
		}
	}
	return nil
}

// Run executes instructions starting from the current PC until it
// reaches a BRK opcode or Step reports an *UnknownOpcodeError. BRK
// halts Run immediately, without consuming the byte or running the
// full interrupt sequence -- by convention a program ends execution
// with BRK rather than using it to enter a handler.
func (cpu *CPU) Run() error {
	return cpu.RunWithCallback(nil)
}

// RunWithCallback behaves like Run, but invokes cb(cpu) before every
// instruction, giving a host the chance to poll input, render a frame
// from memory, or request that the run stop. cb's only contract is
// that it returns in bounded time; if it needs to stop the machine, it
// should arrange for the next instruction at PC to be BRK, or track
// its own flag and simply stop calling RunWithCallback again on the
// next outer iteration.
func (cpu *CPU) RunWithCallback(cb func(cpu *CPU)) error {
	for {
		if cpu.Mem.LoadByte(cpu.Reg.PC) == 0x00 {
			return nil
		}
		if cb != nil {
			cb(cpu)
		}
		if err := cpu.stepChecked(); err != nil {
			return err
		}
	}
}

// stepChecked runs Step and converts its UnknownOpcodeError panic (the
// only panic Step ever raises) into a returned error.
func (cpu *CPU) stepChecked() (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()
	cpu.Step()
	return nil
}
