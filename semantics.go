package go6502

// This file holds one routine per 6502 mnemonic. Each routine performs
// the bit-level effect on registers, memory, and flags described in the
// 6502 reference; none of them advance PC (Step does that) except the
// control-flow instructions that must redirect it (JMP, JSR, RTS, RTI,
// BRK, and any branch that is taken).

// ADC: add with carry. Decimal mode is never consulted -- the NES
// 6502 variant this core targets ignores it, and D is purely a
// carried-but-inert flag.
func (cpu *CPU) adc(inst *Instruction, operand []byte) {
	a := cpu.Reg.A
	v := cpu.load(inst.Mode, operand)
	sum := uint16(a) + uint16(v) + uint16(boolToByte(cpu.Reg.Carry))

	result := byte(sum)
	cpu.Reg.Carry = sum > 0xff
	cpu.Reg.Overflow = (a^result)&(v^result)&0x80 != 0
	cpu.Reg.A = result
	cpu.updateNZ(cpu.Reg.A)
}

// SBC: subtract with carry, defined as ADC of the operand's one's
// complement.
func (cpu *CPU) sbc(inst *Instruction, operand []byte) {
	a := cpu.Reg.A
	v := ^cpu.load(inst.Mode, operand)
	sum := uint16(a) + uint16(v) + uint16(boolToByte(cpu.Reg.Carry))

	result := byte(sum)
	cpu.Reg.Carry = sum > 0xff
	cpu.Reg.Overflow = (a^result)&(v^result)&0x80 != 0
	cpu.Reg.A = result
	cpu.updateNZ(cpu.Reg.A)
}

// AND: bitwise AND with the accumulator.
func (cpu *CPU) and(inst *Instruction, operand []byte) {
	cpu.Reg.A &= cpu.load(inst.Mode, operand)
	cpu.updateNZ(cpu.Reg.A)
}

// ORA: bitwise OR with the accumulator.
func (cpu *CPU) ora(inst *Instruction, operand []byte) {
	cpu.Reg.A |= cpu.load(inst.Mode, operand)
	cpu.updateNZ(cpu.Reg.A)
}

// EOR: bitwise XOR with the accumulator.
func (cpu *CPU) eor(inst *Instruction, operand []byte) {
	cpu.Reg.A ^= cpu.load(inst.Mode, operand)
	cpu.updateNZ(cpu.Reg.A)
}

// BIT: test accumulator bits against memory without storing a result.
func (cpu *CPU) bit(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand)
	cpu.Reg.Zero = v&cpu.Reg.A == 0
	cpu.Reg.Sign = v&0x80 != 0
	cpu.Reg.Overflow = v&0x40 != 0
}

// ASL: arithmetic shift left.
func (cpu *CPU) asl(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand)
	cpu.Reg.Carry = v&0x80 != 0
	v <<= 1
	cpu.updateNZ(v)
	cpu.store(inst.Mode, operand, v)
}

// LSR: logical shift right. The Sign flag is always cleared, since bit
// 7 of the result is always 0.
func (cpu *CPU) lsr(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand)
	cpu.Reg.Carry = v&1 != 0
	v >>= 1
	cpu.updateNZ(v)
	cpu.store(inst.Mode, operand, v)
}

// ROL: rotate left through carry.
func (cpu *CPU) rol(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand)
	carryIn := boolToByte(cpu.Reg.Carry)
	cpu.Reg.Carry = v&0x80 != 0
	v = (v << 1) | carryIn
	cpu.updateNZ(v)
	cpu.store(inst.Mode, operand, v)
}

// ROR: rotate right through carry.
func (cpu *CPU) ror(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand)
	carryIn := boolToByte(cpu.Reg.Carry)
	cpu.Reg.Carry = v&1 != 0
	v = (v >> 1) | (carryIn << 7)
	cpu.updateNZ(v)
	cpu.store(inst.Mode, operand, v)
}

// CMP, CPX, CPY: compare a register to an operand without storing the
// difference.
func (cpu *CPU) cmp(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand)
	cpu.Reg.Carry = cpu.Reg.A >= v
	cpu.updateNZ(cpu.Reg.A - v)
}

func (cpu *CPU) cpx(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand)
	cpu.Reg.Carry = cpu.Reg.X >= v
	cpu.updateNZ(cpu.Reg.X - v)
}

func (cpu *CPU) cpy(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand)
	cpu.Reg.Carry = cpu.Reg.Y >= v
	cpu.updateNZ(cpu.Reg.Y - v)
}

// INC, DEC: increment/decrement a memory location.
func (cpu *CPU) inc(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand) + 1
	cpu.updateNZ(v)
	cpu.store(inst.Mode, operand, v)
}

func (cpu *CPU) dec(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand) - 1
	cpu.updateNZ(v)
	cpu.store(inst.Mode, operand, v)
}

// INX, INY, DEX, DEY: increment/decrement an index register.
func (cpu *CPU) inx(inst *Instruction, operand []byte) {
	cpu.Reg.X++
	cpu.updateNZ(cpu.Reg.X)
}

func (cpu *CPU) iny(inst *Instruction, operand []byte) {
	cpu.Reg.Y++
	cpu.updateNZ(cpu.Reg.Y)
}

func (cpu *CPU) dex(inst *Instruction, operand []byte) {
	cpu.Reg.X--
	cpu.updateNZ(cpu.Reg.X)
}

func (cpu *CPU) dey(inst *Instruction, operand []byte) {
	cpu.Reg.Y--
	cpu.updateNZ(cpu.Reg.Y)
}

// LDA, LDX, LDY: load a register from memory.
func (cpu *CPU) lda(inst *Instruction, operand []byte) {
	cpu.Reg.A = cpu.load(inst.Mode, operand)
	cpu.updateNZ(cpu.Reg.A)
}

func (cpu *CPU) ldx(inst *Instruction, operand []byte) {
	cpu.Reg.X = cpu.load(inst.Mode, operand)
	cpu.updateNZ(cpu.Reg.X)
}

func (cpu *CPU) ldy(inst *Instruction, operand []byte) {
	cpu.Reg.Y = cpu.load(inst.Mode, operand)
	cpu.updateNZ(cpu.Reg.Y)
}

// STA, STX, STY: store a register to memory. Flags unchanged.
func (cpu *CPU) sta(inst *Instruction, operand []byte) {
	cpu.store(inst.Mode, operand, cpu.Reg.A)
}

func (cpu *CPU) stx(inst *Instruction, operand []byte) {
	cpu.store(inst.Mode, operand, cpu.Reg.X)
}

func (cpu *CPU) sty(inst *Instruction, operand []byte) {
	cpu.store(inst.Mode, operand, cpu.Reg.Y)
}

// TAX, TAY, TXA, TYA, TSX: register transfers that update Z/N on the
// destination.
func (cpu *CPU) tax(inst *Instruction, operand []byte) {
	cpu.Reg.X = cpu.Reg.A
	cpu.updateNZ(cpu.Reg.X)
}

func (cpu *CPU) tay(inst *Instruction, operand []byte) {
	cpu.Reg.Y = cpu.Reg.A
	cpu.updateNZ(cpu.Reg.Y)
}

func (cpu *CPU) txa(inst *Instruction, operand []byte) {
	cpu.Reg.A = cpu.Reg.X
	cpu.updateNZ(cpu.Reg.A)
}

func (cpu *CPU) tya(inst *Instruction, operand []byte) {
	cpu.Reg.A = cpu.Reg.Y
	cpu.updateNZ(cpu.Reg.A)
}

func (cpu *CPU) tsx(inst *Instruction, operand []byte) {
	cpu.Reg.X = cpu.Reg.SP
	cpu.updateNZ(cpu.Reg.X)
}

// TXS: transfer X to SP. Flags are never touched by this instruction.
func (cpu *CPU) txs(inst *Instruction, operand []byte) {
	cpu.Reg.SP = cpu.Reg.X
}

// Branch instructions. Each tests one flag predicate and, if it holds,
// resolves the Relative operand and redirects PC via branch, which also
// accounts for the taken/page-cross cycle penalties.
func (cpu *CPU) bpl(inst *Instruction, operand []byte) {
	if !cpu.Reg.Sign {
		cpu.branch(operand)
	}
}

func (cpu *CPU) bmi(inst *Instruction, operand []byte) {
	if cpu.Reg.Sign {
		cpu.branch(operand)
	}
}

func (cpu *CPU) bvc(inst *Instruction, operand []byte) {
	if !cpu.Reg.Overflow {
		cpu.branch(operand)
	}
}

func (cpu *CPU) bvs(inst *Instruction, operand []byte) {
	if cpu.Reg.Overflow {
		cpu.branch(operand)
	}
}

func (cpu *CPU) bcc(inst *Instruction, operand []byte) {
	if !cpu.Reg.Carry {
		cpu.branch(operand)
	}
}

func (cpu *CPU) bcs(inst *Instruction, operand []byte) {
	if cpu.Reg.Carry {
		cpu.branch(operand)
	}
}

func (cpu *CPU) bne(inst *Instruction, operand []byte) {
	if !cpu.Reg.Zero {
		cpu.branch(operand)
	}
}

func (cpu *CPU) beq(inst *Instruction, operand []byte) {
	if cpu.Reg.Zero {
		cpu.branch(operand)
	}
}

// JMP: unconditional jump, Absolute or Indirect.
func (cpu *CPU) jmp(inst *Instruction, operand []byte) {
	cpu.Reg.PC = cpu.loadAddress(inst.Mode, operand)
}

// JSR: push the address of the last byte of the JSR instruction, then
// jump to the target subroutine.
func (cpu *CPU) jsr(inst *Instruction, operand []byte) {
	target := cpu.loadAddress(inst.Mode, operand)
	cpu.pushAddress(cpu.Reg.PC - 1)
	cpu.Reg.PC = target
}

// RTS: pop a return address and resume just past it.
func (cpu *CPU) rts(inst *Instruction, operand []byte) {
	cpu.Reg.PC = cpu.popAddress() + 1
}

// BRK: software interrupt. Pushes PC+1, pushes P with the break bit
// set, disables interrupts, and loads PC from the IRQ/BRK vector. The
// run controller (Run/RunWithCallback/Interpret) intercepts opcode 0x00
// before it reaches this routine and halts instead; BRK's full interrupt
// semantics are only exercised via Step.
func (cpu *CPU) brk(inst *Instruction, operand []byte) {
	cpu.Reg.PC++ // skip the padding byte that follows the BRK opcode
	cpu.handleInterrupt(true, vectorBRK)
}

// RTI: return from interrupt. Restores P (discarding the break bit)
// then pops the saved PC.
func (cpu *CPU) rti(inst *Instruction, operand []byte) {
	cpu.Reg.RestorePS(cpu.pop())
	cpu.Reg.PC = cpu.popAddress()
}

// PHA, PLA: push/pop the accumulator.
func (cpu *CPU) pha(inst *Instruction, operand []byte) {
	cpu.push(cpu.Reg.A)
}

func (cpu *CPU) pla(inst *Instruction, operand []byte) {
	cpu.Reg.A = cpu.pop()
	cpu.updateNZ(cpu.Reg.A)
}

// PHP: push status with the break and unused bits forced set.
func (cpu *CPU) php(inst *Instruction, operand []byte) {
	cpu.push(cpu.Reg.SavePS(true))
}

// PLP: pop status, discarding the break bit (it has no live flag).
func (cpu *CPU) plp(inst *Instruction, operand []byte) {
	cpu.Reg.RestorePS(cpu.pop())
}

// Flag control: each instruction sets or clears exactly one flag.
func (cpu *CPU) clc(inst *Instruction, operand []byte) { cpu.Reg.Carry = false }
func (cpu *CPU) sec(inst *Instruction, operand []byte) { cpu.Reg.Carry = true }
func (cpu *CPU) cli(inst *Instruction, operand []byte) { cpu.Reg.InterruptDisable = false }
func (cpu *CPU) sei(inst *Instruction, operand []byte) { cpu.Reg.InterruptDisable = true }
func (cpu *CPU) cld(inst *Instruction, operand []byte) { cpu.Reg.Decimal = false }
func (cpu *CPU) sed(inst *Instruction, operand []byte) { cpu.Reg.Decimal = true }
func (cpu *CPU) clv(inst *Instruction, operand []byte) { cpu.Reg.Overflow = false }

// NOP: no effect beyond consuming cycles.
func (cpu *CPU) nop(inst *Instruction, operand []byte) {}
