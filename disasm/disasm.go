// Package disasm implements a disassembler for the 6502 instruction set
// modeled by the go6502 package.
package disasm

import (
	"fmt"

	"github.com/nmos6502/go6502"
)

// modeFormat gives the printf-style operand format for each addressing
// mode, indexed the same way go6502.Mode is.
var modeFormat = []string{
	"#$%s",    // IMM
	"%s",      // IMP
	"$%s",     // REL
	"%s",      // ACC
	"$%s",     // ZPG
	"$%s,X",   // ZPX
	"$%s,Y",   // ZPY
	"$%s",     // ABS
	"$%s,X",   // ABX
	"$%s,Y",   // ABY
	"($%s)",   // IND
	"($%s,X)", // IDX
	"($%s),Y", // IDY
}

var hexDigits = "0123456789ABCDEF"

// hexString renders b as a big-endian hexadecimal string -- so a
// little-endian 2-byte operand reads the way an assembly listing
// expects, high byte first.
func hexString(b []byte) string {
	buf := make([]byte, len(b)*2)
	j := len(buf) - 1
	for _, n := range b {
		buf[j] = hexDigits[n&0xf]
		buf[j-1] = hexDigits[n>>4]
		j -= 2
	}
	return string(buf)
}

// Disassemble formats the instruction at addr in m as a line of
// assembly text and returns the address of the following instruction.
func Disassemble(m go6502.Memory, addr uint16) (line string, next uint16) {
	opcode := m.LoadByte(addr)
	inst := &go6502.Instructions[opcode]
	if inst.Name == "" {
		return fmt.Sprintf(".byte $%s", hexString([]byte{opcode})), addr + 1
	}

	operand := make([]byte, inst.Length-1)
	for i := range operand {
		operand[i] = m.LoadByte(addr + 1 + uint16(i))
	}

	if inst.Mode == go6502.REL {
		target := int32(addr) + int32(inst.Length) + int32(int8(operand[0]))
		operand = []byte{byte(target), byte(target >> 8)}
	}

	line = fmt.Sprintf("%s "+modeFormat[inst.Mode], inst.Name, hexString(operand))
	next = addr + uint16(inst.Length)
	return line, next
}
