package disasm

import (
	"testing"

	"github.com/nmos6502/go6502"
)

func TestDisassembleImmediateLoad(t *testing.T) {
	m := go6502.NewFlatMemory()
	m.StoreBytes(0x0600, []byte{0xa9, 0x05})

	line, next := Disassemble(m, 0x0600)
	if line != "LDA #$05" {
		t.Fatalf("line=%q, want %q", line, "LDA #$05")
	}
	if next != 0x0602 {
		t.Fatalf("next=%#04x, want 0x0602", next)
	}
}

func TestDisassembleRelativeBranchResolvesTarget(t *testing.T) {
	m := go6502.NewFlatMemory()
	m.StoreBytes(0x0600, []byte{0xd0, 0x02}) // BNE +2

	line, next := Disassemble(m, 0x0600)
	if line != "BNE $0604" {
		t.Fatalf("line=%q, want %q", line, "BNE $0604")
	}
	if next != 0x0602 {
		t.Fatalf("next=%#04x, want 0x0602", next)
	}
}

func TestDisassembleAbsoluteIndexed(t *testing.T) {
	m := go6502.NewFlatMemory()
	m.StoreBytes(0x0600, []byte{0xbd, 0x00, 0x02}) // LDA $0200,X

	line, _ := Disassemble(m, 0x0600)
	if line != "LDA $0200,X" {
		t.Fatalf("line=%q, want %q", line, "LDA $0200,X")
	}
}

func TestDisassembleUnassignedOpcode(t *testing.T) {
	m := go6502.NewFlatMemory()
	m.StoreByte(0x0600, 0x02)

	line, next := Disassemble(m, 0x0600)
	if line != ".byte $02" {
		t.Fatalf("line=%q, want %q", line, ".byte $02")
	}
	if next != 0x0601 {
		t.Fatalf("next=%#04x, want 0x0601", next)
	}
}
