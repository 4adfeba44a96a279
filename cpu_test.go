package go6502

import "testing"

func newTestCPU() *CPU {
	return NewCPU(NewFlatMemory())
}

// runProgram loads bytes at base, resets, and runs to completion (BRK),
// mirroring the load_program/reset/run sequence the end-to-end scenarios
// in the test suite are framed around.
func runProgram(t *testing.T, bytes []byte, base uint16) *CPU {
	t.Helper()
	cpu := newTestCPU()
	if err := cpu.LoadProgram(bytes, base); err != nil {
		t.Fatalf("LoadProgram: %v", err)
	}
	if err := cpu.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return cpu
}

func TestLoadImmediate(t *testing.T) {
	cpu := runProgram(t, []byte{0xa9, 0x05, 0x00}, 0x0600)
	if cpu.Reg.A != 0x05 || cpu.Reg.Zero || cpu.Reg.Sign {
		t.Fatalf("A=%#02x Z=%v N=%v, want A=0x05 Z=false N=false", cpu.Reg.A, cpu.Reg.Zero, cpu.Reg.Sign)
	}
}

func TestLoadImmediateZero(t *testing.T) {
	cpu := runProgram(t, []byte{0xa9, 0x00, 0x00}, 0x0600)
	if cpu.Reg.A != 0x00 || !cpu.Reg.Zero {
		t.Fatalf("A=%#02x Z=%v, want A=0x00 Z=true", cpu.Reg.A, cpu.Reg.Zero)
	}
}

func TestLoadAndTransferToX(t *testing.T) {
	cpu := runProgram(t, []byte{0xa9, 0x05, 0xaa, 0x00}, 0x0600)
	if cpu.Reg.X != 0x05 || cpu.Reg.Zero || cpu.Reg.Sign {
		t.Fatalf("X=%#02x Z=%v N=%v, want X=0x05 Z=false N=false", cpu.Reg.X, cpu.Reg.Zero, cpu.Reg.Sign)
	}
}

func TestIncrementXWrapsPastFF(t *testing.T) {
	cpu := runProgram(t, []byte{0xa2, 0xff, 0xe8, 0xe8, 0x00}, 0x0600)
	if cpu.Reg.X != 0x01 {
		t.Fatalf("X=%#02x, want 0x01", cpu.Reg.X)
	}
}

func TestIncrementYWrapsPastFF(t *testing.T) {
	cpu := runProgram(t, []byte{0xa9, 0xff, 0xa8, 0xc8, 0xc8, 0x00}, 0x0600)
	if cpu.Reg.Y != 0x01 {
		t.Fatalf("Y=%#02x, want 0x01", cpu.Reg.Y)
	}
}

func TestInxAtMaxWrapsToZeroWithFlags(t *testing.T) {
	cpu := newTestCPU()
	cpu.Reg.X = 0xff
	cpu.inx(nil, nil)
	if cpu.Reg.X != 0x00 || !cpu.Reg.Zero || cpu.Reg.Sign {
		t.Fatalf("X=%#02x Z=%v N=%v, want X=0x00 Z=true N=false", cpu.Reg.X, cpu.Reg.Zero, cpu.Reg.Sign)
	}
}

func TestDexAtZeroWrapsToFFWithFlags(t *testing.T) {
	cpu := newTestCPU()
	cpu.Reg.X = 0x00
	cpu.dex(nil, nil)
	if cpu.Reg.X != 0xff || cpu.Reg.Zero || !cpu.Reg.Sign {
		t.Fatalf("X=%#02x Z=%v N=%v, want X=0xff Z=false N=true", cpu.Reg.X, cpu.Reg.Zero, cpu.Reg.Sign)
	}
}

func TestAdcOverflowTable(t *testing.T) {
	cases := []struct {
		a, operand   byte
		carryIn      bool
		wantA        byte
		wantC, wantV bool
	}{
		{0x50, 0x50, false, 0xa0, false, true},
		{0xd0, 0x90, false, 0x60, true, true},
		{0x50, 0x10, false, 0x60, false, false},
	}
	for _, c := range cases {
		cpu := newTestCPU()
		cpu.Reg.A = c.a
		cpu.Reg.Carry = c.carryIn
		cpu.adc(&Instruction{Mode: IMM}, []byte{c.operand})
		if cpu.Reg.A != c.wantA || cpu.Reg.Carry != c.wantC || cpu.Reg.Overflow != c.wantV {
			t.Errorf("ADC %#02x+%#02x(C=%v): A=%#02x C=%v V=%v, want A=%#02x C=%v V=%v",
				c.a, c.operand, c.carryIn, cpu.Reg.A, cpu.Reg.Carry, cpu.Reg.Overflow, c.wantA, c.wantC, c.wantV)
		}
	}
}

func TestSbcOverflowTable(t *testing.T) {
	cases := []struct {
		a, operand   byte
		carryIn      bool
		wantA        byte
		wantC, wantV bool
	}{
		{0x50, 0xf0, true, 0x60, false, false},
		{0x50, 0xb0, true, 0xa0, false, true},
		{0xd0, 0x70, true, 0x60, true, true},
	}
	for _, c := range cases {
		cpu := newTestCPU()
		cpu.Reg.A = c.a
		cpu.Reg.Carry = c.carryIn
		cpu.sbc(&Instruction{Mode: IMM}, []byte{c.operand})
		if cpu.Reg.A != c.wantA || cpu.Reg.Carry != c.wantC || cpu.Reg.Overflow != c.wantV {
			t.Errorf("SBC %#02x-%#02x(C=%v): A=%#02x C=%v V=%v, want A=%#02x C=%v V=%v",
				c.a, c.operand, c.carryIn, cpu.Reg.A, cpu.Reg.Carry, cpu.Reg.Overflow, c.wantA, c.wantC, c.wantV)
		}
	}
}

// TestAdcSbcInverse checks the round-trip law: LDA x; CLC; ADC y; SEC;
// SBC y restores A to x, for every (x, y) pair.
func TestAdcSbcInverse(t *testing.T) {
	for x := 0; x < 256; x += 7 {
		for y := 0; y < 256; y += 11 {
			cpu := newTestCPU()
			cpu.Reg.A = byte(x)
			cpu.Reg.Carry = false
			cpu.adc(&Instruction{Mode: IMM}, []byte{byte(y)})
			cpu.Reg.Carry = true
			cpu.sbc(&Instruction{Mode: IMM}, []byte{byte(y)})
			if cpu.Reg.A != byte(x) {
				t.Fatalf("x=%#02x y=%#02x: A=%#02x after ADC/SBC round trip, want %#02x", x, y, cpu.Reg.A, byte(x))
			}
		}
	}
}

func TestZeroPageXWrapsWithinZeroPage(t *testing.T) {
	addr := offsetZeroPage(0x00ff, 0x02)
	if addr != 0x0001 {
		t.Fatalf("offsetZeroPage(0xff, 2)=%#04x, want 0x0001", addr)
	}
}

func TestPhaPlaRoundTrip(t *testing.T) {
	cpu := newTestCPU()
	sp := cpu.Reg.SP
	cpu.Reg.A = 0x42
	cpu.pha(nil, nil)
	cpu.Reg.A = 0x00
	cpu.pla(nil, nil)
	if cpu.Reg.A != 0x42 {
		t.Fatalf("A=%#02x after PHA/PLA, want 0x42", cpu.Reg.A)
	}
	if cpu.Reg.SP != sp {
		t.Fatalf("SP=%#02x after PHA/PLA, want %#02x", cpu.Reg.SP, sp)
	}
}

func TestPhpPlpRoundTripModuloBreakBit(t *testing.T) {
	cpu := newTestCPU()
	cpu.Reg.Carry = true
	cpu.Reg.Zero = true
	cpu.Reg.Sign = true
	before := cpu.Reg
	cpu.php(nil, nil)
	cpu.Reg.Carry, cpu.Reg.Zero, cpu.Reg.Sign = false, false, false
	cpu.plp(nil, nil)
	if cpu.Reg.Carry != before.Carry || cpu.Reg.Zero != before.Zero ||
		cpu.Reg.InterruptDisable != before.InterruptDisable ||
		cpu.Reg.Decimal != before.Decimal ||
		cpu.Reg.Overflow != before.Overflow || cpu.Reg.Sign != before.Sign {
		t.Fatalf("flags after PHP/PLP = %+v, want %+v", cpu.Reg, before)
	}
}

func TestJsrRtsRoundTrip(t *testing.T) {
	// JSR $0610; RTS at $0610; BRK after the JSR at $0603.
	program := []byte{0x20, 0x10, 0x06, 0x00}
	cpu := newTestCPU()
	base := uint16(0x0600)
	cpu.Mem.StoreBytes(base, program)
	cpu.Mem.StoreByte(0x0610, 0x60) // RTS
	cpu.Mem.StoreAddress(vectorReset, base)
	cpu.Reset()
	sp := cpu.Reg.SP

	cpu.Step() // JSR
	if cpu.Reg.PC != 0x0610 {
		t.Fatalf("PC=%#04x after JSR, want 0x0610", cpu.Reg.PC)
	}
	cpu.Step() // RTS
	if cpu.Reg.PC != base+3 {
		t.Fatalf("PC=%#04x after RTS, want %#04x", cpu.Reg.PC, base+3)
	}
	if cpu.Reg.SP != sp {
		t.Fatalf("SP=%#02x after JSR/RTS, want %#02x", cpu.Reg.SP, sp)
	}
}

func TestStoreAddressLoadAddressRoundTrip(t *testing.T) {
	mem := NewFlatMemory()
	for _, addr := range []uint16{0x0000, 0x1234, 0x00ff, 0xffff} {
		for _, v := range []uint16{0x0000, 0xabcd, 0x00ff, 0xff00} {
			mem.StoreAddress(addr, v)
			if got := mem.LoadAddress(addr); got != v {
				t.Fatalf("addr=%#04x: LoadAddress=%#04x after StoreAddress(%#04x), want %#04x", addr, got, v, v)
			}
		}
	}
}

func TestIndirectJmpPageWrapBug(t *testing.T) {
	mem := NewFlatMemory()
	mem.StoreByte(0x30ff, 0x80) // low byte of target
	mem.StoreByte(0x3000, 0x20) // high byte, fetched from $3000 due to the bug, not $3100
	mem.StoreByte(0x3100, 0x00) // if the bug were absent, this would be read instead

	cpu := NewCPU(mem)
	mem.StoreByte(0x0600, 0x6c) // JMP (Indirect)
	mem.StoreAddress(0x0601, 0x30ff)
	mem.StoreAddress(vectorReset, 0x0600)
	cpu.Reset()

	cpu.Step()
	if cpu.Reg.PC != 0x2080 {
		t.Fatalf("PC=%#04x after indirect JMP page-wrap bug, want 0x2080", cpu.Reg.PC)
	}
}

func TestShiftPairRestoresBitPattern(t *testing.T) {
	cpu := newTestCPU()
	cpu.Reg.A = 0x55 // 0101_0101, bit 0 set, bit 7 clear
	cpu.asl(&Instruction{Mode: ACC}, nil)
	if cpu.Reg.Carry {
		t.Fatalf("ASL of 0x55 set carry, want false (bit 7 was clear)")
	}
	cpu.lsr(&Instruction{Mode: ACC}, nil)
	if cpu.Reg.Carry {
		t.Fatalf("LSR set carry, want false (the bit ASL shifted in at bit 0 was a 0)")
	}
	if cpu.Reg.A != 0x55 {
		t.Fatalf("A=%#02x after ASL;LSR of 0x55, want 0x55 (bit 7 was clear, so no bit was lost)", cpu.Reg.A)
	}
}

func TestBranchTakenSamePageAddsOneCycle(t *testing.T) {
	cpu := newTestCPU()
	// BNE +2, landing in the same page: 1 extra cycle for the branch,
	// none for a page cross.
	program := []byte{0xa9, 0x01, 0xd0, 0x02, 0x00, 0x00, 0xea, 0x00}
	cpu.Mem.StoreBytes(0x0600, program)
	cpu.Mem.StoreAddress(vectorReset, 0x0600)
	cpu.Reset()

	cpu.Step() // LDA #1
	before := cpu.Cycles
	cpu.Step() // BNE, taken, same page
	if cpu.Cycles-before != 3 {
		t.Fatalf("BNE taken cost %d cycles, want 3 (2 base + 1 taken)", cpu.Cycles-before)
	}
}

func TestBrkHaltsRun(t *testing.T) {
	cpu := runProgram(t, []byte{0xa9, 0x07, 0x00, 0xa9, 0xff}, 0x0600)
	if cpu.Reg.A != 0x07 {
		t.Fatalf("A=%#02x, want 0x07 (the LDA after BRK must never execute)", cpu.Reg.A)
	}
}

func TestBrkThroughStepPushesFullInterruptFrame(t *testing.T) {
	mem := NewFlatMemory()
	mem.StoreAddress(vectorBRK, 0x9000)
	cpu := NewCPU(mem)
	cpu.Mem.StoreBytes(0x0600, []byte{0x00})
	cpu.Mem.StoreAddress(vectorReset, 0x0600)
	cpu.Reset()
	sp := cpu.Reg.SP

	cpu.Step()

	if cpu.Reg.PC != 0x9000 {
		t.Fatalf("PC=%#04x after BRK via Step, want 0x9000 (BRK vector)", cpu.Reg.PC)
	}
	if !cpu.Reg.InterruptDisable {
		t.Fatalf("InterruptDisable not set after BRK")
	}
	if cpu.Reg.SP != sp-3 {
		t.Fatalf("SP=%#02x after BRK, want %#02x (3 bytes pushed)", cpu.Reg.SP, sp-3)
	}
}

func TestUnknownOpcodePanicsWithUnknownOpcodeError(t *testing.T) {
	cpu := newTestCPU()
	cpu.Mem.StoreByte(0x0600, 0x02) // unassigned opcode
	cpu.SetPC(0x0600)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Step did not panic on an unassigned opcode")
		}
		if _, ok := r.(*UnknownOpcodeError); !ok {
			t.Fatalf("Step panicked with %T, want *UnknownOpcodeError", r)
		}
	}()
	cpu.Step()
}

func TestLoadProgramRejectsEmptyAndOversizedPrograms(t *testing.T) {
	cpu := newTestCPU()
	if err := cpu.LoadProgram(nil, 0x0600); err != ErrEmptyProgram {
		t.Fatalf("LoadProgram(nil): err=%v, want ErrEmptyProgram", err)
	}

	big := make([]byte, 0x200)
	if err := cpu.LoadProgram(big, 0xff00); err == nil {
		t.Fatal("LoadProgram with an oversized program returned nil error")
	} else if _, ok := err.(*ProgramTooLargeError); !ok {
		t.Fatalf("LoadProgram oversized: err=%T, want *ProgramTooLargeError", err)
	}
}
