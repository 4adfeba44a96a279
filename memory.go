package go6502

// Memory is the interface through which the CPU performs all reads and
// writes. There is no access-control policy: any 16-bit address is a
// valid read, and every byte is directly addressable.
type Memory interface {
	// LoadByte loads a single byte from addr.
	LoadByte(addr uint16) byte

	// LoadBytes loads len(b) bytes starting at addr into b.
	LoadBytes(addr uint16, b []byte)

	// LoadAddress loads a little-endian 16-bit value: the low byte from
	// addr, the high byte from the following byte of the same page. When
	// addr's low byte is 0xff, the high byte comes from $xx00 of that
	// page, not from the next page.
	LoadAddress(addr uint16) uint16

	// StoreByte stores a single byte at addr.
	StoreByte(addr uint16, v byte)

	// StoreBytes stores b starting at addr.
	StoreBytes(addr uint16, b []byte)

	// StoreAddress stores a little-endian 16-bit value, with the same
	// byte placement LoadAddress reads: when addr's low byte is 0xff,
	// the high byte goes to $xx00 of that page, not to the next page.
	StoreAddress(addr uint16, v uint16)
}

// FlatMemory represents the entire 64 KiB 6502 address space as one
// contiguous, zero-initialized buffer.
type FlatMemory struct {
	b [65536]byte
}

// NewFlatMemory creates a new, zero-filled 64 KiB address space.
func NewFlatMemory() *FlatMemory {
	return &FlatMemory{}
}

// LoadByte loads a single byte from addr.
func (m *FlatMemory) LoadByte(addr uint16) byte {
	return m.b[addr]
}

// LoadBytes loads len(b) bytes starting at addr into b, wrapping around
// the top of the address space if necessary.
func (m *FlatMemory) LoadBytes(addr uint16, b []byte) {
	n := copy(b, m.b[addr:])
	if n < len(b) {
		copy(b[n:], m.b[:len(b)-n])
	}
}

// LoadAddress loads a little-endian 16-bit value from memory.
//
// When addr's low byte is 0xff, the high byte is fetched from the start
// of the same page ($xx00) rather than the following page. This
// reproduces the NMOS 6502's page-wrap addressing bug, which affects
// both the (Indirect) JMP addressing mode and the reset/interrupt
// vectors if they are ever placed at a page boundary.
func (m *FlatMemory) LoadAddress(addr uint16) uint16 {
	if addr&0xff == 0xff {
		return uint16(m.b[addr]) | uint16(m.b[addr-0xff])<<8
	}
	return uint16(m.b[addr]) | uint16(m.b[addr+1])<<8
}

// StoreByte stores a single byte at addr.
func (m *FlatMemory) StoreByte(addr uint16, v byte) {
	m.b[addr] = v
}

// StoreBytes stores b starting at addr, wrapping around the top of the
// address space if necessary.
func (m *FlatMemory) StoreBytes(addr uint16, b []byte) {
	n := copy(m.b[addr:], b)
	if n < len(b) {
		copy(m.b[:len(b)-n], b[n:])
	}
}

// StoreAddress stores a little-endian 16-bit value at addr: the low
// byte at addr, the high byte at addr+1 (or, on the 0xff page-wrap
// boundary, at the start of the same page).
func (m *FlatMemory) StoreAddress(addr uint16, v uint16) {
	m.b[addr] = byte(v)
	if addr&0xff == 0xff {
		m.b[addr-0xff] = byte(v >> 8)
	} else {
		m.b[addr+1] = byte(v >> 8)
	}
}

// offsetAddress adds offset to addr and reports whether the addition
// crossed a 256-byte page boundary.
func offsetAddress(addr uint16, offset byte) (newAddr uint16, pageCrossed bool) {
	newAddr = addr + uint16(offset)
	pageCrossed = (newAddr & 0xff00) != (addr & 0xff00)
	return newAddr, pageCrossed
}

// offsetZeroPage adds offset to a zero-page address and wraps the
// result back into the zero page.
func offsetZeroPage(addr uint16, offset byte) uint16 {
	return uint16(byte(addr) + offset)
}

// operandToAddress converts a 1- or 2-byte little-endian instruction
// operand into an address.
func operandToAddress(operand []byte) uint16 {
	switch len(operand) {
	case 1:
		return uint16(operand[0])
	case 2:
		return uint16(operand[0]) | uint16(operand[1])<<8
	default:
		return 0
	}
}

// stackAddress returns the effective memory address of stack slot sp:
// always somewhere within page 1 (0x0100-0x01ff).
func stackAddress(sp byte) uint16 {
	return 0x0100 | uint16(sp)
}
