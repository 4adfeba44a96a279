package go6502

import "sort"

// Debugger attaches to a CPU via AttachDebugger and is notified after
// every instruction (for execution breakpoints) and every memory store
// (for data breakpoints). Together with RunWithCallback's callback it is
// one of the CPU's two extension points: there is no general event bus,
// just synchronous callback hooks.
type Debugger struct {
	handler         BreakpointHandler
	breakpoints     map[uint16]*Breakpoint
	dataBreakpoints map[uint16]*DataBreakpoint
}

// BreakpointHandler receives breakpoint notifications from a Debugger.
// Both methods run synchronously on the CPU's goroutine. OnBreakpoint
// runs between the end of one instruction and the fetch of the next;
// OnDataBreakpoint runs inside the storing instruction, right after the
// byte is written.
type BreakpointHandler interface {
	OnBreakpoint(cpu *CPU, b *Breakpoint)
	OnDataBreakpoint(cpu *CPU, b *DataBreakpoint)
}

// Breakpoint halts execution when PC reaches Address.
type Breakpoint struct {
	Address  uint16
	Disabled bool
}

// DataBreakpoint halts execution when a byte is stored to Address. If
// Conditional is set, the breakpoint only fires when the stored byte
// equals Value.
type DataBreakpoint struct {
	Address     uint16
	Disabled    bool
	Conditional bool
	Value       byte
}

// NewDebugger creates a debugger that reports breakpoint hits to
// handler.
func NewDebugger(handler BreakpointHandler) *Debugger {
	return &Debugger{
		handler:         handler,
		breakpoints:     make(map[uint16]*Breakpoint),
		dataBreakpoints: make(map[uint16]*DataBreakpoint),
	}
}

// GetBreakpoint looks up the breakpoint at addr, or nil if none is set.
func (d *Debugger) GetBreakpoint(addr uint16) *Breakpoint {
	return d.breakpoints[addr]
}

// GetBreakpoints returns all execution breakpoints, ordered by address.
func (d *Debugger) GetBreakpoints() []*Breakpoint {
	bp := make([]*Breakpoint, 0, len(d.breakpoints))
	for _, b := range d.breakpoints {
		bp = append(bp, b)
	}
	sort.Slice(bp, func(i, j int) bool { return bp[i].Address < bp[j].Address })
	return bp
}

// AddBreakpoint sets an execution breakpoint at addr.
func (d *Debugger) AddBreakpoint(addr uint16) *Breakpoint {
	b := &Breakpoint{Address: addr}
	d.breakpoints[addr] = b
	return b
}

// RemoveBreakpoint clears the execution breakpoint at addr, if any.
func (d *Debugger) RemoveBreakpoint(addr uint16) {
	delete(d.breakpoints, addr)
}

// GetDataBreakpoint looks up the data breakpoint at addr, or nil if
// none is set.
func (d *Debugger) GetDataBreakpoint(addr uint16) *DataBreakpoint {
	return d.dataBreakpoints[addr]
}

// GetDataBreakpoints returns all data breakpoints, ordered by address.
func (d *Debugger) GetDataBreakpoints() []*DataBreakpoint {
	bp := make([]*DataBreakpoint, 0, len(d.dataBreakpoints))
	for _, b := range d.dataBreakpoints {
		bp = append(bp, b)
	}
	sort.Slice(bp, func(i, j int) bool { return bp[i].Address < bp[j].Address })
	return bp
}

// AddDataBreakpoint sets an unconditional data breakpoint at addr.
func (d *Debugger) AddDataBreakpoint(addr uint16) *DataBreakpoint {
	b := &DataBreakpoint{Address: addr}
	d.dataBreakpoints[addr] = b
	return b
}

// AddConditionalDataBreakpoint sets a data breakpoint at addr that only
// fires when value is the byte stored.
func (d *Debugger) AddConditionalDataBreakpoint(addr uint16, value byte) *DataBreakpoint {
	b := &DataBreakpoint{Address: addr, Conditional: true, Value: value}
	d.dataBreakpoints[addr] = b
	return b
}

// RemoveDataBreakpoint clears the data breakpoint at addr, if any.
func (d *Debugger) RemoveDataBreakpoint(addr uint16) {
	delete(d.dataBreakpoints, addr)
}

// onStep is called by Step after PC has advanced past the instruction
// just executed; addr is the new PC.
func (d *Debugger) onStep(cpu *CPU, addr uint16) {
	if d.handler == nil {
		return
	}
	if b, ok := d.breakpoints[addr]; ok && !b.Disabled {
		d.handler.OnBreakpoint(cpu, b)
	}
}

// onStore is called by storeByte for every write to memory.
func (d *Debugger) onStore(cpu *CPU, addr uint16, v byte) {
	if d.handler == nil {
		return
	}
	if b, ok := d.dataBreakpoints[addr]; ok && !b.Disabled {
		if !b.Conditional || b.Value == v {
			d.handler.OnDataBreakpoint(cpu, b)
		}
	}
}
