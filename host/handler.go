package host

import "github.com/nmos6502/go6502"

// debugHandler adapts go6502.BreakpointHandler notifications to Host
// methods, so Host doesn't need to implement the interface itself (and
// expose OnBreakpoint/OnDataBreakpoint as part of its own API).
type debugHandler struct {
	host *Host
}

func newDebugHandler(h *Host) *debugHandler {
	return &debugHandler{host: h}
}

func (d *debugHandler) OnBreakpoint(cpu *go6502.CPU, b *go6502.Breakpoint) {
	d.host.onBreakpoint(cpu, b)
}

func (d *debugHandler) OnDataBreakpoint(cpu *go6502.CPU, b *go6502.DataBreakpoint) {
	d.host.onDataBreakpoint(cpu, b)
}
