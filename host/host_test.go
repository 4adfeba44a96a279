package host

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runScript(t *testing.T, h *Host, script string) string {
	t.Helper()
	var out bytes.Buffer
	h.RunCommands(strings.NewReader(script), &out, false)
	return out.String()
}

func TestHostSetAndDisplayRegisters(t *testing.T) {
	h := New()
	out := runScript(t, h, "set a $2a\nregisters\n")
	if !strings.Contains(out, "A=2A") {
		t.Fatalf("registers output = %q, want it to contain A=2A", out)
	}
}

func TestHostLoadAndRunProgram(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.bin")
	if err := os.WriteFile(path, []byte{0xa9, 0x05, 0xaa, 0x00}, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	h := New()
	out := runScript(t, h, "load "+path+" $0600\nrun\nregisters\n")
	if !strings.Contains(out, "X=05") {
		t.Fatalf("registers output = %q, want it to contain X=05", out)
	}
}

func TestHostBreakpointStopsRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.bin")
	// LDA #$01 ; loop target; INX ; JMP loop
	if err := os.WriteFile(path, []byte{0xa9, 0x01, 0xe8, 0x4c, 0x02, 0x06}, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	h := New()
	out := runScript(t, h, "load "+path+" $0600\nbreakpoint add $0602\nrun\n")
	if !strings.Contains(out, "Breakpoint hit at $0602") {
		t.Fatalf("output = %q, want a breakpoint-hit message", out)
	}
}

func TestHostUnknownCommand(t *testing.T) {
	h := New()
	out := runScript(t, h, "boguscommand\n")
	if !strings.Contains(out, "Command not found.") {
		t.Fatalf("output = %q, want 'Command not found.'", out)
	}
}

func TestHostAnnotateAndDisassembleShowsComment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.bin")
	if err := os.WriteFile(path, []byte{0xa9, 0x05, 0x00}, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	h := New()
	out := runScript(t, h, "load "+path+" $0600\nannotate $0600 entry point\ndisassemble $0600 1\n")
	if !strings.Contains(out, "entry point") {
		t.Fatalf("output = %q, want it to contain the annotation", out)
	}
}

func TestHostQuitStopsCommandLoop(t *testing.T) {
	h := New()
	var out bytes.Buffer
	h.RunCommands(strings.NewReader("registers\nquit\nregisters\n"), &out, false)
	if n := strings.Count(out.String(), "A=00"); n != 1 {
		t.Fatalf("registers printed %d times after quit, want 1", n)
	}
}
