package host

import (
	"reflect"
	"strings"
	"testing"
)

func TestSettingsSetByAbbreviatedName(t *testing.T) {
	s := newSettings()
	if err := s.Set("memd", int64(128)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if s.MemDumpBytes != 128 {
		t.Fatalf("MemDumpBytes = %d, want 128", s.MemDumpBytes)
	}
}

func TestSettingsSetAmbiguousPrefix(t *testing.T) {
	s := newSettings()
	// "n" matches both NextDisasmAddr and NextMemDumpAddr.
	if err := s.Set("n", uint16(1)); err == nil {
		t.Fatal("Set with ambiguous prefix: got nil error, want one")
	}
}

func TestSettingsKindUnknown(t *testing.T) {
	s := newSettings()
	if k := s.Kind("nosuchsetting"); k != reflect.Invalid {
		t.Fatalf("Kind = %v, want Invalid", k)
	}
}

func TestSettingsSetWrongType(t *testing.T) {
	s := newSettings()
	if err := s.Set("memdumpbytes", "not a number"); err == nil {
		t.Fatal("Set with wrong type: got nil error, want one")
	}
}

func TestSettingsDisplayListsEveryField(t *testing.T) {
	s := newSettings()
	var b strings.Builder
	s.Display(&b)
	for _, name := range []string{"DisasmLinesToDisplay", "StepLinesToDisplay", "MemDumpBytes", "NextDisasmAddr", "NextMemDumpAddr"} {
		if !strings.Contains(b.String(), name) {
			t.Errorf("Display output missing field %s", name)
		}
	}
}
