package host

import "testing"

type fakeResolver map[string]int64

func (f fakeResolver) resolveIdentifier(s string) (int64, error) {
	v, ok := f[s]
	if !ok {
		return 0, errExprParse
	}
	return v, nil
}

func TestParseHexAndDecimal(t *testing.T) {
	p := newExprParser()
	v, err := p.Parse("$1A + 2", fakeResolver{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if v != 0x1C {
		t.Fatalf("v = %#x, want 0x1c", v)
	}
}

func TestParseIdentifierLookup(t *testing.T) {
	p := newExprParser()
	v, err := p.Parse("start+1", fakeResolver{"start": 0x0600})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if v != 0x0601 {
		t.Fatalf("v = %#x, want 0x601", v)
	}
}

func TestParseUnknownIdentifier(t *testing.T) {
	p := newExprParser()
	if _, err := p.Parse("nosuch", fakeResolver{}); err == nil {
		t.Fatal("Parse with unknown identifier: got nil error, want one")
	}
}

func TestParseShiftAndMask(t *testing.T) {
	p := newExprParser()
	v, err := p.Parse("(1 << 4) & $f0", fakeResolver{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if v != 0x10 {
		t.Fatalf("v = %#x, want 0x10", v)
	}
}

func TestParseCharLiteral(t *testing.T) {
	p := newExprParser()
	v, err := p.Parse("'A'", fakeResolver{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if v != 0x41 {
		t.Fatalf("v = %#x, want 0x41", v)
	}
}
