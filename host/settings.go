package host

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/beevik/prefixtree/v2"
)

// settings holds the host's user-adjustable options. Fields are
// discovered and looked up by (prefix-matched) name via reflection, so
// "set memdump 128" and "set m 128" both work.
type settings struct {
	DisasmLinesToDisplay int    `doc:"lines to disassemble per 'disassemble' command"`
	StepLinesToDisplay   int    `doc:"lines to display at the end of a multi-instruction step"`
	MemDumpBytes         int    `doc:"default number of memory bytes to dump"`
	NextDisasmAddr       uint16 `doc:"address of the next disassembly line"`
	NextMemDumpAddr      uint16 `doc:"address of the next memory dump"`
}

func newSettings() *settings {
	return &settings{
		DisasmLinesToDisplay: 10,
		StepLinesToDisplay:   20,
		MemDumpBytes:         64,
	}
}

type settingsField struct {
	name  string
	index int
	kind  reflect.Kind
	typ   reflect.Type
	doc   string
}

var (
	settingsTree   = prefixtree.New[*settingsField]()
	settingsFields []settingsField
)

func init() {
	t := reflect.TypeOf(settings{})
	settingsFields = make([]settingsField, t.NumField())
	for i := range settingsFields {
		f := t.Field(i)
		doc, _ := f.Tag.Lookup("doc")
		settingsFields[i] = settingsField{name: f.Name, index: i, kind: f.Type.Kind(), typ: f.Type, doc: doc}
		settingsTree.Add(strings.ToLower(f.Name), &settingsFields[i])
	}
}

// Display writes every setting and its current value to w.
func (s *settings) Display(w io.Writer) {
	value := reflect.ValueOf(s).Elem()
	for i, f := range settingsFields {
		v := value.Field(i)
		var line string
		switch f.kind {
		case reflect.Uint16:
			line = fmt.Sprintf("    %-20s $%04X", f.name, uint16(v.Uint()))
		default:
			line = fmt.Sprintf("    %-20s %v", f.name, v)
		}
		fmt.Fprintf(w, "%-32s (%s)\n", line, f.doc)
	}
}

// Kind reports the reflect.Kind of the setting matching the (possibly
// abbreviated) key, or reflect.Invalid if key doesn't match exactly one
// setting.
func (s *settings) Kind(key string) reflect.Kind {
	f, err := settingsTree.FindValue(strings.ToLower(key))
	if err != nil {
		return reflect.Invalid
	}
	return f.kind
}

// Set assigns value to the setting matching key.
func (s *settings) Set(key string, value any) error {
	f, err := settingsTree.FindValue(strings.ToLower(key))
	if err != nil {
		return err
	}

	in := reflect.ValueOf(value)
	if !in.Type().ConvertibleTo(f.typ) {
		return errors.New("invalid type for setting")
	}

	reflect.ValueOf(s).Elem().Field(f.index).Set(in.Convert(f.typ))
	return nil
}
