package bitpack

import (
	"fmt"
	"strings"
)

// debug stringers

func (p StoragePreference) String() string {
	switch p {
	case Fast:
		return "fast"
	case Small:
		return "small"
	}
	return fmt.Sprintf("preference(%d)", uint8(p))
}

func (k StorageKind) String() string {
	switch k {
	case Uint8, Uint16, Uint32, Uint64:
		return fmt.Sprintf("uint%d", uint8(k))
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// String renders the layout as preference, resolved kind and widths, eg
// "small uint32 [8 9]".
func (l *Layout) String() string {
	return fmt.Sprintf("%s %s %v", l.pref, l.kind, l.widths)
}

// String renders each field as index:value, field 0 first, eg
// "[0:0xff 1:0x1ff]".
func (p Pack) String() string {
	fields := make([]string, len(p.layout.widths))
	for i := range p.layout.widths {
		v := (p.word >> p.layout.shifts[i]) & Bitmask(p.layout.widths[i])
		fields[i] = fmt.Sprintf("%d:%#x", i, v)
	}
	return "[" + strings.Join(fields, " ") + "]"
}
