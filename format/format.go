package format

import (
	"errors"
	"fmt"
)

// Format selects the text layout used when encoding values.
type Format int

const (
	// CanonicalFormat writes every value on one line:
	// [a, b], { k: v }, Name(a, b).  Lists are not padded; [a, b] and
	// [ a, b ] are the same text once spaces next to brackets are
	// squeezed, which is all a round-trip comparison looks at.
	CanonicalFormat Format = iota
	// Godot4Format writes non empty dictionaries one entry per line, as
	// version 4 of the engine saves them.
	Godot4Format
	// Godot3Format is Godot4Format with padded list and call brackets:
	// [ a, b ], Name( a, b ).
	Godot3Format
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"c":         CanonicalFormat,
		"canonical": CanonicalFormat,
		"4":         Godot4Format,
		"godot4":    Godot4Format,
		"3":         Godot3Format,
		"godot3":    Godot3Format,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case CanonicalFormat:
		return []byte("canonical"), nil
	case Godot4Format:
		return []byte("godot4"), nil
	case Godot3Format:
		return []byte("godot3"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsCanonical() bool { return f == CanonicalFormat }

// MultilineDicts reports whether non empty dictionaries are written one
// entry per line.
func (f Format) MultilineDicts() bool { return f == Godot4Format || f == Godot3Format }

// PadBrackets reports whether list and call brackets are padded with
// spaces.
func (f Format) PadBrackets() bool { return f == Godot3Format }

// AllFormats returns all supported formats.
func AllFormats() []Format {
	return []Format{CanonicalFormat, Godot4Format, Godot3Format}
}
