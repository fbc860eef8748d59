// Package param describes JD-Xi parameters and converts between their
// display values and raw 7-bit MIDI values.
//
// A Spec carries everything the editor needs to know about one parameter:
// its one-byte address offset within a section, its raw and display ranges,
// and how the two relate. Three encodings cover the whole device:
//
//   - Unsigned: linear scale between the two ranges (usually identity).
//   - SignedOffset: display 0 sits at a raw center, typically 64. Pan,
//     octave shift, coarse/fine tune and bend range work this way.
//   - Enum: an ordered label list; the display value is the list index.
//
// Spec tables are built once at startup and never mutated; conversions are
// pure and stable under round-tripping.
package param

import "fmt"

// Encoding selects how a parameter's raw bytes relate to its display value.
type Encoding int

const (
	Unsigned Encoding = iota
	SignedOffset
	Enum
)

// Spec describes a single device parameter.
type Spec struct {
	// Name is the parameter ID controls bind to.
	Name string

	// Offset is the parameter's address offset within its section group.
	Offset byte

	// Size is the value width in bytes. Values wider than one byte are
	// nibble-packed on the wire.
	Size int

	Encoding Encoding

	RawMin, RawMax   int
	DispMin, DispMax int

	// Center is the raw value that displays as 0 for SignedOffset specs.
	Center int

	// Labels holds the Enum display strings, index-aligned from RawMin.
	Labels []string
}

// Width returns the number of bytes the parameter occupies on the wire,
// defaulting single-byte.
func (s *Spec) Width() int {
	if s.Size == 0 {
		return 1
	}
	return s.Size
}

// Label returns the display string for a raw Enum value.
func (s *Spec) Label(raw int) (string, error) {
	if s.Encoding != Enum || raw < s.RawMin || raw-s.RawMin >= len(s.Labels) {
		return "", &InvalidRawError{Param: s.Name, Value: raw, Min: s.RawMin, Max: s.RawMax}
	}
	return s.Labels[raw-s.RawMin], nil
}

// RawForLabel returns the raw value for an Enum display string.
func (s *Spec) RawForLabel(label string) (int, error) {
	for i, l := range s.Labels {
		if l == label {
			return s.RawMin + i, nil
		}
	}
	return 0, fmt.Errorf("%s: no option named %q", s.Name, label)
}
