// Package address maps logical JD-Xi sections to their memory-map locations.
//
// The device addresses every parameter by area/part/group/offset. Each synth
// section (Digital 1, Digital 2, Analog, Drums, program common) has a fixed
// base triple; a partial index within the section shifts the group byte.
// Resolution is a pure table lookup: the same inputs always produce the same
// triple, so a control can be bound once and reused for every edit.
package address

import (
	"fmt"
	"strings"

	"github.com/markxbrooks/jdxictl/jdxi/sysex"
)

// SynthType selects one of the JD-Xi's sound sections.
type SynthType int

const (
	Program SynthType = iota // program common, area 0x18
	Digital1
	Digital2
	Analog
	Drums
)

var synthNames = map[SynthType]string{
	Program:  "program",
	Digital1: "digital1",
	Digital2: "digital2",
	Analog:   "analog",
	Drums:    "drums",
}

func (s SynthType) String() string {
	if name, ok := synthNames[s]; ok {
		return name
	}
	return fmt.Sprintf("SynthType(%d)", int(s))
}

// ParseSynth resolves a section name as used on the command line.
func ParseSynth(name string) (SynthType, error) {
	for s, n := range synthNames {
		if n == strings.ToLower(name) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown synth section %q", name)
}

// CommonPartial addresses a section's common parameter block rather than
// one of its partials.
const CommonPartial = 0

const (
	areaSetup     = 0x01
	areaSystem    = 0x02
	areaTemporary = 0x19

	partDigital1 = 0x01
	partDigital2 = 0x21
	partAnalog   = 0x42
	partDrums    = 0x70

	// Digital partials 1..3 live at groups 0x20..0x22; the common block
	// is group 0x00 and the tone-modify block 0x50.
	digitalPartialBase = 0x20
	numDigitalPartials = 3

	// Drum voices occupy two groups each, starting at 0x2E for BD1.
	drumPartialBase   = 0x2e
	drumPartialStride = 2
)

var baseTriples = map[SynthType]sysex.Address{
	Program:  {Area: 0x18, Part: 0x00, Group: 0x00},
	Digital1: {Area: areaTemporary, Part: partDigital1, Group: 0x00},
	Digital2: {Area: areaTemporary, Part: partDigital2, Group: 0x00},
	Analog:   {Area: areaTemporary, Part: partAnalog, Group: 0x00},
	Drums:    {Area: areaTemporary, Part: partDrums, Group: 0x00},
}

// DrumPartials names the 37 drum-kit voices in address order. The first 26
// are the panel instruments; the rest are the upper keyboard keys.
var DrumPartials = []string{
	"BD1", "RIM", "BD2", "CLAP", "BD3", "SD1", "CHH", "SD2", "PHH", "SD3",
	"OHH", "SD4", "TOM1", "PRC1", "TOM2", "PRC2", "TOM3", "PRC3", "CYM1",
	"PRC4", "CYM2", "PRC5", "CYM3", "HIT", "OTH1", "OTH2",
	"D4", "C#4", "E4", "F4", "F#4", "G4", "G#4", "A4", "A#4", "B4", "C5",
}

// NumPartials returns the highest valid partial index for a section.
func NumPartials(s SynthType) int {
	switch s {
	case Digital1, Digital2:
		return numDigitalPartials
	case Drums:
		return len(DrumPartials)
	default:
		return 0
	}
}

// DrumPartialIndex resolves a drum voice name to its 1-based partial index.
func DrumPartialIndex(name string) (int, error) {
	for i, n := range DrumPartials {
		if strings.EqualFold(n, name) {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("unknown drum partial %q", name)
}

// Resolve returns the address triple for a section's partial. Partial
// CommonPartial addresses the section's common block; digital partials run
// 1..3 and drum partials 1..37.
func Resolve(s SynthType, partial int) (sysex.Address, error) {
	base, ok := baseTriples[s]
	if !ok {
		return sysex.Address{}, fmt.Errorf("unknown synth section %d", int(s))
	}
	if partial == CommonPartial {
		return base, nil
	}
	max := NumPartials(s)
	if partial < 1 || partial > max {
		return sysex.Address{}, &InvalidPartialError{Synth: s, Partial: partial, Max: max}
	}
	switch s {
	case Digital1, Digital2:
		base.Group = digitalPartialBase + byte(partial-1)
	case Drums:
		base.Group = drumPartialBase + byte(drumPartialStride*(partial-1))
	}
	return base, nil
}

// Section identifies the owner of an address triple: the inverse of
// Resolve, used on the receive path to route inbound writes back to a
// section and partial.
func Section(addr sysex.Address) (SynthType, int, bool) {
	for s, base := range baseTriples {
		if addr.Area != base.Area || addr.Part != base.Part {
			continue
		}
		if addr.Group == base.Group {
			return s, CommonPartial, true
		}
		switch s {
		case Digital1, Digital2:
			i := int(addr.Group) - digitalPartialBase
			if i >= 0 && i < numDigitalPartials {
				return s, i + 1, true
			}
		case Drums:
			i := int(addr.Group) - drumPartialBase
			if i >= 0 && i%drumPartialStride == 0 && i/drumPartialStride < len(DrumPartials) {
				return s, i/drumPartialStride + 1, true
			}
		}
	}
	return 0, 0, false
}
