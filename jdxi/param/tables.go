package param

import (
	"sort"

	"github.com/markxbrooks/jdxictl/jdxi/address"
)

func unsigned(name string, off byte, max int) Spec {
	return Spec{Name: name, Offset: off, Encoding: Unsigned, RawMax: max, DispMax: max}
}

func scaled(name string, off byte, rawMin, rawMax, dispMin, dispMax int) Spec {
	return Spec{
		Name: name, Offset: off, Encoding: Unsigned,
		RawMin: rawMin, RawMax: rawMax, DispMin: dispMin, DispMax: dispMax,
	}
}

func signed(name string, off byte, rawMin, rawMax, dispMin, dispMax int) Spec {
	return Spec{
		Name: name, Offset: off, Encoding: SignedOffset, Center: 64,
		RawMin: rawMin, RawMax: rawMax, DispMin: dispMin, DispMax: dispMax,
	}
}

func enum(name string, off byte, labels ...string) Spec {
	return Spec{
		Name: name, Offset: off, Encoding: Enum,
		RawMax: len(labels) - 1, DispMax: len(labels) - 1, Labels: labels,
	}
}

func wave(name string, off byte) Spec {
	return Spec{Name: name, Offset: off, Size: 4, Encoding: Unsigned, RawMax: 16383, DispMax: 16383}
}

// Parameter tables per the JD-Xi MIDI implementation chart. Offsets are
// relative to the owning section group resolved by package address.

var digitalPartialSpecs = []Spec{
	enum("osc-wave", 0x00, "SAW", "SQR", "PW-SQR", "TRI", "SINE", "NOISE", "SUPER-SAW", "PCM"),
	enum("osc-variation", 0x01, "A", "B", "C"),
	signed("osc-pitch", 0x03, 40, 88, -24, 24),
	signed("osc-detune", 0x04, 14, 114, -50, 50),
	unsigned("osc-pwm-depth", 0x05, 127),
	unsigned("osc-pulse-width", 0x06, 127),
	unsigned("pitch-env-attack", 0x07, 127),
	unsigned("pitch-env-decay", 0x08, 127),
	signed("pitch-env-depth", 0x09, 1, 127, -63, 63),
	enum("filter-mode", 0x0a, "BYPASS", "LPF", "HPF", "BPF", "PKG", "LPF2", "LPF3", "LPF4"),
	enum("filter-slope", 0x0b, "-12dB", "-24dB"),
	unsigned("cutoff", 0x0c, 127),
	scaled("cutoff-keyfollow", 0x0d, 54, 74, -100, 100),
	signed("filter-env-velocity", 0x0e, 1, 127, -63, 63),
	unsigned("resonance", 0x0f, 127),
	unsigned("filter-env-attack", 0x10, 127),
	unsigned("filter-env-decay", 0x11, 127),
	unsigned("filter-env-sustain", 0x12, 127),
	unsigned("filter-env-release", 0x13, 127),
	signed("filter-env-depth", 0x14, 1, 127, -63, 63),
	unsigned("amp-level", 0x15, 127),
	signed("amp-velocity", 0x16, 1, 127, -63, 63),
	unsigned("amp-env-attack", 0x17, 127),
	unsigned("amp-env-decay", 0x18, 127),
	unsigned("amp-env-sustain", 0x19, 127),
	unsigned("amp-env-release", 0x1a, 127),
	signed("pan", 0x1b, 0, 127, -64, 63),
	enum("lfo-shape", 0x1c, "TRI", "SIN", "SAW", "SQR", "S&H", "RND"),
	unsigned("lfo-rate", 0x1d, 127),
	signed("lfo-pitch-depth", 0x22, 1, 127, -63, 63),
	signed("lfo-filter-depth", 0x23, 1, 127, -63, 63),
	signed("lfo-amp-depth", 0x24, 1, 127, -63, 63),
	wave("wave-number", 0x34),
}

var digitalCommonSpecs = []Spec{
	unsigned("tone-level", 0x0c, 127),
	enum("portamento-switch", 0x12, "OFF", "ON"),
	unsigned("portamento-time", 0x13, 127),
	enum("mono-switch", 0x14, "POLY", "MONO"),
	signed("octave-shift", 0x15, 61, 67, -3, 3),
	unsigned("bend-range-up", 0x16, 24),
	unsigned("bend-range-down", 0x17, 24),
	enum("ring-switch", 0x1f, "OFF", "---", "ON"),
	enum("unison-switch", 0x2e, "OFF", "ON"),
}

var analogSpecs = []Spec{
	enum("lfo-shape", 0x0d, "TRI", "SIN", "SAW", "SQR", "S&H", "RND"),
	unsigned("lfo-rate", 0x0e, 127),
	unsigned("lfo-fade-time", 0x0f, 127),
	signed("lfo-pitch-depth", 0x11, 1, 127, -63, 63),
	signed("lfo-filter-depth", 0x12, 1, 127, -63, 63),
	signed("lfo-amp-depth", 0x13, 1, 127, -63, 63),
	enum("osc-wave", 0x16, "SAW", "TRI", "PW-SQR"),
	signed("osc-pitch", 0x17, 40, 88, -24, 24),
	signed("osc-detune", 0x18, 14, 114, -50, 50),
	unsigned("osc-pulse-width", 0x19, 127),
	unsigned("osc-pwm-depth", 0x1a, 127),
	enum("sub-osc-type", 0x1f, "OFF", "OCT-1", "OCT-2"),
	enum("filter-switch", 0x20, "BYPASS", "LPF"),
	unsigned("cutoff", 0x21, 127),
	scaled("cutoff-keyfollow", 0x22, 54, 74, -100, 100),
	unsigned("resonance", 0x23, 127),
	signed("filter-env-depth", 0x24, 1, 127, -63, 63),
	unsigned("amp-level", 0x2a, 127),
	enum("portamento-switch", 0x31, "OFF", "ON"),
	unsigned("portamento-time", 0x32, 127),
	signed("octave-shift", 0x34, 61, 67, -3, 3),
	unsigned("bend-range-up", 0x35, 24),
	unsigned("bend-range-down", 0x36, 24),
}

var drumPartialSpecs = []Spec{
	enum("assign-type", 0x0c, "MULTI", "SINGLE"),
	unsigned("mute-group", 0x0d, 31),
	unsigned("partial-level", 0x0e, 127),
	unsigned("coarse-tune", 0x0f, 127),
	signed("fine-tune", 0x10, 14, 114, -50, 50),
	unsigned("random-pitch-depth", 0x11, 30),
	signed("pan", 0x12, 0, 127, -64, 63),
	unsigned("random-pan-depth", 0x13, 63),
	signed("alternate-pan-depth", 0x14, 1, 127, -63, 63),
	enum("env-mode", 0x15, "NO-SUS", "SUSTAIN"),
	unsigned("output-level", 0x16, 127),
	wave("wave-number", 0x27),
}

var drumCommonSpecs = []Spec{
	unsigned("kit-level", 0x0c, 127),
}

var programCommonSpecs = []Spec{
	unsigned("program-level", 0x10, 127),
	// Tempo travels as four nibbles of BPM x100 (5.00 to 300.00).
	Spec{Name: "program-tempo", Offset: 0x11, Size: 4, Encoding: Unsigned,
		RawMin: 500, RawMax: 30000, DispMin: 500, DispMax: 30000},
	enum("vocal-effect", 0x16, "OFF", "VOCODER", "AUTO-PITCH"),
}

type table struct {
	byName   map[string]*Spec
	byOffset map[byte]*Spec
	names    []string
}

func newTable(specs []Spec) *table {
	t := &table{
		byName:   make(map[string]*Spec, len(specs)),
		byOffset: make(map[byte]*Spec, len(specs)),
	}
	for i := range specs {
		s := &specs[i]
		t.byName[s.Name] = s
		t.byOffset[s.Offset] = s
		t.names = append(t.names, s.Name)
	}
	sort.Strings(t.names)
	return t
}

type tableKey struct {
	synth  address.SynthType
	common bool
}

var tables = map[tableKey]*table{
	{address.Program, true}:   newTable(programCommonSpecs),
	{address.Digital1, true}:  newTable(digitalCommonSpecs),
	{address.Digital1, false}: newTable(digitalPartialSpecs),
	{address.Digital2, true}:  newTable(digitalCommonSpecs),
	{address.Digital2, false}: newTable(digitalPartialSpecs),
	{address.Analog, true}:    newTable(analogSpecs),
	{address.Drums, true}:     newTable(drumCommonSpecs),
	{address.Drums, false}:    newTable(drumPartialSpecs),
}

func tableFor(s address.SynthType, partial int) (*table, bool) {
	t, ok := tables[tableKey{s, partial == address.CommonPartial}]
	return t, ok
}

// Lookup resolves a parameter ID within a section. The partial index only
// selects between the section's common table and its per-partial table.
func Lookup(s address.SynthType, partial int, name string) (*Spec, error) {
	t, ok := tableFor(s, partial)
	if !ok {
		return nil, &UnknownParameterError{Synth: s.String(), Param: name}
	}
	spec, ok := t.byName[name]
	if !ok {
		return nil, &UnknownParameterError{Synth: s.String(), Param: name}
	}
	return spec, nil
}

// ByOffset finds the parameter that starts at an address offset; the
// receive path uses it to route inbound writes back to a spec.
func ByOffset(s address.SynthType, partial int, off byte) (*Spec, bool) {
	t, ok := tableFor(s, partial)
	if !ok {
		return nil, false
	}
	spec, ok := t.byOffset[off]
	return spec, ok
}

// SectionSize returns the span in bytes from a section block's first
// parameter through the end of its last, the request size that re-reads
// the whole block in one RQ1. Zero when no table exists.
func SectionSize(s address.SynthType, partial int) int {
	t, ok := tableFor(s, partial)
	if !ok {
		return 0
	}
	end := 0
	for _, spec := range t.byOffset {
		if e := int(spec.Offset) + spec.Width(); e > end {
			end = e
		}
	}
	return end
}

// Names lists a table's parameter IDs in sorted order.
func Names(s address.SynthType, partial int) []string {
	t, ok := tableFor(s, partial)
	if !ok {
		return nil
	}
	return t.names
}
