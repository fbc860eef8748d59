package address

import (
	"testing"

	"github.com/markxbrooks/jdxictl/jdxi/sysex"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		synth   SynthType
		partial int
		want    sysex.Address
	}{
		{
			name:    "program common",
			synth:   Program,
			partial: CommonPartial,
			want:    sysex.Address{Area: 0x18, Part: 0x00, Group: 0x00},
		},
		{
			name:    "digital 1 common",
			synth:   Digital1,
			partial: CommonPartial,
			want:    sysex.Address{Area: 0x19, Part: 0x01, Group: 0x00},
		},
		{
			name:    "digital 1 partial 1",
			synth:   Digital1,
			partial: 1,
			want:    sysex.Address{Area: 0x19, Part: 0x01, Group: 0x20},
		},
		{
			name:    "digital 2 partial 3",
			synth:   Digital2,
			partial: 3,
			want:    sysex.Address{Area: 0x19, Part: 0x21, Group: 0x22},
		},
		{
			name:    "analog block",
			synth:   Analog,
			partial: CommonPartial,
			want:    sysex.Address{Area: 0x19, Part: 0x42, Group: 0x00},
		},
		{
			name:    "first drum voice",
			synth:   Drums,
			partial: 1,
			want:    sysex.Address{Area: 0x19, Part: 0x70, Group: 0x2e},
		},
		{
			name:    "last drum voice",
			synth:   Drums,
			partial: 37,
			want:    sysex.Address{Area: 0x19, Part: 0x70, Group: 0x76},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.synth, tt.partial)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolveInvalidPartial(t *testing.T) {
	tests := []struct {
		name    string
		synth   SynthType
		partial int
	}{
		{"digital partial 4", Digital1, 4},
		{"digital partial -1", Digital1, -1},
		{"drum partial 38", Drums, 38},
		{"analog has no partials", Analog, 1},
		{"program has no partials", Program, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.synth, tt.partial)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if _, ok := err.(*InvalidPartialError); !ok {
				t.Errorf("error type = %T, want *InvalidPartialError", err)
			}
		})
	}
}

func TestSectionInvertsResolve(t *testing.T) {
	for _, synth := range []SynthType{Program, Digital1, Digital2, Analog, Drums} {
		for partial := 0; partial <= NumPartials(synth); partial++ {
			addr, err := Resolve(synth, partial)
			if err != nil {
				t.Fatalf("Resolve(%v, %d): %v", synth, partial, err)
			}
			gotSynth, gotPartial, ok := Section(addr)
			if !ok {
				t.Fatalf("Section(%+v): no match", addr)
			}
			if gotSynth != synth || gotPartial != partial {
				t.Errorf("Section(%+v) = %v/%d, want %v/%d", addr, gotSynth, gotPartial, synth, partial)
			}
		}
	}
}

func TestSectionUnknownAddress(t *testing.T) {
	if _, _, ok := Section(sysex.Address{Area: 0x02, Part: 0x00, Group: 0x00}); ok {
		t.Error("system area should not resolve to a synth section")
	}
	if _, _, ok := Section(sysex.Address{Area: 0x19, Part: 0x70, Group: 0x2f}); ok {
		t.Error("odd drum group should not resolve to a voice")
	}
}

func TestDrumPartials(t *testing.T) {
	if len(DrumPartials) != 37 {
		t.Fatalf("DrumPartials has %d entries, want 37", len(DrumPartials))
	}
	i, err := DrumPartialIndex("bd1")
	if err != nil || i != 1 {
		t.Errorf("DrumPartialIndex(bd1) = %d, %v; want 1, nil", i, err)
	}
	i, err = DrumPartialIndex("OTH2")
	if err != nil || i != 26 {
		t.Errorf("DrumPartialIndex(OTH2) = %d, %v; want 26, nil", i, err)
	}
	if _, err := DrumPartialIndex("KICK9"); err == nil {
		t.Error("unknown voice name: expected error, got nil")
	}
}

func TestParseSynth(t *testing.T) {
	s, err := ParseSynth("Digital2")
	if err != nil || s != Digital2 {
		t.Errorf("ParseSynth(Digital2) = %v, %v", s, err)
	}
	if _, err := ParseSynth("wavestation"); err == nil {
		t.Error("unknown synth name: expected error, got nil")
	}
}
