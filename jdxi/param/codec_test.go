package param

import (
	"testing"

	"github.com/markxbrooks/jdxictl/jdxi/address"
)

func TestSignedOffset(t *testing.T) {
	octave, err := Lookup(address.Digital1, address.CommonPartial, "octave-shift")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}

	tests := []struct {
		display int
		raw     int
	}{
		{-3, 61},
		{-1, 63},
		{0, 64},
		{2, 0x42},
		{3, 67},
	}
	for _, tt := range tests {
		raw, err := octave.ToRaw(tt.display)
		if err != nil {
			t.Fatalf("ToRaw(%d): %v", tt.display, err)
		}
		if raw != tt.raw {
			t.Errorf("ToRaw(%d) = %d, want %d", tt.display, raw, tt.raw)
		}
		display, err := octave.ToDisplay(raw)
		if err != nil {
			t.Fatalf("ToDisplay(%d): %v", raw, err)
		}
		if display != tt.display {
			t.Errorf("ToDisplay(%d) = %d, want %d", raw, display, tt.display)
		}
	}
}

func TestCodecRangeErrors(t *testing.T) {
	octave, err := Lookup(address.Digital1, address.CommonPartial, "octave-shift")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}

	if _, err := octave.ToRaw(4); err == nil {
		t.Error("ToRaw(4): expected OutOfRangeError, got nil")
	} else if _, ok := err.(*OutOfRangeError); !ok {
		t.Errorf("ToRaw(4) error type = %T, want *OutOfRangeError", err)
	}

	// A device could send any byte; out-of-range raws must be rejected.
	if _, err := octave.ToDisplay(0x50); err == nil {
		t.Error("ToDisplay(0x50): expected InvalidRawError, got nil")
	} else if _, ok := err.(*InvalidRawError); !ok {
		t.Errorf("ToDisplay(0x50) error type = %T, want *InvalidRawError", err)
	}
}

func TestScaledMonotonicAndStable(t *testing.T) {
	keyfollow, err := Lookup(address.Digital1, 1, "cutoff-keyfollow")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}

	prev := keyfollow.RawMin - 1
	for d := keyfollow.DispMin; d <= keyfollow.DispMax; d++ {
		raw, err := keyfollow.ToRaw(d)
		if err != nil {
			t.Fatalf("ToRaw(%d): %v", d, err)
		}
		if raw < prev {
			t.Fatalf("ToRaw not monotonic: ToRaw(%d) = %d after %d", d, raw, prev)
		}
		if raw < keyfollow.RawMin || raw > keyfollow.RawMax {
			t.Fatalf("ToRaw(%d) = %d escapes raw range", d, raw)
		}
		prev = raw
	}

	// Round-tripping through the raw domain must be stable once quantized.
	for raw := keyfollow.RawMin; raw <= keyfollow.RawMax; raw++ {
		d1, err := keyfollow.ToDisplay(raw)
		if err != nil {
			t.Fatalf("ToDisplay(%d): %v", raw, err)
		}
		r2, err := keyfollow.ToRaw(d1)
		if err != nil {
			t.Fatalf("ToRaw(%d): %v", d1, err)
		}
		d2, err := keyfollow.ToDisplay(r2)
		if err != nil {
			t.Fatalf("ToDisplay(%d): %v", r2, err)
		}
		if d2 != d1 {
			t.Errorf("round trip drifts: raw %d -> %d -> raw %d -> %d", raw, d1, r2, d2)
		}
	}
}

func TestEnum(t *testing.T) {
	wave, err := Lookup(address.Digital1, 1, "osc-wave")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}

	raw, err := wave.RawForLabel("SUPER-SAW")
	if err != nil {
		t.Fatalf("RawForLabel: %v", err)
	}
	if raw != 6 {
		t.Errorf("RawForLabel(SUPER-SAW) = %d, want 6", raw)
	}
	label, err := wave.Label(raw)
	if err != nil || label != "SUPER-SAW" {
		t.Errorf("Label(%d) = %q, %v; want SUPER-SAW", raw, label, err)
	}
	if _, err := wave.RawForLabel("WOBBLE"); err == nil {
		t.Error("unknown label: expected error, got nil")
	}
	if _, err := wave.Label(99); err == nil {
		t.Error("raw past label list: expected error, got nil")
	}

	display, err := wave.ToDisplay(3)
	if err != nil || display != 3 {
		t.Errorf("ToDisplay(3) = %d, %v; want 3 (TRI)", display, err)
	}
}

func TestLookupErrors(t *testing.T) {
	if _, err := Lookup(address.Digital1, 1, "ring-mod-depth"); err == nil {
		t.Error("unknown parameter: expected error, got nil")
	} else if _, ok := err.(*UnknownParameterError); !ok {
		t.Errorf("error type = %T, want *UnknownParameterError", err)
	}
	// octave-shift lives in the common block, not the partial tables.
	if _, err := Lookup(address.Digital1, 2, "octave-shift"); err == nil {
		t.Error("common parameter looked up in partial table: expected error")
	}
}

func TestByOffset(t *testing.T) {
	spec, ok := ByOffset(address.Drums, 5, 0x27)
	if !ok || spec.Name != "wave-number" {
		t.Fatalf("ByOffset(drums, 5, 0x27) = %v, %v; want wave-number", spec, ok)
	}
	if spec.Width() != 4 {
		t.Errorf("wave-number width = %d, want 4", spec.Width())
	}
	if _, ok := ByOffset(address.Drums, 5, 0x7f); ok {
		t.Error("unmapped offset: expected no match")
	}
}

func TestSectionSize(t *testing.T) {
	// The analog block ends with bend-range-down at 0x36.
	if got := SectionSize(address.Analog, address.CommonPartial); got != 0x37 {
		t.Errorf("SectionSize(analog) = %d, want %d", got, 0x37)
	}
	// The drum voice block ends with the 4-byte wave number at 0x27.
	if got := SectionSize(address.Drums, 1); got != 0x2b {
		t.Errorf("SectionSize(drum voice) = %d, want %d", got, 0x2b)
	}
}
