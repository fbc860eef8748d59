package param

// ToRaw converts a display value to the parameter's raw MIDI value. It
// fails with OutOfRangeError before producing anything when the display
// value lies outside the spec's display range.
func (s *Spec) ToRaw(display int) (int, error) {
	if display < s.DispMin || display > s.DispMax {
		return 0, &OutOfRangeError{Param: s.Name, Value: display, Min: s.DispMin, Max: s.DispMax}
	}
	switch s.Encoding {
	case SignedOffset:
		return s.Center + display, nil
	case Enum:
		return s.RawMin + (display - s.DispMin), nil
	default:
		return scale(display, s.DispMin, s.DispMax, s.RawMin, s.RawMax), nil
	}
}

// ToDisplay converts a raw MIDI value back to the display domain. A raw
// value outside the spec's raw range fails with InvalidRawError; a device
// can send garbage and the receive path must reject it cleanly.
func (s *Spec) ToDisplay(raw int) (int, error) {
	if raw < s.RawMin || raw > s.RawMax {
		return 0, &InvalidRawError{Param: s.Name, Value: raw, Min: s.RawMin, Max: s.RawMax}
	}
	switch s.Encoding {
	case SignedOffset:
		return raw - s.Center, nil
	case Enum:
		return s.DispMin + (raw - s.RawMin), nil
	default:
		return scale(raw, s.RawMin, s.RawMax, s.DispMin, s.DispMax), nil
	}
}

// scale maps v linearly from one range onto another, rounding to nearest
// and clamping to the target range.
func scale(v, fromMin, fromMax, toMin, toMax int) int {
	fromRange := fromMax - fromMin
	toRange := toMax - toMin
	if fromRange == 0 {
		return toMin
	}
	n := (v - fromMin) * toRange
	// Round half away from zero so negative display ranges stay symmetric.
	var out int
	if n >= 0 {
		out = toMin + (n+fromRange/2)/fromRange
	} else {
		out = toMin + (n-fromRange/2)/fromRange
	}
	return clamp(out, toMin, toMax)
}

func clamp(x, min, max int) int {
	switch {
	case x < min:
		return min
	case x > max:
		return max
	default:
		return x
	}
}
