package address

import "fmt"

// InvalidPartialError indicates a partial index outside the section's
// supported range.
type InvalidPartialError struct {
	Synth   SynthType
	Partial int
	Max     int
}

func (e *InvalidPartialError) Error() string {
	if e.Max == 0 {
		return fmt.Sprintf("%s has no partials, only a common block", e.Synth)
	}
	return fmt.Sprintf("partial %d out of range for %s: valid range is 1-%d", e.Partial, e.Synth, e.Max)
}
