package param

import "fmt"

// OutOfRangeError indicates a display value outside a parameter's display
// range. Edits carrying one are rejected before any bytes are built.
type OutOfRangeError struct {
	Param    string
	Value    int
	Min, Max int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s: display value %d out of range %d..%d", e.Param, e.Value, e.Min, e.Max)
}

// InvalidRawError indicates a raw value outside a parameter's raw range,
// typically from a corrupt or mismatched inbound frame.
type InvalidRawError struct {
	Param    string
	Value    int
	Min, Max int
}

func (e *InvalidRawError) Error() string {
	return fmt.Sprintf("%s: raw value %d out of range %d..%d", e.Param, e.Value, e.Min, e.Max)
}

// UnknownParameterError indicates a parameter ID missing from a section's
// table.
type UnknownParameterError struct {
	Synth string
	Param string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("unknown parameter %q for %s", e.Param, e.Synth)
}
