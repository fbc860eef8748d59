package sysex

import "fmt"

// ByteRangeError indicates a frame argument outside the 7-bit MIDI data
// range. Builders fail with this before emitting any bytes; nothing is
// ever silently truncated.
type ByteRangeError struct {
	Field string
	Value int
}

func (e *ByteRangeError) Error() string {
	return fmt.Sprintf("%s value %d outside MIDI data range 0..127", e.Field, e.Value)
}

// TruncatedError indicates an inbound byte sequence too short to contain a
// complete frame.
type TruncatedError struct {
	Length int
	Min    int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("truncated message: got %d bytes, minimum frame is %d", e.Length, e.Min)
}

// ChecksumError indicates that the trailing checksum of an inbound frame
// does not cover its address+data run.
type ChecksumError struct {
	Want, Got byte
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("checksum mismatch: computed 0x%02X, frame carries 0x%02X", e.Want, e.Got)
}

// ParseError indicates a well-formed-length frame that fails validation:
// bad framing bytes, wrong manufacturer/device/model, or an unknown command.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "parse error: " + e.Reason
}

func parseErrorf(format string, args ...interface{}) *ParseError {
	return &ParseError{Reason: fmt.Sprintf(format, args...)}
}
