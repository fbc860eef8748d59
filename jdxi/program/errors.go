package program

import "fmt"

// UnknownBankError indicates a bank letter outside A..H.
type UnknownBankError struct {
	Bank byte
}

func (e *UnknownBankError) Error() string {
	return fmt.Sprintf("unknown bank %q: valid banks are A-H", string(e.Bank))
}

// SlotOutOfRangeError indicates a slot number outside 1..64.
type SlotOutOfRangeError struct {
	Slot int
}

func (e *SlotOutOfRangeError) Error() string {
	return fmt.Sprintf("slot %d out of range: valid range is 1-64", e.Slot)
}
