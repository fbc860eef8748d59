// Package program resolves JD-Xi program identities.
//
// On the panel a program is a bank letter A-H plus a slot 1-64. On the wire
// it is a bank-select MSB/LSB pair followed by a program change. Banks come
// in pairs sharing an LSB, with the second bank of each pair offset 64
// program numbers into the same MIDI bank:
//
//	A/B  msb 85  lsb 64   (preset)
//	C/D  msb 85  lsb 65   (preset)
//	E/F  msb 85  lsb 0    (user)
//	G/H  msb 85  lsb 1    (user)
//
// The mapping is taken from the JD-Xi MIDI implementation chart; the
// device ignores a program change whose bank select does not precede it,
// so SelectMessages keeps the CC0, CC32, PC order fixed.
package program

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2"
)

const (
	bankMSB      = 85
	slotsPerBank = 64

	ccBankSelectMSB = 0
	ccBankSelectLSB = 32
)

// bankLSBs maps each bank pair, in letter order, to its bank-select LSB.
var bankLSBs = []byte{64, 65, 0, 1}

// Identity is a program's panel-facing location.
type Identity struct {
	Bank byte // 'A'..'H'
	Slot int  // 1..64
}

func (id Identity) String() string {
	return fmt.Sprintf("%c%02d", id.Bank, id.Slot)
}

// BankSelect is the wire-facing triple a program identity resolves to.
type BankSelect struct {
	MSB, LSB, PC byte
}

func (id Identity) validate() error {
	if id.Bank < 'A' || id.Bank > 'H' {
		return &UnknownBankError{Bank: id.Bank}
	}
	if id.Slot < 1 || id.Slot > slotsPerBank {
		return &SlotOutOfRangeError{Slot: id.Slot}
	}
	return nil
}

// Resolve maps a bank/slot identity to its MSB/LSB/PC triple.
func (id Identity) Resolve() (BankSelect, error) {
	if err := id.validate(); err != nil {
		return BankSelect{}, err
	}
	pair := int(id.Bank-'A') / 2
	pc := id.Slot - 1
	if (id.Bank-'A')%2 == 1 {
		// Second bank of the pair sits in the upper half.
		pc += slotsPerBank
	}
	return BankSelect{MSB: bankMSB, LSB: bankLSBs[pair], PC: byte(pc)}, nil
}

// Unresolve maps a wire triple back to its bank/slot identity.
func Unresolve(sel BankSelect) (Identity, error) {
	if sel.MSB != bankMSB {
		return Identity{}, fmt.Errorf("bank select MSB %d is not a JD-Xi program bank", sel.MSB)
	}
	if sel.PC > 127 {
		return Identity{}, fmt.Errorf("program change %d out of range 0..127", sel.PC)
	}
	pair := -1
	for i, lsb := range bankLSBs {
		if lsb == sel.LSB {
			pair = i
			break
		}
	}
	if pair < 0 {
		return Identity{}, fmt.Errorf("bank select LSB %d is not a JD-Xi program bank", sel.LSB)
	}
	bank := byte('A' + 2*pair)
	slot := int(sel.PC) + 1
	if slot > slotsPerBank {
		bank++
		slot -= slotsPerBank
	}
	return Identity{Bank: bank, Slot: slot}, nil
}

// ParseIdentity reads a panel-style program name such as "A01" or "g64".
func ParseIdentity(s string) (Identity, error) {
	if len(s) < 2 {
		return Identity{}, fmt.Errorf("program %q: want a bank letter followed by a slot number", s)
	}
	bank := s[0]
	if bank >= 'a' && bank <= 'z' {
		bank -= 'a' - 'A'
	}
	var slot int
	if _, err := fmt.Sscanf(s[1:], "%d", &slot); err != nil {
		return Identity{}, fmt.Errorf("program %q: bad slot number: %v", s, err)
	}
	id := Identity{Bank: bank, Slot: slot}
	if err := id.validate(); err != nil {
		return Identity{}, err
	}
	return id, nil
}

// SelectMessages returns the strictly ordered channel-voice sequence that
// selects the program: bank select MSB, bank select LSB, program change.
func (id Identity) SelectMessages(channel uint8) ([]midi.Message, error) {
	sel, err := id.Resolve()
	if err != nil {
		return nil, err
	}
	return []midi.Message{
		midi.ControlChange(channel, ccBankSelectMSB, sel.MSB),
		midi.ControlChange(channel, ccBankSelectLSB, sel.LSB),
		midi.ProgramChange(channel, sel.PC),
	}, nil
}
