package program

import (
	"bytes"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		id   Identity
		want BankSelect
	}{
		{"first preset", Identity{'A', 1}, BankSelect{85, 64, 0}},
		{"second bank of pair", Identity{'B', 1}, BankSelect{85, 64, 64}},
		{"bank C", Identity{'C', 1}, BankSelect{85, 65, 0}},
		{"bank D end", Identity{'D', 64}, BankSelect{85, 65, 127}},
		{"first user bank", Identity{'E', 1}, BankSelect{85, 0, 0}},
		{"bank F", Identity{'F', 10}, BankSelect{85, 0, 73}},
		{"bank G end", Identity{'G', 64}, BankSelect{85, 1, 63}},
		{"last program", Identity{'H', 64}, BankSelect{85, 1, 127}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.id.Resolve()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolveErrors(t *testing.T) {
	if _, err := (Identity{'I', 1}).Resolve(); err == nil {
		t.Error("bank I: expected UnknownBankError, got nil")
	} else if _, ok := err.(*UnknownBankError); !ok {
		t.Errorf("error type = %T, want *UnknownBankError", err)
	}
	for _, slot := range []int{0, 65, -3} {
		if _, err := (Identity{'A', slot}).Resolve(); err == nil {
			t.Errorf("slot %d: expected SlotOutOfRangeError, got nil", slot)
		} else if _, ok := err.(*SlotOutOfRangeError); !ok {
			t.Errorf("slot %d error type = %T, want *SlotOutOfRangeError", slot, err)
		}
	}
}

func TestUnresolveInvertsResolve(t *testing.T) {
	for bank := byte('A'); bank <= 'H'; bank++ {
		for slot := 1; slot <= 64; slot++ {
			id := Identity{Bank: bank, Slot: slot}
			sel, err := id.Resolve()
			if err != nil {
				t.Fatalf("Resolve(%s): %v", id, err)
			}
			back, err := Unresolve(sel)
			if err != nil {
				t.Fatalf("Unresolve(%+v): %v", sel, err)
			}
			if back != id {
				t.Errorf("Unresolve(Resolve(%s)) = %s", id, back)
			}
		}
	}
}

func TestUnresolveErrors(t *testing.T) {
	if _, err := Unresolve(BankSelect{MSB: 0, LSB: 64, PC: 0}); err == nil {
		t.Error("foreign MSB: expected error, got nil")
	}
	if _, err := Unresolve(BankSelect{MSB: 85, LSB: 7, PC: 0}); err == nil {
		t.Error("unmapped LSB: expected error, got nil")
	}
}

func TestParseIdentity(t *testing.T) {
	tests := []struct {
		in      string
		want    Identity
		wantErr bool
	}{
		{"A01", Identity{'A', 1}, false},
		{"a1", Identity{'A', 1}, false},
		{"g64", Identity{'G', 64}, false},
		{"H64", Identity{'H', 64}, false},
		{"Z01", Identity{}, true},
		{"A65", Identity{}, true},
		{"A00", Identity{}, true},
		{"7", Identity{}, true},
		{"Axx", Identity{}, true},
	}
	for _, tt := range tests {
		got, err := ParseIdentity(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseIdentity(%q): expected error, got %s", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseIdentity(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseIdentity(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestSelectMessages(t *testing.T) {
	msgs, err := Identity{'B', 1}.SelectMessages(0)
	if err != nil {
		t.Fatalf("SelectMessages: %v", err)
	}
	// CC0(msb), CC32(lsb), PC(pc) — strictly in that order.
	want := [][]byte{
		{0xb0, 0x00, 85},
		{0xb0, 0x20, 64},
		{0xc0, 64},
	}
	if len(msgs) != len(want) {
		t.Fatalf("got %d messages, want %d", len(msgs), len(want))
	}
	for i, msg := range msgs {
		if !bytes.Equal(msg.Bytes(), want[i]) {
			t.Errorf("message %d = % X, want % X", i, msg.Bytes(), want[i])
		}
	}
}

func TestLookupRecord(t *testing.T) {
	rec, ok := LookupRecord(Identity{'A', 1})
	if !ok || rec.Name == "" {
		t.Errorf("LookupRecord(A01) = %+v, %v; want a named record", rec, ok)
	}
	if _, ok := LookupRecord(Identity{'H', 64}); ok {
		t.Error("user slot should have no preset record")
	}
}
