// Package jdxi is a library for editing Roland JD-Xi parameters over MIDI.
//
// The subpackages do the protocol work: address locates a parameter in the
// device memory map, param converts between display and raw values, sysex
// frames DT1 writes and RQ1 requests, and program resolves bank/slot
// identities. This package ties them together behind a single edit
// pipeline: a ParameterEdit goes in, a ready-to-send byte sequence comes
// out, and inbound frames decode back into edits.
//
// Nothing here performs I/O. The caller owns the MIDI ports and decides
// when bytes move.
package jdxi

import (
	"fmt"

	"github.com/markxbrooks/jdxictl/jdxi/address"
	"github.com/markxbrooks/jdxictl/jdxi/param"
	"github.com/markxbrooks/jdxictl/jdxi/sysex"
)

// ParameterEdit is one user-facing edit: a parameter named within a synth
// section, and the display value it should take.
type ParameterEdit struct {
	Synth   address.SynthType
	Partial int
	Param   string
	Value   int
}

func (e ParameterEdit) String() string {
	if e.Partial == address.CommonPartial {
		return fmt.Sprintf("%s %s=%d", e.Synth, e.Param, e.Value)
	}
	return fmt.Sprintf("%s partial %d %s=%d", e.Synth, e.Partial, e.Param, e.Value)
}

// Device builds and decodes messages for one JD-Xi. It holds only the
// device identity; all lookup tables are immutable package state, so a
// Device is safe for concurrent use.
type Device struct {
	id sysex.Identity
}

// New returns a Device for the JD-Xi at the given SysEx device ID.
func New(device sysex.DeviceID) *Device {
	return &Device{id: sysex.JDXi(device)}
}

// Identity returns the device identity frames are built for.
func (d *Device) Identity() sysex.Identity { return d.id }

func editAddress(synth address.SynthType, partial int, name string) (sysex.Address, *param.Spec, error) {
	spec, err := param.Lookup(synth, partial, name)
	if err != nil {
		return sysex.Address{}, nil, err
	}
	addr, err := address.Resolve(synth, partial)
	if err != nil {
		return sysex.Address{}, nil, err
	}
	addr.Offset = spec.Offset
	return addr, spec, nil
}

// ApplyEdit converts an edit into a DT1 frame. All validation happens
// before any bytes are produced: a failed edit sends nothing.
func (d *Device) ApplyEdit(e ParameterEdit) ([]byte, error) {
	addr, spec, err := editAddress(e.Synth, e.Partial, e.Param)
	if err != nil {
		return nil, err
	}
	raw, err := spec.ToRaw(e.Value)
	if err != nil {
		return nil, err
	}
	var value []byte
	if spec.Width() == 1 {
		value = []byte{byte(raw)}
	} else {
		value = sysex.PackNibbles(raw, spec.Width())
	}
	return d.id.DataSet(addr, value...)
}

// RequestValue builds an RQ1 frame asking for one parameter's current
// value.
func (d *Device) RequestValue(synth address.SynthType, partial int, name string) ([]byte, error) {
	addr, spec, err := editAddress(synth, partial, name)
	if err != nil {
		return nil, err
	}
	return d.id.Request(addr, spec.Width())
}

// RequestSection builds an RQ1 frame spanning every known parameter of a
// section block, for re-syncing the editor after a desync.
func (d *Device) RequestSection(synth address.SynthType, partial int) ([]byte, error) {
	addr, err := address.Resolve(synth, partial)
	if err != nil {
		return nil, err
	}
	size := param.SectionSize(synth, partial)
	if size == 0 {
		return nil, fmt.Errorf("no parameter table for %s partial %d", synth, partial)
	}
	return d.id.Request(addr, size)
}

// DecodeEdit decodes an inbound DT1 frame back into the edit it carries.
// Frames for unknown sections or parameters fail with an error the caller
// is expected to log and discard; a device desync is recovered by
// re-requesting state, never by crashing the editor.
func (d *Device) DecodeEdit(frame []byte) (*ParameterEdit, error) {
	p, err := d.id.Parse(frame)
	if err != nil {
		return nil, err
	}
	if !p.IsDataSet() {
		return nil, fmt.Errorf("frame is a data request, not a data set")
	}
	synth, partial, ok := address.Section(p.Address)
	if !ok {
		return nil, fmt.Errorf("address %02X %02X %02X is outside the known section map",
			p.Address.Area, p.Address.Part, p.Address.Group)
	}
	spec, ok := param.ByOffset(synth, partial, p.Address.Offset)
	if !ok {
		return nil, fmt.Errorf("no parameter at offset 0x%02X in %s", p.Address.Offset, synth)
	}
	if len(p.Value) != spec.Width() {
		return nil, fmt.Errorf("%s carries %d value bytes, expected %d", spec.Name, len(p.Value), spec.Width())
	}
	var raw int
	if spec.Width() == 1 {
		raw = int(p.Value[0])
	} else {
		raw = sysex.UnpackNibbles(p.Value)
	}
	display, err := spec.ToDisplay(raw)
	if err != nil {
		return nil, err
	}
	return &ParameterEdit{Synth: synth, Partial: partial, Param: spec.Name, Value: display}, nil
}

// FormatEdit renders an edit for humans, using the enum label where the
// parameter has one.
func (d *Device) FormatEdit(e ParameterEdit) string {
	spec, err := param.Lookup(e.Synth, e.Partial, e.Param)
	if err != nil || spec.Encoding != param.Enum {
		return e.String()
	}
	raw, err := spec.ToRaw(e.Value)
	if err != nil {
		return e.String()
	}
	label, err := spec.Label(raw)
	if err != nil {
		return e.String()
	}
	if e.Partial == address.CommonPartial {
		return fmt.Sprintf("%s %s=%s", e.Synth, e.Param, label)
	}
	return fmt.Sprintf("%s partial %d %s=%s", e.Synth, e.Partial, e.Param, label)
}
