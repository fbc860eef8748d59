package sysex

import "fmt"

const (
	headerLen = 8 // F0, manufacturer, device, model x4, command
	addrLen   = 4
	sizeLen   = 4 // RQ1 request size field

	// minFrameLen is the shortest parseable frame: header, address,
	// checksum and the trailing F7. A DT1 additionally carries at least
	// one value byte; an RQ1 carries the 4-byte size field.
	minFrameLen = headerLen + addrLen + 2

	// MaxRequestSize is the largest data run an RQ1 size field can name:
	// four nibbles of four bits each.
	MaxRequestSize = 0xffff
)

func (id Identity) header(command byte) []byte {
	return []byte{
		sysExStart, manufacturerID, byte(id.Device),
		id.Model[0], id.Model[1], id.Model[2], id.Model[3],
		command,
	}
}

func checkByte(field string, v byte) error {
	if v > 0x7f {
		return &ByteRangeError{Field: field, Value: int(v)}
	}
	return nil
}

func (a Address) validate() error {
	if err := checkByte("area", a.Area); err != nil {
		return err
	}
	if err := checkByte("part", a.Part); err != nil {
		return err
	}
	if err := checkByte("group", a.Group); err != nil {
		return err
	}
	return checkByte("offset", a.Offset)
}

// DataSet returns a DT1 frame that writes value bytes at the given address.
// Multi-byte parameters supply their value nibble-packed, one nibble per
// byte. Every byte is validated to 0..127 before any output is produced.
func (id Identity) DataSet(addr Address, value ...byte) ([]byte, error) {
	if err := addr.validate(); err != nil {
		return nil, err
	}
	if len(value) == 0 {
		return nil, fmt.Errorf("DT1 requires at least one value byte")
	}
	for _, v := range value {
		if err := checkByte("value", v); err != nil {
			return nil, err
		}
	}
	body := []byte{addr.Area, addr.Part, addr.Group, addr.Offset}
	body = append(body, value...)
	msg := id.header(cmdDT1)
	msg = append(msg, body...)
	msg = append(msg, Checksum(body))
	msg = append(msg, sysExEnd)
	return msg, nil
}

// Request returns an RQ1 frame asking for size bytes of data starting at
// the given address. The size travels as four 4-bit nibbles, high first.
func (id Identity) Request(addr Address, size int) ([]byte, error) {
	if err := addr.validate(); err != nil {
		return nil, err
	}
	if size < 1 || size > MaxRequestSize {
		return nil, &ByteRangeError{Field: "request size", Value: size}
	}
	body := []byte{addr.Area, addr.Part, addr.Group, addr.Offset}
	body = append(body, PackNibbles(size, sizeLen)...)
	msg := id.header(cmdRQ1)
	msg = append(msg, body...)
	msg = append(msg, Checksum(body))
	msg = append(msg, sysExEnd)
	return msg, nil
}

// PackNibbles encodes v as n bytes of four bits each, high nibble first.
// Wave numbers and the RQ1 size field use this encoding.
func PackNibbles(v, n int) []byte {
	out := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = byte(v & 0x0f)
		v >>= 4
	}
	return out
}

// UnpackNibbles is the inverse of PackNibbles.
func UnpackNibbles(data []byte) int {
	v := 0
	for _, b := range data {
		v = v<<4 | int(b&0x0f)
	}
	return v
}
