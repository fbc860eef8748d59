package sysex

// Parsed is a decoded DT1 or RQ1 frame.
type Parsed struct {
	Device  DeviceID
	Address Address

	// Value holds the DT1 payload. Nil for RQ1 frames.
	Value []byte

	// Size is the requested data length of an RQ1 frame. Zero for DT1.
	Size int

	set bool
}

// IsDataSet reports whether the frame was a DT1 write.
func (p *Parsed) IsDataSet() bool { return p.set }

// Parse validates and decodes an inbound byte sequence against the expected
// device identity. It returns a typed error for anything it rejects and
// never panics on short or garbage input; callers on the receive path are
// expected to log and discard failures.
func (id Identity) Parse(frame []byte) (*Parsed, error) {
	if len(frame) < minFrameLen {
		return nil, &TruncatedError{Length: len(frame), Min: minFrameLen}
	}
	if frame[0] != sysExStart {
		return nil, parseErrorf("missing SysEx start: got 0x%02X, expected 0x%02X", frame[0], sysExStart)
	}
	if frame[len(frame)-1] != sysExEnd {
		return nil, parseErrorf("missing SysEx end: got 0x%02X, expected 0x%02X", frame[len(frame)-1], sysExEnd)
	}
	if frame[1] != manufacturerID {
		return nil, parseErrorf("not a Roland message: manufacturer 0x%02X", frame[1])
	}
	if DeviceID(frame[2]) != id.Device {
		return nil, parseErrorf("device ID 0x%02X does not match expected 0x%02X", frame[2], byte(id.Device))
	}
	for i, b := range frame[3:7] {
		if b != id.Model[i] {
			return nil, parseErrorf("model ID byte %d is 0x%02X, expected 0x%02X", i, b, id.Model[i])
		}
	}

	command := frame[7]
	addr := Address{
		Area:   frame[8],
		Part:   frame[9],
		Group:  frame[10],
		Offset: frame[11],
	}
	body := frame[8 : len(frame)-2]
	if got := frame[len(frame)-2]; got != Checksum(body) {
		return nil, &ChecksumError{Want: Checksum(body), Got: got}
	}
	data := body[addrLen:]

	switch command {
	case cmdDT1:
		if len(data) == 0 {
			return nil, parseErrorf("DT1 frame carries no value bytes")
		}
		return &Parsed{Device: id.Device, Address: addr, Value: data, set: true}, nil
	case cmdRQ1:
		if len(data) != sizeLen {
			return nil, parseErrorf("RQ1 size field is %d bytes, expected %d", len(data), sizeLen)
		}
		return &Parsed{Device: id.Device, Address: addr, Size: UnpackNibbles(data)}, nil
	default:
		return nil, parseErrorf("unknown command 0x%02X", command)
	}
}
