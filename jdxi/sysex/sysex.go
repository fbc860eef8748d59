package sysex

type DeviceID byte

const (
	// DefaultDevice is the JD-Xi's factory device ID unless otherwise configured.
	DefaultDevice DeviceID = 0x10

	manufacturerID = 0x41

	sysExStart = 0xf0
	sysExEnd   = 0xf7
)

const (
	cmdRQ1 = 0x11
	cmdDT1 = 0x12
)

// modelID is the JD-Xi's 4-byte model number.
var modelID = [4]byte{0x00, 0x00, 0x00, 0x0e}

// Identity identifies which physical device frames are built for and
// accepted from. It is set once at startup and never mutated.
type Identity struct {
	Device DeviceID
	Model  [4]byte
}

// JDXi returns the identity of a JD-Xi listening on the given device ID.
func JDXi(device DeviceID) Identity {
	return Identity{Device: device, Model: modelID}
}

// Address is a parameter's 4-level location in the device memory map.
type Address struct {
	Area, Part, Group, Offset byte
}
