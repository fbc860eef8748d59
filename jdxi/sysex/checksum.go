package sysex

// Checksum computes the Roland 7-bit checksum over the address+data run of
// a frame (area, part, group, offset, value bytes). The device accepts a
// frame when the sum of those bytes plus the checksum is 0 mod 128.
func Checksum(data []byte) byte {
	sum := 0
	for _, b := range data {
		sum += int(b)
	}
	return byte((128 - (sum % 128)) % 128)
}
