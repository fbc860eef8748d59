package sysex

const (
	universalNonRealtime = 0x7e
	subIDGeneralInfo     = 0x06
	subIDIdentityRequest = 0x01
	subIDIdentityReply   = 0x02
)

// IdentityRequest returns the universal identity-request frame used to
// detect a JD-Xi on a port before any addressed traffic is sent.
func IdentityRequest(device DeviceID) []byte {
	return []byte{
		sysExStart, universalNonRealtime, byte(device),
		subIDGeneralInfo, subIDIdentityRequest,
		sysExEnd,
	}
}

// ParseIdentityReply checks an identity-reply frame and reports whether it
// came from a JD-Xi, returning the responding device ID.
func ParseIdentityReply(frame []byte) (DeviceID, error) {
	// F0 7E dev 06 02 41 <family(2)> <family number(2)> <version(4)> F7
	const replyLen = 15
	if len(frame) < replyLen {
		return 0, &TruncatedError{Length: len(frame), Min: replyLen}
	}
	if frame[0] != sysExStart || frame[len(frame)-1] != sysExEnd {
		return 0, parseErrorf("not a SysEx frame")
	}
	if frame[1] != universalNonRealtime || frame[3] != subIDGeneralInfo || frame[4] != subIDIdentityReply {
		return 0, parseErrorf("not an identity reply")
	}
	if frame[5] != manufacturerID {
		return 0, parseErrorf("identity reply from manufacturer 0x%02X, not Roland", frame[5])
	}
	if frame[6] != modelID[3] {
		return 0, parseErrorf("identity reply from family 0x%02X, not a JD-Xi", frame[6])
	}
	return DeviceID(frame[2]), nil
}
