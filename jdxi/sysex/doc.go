// Package sysex builds and parses Roland JD-Xi System-Exclusive messages.
//
// The JD-Xi speaks Roland's address-mapped SysEx dialect: a parameter lives
// at a 4-level address (area, part, group, offset), a DT1 command writes a
// value at an address, and an RQ1 command requests a range of data starting
// at an address. Every frame shares the header
//
//	F0 41 <device> 00 00 00 0E <command>
//
// and ends with a 7-bit checksum over the address+data run followed by F7.
//
// Frame layouts:
//
//	DT1: F0 41 dev 00 00 00 0E 12 area part group offset value... sum F7
//	RQ1: F0 41 dev 00 00 00 0E 11 area part group offset size(4)  sum F7
//
// All functions here are pure: building a frame performs no I/O, and parsing
// a frame keeps no state between calls. Handing the bytes to a MIDI port is
// the caller's concern.
package sysex
