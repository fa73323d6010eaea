// Package mocset implements the persistent MOC-set store: a single file
// holding a fixed metadata block, a fixed cumulative byte index, and an
// append-only data region of range payloads. Unlike the FITS codec, every
// integer in this format is little-endian.
//
// Layout (N = n128*128 slots, header size = 16*N bytes):
//
//	[metadata block: N*8 bytes][cumulative index: N*8 bytes][data region...]
//
// Slot 0 of the metadata block stores N itself. Slots 1..N-1 each describe
// one stored MOC: a status byte, a depth byte, and a 48-bit identifier
// packed into the slot's remaining 6 bytes. The first Free slot terminates
// the logical list of stored MOCs. Cumulative index entry k is the byte
// offset at which MOC k's payload ends (entry 0 is the header size, the
// baseline before MOC 1's payload); MOC k's payload size is
// entry[k]-entry[k-1].
//
// Writers are serialized by an advisory flock on an adjacent `<file>.lock`
// companion; readers never take the lock and only ever see a prefix of
// fully-written slots, because the metadata slot is always the last byte
// range touched by Append.
package mocset
