// Package endian provides the byte order engines used by the bsonkit wire format.
//
// This package extends Go's standard encoding/binary package by combining
// ByteOrder and AppendByteOrder interfaces into a unified EndianEngine interface.
//
// # Wire Byte Order
//
// The document format pins every fixed-width numeric and every length prefix to
// little-endian, independent of the host. Changing it is a compatibility break:
//
//	engine := endian.Wire()
//	buf = engine.AppendUint32(buf, uint32(size))
//
// Object ids store their timestamp and counter fields big-endian so that the hex
// form sorts by creation time:
//
//	engine := endian.Identifier()
//	ts := engine.Uint32(id[0:4])
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Wire returns the engine for document values and length prefixes (little-endian).
func Wire() EndianEngine {
	return binary.LittleEndian
}

// Identifier returns the engine for object id timestamp and counter fields (big-endian).
func Identifier() EndianEngine {
	return binary.BigEndian
}
