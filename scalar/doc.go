// Package scalar encodes and decodes the scalar values of the bsonkit document format.
//
// Every value kind has a one-byte type tag (see package format) and a fixed
// byte layout. Fixed-width numerics are stored little-endian regardless of the
// host byte order:
//
//	Float64   0x01  8 bytes, IEEE-754 bit pattern
//	String    0x02  int32 (len+1) | UTF-8 bytes | 0x00
//	Document  0x03  int32 total size | elements | 0x00
//	Boolean   0x08  1 byte, 0x00 or 0x01
//	Absent    0x0A  0 bytes
//	Int32     0x10  4 bytes, two's complement
//	UInt64    0x11  8 bytes
//	Int64     0x12  8 bytes, two's complement
//
// # Encoding
//
// Encoders follow the append convention of encoding/binary and strconv:
//
//	buf = scalar.AppendInt32(buf, 42)
//	buf, err = scalar.AppendString(buf, "hello")
//
// Strings fail to encode when they are not valid UTF-8 or their length cannot
// be expressed in the int32 prefix; AppendRawString skips the UTF-8 check.
// Embedded documents fail when their bytes do not pass CheckDocument.
//
// # Decoding
//
// Decoders take exactly the value bytes (without the type tag) and reject any
// other length:
//
//	v, err := scalar.DecodeBoolean([]byte{1, 2, 3})
//	// err is *errs.SizeMismatchError{Need: 1, Have: 3}
//
// Decode dispatches on a type tag and returns a Value, the closed union of all
// kinds. Decode failures never have side effects; the caller decides whether
// to propagate them.
package scalar
