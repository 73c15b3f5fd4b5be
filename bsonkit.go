// Package bsonkit provides a compact binary document codec with a BSON-like
// wire format, and a 12-byte ObjectID identifier.
//
// A document is an ordered sequence of key/value pairs. Encoding produces a
// self-delimiting byte sequence; parsing produces a read-only index from key to
// the byte range of its value, so individual values are decoded lazily.
//
// # Wire Format
//
//	document := int32 total_size | element* | 0x00
//	element  := type_tag | key | 0x00 | value
//
// All integers and floats are little-endian. Supported value kinds:
//
//	0x01 Float64   8 bytes IEEE-754
//	0x02 String    int32 length (including NUL) | UTF-8 bytes | 0x00
//	0x03 Document  embedded document
//	0x08 Boolean   1 byte, 0x00 or 0x01
//	0x0A Absent    no payload
//	0x10 Int32     4 bytes
//	0x11 UInt64    8 bytes
//	0x12 Int64     8 bytes
//
// # Basic Usage
//
// Encoding:
//
//	data, err := bsonkit.Marshal(document.New(
//	    document.String("name", "gopher"),
//	    document.Int32("age", 13),
//	))
//
// Parsing:
//
//	doc, err := bsonkit.Parse(data)
//	name, err := doc.String("name")
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the document and
// oid packages. For builder APIs, encoder reuse and typed accessors use the
// document package directly.
package bsonkit

import (
	"github.com/arloliu/bsonkit/document"
	"github.com/arloliu/bsonkit/internal/hash"
	"github.com/arloliu/bsonkit/oid"
)

// Marshal encodes doc into a freshly allocated byte slice.
//
// Parameters:
//   - doc: The document to encode. A nil document encodes as an empty document.
//
// Returns:
//   - []byte: The encoded document, owned by the caller.
//   - error: An error if a key is invalid, a string is too large, or the result
//     exceeds the default maximum document size.
//
// Example:
//
//	data, err := bsonkit.Marshal(document.New(document.Boolean("test", true)))
//	// data == [12 0 0 0 8 't' 'e' 's' 't' 0 1 0]
func Marshal(doc *document.Document) ([]byte, error) {
	return document.Encode(doc)
}

// MarshalWith encodes doc using an encoder configured by opts.
//
// Parameters:
//   - doc: The document to encode
//   - opts: Encoder options (see document.EncoderOption)
//
// Returns:
//   - []byte: The encoded document.
//   - error: An error if the options are invalid or encoding fails.
//
// Callers encoding many documents with the same options should keep a
// document.Encoder instead.
func MarshalWith(doc *document.Document, opts ...document.EncoderOption) ([]byte, error) {
	enc, err := document.NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	return enc.Encode(doc)
}

// Parse builds a key index over an encoded document.
//
// Parameters:
//   - data: The encoded document. Bytes after the declared size are ignored.
//   - opts: Parse options (see document.ParseOption)
//
// Returns:
//   - *document.Parsed: The parsed view.
//   - error: An error if data is truncated or malformed.
//
// Unless document.WithCopy is given, the result references data and the caller
// must not modify it while the view is in use.
//
// Example:
//
//	doc, err := bsonkit.Parse(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for key, elem := range doc.All() {
//	    fmt.Println(key, elem.Type)
//	}
func Parse(data []byte, opts ...document.ParseOption) (*document.Parsed, error) {
	return document.Parse(data, opts...)
}

// NewObjectID returns a fresh ObjectID stamped with the current time.
func NewObjectID() oid.ObjectID {
	return oid.New()
}

// ObjectIDFromHex decodes a 24-character hex string into an ObjectID.
//
// Returns false if s has the wrong length or contains a non-hex character.
func ObjectIDFromHex(s string) (oid.ObjectID, bool) {
	return oid.FromHex(s)
}

// KeyHash returns the 64-bit hash used to index document keys.
//
// Two keys with equal hashes are still told apart by the parsed index, so the
// hash is only a hint for external caches or sharding.
func KeyHash(key string) uint64 {
	return hash.Key(key)
}
