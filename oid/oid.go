// Package oid implements ObjectID, the 12-byte identifier used as a document key.
//
// # Layout
//
//	bytes 0-3   timestamp, seconds since the Unix epoch, signed, big-endian
//	bytes 4-8   random bytes, opaque
//	bytes 9-11  counter, 24-bit, big-endian
//
// The text form is 24 lowercase hex digits in the same byte order. Because the
// timestamp leads and is big-endian, ids created in different seconds sort by
// creation time, but only equality is meaningful.
//
//	id := oid.New()
//	s := id.Hex()            // "65f1c2a0..."
//	back, ok := oid.FromHex(s)
//	// back == id, ok == true
package oid

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/arloliu/bsonkit/endian"
	"github.com/arloliu/bsonkit/errs"
)

// Size is the binary size of an ObjectID.
const Size = 12

// HexLength is the length of the hex form of an ObjectID.
const HexLength = 2 * Size

const (
	timestampSize = 4
	randomSize    = 5
	counterOffset = timestampSize + randomSize
	counterMask   = 0xFFFFFF
)

// ObjectID is a 12-byte identifier. The zero value is the all-zero id.
type ObjectID [Size]byte

// Nil is the all-zero ObjectID.
var Nil ObjectID

var engine = endian.Identifier()

// New returns an id stamped with the current time, fresh random bytes and a
// random non-zero counter.
func New() ObjectID {
	return NewWithTime(time.Now())
}

// NewWithTime returns an id stamped with t truncated to whole seconds.
func NewWithTime(t time.Time) ObjectID {
	var id ObjectID

	engine.PutUint32(id[0:timestampSize], uint32(int32(t.Unix()))) //nolint:gosec

	r := rand.Uint64()
	for i := range randomSize {
		id[timestampSize+i] = byte(r >> (8 * i))
	}

	id.setCounter(rand.Uint32N(counterMask) + 1)

	return id
}

// FromParts assembles an id from its fields. The counter is truncated to 24 bits.
func FromParts(timestamp int32, random [5]byte, counter uint32) ObjectID {
	var id ObjectID

	engine.PutUint32(id[0:timestampSize], uint32(timestamp)) //nolint:gosec
	copy(id[timestampSize:counterOffset], random[:])
	id.setCounter(counter)

	return id
}

// FromHex decodes a 24-character hex string. It returns false for any other
// length or a non-hex character.
func FromHex(s string) (ObjectID, bool) {
	var id ObjectID
	if len(s) != HexLength {
		return Nil, false
	}

	if _, err := hex.Decode(id[:], []byte(s)); err != nil {
		return Nil, false
	}

	return id, true
}

// ParseHex is FromHex with an error result.
func ParseHex(s string) (ObjectID, error) {
	id, ok := FromHex(s)
	if !ok {
		return Nil, fmt.Errorf("%w: %q", errs.ErrInvalidHexIdentifier, s)
	}

	return id, nil
}

// FromBytes copies exactly 12 bytes into an id.
func FromBytes(b []byte) (ObjectID, error) {
	var id ObjectID
	if len(b) != Size {
		return Nil, errs.SizeMismatch(Size, len(b))
	}
	copy(id[:], b)

	return id, nil
}

// Hex returns the 24-character lowercase hex form.
func (id ObjectID) Hex() string {
	return hex.EncodeToString(id[:])
}

func (id ObjectID) String() string {
	return id.Hex()
}

// Bytes returns a copy of the 12 id bytes.
func (id ObjectID) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, id[:])

	return b
}

// Timestamp returns the signed seconds since the Unix epoch.
func (id ObjectID) Timestamp() int32 {
	return int32(engine.Uint32(id[0:timestampSize])) //nolint:gosec
}

// Time returns the timestamp as a time.Time.
func (id ObjectID) Time() time.Time {
	return time.Unix(int64(id.Timestamp()), 0)
}

// Random returns the five random bytes.
func (id ObjectID) Random() [5]byte {
	var r [5]byte
	copy(r[:], id[timestampSize:counterOffset])

	return r
}

// Counter returns the 24-bit counter as a signed value in [-2^23, 2^23).
func (id ObjectID) Counter() int32 {
	c := int32(id.counter()) //nolint:gosec
	if c&0x800000 != 0 {
		c -= 1 << 24
	}

	return c
}

// IncrementByOne adds one to the counter, wrapping at 24 bits. The timestamp
// and random bytes are unchanged.
func (id *ObjectID) IncrementByOne() {
	id.setCounter(id.counter() + 1)
}

// IsZero reports whether id is the all-zero id.
func (id ObjectID) IsZero() bool {
	return id == Nil
}

// Equal reports whether all 12 bytes match.
func (id ObjectID) Equal(other ObjectID) bool {
	return id == other
}

// Compare orders ids byte-wise. The order carries no meaning beyond equality
// and creation-second grouping.
func (id ObjectID) Compare(other ObjectID) int {
	return bytes.Compare(id[:], other[:])
}

// MarshalText implements encoding.TextMarshaler.
func (id ObjectID) MarshalText() ([]byte, error) {
	return []byte(id.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ObjectID) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*id = parsed

	return nil
}

func (id ObjectID) counter() uint32 {
	return uint32(id[counterOffset])<<16 | uint32(id[counterOffset+1])<<8 | uint32(id[counterOffset+2])
}

func (id *ObjectID) setCounter(c uint32) {
	c &= counterMask
	id[counterOffset] = byte(c >> 16)
	id[counterOffset+1] = byte(c >> 8)
	id[counterOffset+2] = byte(c)
}
