package oid

import (
	"fmt"

	"github.com/arloliu/bsonkit/document"
	"github.com/arloliu/bsonkit/errs"
	"github.com/arloliu/bsonkit/scalar"
)

// Field names of the embedded document form.
const (
	FieldTimestamp = "timestamp"
	FieldRandom    = "random"
	FieldCounter   = "counter"
)

const maxRandom = 1<<40 - 1

// Value returns the id as a String value holding its hex form.
func (id ObjectID) Value() scalar.Value {
	return scalar.String(id.Hex())
}

// Pair returns a String pair holding the hex form of id under key.
func (id ObjectID) Pair(key string) document.Pair {
	return document.P(key, id.Value())
}

// Document returns the embedded document form of id:
//
//	{timestamp: Int32 seconds, random: Int64 of the five random bytes (big-endian), counter: Int32 signed 24-bit}
func (id ObjectID) Document() *document.Document {
	return document.New(
		document.Int32(FieldTimestamp, id.Timestamp()),
		document.Int64(FieldRandom, id.randomInt()),
		document.Int32(FieldCounter, id.Counter()),
	)
}

// FromValue decodes the hex String form produced by Value.
func FromValue(v scalar.Value) (ObjectID, error) {
	s, ok := v.AsString()
	if !ok {
		return Nil, fmt.Errorf("%w: object id stored as %s", errs.ErrTypeMismatch, v.Type())
	}

	return ParseHex(s)
}

// FromDocument decodes the embedded document form produced by Document.
func FromDocument(p *document.Parsed) (ObjectID, error) {
	ts, err := p.Int32(FieldTimestamp)
	if err != nil {
		return Nil, err
	}

	r, err := p.Int64(FieldRandom)
	if err != nil {
		return Nil, err
	}
	if r < 0 || r > maxRandom {
		return Nil, fmt.Errorf("%w: random field %d out of range", errs.ErrInvalidObjectID, r)
	}

	c, err := p.Int32(FieldCounter)
	if err != nil {
		return Nil, err
	}
	if c < -(1<<23) || c >= 1<<23 {
		return Nil, fmt.Errorf("%w: counter field %d out of range", errs.ErrInvalidObjectID, c)
	}

	var random [5]byte
	for i := range random {
		random[i] = byte(r >> (8 * (len(random) - 1 - i)))
	}

	return FromParts(ts, random, uint32(c)), nil //nolint:gosec
}

func (id ObjectID) randomInt() int64 {
	var r int64
	for _, b := range id[timestampSize:counterOffset] {
		r = r<<8 | int64(b)
	}

	return r
}
