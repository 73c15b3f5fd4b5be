package document

import (
	"fmt"
	"strings"

	"github.com/arloliu/bsonkit/errs"
	"github.com/arloliu/bsonkit/format"
	"github.com/arloliu/bsonkit/scalar"
)

// Pair is one key/value entry of a Document.
//
// The value is either a scalar.Value or a nested *Document. Pairs are built with
// the constructors of this package and are immutable.
type Pair struct {
	key   string
	value scalar.Value
	doc   *Document
}

// P returns a pair holding an arbitrary scalar value.
func P(key string, v scalar.Value) Pair {
	return Pair{key: key, value: v}
}

// Sub returns a pair holding a nested document.
func Sub(key string, doc *Document) Pair {
	if doc == nil {
		doc = New()
	}

	return Pair{key: key, doc: doc}
}

// Float64 returns a Float64 pair.
func Float64(key string, v float64) Pair { return P(key, scalar.Float64(v)) }

// String returns a String pair.
func String(key string, v string) Pair { return P(key, scalar.String(v)) }

// Boolean returns a Boolean pair.
func Boolean(key string, v bool) Pair { return P(key, scalar.Boolean(v)) }

// Int32 returns an Int32 pair.
func Int32(key string, v int32) Pair { return P(key, scalar.Int32(v)) }

// UInt64 returns a UInt64 pair.
func UInt64(key string, v uint64) Pair { return P(key, scalar.UInt64(v)) }

// Int64 returns an Int64 pair.
func Int64(key string, v int64) Pair { return P(key, scalar.Int64(v)) }

// Absent returns a pair holding the null value.
func Absent(key string) Pair { return P(key, scalar.Absent()) }

// Key returns the pair key.
func (p Pair) Key() string {
	return p.key
}

// Type returns the type tag written for the pair.
func (p Pair) Type() format.Type {
	if p.doc != nil {
		return format.TypeDocument
	}

	return p.value.Type()
}

// Value returns the scalar value. It is the zero Value for nested document pairs.
func (p Pair) Value() scalar.Value {
	return p.value
}

// Document returns the nested document and true for pairs built with Sub.
func (p Pair) Document() (*Document, bool) {
	return p.doc, p.doc != nil
}

func (p Pair) String() string {
	if p.doc != nil {
		return fmt.Sprintf("%q: %s", p.key, p.doc)
	}

	return fmt.Sprintf("%q: %s", p.key, p.value)
}

// ValidateKey checks that key is non-empty and contains no 0x00 byte.
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", errs.ErrInvalidKey)
	}

	if i := strings.IndexByte(key, 0x00); i >= 0 {
		return fmt.Errorf("%w: %q contains 0x00 at index %d", errs.ErrInvalidKey, key, i)
	}

	return nil
}

// AppendPair appends the encoding of p to dst:
//
//	type tag | key | 0x00 | value bytes
//
// Keys are validated with ValidateKey. Nested documents are encoded recursively.
func AppendPair(dst []byte, p Pair) ([]byte, error) {
	enc := defaultEncoder()
	return enc.appendPair(dst, p)
}

// EncodePair returns the encoding of p in a new slice.
func EncodePair(p Pair) ([]byte, error) {
	return AppendPair(nil, p)
}
