package scalar

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/arloliu/bsonkit/errs"
	"github.com/arloliu/bsonkit/format"
)

// Value is one scalar value of the document format.
//
// Value is a closed union: its kind is selected by Type and only the
// constructors of this package can build one. The zero Value has Type 0 and is
// invalid; Absent() is the null value.
//
// Embedded documents are carried as their encoded bytes.
type Value struct {
	typ  format.Type
	bits uint64 // float64 bit pattern, bool, and all integer kinds
	str  string
	raw  []byte
}

// Float64 returns a Float64 value.
func Float64(v float64) Value {
	return Value{typ: format.TypeFloat64, bits: math.Float64bits(v)}
}

// String returns a String value.
func String(v string) Value {
	return Value{typ: format.TypeString, str: v}
}

// Boolean returns a Boolean value.
func Boolean(v bool) Value {
	var bits uint64
	if v {
		bits = 1
	}

	return Value{typ: format.TypeBoolean, bits: bits}
}

// Int32 returns an Int32 value.
func Int32(v int32) Value {
	return Value{typ: format.TypeInt32, bits: uint64(int64(v))} //nolint:gosec
}

// UInt64 returns a UInt64 value.
func UInt64(v uint64) Value {
	return Value{typ: format.TypeUInt64, bits: v}
}

// Int64 returns an Int64 value.
func Int64(v int64) Value {
	return Value{typ: format.TypeInt64, bits: uint64(v)} //nolint:gosec
}

// Absent returns the null value.
func Absent() Value {
	return Value{typ: format.TypeAbsent}
}

// Embedded returns a Document value wrapping an already encoded document.
// The slice is not copied; its framing is checked when the value is appended.
func Embedded(encoded []byte) Value {
	return Value{typ: format.TypeDocument, raw: encoded}
}

// Type returns the type tag of v.
func (v Value) Type() format.Type {
	return v.typ
}

// IsValid reports whether v was built by one of the constructors.
func (v Value) IsValid() bool {
	return v.typ.Valid()
}

// AsFloat64 returns the float and true if v is a Float64.
func (v Value) AsFloat64() (float64, bool) {
	if v.typ != format.TypeFloat64 {
		return 0, false
	}

	return math.Float64frombits(v.bits), true
}

// AsString returns the string and true if v is a String.
func (v Value) AsString() (string, bool) {
	if v.typ != format.TypeString {
		return "", false
	}

	return v.str, true
}

// AsBoolean returns the boolean and true if v is a Boolean.
func (v Value) AsBoolean() (bool, bool) {
	if v.typ != format.TypeBoolean {
		return false, false
	}

	return v.bits == 1, true
}

// AsInt32 returns the integer and true if v is an Int32.
func (v Value) AsInt32() (int32, bool) {
	if v.typ != format.TypeInt32 {
		return 0, false
	}

	return int32(v.bits), true //nolint:gosec
}

// AsUInt64 returns the integer and true if v is a UInt64.
func (v Value) AsUInt64() (uint64, bool) {
	if v.typ != format.TypeUInt64 {
		return 0, false
	}

	return v.bits, true
}

// AsInt64 returns the integer and true if v is an Int64.
func (v Value) AsInt64() (int64, bool) {
	if v.typ != format.TypeInt64 {
		return 0, false
	}

	return int64(v.bits), true //nolint:gosec
}

// IsAbsent reports whether v is the null value.
func (v Value) IsAbsent() bool {
	return v.typ == format.TypeAbsent
}

// Raw returns the encoded bytes and true if v is an embedded Document.
func (v Value) Raw() ([]byte, bool) {
	if v.typ != format.TypeDocument {
		return nil, false
	}

	return v.raw, true
}

// Size returns the number of value bytes Append writes.
func (v Value) Size() int {
	switch v.typ {
	case format.TypeString:
		return StringSize(v.str)
	case format.TypeDocument:
		return len(v.raw)
	default:
		n, _ := v.typ.FixedSize()
		return n
	}
}

// Append appends the value bytes of v (without its type tag) to dst.
//
// Returns:
//   - []byte: dst with the value appended
//   - error: ErrInvalidUTF8 or ErrStringTooLarge for strings, ErrMalformedDocument
//     for embedded bytes that fail CheckDocument, ErrUnknownType for the zero Value
func (v Value) Append(dst []byte) ([]byte, error) {
	switch v.typ {
	case format.TypeFloat64:
		return wire.AppendUint64(dst, v.bits), nil
	case format.TypeString:
		return AppendString(dst, v.str)
	case format.TypeDocument:
		if err := CheckDocument(v.raw); err != nil {
			return dst, err
		}

		return append(dst, v.raw...), nil
	case format.TypeBoolean:
		return AppendBoolean(dst, v.bits == 1), nil
	case format.TypeAbsent:
		return dst, nil
	case format.TypeInt32:
		return AppendInt32(dst, int32(v.bits)), nil //nolint:gosec
	case format.TypeUInt64:
		return AppendUInt64(dst, v.bits), nil
	case format.TypeInt64:
		return AppendInt64(dst, int64(v.bits)), nil //nolint:gosec
	default:
		return dst, fmt.Errorf("%w: 0x%02X", errs.ErrUnknownType, uint8(v.typ))
	}
}

// Equal reports whether v and other have the same type and value.
// Floats compare by bit pattern, so NaN equals an identical NaN.
func (v Value) Equal(other Value) bool {
	if v.typ != other.typ {
		return false
	}

	switch v.typ {
	case format.TypeString:
		return v.str == other.str
	case format.TypeDocument:
		return bytes.Equal(v.raw, other.raw)
	default:
		return v.bits == other.bits
	}
}

// String formats v for debugging.
func (v Value) String() string {
	switch v.typ {
	case format.TypeFloat64:
		return strconv.FormatFloat(math.Float64frombits(v.bits), 'g', -1, 64)
	case format.TypeString:
		return strconv.Quote(v.str)
	case format.TypeDocument:
		return fmt.Sprintf("Document(%d bytes)", len(v.raw))
	case format.TypeBoolean:
		return strconv.FormatBool(v.bits == 1)
	case format.TypeAbsent:
		return "null"
	case format.TypeInt32:
		return strconv.FormatInt(int64(int32(v.bits)), 10) //nolint:gosec
	case format.TypeUInt64:
		return strconv.FormatUint(v.bits, 10)
	case format.TypeInt64:
		return strconv.FormatInt(int64(v.bits), 10) //nolint:gosec
	default:
		return "Invalid"
	}
}
