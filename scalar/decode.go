package scalar

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/arloliu/bsonkit/errs"
	"github.com/arloliu/bsonkit/format"
)

// DecodeFloat64 decodes exactly 8 bytes as an IEEE-754 double.
func DecodeFloat64(data []byte) (float64, error) {
	if len(data) != format.Float64Size {
		return 0, errs.SizeMismatch(format.Float64Size, len(data))
	}

	return math.Float64frombits(wire.Uint64(data)), nil
}

// DecodeString decodes a length-prefixed string and validates it as UTF-8.
//
// Returns:
//   - string: the decoded string without its terminator
//   - error: *DataTooShortError if fewer than 5 bytes are given, *SizeMismatchError
//     if the prefix disagrees with len(data), ErrMalformedDocument if the
//     terminator is missing, ErrInvalidUTF8 for malformed UTF-8
func DecodeString(data []byte) (string, error) {
	raw, err := DecodeStringBytes(data)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(raw) {
		return "", errs.ErrInvalidUTF8
	}

	return string(raw), nil
}

// DecodeStringBytes decodes a length-prefixed string without UTF-8 validation.
// The returned slice aliases data.
func DecodeStringBytes(data []byte) ([]byte, error) {
	if len(data) < format.MinStringSize {
		return nil, errs.DataTooShort(format.MinStringSize, len(data))
	}

	declared := int64(int32(wire.Uint32(data))) //nolint:gosec
	if declared+format.LengthPrefixSize != int64(len(data)) {
		return nil, errs.SizeMismatch(int(declared)+format.LengthPrefixSize, len(data))
	}

	if data[len(data)-1] != 0x00 {
		return nil, errs.Malformed("string is not NUL terminated")
	}

	return data[format.LengthPrefixSize : len(data)-1], nil
}

// DecodeBoolean decodes exactly one byte, which must be 0x00 or 0x01.
func DecodeBoolean(data []byte) (bool, error) {
	if len(data) != format.BooleanSize {
		return false, errs.SizeMismatch(format.BooleanSize, len(data))
	}

	switch data[0] {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, errs.ErrInvalidBoolean
	}
}

// DecodeInt32 decodes exactly 4 bytes as a signed integer.
func DecodeInt32(data []byte) (int32, error) {
	if len(data) != format.Int32Size {
		return 0, errs.SizeMismatch(format.Int32Size, len(data))
	}

	return int32(wire.Uint32(data)), nil //nolint:gosec
}

// DecodeUInt64 decodes exactly 8 bytes as an unsigned integer.
func DecodeUInt64(data []byte) (uint64, error) {
	if len(data) != format.UInt64Size {
		return 0, errs.SizeMismatch(format.UInt64Size, len(data))
	}

	return wire.Uint64(data), nil
}

// DecodeInt64 decodes exactly 8 bytes as a signed integer.
func DecodeInt64(data []byte) (int64, error) {
	if len(data) != format.Int64Size {
		return 0, errs.SizeMismatch(format.Int64Size, len(data))
	}

	return int64(wire.Uint64(data)), nil //nolint:gosec
}

// DecodeAbsent checks that data is empty.
func DecodeAbsent(data []byte) error {
	if len(data) != 0 {
		return errs.SizeMismatch(0, len(data))
	}

	return nil
}

// CheckDocument checks the outer framing of an encoded document: its int32
// prefix must equal len(data) and its last byte must be 0x00. Elements are not
// scanned.
func CheckDocument(data []byte) error {
	if len(data) < format.MinDocumentSize {
		return errs.Malformed("document needs at least %d bytes, have %d", format.MinDocumentSize, len(data))
	}

	declared := int64(int32(wire.Uint32(data))) //nolint:gosec
	if declared != int64(len(data)) {
		return errs.Malformed("document declares %d bytes, have %d", declared, len(data))
	}

	if data[len(data)-1] != 0x00 {
		return errs.Malformed("document is not NUL terminated")
	}

	return nil
}

// Decode decodes the value bytes of the given type into a Value.
//
// Embedded documents are only checked for their framing (see CheckDocument) and
// are returned as raw bytes aliasing data; parse them with document.Parse.
//
// Returns:
//   - Value: the decoded value
//   - error: the error of the type specific decoder, or ErrUnknownType
func Decode(typ format.Type, data []byte) (Value, error) {
	switch typ {
	case format.TypeFloat64:
		v, err := DecodeFloat64(data)
		if err != nil {
			return Value{}, err
		}

		return Float64(v), nil
	case format.TypeString:
		v, err := DecodeString(data)
		if err != nil {
			return Value{}, err
		}

		return String(v), nil
	case format.TypeDocument:
		if err := CheckDocument(data); err != nil {
			return Value{}, err
		}

		return Embedded(data), nil
	case format.TypeBoolean:
		v, err := DecodeBoolean(data)
		if err != nil {
			return Value{}, err
		}

		return Boolean(v), nil
	case format.TypeAbsent:
		if err := DecodeAbsent(data); err != nil {
			return Value{}, err
		}

		return Absent(), nil
	case format.TypeInt32:
		v, err := DecodeInt32(data)
		if err != nil {
			return Value{}, err
		}

		return Int32(v), nil
	case format.TypeUInt64:
		v, err := DecodeUInt64(data)
		if err != nil {
			return Value{}, err
		}

		return UInt64(v), nil
	case format.TypeInt64:
		v, err := DecodeInt64(data)
		if err != nil {
			return Value{}, err
		}

		return Int64(v), nil
	default:
		return Value{}, fmt.Errorf("%w: 0x%02X", errs.ErrUnknownType, uint8(typ))
	}
}
