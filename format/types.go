// Package format defines the one-byte type tags of the document wire format.
package format

// Type is the one-byte tag written before every key in an encoded document.
type Type uint8

const (
	TypeFloat64  Type = 0x01 // TypeFloat64 is an IEEE-754 double, 8 bytes.
	TypeString   Type = 0x02 // TypeString is an int32 length prefixed, NUL terminated UTF-8 string.
	TypeDocument Type = 0x03 // TypeDocument is an embedded document.
	TypeBoolean  Type = 0x08 // TypeBoolean is a single 0x00 or 0x01 byte.
	TypeAbsent   Type = 0x0A // TypeAbsent is the null value, zero bytes.
	TypeInt32    Type = 0x10 // TypeInt32 is a signed 32-bit integer, 4 bytes.
	TypeUInt64   Type = 0x11 // TypeUInt64 is an unsigned 64-bit integer, 8 bytes.
	TypeInt64    Type = 0x12 // TypeInt64 is a signed 64-bit integer, 8 bytes.
)

// Fixed value sizes in bytes.
const (
	Float64Size = 8
	BooleanSize = 1
	Int32Size   = 4
	UInt64Size  = 8
	Int64Size   = 8

	// LengthPrefixSize is the size of the int32 prefix of strings and documents.
	LengthPrefixSize = 4
	// MinStringSize is the smallest valid encoded string: prefix plus terminator.
	MinStringSize = LengthPrefixSize + 1
	// MinDocumentSize is the smallest valid encoded document: prefix plus terminator.
	MinDocumentSize = LengthPrefixSize + 1
)

// Valid reports whether t is one of the supported tags.
func (t Type) Valid() bool {
	switch t {
	case TypeFloat64, TypeString, TypeDocument, TypeBoolean, TypeAbsent, TypeInt32, TypeUInt64, TypeInt64:
		return true
	default:
		return false
	}
}

// FixedSize returns the encoded value size of fixed-width tags.
// The second result is false for length-prefixed tags and unknown tags.
func (t Type) FixedSize() (int, bool) {
	switch t { //nolint: exhaustive
	case TypeFloat64:
		return Float64Size, true
	case TypeBoolean:
		return BooleanSize, true
	case TypeInt32:
		return Int32Size, true
	case TypeUInt64:
		return UInt64Size, true
	case TypeInt64:
		return Int64Size, true
	case TypeAbsent:
		return 0, true
	default:
		return 0, false
	}
}

func (t Type) String() string {
	switch t {
	case TypeFloat64:
		return "Float64"
	case TypeString:
		return "String"
	case TypeDocument:
		return "Document"
	case TypeBoolean:
		return "Boolean"
	case TypeAbsent:
		return "Absent"
	case TypeInt32:
		return "Int32"
	case TypeUInt64:
		return "UInt64"
	case TypeInt64:
		return "Int64"
	default:
		return "Unknown"
	}
}
