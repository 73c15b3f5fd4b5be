package scalar

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/arloliu/bsonkit/endian"
	"github.com/arloliu/bsonkit/errs"
	"github.com/arloliu/bsonkit/format"
)

// MaxStringLength is the largest string byte length whose prefix (len+1) fits in an int32.
const MaxStringLength = math.MaxInt32 - 1

var wire = endian.Wire()

// AppendFloat64 appends the 8-byte IEEE-754 bit pattern of v.
func AppendFloat64(dst []byte, v float64) []byte {
	return wire.AppendUint64(dst, math.Float64bits(v))
}

// AppendString appends the length-prefixed, NUL-terminated encoding of s.
//
// Returns:
//   - []byte: dst with the encoded string appended
//   - error: ErrInvalidUTF8 if s is not valid UTF-8, ErrStringTooLarge if
//     len(s)+1 does not fit in an int32
func AppendString(dst []byte, s string) ([]byte, error) {
	if !utf8.ValidString(s) {
		return dst, errs.ErrInvalidUTF8
	}

	return AppendRawString(dst, s)
}

// AppendRawString is AppendString without the UTF-8 check. The output only
// decodes with DecodeStringBytes or a parser that skips UTF-8 validation.
func AppendRawString(dst []byte, s string) ([]byte, error) {
	if err := checkStringLength(len(s)); err != nil {
		return dst, err
	}

	dst = wire.AppendUint32(dst, uint32(len(s)+1)) //nolint:gosec
	dst = append(dst, s...)

	return append(dst, 0x00), nil
}

func checkStringLength(n int) error {
	if n > MaxStringLength {
		return fmt.Errorf("%w: %d bytes", errs.ErrStringTooLarge, n)
	}

	return nil
}

// AppendBoolean appends 0x01 for true and 0x00 for false.
func AppendBoolean(dst []byte, v bool) []byte {
	if v {
		return append(dst, 0x01)
	}

	return append(dst, 0x00)
}

// AppendInt32 appends the 4-byte two's complement encoding of v.
func AppendInt32(dst []byte, v int32) []byte {
	return wire.AppendUint32(dst, uint32(v)) //nolint:gosec
}

// AppendUInt64 appends the 8-byte encoding of v.
func AppendUInt64(dst []byte, v uint64) []byte {
	return wire.AppendUint64(dst, v)
}

// AppendInt64 appends the 8-byte two's complement encoding of v.
func AppendInt64(dst []byte, v int64) []byte {
	return wire.AppendUint64(dst, uint64(v)) //nolint:gosec
}

// StringSize returns the encoded size of s including prefix and terminator.
func StringSize(s string) int {
	return format.LengthPrefixSize + len(s) + 1
}
