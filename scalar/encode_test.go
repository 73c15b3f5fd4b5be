package scalar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bsonkit/errs"
)

func TestAppendFloat64(t *testing.T) {
	buf := AppendFloat64(nil, 1.0)
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0xF0, 0x3F}, buf)

	buf = AppendFloat64([]byte{0xAA}, -2.5)
	require.Len(t, buf, 9)
	require.Equal(t, byte(0xAA), buf[0])
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0x04, 0xC0}, buf[1:])
}

func TestAppendString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []byte
	}{
		{"empty", "", []byte{1, 0, 0, 0, 0}},
		{"ascii", "abc", []byte{4, 0, 0, 0, 'a', 'b', 'c', 0}},
		{"multibyte", "é", []byte{3, 0, 0, 0, 0xC3, 0xA9, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AppendString(nil, tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, len(tt.want), StringSize(tt.in))
		})
	}
}

func TestAppendString_InvalidUTF8(t *testing.T) {
	dst := []byte{0xAA}
	out, err := AppendString(dst, "a\xffb")
	require.ErrorIs(t, err, errs.ErrInvalidUTF8)
	require.Equal(t, dst, out, "dst is returned unchanged on error")

	raw, err := AppendRawString(nil, "a\xffb")
	require.NoError(t, err)
	require.Equal(t, []byte{4, 0, 0, 0, 'a', 0xFF, 'b', 0}, raw)

	_, err = DecodeString(raw)
	require.ErrorIs(t, err, errs.ErrInvalidUTF8)
	b, err := DecodeStringBytes(raw)
	require.NoError(t, err)
	require.Equal(t, []byte("a\xffb"), b)
}

func TestCheckStringLength(t *testing.T) {
	require.NoError(t, checkStringLength(0))
	require.NoError(t, checkStringLength(MaxStringLength))

	err := checkStringLength(MaxStringLength + 1)
	require.ErrorIs(t, err, errs.ErrStringTooLarge)
	require.Contains(t, err.Error(), "2147483647 bytes")
}

func TestAppendBoolean(t *testing.T) {
	require.Equal(t, []byte{0x01}, AppendBoolean(nil, true))
	require.Equal(t, []byte{0x00}, AppendBoolean(nil, false))
}

func TestAppendIntegers(t *testing.T) {
	require.Equal(t, []byte{0x2A, 0, 0, 0}, AppendInt32(nil, 42))
	require.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, AppendInt32(nil, -1))
	require.Equal(t, []byte{0, 0, 0, 0x80}, AppendInt32(nil, math.MinInt32))

	require.Equal(t, []byte{1, 0, 0, 0, 0, 0, 0, 0}, AppendUInt64(nil, 1))
	require.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, AppendUInt64(nil, math.MaxUint64))

	require.Equal(t, []byte{0xFE, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, AppendInt64(nil, -2))
	require.Equal(t, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, AppendInt64(nil, 0x0102030405060708))
}
