package document

import (
	"testing"

	"github.com/arloliu/bsonkit/errs"
	"github.com/arloliu/bsonkit/format"
	"github.com/arloliu/bsonkit/scalar"
	"github.com/stretchr/testify/require"
)

func TestEncodePair_Layout(t *testing.T) {
	tests := []struct {
		name string
		pair Pair
		want []byte
	}{
		{
			name: "boolean",
			pair: Boolean("test", true),
			want: []byte{0x08, 't', 'e', 's', 't', 0x00, 0x01},
		},
		{
			name: "int32",
			pair: Int32("n", -1),
			want: []byte{0x10, 'n', 0x00, 0xFF, 0xFF, 0xFF, 0xFF},
		},
		{
			name: "string",
			pair: String("s", "ab"),
			want: []byte{0x02, 's', 0x00, 3, 0, 0, 0, 'a', 'b', 0x00},
		},
		{
			name: "absent",
			pair: Absent("gap"),
			want: []byte{0x0A, 'g', 'a', 'p', 0x00},
		},
		{
			name: "uint64",
			pair: UInt64("u", 2),
			want: []byte{0x11, 'u', 0x00, 2, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name: "int64",
			pair: Int64("i", 3),
			want: []byte{0x12, 'i', 0x00, 3, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name: "float64",
			pair: Float64("f", 1),
			want: []byte{0x01, 'f', 0x00, 0, 0, 0, 0, 0, 0, 0xF0, 0x3F},
		},
		{
			name: "empty nested document",
			pair: Sub("d", New()),
			want: []byte{0x03, 'd', 0x00, 5, 0, 0, 0, 0},
		},
		{
			name: "nested document",
			pair: Sub("d", New(Boolean("b", false))),
			want: []byte{0x03, 'd', 0x00, 9, 0, 0, 0, 0x08, 'b', 0x00, 0x00, 0x00},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodePair(tt.pair)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestAppendPair_InvalidKey(t *testing.T) {
	dst := []byte{0xAA}

	out, err := AppendPair(dst, Boolean("a\x00b", true))
	require.ErrorIs(t, err, errs.ErrInvalidKey)
	require.Equal(t, []byte{0xAA}, out, "dst is left unchanged on error")

	_, err = AppendPair(nil, Boolean("", true))
	require.ErrorIs(t, err, errs.ErrInvalidKey)
}

func TestAppendPair_ZeroValue(t *testing.T) {
	_, err := EncodePair(P("k", scalar.Value{}))
	require.ErrorIs(t, err, errs.ErrUnknownType)
}

func TestPair_Accessors(t *testing.T) {
	p := Int32("count", 7)
	require.Equal(t, "count", p.Key())
	require.Equal(t, format.TypeInt32, p.Type())
	require.True(t, scalar.Int32(7).Equal(p.Value()))
	_, ok := p.Document()
	require.False(t, ok)
	require.Equal(t, `"count": 7`, p.String())

	nested := New(Boolean("x", true))
	s := Sub("inner", nested)
	require.Equal(t, format.TypeDocument, s.Type())
	d, ok := s.Document()
	require.True(t, ok)
	require.Same(t, nested, d)
	require.Equal(t, `"inner": {"x": true}`, s.String())

	empty := Sub("none", nil)
	d, ok = empty.Document()
	require.True(t, ok)
	require.Equal(t, 0, d.Len())
}

func TestValidateKey(t *testing.T) {
	require.NoError(t, ValidateKey("a"))
	require.NoError(t, ValidateKey("ключ"))
	require.ErrorIs(t, ValidateKey(""), errs.ErrInvalidKey)
	require.ErrorIs(t, ValidateKey("\x00"), errs.ErrInvalidKey)
	require.ErrorIs(t, ValidateKey("ab\x00"), errs.ErrInvalidKey)
}
