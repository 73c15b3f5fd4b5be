package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypeTags(t *testing.T) {
	require.Equal(t, Type(0x01), TypeFloat64)
	require.Equal(t, Type(0x02), TypeString)
	require.Equal(t, Type(0x03), TypeDocument)
	require.Equal(t, Type(0x08), TypeBoolean)
	require.Equal(t, Type(0x0A), TypeAbsent)
	require.Equal(t, Type(0x10), TypeInt32)
	require.Equal(t, Type(0x11), TypeUInt64)
	require.Equal(t, Type(0x12), TypeInt64)
}

func TestType_FixedSize(t *testing.T) {
	tests := []struct {
		typ   Type
		size  int
		fixed bool
	}{
		{TypeFloat64, 8, true},
		{TypeBoolean, 1, true},
		{TypeInt32, 4, true},
		{TypeUInt64, 8, true},
		{TypeInt64, 8, true},
		{TypeAbsent, 0, true},
		{TypeString, 0, false},
		{TypeDocument, 0, false},
		{Type(0x7F), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			size, fixed := tt.typ.FixedSize()
			require.Equal(t, tt.size, size)
			require.Equal(t, tt.fixed, fixed)
		})
	}
}

func TestType_Valid(t *testing.T) {
	for _, typ := range []Type{TypeFloat64, TypeString, TypeDocument, TypeBoolean, TypeAbsent, TypeInt32, TypeUInt64, TypeInt64} {
		require.True(t, typ.Valid(), typ.String())
	}

	for _, typ := range []Type{0x00, 0x04, 0x07, 0x09, 0x13, 0xFF} {
		require.False(t, typ.Valid())
		require.Equal(t, "Unknown", typ.String())
	}
}
