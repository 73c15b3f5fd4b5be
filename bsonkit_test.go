package bsonkit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bsonkit/document"
	"github.com/arloliu/bsonkit/errs"
	"github.com/arloliu/bsonkit/format"
	"github.com/arloliu/bsonkit/internal/hash"
)

// TestMarshal verifies the canonical single-pair layout
func TestMarshal(t *testing.T) {
	data, err := Marshal(document.New(document.Boolean("test", true)))
	require.NoError(t, err)
	require.Equal(t, []byte{12, 0, 0, 0, 0x08, 't', 'e', 's', 't', 0, 1, 0}, data)
}

// TestMarshal_Empty verifies an empty and a nil document encode identically
func TestMarshal_Empty(t *testing.T) {
	empty, err := Marshal(document.New())
	require.NoError(t, err)
	require.Equal(t, []byte{5, 0, 0, 0, 0}, empty)

	fromNil, err := Marshal(nil)
	require.NoError(t, err)
	require.Equal(t, empty, fromNil)
}

// TestMarshalWith verifies encoder options are applied
func TestMarshalWith(t *testing.T) {
	doc := document.New(document.String("name", "gopher"))

	_, err := MarshalWith(doc, document.WithMaxDocumentSize(10))
	require.ErrorIs(t, err, errs.ErrDocumentTooLarge)

	_, err = MarshalWith(doc, document.WithMaxDocumentSize(1))
	require.Error(t, err)

	data, err := MarshalWith(doc, document.WithInitialBufferSize(64))
	require.NoError(t, err)

	want, err := Marshal(doc)
	require.NoError(t, err)
	require.Equal(t, want, data)
}

// TestParse verifies the facade round trip
func TestParse(t *testing.T) {
	id := NewObjectID()
	data, err := Marshal(document.New(
		id.Pair("_id"),
		document.Float64("pi", 3.25),
		document.Sub("meta", document.New(document.Int64("n", -7))),
	))
	require.NoError(t, err)

	doc, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, []string{"_id", "pi", "meta"}, doc.Keys())

	typ, ok := doc.Type("meta")
	require.True(t, ok)
	require.Equal(t, format.TypeDocument, typ)

	s, err := doc.String("_id")
	require.NoError(t, err)
	back, ok := ObjectIDFromHex(s)
	require.True(t, ok)
	require.Equal(t, id, back)

	pi, err := doc.Float64("pi")
	require.NoError(t, err)
	require.InDelta(t, 3.25, pi, 0)

	meta, err := doc.Document("meta")
	require.NoError(t, err)
	n, err := meta.Int64("n")
	require.NoError(t, err)
	require.Equal(t, int64(-7), n)
}

// TestParse_Copy verifies WithCopy detaches the view from the input
func TestParse_Copy(t *testing.T) {
	data, err := Marshal(document.New(document.Int32("n", 1)))
	require.NoError(t, err)

	doc, err := Parse(data, document.WithCopy())
	require.NoError(t, err)

	data[len(data)-5] = 0xFF
	n, err := doc.Int32("n")
	require.NoError(t, err)
	require.Equal(t, int32(1), n)
}

// TestParse_Truncated verifies short input is rejected
func TestParse_Truncated(t *testing.T) {
	_, err := Parse([]byte{5, 0, 0})
	require.ErrorIs(t, err, errs.ErrMalformedDocument)
}

// TestObjectIDFromHex_Invalid verifies bad input is reported
func TestObjectIDFromHex_Invalid(t *testing.T) {
	_, ok := ObjectIDFromHex("not-hex")
	require.False(t, ok)
}

// TestKeyHash verifies the facade matches the index hash
func TestKeyHash(t *testing.T) {
	require.Equal(t, hash.Key("name"), KeyHash("name"))
	require.NotEqual(t, KeyHash("name"), KeyHash("Name"))
}
