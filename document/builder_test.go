package document

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	admin := false
	tags := []string{"red", "green"}

	b := NewBuilder()
	b.Append(String("name", "gopher"), Int32("age", 13))
	b.AppendIf(admin, String("role", "admin"))
	b.AppendIf(!admin, String("role", "user"))
	for i, tag := range tags {
		b.Append(String("tag"+strconv.Itoa(i), tag))
	}
	b.Embed("address", func(nb *Builder) {
		nb.Append(String("city", "Berlin"))
	})

	require.Equal(t, 6, b.Len())

	doc := b.Build()
	keys := make([]string, 0, doc.Len())
	for _, p := range doc.Pairs() {
		keys = append(keys, p.Key())
	}
	require.Equal(t, []string{"name", "age", "role", "tag0", "tag1", "address"}, keys)

	role, _ := doc.Get("role")
	v, _ := role.Value().AsString()
	require.Equal(t, "user", v)

	addr, _ := doc.Get("address")
	nested, ok := addr.Document()
	require.True(t, ok)
	require.Equal(t, `{"city": "Berlin"}`, nested.String())
}

func TestBuilder_BuildIsSnapshot(t *testing.T) {
	b := NewBuilder().Append(Int32("a", 1))
	first := b.Build()

	b.Append(Int32("b", 2))
	require.Equal(t, 1, first.Len())
	require.Equal(t, 2, b.Build().Len())

	b.Reset()
	require.Equal(t, 0, b.Len())
	require.Equal(t, 1, first.Len())
}

func TestBuilder_AppendDocument(t *testing.T) {
	base := New(Int32("a", 1), Int32("b", 2))

	doc := NewBuilder().
		AppendDocument(base).
		AppendDocument(nil).
		Append(Int32("c", 3)).
		Build()

	require.Equal(t, `{"a": 1, "b": 2, "c": 3}`, doc.String())
}
