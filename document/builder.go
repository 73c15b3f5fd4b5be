package document

import "slices"

// Builder accumulates pairs for a Document.
//
// Conditionals, loops and grouping are plain Go control flow around Append.
// A Builder is not safe for concurrent use.
type Builder struct {
	pairs []Pair
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Append adds pairs in order.
func (b *Builder) Append(pairs ...Pair) *Builder {
	b.pairs = append(b.pairs, pairs...)
	return b
}

// AppendIf adds pairs only when cond is true.
func (b *Builder) AppendIf(cond bool, pairs ...Pair) *Builder {
	if cond {
		b.pairs = append(b.pairs, pairs...)
	}

	return b
}

// AppendDocument adds every pair of doc, flattening it into the builder.
func (b *Builder) AppendDocument(doc *Document) *Builder {
	if doc != nil {
		b.pairs = append(b.pairs, doc.pairs...)
	}

	return b
}

// Embed adds a nested document under key, built by fn on a fresh builder.
func (b *Builder) Embed(key string, fn func(*Builder)) *Builder {
	nested := NewBuilder()
	fn(nested)

	return b.Append(Sub(key, nested.Build()))
}

// Len returns the number of pairs added so far.
func (b *Builder) Len() int {
	return len(b.pairs)
}

// Reset drops all pairs so the builder can be reused.
func (b *Builder) Reset() {
	b.pairs = b.pairs[:0]
}

// Build returns a Document holding a snapshot of the pairs added so far.
func (b *Builder) Build() *Document {
	return &Document{pairs: slices.Clone(b.pairs)}
}
