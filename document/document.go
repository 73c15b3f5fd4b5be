package document

import (
	"slices"
	"strings"

	"github.com/arloliu/bsonkit/internal/hash"
)

// Document is an immutable ordered sequence of pairs.
type Document struct {
	pairs []Pair
}

// New returns a document holding pairs in the given order.
// The slice is copied.
func New(pairs ...Pair) *Document {
	return &Document{pairs: slices.Clone(pairs)}
}

// Len returns the number of pairs, counting duplicates.
func (d *Document) Len() int {
	return len(d.pairs)
}

// Pairs returns a copy of the pairs in order.
func (d *Document) Pairs() []Pair {
	return slices.Clone(d.pairs)
}

// At returns the i-th pair. It panics if i is out of range.
func (d *Document) At(i int) Pair {
	return d.pairs[i]
}

// Get returns the last pair with the given key, matching what Parse exposes for
// duplicated keys.
func (d *Document) Get(key string) (Pair, bool) {
	for i := len(d.pairs) - 1; i >= 0; i-- {
		if d.pairs[i].key == key {
			return d.pairs[i], true
		}
	}

	return Pair{}, false
}

// Size returns the encoded size of d in bytes.
func (d *Document) Size() int {
	size := 4 + 1
	for _, p := range d.pairs {
		size += 1 + len(p.key) + 1
		if p.doc != nil {
			size += p.doc.Size()
		} else {
			size += p.value.Size()
		}
	}

	return size
}

// Encode encodes d with the default encoder.
func (d *Document) Encode() ([]byte, error) {
	return Encode(d)
}

func (d *Document) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, p := range d.pairs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteByte('}')

	return sb.String()
}

// Fingerprint returns the xxHash64 of the encoding of d. Documents with the
// same pairs in the same order have the same fingerprint.
func Fingerprint(d *Document) (uint64, error) {
	data, err := Encode(d)
	if err != nil {
		return 0, err
	}

	return hash.Sum(data), nil
}
