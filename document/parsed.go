package document

import (
	"bytes"
	"fmt"
	"iter"
	"slices"
	"unicode/utf8"

	"github.com/arloliu/bsonkit/errs"
	"github.com/arloliu/bsonkit/format"
	"github.com/arloliu/bsonkit/internal/collision"
	"github.com/arloliu/bsonkit/internal/hash"
	"github.com/arloliu/bsonkit/scalar"
)

// Element is one indexed entry of a parsed document.
type Element struct {
	// Key is the element key.
	Key string
	// Type is the type tag read before the key.
	Type format.Type
	// Data holds the still-encoded value bytes, without the type tag and key.
	// It aliases the parsed source.
	Data []byte
	// Offset is the position of the element's type byte in the source.
	Offset int
}

// Value decodes the element with the scalar decoder of its type.
func (e Element) Value() (scalar.Value, error) {
	return scalar.Decode(e.Type, e.Data)
}

// Parsed is a read-only key index over an encoded document.
//
// Each unique key maps to the type and byte range of its value; for duplicated
// keys the last occurrence wins while the key keeps the position of its first
// occurrence. Keys are indexed by their xxHash64, with an exact-match fallback
// for keys whose hashes collide.
type Parsed struct {
	src   []byte
	cfg   ParseConfig
	elems []Element // indexed by tracker slot
	keys  *collision.Tracker
}

// Bytes returns the parsed source, trimmed to the declared document size.
func (p *Parsed) Bytes() []byte {
	return p.src
}

// Size returns the declared document size.
func (p *Parsed) Size() int {
	return len(p.src)
}

// Len returns the number of unique keys.
func (p *Parsed) Len() int {
	return p.keys.Count()
}

// Fingerprint returns the xxHash64 of the document bytes.
func (p *Parsed) Fingerprint() uint64 {
	return hash.Sum(p.src)
}

// Keys returns the unique keys in order of first occurrence.
func (p *Parsed) Keys() []string {
	return slices.Clone(p.keys.Keys())
}

// All iterates over the unique keys and their elements in order of first occurrence.
func (p *Parsed) All() iter.Seq2[string, Element] {
	return func(yield func(string, Element) bool) {
		for _, e := range p.elems {
			if !yield(e.Key, e) {
				return
			}
		}
	}
}

// Lookup returns the element stored under key.
func (p *Parsed) Lookup(key string) (Element, bool) {
	slot, ok := p.keys.Slot(key, hash.Key(key))
	if !ok {
		return Element{}, false
	}

	return p.elems[slot], true
}

// Has reports whether key is present.
func (p *Parsed) Has(key string) bool {
	_, ok := p.Lookup(key)
	return ok
}

// Type returns the type tag of key.
func (p *Parsed) Type(key string) (format.Type, bool) {
	e, ok := p.Lookup(key)
	return e.Type, ok
}

// Value decodes the value stored under key.
func (p *Parsed) Value(key string) (scalar.Value, error) {
	e, err := p.element(key)
	if err != nil {
		return scalar.Value{}, err
	}

	if e.Type == format.TypeString && !p.cfg.validateUTF8 {
		raw, err := scalar.DecodeStringBytes(e.Data)
		if err != nil {
			return scalar.Value{}, keyError(key, err)
		}

		return scalar.String(string(raw)), nil
	}

	v, err := e.Value()
	if err != nil {
		return scalar.Value{}, keyError(key, err)
	}

	return v, nil
}

// Float64 decodes the Float64 value stored under key.
func (p *Parsed) Float64(key string) (float64, error) {
	e, err := p.typed(key, format.TypeFloat64)
	if err != nil {
		return 0, err
	}

	v, err := scalar.DecodeFloat64(e.Data)
	return v, keyError(key, err)
}

// String decodes the String value stored under key.
// UTF-8 validation follows WithUTF8Validation.
func (p *Parsed) String(key string) (string, error) {
	e, err := p.typed(key, format.TypeString)
	if err != nil {
		return "", err
	}

	raw, err := scalar.DecodeStringBytes(e.Data)
	if err != nil {
		return "", keyError(key, err)
	}
	if p.cfg.validateUTF8 && !utf8.Valid(raw) {
		return "", keyError(key, errs.ErrInvalidUTF8)
	}

	return string(raw), nil
}

// Boolean decodes the Boolean value stored under key.
func (p *Parsed) Boolean(key string) (bool, error) {
	e, err := p.typed(key, format.TypeBoolean)
	if err != nil {
		return false, err
	}

	v, err := scalar.DecodeBoolean(e.Data)
	return v, keyError(key, err)
}

// Int32 decodes the Int32 value stored under key.
func (p *Parsed) Int32(key string) (int32, error) {
	e, err := p.typed(key, format.TypeInt32)
	if err != nil {
		return 0, err
	}

	v, err := scalar.DecodeInt32(e.Data)
	return v, keyError(key, err)
}

// UInt64 decodes the UInt64 value stored under key.
func (p *Parsed) UInt64(key string) (uint64, error) {
	e, err := p.typed(key, format.TypeUInt64)
	if err != nil {
		return 0, err
	}

	v, err := scalar.DecodeUInt64(e.Data)
	return v, keyError(key, err)
}

// Int64 decodes the Int64 value stored under key.
func (p *Parsed) Int64(key string) (int64, error) {
	e, err := p.typed(key, format.TypeInt64)
	if err != nil {
		return 0, err
	}

	v, err := scalar.DecodeInt64(e.Data)
	return v, keyError(key, err)
}

// IsAbsent reports whether key is present and holds the null value.
func (p *Parsed) IsAbsent(key string) bool {
	e, ok := p.Lookup(key)
	return ok && e.Type == format.TypeAbsent
}

// Document parses the embedded document stored under key. The nested view
// shares the source of p and inherits its options.
func (p *Parsed) Document(key string) (*Parsed, error) {
	e, err := p.typed(key, format.TypeDocument)
	if err != nil {
		return nil, err
	}

	cfg := p.cfg
	cfg.copyInput = false

	nested, err := parse(e.Data, cfg)
	if err != nil {
		return nil, keyError(key, err)
	}

	return nested, nil
}

// Validate decodes every value and recursively parses embedded documents up to
// the configured depth.
func (p *Parsed) Validate() error {
	return p.validate(1)
}

func (p *Parsed) validate(depth int) error {
	if depth > p.cfg.maxDepth {
		return fmt.Errorf("%w: limit %d", errs.ErrMaxDepthExceeded, p.cfg.maxDepth)
	}

	for _, e := range p.elems {
		if e.Type == format.TypeDocument {
			nested, err := p.Document(e.Key)
			if err != nil {
				return err
			}
			if err := nested.validate(depth + 1); err != nil {
				return keyError(e.Key, err)
			}

			continue
		}

		if _, err := p.Value(e.Key); err != nil {
			return err
		}
	}

	return nil
}

// ToDocument rebuilds a Document from the unique keys in order of first
// occurrence. Embedded documents are rebuilt recursively.
func (p *Parsed) ToDocument() (*Document, error) {
	pairs := make([]Pair, 0, len(p.elems))
	for _, e := range p.elems {
		if e.Type == format.TypeDocument {
			nested, err := p.Document(e.Key)
			if err != nil {
				return nil, err
			}
			doc, err := nested.ToDocument()
			if err != nil {
				return nil, keyError(e.Key, err)
			}
			pairs = append(pairs, Sub(e.Key, doc))

			continue
		}

		v, err := p.Value(e.Key)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, P(e.Key, v))
	}

	return &Document{pairs: pairs}, nil
}

// Equal reports whether p and other were parsed from identical bytes.
func (p *Parsed) Equal(other *Parsed) bool {
	return bytes.Equal(p.src, other.src)
}

func (p *Parsed) element(key string) (Element, error) {
	e, ok := p.Lookup(key)
	if !ok {
		return Element{}, fmt.Errorf("%w: %q", errs.ErrElementNotFound, key)
	}

	return e, nil
}

func (p *Parsed) typed(key string, typ format.Type) (Element, error) {
	e, err := p.element(key)
	if err != nil {
		return Element{}, err
	}

	if e.Type != typ {
		return Element{}, fmt.Errorf("%w: %q is %s, not %s", errs.ErrTypeMismatch, key, e.Type, typ)
	}

	return e, nil
}

func keyError(key string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("key %q: %w", key, err)
}
