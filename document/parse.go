package document

import (
	"bytes"

	"github.com/arloliu/bsonkit/errs"
	"github.com/arloliu/bsonkit/format"
	"github.com/arloliu/bsonkit/internal/collision"
	"github.com/arloliu/bsonkit/internal/hash"
	"github.com/arloliu/bsonkit/internal/options"
)

// Parse scans an encoded document and builds its key index.
//
// The scan reads the declared size, then walks every element: one type byte,
// the key up to its 0x00 terminator, then a value whose length comes from the
// type (fixed-width kinds) or from the value's own int32 prefix (strings and
// embedded documents). Values are not decoded and nested documents are not
// scanned; see Parsed.Validate for a deep check.
//
// Bytes after the declared size are ignored.
//
// Parameters:
//   - data: the encoded document
//   - opts: WithCopy, WithMaxDepth, WithUTF8Validation
//
// Returns:
//   - *Parsed: the key index
//   - error: an error wrapping ErrMalformedDocument; no partial index is returned
func Parse(data []byte, opts ...ParseOption) (*Parsed, error) {
	cfg := defaultParseConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return parse(data, cfg)
}

func parse(data []byte, cfg ParseConfig) (*Parsed, error) {
	if len(data) < format.LengthPrefixSize {
		return nil, errs.Malformed("need %d bytes for the size prefix, have %d", format.LengthPrefixSize, len(data))
	}

	declared := int(int32(wire.Uint32(data))) //nolint:gosec
	if declared < format.MinDocumentSize {
		return nil, errs.Malformed("declared size %d is below the minimum %d", declared, format.MinDocumentSize)
	}
	if len(data) < declared {
		return nil, errs.Malformed("declared size %d exceeds buffer length %d", declared, len(data))
	}

	src := data[:declared:declared]
	if cfg.copyInput {
		src = bytes.Clone(src)
	}

	p := &Parsed{
		src:  src,
		cfg:  cfg,
		keys: collision.NewTracker(8),
	}

	end := declared - 1
	off := format.LengthPrefixSize
	for off < end {
		elem, next, err := scanElement(src, off, end)
		if err != nil {
			return nil, err
		}
		p.insert(elem)
		off = next
	}

	if src[end] != 0x00 {
		return nil, errs.Malformed("document terminator at offset %d is 0x%02X", end, src[end])
	}

	return p, nil
}

// scanElement reads the element starting at off. Every byte of the element
// must lie before end, the offset of the document terminator.
func scanElement(src []byte, off, end int) (Element, int, error) {
	start := off
	typ := format.Type(src[off])
	off++

	n := bytes.IndexByte(src[off:end], 0x00)
	if n < 0 {
		return Element{}, 0, errs.Malformed("key starting at offset %d has no terminator", off)
	}
	key := string(src[off : off+n])
	off += n + 1

	size, err := valueSize(src, typ, off, end)
	if err != nil {
		return Element{}, 0, err
	}
	if size > end-off {
		return Element{}, 0, errs.Malformed("value of %q (%s, %d bytes) at offset %d runs past the document end", key, typ, size, off)
	}

	elem := Element{
		Key:    key,
		Type:   typ,
		Data:   src[off : off+size : off+size],
		Offset: start,
	}

	return elem, off + size, nil
}

func valueSize(src []byte, typ format.Type, off, end int) (int, error) {
	if size, ok := typ.FixedSize(); ok {
		return size, nil
	}

	switch typ { //nolint: exhaustive
	case format.TypeString, format.TypeDocument:
	default:
		return 0, errs.Malformed("unknown type 0x%02X at offset %d", uint8(typ), off-1)
	}

	if end-off < format.LengthPrefixSize {
		return 0, errs.Malformed("%s length prefix at offset %d runs past the document end", typ, off)
	}
	prefix := int(int32(wire.Uint32(src[off:]))) //nolint:gosec

	if typ == format.TypeString {
		if prefix < 1 {
			return 0, errs.Malformed("string length %d at offset %d is below 1", prefix, off)
		}
		if prefix > end-off-format.LengthPrefixSize {
			return 0, errs.Malformed("string length %d at offset %d runs past the document end", prefix, off)
		}

		return format.LengthPrefixSize + prefix, nil
	}

	if prefix < format.MinDocumentSize {
		return 0, errs.Malformed("embedded document size %d at offset %d is below %d", prefix, off, format.MinDocumentSize)
	}
	if prefix > end-off {
		return 0, errs.Malformed("embedded document size %d at offset %d runs past the document end", prefix, off)
	}

	return prefix, nil
}

func (p *Parsed) insert(elem Element) {
	slot, dup := p.keys.Track(elem.Key, hash.Key(elem.Key))
	if dup {
		p.elems[slot] = elem
		return
	}
	p.elems = append(p.elems, elem)
}
