// Package document encodes ordered key/value documents and parses encoded
// documents into a key index without decoding their values.
//
// # Wire Layout
//
//	document := int32 totalSize | element* | 0x00
//	element  := uint8 type | key bytes | 0x00 | value bytes
//
// totalSize counts every byte of the document including itself and the final
// terminator. All integers are little-endian. Value layouts are described in
// package scalar.
//
// # Building and Encoding
//
// A Document is an immutable ordered list of pairs. Order is preserved by the
// encoder and duplicate keys are written as given:
//
//	doc := document.New(
//	    document.String("name", "gopher"),
//	    document.Int32("age", 13),
//	    document.Sub("address", document.New(
//	        document.String("city", "Berlin"),
//	    )),
//	)
//	data, err := document.Encode(doc)
//
// Builder accumulates pairs with ordinary control flow when the pair list is
// not known up front:
//
//	b := document.NewBuilder()
//	b.Append(document.Boolean("active", true))
//	b.AppendIf(user.Admin, document.String("role", "admin"))
//	for i, tag := range tags {
//	    b.Append(document.String(strconv.Itoa(i), tag))
//	}
//	doc := b.Build()
//
// # Parsing
//
// Parse scans an encoded document once and records, per key, the type tag and
// the byte range of the still-encoded value. Values are decoded on demand:
//
//	p, err := document.Parse(data)
//	if err != nil {
//	    return err // wraps errs.ErrMalformedDocument
//	}
//	age, err := p.Int32("age")
//
// When a key occurs more than once the last occurrence wins. By default the
// parsed view borrows the input slice, which must not be modified while the
// view is in use; WithCopy makes the view own a private copy.
//
// # Thread Safety
//
// Documents and parsed views are immutable after construction and safe for
// concurrent reads. Builder and Encoder are not safe for concurrent use.
package document
