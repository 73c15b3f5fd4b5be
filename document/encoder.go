package document

import (
	"fmt"
	"math"
	"sync"

	"github.com/arloliu/bsonkit/endian"
	"github.com/arloliu/bsonkit/errs"
	"github.com/arloliu/bsonkit/format"
	"github.com/arloliu/bsonkit/internal/options"
	"github.com/arloliu/bsonkit/internal/pool"
	"github.com/arloliu/bsonkit/scalar"
)

var wire = endian.Wire()

// Encoder turns documents into their wire encoding.
//
// Encoding builds into a pooled buffer and copies the result out, so the
// returned slices are owned by the caller. An Encoder holds no per-call state
// and may be shared between goroutines.
type Encoder struct {
	cfg  EncoderConfig
	pool *pool.ByteBufferPool
}

// NewEncoder creates an Encoder.
//
// Parameters:
//   - opts: WithMaxDocumentSize, WithKeyValidation, WithStringValidation, WithInitialBufferSize
//
// Returns:
//   - *Encoder: the configured encoder
//   - error: an invalid option value
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	cfg := defaultEncoderConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	enc := &Encoder{cfg: cfg}
	if cfg.initialBufSize > 0 {
		enc.pool = pool.NewByteBufferPool(cfg.initialBufSize, max(cfg.initialBufSize, pool.DocumentBufferMaxThreshold))
	}

	return enc, nil
}

var defaultEncoder = sync.OnceValue(func() *Encoder {
	enc, _ := NewEncoder()
	return enc
})

// Encode encodes doc with the default encoder.
func Encode(doc *Document) ([]byte, error) {
	return defaultEncoder().Encode(doc)
}

// Encode returns the encoding of doc:
//
//	int32 totalSize | pairs in order | 0x00
//
// Returns:
//   - []byte: the encoded document
//   - error: ErrInvalidKey, ErrInvalidUTF8, ErrStringTooLarge, ErrMalformedDocument
//     (embedded bytes), ErrDocumentTooLarge or ErrUnknownType
func (e *Encoder) Encode(doc *Document) ([]byte, error) {
	bb := e.getBuffer()
	defer e.putBuffer(bb)

	if doc != nil {
		bb.Grow(doc.Size())
	}

	var err error
	bb.B, err = e.appendDocument(bb.B, doc)
	if err != nil {
		return nil, err
	}

	return bb.Clone(), nil
}

// Append appends the encoding of doc to dst.
func (e *Encoder) Append(dst []byte, doc *Document) ([]byte, error) {
	return e.appendDocument(dst, doc)
}

func (e *Encoder) getBuffer() *pool.ByteBuffer {
	if e.pool != nil {
		return e.pool.Get()
	}

	return pool.GetDocumentBuffer()
}

func (e *Encoder) putBuffer(bb *pool.ByteBuffer) {
	if e.pool != nil {
		e.pool.Put(bb)
		return
	}

	pool.PutDocumentBuffer(bb)
}

func (e *Encoder) appendDocument(dst []byte, doc *Document) ([]byte, error) {
	start := len(dst)
	dst = append(dst, 0, 0, 0, 0)

	var err error
	if doc != nil {
		for _, p := range doc.pairs {
			dst, err = e.appendPair(dst, p)
			if err != nil {
				return dst[:start], err
			}
		}
	}
	dst = append(dst, 0x00)

	size := len(dst) - start
	if size > e.cfg.maxDocumentSize || size > math.MaxInt32 {
		return dst[:start], fmt.Errorf("%w: %d bytes exceeds %d", errs.ErrDocumentTooLarge, size, e.cfg.maxDocumentSize)
	}
	wire.PutUint32(dst[start:start+format.LengthPrefixSize], uint32(size)) //nolint:gosec

	return dst, nil
}

func (e *Encoder) appendPair(dst []byte, p Pair) ([]byte, error) {
	if e.cfg.validateKeys {
		if err := ValidateKey(p.key); err != nil {
			return dst, err
		}
	}

	start := len(dst)
	dst = append(dst, byte(p.Type()))
	dst = append(dst, p.key...)
	dst = append(dst, 0x00)

	var err error
	if p.doc != nil {
		dst, err = e.appendDocument(dst, p.doc)
	} else if str, ok := p.value.AsString(); ok && !e.cfg.validateStrings {
		dst, err = scalar.AppendRawString(dst, str)
	} else {
		dst, err = p.value.Append(dst)
	}
	if err != nil {
		return dst[:start], fmt.Errorf("key %q: %w", p.key, err)
	}

	return dst, nil
}
