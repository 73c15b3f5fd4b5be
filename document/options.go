package document

import (
	"fmt"
	"math"

	"github.com/arloliu/bsonkit/format"
	"github.com/arloliu/bsonkit/internal/options"
)

// DefaultMaxDepth is the default nesting limit used by Parsed.Validate.
const DefaultMaxDepth = 100

// EncoderConfig holds the settings of an Encoder.
type EncoderConfig struct {
	maxDocumentSize int
	validateKeys    bool
	validateStrings bool
	initialBufSize  int
}

func defaultEncoderConfig() EncoderConfig {
	return EncoderConfig{
		maxDocumentSize: math.MaxInt32,
		validateKeys:    true,
		validateStrings: true,
	}
}

// EncoderOption configures an Encoder.
// This is a type alias for the generic Option interface specialized for EncoderConfig.
type EncoderOption = options.Option[*EncoderConfig]

// WithMaxDocumentSize rejects documents whose encoding exceeds n bytes.
// n must be between 5 and math.MaxInt32.
func WithMaxDocumentSize(n int) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if n < format.MinDocumentSize || n > math.MaxInt32 {
			return fmt.Errorf("invalid max document size: %d", n)
		}
		c.maxDocumentSize = n

		return nil
	})
}

// WithKeyValidation enables or disables key checks. When disabled, keys
// containing 0x00 produce output that Parse cannot read back.
func WithKeyValidation(enabled bool) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.validateKeys = enabled
	})
}

// WithStringValidation enables or disables the UTF-8 check on String values.
// When disabled, invalid strings are written as given and only read back by a
// parser using WithUTF8Validation(false).
func WithStringValidation(enabled bool) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.validateStrings = enabled
	})
}

// WithInitialBufferSize sizes the pooled encode buffers of the Encoder.
func WithInitialBufferSize(n int) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if n <= 0 {
			return fmt.Errorf("invalid initial buffer size: %d", n)
		}
		c.initialBufSize = n

		return nil
	})
}

// ParseConfig holds the settings of Parse.
type ParseConfig struct {
	copyInput    bool
	maxDepth     int
	validateUTF8 bool
}

func defaultParseConfig() ParseConfig {
	return ParseConfig{
		maxDepth:     DefaultMaxDepth,
		validateUTF8: true,
	}
}

// ParseOption configures Parse.
type ParseOption = options.Option[*ParseConfig]

// WithCopy makes the parsed view own a private copy of the input.
func WithCopy() ParseOption {
	return options.NoError(func(c *ParseConfig) {
		c.copyInput = true
	})
}

// WithMaxDepth bounds the nesting depth checked by Parsed.Validate.
func WithMaxDepth(depth int) ParseOption {
	return options.New(func(c *ParseConfig) error {
		if depth < 1 {
			return fmt.Errorf("invalid max depth: %d", depth)
		}
		c.maxDepth = depth

		return nil
	})
}

// WithUTF8Validation selects whether string accessors reject malformed UTF-8.
func WithUTF8Validation(enabled bool) ParseOption {
	return options.NoError(func(c *ParseConfig) {
		c.validateUTF8 = enabled
	})
}
