// Package errs defines the error values returned by the bsonkit codec packages.
//
// Simple failures are reported as sentinel errors that callers compare with
// errors.Is. Failures that carry sizes are reported as *SizeMismatchError and
// *DataTooShortError, both of which unwrap to their sentinel:
//
//	_, err := scalar.DecodeBoolean([]byte{1, 2, 3})
//	if errors.Is(err, errs.ErrSizeMismatch) {
//	    var sm *errs.SizeMismatchError
//	    errors.As(err, &sm) // sm.Need == 1, sm.Have == 3
//	}
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrSizeMismatch reports a fixed-width value with the wrong byte count.
	ErrSizeMismatch = errors.New("size mismatch")
	// ErrDataTooShort reports a variable-width value whose header cannot be read.
	ErrDataTooShort = errors.New("data too short")
	// ErrMalformedDocument reports a structural failure while scanning a document.
	ErrMalformedDocument = errors.New("malformed document")
	// ErrInvalidHexIdentifier reports an object id hex string that cannot be decoded.
	ErrInvalidHexIdentifier = errors.New("invalid hex object id")
	// ErrInvalidObjectID reports an object id built from out-of-range fields.
	ErrInvalidObjectID = errors.New("invalid object id")
	// ErrInvalidUTF8 reports string bytes that are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8 string")
	// ErrInvalidKey reports an empty key or a key containing a 0x00 byte.
	ErrInvalidKey = errors.New("invalid key")
	// ErrStringTooLarge reports a string whose length does not fit the int32 prefix.
	ErrStringTooLarge = errors.New("string too large")
	// ErrDocumentTooLarge reports a document larger than the configured limit.
	ErrDocumentTooLarge = errors.New("document too large")
	// ErrUnknownType reports a type tag outside the supported set.
	ErrUnknownType = errors.New("unknown type tag")
	// ErrTypeMismatch reports a typed accessor used on an element of another type.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrElementNotFound reports a lookup of a key that is not in the document.
	ErrElementNotFound = errors.New("element not found")
	// ErrInvalidBoolean reports a boolean byte other than 0x00 or 0x01.
	ErrInvalidBoolean = errors.New("invalid boolean byte")
	// ErrMaxDepthExceeded reports nested documents deeper than the validation limit.
	ErrMaxDepthExceeded = errors.New("max nesting depth exceeded")
)

// SizeMismatchError is returned when a value needs exactly Need bytes but Have were given.
type SizeMismatchError struct {
	Need int
	Have int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("%s: need %d bytes, have %d", ErrSizeMismatch, e.Need, e.Have)
}

// Unwrap returns ErrSizeMismatch.
func (e *SizeMismatchError) Unwrap() error {
	return ErrSizeMismatch
}

// DataTooShortError is returned when a value needs at least NeedAtLeast bytes but Have were given.
type DataTooShortError struct {
	NeedAtLeast int
	Have        int
}

func (e *DataTooShortError) Error() string {
	return fmt.Sprintf("%s: need at least %d bytes, have %d", ErrDataTooShort, e.NeedAtLeast, e.Have)
}

// Unwrap returns ErrDataTooShort.
func (e *DataTooShortError) Unwrap() error {
	return ErrDataTooShort
}

// SizeMismatch builds a *SizeMismatchError.
func SizeMismatch(need, have int) error {
	return &SizeMismatchError{Need: need, Have: have}
}

// DataTooShort builds a *DataTooShortError.
func DataTooShort(needAtLeast, have int) error {
	return &DataTooShortError{NeedAtLeast: needAtLeast, Have: have}
}

// Malformed wraps ErrMalformedDocument with a formatted reason.
func Malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedDocument, fmt.Sprintf(format, args...))
}
