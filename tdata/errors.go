package tdata

import (
	"errors"
	"fmt"
)

var (
	// ErrKindMismatch is returned when a value of one kind is stored into
	// a Value already bound to another.
	ErrKindMismatch = errors.New("kind mismatch")
	// ErrNilPayload is returned by SetValue for a nil payload.
	ErrNilPayload = errors.New("nil payload")

	ErrNoBegin         = errors.New("missing begin byte")
	ErrTruncated       = errors.New("truncated record")
	ErrUnknownTag      = errors.New("unknown tag")
	ErrTagMismatch     = errors.New("tag mismatch")
	ErrUnterminated    = errors.New("unterminated record")
	ErrTruncatedVector = errors.New("vector count exceeds elements")
)

// DecodeError reports a structural failure while decoding a record.
type DecodeError struct {
	Offset int  // Offset of the record's begin byte
	Kind   Kind // Kind the decoder expected, if known
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Kind != KindUnbound {
		return fmt.Sprintf("tdata: decode %s: %v at offset %d", e.Kind, e.Err, e.Offset)
	}
	return fmt.Sprintf("tdata: %v at offset %d", e.Err, e.Offset)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func decodeErr(off int, k Kind, err error) error {
	return &DecodeError{Offset: off, Kind: k, Err: err}
}

func mismatchErr(bound, got Kind) error {
	return fmt.Errorf("%w: bound to %s, got %s", ErrKindMismatch, bound, got)
}
