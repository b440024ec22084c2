package tdata

import (
	"go.uber.org/zap"
)

// Decoder walks a buffer of concatenated records.
//
// Decoding stops for good at the first failed record: the cursor after a
// failure does not point at a record boundary.
type Decoder struct {
	buf    []byte
	pos    int
	count  int
	err    error
	done   bool
	logger *zap.Logger
}

// DecoderOption configures a Decoder.
type DecoderOption func(*Decoder)

// WithOffset starts decoding at off instead of 0.
func WithOffset(off int) DecoderOption {
	return func(d *Decoder) {
		d.pos = off
	}
}

// WithLogger sets the logger used for decode diagnostics (default: the
// package Logger).
func WithLogger(l *zap.Logger) DecoderOption {
	return func(d *Decoder) {
		if l != nil {
			d.logger = l
		}
	}
}

// NewDecoder creates a Decoder over buf.
func NewDecoder(buf []byte, opts ...DecoderOption) *Decoder {
	d := &Decoder{
		buf:    buf,
		logger: Logger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Next decodes the next record into target. It returns false when the
// buffer is exhausted or a record fails; Err distinguishes the two.
//
// target may be fresh or pre-bound to the expected kind. Reusing one bound
// target across records of different kinds fails at the first record of
// another kind.
func (d *Decoder) Next(target *Value) bool {
	if d.done {
		return false
	}
	if d.pos >= len(d.buf) {
		d.done = true
		d.logger.Debug("record buffer exhausted",
			zap.Int("records", d.count),
			zap.Int("offset", d.pos))
		return false
	}

	if err := Decode(target, d.buf, &d.pos); err != nil {
		d.err = err
		d.done = true
		d.logger.Debug("record decode failed",
			zap.Int("offset", d.pos),
			zap.Int("records", d.count),
			zap.Stringer("target", target.Kind()),
			zap.Error(err))
		return false
	}
	d.count++
	return true
}

// Err returns the error that stopped decoding, or nil if the buffer was
// consumed cleanly.
func (d *Decoder) Err() error { return d.err }

// Offset returns the current cursor position.
func (d *Decoder) Offset() int { return d.pos }

// Count returns the number of records decoded so far.
func (d *Decoder) Count() int { return d.count }

// More reports whether Next may still return a record.
func (d *Decoder) More() bool {
	return !d.done && d.pos < len(d.buf)
}

// DecodeAll decodes every record in buf, allocating a fresh target per
// record so records of any kind may follow each other. On failure it
// returns the values decoded so far together with the error.
func DecodeAll(buf []byte, opts ...DecoderOption) ([]Value, error) {
	var out []Value
	dec := NewDecoder(buf, opts...)
	for {
		var v Value
		if !dec.Next(&v) {
			break
		}
		out = append(out, v)
	}
	return out, dec.Err()
}

// DecodeInto decodes every record in buf into a single reused target,
// starting from a copy of target. A target bound to a kind only accepts
// records of that kind; the first other record stops decoding with
// ErrKindMismatch.
func DecodeInto(buf []byte, target Value, opts ...DecoderOption) ([]Value, error) {
	var out []Value
	dec := NewDecoder(buf, opts...)
	v := target.Clone()
	for dec.Next(&v) {
		out = append(out, v.Clone())
	}
	return out, dec.Err()
}

// AppendAll appends the records of values to dst in order. Unbound values
// contribute nothing.
func AppendAll(dst []byte, values ...Value) []byte {
	for i := range values {
		dst = values[i].AppendTo(dst)
	}
	return dst
}

// EncodeAll returns the concatenated records of values.
func EncodeAll(values ...Value) string {
	return string(AppendAll(nil, values...))
}
