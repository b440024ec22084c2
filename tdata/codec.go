package tdata

import (
	"bytes"
	"strconv"
)

// codec writes and parses the payload grammar of a single kind. Framing
// (begin byte, tag, end byte) is shared and handled by AppendRecord and
// scanRecord.
type codec interface {
	kind() Kind
	appendPayload(dst []byte, p Payload) []byte
	parsePayload(b []byte) (Payload, error)
}

var codecs = map[Kind]codec{
	KindInt64:     intCodec{},
	KindReal64:    realCodec{},
	KindStr:       strCodec{},
	KindVecInt64:  vecIntCodec{},
	KindVecReal64: vecRealCodec{},
	KindVecStr:    vecStrCodec{},
}

func codecFor(k Kind) (codec, bool) {
	c, ok := codecs[k]
	return c, ok
}

// ============================================================
// Scalars
// ============================================================

type intCodec struct{}

func (intCodec) kind() Kind { return KindInt64 }

func (intCodec) appendPayload(dst []byte, p Payload) []byte {
	return strconv.AppendInt(dst, int64(p.(Int64)), 10)
}

func (intCodec) parsePayload(b []byte) (Payload, error) {
	return Int64(parseInt(b)), nil
}

type realCodec struct{}

func (realCodec) kind() Kind { return KindReal64 }

func (realCodec) appendPayload(dst []byte, p Payload) []byte {
	return formatReal(dst, float64(p.(Real64)))
}

func (realCodec) parsePayload(b []byte) (Payload, error) {
	return Real64(parseReal(b)), nil
}

type strCodec struct{}

func (strCodec) kind() Kind { return KindStr }

func (strCodec) appendPayload(dst []byte, p Payload) []byte {
	return appendEscaped(dst, string(p.(Str)))
}

func (strCodec) parsePayload(b []byte) (Payload, error) {
	return Str(Unescape(b)), nil
}

// ============================================================
// Vectors
// ============================================================

type vecIntCodec struct{}

func (vecIntCodec) kind() Kind { return KindVecInt64 }

func (vecIntCodec) appendPayload(dst []byte, p Payload) []byte {
	v := p.(VecInt64)
	dst = strconv.AppendInt(dst, int64(len(v)), 10)
	for _, n := range v {
		dst = append(dst, SepByte)
		dst = strconv.AppendInt(dst, n, 10)
	}
	return dst
}

func (vecIntCodec) parsePayload(b []byte) (Payload, error) {
	fields, err := splitVector(b, false)
	if err != nil {
		return nil, err
	}
	out := make(VecInt64, len(fields))
	for i, f := range fields {
		out[i] = parseInt(f)
	}
	return out, nil
}

type vecRealCodec struct{}

func (vecRealCodec) kind() Kind { return KindVecReal64 }

func (vecRealCodec) appendPayload(dst []byte, p Payload) []byte {
	v := p.(VecReal64)
	dst = strconv.AppendInt(dst, int64(len(v)), 10)
	for _, r := range v {
		dst = append(dst, SepByte)
		dst = formatReal(dst, r)
	}
	return dst
}

func (vecRealCodec) parsePayload(b []byte) (Payload, error) {
	fields, err := splitVector(b, false)
	if err != nil {
		return nil, err
	}
	out := make(VecReal64, len(fields))
	for i, f := range fields {
		out[i] = parseReal(f)
	}
	return out, nil
}

type vecStrCodec struct{}

func (vecStrCodec) kind() Kind { return KindVecStr }

func (vecStrCodec) appendPayload(dst []byte, p Payload) []byte {
	v := p.(VecStr)
	dst = strconv.AppendInt(dst, int64(len(v)), 10)
	for _, s := range v {
		dst = append(dst, SepByte)
		dst = appendEscaped(dst, s)
	}
	return dst
}

func (vecStrCodec) parsePayload(b []byte) (Payload, error) {
	fields, err := splitVector(b, true)
	if err != nil {
		return nil, err
	}
	out := make(VecStr, len(fields))
	for i, f := range fields {
		out[i] = Unescape(f)
	}
	return out, nil
}

// splitVector splits "count(:field){count}" into exactly count fields.
// The count is parsed permissively and a negative count reads as zero.
// Fields past count are ignored. When escaped is set, a ':' preceded by
// '\' belongs to the field.
func splitVector(b []byte, escaped bool) ([][]byte, error) {
	head := bytes.IndexByte(b, SepByte)
	if head < 0 {
		head = len(b)
	}
	count := parseInt(b[:head])
	if count <= 0 {
		return nil, nil
	}
	// Every field needs at least its separator.
	if count > int64(len(b)-head) {
		return nil, ErrTruncatedVector
	}

	fields := make([][]byte, 0, count)
	pos := head
	for int64(len(fields)) < count {
		if pos >= len(b) {
			return nil, ErrTruncatedVector
		}
		start := pos + 1
		end := start
		for end < len(b) && (b[end] != SepByte || (escaped && isEscapedAt(b, end))) {
			end++
		}
		fields = append(fields, b[start:end])
		pos = end
	}
	return fields, nil
}

// ============================================================
// Framing
// ============================================================

// AppendRecord appends the record "^<tag><payload>$" for p to dst.
// A nil payload appends nothing.
func AppendRecord(dst []byte, p Payload) []byte {
	if p == nil {
		return dst
	}
	c, ok := codecFor(p.Kind())
	if !ok {
		return dst
	}
	dst = append(dst, BeginByte, p.Kind().Tag())
	dst = c.appendPayload(dst, p)
	return append(dst, EndByte)
}

// EncodePayload returns the record text for p.
func EncodePayload(p Payload) string {
	return string(AppendRecord(nil, p))
}

// PeekKind returns the kind named by the tag of the record starting at
// off without consuming it. It does not check the begin byte and returns
// KindUnbound when the tag is missing or unknown.
func PeekKind(buf []byte, off int) Kind {
	if off < 0 || off+1 >= len(buf) {
		return KindUnbound
	}
	k, _ := KindFromTag(buf[off+1])
	return k
}

// scanRecord checks the begin byte and tag at off and finds the record's
// unescaped end byte. It returns the payload bounds; the record ends at
// end+1.
func scanRecord(buf []byte, off int, want Kind) (start, end int, err error) {
	if off < 0 || off >= len(buf) {
		return 0, 0, decodeErr(off, want, ErrTruncated)
	}
	if buf[off] != BeginByte {
		return 0, 0, decodeErr(off, want, ErrNoBegin)
	}
	if off+1 >= len(buf) {
		return 0, 0, decodeErr(off, want, ErrTruncated)
	}
	if Kind(buf[off+1]) != want {
		return 0, 0, decodeErr(off, want, ErrTagMismatch)
	}
	start = off + 2
	for end = start; end < len(buf); end++ {
		if buf[end] == EndByte && !isEscapedAt(buf, end) {
			return start, end, nil
		}
	}
	return 0, 0, decodeErr(off, want, ErrUnterminated)
}

// decodeRecord parses the record of kind k at off and returns its payload
// and the offset just past its end byte.
func decodeRecord(buf []byte, off int, k Kind) (Payload, int, error) {
	c, ok := codecFor(k)
	if !ok {
		return nil, 0, decodeErr(off, KindUnbound, ErrUnknownTag)
	}
	start, end, err := scanRecord(buf, off, c.kind())
	if err != nil {
		return nil, 0, err
	}
	p, err := c.parsePayload(buf[start:end])
	if err != nil {
		return nil, 0, decodeErr(off, k, err)
	}
	return p, end + 1, nil
}

// DecodeAs decodes a record of P's kind at off. It returns the value and
// the offset just past the record.
func DecodeAs[P Payload](buf []byte, off int) (P, int, error) {
	var zero P
	if any(zero) == nil {
		// P is an interface type; there is no kind to decode.
		return zero, 0, decodeErr(off, KindUnbound, ErrUnknownTag)
	}
	p, next, err := decodeRecord(buf, off, zero.Kind())
	if err != nil {
		return zero, 0, err
	}
	return p.(P), next, nil
}
