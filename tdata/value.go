package tdata

import "fmt"

// Value is a tagged value. The zero Value is unbound; the first successful
// SetValue binds its kind, and the kind never changes afterwards.
//
// Values own their payload: vectors are copied on the way in and out, so
// assigning a Value with Clone never shares backing arrays.
type Value struct {
	kind Kind
	data Payload
}

// New returns a Value bound to p's kind and holding a copy of p. A nil p
// yields an unbound Value.
func New(p Payload) Value {
	if p == nil {
		return Value{}
	}
	return Value{kind: p.Kind(), data: clonePayload(p)}
}

// NewOfKind returns a Value bound to k and holding k's null value. An
// invalid kind yields an unbound Value.
func NewOfKind(k Kind) Value {
	return New(k.Null())
}

// Kind returns the bound kind, or KindUnbound.
func (v *Value) Kind() Kind { return v.kind }

// IsBound reports whether a kind has been bound.
func (v *Value) IsBound() bool { return v.kind != KindUnbound }

// SetValue stores p. An unbound Value binds to p's kind. A Value bound to
// another kind is left unchanged and ErrKindMismatch is returned.
func (v *Value) SetValue(p Payload) error {
	if p == nil {
		return ErrNilPayload
	}
	k := p.Kind()
	if v.kind != KindUnbound && v.kind != k {
		return mismatchErr(v.kind, k)
	}
	v.kind = k
	v.data = clonePayload(p)
	return nil
}

// Clear resets the held value to the kind's null value. The kind stays
// bound. Clear on an unbound Value does nothing.
func (v *Value) Clear() {
	if v.kind == KindUnbound {
		return
	}
	v.data = v.kind.Null()
}

// IsNull reports whether v is unbound or holds its kind's null value.
func (v *Value) IsNull() bool {
	if v.kind == KindUnbound {
		return true
	}
	return equalPayload(v.data, v.kind.Null())
}

// Payload returns a copy of the held payload, or nil when unbound.
func (v *Value) Payload() Payload {
	if v.kind == KindUnbound {
		return nil
	}
	return clonePayload(v.data)
}

// Int64 returns the held int64, or 0 when v is not bound to KindInt64.
func (v *Value) Int64() int64 {
	n, _ := v.data.(Int64)
	return int64(n)
}

// Real64 returns the held real, or 0 when v is not bound to KindReal64.
func (v *Value) Real64() float64 {
	r, _ := v.data.(Real64)
	return float64(r)
}

// Str returns the held string, or "" when v is not bound to KindStr.
func (v *Value) Str() string {
	s, _ := v.data.(Str)
	return string(s)
}

// VecInt64 returns a copy of the held vector, or an empty vector when v is
// not bound to KindVecInt64.
func (v *Value) VecInt64() []int64 {
	vs, _ := v.data.(VecInt64)
	return append([]int64{}, vs...)
}

// VecReal64 returns a copy of the held vector, or an empty vector when v
// is not bound to KindVecReal64.
func (v *Value) VecReal64() []float64 {
	vs, _ := v.data.(VecReal64)
	return append([]float64{}, vs...)
}

// VecStr returns a copy of the held vector, or an empty vector when v is
// not bound to KindVecStr.
func (v *Value) VecStr() []string {
	vs, _ := v.data.(VecStr)
	return append([]string{}, vs...)
}

// Clone returns a deep copy of v with the same kind and value.
func (v *Value) Clone() Value {
	return Value{kind: v.kind, data: clonePayload(v.data)}
}

// Equal reports whether v and o are bound to the same kind and hold equal
// values. Reals compare within Epsilon. Two unbound Values are equal.
func (v *Value) Equal(o *Value) bool {
	if v.kind != o.kind {
		return false
	}
	if v.kind == KindUnbound {
		return true
	}
	return equalPayload(v.data, o.data)
}

// Encode returns the record text for v, or "" when v is unbound.
func (v *Value) Encode() string {
	return string(v.AppendTo(nil))
}

// AppendTo appends v's record to dst. An unbound Value appends nothing.
func (v *Value) AppendTo(dst []byte) []byte {
	if v.kind == KindUnbound {
		return dst
	}
	return AppendRecord(dst, v.data)
}

// String returns a human-readable form such as int64(42) or
// vec_str["a" "b"].
func (v Value) String() string {
	switch d := v.data.(type) {
	case nil:
		return v.kind.String()
	case Str:
		return fmt.Sprintf("%s(%q)", v.kind, string(d))
	case VecStr:
		return fmt.Sprintf("%s%q", v.kind, []string(d))
	case VecInt64, VecReal64:
		return fmt.Sprintf("%s%v", v.kind, d)
	default:
		return fmt.Sprintf("%s(%v)", v.kind, d)
	}
}

// Decode decodes the record at *cursor into target and advances *cursor
// past it. The record's tag selects the codec; the parsed value is then
// stored with SetValue, so a target bound to another kind fails even when
// the record itself is well formed.
//
// On failure *cursor is left where it was. Callers must not retry from it:
// the buffer cannot be resynchronised.
func Decode(target *Value, buf []byte, cursor *int) error {
	off := 0
	if cursor != nil {
		off = *cursor
	}
	k := PeekKind(buf, off)
	if k == KindUnbound {
		if off >= 0 && off < len(buf) && buf[off] != BeginByte {
			return decodeErr(off, KindUnbound, ErrNoBegin)
		}
		if off < 0 || off+1 >= len(buf) {
			return decodeErr(off, KindUnbound, ErrTruncated)
		}
		return decodeErr(off, KindUnbound, ErrUnknownTag)
	}
	p, next, err := decodeRecord(buf, off, k)
	if err != nil {
		return err
	}
	if err := target.SetValue(p); err != nil {
		return decodeErr(off, k, err)
	}
	if cursor != nil {
		*cursor = next
	}
	return nil
}

// DecodeString is Decode over a string buffer.
func DecodeString(target *Value, s string, cursor *int) error {
	return Decode(target, []byte(s), cursor)
}

// MarshalText implements encoding.TextMarshaler with the record form.
func (v Value) MarshalText() ([]byte, error) {
	return v.AppendTo(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text must hold
// exactly one record, and a bound v only accepts records of its kind.
func (v *Value) UnmarshalText(text []byte) error {
	cursor := 0
	tmp := v.Clone()
	if err := Decode(&tmp, text, &cursor); err != nil {
		return err
	}
	if cursor != len(text) {
		return fmt.Errorf("tdata: %d trailing bytes after record", len(text)-cursor)
	}
	*v = tmp
	return nil
}
