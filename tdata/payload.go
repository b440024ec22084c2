package tdata

import (
	"math"
	"slices"
)

// Epsilon is the absolute tolerance used when comparing real values.
const Epsilon = 1e-9

// Payload is the closed set of values a Value can hold. It is implemented
// only by Int64, Real64, Str, VecInt64, VecReal64 and VecStr.
type Payload interface {
	Kind() Kind
	payload()
}

type (
	Int64     int64
	Real64    float64
	Str       string
	VecInt64  []int64
	VecReal64 []float64
	VecStr    []string
)

func (Int64) Kind() Kind     { return KindInt64 }
func (Real64) Kind() Kind    { return KindReal64 }
func (Str) Kind() Kind       { return KindStr }
func (VecInt64) Kind() Kind  { return KindVecInt64 }
func (VecReal64) Kind() Kind { return KindVecReal64 }
func (VecStr) Kind() Kind    { return KindVecStr }

func (Int64) payload()     {}
func (Real64) payload()    {}
func (Str) payload()       {}
func (VecInt64) payload()  {}
func (VecReal64) payload() {}
func (VecStr) payload()    {}

// Integer is any Go integer type. All of them collapse to Int64.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is any Go floating point type. Both collapse to Real64.
type Float interface {
	~float32 | ~float64
}

// FromInt converts any integer to an Int64 payload. Unsigned values above
// math.MaxInt64 wrap, as a plain conversion would.
func FromInt[T Integer](v T) Int64 { return Int64(int64(v)) }

// FromFloat converts any float to a Real64 payload.
func FromFloat[T Float](v T) Real64 { return Real64(float64(v)) }

// FromInts converts a slice of any integer type to a VecInt64 payload.
func FromInts[T Integer](vs []T) VecInt64 {
	out := make(VecInt64, len(vs))
	for i, v := range vs {
		out[i] = int64(v)
	}
	return out
}

// FromFloats converts a slice of any float type to a VecReal64 payload.
func FromFloats[T Float](vs []T) VecReal64 {
	out := make(VecReal64, len(vs))
	for i, v := range vs {
		out[i] = float64(v)
	}
	return out
}

func realEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// equalPayload compares two payloads of the same kind. Payloads of
// different kinds are never equal.
func equalPayload(a, b Payload) bool {
	switch x := a.(type) {
	case Int64:
		y, ok := b.(Int64)
		return ok && x == y
	case Real64:
		y, ok := b.(Real64)
		return ok && realEqual(float64(x), float64(y))
	case Str:
		y, ok := b.(Str)
		return ok && x == y
	case VecInt64:
		y, ok := b.(VecInt64)
		return ok && slices.Equal(x, y)
	case VecReal64:
		y, ok := b.(VecReal64)
		return ok && slices.EqualFunc(x, y, realEqual)
	case VecStr:
		y, ok := b.(VecStr)
		return ok && slices.Equal(x, y)
	default:
		return false
	}
}

// clonePayload deep-copies vector payloads. A nil vector becomes empty so
// that a bound vector kind never holds nil.
func clonePayload(p Payload) Payload {
	switch x := p.(type) {
	case VecInt64:
		return append(VecInt64{}, x...)
	case VecReal64:
		return append(VecReal64{}, x...)
	case VecStr:
		return append(VecStr{}, x...)
	default:
		return p
	}
}
