package tdata

import "fmt"

// Reserved bytes of the record grammar.
const (
	BeginByte  byte = '^'
	SepByte    byte = ':'
	EndByte    byte = '$'
	EscapeByte byte = '\\'
)

// Kind identifies the type bound to a Value. Bound kinds are their own
// tag byte in the text format.
type Kind byte

const (
	KindUnbound   Kind = 0
	KindInt64     Kind = 'i'
	KindReal64    Kind = 'r'
	KindStr       Kind = 's'
	KindVecInt64  Kind = 'I'
	KindVecReal64 Kind = 'R'
	KindVecStr    Kind = 'S'
)

// Kinds lists every bindable kind.
var Kinds = []Kind{KindInt64, KindReal64, KindStr, KindVecInt64, KindVecReal64, KindVecStr}

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindUnbound:
		return "unbound"
	case KindInt64:
		return "int64"
	case KindReal64:
		return "real64"
	case KindStr:
		return "str"
	case KindVecInt64:
		return "vec_int64"
	case KindVecReal64:
		return "vec_real64"
	case KindVecStr:
		return "vec_str"
	default:
		return fmt.Sprintf("unknown(%q)", byte(k))
	}
}

// Tag returns the tag byte written after the begin byte.
func (k Kind) Tag() byte {
	if !k.Valid() {
		return 0
	}
	return byte(k)
}

// Valid reports whether k is one of the six bindable kinds.
func (k Kind) Valid() bool {
	_, ok := KindFromTag(byte(k))
	return ok
}

// IsVector reports whether k holds a vector payload.
func (k Kind) IsVector() bool {
	return k == KindVecInt64 || k == KindVecReal64 || k == KindVecStr
}

// Null returns the kind's null value, or nil for KindUnbound.
func (k Kind) Null() Payload {
	switch k {
	case KindInt64:
		return Int64(0)
	case KindReal64:
		return Real64(0)
	case KindStr:
		return Str("")
	case KindVecInt64:
		return VecInt64{}
	case KindVecReal64:
		return VecReal64{}
	case KindVecStr:
		return VecStr{}
	default:
		return nil
	}
}

// KindFromTag maps a tag byte to its kind.
func KindFromTag(b byte) (Kind, bool) {
	switch Kind(b) {
	case KindInt64, KindReal64, KindStr, KindVecInt64, KindVecReal64, KindVecStr:
		return Kind(b), true
	default:
		return KindUnbound, false
	}
}

// ParseKind parses a kind name ("int64", "vec_str", ...) or a tag letter.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "int64", "int", "i":
		return KindInt64, true
	case "real64", "real", "float64", "r":
		return KindReal64, true
	case "str", "string", "s":
		return KindStr, true
	case "vec_int64", "vec_int", "I":
		return KindVecInt64, true
	case "vec_real64", "vec_real", "R":
		return KindVecReal64, true
	case "vec_str", "vec_string", "S":
		return KindVecStr, true
	case "unbound", "":
		return KindUnbound, true
	default:
		return KindUnbound, false
	}
}
