package tdata

import "strings"

// Escape prefixes every ':' and '$' in s with '\' so the result can sit
// inside a string payload. '^' and '\' are written unchanged.
func Escape(s string) string {
	if !strings.ContainsAny(s, ":$") {
		return s
	}
	return string(appendEscaped(make([]byte, 0, len(s)+4), s))
}

func appendEscaped(dst []byte, s string) []byte {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == SepByte || c == EndByte {
			dst = append(dst, EscapeByte)
		}
		dst = append(dst, c)
	}
	return dst
}

// Unescape reverses Escape over b. A '\' is dropped only when the byte
// after it is ':' or '$'. A '\' in the last position has no next byte and
// is kept as a literal.
func Unescape(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for i := 0; i < len(b); i++ {
		c := b[i]
		if c == EscapeByte && i+1 < len(b) && isEscapable(b[i+1]) {
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

func isEscapable(c byte) bool {
	return c == SepByte || c == EndByte
}

// isEscapedAt reports whether b[i] is preceded by an escape byte. Only the
// single preceding byte is inspected, so "\\$" reads as an escaped '$'.
func isEscapedAt(b []byte, i int) bool {
	return i > 0 && b[i-1] == EscapeByte
}
