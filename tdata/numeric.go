package tdata

import (
	"errors"
	"strconv"
)

// Numeric payload text is parsed permissively: the longest valid numeric
// prefix wins, anything else reads as zero. Out of range integers clamp to
// the int64 limits and out of range reals become ±Inf.

func parseInt(b []byte) int64 {
	v, err := strconv.ParseInt(string(b), 10, 64)
	if err == nil || errors.Is(err, strconv.ErrRange) {
		return v
	}
	end := scanIntPrefix(b, skipSpace(b, 0))
	if end == 0 {
		return 0
	}
	v, _ = strconv.ParseInt(string(b[skipSpace(b, 0):end]), 10, 64)
	return v
}

func parseReal(b []byte) float64 {
	v, err := strconv.ParseFloat(string(b), 64)
	if err == nil || errors.Is(err, strconv.ErrRange) {
		return v
	}
	start := skipSpace(b, 0)
	end := scanRealPrefix(b, start)
	if end == 0 {
		return 0
	}
	v, _ = strconv.ParseFloat(string(b[start:end]), 64)
	return v
}

func skipSpace(b []byte, i int) int {
	for i < len(b) {
		switch b[i] {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			i++
		default:
			return i
		}
	}
	return i
}

func scanDigits(b []byte, i int) int {
	for i < len(b) && b[i] >= '0' && b[i] <= '9' {
		i++
	}
	return i
}

// scanIntPrefix returns the end of [+-]digits starting at i, or 0 when no
// digit is present.
func scanIntPrefix(b []byte, i int) int {
	if i < len(b) && (b[i] == '+' || b[i] == '-') {
		i++
	}
	end := scanDigits(b, i)
	if end == i {
		return 0
	}
	return end
}

// scanRealPrefix returns the end of the longest decimal real literal
// starting at i, or 0 when there is none. "inf", "infinity" and "nan" are
// accepted in any case.
func scanRealPrefix(b []byte, i int) int {
	if i < len(b) && (b[i] == '+' || b[i] == '-') {
		i++
	}
	for _, word := range []string{"infinity", "inf", "nan"} {
		if hasPrefixFold(b[i:], word) {
			return i + len(word)
		}
	}

	mant := scanDigits(b, i)
	digits := mant - i
	if mant < len(b) && b[mant] == '.' {
		frac := scanDigits(b, mant+1)
		digits += frac - mant - 1
		mant = frac
	}
	if digits == 0 {
		return 0
	}

	if mant < len(b) && (b[mant] == 'e' || b[mant] == 'E') {
		j := mant + 1
		if j < len(b) && (b[j] == '+' || b[j] == '-') {
			j++
		}
		if exp := scanDigits(b, j); exp > j {
			return exp
		}
	}
	return mant
}

func hasPrefixFold(b []byte, word string) bool {
	if len(b) < len(word) {
		return false
	}
	for i := 0; i < len(word); i++ {
		c := b[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != word[i] {
			return false
		}
	}
	return true
}

func formatReal(dst []byte, v float64) []byte {
	return strconv.AppendFloat(dst, v, 'f', -1, 64)
}
